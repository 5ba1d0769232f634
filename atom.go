/*
 * atom.go, part of atomion.
 *
 * Copyright 2026 The atomion authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package atomion

import "math"

//nucleus holds the data shared by atoms and mono-atomic ions.
//It is built in one go by buildNucleus and never modified afterwards.
type nucleus struct {
	element       Element
	neutrons      int
	electrons     int
	mass          float64
	configuration Configuration
}

//defaultNeutrons returns the neutron count of the most common
//isotope, estimated from the relative atomic mass.
func defaultNeutrons(e Element) int {
	return int(math.Round(e.RelativeMass)) - e.Z
}

//buildNucleus computes every derived field. When isotope is false the
//neutrons argument is ignored and the most common isotope is used.
func buildNucleus(caller string, z, neutrons, electrons int, isotope bool) (nucleus, error) {
	e, err := Lookup(z)
	if err != nil {
		return nucleus{}, errDecorate(err, caller)
	}
	if !isotope {
		neutrons = defaultNeutrons(e)
	} else if neutrons < 0 {
		return nucleus{}, newError(ErrInvalidCount, caller, "%d neutrons", neutrons)
	}
	conf, err := Configure(electrons)
	if err != nil {
		return nucleus{}, errDecorate(err, caller)
	}
	return nucleus{
		element:       e,
		neutrons:      neutrons,
		electrons:     electrons,
		mass:          compositionMass(z, neutrons, electrons),
		configuration: conf,
	}, nil
}

//Element returns the periodic table entry.
func (n *nucleus) Element() Element { return n.element }

//Symbol returns the chemical symbol.
func (n *nucleus) Symbol() string { return n.element.Symbol }

//Name returns the element name in the language of c.
func (n *nucleus) Name(c Config) string { return n.element.Name.In(c) }

//Category returns the category of the element in the language of c.
func (n *nucleus) Category(c Config) string { return n.element.Category.Name().In(c) }

func (n *nucleus) Protons() int   { return n.element.Z }
func (n *nucleus) Neutrons() int  { return n.neutrons }
func (n *nucleus) Electrons() int { return n.electrons }

//Nucleons returns the mass number A.
func (n *nucleus) Nucleons() int { return n.element.Z + n.neutrons }

//Mass returns the sum of the rest masses of the particles, in u.
func (n *nucleus) Mass() float64 { return n.mass }

//RelativeMass returns the relative atomic mass of the element.
func (n *nucleus) RelativeMass() float64 { return n.element.RelativeMass }

//Configuration returns a copy of the electron configuration.
func (n *nucleus) Configuration() Configuration {
	ret := make(Configuration, len(n.configuration))
	copy(ret, n.configuration)
	return ret
}

//Shells returns the number of electrons per shell.
func (n *nucleus) Shells() []Shell { return n.configuration.Shells() }

//Notation returns "{symbol} Z={protons} A={nucleons}".
func (n *nucleus) Notation() string {
	return fullNotation(n.element.Symbol, n.element.Z, n.Nucleons())
}

//ShellNotation renders the per-shell electron counts.
func (n *nucleus) ShellNotation(c Config) string {
	return shellNotation(n.Shells(), c)
}

//ConfigurationNotation renders the electron configuration, e.g. 1s² 2s¹.
func (n *nucleus) ConfigurationNotation(c Config) string {
	return configurationNotation(n.configuration, c)
}

//Atom is a neutral atom: it always has as many electrons as protons.
type Atom struct {
	nucleus
}

//NewAtom returns the most common isotope of the element with z protons.
func NewAtom(z int) (*Atom, error) {
	n, err := buildNucleus("NewAtom", z, 0, z, false)
	if err != nil {
		return nil, err
	}
	return &Atom{n}, nil
}

//NewIsotope returns the atom with z protons and the given number of neutrons.
func NewIsotope(z, neutrons int) (*Atom, error) {
	n, err := buildNucleus("NewIsotope", z, neutrons, z, true)
	if err != nil {
		return nil, err
	}
	return &Atom{n}, nil
}

//AtomFromSymbol returns the most common isotope of the element with the given symbol.
func AtomFromSymbol(symbol string) (*Atom, error) {
	e, err := LookupSymbol(symbol)
	if err != nil {
		return nil, errDecorate(err, "AtomFromSymbol")
	}
	return NewAtom(e.Z)
}

//AtomFromIon returns the neutral atom with the same nucleus as ion.
func AtomFromIon(ion *Ion) (*Atom, error) {
	if ion == nil {
		return nil, newError(ErrIncompatibleType, "AtomFromIon", "nil ion")
	}
	return NewIsotope(ion.Protons(), ion.Neutrons())
}

//AtomOf builds an atom from v, which can be a proton count (int), a
//symbol (string) or a mono-atomic ion (*Ion, whose charge is dropped).
//An optional neutron count selects the isotope. Any other type of v
//gives ErrIncompatibleType.
func AtomOf(v interface{}, neutrons ...int) (*Atom, error) {
	var z int
	switch t := v.(type) {
	case int:
		z = t
	case string:
		e, err := LookupSymbol(t)
		if err != nil {
			return nil, errDecorate(err, "AtomOf")
		}
		z = e.Z
	case *Ion:
		if t == nil {
			return nil, newError(ErrIncompatibleType, "AtomOf", "nil ion")
		}
		if len(neutrons) == 0 {
			return AtomFromIon(t)
		}
		z = t.Protons()
	default:
		return nil, newError(ErrIncompatibleType, "AtomOf", "can't build an atom from %T", v)
	}
	if len(neutrons) > 0 {
		return NewIsotope(z, neutrons[0])
	}
	return NewAtom(z)
}

//Add returns the result of adding op to the atom:
//	Proton(n)   *Atom, Z+n (most common isotope of the new element)
//	Neutron(n)  *Atom, N+n
//	Electron(n) *Ion with Z+n electrons
//	*Atom       *Molecule made of both atoms
//Other operands give ErrIncompatibleOperand.
func (A *Atom) Add(op Operand) (Species, error) {
	switch o := op.(type) {
	case Proton:
		at, err := NewAtom(A.Protons() + int(o))
		if err != nil {
			return nil, errDecorate(err, "Atom.Add")
		}
		return at, nil
	case Neutron:
		at, err := NewIsotope(A.Protons(), A.neutrons+int(o))
		if err != nil {
			return nil, errDecorate(err, "Atom.Add")
		}
		return at, nil
	case Electron:
		ion, err := NewIsotopeIon(A.Protons(), A.neutrons, A.electrons+int(o))
		if err != nil {
			return nil, errDecorate(err, "Atom.Add")
		}
		return ion, nil
	case *Atom:
		if o == nil {
			return nil, incompatible("Atom.Add", A, op)
		}
		return NewMolecule(A, o), nil
	case *Molecule:
		return nil, incompatible("Atom.Add", A, op)
	default:
		return nil, incompatible("Atom.Add", A, op)
	}
}

//Sub removes particles from the atom. It mirrors Add for Proton,
//Neutron and Electron. Atoms can't be subtracted.
func (A *Atom) Sub(op Operand) (Species, error) {
	switch o := op.(type) {
	case Proton:
		at, err := NewAtom(A.Protons() - int(o))
		if err != nil {
			return nil, errDecorate(err, "Atom.Sub")
		}
		return at, nil
	case Neutron:
		at, err := NewIsotope(A.Protons(), A.neutrons-int(o))
		if err != nil {
			return nil, errDecorate(err, "Atom.Sub")
		}
		return at, nil
	case Electron:
		ion, err := NewIsotopeIon(A.Protons(), A.neutrons, A.electrons-int(o))
		if err != nil {
			return nil, errDecorate(err, "Atom.Sub")
		}
		return ion, nil
	case *Atom, *Molecule:
		return nil, incompatible("Atom.Sub", A, op)
	default:
		return nil, incompatible("Atom.Sub", A, op)
	}
}

//Mul returns a molecule with n copies of the atom.
func (A *Atom) Mul(n int) (*Molecule, error) {
	if err := checkCopies("Atom.Mul", n, 1); err != nil {
		return nil, err
	}
	atoms := make([]*Atom, n)
	for i := range atoms {
		atoms[i] = A
	}
	return &Molecule{atoms: atoms}, nil
}

//SymbolNotation returns the symbol, optionally preceded by the mass number
//(superscript) and the proton number (subscript). In calculator mode only
//the symbol is returned.
func (A *Atom) SymbolNotation(c Config, mass, protons bool) string {
	return symbolNotation(A.Symbol(), A.Nucleons(), A.Protons(), 0, c, mass, protons)
}

//String returns the canonical notation of the atom, e.g. ¹²₆C.
func (A *Atom) String() string {
	return A.SymbolNotation(DefaultConfig(), true, true)
}

//Key returns String, for use in maps.
func (A *Atom) Key() string { return A.String() }

//Describe returns a multi-line description of the atom.
func (A *Atom) Describe(c Config) string {
	return describeNucleus(&A.nucleus, c, Localized{French: "Atome", English: "Atom"}, nil)
}
