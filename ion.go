/*
 * ion.go, part of atomion.
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

import "strconv"

//Ion is a mono-atomic ion. Its electron count can differ from its
//proton count. An Ion whose charge comes back to zero is still an Ion;
//use AtomFromIon to get the neutral atom.
type Ion struct {
	nucleus
}

//NewIon returns the ion of the most common isotope of element z,
//carrying the given number of electrons.
func NewIon(z, electrons int) (*Ion, error) {
	n, err := buildNucleus("NewIon", z, 0, electrons, false)
	if err != nil {
		return nil, err
	}
	return &Ion{n}, nil
}

//NewIsotopeIon returns the ion with z protons, the given neutrons and electrons.
func NewIsotopeIon(z, neutrons, electrons int) (*Ion, error) {
	n, err := buildNucleus("NewIsotopeIon", z, neutrons, electrons, true)
	if err != nil {
		return nil, err
	}
	return &Ion{n}, nil
}

//Charge returns protons - electrons.
func (I *Ion) Charge() int {
	return I.Protons() - I.electrons
}

//Add returns a new ion with the added particles. Adding an atom gives a
//poly-atomic ion with the charge of I.
func (I *Ion) Add(op Operand) (Species, error) {
	var ion *Ion
	var err error
	switch o := op.(type) {
	case Proton:
		ion, err = NewIon(I.Protons()+int(o), I.electrons)
	case Neutron:
		ion, err = NewIsotopeIon(I.Protons(), I.neutrons+int(o), I.electrons)
	case Electron:
		ion, err = NewIsotopeIon(I.Protons(), I.neutrons, I.electrons+int(o))
	case *Atom:
		if o == nil {
			return nil, incompatible("Ion.Add", I, op)
		}
		at, err := AtomFromIon(I)
		if err != nil {
			return nil, errDecorate(err, "Ion.Add")
		}
		return NewPolyIon(I.Charge(), at, o), nil
	case *Molecule:
		return nil, incompatible("Ion.Add", I, op)
	default:
		return nil, incompatible("Ion.Add", I, op)
	}
	if err != nil {
		return nil, errDecorate(err, "Ion.Add")
	}
	return ion, nil
}

//Sub returns a new ion with the particles removed.
func (I *Ion) Sub(op Operand) (Species, error) {
	var ion *Ion
	var err error
	switch o := op.(type) {
	case Proton:
		ion, err = NewIon(I.Protons()-int(o), I.electrons)
	case Neutron:
		ion, err = NewIsotopeIon(I.Protons(), I.neutrons-int(o), I.electrons)
	case Electron:
		ion, err = NewIsotopeIon(I.Protons(), I.neutrons, I.electrons-int(o))
	case *Atom, *Molecule:
		return nil, incompatible("Ion.Sub", I, op)
	default:
		return nil, incompatible("Ion.Sub", I, op)
	}
	if err != nil {
		return nil, errDecorate(err, "Ion.Sub")
	}
	return ion, nil
}

//Mul returns a poly-atomic ion made of n copies of the ion.
func (I *Ion) Mul(n int) (*PolyIon, error) {
	if err := checkCopies("Ion.Mul", n, 1); err != nil {
		return nil, err
	}
	at, err := AtomFromIon(I)
	if err != nil {
		return nil, errDecorate(err, "Ion.Mul")
	}
	atoms := make([]*Atom, n)
	for i := range atoms {
		atoms[i] = at
	}
	return &PolyIon{atoms: atoms, charge: n * I.Charge()}, nil
}

//SymbolNotation is like Atom.SymbolNotation, with the charge appended.
func (I *Ion) SymbolNotation(c Config, mass, protons bool) string {
	return symbolNotation(I.Symbol(), I.Nucleons(), I.Protons(), I.Charge(), c, mass, protons)
}

//String returns the canonical notation of the ion, e.g. ³⁵₁₇Cl⁻.
func (I *Ion) String() string {
	return I.SymbolNotation(DefaultConfig(), true, true)
}

func (I *Ion) Key() string { return I.String() }

//Describe returns a multi-line description of the ion.
func (I *Ion) Describe(c Config) string {
	charge := describeField{
		on:    true,
		label: Localized{French: "Charge", English: "Charge"},
		value: strconv.Itoa(I.Charge()),
	}
	return describeNucleus(&I.nucleus, c, Localized{French: "Ion", English: "Ion"}, []describeField{charge})
}
