/*
 * molecule.go, part of atomion.
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

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

//Molecule is an ordered collection of atoms. The composition is purely
//structural, no chemical validity is checked.
type Molecule struct {
	atoms []*Atom
}

//NewMolecule returns a molecule with the given atoms, in order.
func NewMolecule(atoms ...*Atom) *Molecule {
	m := &Molecule{atoms: make([]*Atom, len(atoms))}
	copy(m.atoms, atoms)
	return m
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int { return len(M.atoms) }

//Atom returns the atom with index i. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i < 0 || i >= M.Len() {
		panic("Molecule: Requested Atom out of bounds")
	}
	return M.atoms[i]
}

//Atoms returns a copy of the atom slice.
func (M *Molecule) Atoms() []*Atom {
	ret := make([]*Atom, len(M.atoms))
	copy(ret, M.atoms)
	return ret
}

//Masses returns the mass of each atom, in order.
func (M *Molecule) Masses() []float64 {
	return atomMasses(M.atoms, (*Atom).Mass)
}

//Mass returns the sum of the masses of the atoms, in u.
func (M *Molecule) Mass() float64 {
	return floats.Sum(M.Masses())
}

//RelativeMass returns the relative molecular mass.
func (M *Molecule) RelativeMass() float64 {
	return floats.Sum(atomMasses(M.atoms, (*Atom).RelativeMass))
}

//Formula returns the formula of the molecule, grouping the atoms by
//symbol in order of first appearance: H₂O. In calculator mode the
//counts are plain digits.
func (M *Molecule) Formula(c Config) string {
	return formula(M.atoms, c)
}

//Notation returns the plain text formula, e.g. H2O.
func (M *Molecule) Notation() string {
	c := DefaultConfig()
	c.Calculator = true
	return M.Formula(c)
}

//String returns the canonical notations of the atoms, separated by spaces.
func (M *Molecule) String() string {
	return joinAtoms(M.atoms)
}

func (M *Molecule) Key() string { return M.String() }

//Add appends an atom or the atoms of another molecule.
func (M *Molecule) Add(op Operand) (Species, error) {
	switch o := op.(type) {
	case *Atom:
		if o == nil {
			return nil, incompatible("Molecule.Add", M, op)
		}
		return NewMolecule(append(M.Atoms(), o)...), nil
	case *Molecule:
		if o == nil {
			return nil, incompatible("Molecule.Add", M, op)
		}
		return NewMolecule(append(M.Atoms(), o.atoms...)...), nil
	case Proton, Neutron, Electron:
		return nil, incompatible("Molecule.Add", M, op)
	default:
		return nil, incompatible("Molecule.Add", M, op)
	}
}

//Mul returns a molecule with the atoms of M repeated n times.
func (M *Molecule) Mul(n int) (*Molecule, error) {
	if err := checkCopies("Molecule.Mul", n, M.Len()); err != nil {
		return nil, err
	}
	atoms := make([]*Atom, 0, n*M.Len())
	for i := 0; i < n; i++ {
		atoms = append(atoms, M.atoms...)
	}
	return &Molecule{atoms: atoms}, nil
}

//Charge returns a poly-atomic ion with the atoms of M and the given net charge.
func (M *Molecule) Charge(charge int) *PolyIon {
	return NewPolyIon(charge, M.atoms...)
}

//Describe returns a multi-line description of the molecule.
func (M *Molecule) Describe(c Config) string {
	head := Localized{French: "Molécule", English: "Molecule"}.In(c) + " " + M.Formula(c)
	return describe(c, head, compositeFields(c, M.atoms, M.Mass(), M.RelativeMass()))
}

//PolyIon is a poly-atomic ion: a group of atoms carrying a net charge.
type PolyIon struct {
	atoms  []*Atom
	charge int
}

//NewPolyIon returns the poly-atomic ion made of atoms with the given charge.
func NewPolyIon(charge int, atoms ...*Atom) *PolyIon {
	p := &PolyIon{atoms: make([]*Atom, len(atoms)), charge: charge}
	copy(p.atoms, atoms)
	return p
}

//Charge returns the net charge.
func (P *PolyIon) Charge() int { return P.charge }

//Len returns the number of atoms.
func (P *PolyIon) Len() int { return len(P.atoms) }

//Atoms returns a copy of the atom slice.
func (P *PolyIon) Atoms() []*Atom {
	ret := make([]*Atom, len(P.atoms))
	copy(ret, P.atoms)
	return ret
}

//Mass returns the mass of the atoms corrected by the electrons gained or lost.
func (P *PolyIon) Mass() float64 {
	return floats.Sum(atomMasses(P.atoms, (*Atom).Mass)) - float64(P.charge)*ElectronMass
}

//RelativeMass returns the relative molecular mass of the atoms.
func (P *PolyIon) RelativeMass() float64 {
	return floats.Sum(atomMasses(P.atoms, (*Atom).RelativeMass))
}

//Formula returns the formula followed by the charge, e.g. SO₄²⁻.
func (P *PolyIon) Formula(c Config) string {
	return formula(P.atoms, c) + chargeNotation(P.charge, c)
}

//Notation returns the plain text formula, e.g. SO42-.
func (P *PolyIon) Notation() string {
	c := DefaultConfig()
	c.Calculator = true
	return P.Formula(c)
}

//String returns the canonical notations of the atoms followed by the charge.
func (P *PolyIon) String() string {
	s := joinAtoms(P.atoms)
	if P.charge != 0 {
		s += " " + chargeNotation(P.charge, DefaultConfig())
	}
	return s
}

func (P *PolyIon) Key() string { return P.String() }

//Add changes the charge with Electron operands, or adds atoms.
//Protons and neutrons can't be attached to a group of atoms.
func (P *PolyIon) Add(op Operand) (Species, error) {
	switch o := op.(type) {
	case Electron:
		return NewPolyIon(P.charge-int(o), P.atoms...), nil
	case *Atom:
		if o == nil {
			return nil, incompatible("PolyIon.Add", P, op)
		}
		return NewPolyIon(P.charge, append(P.Atoms(), o)...), nil
	case *Molecule:
		if o == nil {
			return nil, incompatible("PolyIon.Add", P, op)
		}
		return NewPolyIon(P.charge, append(P.Atoms(), o.atoms...)...), nil
	case Proton, Neutron:
		return nil, incompatible("PolyIon.Add", P, op)
	default:
		return nil, incompatible("PolyIon.Add", P, op)
	}
}

//Sub removes electrons.
func (P *PolyIon) Sub(op Operand) (Species, error) {
	switch o := op.(type) {
	case Electron:
		return NewPolyIon(P.charge+int(o), P.atoms...), nil
	case Proton, Neutron, *Atom, *Molecule:
		return nil, incompatible("PolyIon.Sub", P, op)
	default:
		return nil, incompatible("PolyIon.Sub", P, op)
	}
}

//Describe returns a multi-line description of the ion.
func (P *PolyIon) Describe(c Config) string {
	head := Localized{French: "Ion polyatomique", English: "Polyatomic ion"}.In(c) + " " + P.Formula(c)
	fields := append(compositeFields(c, P.atoms, P.Mass(), P.RelativeMass()), describeField{
		on:    true,
		label: Localized{French: "Charge", English: "Charge"},
		value: strconv.Itoa(P.charge),
	})
	return describe(c, head, fields)
}

func atomMasses(atoms []*Atom, mass func(*Atom) float64) []float64 {
	ret := make([]float64, len(atoms))
	for i, a := range atoms {
		ret[i] = mass(a)
	}
	return ret
}

func joinAtoms(atoms []*Atom) string {
	s := make([]string, len(atoms))
	for i, a := range atoms {
		s[i] = a.String()
	}
	return strings.Join(s, " ")
}
