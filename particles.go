/*
 * particles.go, part of atomion.
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

import "gonum.org/v1/gonum/floats"

//Rest masses of the particles, in unified atomic mass units (CODATA 2018).
const (
	ProtonMass   = 1.007276466621
	NeutronMass  = 1.00866491595
	ElectronMass = 5.48579909065e-4
)

var particleMasses = []float64{ProtonMass, NeutronMass, ElectronMass}

//compositionMass returns the sum of the rest masses of the given particles.
//The nuclear binding energy is not taken into account.
func compositionMass(protons, neutrons, electrons int) float64 {
	return floats.Dot([]float64{float64(protons), float64(neutrons), float64(electrons)}, particleMasses)
}

//Operand is the right-hand side of the Add and Sub methods.
//The set of operands is closed: Proton, Neutron, Electron, *Atom and *Molecule.
type Operand interface {
	operand()
}

//Proton adds (or removes) n protons.
type Proton int

//Neutron adds (or removes) n neutrons.
type Neutron int

//Electron adds (or removes) n electrons.
type Electron int

func (Proton) operand()    {}
func (Neutron) operand()   {}
func (Electron) operand()  {}
func (*Atom) operand()     {}
func (*Molecule) operand() {}

//Species is implemented by every chemical entity of the package:
//*Atom, *Ion, *Molecule and *PolyIon.
type Species interface {
	//Notation returns a plain text notation.
	Notation() string
	//String returns the canonical notation, used for equality.
	String() string
	//Key returns the canonical notation, for use as a map key.
	Key() string
	//Describe returns a multi-line description following the
	//field selection of c.
	Describe(c Config) string
	Mass() float64
	RelativeMass() float64
}

//Equal reports whether a and b have the same canonical notation.
//Nil values, typed or not, are only equal to each other.
func Equal(a, b Species) bool {
	an, bn := nilSpecies(a), nilSpecies(b)
	if an || bn {
		return an && bn
	}
	return a.Key() == b.Key()
}

func nilSpecies(s Species) bool {
	switch t := s.(type) {
	case nil:
		return true
	case *Atom:
		return t == nil
	case *Ion:
		return t == nil
	case *Molecule:
		return t == nil
	case *PolyIon:
		return t == nil
	default:
		return false
	}
}

//MaxAtoms is the largest number of atoms the Mul methods will produce.
const MaxAtoms = 1 << 20

//checkCopies validates the repetition of size atoms n times.
func checkCopies(caller string, n, size int) error {
	if n < 0 {
		return newError(ErrInvalidCount, caller, "%d copies", n)
	}
	if size > 0 && n > MaxAtoms/size {
		return newError(ErrInvalidCount, caller, "%d copies of %d atoms, at most %d atoms", n, size, MaxAtoms)
	}
	return nil
}

func operandName(op Operand) string {
	switch o := op.(type) {
	case Proton:
		return "proton"
	case Neutron:
		return "neutron"
	case Electron:
		return "electron"
	case *Atom:
		if o == nil {
			return "nil atom"
		}
		return "atom " + o.String()
	case *Molecule:
		if o == nil {
			return "nil molecule"
		}
		return "molecule " + o.String()
	default:
		return "nil"
	}
}

func incompatible(caller string, left Species, op Operand) error {
	return newError(ErrIncompatibleOperand, caller, "%s and %s", left.String(), operandName(op))
}
