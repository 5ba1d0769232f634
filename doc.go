/*
 * doc.go, part of atomion.
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

/*Package atomion models atoms, ions and molecules. From a proton count, a symbol or an
isotope it derives the element, the masses and the electron configuration, and it
produces the usual text notations.



	**atomion Capabilities**


    Periodic table lookup by proton count or symbol (Z=1 to 118), with
	names and categories in French and English.

    Electron configurations following the Madelung rule, and their
	per-shell summary.

    Notations: "C Z=6 A=12", ¹²₆C, ³⁵₁₇Cl⁻, 1s² 2s² 2p², H₂O, SO₄²⁻.
	A calculator mode gives the same information in plain ASCII.

    Composition of particles:
        Atom + Proton   -> Atom (another element)
        Atom + Neutron  -> Atom (another isotope)
        Atom + Electron -> Ion
        Atom + Atom     -> Molecule
        Atom × n        -> Molecule

    Display preferences are a Config value, which can be read from a YAML
	file with the keys langue, calculatrice, element, categorie, proton,
	neutron, electron, masse, masse_relative, couches and configuration.

All the types are immutable: the operators return new values. Errors can be
matched with errors.Is against the Err* kinds.

The atomjson package serializes the types for other programs, and shellplot
draws the shell occupancy of an atom.*/
package atomion
