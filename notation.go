/*
 * notation.go, part of atomion.
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
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/number"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var superscripts = [10]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}
var subscripts = [10]string{"₀", "₁", "₂", "₃", "₄", "₅", "₆", "₇", "₈", "₉"}

//glyphs rewrites the decimal digits of n with the given glyph table.
func glyphs(n int, table *[10]string) string {
	var b strings.Builder
	for _, d := range strconv.Itoa(n) {
		if d == '-' {
			b.WriteString("⁻")
			continue
		}
		b.WriteString(table[d-'0'])
	}
	return b.String()
}

//Superscript returns n written with superscript digits.
func Superscript(n int) string { return glyphs(n, &superscripts) }

//Subscript returns n written with subscript digits.
func Subscript(n int) string { return glyphs(n, &subscripts) }

func fullNotation(symbol string, z, a int) string {
	return fmt.Sprintf("%s Z=%d A=%d", symbol, z, a)
}

func symbolNotation(symbol string, a, z, charge int, c Config, mass, protons bool) string {
	var b strings.Builder
	if mass && !c.Calculator {
		b.WriteString(Superscript(a))
	}
	if protons && !c.Calculator {
		b.WriteString(Subscript(z))
	}
	b.WriteString(symbol)
	b.WriteString(chargeNotation(charge, c))
	return b.String()
}

//chargeNotation returns "", "+", "2-" and so on, in superscript
//unless c is in calculator mode.
func chargeNotation(charge int, c Config) string {
	if charge == 0 {
		return ""
	}
	sign, glyph := "+", "⁺"
	if charge < 0 {
		sign, glyph = "-", "⁻"
		charge = -charge
	}
	if c.Calculator {
		if charge == 1 {
			return sign
		}
		return strconv.Itoa(charge) + sign
	}
	if charge == 1 {
		return glyph
	}
	return Superscript(charge) + glyph
}

//shellNotation lists the electrons per shell. French uses the semicolon
//as list separator since the comma is its decimal mark.
func shellNotation(shells []Shell, c Config) string {
	s := make([]string, len(shells))
	for i, sh := range shells {
		s[i] = strconv.Itoa(sh.Electrons)
	}
	sep := "; "
	if c.english() {
		sep = ", "
	}
	return strings.Join(s, sep)
}

func configurationNotation(conf Configuration, c Config) string {
	s := make([]string, len(conf))
	for i, sub := range conf {
		count := Superscript(sub.Electrons)
		if c.Calculator {
			count = strconv.Itoa(sub.Electrons)
		}
		s[i] = strconv.Itoa(sub.N) + string(sub.L) + count
	}
	return strings.Join(s, " ")
}

//formula groups atoms by symbol, in order of first appearance.
func formula(atoms []*Atom, c Config) string {
	var order []string
	counts := make(map[string]int)
	for _, a := range atoms {
		if counts[a.Symbol()] == 0 {
			order = append(order, a.Symbol())
		}
		counts[a.Symbol()]++
	}
	var b strings.Builder
	for _, sym := range order {
		b.WriteString(sym)
		if n := counts[sym]; n > 1 {
			if c.Calculator {
				b.WriteString(strconv.Itoa(n))
			} else {
				b.WriteString(Subscript(n))
			}
		}
	}
	return b.String()
}

//ToASCII removes the diacritics from s (é -> e).
func ToASCII(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ret, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return ret
}

//describeField is one line of the verbose description.
type describeField struct {
	on    bool
	label Localized
	value string
}

func describe(c Config, head string, fields []describeField) string {
	var b strings.Builder
	b.WriteString(head)
	for _, f := range fields {
		if !f.on {
			continue
		}
		fmt.Fprintf(&b, "\n %s: %s", f.label.In(c), f.value)
	}
	if c.Calculator {
		return ToASCII(b.String())
	}
	return b.String()
}

func formatMass(c Config, m float64) string {
	if c.Calculator {
		return strconv.FormatFloat(m, 'f', -1, 64)
	}
	return c.printer().Sprint(number.Decimal(m, number.MaxFractionDigits(6)))
}

func describeNucleus(n *nucleus, c Config, kind Localized, extra []describeField) string {
	fields := []describeField{
		{c.Element, Localized{French: "Elément", English: "Element"}, n.Name(c)},
		{c.Category, Localized{French: "Catégorie", English: "Category"}, n.Category(c)},
		{c.Proton, Localized{French: "Proton(s)", English: "Proton(s)"}, strconv.Itoa(n.Protons())},
		{c.Neutron, Localized{French: "Neutron(s)", English: "Neutron(s)"}, strconv.Itoa(n.Neutrons())},
		{c.Electron, Localized{French: "Electron(s)", English: "Electron(s)"}, strconv.Itoa(n.Electrons())},
		{c.Mass, Localized{French: "Masse", English: "Mass"}, formatMass(c, n.Mass())},
		{c.RelativeMass, Localized{French: "Masse atomique relative", English: "Relative atomic mass"}, formatMass(c, n.RelativeMass())},
		{c.Shells, Localized{French: "Couche électronique", English: "Electron shells"}, n.ShellNotation(c)},
		{c.Configuration, Localized{French: "Configuration électronique", English: "Electron configuration"}, n.ConfigurationNotation(c)},
	}
	return describe(c, kind.In(c)+" "+n.Notation(), append(fields, extra...))
}

func compositeFields(c Config, atoms []*Atom, mass, relative float64) []describeField {
	return []describeField{
		{true, Localized{French: "Atome(s)", English: "Atom(s)"}, strconv.Itoa(len(atoms))},
		{c.Mass, Localized{French: "Masse", English: "Mass"}, formatMass(c, mass)},
		{c.RelativeMass, Localized{French: "Masse moléculaire relative", English: "Relative molecular mass"}, formatMass(c, relative)},
	}
}
