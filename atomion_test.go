/*
 * atomion_test.go, part of atomion.
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
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustAtom(Te *testing.T, z int) *Atom {
	Te.Helper()
	at, err := NewAtom(z)
	if err != nil {
		Te.Fatal(err)
	}
	return at
}

func isASCII(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r > 127 }) < 0
}

//TestNeutrality checks that every atom has as many electrons as protons.
func TestNeutrality(Te *testing.T) {
	for z := 1; z <= MaxZ; z++ {
		at := mustAtom(Te, z)
		if at.Electrons() != z {
			Te.Errorf("Z=%d: %d electrons", z, at.Electrons())
		}
		if at.Nucleons() != z+at.Neutrons() {
			Te.Errorf("Z=%d: A=%d with %d neutrons", z, at.Nucleons(), at.Neutrons())
		}
		if at.Configuration().Total() != z {
			Te.Errorf("Z=%d: configuration holds %d electrons", z, at.Configuration().Total())
		}
	}
}

func TestTable(Te *testing.T) {
	seen := make(map[string]bool)
	for i, e := range Elements() {
		if e.Z != i+1 {
			Te.Errorf("element %s at index %d has Z=%d", e.Symbol, i, e.Z)
		}
		if seen[e.Symbol] {
			Te.Errorf("duplicated symbol %s", e.Symbol)
		}
		seen[e.Symbol] = true
		if defaultNeutrons(e) < 0 {
			Te.Errorf("%s: negative default neutron count", e.Symbol)
		}
		if e.Name.French == "" || e.Name.English == "" || e.Category.Name().English == "" {
			Te.Errorf("%s: missing names", e.Symbol)
		}
	}
	for _, z := range []int{-1, 0, MaxZ + 1} {
		if _, err := Lookup(z); !errors.Is(err, ErrUnknownElement) {
			Te.Errorf("Lookup(%d): got %v, want ErrUnknownElement", z, err)
		}
	}
	for _, sym := range []string{"na", "Na", "NA", " Na "} {
		e, err := LookupSymbol(sym)
		if err != nil || e.Z != 11 {
			Te.Errorf("LookupSymbol(%q) = %d, %v", sym, e.Z, err)
		}
	}
	if _, err := LookupSymbol("Xx"); !errors.Is(err, ErrUnknownElement) {
		Te.Errorf("LookupSymbol(Xx): got %v", err)
	}
}

func TestDefaultIsotope(Te *testing.T) {
	for _, c := range []struct {
		z, neutrons int
	}{{1, 0}, {2, 2}, {6, 6}, {8, 8}, {17, 18}, {26, 30}, {92, 146}} {
		at := mustAtom(Te, c.z)
		if at.Neutrons() != c.neutrons {
			Te.Errorf("Z=%d: %d neutrons, want %d", c.z, at.Neutrons(), c.neutrons)
		}
	}
	at, err := NewIsotope(6, 8)
	if err != nil {
		Te.Fatal(err)
	}
	if at.Nucleons() != 14 || at.Notation() != "C Z=6 A=14" {
		Te.Errorf("carbon 14: got %s", at.Notation())
	}
	if _, err := NewIsotope(6, -1); !errors.Is(err, ErrInvalidCount) {
		Te.Errorf("negative neutrons: got %v", err)
	}
}

func TestMass(Te *testing.T) {
	h := mustAtom(Te, 1)
	want := ProtonMass + ElectronMass
	if math.Abs(h.Mass()-want) > 1e-12 {
		Te.Errorf("hydrogen mass %v, want %v", h.Mass(), want)
	}
	if h.RelativeMass() != 1.008 {
		Te.Errorf("hydrogen relative mass %v", h.RelativeMass())
	}
	cl := mustAtom(Te, 17)
	s, err := cl.Add(Electron(1))
	if err != nil {
		Te.Fatal(err)
	}
	if d := s.Mass() - cl.Mass(); math.Abs(d-ElectronMass) > 1e-9 {
		Te.Errorf("Cl- is %v heavier than Cl, want %v", d, ElectronMass)
	}
}

func TestConfigureHydrogen(Te *testing.T) {
	conf, err := Configure(1)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(Configuration{{N: 1, L: 's', Electrons: 1}}, conf); diff != "" {
		Te.Errorf("hydrogen configuration mismatch (-want +got):\n%s", diff)
	}
	empty, err := Configure(0)
	if err != nil || len(empty) != 0 {
		Te.Errorf("Configure(0) = %v, %v", empty, err)
	}
}

//TestConfigureOrder checks the Madelung ordering for every electron count.
func TestConfigureOrder(Te *testing.T) {
	if MaxElectrons != MaxZ {
		Te.Errorf("MaxElectrons = %d, want %d", MaxElectrons, MaxZ)
	}
	for e := 0; e <= MaxElectrons; e++ {
		conf, err := Configure(e)
		if err != nil {
			Te.Fatalf("Configure(%d): %v", e, err)
		}
		if conf.Total() != e {
			Te.Errorf("Configure(%d) holds %d electrons", e, conf.Total())
		}
		for i := 1; i < len(conf); i++ {
			a, b := conf[i-1], conf[i]
			ea, eb := a.N+a.azimuthal(), b.N+b.azimuthal()
			if ea > eb || (ea == eb && a.N >= b.N) {
				Te.Errorf("Configure(%d): %d%c before %d%c", e, a.N, a.L, b.N, b.L)
			}
			if a.Electrons != a.Capacity() {
				Te.Errorf("Configure(%d): %d%c is partial but not last", e, a.N, a.L)
			}
		}
		if len(conf) > 0 {
			last := conf[len(conf)-1]
			if last.Electrons < 1 || last.Electrons > last.Capacity() {
				Te.Errorf("Configure(%d): last subshell has %d electrons", e, last.Electrons)
			}
		}
	}
}

func TestConfigureErrors(Te *testing.T) {
	if _, err := Configure(MaxElectrons + 1); !errors.Is(err, ErrUnsupportedConfiguration) {
		Te.Errorf("Configure(%d): got %v", MaxElectrons+1, err)
	}
	if _, err := Configure(-1); !errors.Is(err, ErrInvalidCount) {
		Te.Errorf("Configure(-1): got %v", err)
	}
}

func TestIron(Te *testing.T) {
	fe := mustAtom(Te, 26)
	c := DefaultConfig()
	if got, want := fe.ConfigurationNotation(c), "1s² 2s² 2p⁶ 3s² 3p⁶ 4s² 3d⁶"; got != want {
		Te.Errorf("got %q, want %q", got, want)
	}
	c.Calculator = true
	if got, want := fe.ConfigurationNotation(c), "1s2 2s2 2p6 3s2 3p6 4s2 3d6"; got != want {
		Te.Errorf("got %q, want %q", got, want)
	}
	want := []Shell{{1, 2}, {2, 8}, {3, 14}, {4, 2}}
	if diff := cmp.Diff(want, fe.Shells()); diff != "" {
		Te.Errorf("iron shells mismatch (-want +got):\n%s", diff)
	}
	for _, s := range []string{"2", "8", "14"} {
		if !strings.Contains(fe.ShellNotation(c), s) {
			Te.Errorf("shell notation %q lacks %s", fe.ShellNotation(c), s)
		}
	}
}

func TestAddProton(Te *testing.T) {
	for z := 1; z < MaxZ; z++ {
		s, err := mustAtom(Te, z).Add(Proton(1))
		if err != nil {
			Te.Fatalf("Z=%d: %v", z, err)
		}
		at, ok := s.(*Atom)
		if !ok {
			Te.Fatalf("Z=%d: got %T", z, s)
		}
		next := mustAtom(Te, z+1)
		if at.Protons() != z+1 || at.Symbol() != next.Symbol() || !Equal(at, next) {
			Te.Errorf("Z=%d + p: got %s, want %s", z, at, next)
		}
	}
	if _, err := mustAtom(Te, MaxZ).Add(Proton(1)); !errors.Is(err, ErrUnknownElement) {
		Te.Errorf("Og + p: got %v", err)
	}
	if _, err := mustAtom(Te, 1).Sub(Proton(1)); !errors.Is(err, ErrUnknownElement) {
		Te.Errorf("H - p: got %v", err)
	}
	s, err := mustAtom(Te, 7).Sub(Proton(1))
	if err != nil || !Equal(s, mustAtom(Te, 6)) {
		Te.Errorf("N - p = %v, %v", s, err)
	}
}

func TestNeutrons(Te *testing.T) {
	c := mustAtom(Te, 6)
	s, err := c.Add(Neutron(2))
	if err != nil {
		Te.Fatal(err)
	}
	c14 := s.(*Atom)
	if c14.Protons() != 6 || c14.Neutrons() != 8 || c14.Symbol() != "C" {
		Te.Errorf("C + 2n: got %s", c14.Notation())
	}
	s, err = c14.Sub(Neutron(2))
	if err != nil || !Equal(s, c) {
		Te.Errorf("C14 - 2n = %v, %v", s, err)
	}
	if _, err := c.Sub(Neutron(7)); !errors.Is(err, ErrInvalidCount) {
		Te.Errorf("C - 7n: got %v", err)
	}
}

func TestAddElectron(Te *testing.T) {
	h := mustAtom(Te, 1)
	s, err := h.Add(Electron(1))
	if err != nil {
		Te.Fatal(err)
	}
	ion, ok := s.(*Ion)
	if !ok {
		Te.Fatalf("H + e: got %T", s)
	}
	if ion.Electrons() != 2 || ion.Charge() != -1 || ion.Protons() != 1 {
		Te.Errorf("H + e: %d electrons, charge %d", ion.Electrons(), ion.Charge())
	}
	if ion.String() != "¹₁H⁻" {
		Te.Errorf("H + e: notation %q", ion.String())
	}
	if diff := cmp.Diff(Configuration{{N: 1, L: 's', Electrons: 2}}, ion.Configuration()); diff != "" {
		Te.Errorf("hydride configuration (-want +got):\n%s", diff)
	}
	s, err = h.Sub(Electron(1))
	if err != nil {
		Te.Fatal(err)
	}
	proton := s.(*Ion)
	if proton.Charge() != 1 || len(proton.Configuration()) != 0 || proton.String() != "¹₁H⁺" {
		Te.Errorf("H - e: got %s", proton)
	}
	if _, err := proton.Sub(Electron(1)); !errors.Is(err, ErrInvalidCount) {
		Te.Errorf("H+ - e: got %v", err)
	}
	mg, err := NewIon(12, 10)
	if err != nil {
		Te.Fatal(err)
	}
	if mg.String() != "²⁴₁₂Mg²⁺" {
		Te.Errorf("Mg2+: got %q", mg.String())
	}
}

func TestIonStaysIon(Te *testing.T) {
	na := mustAtom(Te, 11)
	s, err := na.Sub(Electron(1))
	if err != nil {
		Te.Fatal(err)
	}
	s, err = s.(*Ion).Add(Electron(1))
	if err != nil {
		Te.Fatal(err)
	}
	ion, ok := s.(*Ion)
	if !ok {
		Te.Fatalf("Na+ + e: got %T, want *Ion", s)
	}
	if ion.Charge() != 0 || !Equal(ion, na) {
		Te.Errorf("Na+ + e: got %s", ion)
	}
	back, err := AtomFromIon(ion)
	if err != nil {
		Te.Fatal(err)
	}
	if back.Protons() != 11 || back.Neutrons() != na.Neutrons() {
		Te.Errorf("AtomFromIon: got %s", back.Notation())
	}
}

func TestRoundTrip(Te *testing.T) {
	ion, err := NewIsotopeIon(17, 20, 17)
	if err != nil {
		Te.Fatal(err)
	}
	at, err := AtomOf(ion)
	if err != nil {
		Te.Fatal(err)
	}
	if at.Protons() != 17 || at.Neutrons() != 20 {
		Te.Errorf("got %s", at.Notation())
	}
	charged, err := NewIsotopeIon(17, 20, 18)
	if err != nil {
		Te.Fatal(err)
	}
	at, err = AtomOf(charged)
	if err != nil || at.Electrons() != 17 || at.Neutrons() != 20 {
		Te.Errorf("AtomOf(Cl-) = %v, %v", at, err)
	}
	at, err = AtomOf(charged, 18)
	if err != nil || at.Nucleons() != 35 {
		Te.Errorf("AtomOf(Cl-, 18) = %v, %v", at, err)
	}
}

func TestAtomOf(Te *testing.T) {
	for _, v := range []interface{}{8, "O", "o"} {
		at, err := AtomOf(v)
		if err != nil || at.Symbol() != "O" {
			Te.Errorf("AtomOf(%v) = %v, %v", v, at, err)
		}
	}
	for _, v := range []interface{}{8.0, mustAtom(Te, 8), nil, (*Ion)(nil)} {
		if _, err := AtomOf(v); !errors.Is(err, ErrIncompatibleType) {
			Te.Errorf("AtomOf(%T): got %v", v, err)
		}
	}
	if _, err := AtomOf("Zz"); !errors.Is(err, ErrUnknownElement) {
		Te.Errorf("AtomOf(Zz): got %v", err)
	}
}

func TestMolecules(Te *testing.T) {
	c, o := mustAtom(Te, 6), mustAtom(Te, 8)
	s, err := c.Add(o)
	if err != nil {
		Te.Fatal(err)
	}
	mol := s.(*Molecule)
	if mol.Len() != 2 || !Equal(mol.Atom(0), c) || !Equal(mol.Atom(1), o) {
		Te.Errorf("C + O: got %s", mol)
	}
	s, err = c.Add(c)
	if err != nil {
		Te.Fatal(err)
	}
	if m := s.(*Molecule); m.Len() != 2 || !Equal(m.Atom(0), c) || !Equal(m.Atom(1), c) {
		Te.Errorf("C + C: got %s", m)
	}
	tri, err := c.Mul(3)
	if err != nil {
		Te.Fatal(err)
	}
	if tri.Len() != 3 {
		Te.Errorf("C*3 has %d atoms", tri.Len())
	}
	for _, at := range tri.Atoms() {
		if !Equal(at, c) {
			Te.Errorf("C*3 contains %s", at)
		}
	}
	if _, err := c.Mul(-1); !errors.Is(err, ErrInvalidCount) {
		Te.Errorf("C*-1: got %v", err)
	}
	empty, err := c.Mul(0)
	if err != nil || empty.Len() != 0 {
		Te.Errorf("C*0 = %v, %v", empty, err)
	}
}

func TestWater(Te *testing.T) {
	h2, err := mustAtom(Te, 1).Mul(2)
	if err != nil {
		Te.Fatal(err)
	}
	s, err := h2.Add(mustAtom(Te, 8))
	if err != nil {
		Te.Fatal(err)
	}
	water := s.(*Molecule)
	if got := water.Formula(DefaultConfig()); got != "H₂O" {
		Te.Errorf("formula %q", got)
	}
	if got := water.Notation(); got != "H2O" {
		Te.Errorf("notation %q", got)
	}
	if math.Abs(water.RelativeMass()-18.015) > 1e-9 {
		Te.Errorf("relative mass %v", water.RelativeMass())
	}
	if math.Abs(water.Mass()-(2*mustAtom(Te, 1).Mass()+mustAtom(Te, 8).Mass())) > 1e-9 {
		Te.Errorf("mass %v", water.Mass())
	}
	double, err := water.Mul(2)
	if err != nil || double.Notation() != "H4O2" {
		Te.Errorf("(H2O)*2 = %v, %v", double, err)
	}
}

func TestPolyIon(Te *testing.T) {
	o4, err := mustAtom(Te, 8).Mul(4)
	if err != nil {
		Te.Fatal(err)
	}
	s, err := NewMolecule(mustAtom(Te, 16)).Add(o4)
	if err != nil {
		Te.Fatal(err)
	}
	sulfate := s.(*Molecule).Charge(-2)
	if got := sulfate.Formula(DefaultConfig()); got != "SO₄²⁻" {
		Te.Errorf("formula %q", got)
	}
	if got := sulfate.Notation(); got != "SO42-" {
		Te.Errorf("notation %q", got)
	}
	s, err = sulfate.Sub(Electron(2))
	if err != nil {
		Te.Fatal(err)
	}
	if p := s.(*PolyIon); p.Charge() != 0 || p.Len() != 5 {
		Te.Errorf("SO4 2- minus 2 e: charge %d", p.Charge())
	}
	if _, err := sulfate.Add(Proton(1)); !errors.Is(err, ErrIncompatibleOperand) {
		Te.Errorf("SO4 + p: got %v", err)
	}
	na, err := NewIon(11, 10)
	if err != nil {
		Te.Fatal(err)
	}
	pair, err := na.Mul(2)
	if err != nil || pair.Charge() != 2 || pair.Len() != 2 {
		Te.Errorf("Na+ * 2 = %v, %v", pair, err)
	}
}

func TestIncompatible(Te *testing.T) {
	h := mustAtom(Te, 1)
	mol := NewMolecule(h, h)
	cases := []struct {
		name string
		op   func() (Species, error)
	}{
		{"atom - atom", func() (Species, error) { return h.Sub(h) }},
		{"atom + molecule", func() (Species, error) { return h.Add(mol) }},
		{"atom + nil", func() (Species, error) { return h.Add(nil) }},
		{"atom + nil atom", func() (Species, error) { return h.Add((*Atom)(nil)) }},
		{"molecule + proton", func() (Species, error) { return mol.Add(Proton(1)) }},
		{"molecule + electron", func() (Species, error) { return mol.Add(Electron(1)) }},
	}
	for _, c := range cases {
		s, err := c.op()
		if !errors.Is(err, ErrIncompatibleOperand) {
			Te.Errorf("%s: got %v", c.name, err)
		}
		if s != nil {
			Te.Errorf("%s: returned %v with the error", c.name, s)
		}
	}
}

func TestErrorDecoration(Te *testing.T) {
	_, err := mustAtom(Te, 6).Add(Proton(200))
	var aerr *Error
	if !errors.As(err, &aerr) {
		Te.Fatalf("got %T", err)
	}
	deco := aerr.Decorate("")
	if diff := cmp.Diff([]string{"Lookup", "NewAtom", "Atom.Add"}, deco); diff != "" {
		Te.Errorf("decoration (-want +got):\n%s", diff)
	}
	if aerr.Kind() != ErrUnknownElement {
		Te.Errorf("kind %v", aerr.Kind())
	}
}

func TestNotations(Te *testing.T) {
	c := mustAtom(Te, 6)
	conf := DefaultConfig()
	if got := c.Notation(); got != "C Z=6 A=12" {
		Te.Errorf("Notation %q", got)
	}
	if got := c.String(); got != "¹²₆C" {
		Te.Errorf("String %q", got)
	}
	if got := c.SymbolNotation(conf, false, true); got != "₆C" {
		Te.Errorf("no A: %q", got)
	}
	if got := c.SymbolNotation(conf, true, false); got != "¹²C" {
		Te.Errorf("no Z: %q", got)
	}
	conf.Calculator = true
	if got := c.SymbolNotation(conf, true, true); got != "C" {
		Te.Errorf("calculator: %q", got)
	}
	if Superscript(1234567890) != "¹²³⁴⁵⁶⁷⁸⁹⁰" || Subscript(1234567890) != "₁₂₃₄₅₆₇₈₉₀" {
		Te.Error("glyph tables")
	}
	if ToASCII("Elément métalloïde Étain") != "Element metalloide Etain" {
		Te.Errorf("ToASCII: %q", ToASCII("Elément métalloïde Étain"))
	}
}

func TestDescribe(Te *testing.T) {
	c := mustAtom(Te, 6)
	conf := DefaultConfig()
	fr := c.Describe(conf)
	for _, want := range []string{"Atome C Z=6 A=12", "Carbone", "non-métal", "Proton(s): 6", "Neutron(s): 6", "12,09", "1s² 2s² 2p²"} {
		if !strings.Contains(fr, want) {
			Te.Errorf("French description lacks %q:\n%s", want, fr)
		}
	}
	conf.Language = "en-GB"
	en := c.Describe(conf)
	for _, want := range []string{"Atom C Z=6 A=12", "Carbon", "nonmetal", "12.09", "Electron configuration"} {
		if !strings.Contains(en, want) {
			Te.Errorf("English description lacks %q:\n%s", want, en)
		}
	}
	conf.Element = false
	conf.Configuration = false
	if d := c.Describe(conf); strings.Contains(d, "Carbon") || strings.Contains(d, "2p") {
		Te.Errorf("hidden fields shown:\n%s", d)
	}
	ion, err := NewIon(17, 18)
	if err != nil {
		Te.Fatal(err)
	}
	if d := ion.Describe(DefaultConfig()); !strings.Contains(d, "Charge: -1") || !strings.HasPrefix(d, "Ion ") {
		Te.Errorf("ion description:\n%s", d)
	}
}

//TestCalculatorASCII checks that calculator mode never produces non-ASCII text.
func TestCalculatorASCII(Te *testing.T) {
	conf := DefaultConfig()
	conf.Calculator = true
	for z := 1; z <= MaxZ; z++ {
		at := mustAtom(Te, z)
		if d := at.Describe(conf); !isASCII(d) {
			Te.Errorf("Z=%d: non-ASCII calculator output:\n%s", z, d)
		}
	}
	mol := NewMolecule(mustAtom(Te, 1), mustAtom(Te, 1), mustAtom(Te, 8))
	if d := mol.Describe(conf); !isASCII(d) || !strings.HasPrefix(d, "Molecule H2O") {
		Te.Errorf("molecule calculator output:\n%s", d)
	}
	if d := mol.Charge(1).Describe(conf); !isASCII(d) {
		Te.Errorf("polyion calculator output:\n%s", d)
	}
}

//TestKeys checks that equal species share a map entry.
func TestKeys(Te *testing.T) {
	h, o := mustAtom(Te, 1), mustAtom(Te, 8)
	h2, err := h.Mul(2)
	if err != nil {
		Te.Fatal(err)
	}
	w1, err := h2.Add(o)
	if err != nil {
		Te.Fatal(err)
	}
	w2 := NewMolecule(h, h, o)
	cl1, err := NewIon(17, 18)
	if err != nil {
		Te.Fatal(err)
	}
	cl2, err := mustAtom(Te, 17).Add(Electron(1))
	if err != nil {
		Te.Fatal(err)
	}
	seen := make(map[string]Species)
	for _, s := range []Species{mustAtom(Te, 6), w1, cl1, w2.Charge(-1)} {
		seen[s.Key()] = s
	}
	for _, s := range []Species{mustAtom(Te, 6), w2, cl2, w2.Charge(-1)} {
		prev, ok := seen[s.Key()]
		if !ok || !Equal(prev, s) {
			Te.Errorf("%s: no equal entry under key %q", s, s.Key())
		}
	}
	if h.Key() == mustAtom(Te, 2).Key() || w2.Key() == w2.Charge(1).Key() {
		Te.Error("different species share a key")
	}
}

func TestEqualNil(Te *testing.T) {
	c := mustAtom(Te, 6)
	cases := []struct {
		a, b Species
		want bool
	}{
		{nil, nil, true},
		{(*Atom)(nil), nil, true},
		{(*Atom)(nil), c, false},
		{c, (*Ion)(nil), false},
		{(*Molecule)(nil), (*PolyIon)(nil), true},
		{c, c, true},
	}
	for i, t := range cases {
		if got := Equal(t.a, t.b); got != t.want {
			Te.Errorf("case %d: Equal(%T, %T) = %v", i, t.a, t.b, got)
		}
	}
}

func TestMulLimits(Te *testing.T) {
	h := mustAtom(Te, 1)
	water := NewMolecule(h, h, mustAtom(Te, 8))
	na, err := NewIon(11, 10)
	if err != nil {
		Te.Fatal(err)
	}
	calls := []struct {
		name string
		mul  func() error
	}{
		{"atom", func() error { _, err := h.Mul(MaxAtoms + 1); return err }},
		{"atom maxint", func() error { _, err := h.Mul(math.MaxInt); return err }},
		{"molecule", func() error { _, err := water.Mul(MaxAtoms/3 + 1); return err }},
		{"molecule maxint", func() error { _, err := water.Mul(math.MaxInt); return err }},
		{"ion", func() error { _, err := na.Mul(math.MaxInt); return err }},
	}
	for _, c := range calls {
		if err := c.mul(); !errors.Is(err, ErrInvalidCount) {
			Te.Errorf("%s: got %v, want ErrInvalidCount", c.name, err)
		}
	}
	big, err := water.Mul(MaxAtoms / 3)
	if err != nil || big.Len() != MaxAtoms/3*3 {
		Te.Errorf("largest water multiple: %v", err)
	}
}
