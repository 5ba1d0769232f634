/*
 * atomicdata.go, part of atomion.
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

import "strings"

//Element holds the periodic table data for one element.
type Element struct {
	Z            int
	Symbol       string
	Name         Localized
	Category     Category
	RelativeMass float64 //standard atomic weight, or the mass number of the most stable isotope
}

//Category is the family an element belongs to in the periodic table.
type Category int

const (
	Unknown Category = iota
	AlkaliMetal
	AlkalineEarthMetal
	TransitionMetal
	PostTransitionMetal
	Metalloid
	Nonmetal
	Halogen
	NobleGas
	Lanthanide
	Actinide
)

var categoryNames = map[Category]Localized{
	Unknown:             {French: "propriétés inconnues", English: "unknown properties"},
	AlkaliMetal:         {French: "métal alcalin", English: "alkali metal"},
	AlkalineEarthMetal:  {French: "métal alcalino-terreux", English: "alkaline earth metal"},
	TransitionMetal:     {French: "métal de transition", English: "transition metal"},
	PostTransitionMetal: {French: "métal pauvre", English: "post-transition metal"},
	Metalloid:           {French: "métalloïde", English: "metalloid"},
	Nonmetal:            {French: "non-métal", English: "nonmetal"},
	Halogen:             {French: "halogène", English: "halogen"},
	NobleGas:            {French: "gaz noble", English: "noble gas"},
	Lanthanide:          {French: "lanthanide", English: "lanthanide"},
	Actinide:            {French: "actinide", English: "actinide"},
}

//Name returns the localized name of the category.
func (c Category) Name() Localized {
	return categoryNames[c]
}

//MaxZ is the largest proton count present in the table.
const MaxZ = 118

//The periodic table, indexed by Z-1.
//Masses from the IUPAC 2021 standard atomic weights (abridged).
var elements = [MaxZ]Element{
	{1, "H", Localized{French: "Hydrogène", English: "Hydrogen"}, Nonmetal, 1.008},
	{2, "He", Localized{French: "Hélium", English: "Helium"}, NobleGas, 4.0026},
	{3, "Li", Localized{French: "Lithium", English: "Lithium"}, AlkaliMetal, 6.94},
	{4, "Be", Localized{French: "Béryllium", English: "Beryllium"}, AlkalineEarthMetal, 9.0122},
	{5, "B", Localized{French: "Bore", English: "Boron"}, Metalloid, 10.81},
	{6, "C", Localized{French: "Carbone", English: "Carbon"}, Nonmetal, 12.011},
	{7, "N", Localized{French: "Azote", English: "Nitrogen"}, Nonmetal, 14.007},
	{8, "O", Localized{French: "Oxygène", English: "Oxygen"}, Nonmetal, 15.999},
	{9, "F", Localized{French: "Fluor", English: "Fluorine"}, Halogen, 18.998},
	{10, "Ne", Localized{French: "Néon", English: "Neon"}, NobleGas, 20.180},
	{11, "Na", Localized{French: "Sodium", English: "Sodium"}, AlkaliMetal, 22.990},
	{12, "Mg", Localized{French: "Magnésium", English: "Magnesium"}, AlkalineEarthMetal, 24.305},
	{13, "Al", Localized{French: "Aluminium", English: "Aluminium"}, PostTransitionMetal, 26.982},
	{14, "Si", Localized{French: "Silicium", English: "Silicon"}, Metalloid, 28.085},
	{15, "P", Localized{French: "Phosphore", English: "Phosphorus"}, Nonmetal, 30.974},
	{16, "S", Localized{French: "Soufre", English: "Sulfur"}, Nonmetal, 32.06},
	{17, "Cl", Localized{French: "Chlore", English: "Chlorine"}, Halogen, 35.45},
	{18, "Ar", Localized{French: "Argon", English: "Argon"}, NobleGas, 39.948},
	{19, "K", Localized{French: "Potassium", English: "Potassium"}, AlkaliMetal, 39.098},
	{20, "Ca", Localized{French: "Calcium", English: "Calcium"}, AlkalineEarthMetal, 40.078},
	{21, "Sc", Localized{French: "Scandium", English: "Scandium"}, TransitionMetal, 44.956},
	{22, "Ti", Localized{French: "Titane", English: "Titanium"}, TransitionMetal, 47.867},
	{23, "V", Localized{French: "Vanadium", English: "Vanadium"}, TransitionMetal, 50.942},
	{24, "Cr", Localized{French: "Chrome", English: "Chromium"}, TransitionMetal, 51.996},
	{25, "Mn", Localized{French: "Manganèse", English: "Manganese"}, TransitionMetal, 54.938},
	{26, "Fe", Localized{French: "Fer", English: "Iron"}, TransitionMetal, 55.845},
	{27, "Co", Localized{French: "Cobalt", English: "Cobalt"}, TransitionMetal, 58.933},
	{28, "Ni", Localized{French: "Nickel", English: "Nickel"}, TransitionMetal, 58.693},
	{29, "Cu", Localized{French: "Cuivre", English: "Copper"}, TransitionMetal, 63.546},
	{30, "Zn", Localized{French: "Zinc", English: "Zinc"}, TransitionMetal, 65.38},
	{31, "Ga", Localized{French: "Gallium", English: "Gallium"}, PostTransitionMetal, 69.723},
	{32, "Ge", Localized{French: "Germanium", English: "Germanium"}, Metalloid, 72.630},
	{33, "As", Localized{French: "Arsenic", English: "Arsenic"}, Metalloid, 74.922},
	{34, "Se", Localized{French: "Sélénium", English: "Selenium"}, Nonmetal, 78.971},
	{35, "Br", Localized{French: "Brome", English: "Bromine"}, Halogen, 79.904},
	{36, "Kr", Localized{French: "Krypton", English: "Krypton"}, NobleGas, 83.798},
	{37, "Rb", Localized{French: "Rubidium", English: "Rubidium"}, AlkaliMetal, 85.468},
	{38, "Sr", Localized{French: "Strontium", English: "Strontium"}, AlkalineEarthMetal, 87.62},
	{39, "Y", Localized{French: "Yttrium", English: "Yttrium"}, TransitionMetal, 88.906},
	{40, "Zr", Localized{French: "Zirconium", English: "Zirconium"}, TransitionMetal, 91.224},
	{41, "Nb", Localized{French: "Niobium", English: "Niobium"}, TransitionMetal, 92.906},
	{42, "Mo", Localized{French: "Molybdène", English: "Molybdenum"}, TransitionMetal, 95.95},
	{43, "Tc", Localized{French: "Technétium", English: "Technetium"}, TransitionMetal, 98},
	{44, "Ru", Localized{French: "Ruthénium", English: "Ruthenium"}, TransitionMetal, 101.07},
	{45, "Rh", Localized{French: "Rhodium", English: "Rhodium"}, TransitionMetal, 102.91},
	{46, "Pd", Localized{French: "Palladium", English: "Palladium"}, TransitionMetal, 106.42},
	{47, "Ag", Localized{French: "Argent", English: "Silver"}, TransitionMetal, 107.87},
	{48, "Cd", Localized{French: "Cadmium", English: "Cadmium"}, TransitionMetal, 112.41},
	{49, "In", Localized{French: "Indium", English: "Indium"}, PostTransitionMetal, 114.82},
	{50, "Sn", Localized{French: "Étain", English: "Tin"}, PostTransitionMetal, 118.71},
	{51, "Sb", Localized{French: "Antimoine", English: "Antimony"}, Metalloid, 121.76},
	{52, "Te", Localized{French: "Tellure", English: "Tellurium"}, Metalloid, 127.60},
	{53, "I", Localized{French: "Iode", English: "Iodine"}, Halogen, 126.90},
	{54, "Xe", Localized{French: "Xénon", English: "Xenon"}, NobleGas, 131.29},
	{55, "Cs", Localized{French: "Césium", English: "Caesium"}, AlkaliMetal, 132.91},
	{56, "Ba", Localized{French: "Baryum", English: "Barium"}, AlkalineEarthMetal, 137.33},
	{57, "La", Localized{French: "Lanthane", English: "Lanthanum"}, Lanthanide, 138.91},
	{58, "Ce", Localized{French: "Cérium", English: "Cerium"}, Lanthanide, 140.12},
	{59, "Pr", Localized{French: "Praséodyme", English: "Praseodymium"}, Lanthanide, 140.91},
	{60, "Nd", Localized{French: "Néodyme", English: "Neodymium"}, Lanthanide, 144.24},
	{61, "Pm", Localized{French: "Prométhium", English: "Promethium"}, Lanthanide, 145},
	{62, "Sm", Localized{French: "Samarium", English: "Samarium"}, Lanthanide, 150.36},
	{63, "Eu", Localized{French: "Europium", English: "Europium"}, Lanthanide, 151.96},
	{64, "Gd", Localized{French: "Gadolinium", English: "Gadolinium"}, Lanthanide, 157.25},
	{65, "Tb", Localized{French: "Terbium", English: "Terbium"}, Lanthanide, 158.93},
	{66, "Dy", Localized{French: "Dysprosium", English: "Dysprosium"}, Lanthanide, 162.50},
	{67, "Ho", Localized{French: "Holmium", English: "Holmium"}, Lanthanide, 164.93},
	{68, "Er", Localized{French: "Erbium", English: "Erbium"}, Lanthanide, 167.26},
	{69, "Tm", Localized{French: "Thulium", English: "Thulium"}, Lanthanide, 168.93},
	{70, "Yb", Localized{French: "Ytterbium", English: "Ytterbium"}, Lanthanide, 173.05},
	{71, "Lu", Localized{French: "Lutécium", English: "Lutetium"}, Lanthanide, 174.97},
	{72, "Hf", Localized{French: "Hafnium", English: "Hafnium"}, TransitionMetal, 178.49},
	{73, "Ta", Localized{French: "Tantale", English: "Tantalum"}, TransitionMetal, 180.95},
	{74, "W", Localized{French: "Tungstène", English: "Tungsten"}, TransitionMetal, 183.84},
	{75, "Re", Localized{French: "Rhénium", English: "Rhenium"}, TransitionMetal, 186.21},
	{76, "Os", Localized{French: "Osmium", English: "Osmium"}, TransitionMetal, 190.23},
	{77, "Ir", Localized{French: "Iridium", English: "Iridium"}, TransitionMetal, 192.22},
	{78, "Pt", Localized{French: "Platine", English: "Platinum"}, TransitionMetal, 195.08},
	{79, "Au", Localized{French: "Or", English: "Gold"}, TransitionMetal, 196.97},
	{80, "Hg", Localized{French: "Mercure", English: "Mercury"}, TransitionMetal, 200.59},
	{81, "Tl", Localized{French: "Thallium", English: "Thallium"}, PostTransitionMetal, 204.38},
	{82, "Pb", Localized{French: "Plomb", English: "Lead"}, PostTransitionMetal, 207.2},
	{83, "Bi", Localized{French: "Bismuth", English: "Bismuth"}, PostTransitionMetal, 208.98},
	{84, "Po", Localized{French: "Polonium", English: "Polonium"}, PostTransitionMetal, 209},
	{85, "At", Localized{French: "Astate", English: "Astatine"}, Halogen, 210},
	{86, "Rn", Localized{French: "Radon", English: "Radon"}, NobleGas, 222},
	{87, "Fr", Localized{French: "Francium", English: "Francium"}, AlkaliMetal, 223},
	{88, "Ra", Localized{French: "Radium", English: "Radium"}, AlkalineEarthMetal, 226},
	{89, "Ac", Localized{French: "Actinium", English: "Actinium"}, Actinide, 227},
	{90, "Th", Localized{French: "Thorium", English: "Thorium"}, Actinide, 232.04},
	{91, "Pa", Localized{French: "Protactinium", English: "Protactinium"}, Actinide, 231.04},
	{92, "U", Localized{French: "Uranium", English: "Uranium"}, Actinide, 238.03},
	{93, "Np", Localized{French: "Neptunium", English: "Neptunium"}, Actinide, 237},
	{94, "Pu", Localized{French: "Plutonium", English: "Plutonium"}, Actinide, 244},
	{95, "Am", Localized{French: "Américium", English: "Americium"}, Actinide, 243},
	{96, "Cm", Localized{French: "Curium", English: "Curium"}, Actinide, 247},
	{97, "Bk", Localized{French: "Berkélium", English: "Berkelium"}, Actinide, 247},
	{98, "Cf", Localized{French: "Californium", English: "Californium"}, Actinide, 251},
	{99, "Es", Localized{French: "Einsteinium", English: "Einsteinium"}, Actinide, 252},
	{100, "Fm", Localized{French: "Fermium", English: "Fermium"}, Actinide, 257},
	{101, "Md", Localized{French: "Mendélévium", English: "Mendelevium"}, Actinide, 258},
	{102, "No", Localized{French: "Nobélium", English: "Nobelium"}, Actinide, 259},
	{103, "Lr", Localized{French: "Lawrencium", English: "Lawrencium"}, Actinide, 266},
	{104, "Rf", Localized{French: "Rutherfordium", English: "Rutherfordium"}, TransitionMetal, 267},
	{105, "Db", Localized{French: "Dubnium", English: "Dubnium"}, TransitionMetal, 268},
	{106, "Sg", Localized{French: "Seaborgium", English: "Seaborgium"}, TransitionMetal, 269},
	{107, "Bh", Localized{French: "Bohrium", English: "Bohrium"}, TransitionMetal, 270},
	{108, "Hs", Localized{French: "Hassium", English: "Hassium"}, TransitionMetal, 277},
	{109, "Mt", Localized{French: "Meitnérium", English: "Meitnerium"}, Unknown, 278},
	{110, "Ds", Localized{French: "Darmstadtium", English: "Darmstadtium"}, Unknown, 281},
	{111, "Rg", Localized{French: "Roentgenium", English: "Roentgenium"}, Unknown, 282},
	{112, "Cn", Localized{French: "Copernicium", English: "Copernicium"}, TransitionMetal, 285},
	{113, "Nh", Localized{French: "Nihonium", English: "Nihonium"}, Unknown, 286},
	{114, "Fl", Localized{French: "Flérovium", English: "Flerovium"}, Unknown, 289},
	{115, "Mc", Localized{French: "Moscovium", English: "Moscovium"}, Unknown, 290},
	{116, "Lv", Localized{French: "Livermorium", English: "Livermorium"}, Unknown, 293},
	{117, "Ts", Localized{French: "Tennesse", English: "Tennessine"}, Unknown, 294},
	{118, "Og", Localized{French: "Oganesson", English: "Oganesson"}, Unknown, 294},
}

var symbolZ = make(map[string]int, MaxZ)

func init() {
	for _, e := range elements {
		symbolZ[strings.ToLower(e.Symbol)] = e.Z
	}
}

//Lookup returns the element with z protons.
func Lookup(z int) (Element, error) {
	if z < 1 || z > MaxZ {
		return Element{}, newError(ErrUnknownElement, "Lookup", "no element with Z=%d", z)
	}
	return elements[z-1], nil
}

//LookupSymbol returns the element with the given symbol. The match
//ignores case, so "na", "Na" and "NA" all give sodium.
func LookupSymbol(symbol string) (Element, error) {
	z, ok := symbolZ[strings.ToLower(strings.TrimSpace(symbol))]
	if !ok {
		return Element{}, newError(ErrUnknownElement, "LookupSymbol", "no element with symbol %q", symbol)
	}
	return elements[z-1], nil
}

//Elements returns a copy of the whole table, ordered by Z.
func Elements() []Element {
	ret := make([]Element, MaxZ)
	copy(ret, elements[:])
	return ret
}
