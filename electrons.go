/*
 * electrons.go, part of atomion.
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

import "sort"

//Subshell is a filled (or partially filled) subshell of an electron
//configuration: N is the principal quantum number, L the subshell label
//('s', 'p', 'd' or 'f').
type Subshell struct {
	N         int
	L         byte
	Electrons int
}

//Shell is the total number of electrons with principal quantum number N.
type Shell struct {
	N         int
	Electrons int
}

//Configuration is an electron configuration, in filling order.
type Configuration []Subshell

const subshellLabels = "spdf"

//Capacity returns the maximum number of electrons the subshell can hold.
func (s Subshell) Capacity() int {
	return subshellCapacity(s.azimuthal())
}

func (s Subshell) azimuthal() int {
	for i := 0; i < len(subshellLabels); i++ {
		if subshellLabels[i] == s.L {
			return i
		}
	}
	panic("atomion: invalid subshell label " + string(s.L))
}

func subshellCapacity(l int) int {
	return 2 * (2*l + 1)
}

//The subshells in Madelung order, up to the last one
//occupied by a known element (7p).
var madelung = madelungOrder(7, 8)

//madelungOrder lists the subshells with n <= maxN and n+l <= maxNL,
//sorted by n+l and then by n.
func madelungOrder(maxN, maxNL int) []Subshell {
	var order []Subshell
	for n := 1; n <= maxN; n++ {
		for l := 0; l < n && l < len(subshellLabels); l++ {
			if n+l > maxNL {
				break
			}
			order = append(order, Subshell{N: n, L: subshellLabels[l], Electrons: subshellCapacity(l)})
		}
	}
	sort.Slice(order, func(i, j int) bool {
		ei := order[i].N + order[i].azimuthal()
		ej := order[j].N + order[j].azimuthal()
		if ei != ej {
			return ei < ej
		}
		return order[i].N < order[j].N
	})
	return order
}

//MaxElectrons is the largest number of electrons Configure can place.
var MaxElectrons = func() int {
	total := 0
	for _, s := range madelung {
		total += s.Electrons
	}
	return total
}()

//Configure distributes electrons over the subshells following the
//Madelung rule. Every subshell is filled to capacity before the next
//one is started, so only the last one can be partial.
//Zero electrons give an empty configuration.
func Configure(electrons int) (Configuration, error) {
	if electrons < 0 {
		return nil, newError(ErrInvalidCount, "Configure", "%d electrons", electrons)
	}
	if electrons > MaxElectrons {
		return nil, newError(ErrUnsupportedConfiguration, "Configure", "%d electrons, at most %d supported", electrons, MaxElectrons)
	}
	conf := make(Configuration, 0, len(madelung))
	left := electrons
	for _, s := range madelung {
		if left == 0 {
			break
		}
		if left < s.Electrons {
			s.Electrons = left
		}
		left -= s.Electrons
		conf = append(conf, s)
	}
	return conf, nil
}

//Total returns the number of electrons in the configuration.
func (c Configuration) Total() int {
	total := 0
	for _, s := range c {
		total += s.Electrons
	}
	return total
}

//Shells sums the electrons of each principal quantum number,
//in increasing N.
func (c Configuration) Shells() []Shell {
	var maxn int
	for _, s := range c {
		if s.N > maxn {
			maxn = s.N
		}
	}
	shells := make([]Shell, maxn)
	for i := range shells {
		shells[i].N = i + 1
	}
	for _, s := range c {
		shells[s.N-1].Electrons += s.Electrons
	}
	return shells
}
