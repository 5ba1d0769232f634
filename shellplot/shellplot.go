/*
 * shellplot.go, part of atomion.
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

//Package shellplot draws the electron occupancy of atoms and ions as bar charts.
package shellplot

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/JustARandomDevelopper/atomion"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Shelled is anything with an electron configuration, i.e. *atomion.Atom and *atomion.Ion.
type Shelled interface {
	Shells() []atomion.Shell
	Configuration() atomion.Configuration
}

var errNoElectrons = errors.New("shellplot: no electrons to plot")

//The letters used for the shells, from n=1.
const shellLetters = "KLMNOPQ"

//ShellName returns the letter of the shell with principal quantum number n.
func ShellName(n int) string {
	if n < 1 || n > len(shellLetters) {
		return fmt.Sprint(n)
	}
	return shellLetters[n-1 : n]
}

func basicPlot(title, xlabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Electrons"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	return p
}

//ShellPlot writes a PNG bar chart with the electrons in each shell of s to plotname.png
func ShellPlot(s Shelled, title, plotname string) error {
	shells := s.Shells()
	if len(shells) == 0 {
		return errNoElectrons
	}
	values := make(plotter.Values, len(shells))
	names := make([]string, len(shells))
	for i, sh := range shells {
		values[i] = float64(sh.Electrons)
		names[i] = ShellName(sh.N)
	}
	p := basicPlot(title, "Shell")
	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return errors.Wrap(err, "shellplot")
	}
	r, g, b := colors(0, 1)
	bars.Color = color.RGBA{R: r, G: g, B: b, A: 255}
	p.Add(bars)
	p.NominalX(names...)
	return save(p, plotname)
}

//SubshellPlot writes a PNG bar chart with one bar per subshell of s, in
//filling order, colored by subshell type.
func SubshellPlot(s Shelled, title, plotname string) error {
	conf := s.Configuration()
	if len(conf) == 0 {
		return errNoElectrons
	}
	p := basicPlot(title, "Subshell")
	names := make([]string, len(conf))
	const types = "spdf"
	for i, sub := range conf {
		names[i] = fmt.Sprintf("%d%c", sub.N, sub.L)
		//one value per bar, the others are zero so the bars don't pile up.
		values := make(plotter.Values, len(conf))
		values[i] = float64(sub.Electrons)
		bars, err := plotter.NewBarChart(values, vg.Points(12))
		if err != nil {
			return errors.Wrapf(err, "shellplot: subshell %s", names[i])
		}
		r, g, b := colors(strings.IndexByte(types, sub.L), len(types))
		bars.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		bars.LineStyle.Width = 0
		p.Add(bars)
	}
	p.NominalX(names...)
	return save(p, plotname)
}

func save(p *plot.Plot, plotname string) error {
	filename := fmt.Sprintf("%s.png", plotname)
	return errors.Wrapf(p.Save(5*vg.Inch, 5*vg.Inch, filename), "shellplot: saving %s", filename)
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

//colors spreads steps colors over the hue circle, skipping the yellows.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	return iHVS2RGB(h, 1.0, 1.0)
}
