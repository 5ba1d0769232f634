/*
 * commands.go, part of atomion.
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

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JustARandomDevelopper/atomion"
	"github.com/JustARandomDevelopper/atomion/atomjson"
	"github.com/JustARandomDevelopper/atomion/internal/log"
	"github.com/JustARandomDevelopper/atomion/shellplot"
)

//buildSpecies returns the atom for arg, turned into an ion when
//electrons is non-negative and differs from the proton count.
func buildSpecies(arg string, neutrons, electrons int) (atomion.Species, error) {
	at, err := parseAtom(arg, neutrons)
	if err != nil {
		return nil, err
	}
	if electrons < 0 || electrons == at.Electrons() {
		return at, nil
	}
	return at.Add(atomion.Electron(electrons - at.Electrons()))
}

//emit writes s as text, or as JSON when --json is given.
func emit(v *viper.Viper, out io.Writer, c atomion.Config, species ...atomion.Species) error {
	if !v.GetBool("json") {
		for _, s := range species {
			if _, err := fmt.Fprintln(out, s.Describe(c)); err != nil {
				return err
			}
		}
		return nil
	}
	info := new(atomjson.Info)
	for _, s := range species {
		js, jerr := atomjson.FromSpecies(s, c)
		if jerr != nil {
			return jerr
		}
		info.Species = append(info.Species, js)
	}
	if jerr := info.Send(out); jerr != nil {
		return jerr
	}
	return nil
}

func newDescribeCmd(v *viper.Viper) *cobra.Command {
	var neutrons, electrons int
	cmd := &cobra.Command{
		Use:   "describe <Z|symbol>",
		Short: "describe an atom or a mono-atomic ion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.WithComponent("describe")
			c, err := displayConfig(v)
			if err != nil {
				return err
			}
			s, err := buildSpecies(args[0], neutrons, electrons)
			if err != nil {
				return err
			}
			logger.Debug().Str("species", s.String()).Msg("built")
			return emit(v, cmd.OutOrStdout(), c, s)
		},
	}
	cmd.Flags().IntVarP(&neutrons, "neutrons", "n", -1, "neutron count (default: most common isotope)")
	cmd.Flags().IntVarP(&electrons, "electrons", "e", -1, "electron count (default: neutral atom)")
	return cmd
}

func newConfigurationCmd(v *viper.Viper) *cobra.Command {
	var electrons int
	cmd := &cobra.Command{
		Use:   "configuration <Z|symbol>",
		Short: "print the electron configuration and the shells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := displayConfig(v)
			if err != nil {
				return err
			}
			s, err := buildSpecies(args[0], -1, electrons)
			if err != nil {
				return err
			}
			var conf, shells string
			switch t := s.(type) {
			case *atomion.Atom:
				conf, shells = t.ConfigurationNotation(c), t.ShellNotation(c)
			case *atomion.Ion:
				conf, shells = t.ConfigurationNotation(c), t.ShellNotation(c)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", conf, shells)
			return err
		},
	}
	cmd.Flags().IntVarP(&electrons, "electrons", "e", -1, "electron count (default: neutral atom)")
	return cmd
}

//parseTerm reads "O", "8" or "H*2".
func parseTerm(term string) (*atomion.Atom, int, error) {
	count := 1
	if i := strings.LastIndexByte(term, '*'); i >= 0 {
		n, err := strconv.Atoi(term[i+1:])
		if err != nil {
			return nil, 0, errors.Wrapf(err, "bad count in %q", term)
		}
		count = n
		term = term[:i]
	}
	at, err := parseAtom(term, -1)
	return at, count, err
}

func newMoleculeCmd(v *viper.Viper) *cobra.Command {
	var charge int
	cmd := &cobra.Command{
		Use:   "molecule <term>...",
		Short: "assemble a molecule from atoms, e.g. molecule H*2 O",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.WithComponent("molecule")
			c, err := displayConfig(v)
			if err != nil {
				return err
			}
			mol := atomion.NewMolecule()
			for _, term := range args {
				at, n, err := parseTerm(term)
				if err != nil {
					return err
				}
				part, err := at.Mul(n)
				if err != nil {
					return err
				}
				s, err := mol.Add(part)
				if err != nil {
					return err
				}
				mol = s.(*atomion.Molecule)
				logger.Debug().Str("term", term).Int("atoms", mol.Len()).Msg("added")
			}
			if charge != 0 {
				return emit(v, cmd.OutOrStdout(), c, mol.Charge(charge))
			}
			return emit(v, cmd.OutOrStdout(), c, mol)
		},
	}
	cmd.Flags().IntVarP(&charge, "charge", "q", 0, "net charge, for a poly-atomic ion")
	return cmd
}

func newTableCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "list the elements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := displayConfig(v)
			if err != nil {
				return err
			}
			if v.GetBool("json") {
				species := make([]atomion.Species, 0, atomion.MaxZ)
				for _, e := range atomion.Elements() {
					at, err := atomion.NewAtom(e.Z)
					if err != nil {
						return err
					}
					species = append(species, at)
				}
				return emit(v, cmd.OutOrStdout(), c, species...)
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, e := range atomion.Elements() {
				name := e.Name.In(c)
				if c.Calculator {
					name = atomion.ToASCII(name)
				}
				fmt.Fprintf(w, "%3d %-2s %-14s %g\n", e.Z, e.Symbol, name, e.RelativeMass)
			}
			return w.Flush()
		},
	}
}

func newPlotCmd(v *viper.Viper) *cobra.Command {
	var output string
	var subshells bool
	var electrons int
	cmd := &cobra.Command{
		Use:   "plot <Z|symbol>",
		Short: "draw the shell occupancy as a PNG bar chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.WithComponent("plot")
			s, err := buildSpecies(args[0], -1, electrons)
			if err != nil {
				return err
			}
			shelled, ok := s.(shellplot.Shelled)
			if !ok {
				return errors.Newf("can't plot %s", s)
			}
			if output == "" {
				output = s.Notation()
				output = strings.ReplaceAll(output, " ", "_")
			}
			title := s.String()
			if subshells {
				err = shellplot.SubshellPlot(shelled, title, output)
			} else {
				err = shellplot.ShellPlot(shelled, title, output)
			}
			if err != nil {
				return errors.Wrap(err, "plotting")
			}
			logger.Info().Str("file", output+".png").Msg("plot written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file name, without the .png extension")
	cmd.Flags().BoolVar(&subshells, "subshells", false, "one bar per subshell instead of per shell")
	cmd.Flags().IntVarP(&electrons, "electrons", "e", -1, "electron count (default: neutral atom)")
	return cmd
}

func newPipeCmd(v *viper.Viper) *cobra.Command {
	var compress, compressedIn bool
	cmd := &cobra.Command{
		Use:   "pipe",
		Short: "read JSON requests, one per line, and answer with a single JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := log.WithComponent("pipe")
			c, err := displayConfig(v)
			if err != nil {
				return err
			}
			r, err := atomjson.NewReader(cmd.InOrStdin(), compressedIn)
			if err != nil {
				return errors.Wrap(err, "reading requests")
			}
			defer r.Close()
			in := bufio.NewReader(r)
			info := new(atomjson.Info)
			for {
				b, err := in.Peek(1)
				if err == io.EOF {
					break
				}
				if err != nil {
					info.Errors = append(info.Errors, atomjson.NewError("request", "pipe", err))
					break
				}
				//blank lines between requests are ignored.
				if unicode.IsSpace(rune(b[0])) {
					_, _ = in.ReadByte()
					continue
				}
				req, jerr := atomjson.DecodeRequest(in)
				if jerr != nil {
					info.Errors = append(info.Errors, jerr)
					continue
				}
				s, jerr := req.Build()
				if jerr != nil {
					logger.Warn().Str("error", jerr.Message).Msg("request failed")
					info.Errors = append(info.Errors, jerr)
					continue
				}
				js, jerr := atomjson.FromSpecies(s, c)
				if jerr != nil {
					info.Errors = append(info.Errors, jerr)
					continue
				}
				info.Species = append(info.Species, js)
			}
			w, err := atomjson.NewWriter(cmd.OutOrStdout(), compress)
			if err != nil {
				return err
			}
			if jerr := info.Send(w); jerr != nil {
				w.Close()
				return jerr
			}
			return w.Close()
		},
	}
	cmd.Flags().BoolVar(&compress, "zstd", false, "zstd-compress the output")
	cmd.Flags().BoolVar(&compressedIn, "zstd-in", false, "the requests are zstd-compressed")
	return cmd
}
