/*
 * root.go, part of atomion.
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

//Package cli implements the atomion command line.
package cli

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JustARandomDevelopper/atomion"
	"github.com/JustARandomDevelopper/atomion/internal/log"
)

func Execute() {
	cmd := NewRootCmd(os.Stdout)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//fields are the names accepted by --hide, as in the configuration file.
var fields = []string{"element", "categorie", "proton", "neutron", "electron", "masse", "masse_relative", "couches", "configuration"}

//NewRootCmd builds the command tree, writing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("atomion")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:          "atomion",
		Short:        "atoms, ions and molecules",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.Configure(log.Config{Level: v.GetString("log-level"), Console: true})
		},
	}
	cmd.SetOut(out)

	pf := cmd.PersistentFlags()
	pf.String("config", "", "YAML display configuration file")
	pf.String("lang", "", "display language (fr, en)")
	pf.Bool("calculator", false, "plain ASCII output")
	pf.StringSlice("hide", nil, "fields to hide: "+strings.Join(fields, ", "))
	pf.Bool("json", false, "JSON output")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	for _, name := range []string{"config", "lang", "calculator", "hide", "json", "log-level"} {
		_ = v.BindPFlag(name, pf.Lookup(name))
	}

	cmd.AddCommand(
		newDescribeCmd(v),
		newConfigurationCmd(v),
		newMoleculeCmd(v),
		newTableCmd(v),
		newPlotCmd(v),
		newPipeCmd(v),
	)
	return cmd
}

//displayConfig merges, in increasing priority, the defaults, the
//configuration file and the flags or ATOMION_* variables.
func displayConfig(v *viper.Viper) (atomion.Config, error) {
	c := atomion.DefaultConfig()
	if path := v.GetString("config"); path != "" {
		var err error
		if c, err = atomion.LoadConfig(path); err != nil {
			return atomion.Config{}, err
		}
	}
	if v.IsSet("lang") {
		c.Language = v.GetString("lang")
	}
	if v.IsSet("calculator") {
		c.Calculator = v.GetBool("calculator")
	}
	for _, f := range hiddenFields(v.GetStringSlice("hide")) {
		switch f {
		case "element":
			c.Element = false
		case "categorie":
			c.Category = false
		case "proton":
			c.Proton = false
		case "neutron":
			c.Neutron = false
		case "electron":
			c.Electron = false
		case "masse":
			c.Mass = false
		case "masse_relative":
			c.RelativeMass = false
		case "couches":
			c.Shells = false
		case "configuration":
			c.Configuration = false
		default:
			return atomion.Config{}, errors.WithHintf(errors.Newf("unknown field %q", f), "valid fields: %s", strings.Join(fields, ", "))
		}
	}
	if err := c.Validate(); err != nil {
		return atomion.Config{}, err
	}
	return c, nil
}

//hiddenFields normalizes the --hide values. Values read from
//ATOMION_HIDE arrive unsplit, so commas are handled here too.
func hiddenFields(values []string) []string {
	var ret []string
	for _, v := range values {
		for _, f := range strings.Split(v, ",") {
			if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
				ret = append(ret, f)
			}
		}
	}
	return ret
}

//parseAtom reads a proton count or a symbol. A negative neutrons
//value means the most common isotope.
func parseAtom(arg string, neutrons int) (*atomion.Atom, error) {
	var v interface{} = arg
	if z, err := strconv.Atoi(arg); err == nil {
		v = z
	}
	if neutrons >= 0 {
		return atomion.AtomOf(v, neutrons)
	}
	return atomion.AtomOf(v)
}
