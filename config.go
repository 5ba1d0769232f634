/*
 * config.go, part of atomion.
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
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//Config holds the display preferences used by the text renderings.
//It is passed explicitly to the functions that need it; DefaultConfig
//gives the values used when no Config is supplied.
//The YAML keys are the ones historically used by atomion.
type Config struct {
	Language      string `yaml:"langue" validate:"required,bcp47_language_tag"`
	Calculator    bool   `yaml:"calculatrice"` //plain ASCII output, for calculators that lack the glyphs.
	Element       bool   `yaml:"element"`
	Category      bool   `yaml:"categorie"`
	Proton        bool   `yaml:"proton"`
	Neutron       bool   `yaml:"neutron"`
	Electron      bool   `yaml:"electron"`
	Mass          bool   `yaml:"masse"`
	RelativeMass  bool   `yaml:"masse_relative"`
	Shells        bool   `yaml:"couches"`
	Configuration bool   `yaml:"configuration"`
}

//DefaultConfig returns a French, non-calculator configuration that shows every field.
func DefaultConfig() Config {
	return Config{
		Language:      "fr",
		Element:       true,
		Category:      true,
		Proton:        true,
		Neutron:       true,
		Electron:      true,
		Mass:          true,
		RelativeMass:  true,
		Shells:        true,
		Configuration: true,
	}
}

var validate = validator.New()

//Validate checks that the configuration can be used.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "atomion: invalid configuration")
	}
	return nil
}

//ParseConfig reads a YAML document. Keys absent from the document
//keep their DefaultConfig value.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrap(err, "atomion: parsing configuration")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

//LoadConfig reads the YAML configuration file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "atomion: reading configuration %s", path)
	}
	c, err := ParseConfig(data)
	if err != nil {
		return Config{}, errors.WithDetailf(err, "file: %s", path)
	}
	return c, nil
}

//Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

var supportedLanguages = []language.Tag{language.French, language.English}

var languageMatcher = language.NewMatcher(supportedLanguages)

//Tag returns the supported language closest to c.Language.
//Unparseable or unsupported languages give French.
func (c Config) Tag() language.Tag {
	_, idx, _ := languageMatcher.Match(language.Make(c.Language))
	return supportedLanguages[idx]
}

func (c Config) english() bool {
	return c.Tag() == language.English
}

func (c Config) printer() *message.Printer {
	return message.NewPrinter(c.Tag())
}

//Localized is a text available in every supported language.
type Localized struct {
	French  string `json:"fr"`
	English string `json:"en"`
}

//In returns the text in the language selected by c.
func (l Localized) In(c Config) string {
	if c.english() {
		return l.English
	}
	return l.French
}
