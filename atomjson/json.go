/*
 * json.go, part of atomion.
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

package atomjson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/JustARandomDevelopper/atomion"
	"github.com/klauspost/compress/zstd"
)

//A ready-to-serialize container for a subshell.
type Subshell struct {
	N         int
	L         string
	Electrons int
}

//A ready-to-serialize container for an atom or a mono-atomic ion.
type Atom struct {
	Symbol        string
	Name          string
	Category      string
	Z             int
	Neutrons      int
	Electrons     int
	A             int
	Charge        int
	Mass          float64
	RelativeMass  float64
	Shells        []int
	Configuration []Subshell
}

//A ready-to-serialize container for any atomion.Species.
type Species struct {
	Kind         string //atom, ion, molecule or polyion
	Notation     string
	Formula      string `json:",omitempty"`
	Charge       int
	Mass         float64
	RelativeMass float64
	Atom         *Atom  `json:",omitempty"` //for atoms and mono-atomic ions
	Atoms        []Atom `json:",omitempty"` //for molecules and poly-atomic ions
}

//An easily JSON-serializable error type,
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InRequest     bool //If error, was it in parsing the request?
	InProcess     bool
	InPostProcess bool   //was it in preparing the output?
	Function      string //which go function gave the error
	Message       string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//Takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "request":
		jerr.InRequest = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	jerr.deco = []string{function}
	return jerr
}

func fromNucleus(n interface {
	Element() atomion.Element
	Protons() int
	Neutrons() int
	Electrons() int
	Nucleons() int
	Mass() float64
	RelativeMass() float64
	Shells() []atomion.Shell
	Configuration() atomion.Configuration
}, c atomion.Config) *Atom {
	e := n.Element()
	at := &Atom{
		Symbol:       e.Symbol,
		Name:         e.Name.In(c),
		Category:     e.Category.Name().In(c),
		Z:            n.Protons(),
		Neutrons:     n.Neutrons(),
		Electrons:    n.Electrons(),
		A:            n.Nucleons(),
		Charge:       n.Protons() - n.Electrons(),
		Mass:         n.Mass(),
		RelativeMass: n.RelativeMass(),
	}
	for _, s := range n.Shells() {
		at.Shells = append(at.Shells, s.Electrons)
	}
	for _, s := range n.Configuration() {
		at.Configuration = append(at.Configuration, Subshell{N: s.N, L: string(s.L), Electrons: s.Electrons})
	}
	return at
}

func fromAtoms(atoms []*atomion.Atom, c atomion.Config) []Atom {
	ret := make([]Atom, len(atoms))
	for i, a := range atoms {
		ret[i] = *fromNucleus(a, c)
	}
	return ret
}

//FromSpecies builds the container for s. Names and categories are
//given in the language of c.
func FromSpecies(s atomion.Species, c atomion.Config) (*Species, *Error) {
	ret := &Species{Notation: s.Notation(), Mass: s.Mass(), RelativeMass: s.RelativeMass()}
	switch t := s.(type) {
	case *atomion.Atom:
		ret.Kind = "atom"
		ret.Atom = fromNucleus(t, c)
	case *atomion.Ion:
		ret.Kind = "ion"
		ret.Atom = fromNucleus(t, c)
		ret.Charge = t.Charge()
	case *atomion.Molecule:
		ret.Kind = "molecule"
		ret.Formula = t.Formula(c)
		ret.Atoms = fromAtoms(t.Atoms(), c)
	case *atomion.PolyIon:
		ret.Kind = "polyion"
		ret.Formula = t.Formula(c)
		ret.Charge = t.Charge()
		ret.Atoms = fromAtoms(t.Atoms(), c)
	default:
		return nil, NewError("postprocess", "FromSpecies", fmt.Errorf("unsupported type %T", s))
	}
	return ret, nil
}

//Information to be passed back to the calling program.
type Info struct {
	Species []*Species
	Errors  []*Error `json:",omitempty"`
}

//Send Marshals the info and writes to out, returns an error or nil
func (J *Info) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(J); err != nil {
		return NewError("postprocess", "Info.Send", err)
	}
	return nil
}

//Request describes the species an external program wants. Either Symbol
//or Z must be given. Neutrons selects an isotope; Electrons, if different
//from Z, gives an ion.
type Request struct {
	Symbol    string
	Z         int
	Neutrons  *int
	Electrons *int
}

//Build returns the atom or ion described by R.
func (R *Request) Build() (atomion.Species, *Error) {
	const funcname = "Request.Build"
	z := R.Z
	if R.Symbol != "" {
		e, err := atomion.LookupSymbol(R.Symbol)
		if err != nil {
			return nil, NewError("request", funcname, err)
		}
		z = e.Z
	}
	var at *atomion.Atom
	var err error
	if R.Neutrons != nil {
		at, err = atomion.NewIsotope(z, *R.Neutrons)
	} else {
		at, err = atomion.NewAtom(z)
	}
	if err != nil {
		return nil, NewError("process", funcname, err)
	}
	if R.Electrons == nil || *R.Electrons == z {
		return at, nil
	}
	ion, err := at.Add(atomion.Electron(*R.Electrons - z))
	if err != nil {
		return nil, NewError("process", funcname, err)
	}
	return ion, nil
}

//DecodeRequest Decodes one line of the stream into a Request.
func DecodeRequest(stdin *bufio.Reader) (*Request, *Error) {
	line, err := stdin.ReadBytes('\n')
	if err != nil && len(line) == 0 {
		return nil, NewError("request", "DecodeRequest", err)
	}
	ret := new(Request)
	if err := json.Unmarshal(line, ret); err != nil {
		return nil, NewError("request", "DecodeRequest", err)
	}
	return ret, nil
}

//NewWriter returns a writer for out, which zstd-compresses the data if
//compress is true. The writer must be closed to flush it.
func NewWriter(out io.Writer, compress bool) (io.WriteCloser, error) {
	if !compress {
		return nopCloser{out}, nil
	}
	return zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
}

//NewReader returns a reader for in, decompressing it if compressed is true.
func NewReader(in io.Reader, compressed bool) (io.ReadCloser, error) {
	if !compressed {
		return io.NopCloser(in), nil
	}
	r, err := zstd.NewReader(in)
	if err != nil {
		return nil, err
	}
	return r.IOReadCloser(), nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
