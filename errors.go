/*
 * errors.go, part of atomion.
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

import "fmt"

//Kind identifies the class of an atomion error. The Kind values
//themselves satisfy the error interface, so they can be used as
//targets for errors.Is.
type Kind string

func (k Kind) Error() string { return string(k) }

const (
	ErrIncompatibleOperand      = Kind("atomion: incompatible operands")
	ErrIncompatibleType         = Kind("atomion: incompatible type")
	ErrUnknownElement           = Kind("atomion: unknown element")
	ErrUnsupportedConfiguration = Kind("atomion: unsupported electron configuration")
	ErrInvalidCount             = Kind("atomion: invalid particle count")
)

//Error is the error type returned by the functions of this package.
//The Decorate method allows to add the names of the functions the error
//went through, without changing its type or wrapping it.
type Error struct {
	kind    Kind
	message string
	deco    []string
}

func newError(kind Kind, caller string, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...), deco: []string{caller}}
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	if err.message == "" {
		return err.kind.Error()
	}
	return err.kind.Error() + ": " + err.message
}

//Kind returns the class of the error.
func (err *Error) Kind() Kind { return err.kind }

//Is reports whether target is the Kind of err.
func (err *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == err.kind
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. An empty dec just returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//errDecorate decorates err with the caller's name if it is an *Error,
//and returns it.
func errDecorate(err error, caller string) error {
	if e, ok := err.(*Error); ok {
		e.Decorate(caller)
	}
	return err
}
