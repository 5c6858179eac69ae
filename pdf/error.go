// seehuhn.de/go/pdfgen - a library for generating PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

import (
	"errors"
	"strings"
)

// Kind classifies the errors returned by this module.
// Every Kind is itself an error, so that callers can test for a class of
// failures using [errors.Is]:
//
//	if errors.Is(err, pdf.StateError) { ... }
type Kind uint8

// The error kinds.
const (
	// ValidationError indicates an invalid argument, for example an
	// invalid page number or a duplicate tag.
	ValidationError Kind = iota + 1

	// StateError indicates an operation which is not allowed in the
	// current state, for example ending a text block which was never begun.
	StateError

	// ResourceError indicates that a font or image could not be found.
	ResourceError

	// CodecError indicates a malformed or unsupported input file.
	CodecError

	// IoError indicates a failure to read or write a file.
	IoError
)

func (k Kind) Error() string {
	switch k {
	case ValidationError:
		return "validation error"
	case StateError:
		return "state error"
	case ResourceError:
		return "resource error"
	case CodecError:
		return "codec error"
	case IoError:
		return "I/O error"
	default:
		return "unknown error"
	}
}

// Error is the error type used throughout this module.
type Error struct {
	Kind Kind

	// Op is the operation which failed, e.g. "EndText" or "LoadImage".
	// This is optional.
	Op string

	Msg string
	Err error
}

func (e *Error) Error() string {
	var parts []string
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Msg != "" {
		parts = append(parts, e.Msg)
	} else if e.Err == nil {
		parts = append(parts, e.Kind.Error())
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the error kind and, if present, the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Errorf returns a new error of the given kind.
func Errorf(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap returns err annotated with the given kind and operation.
// If err is nil, nil is returned.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of err, or 0 if err was not created by this
// module.
func KindOf(err error) Kind {
	for _, k := range []Kind{ValidationError, StateError, ResourceError, CodecError, IoError} {
		if errors.Is(err, k) {
			return k
		}
	}
	return 0
}
