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

package graphics

import (
	"seehuhn.de/go/pdfgen/pdf"
)

// Errors returned by the [Builder] methods.  All errors returned by a
// Builder wrap one of these.
var (
	ErrAlreadyInTextBlock = &pdf.Error{Kind: pdf.StateError, Msg: "already in text block"}
	ErrNotInTextBlock     = &pdf.Error{Kind: pdf.StateError, Msg: "not in text block"}
	ErrStackUnderflow     = &pdf.Error{Kind: pdf.StateError, Msg: "graphics state stack underflow"}
	ErrInPath             = &pdf.Error{Kind: pdf.StateError, Msg: "path construction in progress"}
	ErrNoPath             = &pdf.Error{Kind: pdf.StateError, Msg: "no current path"}
	ErrNoFont             = &pdf.Error{Kind: pdf.StateError, Msg: "no font selected"}

	ErrImageNotFound = &pdf.Error{Kind: pdf.ResourceError, Msg: "image not found"}
)

func opError(op string, sentinel *pdf.Error) error {
	return &pdf.Error{Kind: sentinel.Kind, Op: op, Err: sentinel}
}

func invalid(op, msg string) error {
	return &pdf.Error{Kind: pdf.ValidationError, Op: op, Msg: msg}
}
