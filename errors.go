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

package pdfgen

import (
	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/graphics"
	"seehuhn.de/go/pdfgen/image"
	"seehuhn.de/go/pdfgen/internal/idmap"
	"seehuhn.de/go/pdfgen/pdf"
)

// Errors returned by the methods of [Document].
// Use [errors.Is] to test for these, or for the error kinds
// [pdf.ValidationError], [pdf.StateError], [pdf.ResourceError],
// [pdf.CodecError] and [pdf.IoError].
var (
	ErrGraphicsStackNotEmpty = &pdf.Error{Kind: pdf.StateError, Msg: "graphics state stack not empty"}
	ErrIsCurrentPage         = &pdf.Error{Kind: pdf.StateError, Msg: "page is the current page"}
	ErrFinalized             = &pdf.Error{Kind: pdf.StateError, Msg: "document already written"}
	ErrNoPage                = &pdf.Error{Kind: pdf.StateError, Msg: "no page"}
	ErrInvalidPage           = &pdf.Error{Kind: pdf.ValidationError, Msg: "invalid page number"}

	ErrDuplicateTag  = idmap.ErrDuplicateTag
	ErrFontNotFound  = font.ErrFontNotFound
	ErrImageNotFound = graphics.ErrImageNotFound

	ErrAlreadyInTextBlock = graphics.ErrAlreadyInTextBlock
	ErrNotInTextBlock     = graphics.ErrNotInTextBlock
	ErrStackUnderflow     = graphics.ErrStackUnderflow
	ErrInPath             = graphics.ErrInPath
	ErrNoPath             = graphics.ErrNoPath

	ErrCorruptImage     = image.ErrCorruptImage
	ErrUnsupportedImage = image.ErrUnsupportedImage
)

func wrap(op string, sentinel *pdf.Error, msg string) error {
	return &pdf.Error{Kind: sentinel.Kind, Op: op, Msg: msg, Err: sentinel}
}
