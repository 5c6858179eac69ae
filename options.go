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
	"errors"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/pdf"
)

// NoCompression can be used as the value of [Options.Compression] to
// disable stream compression.
const NoCompression = -1

const (
	defaultCompression = 6
	defaultProducer    = "seehuhn.de/go/pdfgen"
)

// Options control the creation of a new document.
// The zero value selects the defaults.
type Options struct {
	// Version is the PDF version written into the file header.
	// The default is PDF 1.7.
	Version pdf.Version

	// Compression is the zlib compression level used for content
	// streams and images, between 1 and 9.  The value 0 selects the
	// default level 6, [NoCompression] disables compression.
	Compression int `validate:"min=-1,max=9"`

	// PageSize is the default page size.  The default is A4.
	PageSize Size

	// Orientation is applied to the default page size.
	Orientation Orientation `validate:"lte=2"`

	// Rotation is the default page rotation in degrees.
	Rotation int `validate:"oneof=0 90 180 270"`

	// Language is the natural language of the document text, as a BCP 47
	// language tag like "en-GB".  If set, it is written to the document
	// catalog.
	Language string `validate:"omitempty,bcp47_language_tag"`

	// XMP enables the XMP metadata stream, which duplicates the
	// document information dictionary.
	XMP bool

	// Fonts is the font registry used for font selection.  If this is
	// nil, a new registry with the standard fonts is used.
	Fonts *font.Registry

	// Logger receives debug messages and warnings.  If this is nil,
	// nothing is logged.
	Logger *slog.Logger
}

// PageOptions describe a new page.
type PageOptions struct {
	// Number is the page number.  Page numbers start at 1.  If this is
	// zero, the page is added after the last existing page.
	Number int `validate:"gte=0"`

	// Size is the page size.  If this is zero, the default page size of
	// the document is used.
	Size Size

	// Orientation is applied to the page size.
	Orientation Orientation `validate:"lte=2"`

	// Rotation is the page rotation in degrees.  If this is zero, the
	// default rotation of the document is used.
	Rotation int `validate:"oneof=0 90 180 270"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// check validates a configuration struct.
func check(op string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, len(verrs))
		for i, fe := range verrs {
			msgs[i] = fe.Error()
		}
		return &pdf.Error{Kind: pdf.ValidationError, Op: op, Msg: strings.Join(msgs, "; ")}
	}
	return &pdf.Error{Kind: pdf.ValidationError, Op: op, Err: err}
}

// languageTag returns the canonical form of a BCP 47 tag.
func languageTag(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, &pdf.Error{Kind: pdf.ValidationError, Op: "New", Err: err}
	}
	return tag, nil
}
