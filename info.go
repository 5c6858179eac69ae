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
	"fmt"
	"time"

	"seehuhn.de/go/pdfgen/pdf"
)

// InfoField names an entry of the document information dictionary.
type InfoField string

// The supported fields.  CreationDate and ModDate take [time.Time] values,
// all other fields take strings.
const (
	Title        InfoField = "Title"
	Author       InfoField = "Author"
	Subject      InfoField = "Subject"
	Keywords     InfoField = "Keywords"
	Creator      InfoField = "Creator"
	Producer     InfoField = "Producer"
	CreationDate InfoField = "CreationDate"
	ModDate      InfoField = "ModDate"
)

// Info represents a PDF Document Information Dictionary.
//
// All fields in this structure are optional.  The zero value represents
// an empty information dictionary.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Creator gives the name of the application that created the original
	// document, if the document was converted to PDF from another format.
	Creator string

	// Producer gives the name of the application that produced the PDF.
	Producer string

	CreationDate time.Time
	ModDate      time.Time
}

// SetInfo sets an entry of the document information dictionary.
// Setting a string field to "" or a date to the zero time removes the
// entry.
func (d *Document) SetInfo(field InfoField, value any) error {
	const op = "SetInfo"
	if d.finalized {
		return wrap(op, ErrFinalized, "")
	}

	var target *string
	switch field {
	case Title:
		target = &d.info.Title
	case Author:
		target = &d.info.Author
	case Subject:
		target = &d.info.Subject
	case Keywords:
		target = &d.info.Keywords
	case Creator:
		target = &d.info.Creator
	case Producer:
		target = &d.info.Producer
	case CreationDate, ModDate:
		t, ok := value.(time.Time)
		if !ok {
			return typeError(field, "time.Time", value)
		}
		if field == CreationDate {
			d.info.CreationDate = t
		} else {
			d.info.ModDate = t
		}
		return nil
	default:
		return &pdf.Error{Kind: pdf.ValidationError, Op: op,
			Msg: fmt.Sprintf("unknown field %q", field)}
	}

	s, ok := value.(string)
	if !ok {
		return typeError(field, "string", value)
	}
	*target = s
	return nil
}

func typeError(field InfoField, want string, value any) error {
	return &pdf.Error{Kind: pdf.ValidationError, Op: "SetInfo",
		Msg: fmt.Sprintf("%s needs a %s value, not %T", field, want, value)}
}

// GetInfo returns a copy of the document information.
func (d *Document) GetInfo() Info {
	return d.info
}

// AsDict returns the information dictionary.  Empty fields are omitted.
func (info *Info) AsDict() pdf.Dict {
	dict := pdf.Dict{}
	text := func(key pdf.Name, s string) {
		if s != "" {
			dict[key] = pdf.Text(s)
		}
	}
	text("Title", info.Title)
	text("Author", info.Author)
	text("Subject", info.Subject)
	text("Keywords", info.Keywords)
	text("Creator", info.Creator)
	text("Producer", info.Producer)
	if !info.CreationDate.IsZero() {
		dict["CreationDate"] = pdf.Date(info.CreationDate)
	}
	if !info.ModDate.IsZero() {
		dict["ModDate"] = pdf.Date(info.ModDate)
	}
	return dict
}
