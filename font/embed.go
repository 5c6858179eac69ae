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

package font

import (
	"seehuhn.de/go/pdfgen/pdf"
)

// Embed writes the font dictionary to a PDF file, using the given
// reference.  For fonts other than the builtin fonts, the font descriptor
// and, if available, the font program are written as well.
func (m *Metrics) Embed(w *pdf.Writer, ref pdf.Reference) error {
	dict := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name(m.PostScriptName),
		"Encoding": pdf.Name("WinAnsiEncoding"),
	}
	if m.Kind == Builtin {
		_, err := w.Put(ref, dict)
		return err
	}

	if m.Kind == TrueType {
		dict["Subtype"] = pdf.Name("TrueType")
	}

	var present [256]bool
	for _, code := range m.Encoding {
		present[code] = true
	}
	first, last := m.codeRange()
	widths := make(pdf.Array, 0, int(last)-int(first)+1)
	for c := int(first); c <= int(last); c++ {
		if present[c] {
			widths = append(widths, pdf.Number(m.Widths[c]))
		} else {
			widths = append(widths, pdf.Integer(0))
		}
	}
	fdRef := w.Alloc()
	dict["FirstChar"] = pdf.Integer(first)
	dict["LastChar"] = pdf.Integer(last)
	dict["Widths"] = widths
	dict["FontDescriptor"] = fdRef
	_, err := w.Put(ref, dict)
	if err != nil {
		return err
	}

	fd := m.descriptor()
	var fileRef pdf.Reference
	if m.FontFile != nil {
		fileRef = w.Alloc()
		switch m.Kind {
		case TrueType:
			fd["FontFile2"] = fileRef
		case OpenType:
			fd["FontFile3"] = fileRef
		}
	}
	_, err = w.Put(fdRef, fd)
	if err != nil {
		return err
	}

	if fileRef != 0 {
		fileDict := pdf.Dict{}
		switch m.Kind {
		case TrueType:
			fileDict["Length1"] = pdf.Integer(len(m.FontFile))
		case OpenType:
			fileDict["Subtype"] = pdf.Name("OpenType")
		}
		_, err = w.PutStream(fileRef, fileDict, m.FontFile)
		if err != nil {
			return err
		}
	}
	return nil
}

// descriptor returns the font descriptor dictionary.
// See section 9.8 of PDF 32000-1:2008.
func (m *Metrics) descriptor() pdf.Dict {
	stemV := 70
	if m.IsBold() {
		stemV = 120
	}
	fd := pdf.Dict{
		"Type":        pdf.Name("FontDescriptor"),
		"FontName":    pdf.Name(m.PostScriptName),
		"Flags":       pdf.Integer(m.Flags),
		"FontBBox":    pdf.Rectangle(m.BBox.LLx, m.BBox.LLy, m.BBox.URx, m.BBox.URy),
		"ItalicAngle": pdf.Number(m.ItalicAngle),
		"Ascent":      pdf.Number(m.Ascent),
		"Descent":     pdf.Number(m.Descent),
		"CapHeight":   pdf.Number(m.CapHeight),
		"StemV":       pdf.Integer(stemV),
		"FontWeight":  pdf.Integer(m.Weight),
	}
	if m.Family != "" {
		fd["FontFamily"] = pdf.Text(m.Family)
	}
	if m.XHeight != 0 {
		fd["XHeight"] = pdf.Number(m.XHeight)
	}
	return fd
}
