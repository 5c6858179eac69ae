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

// Package pdfgen generates PDF documents.
//
// A [Document] collects pages, fonts, images and metadata.  Drawing
// happens on the [graphics.Builder] of the current page, which is
// returned by [Document.Canvas].  When the document is complete,
// [Document.Write] or [Document.WriteFile] serializes it as a PDF file.
//
// A minimal document:
//
//	doc, err := pdfgen.New(nil)
//	if err != nil { ... }
//	_, err = doc.NewPage(nil)
//	page, _ := doc.Canvas()
//	page.BeginText()
//	page.SetFont(font.Query{Family: "Helvetica"}, 64)
//	page.TextAt(25, 700, "Hello, World!", nil)
//	page.EndText()
//	err = doc.WriteFile("hello.pdf")
//
// A Document is not safe for concurrent use.  Fonts can be shared between
// documents by passing the same [font.Registry] in the [Options].
package pdfgen
