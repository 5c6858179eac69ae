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

// Package graphics implements the graphics state of a PDF page and a
// builder for PDF content streams.
//
// A [Builder] keeps track of the current graphics state, the text state
// and the nesting of text objects, paths and saved states.  Every method
// which emits an operator first checks that the operator is allowed in
// the current state.  If the check fails, an error is returned and
// neither the state nor the content stream are modified.
//
// Fonts and images are referenced through a [Resources] value, which
// maps font queries and image tags to resource names.
package graphics
