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

// Package pdf implements the PDF value model and the low-level file writer.
//
// The value types ([Bool], [Integer], [Number], [Name], [String], [UTF16],
// [Array], [Dict], [Reference] and [Raw]) know how to serialize themselves.
// A [Writer] assigns object numbers, records byte offsets, compresses
// streams and finally emits the cross-reference table and the trailer.
//
// Errors returned by this module are of type [*Error] and carry a [Kind]
// which can be tested using [errors.Is].
package pdf
