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

// Package font provides font metrics and text shaping for simple PDF fonts.
//
// All fonts handled by this package use the WinAnsi encoding, and the glyph
// identifier of a character is its WinAnsi code.  This allows up to 256
// glyphs per font, which is enough for most western European text.
//
// # Loading fonts
//
// The following sources of font metrics are supported:
//   - The Helvetica, Times and Courier families of the standard PDF fonts
//     (see [Standard]).  No font file is required for these.
//   - Adobe Font Metrics files, see [LoadAFM].  The font program is not
//     embedded into the PDF file.
//   - TrueType and OpenType fonts, see [LoadTrueType].  The font file is
//     embedded into the PDF file.
//
// Fonts can be collected in a [Registry], which is safe for concurrent use
// and allows to look up fonts by name or by a CSS-like [Query].
//
// # Text shaping
//
// [Shape] converts a string into a sequence of glyphs, using the widths and
// kerning information of the font and the spacing parameters from a
// [TextState].
package font
