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
	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdfgen/pdf"
)

// Kind describes where the font program of a font comes from.
type Kind uint8

// These are the supported kinds of fonts.
const (
	// Builtin fonts are one of the standard PDF fonts.  These are
	// provided by the PDF viewer and are never embedded.
	Builtin Kind = iota + 1

	// Type1 fonts are described by an AFM file.  The font program is not
	// embedded, and the PDF viewer must find or substitute it.
	Type1

	// TrueType fonts have "glyf" outlines and are embedded as /FontFile2.
	TrueType

	// OpenType fonts have CFF outlines and are embedded as /FontFile3.
	OpenType
)

func (k Kind) String() string {
	switch k {
	case Builtin:
		return "builtin"
	case Type1:
		return "Type1"
	case TrueType:
		return "TrueType"
	case OpenType:
		return "OpenType"
	default:
		return "unknown"
	}
}

// Pair is a pair of glyphs, used as the key for kerning information.
type Pair struct {
	Left, Right byte
}

// Metrics holds the information about a font which is needed to lay out
// text and to reference the font from a PDF file.
//
// Glyphs are identified by their WinAnsi code.  All lengths are given in
// PDF glyph space units, i.e. 1/1000 of the font size.
//
// A Metrics value must not be modified after it has been added to a
// [Registry] or a document.
type Metrics struct {
	PostScriptName string
	Family         string
	Weight         int // 100 (thin) to 900 (black), 400 is normal
	Width          int // 1 (ultra-condensed) to 9 (ultra-expanded), 5 is normal
	Flags          Flags
	Kind           Kind

	Ascent      float64
	Descent     float64 // negative
	CapHeight   float64
	XHeight     float64
	ItalicAngle float64 // degrees, counter-clockwise from vertical
	BBox        rect.Rect

	// Widths gives the advance width of every glyph.
	Widths [256]float64

	// Kern gives the kerning adjustment for pairs of glyphs.  Negative
	// values move the glyphs closer together.
	Kern map[Pair]float64

	// Encoding maps runes to glyphs.  Only glyphs which are present in the
	// font are included.
	Encoding map[rune]byte

	// FontFile is the font program to embed into the PDF file, or nil.
	FontFile []byte
}

// IsItalic reports whether the font is an italic or oblique font.
func (m *Metrics) IsItalic() bool {
	return m.Flags&FlagItalic != 0
}

// IsFixedPitch reports whether all glyphs have the same width.
func (m *Metrics) IsFixedPitch() bool {
	return m.Flags&FlagFixedPitch != 0
}

// IsBold reports whether the font weight is bold or heavier.
func (m *Metrics) IsBold() bool {
	return m.Weight >= 600
}

// Encode returns the glyph used to represent r.
func (m *Metrics) Encode(r rune) (byte, bool) {
	code, ok := m.Encoding[r]
	return code, ok
}

// Missing returns the runes of s which cannot be represented in the font,
// in order of first occurrence.
func (m *Metrics) Missing(s string) []rune {
	var res []rune
	seen := make(map[rune]bool)
	for _, r := range normalize(s) {
		if _, ok := m.Encoding[r]; ok || seen[r] {
			continue
		}
		seen[r] = true
		res = append(res, r)
	}
	return res
}

// codeRange returns the smallest and largest code present in the font.
func (m *Metrics) codeRange() (first, last byte) {
	first, last = 255, 0
	for _, code := range m.Encoding {
		first = min(first, code)
		last = max(last, code)
	}
	if first > last {
		first, last = 32, 32
	}
	return first, last
}

// setEncoding fills in the Encoding map from the list of codes which have
// a glyph in the font.
func (m *Metrics) setEncoding(present func(code byte) bool) {
	m.Encoding = make(map[rune]byte)
	for c := 32; c < 256; c++ {
		code := byte(c)
		if !isWinAnsi(code) || !present(code) {
			continue
		}
		m.Encoding[charmap.Windows1252.DecodeByte(code)] = code
	}
	if _, ok := m.Encoding['\u00a0']; !ok && present(32) {
		m.Encoding['\u00a0'] = 32
	}
}

// isWinAnsi reports whether code is assigned a character in the WinAnsi
// encoding.
func isWinAnsi(code byte) bool {
	switch code {
	case 127, 129, 141, 143, 144, 157:
		return false
	}
	return code >= 32
}

var (
	// ErrFontNotFound indicates that no font matches a query.
	ErrFontNotFound = &pdf.Error{Kind: pdf.ResourceError, Msg: "font not found"}

	// ErrInvalidFont indicates a malformed font file.
	ErrInvalidFont = &pdf.Error{Kind: pdf.CodecError, Msg: "invalid font"}
)
