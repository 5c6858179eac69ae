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
	"strings"

	"golang.org/x/text/unicode/norm"
)

// TextState holds the text state parameters which affect the width of
// typeset text.
type TextState struct {
	Size             float64 // font size
	CharacterSpacing float64 // extra space after every glyph, in text space units
	WordSpacing      float64 // extra space after every space character
	HorizontalScale  float64 // horizontal scaling factor, 1 is normal width

	// Kern enables pair kerning.
	Kern bool
}

func (ts *TextState) horizontalScale() float64 {
	if ts.HorizontalScale == 0 {
		return 1
	}
	return ts.HorizontalScale
}

// Glyph is a single positioned glyph in a text run.
type Glyph struct {
	Code byte // WinAnsi code, also used as the glyph ID
	Rune rune

	// Kern is the kerning adjustment between the previous glyph and this
	// glyph, in PDF glyph space units.  Negative values move the glyphs
	// closer together.
	Kern float64

	// Advance is the horizontal advance in text space units.  This
	// includes the kerning adjustment.
	Advance float64
}

// Shape converts a string into a sequence of glyphs.  The string is
// normalized to NFC first.  Characters which are not present in the font
// are dropped.
//
// The advance of every glyph is
//
//	(w·s/1000 + k·s/1000 + c + [space] Tw) · h
//
// where w is the glyph width, s the font size, k the kerning adjustment,
// c the character spacing, Tw the word spacing (for the space character
// only) and h the horizontal scaling.  Spacing is also applied after the
// last glyph of the string.
func Shape(m *Metrics, ts TextState, s string) []Glyph {
	hs := ts.horizontalScale()
	q := ts.Size / 1000

	res := make([]Glyph, 0, len(s))
	for _, r := range normalize(s) {
		code, ok := m.Encode(r)
		if !ok {
			continue
		}

		g := Glyph{Code: code, Rune: r}
		if ts.Kern && len(res) > 0 {
			g.Kern = m.Kern[Pair{Left: res[len(res)-1].Code, Right: code}]
		}

		adv := (m.Widths[code]+g.Kern)*q + ts.CharacterSpacing
		if code == ' ' {
			adv += ts.WordSpacing
		}
		g.Advance = adv * hs

		res = append(res, g)
	}
	return res
}

// Width returns the total advance of s in text space units.
func Width(m *Metrics, ts TextState, s string) float64 {
	var w float64
	for _, g := range Shape(m, ts, s) {
		w += g.Advance
	}
	return w
}

// Wrap breaks s into lines which are at most width text space units wide.
// Lines are broken at spaces and at newline characters.  A word which is
// wider than width is put on a line by itself.
func Wrap(m *Metrics, ts TextState, s string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if Width(m, ts, candidate) > width {
				lines = append(lines, line)
				line = word
			} else {
				line = candidate
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func normalize(s string) string {
	return norm.NFC.String(s)
}
