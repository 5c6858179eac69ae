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
)

// Query describes the desired properties of a font.
type Query struct {
	Family string
	Weight int // 0 means 400
	Width  int // 0 means 5
	Italic bool
}

// Match selects the font from candidates which best matches q.
//
// Fonts are selected in the way CSS selects fonts: first, all fonts
// with the wrong family name are discarded.  From the remaining fonts,
// the ones with the closest width are kept, then fonts with the requested
// slant are preferred, and finally the closest weight is chosen.
// The result is nil if no font has the requested family.
func Match(candidates []*Metrics, q Query) *Metrics {
	weight := q.Weight
	if weight == 0 {
		weight = 400
	}
	width := q.Width
	if width == 0 {
		width = 5
	}

	var fonts []*Metrics
	for _, m := range candidates {
		if strings.EqualFold(m.Family, q.Family) {
			fonts = append(fonts, m)
		}
	}
	if len(fonts) == 0 {
		return nil
	}

	fonts = keepBest(fonts, func(m *Metrics) int {
		return widthDistance(width, m.Width)
	})
	fonts = keepBest(fonts, func(m *Metrics) int {
		if m.IsItalic() == q.Italic {
			return 0
		}
		return 1
	})
	fonts = keepBest(fonts, func(m *Metrics) int {
		return weightDistance(weight, m.Weight)
	})
	return fonts[0]
}

// keepBest returns the fonts with the smallest score.  The order of the
// fonts is preserved.
func keepBest(fonts []*Metrics, score func(*Metrics) int) []*Metrics {
	best := -1
	var res []*Metrics
	for _, m := range fonts {
		s := score(m)
		switch {
		case best < 0 || s < best:
			best = s
			res = append(res[:0], m)
		case s == best:
			res = append(res, m)
		}
	}
	return res
}

// widthDistance ranks font widths.  Narrower fonts are preferred for
// normal and condensed requests, wider fonts for expanded requests.
func widthDistance(want, have int) int {
	d := have - want
	switch {
	case d == 0:
		return 0
	case want <= 5 && d < 0, want > 5 && d > 0:
		return 2 * abs(d)
	default:
		return 2*abs(d) + 1
	}
}

// weightDistance ranks font weights as described in the CSS Fonts
// specification, section 5.2.
func weightDistance(want, have int) int {
	if have == want {
		return 0
	}
	d := have - want
	switch {
	case want >= 400 && want <= 500:
		if have > want && have <= 500 {
			return d
		}
		if have < want {
			return 1000 - d
		}
		return 2000 + d
	case want < 400:
		if have < want {
			return -d
		}
		return 1000 + d
	default:
		if have > want {
			return d
		}
		return 1000 - d
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
