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
	"sync"

	"seehuhn.de/go/geom/rect"
)

// Standard identifies one of the standard PDF fonts which are available
// without a font file.
type Standard string

// The standard fonts supported by this package.  Symbol and ZapfDingbats
// are not included, since they do not use the WinAnsi character set.
const (
	Courier              Standard = "Courier"
	CourierBold          Standard = "Courier-Bold"
	CourierBoldOblique   Standard = "Courier-BoldOblique"
	CourierOblique       Standard = "Courier-Oblique"
	Helvetica            Standard = "Helvetica"
	HelveticaBold        Standard = "Helvetica-Bold"
	HelveticaBoldOblique Standard = "Helvetica-BoldOblique"
	HelveticaOblique     Standard = "Helvetica-Oblique"
	TimesRoman           Standard = "Times-Roman"
	TimesBold            Standard = "Times-Bold"
	TimesBoldItalic      Standard = "Times-BoldItalic"
	TimesItalic          Standard = "Times-Italic"
)

// AllStandard lists all standard fonts.
var AllStandard = []Standard{
	Courier, CourierBold, CourierBoldOblique, CourierOblique,
	Helvetica, HelveticaBold, HelveticaBoldOblique, HelveticaOblique,
	TimesRoman, TimesBold, TimesBoldItalic, TimesItalic,
}

// Metrics returns the font metrics for f.  The returned value is shared
// and must not be modified.
func (f Standard) Metrics() *Metrics {
	return standardMetrics()[f]
}

var standardMetrics = sync.OnceValue(func() map[Standard]*Metrics {
	res := make(map[Standard]*Metrics, len(AllStandard))
	for _, f := range AllStandard {
		res[f] = makeStandard(f, standardInfo[f])
	}
	return res
})

type stdInfo struct {
	ascii []uint16 // codes 32 to 126
	high  []uint16 // codes 128 to 255
	kern  string   // kerning pairs, in AFM notation

	serif, italic, bold bool

	ascent, descent    float64
	capHeight, xHeight float64
	italicAngle        float64
	bbox               rect.Rect
}

func makeStandard(f Standard, info *stdInfo) *Metrics {
	name := string(f)
	m := &Metrics{
		PostScriptName: name,
		Family:         strings.SplitN(name, "-", 2)[0],
		Weight:         400,
		Width:          5,
		Flags:          makeFlags(info.ascii == nil, info.serif, info.italic),
		Kind:           Builtin,
		Ascent:         info.ascent,
		Descent:        info.descent,
		CapHeight:      info.capHeight,
		XHeight:        info.xHeight,
		ItalicAngle:    info.italicAngle,
		BBox:           info.bbox,
	}
	if info.bold {
		m.Weight = 700
	}

	if info.ascii == nil {
		// Courier
		for c := 32; c < 256; c++ {
			if isWinAnsi(byte(c)) {
				m.Widths[c] = 600
			}
		}
	} else {
		for i, w := range info.ascii {
			m.Widths[32+i] = float64(w)
		}
		for i, w := range info.high {
			m.Widths[128+i] = float64(w)
		}
	}
	m.Kern = parseKern(info.kern)

	m.setEncoding(func(code byte) bool { return m.Widths[code] > 0 })
	return m
}

var (
	helveticaBBox            = rect.Rect{LLx: -166, LLy: -225, URx: 1000, URy: 931}
	helveticaObliqueBBox     = rect.Rect{LLx: -170, LLy: -225, URx: 1116, URy: 931}
	helveticaBoldBBox        = rect.Rect{LLx: -170, LLy: -228, URx: 1003, URy: 962}
	helveticaBoldObliqueBBox = rect.Rect{LLx: -174, LLy: -228, URx: 1114, URy: 962}
)

var standardInfo = map[Standard]*stdInfo{
	Courier: {
		ascent: 629, descent: -157, capHeight: 562, xHeight: 426,
		serif: true,
		bbox:  rect.Rect{LLx: -23, LLy: -250, URx: 715, URy: 805},
	},
	CourierBold: {
		ascent: 629, descent: -157, capHeight: 562, xHeight: 439,
		serif: true, bold: true,
		bbox: rect.Rect{LLx: -113, LLy: -250, URx: 749, URy: 801},
	},
	CourierOblique: {
		ascent: 629, descent: -157, capHeight: 562, xHeight: 426,
		serif: true, italic: true, italicAngle: -12,
		bbox: rect.Rect{LLx: -27, LLy: -250, URx: 849, URy: 805},
	},
	CourierBoldOblique: {
		ascent: 629, descent: -157, capHeight: 562, xHeight: 439,
		serif: true, bold: true, italic: true, italicAngle: -12,
		bbox: rect.Rect{LLx: -57, LLy: -250, URx: 869, URy: 801},
	},
	Helvetica: {
		ascii: helveticaASCII, high: helveticaHigh, kern: helveticaKern,
		ascent: 718, descent: -207, capHeight: 718, xHeight: 523,
		bbox: helveticaBBox,
	},
	HelveticaOblique: {
		ascii: helveticaASCII, high: helveticaHigh, kern: helveticaKern,
		ascent: 718, descent: -207, capHeight: 718, xHeight: 523,
		italic: true, italicAngle: -12,
		bbox: helveticaObliqueBBox,
	},
	HelveticaBold: {
		ascii: helveticaBoldASCII, high: helveticaBoldHigh, kern: helveticaBoldKern,
		ascent: 718, descent: -207, capHeight: 718, xHeight: 532,
		bold: true,
		bbox: helveticaBoldBBox,
	},
	HelveticaBoldOblique: {
		ascii: helveticaBoldASCII, high: helveticaBoldHigh, kern: helveticaBoldKern,
		ascent: 718, descent: -207, capHeight: 718, xHeight: 532,
		bold: true, italic: true, italicAngle: -12,
		bbox: helveticaBoldObliqueBBox,
	},
	TimesRoman: {
		ascii: timesRomanASCII, high: timesRomanHigh, kern: timesRomanKern,
		ascent: 683, descent: -217, capHeight: 662, xHeight: 450,
		serif: true,
		bbox:  rect.Rect{LLx: -168, LLy: -218, URx: 1000, URy: 898},
	},
	TimesBold: {
		ascii: timesBoldASCII, high: timesBoldHigh, kern: timesBoldKern,
		ascent: 683, descent: -217, capHeight: 676, xHeight: 461,
		serif: true, bold: true,
		bbox: rect.Rect{LLx: -168, LLy: -218, URx: 1000, URy: 935},
	},
	TimesItalic: {
		ascii: timesItalicASCII, high: timesItalicHigh, kern: timesItalicKern,
		ascent: 683, descent: -217, capHeight: 653, xHeight: 441,
		serif: true, italic: true, italicAngle: -15.5,
		bbox: rect.Rect{LLx: -169, LLy: -217, URx: 1010, URy: 883},
	},
	TimesBoldItalic: {
		ascii: timesBoldItalicASCII, high: timesBoldItalicHigh, kern: timesBoldItalicKern,
		ascent: 683, descent: -217, capHeight: 669, xHeight: 462,
		serif: true, bold: true, italic: true, italicAngle: -15,
		bbox: rect.Rect{LLx: -200, LLy: -218, URx: 996, URy: 921},
	},
}
