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
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript/afm"
	"seehuhn.de/go/postscript/type1/names"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/pdfgen/pdf"
)

// LoadFile reads font metrics from a file.  Both AFM files and
// TrueType/OpenType font files are supported; the format is determined
// from the file contents.
func LoadFile(path string) (*Metrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &pdf.Error{Kind: pdf.IoError, Op: "LoadFont", Err: err}
	}

	switch {
	case isSFNT(data):
		return LoadTrueType(data)
	case bytes.HasPrefix(data, []byte("StartFontMetrics")):
		return LoadAFM(bytes.NewReader(data))
	default:
		return nil, &pdf.Error{Kind: pdf.CodecError, Op: "LoadFont",
			Msg: "unknown font format", Err: ErrInvalidFont}
	}
}

func isSFNT(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	switch string(data[:4]) {
	case "\x00\x01\x00\x00", "true", "OTTO":
		return true
	}
	return false
}

func invalidFont(op string, err error) error {
	return &pdf.Error{Kind: pdf.CodecError, Op: op,
		Err: fmt.Errorf("%w: %w", ErrInvalidFont, err)}
}

// LoadAFM reads font metrics from an Adobe Font Metrics file.
// The resulting font is used without embedding the font program.
func LoadAFM(r io.Reader) (*Metrics, error) {
	info, err := afm.Read(r)
	if err != nil {
		return nil, invalidFont("LoadAFM", err)
	}
	if info.FontName == "" {
		return nil, &pdf.Error{Kind: pdf.CodecError, Op: "LoadAFM",
			Msg: "missing FontName", Err: ErrInvalidFont}
	}

	weight, width, italic := styleFromName(info.FontName)
	italic = italic || info.ItalicAngle != 0
	m := &Metrics{
		PostScriptName: info.FontName,
		Family:         strings.SplitN(info.FontName, "-", 2)[0],
		Weight:         weight,
		Width:          width,
		Flags:          makeFlags(info.IsFixedPitch, false, italic),
		Kind:           Type1,
		Ascent:         float64(info.Ascent),
		Descent:        float64(info.Descent),
		CapHeight:      float64(info.CapHeight),
		XHeight:        float64(info.XHeight),
		ItalicAngle:    float64(info.ItalicAngle),
		Kern:           make(map[Pair]float64),
	}

	var present [256]bool
	nameCode := make(map[string]byte)
	first := true
	for name, g := range info.Glyphs {
		bbox := g.BBox
		if bbox.LLx != bbox.URx && bbox.LLy != bbox.URy {
			if first {
				m.BBox = bbox
				first = false
			} else {
				m.BBox = rect.Rect{
					LLx: math.Min(m.BBox.LLx, bbox.LLx),
					LLy: math.Min(m.BBox.LLy, bbox.LLy),
					URx: math.Max(m.BBox.URx, bbox.URx),
					URy: math.Max(m.BBox.URy, bbox.URy),
				}
			}
		}

		rr := []rune(names.ToUnicode(name, info.FontName))
		if len(rr) != 1 {
			continue
		}
		code, ok := charmap.Windows1252.EncodeRune(rr[0])
		if !ok || !isWinAnsi(code) {
			continue
		}
		m.Widths[code] = float64(g.WidthX)
		present[code] = true
		nameCode[name] = code
	}

	for _, k := range info.Kern {
		left, ok1 := nameCode[k.Left]
		right, ok2 := nameCode[k.Right]
		if !ok1 || !ok2 || k.Adjust == 0 {
			continue
		}
		m.Kern[Pair{Left: left, Right: right}] = float64(k.Adjust)
	}

	m.setEncoding(func(code byte) bool { return present[code] })
	return m, nil
}

// styleFromName guesses weight, width and slant from a PostScript font
// name like "Helvetica-BoldOblique".
func styleFromName(psName string) (weight, width int, italic bool) {
	weight, width = 400, 5
	_, style, found := strings.Cut(psName, "-")
	if !found {
		return weight, width, false
	}
	style = strings.ToLower(style)

	for _, w := range []struct {
		key    string
		weight int
	}{
		{"thin", 100},
		{"extralight", 200},
		{"ultralight", 200},
		{"light", 300},
		{"medium", 500},
		{"semibold", 600},
		{"demibold", 600},
		{"demi", 600},
		{"extrabold", 800},
		{"ultrabold", 800},
		{"bold", 700},
		{"black", 900},
		{"heavy", 900},
	} {
		if strings.Contains(style, w.key) {
			weight = w.weight
			break
		}
	}

	switch {
	case strings.Contains(style, "condensed"), strings.Contains(style, "narrow"):
		width = 3
	case strings.Contains(style, "expanded"), strings.Contains(style, "extended"):
		width = 7
	}

	italic = strings.Contains(style, "italic") || strings.Contains(style, "oblique")
	return weight, width, italic
}

// LoadTrueType reads a TrueType or OpenType font.  The font file is
// embedded into PDF files which use the font.
func LoadTrueType(data []byte) (*Metrics, error) {
	ttf, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, invalidFont("LoadTrueType", err)
	}
	cmap, err := ttf.CMapTable.GetBest()
	if err != nil {
		return nil, invalidFont("LoadTrueType", err)
	}

	var kind Kind
	switch {
	case ttf.IsGlyf():
		kind = TrueType
	case ttf.IsCFF():
		kind = OpenType
	default:
		return nil, &pdf.Error{Kind: pdf.CodecError, Op: "LoadTrueType",
			Msg: "unsupported glyph outlines", Err: ErrInvalidFont}
	}

	q := 1000 / float64(ttf.UnitsPerEm)
	weight := int(ttf.Weight)
	if weight == 0 {
		weight = 400
		if ttf.IsBold {
			weight = 700
		}
	}
	width := int(ttf.Width)
	if width == 0 {
		width = 5
	}

	m := &Metrics{
		PostScriptName: ttf.PostScriptName(),
		Family:         ttf.FamilyName,
		Weight:         weight,
		Width:          width,
		Flags:          makeFlags(ttf.IsFixedPitch(), ttf.IsSerif, ttf.IsItalic),
		Kind:           kind,
		Ascent:         math.Round(float64(ttf.Ascent) * q),
		Descent:        math.Round(float64(ttf.Descent) * q),
		CapHeight:      math.Round(float64(ttf.CapHeight) * q),
		XHeight:        math.Round(float64(ttf.XHeight) * q),
		ItalicAngle:    ttf.ItalicAngle,
		BBox:           ttf.FontBBoxPDF(),
		FontFile:       data,
	}

	var present [256]bool
	for c := 32; c < 256; c++ {
		code := byte(c)
		if !isWinAnsi(code) {
			continue
		}
		gid := cmap.Lookup(charmap.Windows1252.DecodeByte(code))
		if gid == 0 {
			continue
		}
		m.Widths[c] = math.Round(ttf.GlyphWidthPDF(gid))
		present[c] = true
	}
	m.setEncoding(func(code byte) bool { return present[code] })

	m.Kern, err = trueTypeKern(ttf, &present)
	if err != nil {
		return nil, invalidFont("LoadTrueType", err)
	}

	return m, nil
}

// trueTypeKern extracts the kerning pairs for the WinAnsi character set
// from the "kern" feature of the GPOS table.  Legacy "kern" tables are
// converted to GPOS lookups by the sfnt package.
func trueTypeKern(ttf *sfnt.Font, present *[256]bool) (map[Pair]float64, error) {
	kern := make(map[Pair]float64)
	if ttf.Gpos == nil {
		return kern, nil
	}

	layouter, err := ttf.NewLayouter(language.Und,
		map[string]bool{}, map[string]bool{"kern": true})
	if err != nil {
		return nil, err
	}

	q := 1000 / float64(ttf.UnitsPerEm)
	var codes []byte
	for c := 32; c < 256; c++ {
		if present[c] {
			codes = append(codes, byte(c))
		}
	}
	pair := make([]rune, 2)
	for _, left := range codes {
		pair[0] = charmap.Windows1252.DecodeByte(left)
		for _, right := range codes {
			pair[1] = charmap.Windows1252.DecodeByte(right)
			seq := layouter.Layout(string(pair))
			if len(seq) != 2 {
				continue
			}
			delta := float64(seq[0].Advance) - ttf.GlyphWidth(seq[0].GID)
			if delta == 0 {
				continue
			}
			kern[Pair{Left: left, Right: right}] = math.Round(delta * q)
		}
	}
	return kern, nil
}
