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

package graphics

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/pdfgen/internal/float"
	"seehuhn.de/go/pdfgen/pdf"
)

// Color is a colour in one of the device colour spaces.
// The types implementing this interface are [Gray], [RGB] and [CMYK].
type Color interface {
	// Clamp returns the colour with every component limited to the
	// range [0, 1].
	Clamp() Color

	// Components returns the colour components.
	Components() []float64

	// operator returns the PDF operator which sets the colour.
	operator(stroke bool) string
}

// Gray is a colour in the DeviceGray colour space.
// 0 is black and 1 is white.
type Gray float64

// Clamp implements the [Color] interface.
func (c Gray) Clamp() Color {
	return Gray(clamp(float64(c)))
}

// Components implements the [Color] interface.
func (c Gray) Components() []float64 {
	return []float64{float64(c)}
}

func (c Gray) operator(stroke bool) string {
	return ifelse(stroke, "G", "g")
}

// RGB is a colour in the DeviceRGB colour space.
type RGB struct {
	R, G, B float64
}

// Clamp implements the [Color] interface.
func (c RGB) Clamp() Color {
	return RGB{clamp(c.R), clamp(c.G), clamp(c.B)}
}

// Components implements the [Color] interface.
func (c RGB) Components() []float64 {
	return []float64{c.R, c.G, c.B}
}

func (c RGB) operator(stroke bool) string {
	return ifelse(stroke, "RG", "rg")
}

// CMYK is a colour in the DeviceCMYK colour space.
type CMYK struct {
	C, M, Y, K float64
}

// Clamp implements the [Color] interface.
func (c CMYK) Clamp() Color {
	return CMYK{clamp(c.C), clamp(c.M), clamp(c.Y), clamp(c.K)}
}

// Components implements the [Color] interface.
func (c CMYK) Components() []float64 {
	return []float64{c.C, c.M, c.Y, c.K}
}

func (c CMYK) operator(stroke bool) string {
	return ifelse(stroke, "K", "k")
}

// colorOp formats the operator which sets c as the fill or stroke colour.
func colorOp(c Color, stroke bool) string {
	parts := make([]string, 0, 5)
	for _, x := range c.Components() {
		parts = append(parts, float.Number(x))
	}
	parts = append(parts, c.operator(stroke))
	return strings.Join(parts, " ")
}

func sameColor(a, b Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ca, cb := a.Components(), b.Components()
	if len(ca) != len(cb) || a.operator(false) != b.operator(false) {
		return false
	}
	for i := range ca {
		if !nearlyEqual(ca[i], cb[i]) {
			return false
		}
	}
	return true
}

// ParseColor converts a colour specification to an RGB colour.
// The specification is either a CSS colour name like "darkred",
// or a hexadecimal colour of the form "#rgb" or "#rrggbb".
func ParseColor(s string) (RGB, error) {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		var r, g, b uint64
		var err error
		switch len(hex) {
		case 3:
			var v uint64
			v, err = strconv.ParseUint(hex, 16, 12)
			r, g, b = (v>>8)*17, (v>>4&15)*17, (v&15)*17
		case 6:
			var v uint64
			v, err = strconv.ParseUint(hex, 16, 24)
			r, g, b = v>>16, v>>8&255, v&255
		default:
			err = strconv.ErrSyntax
		}
		if err != nil {
			return RGB{}, &pdf.Error{Kind: pdf.ValidationError, Op: "ParseColor",
				Msg: fmt.Sprintf("invalid colour %q", s)}
		}
		return RGB{float64(r) / 255, float64(g) / 255, float64(b) / 255}, nil
	}

	col, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return RGB{}, &pdf.Error{Kind: pdf.ValidationError, Op: "ParseColor",
			Msg: fmt.Sprintf("unknown colour %q", s)}
	}
	return RGB{float64(col.R) / 255, float64(col.G) / 255, float64(col.B) / 255}, nil
}
