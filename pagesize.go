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

package pdfgen

import (
	"fmt"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// Size is a page size in PDF points (1/72 inch).
type Size struct {
	Width  float64 `validate:"gte=0"`
	Height float64 `validate:"gte=0"`
}

// IsZero reports whether s is the zero size, which stands for "unset".
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Rect returns the page rectangle, with the lower left corner at the
// origin.
func (s Size) Rect() rect.Rect {
	return rect.Rect{URx: s.Width, URy: s.Height}
}

// Orient returns the size, with width and height swapped if needed to
// achieve the given orientation.
func (s Size) Orient(o Orientation) Size {
	switch {
	case o == Landscape && s.Height > s.Width:
		return Size{s.Height, s.Width}
	case o == Portrait && s.Width > s.Height:
		return Size{s.Height, s.Width}
	default:
		return s
	}
}

// Orientation selects between portrait and landscape pages.
type Orientation uint8

// Possible values for Orientation.
const (
	// AsGiven leaves page sizes unchanged.
	AsGiven Orientation = iota

	// Portrait pages are at least as high as they are wide.
	Portrait

	// Landscape pages are at least as wide as they are high.
	Landscape
)

func (o Orientation) String() string {
	switch o {
	case AsGiven:
		return "as given"
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// Common page sizes, in portrait orientation.
var (
	A4     = Size{595.28, 841.89}
	A5     = Size{419.53, 595.28}
	Letter = Size{612, 792}
	Legal  = Size{612, 1008}
)

// pageSizes lists the named page sizes.  ISO sizes are rounded to
// 0.01 points.
var pageSizes = map[string]Size{
	"A0":  {2383.94, 3370.39},
	"A1":  {1683.78, 2383.94},
	"A2":  {1190.55, 1683.78},
	"A3":  {841.89, 1190.55},
	"A4":  A4,
	"A5":  A5,
	"A6":  {297.64, 419.53},
	"A7":  {209.76, 297.64},
	"A8":  {147.4, 209.76},
	"A9":  {104.88, 147.4},
	"A10": {73.7, 104.88},
	"B0":  {2834.65, 4008.19},
	"B1":  {2004.09, 2834.65},
	"B2":  {1417.32, 2004.09},
	"B3":  {1000.63, 1417.32},
	"B4":  {708.66, 1000.63},
	"B5":  {498.9, 708.66},
	"B6":  {354.33, 498.9},
	"B7":  {249.45, 354.33},
	"B8":  {175.75, 249.45},
	"B9":  {124.72, 175.75},
	"B10": {87.87, 124.72},

	"C5E":       {459.21, 649.13},
	"Comm10E":   {297, 684},
	"DLE":       {311.81, 623.62},
	"Executive": {522, 756},
	"Folio":     {612, 936},
	"Ledger":    {1224, 792},
	"Legal":     Legal,
	"Letter":    Letter,
	"Tabloid":   {792, 1224},
}

// PageSize returns the named page size.  Names are case-insensitive.
func PageSize(name string) (Size, bool) {
	if s, ok := pageSizes[name]; ok {
		return s, true
	}
	for key, s := range pageSizes {
		if strings.EqualFold(key, name) {
			return s, true
		}
	}
	return Size{}, false
}
