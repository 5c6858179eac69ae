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
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen/pdf"
)

// SetFillColor sets the colour used for filling paths and text.
// Components outside the range [0, 1] are clamped.
//
// This implements the PDF graphics operators "g", "rg" and "k".
func (b *Builder) SetFillColor(c Color) error {
	return b.setColor("SetFillColor", c, false)
}

// SetStrokeColor sets the colour used for stroking paths and text.
// Components outside the range [0, 1] are clamped.
//
// This implements the PDF graphics operators "G", "RG" and "K".
func (b *Builder) SetStrokeColor(c Color) error {
	return b.setColor("SetStrokeColor", c, true)
}

func (b *Builder) setColor(op string, c Color, stroke bool) error {
	if err := b.check(op, objPage|objText); err != nil {
		return err
	}
	if c == nil {
		return invalid(op, "missing colour")
	}
	c = c.Clamp()

	cur := &b.FillColor
	if stroke {
		cur = &b.StrokeColor
	}
	if sameColor(*cur, c) {
		return nil
	}
	*cur = c
	b.emit(colorOp(c, stroke))
	return nil
}

// SetLineWidth sets the line width.
//
// This implements the PDF graphics operator "w".
func (b *Builder) SetLineWidth(width float64) error {
	const op = "SetLineWidth"
	if err := b.check(op, objPage|objText); err != nil {
		return err
	}
	if !isFinite(width) || width < 0 {
		return invalid(op, "invalid line width")
	}
	if nearlyEqual(b.LineWidth, width) {
		return nil
	}
	b.LineWidth = width
	b.emit(width, "w")
	return nil
}

// SetLineCap sets the line cap style.
//
// This implements the PDF graphics operator "J".
func (b *Builder) SetLineCap(cap LineCapStyle) error {
	const op = "SetLineCap"
	if err := b.check(op, objPage|objText); err != nil {
		return err
	}
	if cap > LineCapSquare {
		return invalid(op, "invalid line cap style")
	}
	if b.LineCap == cap {
		return nil
	}
	b.LineCap = cap
	b.emit(int(cap), "J")
	return nil
}

// SetLineJoin sets the line join style.
//
// This implements the PDF graphics operator "j".
func (b *Builder) SetLineJoin(join LineJoinStyle) error {
	const op = "SetLineJoin"
	if err := b.check(op, objPage|objText); err != nil {
		return err
	}
	if join > LineJoinBevel {
		return invalid(op, "invalid line join style")
	}
	if b.LineJoin == join {
		return nil
	}
	b.LineJoin = join
	b.emit(int(join), "j")
	return nil
}

// SetMiterLimit sets the miter limit.  The limit must be at least 1.
//
// This implements the PDF graphics operator "M".
func (b *Builder) SetMiterLimit(limit float64) error {
	const op = "SetMiterLimit"
	if err := b.check(op, objPage|objText); err != nil {
		return err
	}
	if !isFinite(limit) || limit < 1 {
		return invalid(op, "miter limit must be at least 1")
	}
	if nearlyEqual(b.MiterLimit, limit) {
		return nil
	}
	b.MiterLimit = limit
	b.emit(limit, "M")
	return nil
}

// SetDash sets the line dash pattern.  An empty pattern selects solid
// lines.
//
// This implements the PDF graphics operator "d".
func (b *Builder) SetDash(pattern []float64, phase float64) error {
	const op = "SetDash"
	if err := b.check(op, objPage|objText); err != nil {
		return err
	}
	var total float64
	for _, x := range pattern {
		if !isFinite(x) || x < 0 {
			return invalid(op, "invalid dash length")
		}
		total += x
	}
	if len(pattern) > 0 && total == 0 {
		return invalid(op, "dash lengths are all zero")
	}
	if !isFinite(phase) {
		return invalid(op, "invalid dash phase")
	}

	arr := make(pdf.Array, len(pattern))
	for i, x := range pattern {
		arr[i] = pdf.Number(x)
	}
	b.DashPattern = append(b.DashPattern[:0:0], pattern...)
	b.DashPhase = phase
	b.emit(arr, phase, "d")
	return nil
}

// Transform applies the transformation m to the current transformation
// matrix.  Coordinates given after this call are mapped through m first.
//
// This implements the PDF graphics operator "cm".
func (b *Builder) Transform(m matrix.Matrix) error {
	const op = "Transform"
	if err := b.check(op, objPage); err != nil {
		return err
	}
	if !isFinite(m[:]...) {
		return invalid(op, "non-finite matrix entry")
	}
	if m[0]*m[3]-m[1]*m[2] == 0 {
		return invalid(op, "singular matrix")
	}
	b.CTM = m.Mul(b.CTM)
	b.emit(m[0], m[1], m[2], m[3], m[4], m[5], "cm")
	return nil
}

// Translate moves the origin of the coordinate system to (dx, dy).
func (b *Builder) Translate(dx, dy float64) error {
	return b.Transform(matrix.Translate(dx, dy))
}

// Scale scales the coordinate system.
func (b *Builder) Scale(sx, sy float64) error {
	return b.Transform(matrix.Scale(sx, sy))
}

// Rotate rotates the coordinate system counterclockwise by the given
// angle in degrees.
func (b *Builder) Rotate(deg float64) error {
	return b.Transform(rotation(deg))
}

// rotation returns a rotation matrix.  Multiples of 90 degrees give exact
// results.
func rotation(deg float64) matrix.Matrix {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	switch deg {
	case 0:
		return matrix.Identity
	case 90:
		return matrix.Matrix{0, 1, -1, 0, 0, 0}
	case 180:
		return matrix.Matrix{-1, 0, 0, -1, 0, 0}
	case 270:
		return matrix.Matrix{0, -1, 1, 0, 0, 0}
	}
	s, c := math.Sincos(deg * math.Pi / 180)
	return matrix.Matrix{c, s, -s, c, 0, 0}
}
