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
)

// MoveTo starts a new subpath at (x, y).
//
// This implements the PDF graphics operator "m".
func (b *Builder) MoveTo(x, y float64) error {
	const op = "MoveTo"
	if err := b.check(op, objPage|objPath); err != nil {
		return err
	}
	if !isFinite(x, y) {
		return invalid(op, "non-finite coordinate")
	}
	b.object = objPath
	b.start = [2]float64{x, y}
	b.cur = b.start
	b.emit(x, y, "m")
	return nil
}

// LineTo appends a straight line segment to the current subpath.
//
// This implements the PDF graphics operator "l".
func (b *Builder) LineTo(x, y float64) error {
	const op = "LineTo"
	if err := b.check(op, objPath); err != nil {
		return err
	}
	if !isFinite(x, y) {
		return invalid(op, "non-finite coordinate")
	}
	b.cur = [2]float64{x, y}
	b.emit(x, y, "l")
	return nil
}

// CurveTo appends a cubic Bezier curve to the current subpath.
// The curve starts at the current point, uses (x1, y1) and (x2, y2) as
// control points and ends at (x3, y3).
//
// This implements the PDF graphics operators "c", "v" and "y".
// The shorter forms are used when a control point coincides with an
// end point.
func (b *Builder) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	const op = "CurveTo"
	if err := b.check(op, objPath); err != nil {
		return err
	}
	if !isFinite(x1, y1, x2, y2, x3, y3) {
		return invalid(op, "non-finite coordinate")
	}
	switch {
	case nearlyEqual(b.cur[0], x1) && nearlyEqual(b.cur[1], y1):
		b.emit(x2, y2, x3, y3, "v")
	case nearlyEqual(x2, x3) && nearlyEqual(y2, y3):
		b.emit(x1, y1, x3, y3, "y")
	default:
		b.emit(x1, y1, x2, y2, x3, y3, "c")
	}
	b.cur = [2]float64{x3, y3}
	return nil
}

// ClosePath closes the current subpath with a straight line back to its
// starting point.
//
// This implements the PDF graphics operator "h".
func (b *Builder) ClosePath() error {
	if err := b.check("ClosePath", objPath); err != nil {
		return err
	}
	b.cur = b.start
	b.emit("h")
	return nil
}

// Rectangle appends a rectangle to the current path as a complete subpath.
// The lower-left corner is (x, y).
//
// This implements the PDF graphics operator "re".
func (b *Builder) Rectangle(x, y, width, height float64) error {
	const op = "Rectangle"
	if err := b.check(op, objPage|objPath); err != nil {
		return err
	}
	if !isFinite(x, y, width, height) {
		return invalid(op, "non-finite coordinate")
	}
	b.object = objPath
	b.start = [2]float64{x, y}
	b.cur = b.start
	b.emit(x, y, width, height, "re")
	return nil
}

// Circle appends a circle with center (x, y) and radius r to the current
// path.
func (b *Builder) Circle(x, y, r float64) error {
	return b.ellipse("Circle", x, y, r, r)
}

// Ellipse appends an axis-parallel ellipse with center (x, y) and radii
// rx and ry to the current path.
func (b *Builder) Ellipse(x, y, rx, ry float64) error {
	return b.ellipse("Ellipse", x, y, rx, ry)
}

// arcK is the distance of the Bezier control points from the end points,
// for the approximation of a quarter circle with radius 1.
var arcK = 4 * (math.Sqrt2 - 1) / 3

// ellipse approximates the ellipse by four cubic Bezier curves,
// starting and ending at (x+rx, y).
func (b *Builder) ellipse(op string, x, y, rx, ry float64) error {
	if err := b.check(op, objPage|objPath); err != nil {
		return err
	}
	if !isFinite(x, y, rx, ry) {
		return invalid(op, "non-finite coordinate")
	}
	if rx < 0 || ry < 0 {
		return invalid(op, "negative radius")
	}

	kx, ky := arcK*rx, arcK*ry
	b.object = objPath
	b.start = [2]float64{x + rx, y}
	b.cur = b.start
	b.emit(x+rx, y, "m")
	b.emit(x+rx, y+ky, x+kx, y+ry, x, y+ry, "c")
	b.emit(x-kx, y+ry, x-rx, y+ky, x-rx, y, "c")
	b.emit(x-rx, y-ky, x-kx, y-ry, x, y-ry, "c")
	b.emit(x+kx, y-ry, x+rx, y-ky, x+rx, y, "c")
	b.emit("h")
	return nil
}

// PaintOptions describe how a path is painted.
type PaintOptions struct {
	// Close closes the current subpath before painting.
	Close bool

	Fill   bool
	Stroke bool

	// EvenOdd selects the even-odd rule for filling.  By default the
	// nonzero winding number rule is used.
	EvenOdd bool
}

// paintOp returns the path painting operator for the given options.
// If the path is neither filled nor stroked, "n" is used, which ends the
// path without painting it.
func paintOp(opt PaintOptions) string {
	switch {
	case opt.Fill && opt.Stroke:
		return ifelse(opt.EvenOdd, "B*", "B")
	case opt.Fill:
		return ifelse(opt.EvenOdd, "f*", "f")
	case opt.Stroke:
		return "S"
	default:
		return "n"
	}
}

// Paint ends the current path and paints it.
//
// This implements the PDF graphics operators "S", "f", "f*", "B", "B*"
// and "n", optionally preceded by "h".
func (b *Builder) Paint(opt PaintOptions) error {
	if err := b.check("Paint", objPath); err != nil {
		return err
	}
	if opt.Close {
		b.emit("h")
	}
	b.emit(paintOp(opt))
	b.object = objPage
	return nil
}

// Stroke strokes the current path.
func (b *Builder) Stroke() error {
	return b.Paint(PaintOptions{Stroke: true})
}

// Fill fills the current path, using the nonzero winding number rule.
func (b *Builder) Fill() error {
	return b.Paint(PaintOptions{Fill: true})
}
