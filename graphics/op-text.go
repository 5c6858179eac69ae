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

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/pdf"
)

// BeginText starts a new text object.
// The text matrix and the text line matrix are reset to the identity.
//
// This implements the PDF graphics operator "BT".
func (b *Builder) BeginText() error {
	if err := b.check("BeginText", objPage); err != nil {
		return err
	}
	b.object = objText
	b.Text.Matrix = matrix.Identity
	b.Text.LineMatrix = matrix.Identity
	b.emit("BT")
	return nil
}

// EndText ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (b *Builder) EndText() error {
	if err := b.check("EndText", objText); err != nil {
		return err
	}
	b.object = objPage
	b.emit("ET")
	return nil
}

// SetFont selects the font which best matches q, at the given size.
// The character spacing, word spacing, horizontal scaling and text rise
// are reset to their defaults and the leading is set to 1.2 times the
// font size.
//
// This implements the PDF graphics operator "Tf".
func (b *Builder) SetFont(q font.Query, size float64) error {
	const op = "SetFont"
	if err := b.check(op, objText); err != nil {
		return err
	}
	if !isFinite(size) || size <= 0 {
		return invalid(op, "font size must be positive")
	}
	if b.res == nil {
		return opError(op, font.ErrFontNotFound)
	}
	id, m, err := b.res.Font(q)
	if err != nil {
		return err
	}

	old := b.Text
	b.Text.Font = m
	b.Text.FontID = id
	b.Text.Size = size
	b.Text.resetSpacing()

	b.emit(fontName(id), size, "Tf")
	if old.CharacterSpacing != 0 {
		b.emit(0, "Tc")
	}
	if old.WordSpacing != 0 {
		b.emit(0, "Tw")
	}
	if old.HorizontalScale != 100 {
		b.emit(100, "Tz")
	}
	if old.Rise != 0 {
		b.emit(0, "Ts")
	}
	if !nearlyEqual(old.Leading, b.Text.Leading) {
		b.emit(b.Text.Leading, "TL")
	}
	return nil
}

func fontName(id int) pdf.Name {
	return pdf.Name(fmt.Sprintf("F%d", id))
}

// SetCharacterSpacing sets the extra space added after every glyph.
//
// This implements the PDF graphics operator "Tc".
func (b *Builder) SetCharacterSpacing(spacing float64) error {
	return b.setTextParam("SetCharacterSpacing", &b.Text.CharacterSpacing, spacing, "Tc")
}

// SetWordSpacing sets the extra space added after every space character.
//
// This implements the PDF graphics operator "Tw".
func (b *Builder) SetWordSpacing(spacing float64) error {
	return b.setTextParam("SetWordSpacing", &b.Text.WordSpacing, spacing, "Tw")
}

// SetLeading sets the distance between baselines of consecutive lines.
//
// This implements the PDF graphics operator "TL".
func (b *Builder) SetLeading(leading float64) error {
	return b.setTextParam("SetLeading", &b.Text.Leading, leading, "TL")
}

// SetRise sets the distance of the baseline above its default position.
//
// This implements the PDF graphics operator "Ts".
func (b *Builder) SetRise(rise float64) error {
	return b.setTextParam("SetRise", &b.Text.Rise, rise, "Ts")
}

// SetHorizontalScale sets the horizontal scaling of glyphs, in percent.
// The value 100 gives normal width glyphs.
//
// This implements the PDF graphics operator "Tz".
func (b *Builder) SetHorizontalScale(percent float64) error {
	if percent == 0 {
		return invalid("SetHorizontalScale", "horizontal scale must be non-zero")
	}
	return b.setTextParam("SetHorizontalScale", &b.Text.HorizontalScale, percent, "Tz")
}

func (b *Builder) setTextParam(op string, field *float64, value float64, operator string) error {
	if err := b.check(op, objPage|objText); err != nil {
		return err
	}
	if !isFinite(value) {
		return invalid(op, "non-finite value")
	}
	if *field == value {
		return nil
	}
	*field = value
	b.emit(value, operator)
	return nil
}

// SetRenderingMode sets the text rendering mode.
//
// This implements the PDF graphics operator "Tr".
func (b *Builder) SetRenderingMode(mode TextRenderingMode) error {
	const op = "SetRenderingMode"
	if err := b.check(op, objPage|objText); err != nil {
		return err
	}
	if mode > 7 {
		return invalid(op, "invalid text rendering mode")
	}
	if b.Text.RenderingMode == mode {
		return nil
	}
	b.Text.RenderingMode = mode
	b.emit(int(mode), "Tr")
	return nil
}

// MoveText starts a new line, offset by (dx, dy) from the start of the
// current line.
//
// This implements the PDF graphics operator "Td".
func (b *Builder) MoveText(dx, dy float64) error {
	const op = "MoveText"
	if err := b.check(op, objText); err != nil {
		return err
	}
	if !isFinite(dx, dy) {
		return invalid(op, "non-finite offset")
	}
	b.Text.LineMatrix = matrix.Translate(dx, dy).Mul(b.Text.LineMatrix)
	b.Text.Matrix = b.Text.LineMatrix
	b.emit(dx, dy, "Td")
	return nil
}

// NextLine moves to the start of the next line, using the current leading.
//
// This implements the PDF graphics operator "T*".
func (b *Builder) NextLine() error {
	if err := b.check("NextLine", objText); err != nil {
		return err
	}
	b.Text.LineMatrix = matrix.Translate(0, -b.Text.Leading).Mul(b.Text.LineMatrix)
	b.Text.Matrix = b.Text.LineMatrix
	b.emit("T*")
	return nil
}

// SetTextMatrix replaces the text matrix and the text line matrix.
//
// This implements the PDF graphics operator "Tm".
func (b *Builder) SetTextMatrix(m matrix.Matrix) error {
	const op = "SetTextMatrix"
	if err := b.check(op, objText); err != nil {
		return err
	}
	if !isFinite(m[:]...) {
		return invalid(op, "non-finite matrix entry")
	}
	b.setTextMatrix(m)
	return nil
}

func (b *Builder) setTextMatrix(m matrix.Matrix) {
	b.Text.Matrix = m
	b.Text.LineMatrix = m
	b.emit(m[0], m[1], m[2], m[3], m[4], m[5], "Tm")
}

// ShowText draws a string at the current text position, using the
// current font.  Characters which are not available in the font are
// skipped.
//
// This implements the PDF graphics operator "Tj".
func (b *Builder) ShowText(s string) error {
	return b.showText("ShowText", s, false)
}

// ShowTextKerned is like [Builder.ShowText], but applies the kerning
// pairs of the font.
//
// This implements the PDF graphics operator "TJ".
func (b *Builder) ShowTextKerned(s string) error {
	return b.showText("ShowTextKerned", s, true)
}

func (b *Builder) showText(op, s string, kern bool) error {
	if err := b.checkFont(op); err != nil {
		return err
	}
	b.show(s, kern)
	return nil
}

// checkFont verifies that text can be shown.
func (b *Builder) checkFont(op string) error {
	if err := b.check(op, objText); err != nil {
		return err
	}
	if b.Text.Font == nil {
		return opError(op, ErrNoFont)
	}
	return nil
}

// show emits the operator which shows s and advances the text matrix.
func (b *Builder) show(s string, kern bool) {
	m := b.Text.Font
	if missing := m.Missing(s); len(missing) > 0 {
		b.log.Warn("characters not in font",
			"font", m.PostScriptName, "missing", string(missing))
	}

	glyphs := font.Shape(m, b.Text.shaping(kern), s)

	var advance float64
	for _, g := range glyphs {
		advance += g.Advance
	}

	if !kern {
		codes := make(pdf.String, len(glyphs))
		for i, g := range glyphs {
			codes[i] = g.Code
		}
		b.emit(codes, "Tj")
	} else {
		var run pdf.Array
		var cur pdf.String
		for _, g := range glyphs {
			if g.Kern != 0 && len(cur) > 0 {
				run = append(run, cur, pdf.Number(-g.Kern))
				cur = nil
			}
			cur = append(cur, g.Code)
		}
		if len(cur) > 0 || len(run) == 0 {
			run = append(run, cur)
		}
		b.emit(run, "TJ")
	}

	b.Text.Matrix = matrix.Translate(advance, 0).Mul(b.Text.Matrix)
}

// Align describes the horizontal alignment of text.
type Align uint8

// Possible values for Align.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// offset returns the distance of the anchor point from the start of a
// text run with the given width.
func (a Align) offset(width float64) float64 {
	switch a {
	case AlignCenter:
		return width / 2
	case AlignRight:
		return width
	default:
		return 0
	}
}

// TextOptions control [Builder.TextAt] and [Builder.TextLines].
type TextOptions struct {
	Align Align

	// Kern enables pair kerning.
	Kern bool

	// Fill and Stroke select the text rendering mode.  If both are false,
	// the text is invisible.
	Fill   bool
	Stroke bool
}

var defaultTextOptions = &TextOptions{Fill: true}

// TextAt draws a string with the given anchor point.
// If opt is nil, the text is filled and left aligned, without kerning.
func (b *Builder) TextAt(x, y float64, s string, opt *TextOptions) error {
	const op = "TextAt"
	if err := b.checkFont(op); err != nil {
		return err
	}
	if !isFinite(x, y) {
		return invalid(op, "non-finite coordinate")
	}
	if opt == nil {
		opt = defaultTextOptions
	}
	b.textAt(x, y, s, opt)
	return nil
}

func (b *Builder) textAt(x, y float64, s string, opt *TextOptions) {
	if opt.Align != AlignLeft {
		x -= opt.Align.offset(font.Width(b.Text.Font, b.Text.shaping(opt.Kern), s))
	}
	b.setTextMatrix(matrix.Translate(x, y))

	mode := renderingMode(opt.Fill, opt.Stroke)
	if mode != b.Text.RenderingMode {
		b.Text.RenderingMode = mode
		b.emit(int(mode), "Tr")
	}
	b.show(s, opt.Kern)
}

// TextLines draws several lines of text.  The first line is anchored at
// (x, y), every following line is moved down by the current leading.
func (b *Builder) TextLines(x, y float64, lines []string, opt *TextOptions) error {
	const op = "TextLines"
	if err := b.checkFont(op); err != nil {
		return err
	}
	if !isFinite(x, y) {
		return invalid(op, "non-finite coordinate")
	}
	if opt == nil {
		opt = defaultTextOptions
	}
	for i, line := range lines {
		b.textAt(x, y-float64(i)*b.Text.Leading, line, opt)
	}
	return nil
}
