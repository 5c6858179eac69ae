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
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen/font"
)

// LineCapStyle is the style of the end of a line.
type LineCapStyle uint8

// Possible values for LineCapStyle.
// See section 8.4.3.3 of PDF 32000-1:2008.
const (
	LineCapButt   LineCapStyle = 0
	LineCapRound  LineCapStyle = 1
	LineCapSquare LineCapStyle = 2
)

// LineJoinStyle is the style of the corner of a line.
type LineJoinStyle uint8

// Possible values for LineJoinStyle.
const (
	LineJoinMiter LineJoinStyle = 0
	LineJoinRound LineJoinStyle = 1
	LineJoinBevel LineJoinStyle = 2
)

// TextRenderingMode is the rendering mode for text.
type TextRenderingMode uint8

// Possible values for TextRenderingMode.
// See section 9.3.6 of ISO 32000-2:2020.
const (
	TextRenderingModeFill TextRenderingMode = iota
	TextRenderingModeStroke
	TextRenderingModeFillStroke
	TextRenderingModeInvisible
)

// renderingMode returns the text rendering mode for the given combination
// of filling and stroking.
func renderingMode(fill, stroke bool) TextRenderingMode {
	switch {
	case fill && stroke:
		return TextRenderingModeFillStroke
	case stroke:
		return TextRenderingModeStroke
	case fill:
		return TextRenderingModeFill
	default:
		return TextRenderingModeInvisible
	}
}

// State holds the graphics state parameters which are tracked by a
// [Builder].
type State struct {
	CTM matrix.Matrix

	LineWidth   float64
	LineCap     LineCapStyle
	LineJoin    LineJoinStyle
	MiterLimit  float64
	DashPattern []float64
	DashPhase   float64

	FillColor   Color
	StrokeColor Color

	Text TextState
}

// TextState holds the text state parameters.
type TextState struct {
	// Font is the current font, or nil if no font has been selected.
	Font *font.Metrics

	// FontID is the number used in the resource name "/F<id>".
	FontID int

	Size             float64
	CharacterSpacing float64 // Tc
	WordSpacing      float64 // Tw
	HorizontalScale  float64 // Tz, in percent
	Leading          float64 // TL
	Rise             float64 // Ts
	RenderingMode    TextRenderingMode

	// Matrix and LineMatrix are the text matrix and the text line matrix.
	// They are only meaningful inside a text object.
	Matrix     matrix.Matrix
	LineMatrix matrix.Matrix
}

// Position returns the origin of the next glyph, in user space
// coordinates relative to the text object.
func (ts *TextState) Position() (x, y float64) {
	return ts.Matrix[4], ts.Matrix[5]
}

// shaping returns the parameters used by [font.Shape].
func (ts *TextState) shaping(kern bool) font.TextState {
	return font.TextState{
		Size:             ts.Size,
		CharacterSpacing: ts.CharacterSpacing,
		WordSpacing:      ts.WordSpacing,
		HorizontalScale:  ts.HorizontalScale / 100,
		Kern:             kern,
	}
}

// resetSpacing restores the defaults which apply after a new font has been
// selected.
func (ts *TextState) resetSpacing() {
	ts.CharacterSpacing = 0
	ts.WordSpacing = 0
	ts.HorizontalScale = 100
	ts.Rise = 0
	ts.Leading = 1.2 * ts.Size
}

// NewState returns a new graphics state with default values.
func NewState() State {
	return State{
		CTM:         matrix.Identity,
		LineWidth:   1,
		LineCap:     LineCapButt,
		LineJoin:    LineJoinMiter,
		MiterLimit:  10,
		FillColor:   Gray(0),
		StrokeColor: Gray(0),
		Text: TextState{
			HorizontalScale: 100,
			Matrix:          matrix.Identity,
			LineMatrix:      matrix.Identity,
		},
	}
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	s.DashPattern = slices.Clone(s.DashPattern)
	return s
}
