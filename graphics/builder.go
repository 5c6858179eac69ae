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
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/image"
	"seehuhn.de/go/pdfgen/internal/float"
	"seehuhn.de/go/pdfgen/internal/idmap"
	"seehuhn.de/go/pdfgen/pdf"
)

// Resources gives a [Builder] access to the fonts and images of a
// document.  Both methods record that the returned resource is used by the
// content stream.
type Resources interface {
	// Font returns the font which best matches q, together with the
	// number used in the resource name "/F<id>".
	Font(q font.Query) (int, *font.Metrics, error)

	// Image returns the image registered under tag, together with the
	// number used in the resource name "/Im<id>".
	// If no such image exists, an error wrapping [ErrImageNotFound]
	// is returned.
	Image(tag idmap.Tag) (int, image.Image, error)
}

// Builder constructs a PDF content stream.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	content *bytes.Buffer
	res     Resources
	log     *slog.Logger

	State
	stack []State

	object objectType

	// start and cur are the start of the current subpath and the
	// current point, while a path is under construction.
	start, cur [2]float64
}

// objectType is the current level in the content stream.
// See figure 9 (p. 113) of PDF 32000-1:2008.
type objectType int

const (
	objPage objectType = 1 << iota
	objPath
	objText
)

func (o objectType) String() string {
	switch o {
	case objPage:
		return "page"
	case objPath:
		return "path"
	case objText:
		return "text"
	default:
		return fmt.Sprintf("objectType(%d)", int(o))
	}
}

// NewBuilder returns a new Builder with the default graphics state and
// an empty content stream.  If logger is nil, nothing is logged.
func NewBuilder(res Resources, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Builder{
		content: &bytes.Buffer{},
		res:     res,
		log:     logger,
		State:   NewState(),
		object:  objPage,
	}
}

// Bytes returns the content stream constructed so far.
// The returned slice is only valid until the next call to a method
// of the Builder.
func (b *Builder) Bytes() []byte {
	return b.content.Bytes()
}

// Len returns the length of the content stream in bytes.
func (b *Builder) Len() int {
	return b.content.Len()
}

// Depth returns the number of saved graphics states.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// InText reports whether the builder is inside a text object.
func (b *Builder) InText() bool {
	return b.object == objText
}

// InPath reports whether a path is under construction.
func (b *Builder) InPath() bool {
	return b.object == objPath
}

// GetState returns a copy of the current graphics state.
func (b *Builder) GetState() State {
	return b.State.Clone()
}

// CheckComplete returns an error if the content stream cannot be used as
// a complete page description, because a text object or a path is still
// open or because saved graphics states have not been restored.
func (b *Builder) CheckComplete() error {
	const op = "CheckComplete"
	switch {
	case b.object == objText:
		return &pdf.Error{Kind: pdf.StateError, Op: op, Msg: "text object not closed"}
	case b.object == objPath:
		return opError(op, ErrInPath)
	case len(b.stack) > 0:
		return &pdf.Error{Kind: pdf.StateError, Op: op,
			Msg: fmt.Sprintf("%d unrestored graphics states", len(b.stack))}
	}
	return nil
}

// check verifies that an operator may be used at the current level of
// the content stream.
func (b *Builder) check(op string, allowed objectType) error {
	if b.object&allowed != 0 {
		return nil
	}
	switch {
	case allowed == objText:
		return opError(op, ErrNotInTextBlock)
	case allowed == objPath:
		return opError(op, ErrNoPath)
	case b.object == objText:
		return opError(op, ErrAlreadyInTextBlock)
	default:
		return opError(op, ErrInPath)
	}
}

// emit appends one line to the content stream.  Numbers are formatted
// with [float.Number].
func (b *Builder) emit(args ...any) {
	for i, arg := range args {
		if i > 0 {
			b.content.WriteByte(' ')
		}
		switch x := arg.(type) {
		case float64:
			b.content.WriteString(float.Number(x))
		case int:
			fmt.Fprint(b.content, x)
		case string:
			b.content.WriteString(x)
		case pdf.Object:
			b.content.WriteString(pdf.Format(x))
		default:
			panic(fmt.Sprintf("unexpected content stream argument %T", arg))
		}
	}
	b.content.WriteByte('\n')
}

// SaveState pushes a copy of the current graphics state onto the stack.
//
// This implements the PDF graphics operator "q".
func (b *Builder) SaveState() error {
	if err := b.check("SaveState", objPage); err != nil {
		return err
	}
	b.stack = append(b.stack, b.State.Clone())
	b.emit("q")
	return nil
}

// RestoreState restores the graphics state most recently saved by
// [Builder.SaveState].
//
// This implements the PDF graphics operator "Q".
func (b *Builder) RestoreState() error {
	const op = "RestoreState"
	if err := b.check(op, objPage); err != nil {
		return err
	}
	n := len(b.stack) - 1
	if n < 0 {
		return opError(op, ErrStackUnderflow)
	}
	b.State = b.stack[n]
	b.stack = b.stack[:n]
	b.emit("Q")
	return nil
}

// Comment adds a comment line to the content stream.  Line breaks in s
// start new comment lines.
func (b *Builder) Comment(s string) {
	for _, line := range strings.Split(s, "\n") {
		b.content.WriteString("% ")
		b.content.WriteString(strings.TrimRight(line, "\r"))
		b.content.WriteByte('\n')
	}
}
