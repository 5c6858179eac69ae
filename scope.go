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

	"seehuhn.de/go/pdfgen/pdf"
)

// Scope selects the pages affected by a page setup change.
type Scope struct {
	kind scopeKind
	page int
}

type scopeKind uint8

const (
	scopeDefault scopeKind = iota
	scopeCurrent
	scopePage
)

// The page setup scopes.
var (
	// Default changes the document default, which applies to all pages
	// without an explicit setting.
	Default = Scope{kind: scopeDefault}

	// Current changes the current page.
	Current = Scope{kind: scopeCurrent}
)

// OnPage returns the scope for page n.
func OnPage(n int) Scope {
	return Scope{kind: scopePage, page: n}
}

func (s Scope) String() string {
	switch s.kind {
	case scopeDefault:
		return "default"
	case scopeCurrent:
		return "current page"
	default:
		return fmt.Sprintf("page %d", s.page)
	}
}

// resolve returns the page selected by the scope, or nil for the
// document defaults.
func (d *Document) resolve(op string, s Scope) (*Page, error) {
	if d.finalized {
		return nil, wrap(op, ErrFinalized, "")
	}
	switch s.kind {
	case scopeDefault:
		return nil, nil
	case scopeCurrent:
		return d.currentPage(op)
	default:
		p, ok := d.pages[s.page]
		if !ok {
			return nil, wrap(op, ErrInvalidPage, fmt.Sprintf("page %d does not exist", s.page))
		}
		return p, nil
	}
}

// SetPageSize sets the page size for the given scope.  The orientation
// swaps width and height, if needed.
func (d *Document) SetPageSize(scope Scope, size Size, o Orientation) error {
	const op = "SetPageSize"
	if err := check(op, &size); err != nil {
		return err
	}
	if size.Width == 0 || size.Height == 0 {
		return &pdf.Error{Kind: pdf.ValidationError, Op: op, Msg: "empty page size"}
	}
	if o > Landscape {
		return &pdf.Error{Kind: pdf.ValidationError, Op: op,
			Msg: fmt.Sprintf("invalid orientation %d", o)}
	}
	p, err := d.resolve(op, scope)
	if err != nil {
		return err
	}

	size = size.Orient(o)
	if p == nil {
		d.pageSize = size
	} else {
		p.size = size
	}
	return nil
}

// SetPageSizeName sets a named page size, like "A4" or "Letter",
// for the given scope.
func (d *Document) SetPageSizeName(scope Scope, name string, o Orientation) error {
	size, ok := PageSize(name)
	if !ok {
		return &pdf.Error{Kind: pdf.ValidationError, Op: "SetPageSizeName",
			Msg: fmt.Sprintf("unknown page size %q", name)}
	}
	return d.SetPageSize(scope, size, o)
}

// SetRotation sets the page rotation, in degrees clockwise, for the given
// scope.  The rotation must be a multiple of 90.
func (d *Document) SetRotation(scope Scope, degrees int) error {
	const op = "SetRotation"
	if degrees%90 != 0 {
		return &pdf.Error{Kind: pdf.ValidationError, Op: op,
			Msg: fmt.Sprintf("rotation %d is not a multiple of 90", degrees)}
	}
	degrees = (degrees%360 + 360) % 360
	p, err := d.resolve(op, scope)
	if err != nil {
		return err
	}
	if p == nil {
		d.rotation = degrees
	} else {
		p.rotation = degrees
		p.rotationSet = true
	}
	return nil
}

// PageSizeOf returns the effective size of page n.
func (d *Document) PageSizeOf(n int) (Size, error) {
	p, ok := d.pages[n]
	if !ok {
		return Size{}, wrap("PageSizeOf", ErrInvalidPage, fmt.Sprintf("page %d does not exist", n))
	}
	return d.sizeOf(p), nil
}

func (d *Document) rotationOf(p *Page) int {
	if p.rotationSet {
		return p.rotation
	}
	return d.rotation
}

func (d *Document) sizeOf(p *Page) Size {
	if p.size.IsZero() {
		return d.pageSize
	}
	return p.size
}
