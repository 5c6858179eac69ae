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
	"log/slog"

	"golang.org/x/exp/slices"
	"golang.org/x/text/language"

	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/graphics"
	"seehuhn.de/go/pdfgen/image"
	"seehuhn.de/go/pdfgen/internal/idmap"
	"seehuhn.de/go/pdfgen/pdf"
)

// Document is a PDF document under construction.
type Document struct {
	version     pdf.Version
	compression int
	lang        language.Tag
	xmp         bool
	log         *slog.Logger

	fonts   *font.Registry
	fontIDs *idmap.IdMap[*font.Metrics]
	images  *idmap.IdMap[*image.Decoded]

	pageSize Size
	rotation int
	pages    map[int]*Page
	current  int // 0 if there is no current page

	info      Info
	finalized bool
}

// Page is a single page of a [Document].
type Page struct {
	number int

	// size is zero if the document default applies
	size Size

	rotation    int
	rotationSet bool

	content *graphics.Builder
}

// Number returns the page number.
func (p *Page) Number() int {
	return p.number
}

// New creates a new, empty document.
// If opt is nil, the default options are used.
func New(opt *Options) (*Document, error) {
	if opt == nil {
		opt = &Options{}
	}
	if err := check("New", opt); err != nil {
		return nil, err
	}

	d := &Document{
		version:     opt.Version,
		compression: opt.Compression,
		lang:        language.Und,
		xmp:         opt.XMP,
		log:         opt.Logger,
		fonts:       opt.Fonts,
		fontIDs:     idmap.New[*font.Metrics](),
		images:      idmap.New[*image.Decoded](),
		pageSize:    opt.PageSize,
		rotation:    opt.Rotation,
		pages:       make(map[int]*Page),
	}
	if d.version == 0 {
		d.version = pdf.V1_7
	}
	if _, err := d.version.ToString(); err != nil {
		return nil, &pdf.Error{Kind: pdf.ValidationError, Op: "New", Err: err}
	}
	switch d.compression {
	case 0:
		d.compression = defaultCompression
	case NoCompression:
		d.compression = 0
	}
	if opt.Language != "" {
		tag, err := languageTag(opt.Language)
		if err != nil {
			return nil, err
		}
		d.lang = tag
	}
	if d.log == nil {
		d.log = slog.New(slog.DiscardHandler)
	}
	if d.fonts == nil {
		d.fonts = font.NewRegistry(d.log)
	}
	if d.pageSize.IsZero() {
		d.pageSize = A4
	}
	d.pageSize = d.pageSize.Orient(opt.Orientation)
	d.info.Producer = defaultProducer

	return d, nil
}

// Fonts returns the font registry used by the document.
func (d *Document) Fonts() *font.Registry {
	return d.fonts
}

// NewPage adds a new page to the document and makes it the current page.
// If opt is nil, the page is added after the last page, using the default
// page size and rotation.
func (d *Document) NewPage(opt *PageOptions) (int, error) {
	const op = "NewPage"
	if d.finalized {
		return 0, wrap(op, ErrFinalized, "")
	}
	if opt == nil {
		opt = &PageOptions{}
	}
	if err := check(op, opt); err != nil {
		return 0, err
	}

	number := opt.Number
	if number == 0 {
		number = d.lastPage() + 1
	} else if _, exists := d.pages[number]; exists {
		return 0, wrap(op, ErrInvalidPage, fmt.Sprintf("page %d already exists", number))
	}

	p := d.addPage(number)
	if !opt.Size.IsZero() {
		p.size = opt.Size.Orient(opt.Orientation)
	} else if opt.Orientation != AsGiven {
		p.size = d.pageSize.Orient(opt.Orientation)
	}
	if opt.Rotation != 0 {
		p.rotation = opt.Rotation
		p.rotationSet = true
	}
	d.current = number
	return number, nil
}

// SelectPage makes page n the current page.  If the page does not exist
// yet, it is created with the default size and rotation.
func (d *Document) SelectPage(n int) error {
	const op = "SelectPage"
	if d.finalized {
		return wrap(op, ErrFinalized, "")
	}
	if n < 1 {
		return wrap(op, ErrInvalidPage, fmt.Sprintf("page %d", n))
	}
	if _, exists := d.pages[n]; !exists {
		d.addPage(n)
	}
	d.current = n
	return nil
}

func (d *Document) addPage(n int) *Page {
	p := &Page{number: n}
	p.content = graphics.NewBuilder(&pageResources{doc: d, page: n}, d.log)
	d.pages[n] = p
	d.log.Debug("page created", "page", n)
	return p
}

// DeletePage removes page n from the document.  The current page cannot
// be deleted, and neither can a page with unrestored graphics states.
func (d *Document) DeletePage(n int) error {
	const op = "DeletePage"
	if d.finalized {
		return wrap(op, ErrFinalized, "")
	}
	p, exists := d.pages[n]
	if !exists {
		return wrap(op, ErrInvalidPage, fmt.Sprintf("page %d does not exist", n))
	}
	if n == d.current {
		return wrap(op, ErrIsCurrentPage, fmt.Sprintf("page %d", n))
	}
	if p.content.Depth() > 0 {
		return wrap(op, ErrGraphicsStackNotEmpty, fmt.Sprintf("page %d", n))
	}

	delete(d.pages, n)
	d.images.Release(n)
	d.fontIDs.Release(n)
	d.log.Debug("page deleted", "page", n)
	return nil
}

// Pages returns the numbers of all pages, in increasing order.
func (d *Document) Pages() []int {
	numbers := make([]int, 0, len(d.pages))
	for n := range d.pages {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)
	return numbers
}

// CurrentPage returns the number of the current page.
// The second return value is false if there is no current page.
func (d *Document) CurrentPage() (int, bool) {
	return d.current, d.current != 0
}

// Canvas returns the content stream builder of the current page.
func (d *Document) Canvas() (*graphics.Builder, error) {
	p, err := d.currentPage("Canvas")
	if err != nil {
		return nil, err
	}
	return p.content, nil
}

func (d *Document) currentPage(op string) (*Page, error) {
	if d.finalized {
		return nil, wrap(op, ErrFinalized, "")
	}
	if d.current == 0 {
		return nil, wrap(op, ErrNoPage, "no current page")
	}
	return d.pages[d.current], nil
}

func (d *Document) lastPage() int {
	last := 0
	for n := range d.pages {
		last = max(last, n)
	}
	return last
}

// pageResources connects the content stream of a page to the fonts and
// images of the document.
type pageResources struct {
	doc  *Document
	page int
}

// Font implements the [graphics.Resources] interface.
func (r *pageResources) Font(q font.Query) (int, *font.Metrics, error) {
	m, err := r.doc.fonts.Match(q)
	if err != nil {
		return 0, nil, err
	}
	id := r.doc.fontID(m)
	r.doc.fontIDs.MarkUsed(id, r.page)
	return id, m, nil
}

// Image implements the [graphics.Resources] interface.
func (r *pageResources) Image(tag idmap.Tag) (int, image.Image, error) {
	id, img, ok := r.doc.images.Lookup(tag)
	if !ok {
		return 0, nil, &pdf.Error{Kind: pdf.ResourceError, Op: "PlaceImage",
			Msg: fmt.Sprintf("tag %s", tag), Err: ErrImageNotFound}
	}
	r.doc.images.MarkUsed(id, r.page)
	return id, img, nil
}
