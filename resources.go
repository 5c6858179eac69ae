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
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/image"
	"seehuhn.de/go/pdfgen/internal/idmap"
	"seehuhn.de/go/pdfgen/pdf"
)

// Tag identifies an image.  Use [StringTag] or [IntTag] to create tags.
type Tag = idmap.Tag

// StringTag returns a tag which wraps s.
func StringTag(s string) Tag {
	return idmap.StringTag(s)
}

// IntTag returns a tag which wraps n.
func IntTag(n int64) Tag {
	return idmap.IntTag(n)
}

// LoadImage reads a JPEG or PNG file and registers the image under the
// given tag.  The returned id is used in the resource name "/Im<id>".
func (d *Document) LoadImage(path string, tag Tag) (int, error) {
	const op = "LoadImage"
	if err := d.checkImageTag(op, tag); err != nil {
		return 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, pdf.Wrap(pdf.IoError, op, err)
	}
	return d.LoadImageData(data, tag)
}

// LoadImageData registers an image, given as the contents of a JPEG or PNG
// file, under the given tag.
func (d *Document) LoadImageData(data []byte, tag Tag) (int, error) {
	const op = "LoadImageData"
	if err := d.checkImageTag(op, tag); err != nil {
		return 0, err
	}
	img, err := image.Decode(data)
	if err != nil {
		return 0, err
	}
	return d.registerImage(tag, img)
}

func (d *Document) checkImageTag(op string, tag Tag) error {
	if d.finalized {
		return wrap(op, ErrFinalized, "")
	}
	if _, _, exists := d.images.Lookup(tag); exists {
		return wrap(op, ErrDuplicateTag, fmt.Sprintf("tag %s", tag))
	}
	return nil
}

func (d *Document) registerImage(tag Tag, img *image.Decoded) (int, error) {
	id, err := d.images.Register(tag, img)
	if err != nil {
		return 0, err
	}
	d.log.Debug("image loaded",
		"tag", tag, "id", id, "kind", img.Kind,
		"width", img.Width, "height", img.Height)
	return id, nil
}

// ImageSource describes one image for [Document.LoadImages].
type ImageSource struct {
	Path string
	Tag  Tag
}

// LoadImages reads and decodes several image files concurrently.
// The images are registered in the order given, but only if all of them
// could be loaded; otherwise the first error is returned and no image is
// registered.
func (d *Document) LoadImages(ctx context.Context, sources []ImageSource) ([]int, error) {
	const op = "LoadImages"
	seen := make(map[Tag]bool, len(sources))
	for _, src := range sources {
		if err := d.checkImageTag(op, src.Tag); err != nil {
			return nil, err
		}
		if seen[src.Tag] {
			return nil, wrap(op, ErrDuplicateTag, fmt.Sprintf("tag %s", src.Tag))
		}
		seen[src.Tag] = true
	}

	decoded := make([]*image.Decoded, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(src.Path)
			if err != nil {
				return pdf.Wrap(pdf.IoError, op, err)
			}
			img, err := image.Decode(data)
			if err != nil {
				return fmt.Errorf("%s: %w", src.Path, err)
			}
			decoded[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := make([]int, len(sources))
	for i, src := range sources {
		id, err := d.registerImage(src.Tag, decoded[i])
		if err != nil {
			// The tags were checked above.
			panic(err)
		}
		ids[i] = id
	}
	return ids, nil
}

// ImageSize returns the size in pixels of the image registered under tag.
func (d *Document) ImageSize(tag Tag) (width, height int, err error) {
	_, img, ok := d.images.Lookup(tag)
	if !ok {
		return 0, 0, &pdf.Error{Kind: pdf.ResourceError, Op: "ImageSize",
			Msg: fmt.Sprintf("tag %s", tag), Err: ErrImageNotFound}
	}
	width, height = img.Size()
	return width, height, nil
}

// LoadFont loads an AFM, TrueType or OpenType font file and makes it
// available for font selection.  Loading the same font a second time
// returns the id assigned the first time.
func (d *Document) LoadFont(path string) (int, error) {
	if d.finalized {
		return 0, wrap("LoadFont", ErrFinalized, "")
	}
	m, err := d.fonts.Load(path)
	if err != nil {
		return 0, err
	}
	return d.fontID(m), nil
}

// AddFont makes a font available for font selection.
func (d *Document) AddFont(m *font.Metrics) (int, error) {
	if d.finalized {
		return 0, wrap("AddFont", ErrFinalized, "")
	}
	if err := d.fonts.Add(m); err != nil {
		return 0, err
	}
	return d.fontID(m), nil
}

// fontID returns the document id of a font, registering the font if
// needed.  Fonts are identified by their PostScript name.
func (d *Document) fontID(m *font.Metrics) int {
	tag := idmap.StringTag(m.PostScriptName)
	if id, _, ok := d.fontIDs.Lookup(tag); ok {
		return id
	}
	id, err := d.fontIDs.Register(tag, m)
	if err != nil {
		panic(err)
	}
	d.log.Debug("font registered",
		"font", m.PostScriptName, "id", id, "kind", m.Kind)
	return id
}
