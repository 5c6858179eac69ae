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

	"github.com/go-playground/validator/v10"

	"seehuhn.de/go/pdfgen/internal/idmap"
	"seehuhn.de/go/pdfgen/pdf"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ImageOptions control the placement of an image.
type ImageOptions struct {
	// X and Y give the lower-left corner of the image, before rotation.
	X, Y float64

	// Width and Height give the size of the image on the page.  If both
	// are zero, the pixel size of the image is used, with one pixel per
	// point.  If only one of them is set, the other one is chosen to
	// preserve the aspect ratio of the image.
	Width  float64 `validate:"gte=0"`
	Height float64 `validate:"gte=0"`

	// Rotate is a counterclockwise rotation, in degrees, around the
	// center of the image.
	Rotate float64
}

// PlaceImage draws the image registered under tag.
// The image transformation is enclosed in a save/restore pair, so the
// graphics state is not changed.
//
// This implements the PDF graphics operator "Do".
func (b *Builder) PlaceImage(tag idmap.Tag, opt *ImageOptions) error {
	const op = "PlaceImage"
	if err := b.check(op, objPage); err != nil {
		return err
	}
	if opt == nil {
		opt = &ImageOptions{}
	}
	if err := validate.Struct(opt); err != nil {
		return &pdf.Error{Kind: pdf.ValidationError, Op: op, Err: err}
	}
	if !isFinite(opt.X, opt.Y, opt.Width, opt.Height, opt.Rotate) {
		return invalid(op, "non-finite image geometry")
	}
	if b.res == nil {
		return &pdf.Error{Kind: pdf.ResourceError, Op: op,
			Msg: fmt.Sprintf("tag %s", tag), Err: ErrImageNotFound}
	}

	id, img, err := b.res.Image(tag)
	if err != nil {
		return err
	}
	wPixel, hPixel := img.Size()
	w, h := fitSize(float64(wPixel), float64(hPixel), opt.Width, opt.Height)

	b.emit("q")
	b.emit(1, 0, 0, 1, opt.X, opt.Y, "cm")
	if opt.Rotate != 0 {
		r := rotation(opt.Rotate)
		b.emit(1, 0, 0, 1, w/2, h/2, "cm")
		b.emit(r[0], r[1], r[2], r[3], 0, 0, "cm")
		b.emit(1, 0, 0, 1, -w/2, -h/2, "cm")
	}
	b.emit(w, 0, 0, h, 0, 0, "cm")
	b.emit(pdf.Name(fmt.Sprintf("Im%d", id)), "Do")
	b.emit("Q")
	return nil
}

// fitSize returns the size of an image with natural size (w, h) when
// the requested width and height are reqW and reqH.  Zero values are
// unset.
func fitSize(w, h, reqW, reqH float64) (float64, float64) {
	switch {
	case reqW > 0 && reqH > 0:
		return reqW, reqH
	case reqW > 0 && w > 0:
		return reqW, reqW * h / w
	case reqH > 0 && h > 0:
		return reqH * w / h, reqH
	default:
		return w, h
	}
}
