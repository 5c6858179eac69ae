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

// Package image decodes JPEG and PNG files into a form which can be
// embedded into PDF files.
//
// JPEG data is passed through unchanged and decoded by the PDF viewer using
// the DCTDecode filter.  PNG data is inflated once for validation; images
// without an alpha channel keep their original compressed scanlines, images
// with an alpha channel are split into a colour image and a soft mask.
package image

import (
	"bytes"

	"seehuhn.de/go/pdfgen/pdf"
)

// Kind distinguishes the supported file formats.
type Kind uint8

// The supported image file formats.
const (
	JPEG Kind = iota + 1
	PNG
)

func (k Kind) String() string {
	switch k {
	case JPEG:
		return "JPEG"
	case PNG:
		return "PNG"
	default:
		return "unknown"
	}
}

// ColorSpace is the colour space of the pixel data of an image.
type ColorSpace uint8

// The colour spaces which can occur in decoded images.
const (
	Gray ColorSpace = iota + 1
	RGB
	CMYK
	Indexed
)

// Name returns the PDF name of the device colour space.
// For indexed images, this is the base colour space.
func (cs ColorSpace) Name() pdf.Name {
	switch cs {
	case Gray:
		return "DeviceGray"
	case CMYK:
		return "DeviceCMYK"
	default:
		return "DeviceRGB"
	}
}

// Components returns the number of colour components per pixel.
func (cs ColorSpace) Components() int {
	switch cs {
	case RGB:
		return 3
	case CMYK:
		return 4
	default:
		return 1
	}
}

// Image is implemented by all decoded images.
type Image interface {
	// Size returns the width and height of the image in pixels.
	Size() (int, int)

	// HasAlpha reports whether the image has a separate alpha channel.
	HasAlpha() bool
}

// Decoded holds the information extracted from an image file.
// Values of this type are not modified after decoding.
type Decoded struct {
	Kind             Kind
	Width, Height    int
	BitsPerComponent int
	ColorSpace       ColorSpace

	// PixelData holds the colour information.  For JPEG files, this is the
	// complete file.  For PNG files with an alpha channel, this holds the
	// uncompressed (but still PNG-filtered) colour scanlines.  For all other
	// PNG files, this is the zlib-compressed scanline data from the IDAT
	// chunks.
	PixelData []byte

	// AlphaData holds the uncompressed, PNG-filtered alpha scanlines
	// of PNG images with an alpha channel.  For indexed images with
	// partially transparent palette entries, the alpha values are taken
	// from the palette and PixelData holds the uncompressed scanlines.
	AlphaData []byte

	// Palette holds the RGB palette of indexed images.
	Palette []byte

	// Transparency, if set, is a colour key mask in the form used
	// by the /Mask entry of PDF image dictionaries.
	Transparency []int

	// ICCProfile is the embedded colour profile, if any.
	// ICCComponents is the number of colour components of the profile.
	ICCProfile    []byte
	ICCComponents int

	// Inverted is set for Adobe CMYK JPEG files, which store inverted
	// colour values.
	Inverted bool
}

// Size returns the width and height of the image in pixels.
// This implements the [Image] interface.
func (d *Decoded) Size() (int, int) {
	return d.Width, d.Height
}

// HasAlpha reports whether the image has an alpha channel.
// This implements the [Image] interface.
func (d *Decoded) HasAlpha() bool {
	return d.AlphaData != nil
}

var (
	// ErrCorruptImage indicates a malformed image file.
	ErrCorruptImage = &pdf.Error{Kind: pdf.CodecError, Msg: "corrupt image"}

	// ErrUnsupportedImage indicates an image file which uses features
	// not supported by this package.
	ErrUnsupportedImage = &pdf.Error{Kind: pdf.CodecError, Msg: "unsupported image"}
)

func corrupt(msg string) error {
	return &pdf.Error{Kind: pdf.CodecError, Msg: msg, Err: ErrCorruptImage}
}

func unsupported(msg string) error {
	return &pdf.Error{Kind: pdf.CodecError, Msg: msg, Err: ErrUnsupportedImage}
}

var (
	jpegMagic = []byte{0xFF, 0xD8}
	pngMagic  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}
)

// Sniff returns the format of the image data, or 0 if the format is not
// recognised.
func Sniff(data []byte) Kind {
	switch {
	case SniffJPEG(data):
		return JPEG
	case SniffPNG(data):
		return PNG
	default:
		return 0
	}
}

// SniffJPEG reports whether data starts with the JPEG start-of-image marker.
func SniffJPEG(data []byte) bool {
	return bytes.HasPrefix(data, jpegMagic)
}

// SniffPNG reports whether data starts with the PNG signature.
func SniffPNG(data []byte) bool {
	return bytes.HasPrefix(data, pngMagic)
}

// Decode decodes a JPEG or PNG file.
func Decode(data []byte) (*Decoded, error) {
	switch Sniff(data) {
	case JPEG:
		return DecodeJPEG(data)
	case PNG:
		return DecodePNG(data)
	default:
		return nil, unsupported("unknown image format")
	}
}

// Aspect returns the ratio of image width to image height.
func (d *Decoded) Aspect() float64 {
	return float64(d.Width) / float64(d.Height)
}
