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

package image

import (
	"fmt"

	"seehuhn.de/go/pdfgen/pdf"
)

// Embed writes the image to a PDF file as an image XObject with the
// given reference.  JPEG data is copied unchanged, using the DCTDecode
// filter.  PNG image data is used directly with the FlateDecode filter and
// PNG predictors, the alpha channel (if any) is written as a soft mask.
func (d *Decoded) Embed(w *pdf.Writer, ref pdf.Reference) error {
	switch d.Kind {
	case JPEG:
		return d.embedJPEG(w, ref)
	case PNG:
		return d.embedPNG(w, ref)
	default:
		return &pdf.Error{Kind: pdf.CodecError, Op: "Embed",
			Msg: fmt.Sprintf("unknown image kind %d", d.Kind)}
	}
}

func (d *Decoded) embedJPEG(w *pdf.Writer, ref pdf.Reference) error {
	dict := pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(d.Width),
		"Height":           pdf.Integer(d.Height),
		"ColorSpace":       d.ColorSpace.Name(),
		"BitsPerComponent": pdf.Integer(d.BitsPerComponent),
		"Filter":           pdf.Name("DCTDecode"),
	}
	if d.Inverted {
		decode := make(pdf.Array, 0, 2*d.ColorSpace.Components())
		for range d.ColorSpace.Components() {
			decode = append(decode, pdf.Integer(1), pdf.Integer(0))
		}
		dict["Decode"] = decode
	}
	_, err := w.PutStreamFiltered(ref, dict, d.PixelData)
	return err
}

func (d *Decoded) embedPNG(w *pdf.Writer, ref pdf.Reference) error {
	var colorSpace pdf.Object
	switch {
	case d.ColorSpace == Indexed:
		hival := len(d.Palette)/3 - 1
		colorSpace = pdf.Array{
			pdf.Name("Indexed"),
			pdf.Name("DeviceRGB"),
			pdf.Integer(hival),
			pdf.Raw(fmt.Sprintf("<%X>", d.Palette)),
		}
	case d.ICCProfile != nil:
		iccRef, err := w.PutStream(0, pdf.Dict{
			"N":         pdf.Integer(d.ICCComponents),
			"Alternate": d.ColorSpace.Name(),
		}, d.ICCProfile)
		if err != nil {
			return err
		}
		colorSpace = pdf.Array{pdf.Name("ICCBased"), iccRef}
	default:
		colorSpace = d.ColorSpace.Name()
	}

	dict := pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(d.Width),
		"Height":           pdf.Integer(d.Height),
		"ColorSpace":       colorSpace,
		"BitsPerComponent": pdf.Integer(d.BitsPerComponent),
		"Filter":           pdf.Name("FlateDecode"),
		"DecodeParms":      d.decodeParms(d.ColorSpace.Components()),
	}

	if len(d.Transparency) > 0 {
		mask := make(pdf.Array, len(d.Transparency))
		for i, v := range d.Transparency {
			mask[i] = pdf.Integer(v)
		}
		dict["Mask"] = mask
	}

	data := d.PixelData
	if d.AlphaData != nil {
		level := w.Compression()

		alpha, err := pdf.Compress(d.AlphaData, level)
		if err != nil {
			return &pdf.Error{Kind: pdf.IoError, Op: "Embed", Err: err}
		}
		smask, err := w.PutStreamFiltered(0, pdf.Dict{
			"Type":             pdf.Name("XObject"),
			"Subtype":          pdf.Name("Image"),
			"Width":            pdf.Integer(d.Width),
			"Height":           pdf.Integer(d.Height),
			"ColorSpace":       pdf.Name("DeviceGray"),
			"BitsPerComponent": pdf.Integer(d.BitsPerComponent),
			"Filter":           pdf.Name("FlateDecode"),
			"DecodeParms":      d.decodeParms(1),
		}, alpha)
		if err != nil {
			return err
		}
		dict["SMask"] = smask

		data, err = pdf.Compress(d.PixelData, level)
		if err != nil {
			return &pdf.Error{Kind: pdf.IoError, Op: "Embed", Err: err}
		}
	}

	_, err := w.PutStreamFiltered(ref, dict, data)
	return err
}

func (d *Decoded) decodeParms(colors int) pdf.Dict {
	return pdf.Dict{
		"Predictor":        pdf.Integer(15),
		"Colors":           pdf.Integer(colors),
		"BitsPerComponent": pdf.Integer(d.BitsPerComponent),
		"Columns":          pdf.Integer(d.Width),
	}
}
