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
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"seehuhn.de/go/icc"
)

type pngHeader struct {
	width, height int
	bitDepth      int
	colorType     byte
}

// channels returns the total number of samples per pixel,
// including the alpha channel.
func (h *pngHeader) channels() int {
	switch h.colorType {
	case 2:
		return 3
	case 4:
		return 2
	case 6:
		return 4
	default:
		return 1
	}
}

func (h *pngHeader) hasAlpha() bool {
	return h.colorType == 4 || h.colorType == 6
}

func (h *pngHeader) rowBytes() int {
	return h.width * h.channels() * h.bitDepth / 8
}

// DecodePNG decodes a PNG file.  All chunk checksums are verified and the
// image data is inflated once, to verify its integrity and to separate the
// alpha channel if present.
func DecodePNG(data []byte) (*Decoded, error) {
	if !SniffPNG(data) {
		return nil, corrupt("missing PNG signature")
	}

	var hdr *pngHeader
	var palette, trns, iccProfile []byte
	idat := &bytes.Buffer{}
	seenIEND := false

	pos := len(pngMagic)
	for !seenIEND {
		if pos+8 > len(data) {
			return nil, corrupt("truncated PNG chunk")
		}
		length := binary.BigEndian.Uint32(data[pos : pos+4])
		if uint64(length)+12 > uint64(len(data)-pos) {
			return nil, corrupt("PNG chunk length exceeds file size")
		}
		chunkType := string(data[pos+4 : pos+8])
		body := data[pos+8 : pos+8+int(length)]
		sum := binary.BigEndian.Uint32(data[pos+8+int(length) : pos+12+int(length)])
		if crc32.ChecksumIEEE(data[pos+4:pos+8+int(length)]) != sum {
			return nil, corrupt(fmt.Sprintf("CRC mismatch in PNG %s chunk", chunkType))
		}
		pos += 12 + int(length)

		if hdr == nil && chunkType != "IHDR" {
			return nil, corrupt("PNG does not start with IHDR")
		}

		switch chunkType {
		case "IHDR":
			if hdr != nil {
				return nil, corrupt("duplicate PNG IHDR chunk")
			}
			h, err := parseIHDR(body)
			if err != nil {
				return nil, err
			}
			hdr = h
		case "PLTE":
			if len(body)%3 != 0 || len(body) == 0 || len(body) > 3*256 {
				return nil, corrupt("invalid PNG palette")
			}
			palette = body
		case "tRNS":
			trns = body
		case "iCCP":
			iccProfile = parseICCP(body)
		case "IDAT":
			idat.Write(body)
		case "IEND":
			seenIEND = true
		default:
			if chunkType[0]&0x20 == 0 {
				return nil, unsupported(fmt.Sprintf("critical PNG chunk %q", chunkType))
			}
		}
	}

	if idat.Len() == 0 {
		return nil, corrupt("PNG without image data")
	}
	if hdr.colorType == 3 && palette == nil {
		return nil, corrupt("indexed PNG without palette")
	}

	raw, err := inflate(idat.Bytes())
	if err != nil {
		return nil, corrupt("invalid PNG image data: " + err.Error())
	}
	stride := 1 + hdr.rowBytes()
	if len(raw) < stride*hdr.height {
		return nil, corrupt("truncated PNG image data")
	}
	raw = raw[:stride*hdr.height]
	for y := 0; y < hdr.height; y++ {
		if raw[y*stride] > 4 {
			return nil, corrupt("invalid PNG filter type")
		}
	}

	res := &Decoded{
		Kind:             PNG,
		Width:            hdr.width,
		Height:           hdr.height,
		BitsPerComponent: hdr.bitDepth,
		Palette:          palette,
	}
	switch hdr.colorType {
	case 0, 4:
		res.ColorSpace = Gray
	case 2, 6:
		res.ColorSpace = RGB
	case 3:
		res.ColorSpace = Indexed
	}

	switch {
	case hdr.hasAlpha():
		res.PixelData, res.AlphaData = splitAlpha(raw, hdr)
	case hdr.colorType == 3 && needsSoftMask(trns, palette):
		res.PixelData = bytes.Clone(raw)
		res.AlphaData = paletteAlpha(raw, hdr, trns)
	default:
		res.PixelData = bytes.Clone(idat.Bytes())
		if trns != nil {
			res.Transparency = colorKey(trns, hdr, palette)
		}
	}

	if iccProfile != nil && hdr.colorType != 3 {
		// icc.Decode modifies its argument
		p, err := icc.Decode(bytes.Clone(iccProfile))
		if err == nil {
			n := p.ColorSpace.NumComponents()
			if n == res.ColorSpace.Components() {
				res.ICCProfile = iccProfile
				res.ICCComponents = n
			}
		}
	}

	return res, nil
}

func parseIHDR(body []byte) (*pngHeader, error) {
	if len(body) != 13 {
		return nil, corrupt("invalid PNG IHDR chunk")
	}
	width := binary.BigEndian.Uint32(body[0:4])
	height := binary.BigEndian.Uint32(body[4:8])
	if width == 0 || height == 0 || width > 1<<24 || height > 1<<24 {
		return nil, corrupt("invalid PNG image size")
	}
	h := &pngHeader{
		width:     int(width),
		height:    int(height),
		bitDepth:  int(body[8]),
		colorType: body[9],
	}

	switch h.colorType {
	case 0, 2, 3, 4, 6:
		// pass
	default:
		return nil, corrupt(fmt.Sprintf("invalid PNG colour type %d", h.colorType))
	}
	switch h.bitDepth {
	case 8:
		// pass
	case 16:
		if h.colorType == 3 {
			return nil, corrupt("16-bit indexed PNG")
		}
	case 1, 2, 4:
		return nil, unsupported(fmt.Sprintf("%d-bit PNG", h.bitDepth))
	default:
		return nil, corrupt(fmt.Sprintf("invalid PNG bit depth %d", h.bitDepth))
	}

	if body[10] != 0 {
		return nil, unsupported("unknown PNG compression method")
	}
	if body[11] != 0 {
		return nil, unsupported("unknown PNG filter method")
	}
	if body[12] != 0 {
		return nil, unsupported("interlaced PNG")
	}
	return h, nil
}

// splitAlpha separates the colour and alpha samples of each scanline.
// The scanlines are not unfiltered: PNG filters operate on corresponding
// bytes of neighbouring pixels, so each of the two output streams is again
// a valid sequence of filtered scanlines.  The filter type byte of every
// scanline is copied into both outputs.
func splitAlpha(raw []byte, hdr *pngHeader) ([]byte, []byte) {
	bps := hdr.bitDepth / 8
	colorBytes := (hdr.channels() - 1) * bps
	pixelBytes := colorBytes + bps
	stride := 1 + hdr.width*pixelBytes

	color := make([]byte, 0, hdr.height*(1+hdr.width*colorBytes))
	alpha := make([]byte, 0, hdr.height*(1+hdr.width*bps))
	for y := 0; y < hdr.height; y++ {
		row := raw[y*stride : (y+1)*stride]
		color = append(color, row[0])
		alpha = append(alpha, row[0])
		for x := 1; x < len(row); x += pixelBytes {
			color = append(color, row[x:x+colorBytes]...)
			alpha = append(alpha, row[x+colorBytes:x+pixelBytes]...)
		}
	}
	return color, alpha
}

// colorKey converts a tRNS chunk into the ranges of a PDF colour key mask.
func colorKey(trns []byte, hdr *pngHeader, palette []byte) []int {
	switch hdr.colorType {
	case 0:
		if len(trns) < 2 {
			return nil
		}
		g := int(binary.BigEndian.Uint16(trns))
		return []int{g, g}
	case 2:
		if len(trns) < 6 {
			return nil
		}
		r := int(binary.BigEndian.Uint16(trns[0:]))
		g := int(binary.BigEndian.Uint16(trns[2:]))
		b := int(binary.BigEndian.Uint16(trns[4:]))
		return []int{r, r, g, g, b, b}
	case 3:
		for i, a := range trns {
			if i >= len(palette)/3 {
				break
			}
			if a == 0 {
				return []int{i, i}
			}
		}
	}
	return nil
}

// needsSoftMask reports whether the palette transparency of an indexed
// image can not be expressed as a colour key mask.  This is the case if
// some entries are partially transparent, or if more than one entry is
// fully transparent.
func needsSoftMask(trns, palette []byte) bool {
	numTransparent := 0
	for i, a := range trns {
		if i >= len(palette)/3 {
			break
		}
		switch a {
		case 255:
			// pass
		case 0:
			numTransparent++
		default:
			return true
		}
	}
	return numTransparent > 1
}

// paletteAlpha converts the palette indices of an 8-bit indexed image into
// alpha scanlines, using the alpha values from the tRNS chunk.  The
// output uses PNG filter type 0 for every scanline.
func paletteAlpha(raw []byte, hdr *pngHeader, trns []byte) []byte {
	stride := 1 + hdr.width
	alpha := make([]byte, 0, hdr.height*stride)

	prev := make([]byte, hdr.width)
	cur := make([]byte, hdr.width)
	for y := 0; y < hdr.height; y++ {
		row := raw[y*stride : (y+1)*stride]
		copy(cur, row[1:])
		unfilter(row[0], cur, prev)

		alpha = append(alpha, 0)
		for _, idx := range cur {
			a := byte(255)
			if int(idx) < len(trns) {
				a = trns[idx]
			}
			alpha = append(alpha, a)
		}
		prev, cur = cur, prev
	}
	return alpha
}

// unfilter reverses the PNG filter of one scanline of a one byte per
// pixel image in place.  Prev is the unfiltered previous scanline.
func unfilter(filter byte, cur, prev []byte) {
	switch filter {
	case 1: // Sub
		for i := 1; i < len(cur); i++ {
			cur[i] += cur[i-1]
		}
	case 2: // Up
		for i := range cur {
			cur[i] += prev[i]
		}
	case 3: // Average
		for i := range cur {
			var left int
			if i > 0 {
				left = int(cur[i-1])
			}
			cur[i] += byte((left + int(prev[i])) / 2)
		}
	case 4: // Paeth
		for i := range cur {
			var a, c byte
			if i > 0 {
				a, c = cur[i-1], prev[i-1]
			}
			cur[i] += paeth(a, prev[i], c)
		}
	}
}

func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	switch {
	case pa <= pb && pa <= pc:
		return a
	case pb <= pc:
		return b
	default:
		return c
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// parseICCP extracts the colour profile from an iCCP chunk.
// Invalid chunks are ignored.
func parseICCP(body []byte) []byte {
	k := bytes.IndexByte(body, 0)
	if k < 1 || k > 79 || k+2 > len(body) || body[k+1] != 0 {
		return nil
	}
	profile, err := inflate(body[k+2:])
	if err != nil {
		return nil
	}
	return profile
}

func inflate(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
