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
	"fmt"
)

// DecodeJPEG extracts the image size and colour information from a JPEG
// file.  The compressed data is kept unchanged.
func DecodeJPEG(data []byte) (*Decoded, error) {
	if !SniffJPEG(data) {
		return nil, corrupt("missing JPEG SOI marker")
	}

	adobe := false
	pos := 2
	for {
		if pos >= len(data) {
			return nil, corrupt("JPEG frame header not found")
		}
		if data[pos] != 0xFF {
			return nil, corrupt(fmt.Sprintf("invalid JPEG marker at byte %d", pos))
		}
		for pos < len(data) && data[pos] == 0xFF {
			pos++
		}
		if pos >= len(data) {
			return nil, corrupt("JPEG frame header not found")
		}
		marker := data[pos]
		pos++

		switch {
		case marker == 0x01, marker == 0xD8, marker >= 0xD0 && marker <= 0xD7:
			// markers without a segment
			continue
		case marker == 0xD9, marker == 0xDA:
			return nil, corrupt("JPEG frame header not found")
		}

		if pos+2 > len(data) {
			return nil, corrupt("truncated JPEG segment")
		}
		segLen := int(data[pos])<<8 | int(data[pos+1])
		if segLen < 2 || pos+segLen > len(data) {
			return nil, corrupt("truncated JPEG segment")
		}
		seg := data[pos+2 : pos+segLen]
		pos += segLen

		if marker == 0xEE && bytes.HasPrefix(seg, []byte("Adobe")) {
			adobe = true
			continue
		}
		if !isSOF(marker) {
			continue
		}

		if isArithmetic(marker) {
			return nil, unsupported("arithmetic coded JPEG")
		}
		if marker == 0xC3 || marker == 0xC7 {
			return nil, unsupported("lossless JPEG")
		}
		if len(seg) < 6 {
			return nil, corrupt("truncated JPEG frame header")
		}
		precision := int(seg[0])
		height := int(seg[1])<<8 | int(seg[2])
		width := int(seg[3])<<8 | int(seg[4])
		numComp := int(seg[5])

		if width == 0 || height == 0 {
			return nil, unsupported("JPEG without explicit image size")
		}
		if precision != 8 {
			return nil, unsupported(fmt.Sprintf("%d-bit JPEG", precision))
		}

		var cs ColorSpace
		switch numComp {
		case 1:
			cs = Gray
		case 3:
			cs = RGB
		case 4:
			cs = CMYK
		default:
			return nil, unsupported(fmt.Sprintf("JPEG with %d components", numComp))
		}

		res := &Decoded{
			Kind:             JPEG,
			Width:            width,
			Height:           height,
			BitsPerComponent: precision,
			ColorSpace:       cs,
			PixelData:        data,
			Inverted:         adobe && cs == CMYK,
		}
		return res, nil
	}
}

// isSOF reports whether the marker is a start-of-frame marker.
// 0xC4 (DHT), 0xC8 (JPG) and 0xCC (DAC) share the range but are not
// frame headers.
func isSOF(marker byte) bool {
	return marker >= 0xC0 && marker <= 0xCF &&
		marker != 0xC4 && marker != 0xC8 && marker != 0xCC
}

func isArithmetic(marker byte) bool {
	return marker >= 0xC9 && marker <= 0xCF
}
