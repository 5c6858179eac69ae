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

// Package float formats numbers for use in PDF files.
package float

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Digits is the number of decimal places kept by [Number].
const Digits = 3

// Format converts x to a string with at most the given number of decimal
// places.  Trailing zeros and a leading zero before the decimal point are
// removed.
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if strings.HasPrefix(out, "0.") {
		out = out[1:]
	} else if strings.HasPrefix(out, "-0.") {
		out = "-" + out[2:]
	}
	if out == "-0" {
		out = "0"
	}
	return out
}

// Number formats x the way numbers appear in content streams and object
// bodies: integers exactly, everything else rounded to [Digits] places.
func Number(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "0"
	}
	if x == math.Trunc(x) && math.Abs(x) < 1e15 {
		if x == 0 {
			return "0"
		}
		return strconv.FormatInt(int64(x), 10)
	}
	return Format(x, Digits)
}

// Round rounds x to the given number of decimal digits.
func Round(x float64, digits int) float64 {
	s := Format(x, digits)
	y, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(err)
	}
	return y
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)
