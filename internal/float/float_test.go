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

package float

import (
	"math"
	"testing"
)

func TestNumber(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "0"},
		{1, "1"},
		{-17, "-17"},
		{64, "64"},
		{0.5, ".5"},
		{-0.25, "-.25"},
		{1.5, "1.5"},
		{2.0001, "2"},
		{1.23456, "1.235"},
		{-0.0001, "0"},
		{841.89, "841.89"},
		{595.276, "595.276"},
		{math.NaN(), "0"},
	}
	for _, c := range cases {
		got := Number(c.in)
		if got != c.out {
			t.Errorf("Number(%g) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in        float64
		precision int
		out       string
	}{
		{1.5, 2, "1.5"},
		{1.0, 2, "1"},
		{0.125, 3, ".125"},
		{100, 0, "100"},
		{-0.5, 1, "-.5"},
	}
	for _, c := range cases {
		got := Format(c.in, c.precision)
		if got != c.out {
			t.Errorf("Format(%g, %d) = %q, want %q", c.in, c.precision, got, c.out)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(1.23456, 2); got != 1.23 {
		t.Errorf("Round = %g", got)
	}
}
