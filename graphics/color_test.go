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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfgen/pdf"
)

func TestClamp(t *testing.T) {
	inputs := []float64{-1, -0.001, 0, 0.25, 0.5, 1, 1.001, 7, math.NaN(), math.Inf(1)}
	check := func(c Color) {
		t.Helper()
		for _, x := range c.Clamp().Components() {
			if !(x >= 0 && x <= 1) {
				t.Errorf("%v clamped to %v", c, c.Clamp())
			}
		}
	}
	for _, a := range inputs {
		check(Gray(a))
		for _, b := range inputs {
			check(RGB{a, b, .5})
			check(CMYK{a, .1, b, 1})
		}
	}
}

func TestClampIdentity(t *testing.T) {
	valid := []Color{
		Gray(0), Gray(.5), Gray(1),
		RGB{0, .3, 1},
		CMYK{.1, .2, .3, .4},
	}
	for _, c := range valid {
		if d := cmp.Diff(c, c.Clamp()); d != "" {
			t.Errorf("Clamp changed %v (-want +got):\n%s", c, d)
		}
	}
}

func TestColorOperators(t *testing.T) {
	b := newTestBuilder()
	_ = b.SetFillColor(Gray(.5))
	_ = b.SetStrokeColor(RGB{1, 0, 0})
	_ = b.SetFillColor(CMYK{0, 0, 0, 2})
	_ = b.SetStrokeColor(RGB{1, 0, 0}) // unchanged
	_ = b.SetStrokeColor(Gray(0))
	want := ".5 g\n1 0 0 RG\n0 0 0 1 k\n0 G\n"
	if got := string(b.Bytes()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if b.FillColor != (CMYK{0, 0, 0, 1}) {
		t.Errorf("fill colour not clamped: %v", b.FillColor)
	}
}

func TestColorInPath(t *testing.T) {
	b := newTestBuilder()
	_ = b.MoveTo(0, 0)
	if err := b.SetFillColor(Gray(1)); !errors.Is(err, ErrInPath) {
		t.Errorf("colour change in path: %v", err)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want RGB
	}{
		{"#000", RGB{0, 0, 0}},
		{"#fff", RGB{1, 1, 1}},
		{"#FF0000", RGB{1, 0, 0}},
		{"#0f0", RGB{0, 1, 0}},
		{"white", RGB{1, 1, 1}},
		{"Black", RGB{0, 0, 0}},
		{"blue", RGB{0, 0, 1}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	for _, in := range []string{"", "#12", "#12345", "#ggg", "notacolour", "#-12"} {
		_, err := ParseColor(in)
		if !errors.Is(err, pdf.ValidationError) {
			t.Errorf("ParseColor(%q): got %v", in, err)
		}
	}
}
