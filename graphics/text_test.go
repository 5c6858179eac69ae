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
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/pdf"
)

var helvetica = font.Query{Family: "Helvetica"}

func TestSetFont(t *testing.T) {
	b := newTestBuilder()
	if err := b.SetFont(helvetica, 12); !errors.Is(err, ErrNotInTextBlock) {
		t.Errorf("SetFont outside text: %v", err)
	}

	_ = b.BeginText()
	_ = b.SetCharacterSpacing(2)
	_ = b.SetHorizontalScale(50)
	if err := b.SetFont(helvetica, 10); err != nil {
		t.Fatal(err)
	}
	want := "BT\n2 Tc\n50 Tz\n/F1 10 Tf\n0 Tc\n100 Tz\n12 TL\n"
	if got := string(b.Bytes()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	ts := b.GetState().Text
	if ts.CharacterSpacing != 0 || ts.HorizontalScale != 100 || ts.Leading != 12 {
		t.Errorf("text state not reset: %+v", ts)
	}
	if ts.Font.PostScriptName != "Helvetica" {
		t.Errorf("selected %s", ts.Font.PostScriptName)
	}

	n := b.Len()
	err := b.SetFont(font.Query{Family: "Comic Sans"}, 10)
	if !errors.Is(err, font.ErrFontNotFound) || !errors.Is(err, pdf.ResourceError) {
		t.Errorf("unknown family: %v", err)
	}
	if b.Len() != n || b.Text.Size != 10 {
		t.Error("failed SetFont modified the builder")
	}
}

func TestFontMatching(t *testing.T) {
	b := newTestBuilder()
	_ = b.BeginText()
	_ = b.SetFont(font.Query{Family: "times", Weight: 700, Italic: true}, 10)
	if got := b.Text.Font.PostScriptName; got != "Times-BoldItalic" {
		t.Errorf("got %s", got)
	}
}

func TestHelloWorld(t *testing.T) {
	b := newTestBuilder()
	_ = b.BeginText()
	if err := b.SetFont(helvetica, 64); err != nil {
		t.Fatal(err)
	}
	err := b.TextAt(25, 700, "Hello, World!", &TextOptions{Stroke: true})
	if err != nil {
		t.Fatal(err)
	}
	_ = b.EndText()

	want := "BT\n/F1 64 Tf\n76.8 TL\n1 0 0 1 25 700 Tm\n1 Tr\n(Hello, World!) Tj\nET\n"
	if got := string(b.Bytes()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if err := b.CheckComplete(); err != nil {
		t.Error(err)
	}
}

func TestShowTextAdvance(t *testing.T) {
	b := newTestBuilder()
	_ = b.BeginText()
	_ = b.SetFont(font.Query{Family: "Courier"}, 10)
	_ = b.ShowText("abc")
	x, y := b.Text.Position()
	if !nearlyEqual(x, 18) || y != 0 {
		t.Errorf("position after ShowText = (%g, %g), want (18, 0)", x, y)
	}

	_ = b.SetTextMatrix(matrix.Translate(100, 200))
	_ = b.NextLine()
	x, y = b.Text.Position()
	if x != 100 || !nearlyEqual(y, 188) {
		t.Errorf("position after T* = (%g, %g), want (100, 188)", x, y)
	}
	_ = b.MoveText(5, -1)
	x, y = b.Text.Position()
	if x != 105 || !nearlyEqual(y, 187) {
		t.Errorf("position after Td = (%g, %g), want (105, 187)", x, y)
	}
}

func TestShowTextEscaping(t *testing.T) {
	b := newTestBuilder()
	_ = b.BeginText()
	if err := b.ShowText("x"); !errors.Is(err, ErrNoFont) {
		t.Errorf("ShowText without font: %v", err)
	}
	_ = b.SetFont(helvetica, 10)
	_ = b.ShowText(`a(b)c\`)
	if !bytes.Contains(b.Bytes(), []byte(`(a\(b\)c\\) Tj`)) {
		t.Errorf("unexpected content %q", b.Bytes())
	}
}

func TestShowTextKerned(t *testing.T) {
	m := *font.Helvetica.Metrics()
	m.PostScriptName = "Kerned-Regular"
	m.Family = "Kerned"
	m.Kern = map[font.Pair]float64{{Left: 'A', Right: 'V'}: -70}

	res := newTestResources()
	if err := res.reg.Add(&m); err != nil {
		t.Fatal(err)
	}
	b := NewBuilder(res, nil)
	_ = b.BeginText()
	_ = b.SetFont(font.Query{Family: "Kerned"}, 10)
	_ = b.ShowTextKerned("AVA")
	if !strings.Contains(string(b.Bytes()), "[(A) 70 (VA)] TJ") {
		t.Errorf("unexpected content %q", b.Bytes())
	}

	// 2·667 + 667 - 70 = 1931 glyph space units
	x, _ := b.Text.Position()
	if !nearlyEqual(x, 19.31) {
		t.Errorf("advance = %g, want 19.31", x)
	}
}

func TestTextAlignment(t *testing.T) {
	b := newTestBuilder()
	_ = b.BeginText()
	_ = b.SetFont(font.Query{Family: "Courier"}, 10)

	// "abcd" is 24 units wide
	_ = b.TextAt(100, 0, "abcd", &TextOptions{Align: AlignCenter, Fill: true})
	_ = b.TextAt(100, 0, "abcd", &TextOptions{Align: AlignRight, Fill: true, Stroke: true})
	got := string(b.Bytes())
	for _, want := range []string{
		"1 0 0 1 88 0 Tm\n(abcd) Tj",
		"1 0 0 1 76 0 Tm\n2 Tr\n(abcd) Tj",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("content %q does not contain %q", got, want)
		}
	}
}

func TestTextLines(t *testing.T) {
	b := newTestBuilder()
	_ = b.BeginText()
	_ = b.SetFont(helvetica, 10)
	err := b.TextLines(50, 100, []string{"one", "two"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	got := string(b.Bytes())
	want := "1 0 0 1 50 100 Tm\n(one) Tj\n1 0 0 1 50 88 Tm\n(two) Tj\n"
	if !strings.HasSuffix(got, want) {
		t.Errorf("got %q, want suffix %q", got, want)
	}
}

func TestMissingRunesLogged(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	b := NewBuilder(newTestResources(), logger)
	_ = b.BeginText()
	_ = b.SetFont(helvetica, 10)
	_ = b.ShowText("a世b")

	if !strings.Contains(string(b.Bytes()), "(ab) Tj") {
		t.Errorf("unexpected content %q", b.Bytes())
	}
	if !strings.Contains(buf.String(), "characters not in font") {
		t.Errorf("no warning logged: %q", buf.String())
	}
}

func TestTextParameters(t *testing.T) {
	b := newTestBuilder()
	_ = b.SetWordSpacing(3)
	_ = b.SetLeading(14)
	_ = b.SetRise(-2)
	_ = b.SetRenderingMode(TextRenderingModeInvisible)
	want := "3 Tw\n14 TL\n-2 Ts\n3 Tr\n"
	if got := string(b.Bytes()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if err := b.SetHorizontalScale(0); !errors.Is(err, pdf.ValidationError) {
		t.Errorf("zero horizontal scale: %v", err)
	}
	if err := b.NextLine(); !errors.Is(err, ErrNotInTextBlock) {
		t.Errorf("T* outside text: %v", err)
	}
}
