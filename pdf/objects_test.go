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

package pdf

import (
	"bytes"
	"strconv"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(-12), "-12"},
		{Number(64), "64"},
		{Number(0.5), ".5"},
		{Number(2.0 / 3.0), ".667"},
		{Name("Type"), "/Type"},
		{Name("A B"), "/A#20B"},
		{Name("a/b"), "/a#2Fb"},
		{Name("x#y"), "/x#y"},
		{String("a"), "(a)"},
		{String("a (test version)"), `(a \(test version\))`},
		{String(`back\slash`), `(back\\slash)`},
		{String("\b\t\n\f\r"), `(\b\t\n\f\r)`},
		{String("\000\033"), `(\000\033)`},
		{String(""), "()"},
		{UTF16("ä"), "<FEFF00E4>"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Array{}, "[]"},
		{Reference(12), "12 0 R"},
		{Raw("/DeviceRGB"), "/DeviceRGB"},
		{Dict{"B": Integer(2), "A": Integer(1), "C": nil}, "<<\n/A 1\n/B 2\n>>"},
		{Dict(nil), "null"},
		{Rectangle(0, 0, 595.276, 841.89), "[0 0 595.276 841.89]"},
	}
	for _, test := range cases {
		out := Format(test.in)
		if out != test.out {
			t.Errorf("wrongly formatted, expected %q but got %q",
				test.out, out)
		}
	}
}

func TestText(t *testing.T) {
	if _, ok := Text("Hello, World!").(String); !ok {
		t.Error("ASCII text should use a literal string")
	}
	if _, ok := Text("Grüße").(UTF16); !ok {
		t.Error("non-ASCII text should use UTF-16")
	}
	if out := Format(Text("中文")); out != "<FEFF4E2D6587>" {
		t.Errorf("wrong UTF-16 encoding %q", out)
	}
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("X", 2*60*60)
	d := time.Date(2026, 3, 4, 5, 6, 7, 0, loc)
	got := string(Date(d))
	want := "D:20260304050607+02'00'"
	if got != want {
		t.Errorf("wrong date %q != %q", got, want)
	}
}

// TestNameEscapeIdempotent checks that escaping an escaped name is a no-op.
func TestNameEscapeIdempotent(t *testing.T) {
	for _, in := range []string{"", "Helvetica", "A B", "(x)", "\x00\xff", "a#b", "Im12"} {
		once := EscapeName(in)
		twice := EscapeName(once)
		if once != twice {
			t.Errorf("%q: %q != %q", in, once, twice)
		}
	}
}

// TestNameEscapeInjective checks that distinct names over the printable
// alphabet (minus delimiters) stay distinct.
func TestNameEscapeInjective(t *testing.T) {
	var alphabet []byte
	for c := byte(33); c <= 126; c++ {
		if !needsEscape(c) {
			alphabet = append(alphabet, c)
		}
	}
	seen := make(map[string]string)
	for _, a := range alphabet {
		for _, b := range alphabet {
			in := string([]byte{a, b})
			out := EscapeName(in)
			if out != in {
				t.Fatalf("%q was modified", in)
			}
			if prev, dup := seen[out]; dup {
				t.Fatalf("%q and %q both escape to %q", prev, in, out)
			}
			seen[out] = in
		}
	}
}

func FuzzName(f *testing.F) {
	f.Add("Type")
	f.Add("a b/c")
	f.Add("\x00#\xff")
	f.Fuzz(func(t *testing.T, s string) {
		esc := EscapeName(s)
		for i := 0; i < len(esc); i++ {
			if needsEscape(esc[i]) {
				t.Fatalf("unescaped byte %q in %q", esc[i], esc)
			}
		}
		if EscapeName(esc) != esc {
			t.Errorf("escaping is not idempotent for %q", s)
		}
	})
}

func FuzzString(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("ABC"))
	f.Add([]byte{0, 1, 2})
	f.Add([]byte{0xFF, 0x00})
	f.Add([]byte("(\\)"))
	f.Fuzz(func(t *testing.T, data []byte) {
		enc := Format(String(data))
		dec, err := unquote(enc)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(dec, data) {
			t.Errorf("wrong string: %q != %q", dec, data)
		}
	})
}

// unquote decodes the literal strings written by String.PDF.
func unquote(s string) ([]byte, error) {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return nil, strconv.ErrSyntax
	}
	s = s[1 : len(s)-1]
	var res []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '(' || c == ')' {
			return nil, strconv.ErrSyntax
		}
		if c != '\\' {
			res = append(res, c)
			continue
		}
		i++
		if i >= len(s) {
			return nil, strconv.ErrSyntax
		}
		switch s[i] {
		case 'b':
			res = append(res, '\b')
		case 't':
			res = append(res, '\t')
		case 'n':
			res = append(res, '\n')
		case 'f':
			res = append(res, '\f')
		case 'r':
			res = append(res, '\r')
		case '\\', '(', ')':
			res = append(res, s[i])
		default:
			if i+3 > len(s) {
				return nil, strconv.ErrSyntax
			}
			v, err := strconv.ParseUint(s[i:i+3], 8, 8)
			if err != nil {
				return nil, err
			}
			res = append(res, byte(v))
			i += 2
		}
	}
	return res, nil
}
