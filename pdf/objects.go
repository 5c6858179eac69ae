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
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slices"
	"golang.org/x/text/encoding/unicode"

	"seehuhn.de/go/pdfgen/internal/float"
)

// Object represents a value in a PDF file.  The types in this package which
// implement this interface are [Bool], [Integer], [Number], [Name], [String],
// [UTF16], [Array], [Dict], [Reference] and [Raw].
//
// No validation happens during serialization; callers must pass
// well-formed values.
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the [Object] interface.
func (x Bool) PDF(w io.Writer) error {
	var s string
	if x {
		s = "true"
	} else {
		s = "false"
	}
	_, err := io.WriteString(w, s)
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatInt(int64(x), 10))
	return err
}

// Number represents a real number in a PDF file.
// Values which are integers are written without a decimal point,
// all other values are rounded to three decimal places.
type Number float64

// PDF implements the [Object] interface.
func (x Number) PDF(w io.Writer) error {
	_, err := io.WriteString(w, float.Number(float64(x)))
	return err
}

// Name represents a name object in a PDF file.
type Name string

// PDF implements the [Object] interface.
//
// Bytes outside the range 33 to 126 and the delimiter characters are
// written as "#xx".  The character "#" itself is left alone, so that
// escaping a name which was already escaped does not change it.
func (x Name) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "/"+EscapeName(string(x)))
	return err
}

// EscapeName returns the escaped form of a name, without the leading slash.
func EscapeName(s string) string {
	var funny bool
	for i := 0; i < len(s); i++ {
		if needsEscape(s[i]) {
			funny = true
			break
		}
	}
	if !funny {
		return s
	}

	buf := &strings.Builder{}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if needsEscape(c) {
			fmt.Fprintf(buf, "#%02X", c)
		} else {
			buf.WriteByte(c)
		}
	}
	return buf.String()
}

func needsEscape(c byte) bool {
	if c < 33 || c > 126 {
		return true
	}
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// String represents a literal string in a PDF file.  The character set
// encoding, if any, is determined by the context.
type String []byte

// PDF implements the [Object] interface.
func (x String) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.Grow(len(x) + 2)
	buf.WriteByte('(')
	for _, c := range x {
		switch c {
		case '\\':
			buf.WriteString(`\\`)
		case '(':
			buf.WriteString(`\(`)
		case ')':
			buf.WriteString(`\)`)
		case '\b':
			buf.WriteString(`\b`)
		case '\t':
			buf.WriteString(`\t`)
		case '\n':
			buf.WriteString(`\n`)
		case '\f':
			buf.WriteString(`\f`)
		case '\r':
			buf.WriteString(`\r`)
		default:
			if c < 32 || c == 127 {
				fmt.Fprintf(buf, `\%03o`, c)
			} else {
				buf.WriteByte(c)
			}
		}
	}
	buf.WriteByte(')')
	_, err := w.Write(buf.Bytes())
	return err
}

// UTF16 represents a text string which is written using UTF-16BE encoding,
// with a byte order mark, as a hexadecimal string.
type UTF16 string

// PDF implements the [Object] interface.
func (x UTF16) PDF(w io.Writer) error {
	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	data, err := enc.Bytes([]byte(x))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "<%X>", data)
	return err
}

// Text returns a PDF "text string" for s.  Strings consisting only of
// printable ASCII characters are represented as literal strings,
// everything else uses UTF-16.
func Text(s string) Object {
	for i := 0; i < len(s); i++ {
		if s[i] < 32 || s[i] > 126 {
			return UTF16(s)
		}
	}
	return String(s)
}

// Date creates a PDF String object encoding the given date and time.
func Date(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	s = s[:k] + "'" + s[k:] + "'"
	return String(s)
}

// Array represent an array of objects in a PDF file.
// Nil elements are written as "null".
type Array []Object

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "[")
	if err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			_, err = io.WriteString(w, " ")
			if err != nil {
				return err
			}
		}
		err = writeObject(w, val)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "]")
	return err
}

// Dict represent a Dictionary object in a PDF file.
// Entries with a nil value are omitted, the remaining entries are
// written in sorted order.
type Dict map[Name]Object

// PDF implements the [Object] interface.
func (x Dict) PDF(w io.Writer) error {
	if x == nil {
		_, err := io.WriteString(w, "null")
		return err
	}

	keys := make([]Name, 0, len(x))
	for key, val := range x {
		if val == nil {
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)

	_, err := io.WriteString(w, "<<")
	if err != nil {
		return err
	}
	for _, name := range keys {
		_, err = io.WriteString(w, "\n")
		if err != nil {
			return err
		}
		err = name.PDF(w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, " ")
		if err != nil {
			return err
		}
		err = x[name].PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "\n>>")
	return err
}

// Reference represents a reference to an indirect object in a PDF file.
// Generation numbers are always zero for the files written by this module.
type Reference uint32

// PDF implements the [Object] interface.
func (x Reference) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d 0 R", uint32(x))
	return err
}

// Raw is written to the PDF file without any modification.
type Raw []byte

// PDF implements the [Object] interface.
func (x Raw) PDF(w io.Writer) error {
	_, err := w.Write(x)
	return err
}

func writeObject(w io.Writer, obj Object) error {
	if obj == nil {
		_, err := io.WriteString(w, "null")
		return err
	}
	return obj.PDF(w)
}

// Format returns the PDF representation of an object as a string.
func Format(obj Object) string {
	buf := &strings.Builder{}
	err := writeObject(buf, obj)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return buf.String()
}

// Rectangle returns a rectangle array [llx lly urx ury].
func Rectangle(llx, lly, urx, ury float64) Array {
	return Array{Number(llx), Number(lly), Number(urx), Number(ury)}
}
