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
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriterHeader(t *testing.T) {
	buf := &bytes.Buffer{}
	_, err := NewWriter(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff("%PDF-1.7\n%\x80\x80\x80\x80\n", buf.String()); d != "" {
		t.Error(d)
	}
}

func TestWriterOptions(t *testing.T) {
	_, err := NewWriter(io.Discard, &WriterOptions{Compression: 10})
	if !errors.Is(err, ValidationError) {
		t.Errorf("expected validation error, got %v", err)
	}
	_, err = NewWriter(io.Discard, &WriterOptions{Version: 99})
	if !errors.Is(err, ValidationError) {
		t.Errorf("expected validation error, got %v", err)
	}
}

// TestXRefOffsets checks that the offsets in the cross-reference table
// point to the start of the corresponding objects.
func TestXRefOffsets(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, &WriterOptions{Compression: 6})
	if err != nil {
		t.Fatal(err)
	}

	catalog := w.Alloc()
	pages := w.Alloc()
	info, err := w.Put(0, Dict{"Title": Text("Tëst")})
	if err != nil {
		t.Fatal(err)
	}
	content, err := w.PutStream(0, nil, bytes.Repeat([]byte("0 0 m 10 10 l S\n"), 50))
	if err != nil {
		t.Fatal(err)
	}
	page, err := w.Put(0, Dict{
		"Type":     Name("Page"),
		"Parent":   pages,
		"Contents": content,
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = w.Put(pages, Dict{
		"Type":  Name("Pages"),
		"Kids":  Array{page},
		"Count": Integer(1),
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = w.Put(catalog, Dict{"Type": Name("Catalog"), "Pages": pages})
	if err != nil {
		t.Fatal(err)
	}
	err = w.Close(catalog, info)
	if err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	offsets := readXRef(t, data)
	if len(offsets) != 5 {
		t.Fatalf("expected 5 objects, got %d", len(offsets))
	}
	for i, pos := range offsets {
		id := i + 1
		want := fmt.Sprintf("%d 0 obj\n", id)
		if !bytes.HasPrefix(data[pos:], []byte(want)) {
			t.Errorf("object %d: offset %d does not point to %q", id, pos, want)
		}
		recorded, ok := w.Offset(Reference(id))
		if !ok || recorded != pos {
			t.Errorf("object %d: recorded offset %d, xref %d", id, recorded, pos)
		}
	}

	if !bytes.Contains(data, []byte("trailer\n<<\n/Info 3 0 R\n/Root 1 0 R\n/Size 6\n>>")) {
		t.Error("wrong trailer")
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Error("missing end-of-file marker")
	}
}

func TestStreamCompression(t *testing.T) {
	body := bytes.Repeat([]byte("1 0 0 RG\n"), 100)

	for _, level := range []int{0, 1, 9} {
		t.Run(fmt.Sprintf("level%d", level), func(t *testing.T) {
			buf := &bytes.Buffer{}
			w, err := NewWriter(buf, &WriterOptions{Compression: level})
			if err != nil {
				t.Fatal(err)
			}
			_, err = w.PutStream(0, Dict{}, body)
			if err != nil {
				t.Fatal(err)
			}
			out := buf.Bytes()
			hasFilter := bytes.Contains(out, []byte("/Filter /FlateDecode"))
			if hasFilter != (level > 0) {
				t.Fatalf("level %d: filter present = %t", level, hasFilter)
			}
			if level == 0 {
				if !bytes.Contains(out, body) {
					t.Error("uncompressed data missing")
				}
				return
			}

			start := bytes.Index(out, []byte("stream\n")) + len("stream\n")
			end := bytes.LastIndex(out, []byte("\nendstream"))
			zr, err := zlib.NewReader(bytes.NewReader(out[start:end]))
			if err != nil {
				t.Fatal(err)
			}
			dec, err := io.ReadAll(zr)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(dec, body) {
				t.Error("round trip failed")
			}
			m := regexp.MustCompile(`/Length (\d+)`).FindSubmatch(out)
			n, _ := strconv.Atoi(string(m[1]))
			if n != end-start {
				t.Errorf("wrong /Length %d != %d", n, end-start)
			}
		})
	}
}

// TestStreamNoGain checks that compression is only used if it makes the
// data smaller.
func TestStreamNoGain(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, &WriterOptions{Compression: 9})
	if err != nil {
		t.Fatal(err)
	}
	_, err = w.PutStream(0, Dict{}, []byte("q"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "Filter") {
		t.Error("tiny stream should not be compressed")
	}

	buf.Reset()
	_, err = w.PutStream(0, Dict{"Filter": Name("DCTDecode")}, bytes.Repeat([]byte{0}, 1000))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "FlateDecode") {
		t.Error("pre-filtered stream was compressed again")
	}
}

func TestWriterErrors(t *testing.T) {
	w, err := NewWriter(io.Discard, nil)
	if err != nil {
		t.Fatal(err)
	}
	ref, err := w.Put(0, Integer(1))
	if err != nil {
		t.Fatal(err)
	}
	_, err = w.Put(ref, Integer(2))
	if !errors.Is(err, StateError) {
		t.Errorf("double write: expected state error, got %v", err)
	}
	_, err = w.Put(99, Integer(2))
	if !errors.Is(err, StateError) {
		t.Errorf("unallocated: expected state error, got %v", err)
	}

	w.Alloc()
	err = w.Close(ref, 0)
	if !errors.Is(err, StateError) {
		t.Errorf("missing object: expected state error, got %v", err)
	}
}

type failingWriter struct {
	n int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n < len(p) {
		k := w.n
		w.n = 0
		return k, errors.New("disk full")
	}
	w.n -= len(p)
	return len(p), nil
}

func TestWriterIoError(t *testing.T) {
	w, err := NewWriter(&failingWriter{n: 20}, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = w.Put(0, String("a somewhat longer string"))
	if !errors.Is(err, IoError) {
		t.Errorf("expected I/O error, got %v", err)
	}
	_, err = w.Put(0, Integer(1))
	if !errors.Is(err, IoError) {
		t.Errorf("errors should be sticky, got %v", err)
	}
}

// readXRef parses the cross-reference table of a file written by Writer.
func readXRef(t *testing.T, data []byte) []int64 {
	t.Helper()

	m := regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`).FindSubmatch(data)
	if m == nil {
		t.Fatal("startxref not found")
	}
	pos, _ := strconv.Atoi(string(m[1]))
	if !bytes.HasPrefix(data[pos:], []byte("xref\n0 ")) {
		t.Fatal("startxref does not point to xref table")
	}
	lines := strings.Split(string(data[pos:]), "\n")
	n, _ := strconv.Atoi(strings.Fields(lines[1])[1])
	var res []int64
	rest := data[pos+len(lines[0])+len(lines[1])+2:]
	for i := 0; i < n; i++ {
		entry := rest[20*i : 20*i+20]
		if entry[18] != '\r' || entry[19] != '\n' {
			t.Fatalf("xref entry %d has wrong length", i)
		}
		if i == 0 {
			continue
		}
		off, err := strconv.ParseInt(string(entry[:10]), 10, 64)
		if err != nil {
			t.Fatal(err)
		}
		res = append(res, off)
	}
	return res
}
