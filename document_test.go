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

package pdfgen

import (
	"bytes"
	"context"
	"errors"
	stdimage "image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/graphics"
	"seehuhn.de/go/pdfgen/pdf"
)

func newUncompressed(t *testing.T) *Document {
	t.Helper()
	doc, err := New(&Options{Compression: NoCompression})
	require.NoError(t, err)
	return doc
}

func makePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

var (
	objRegexp  = regexp.MustCompile(`(?m)^(\d+) 0 obj$`)
	xrefRegexp = regexp.MustCompile(`(?m)^(\d{10}) 00000 n\r$`)
	rootRegexp = regexp.MustCompile(`/Root (\d+) 0 R`)
)

// checkStructure verifies the xref table and the trailer of a PDF file.
func checkStructure(t *testing.T, data []byte) {
	t.Helper()

	xrefPos := bytes.LastIndex(data, []byte("\nxref\n")) + 1
	require.Positive(t, xrefPos, "no xref table")

	entries := xrefRegexp.FindAllSubmatch(data[xrefPos:], -1)
	require.NotEmpty(t, entries)
	for i, m := range entries {
		offset, err := strconv.Atoi(string(m[1]))
		require.NoError(t, err)
		want := strconv.Itoa(i+1) + " 0 obj\n"
		assert.True(t, bytes.HasPrefix(data[offset:], []byte(want)),
			"xref entry %d points to %q", i+1, data[offset:min(offset+20, len(data))])
	}
	assert.Len(t, objRegexp.FindAll(data, -1), len(entries))

	startxref := regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`).FindSubmatch(data)
	require.NotNil(t, startxref)
	assert.Equal(t, strconv.Itoa(xrefPos), string(startxref[1]))

	root := rootRegexp.FindSubmatch(data[xrefPos:])
	require.NotNil(t, root)
	rootID, _ := strconv.Atoi(string(root[1]))
	offset, _ := strconv.Atoi(string(entries[rootID-1][1]))
	assert.Contains(t, string(data[offset:offset+200]), "/Type /Catalog")
}

func TestHelloWorld(t *testing.T) {
	doc := newUncompressed(t)
	_, err := doc.NewPage(nil)
	require.NoError(t, err)

	page, err := doc.Canvas()
	require.NoError(t, err)
	require.NoError(t, page.BeginText())
	require.NoError(t, page.SetFont(font.Query{Family: "Helvetica"}, 64))
	require.NoError(t, page.TextAt(25, 700, "Hello, World!", &graphics.TextOptions{Stroke: true}))
	require.NoError(t, page.EndText())

	buf := &bytes.Buffer{}
	require.NoError(t, doc.Write(buf))
	data := buf.Bytes()

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-1.7\n")))
	assert.Equal(t, 1, bytes.Count(data, []byte("/Type /Page\n")))
	assert.Regexp(t, `(?s)64 Tf\n.*\(Hello, World!\) Tj`, string(data))
	assert.Contains(t, string(data), "/BaseFont /Helvetica")
	checkStructure(t, data)

	err = doc.Write(&bytes.Buffer{})
	assert.ErrorIs(t, err, ErrFinalized)
	_, err = doc.NewPage(nil)
	assert.ErrorIs(t, err, ErrFinalized)
}

func TestDuplicatePage(t *testing.T) {
	doc := newUncompressed(t)
	_, err := doc.NewPage(&PageOptions{Number: 3})
	require.NoError(t, err)
	_, err = doc.NewPage(&PageOptions{Number: 3})
	assert.ErrorIs(t, err, pdf.ValidationError)
	assert.ErrorIs(t, err, ErrInvalidPage)
	assert.Equal(t, []int{3}, doc.Pages())
}

func TestPageNumbers(t *testing.T) {
	doc := newUncompressed(t)
	n, err := doc.NewPage(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, doc.SelectPage(5))
	n, err = doc.NewPage(nil)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, []int{1, 5, 6}, doc.Pages())

	cur, ok := doc.CurrentPage()
	assert.True(t, ok)
	assert.Equal(t, 6, cur)

	assert.ErrorIs(t, doc.SelectPage(0), pdf.ValidationError)
	_, err = doc.NewPage(&PageOptions{Rotation: 45})
	assert.ErrorIs(t, err, pdf.ValidationError)
}

func TestDeletePage(t *testing.T) {
	doc := newUncompressed(t)
	_, _ = doc.NewPage(nil)
	_, _ = doc.NewPage(nil)

	assert.ErrorIs(t, doc.DeletePage(2), ErrIsCurrentPage)
	assert.ErrorIs(t, doc.DeletePage(7), ErrInvalidPage)

	require.NoError(t, doc.SelectPage(1))
	page, _ := doc.Canvas()
	require.NoError(t, page.SaveState())
	require.NoError(t, doc.SelectPage(2))
	err := doc.DeletePage(1)
	assert.ErrorIs(t, err, ErrGraphicsStackNotEmpty)
	assert.ErrorIs(t, err, pdf.StateError)

	require.NoError(t, page.RestoreState())
	require.NoError(t, doc.DeletePage(1))
	assert.Equal(t, []int{2}, doc.Pages())
}

func TestUnbalancedState(t *testing.T) {
	doc := newUncompressed(t)
	_, _ = doc.NewPage(nil)
	page, _ := doc.Canvas()
	require.NoError(t, page.SaveState())

	err := doc.Write(&bytes.Buffer{})
	assert.ErrorIs(t, err, ErrGraphicsStackNotEmpty)

	// the failed attempt does not consume the document
	require.NoError(t, page.RestoreState())
	assert.NoError(t, doc.Write(&bytes.Buffer{}))
}

func TestNoPages(t *testing.T) {
	doc := newUncompressed(t)
	err := doc.Write(&bytes.Buffer{})
	assert.ErrorIs(t, err, ErrNoPage)
	_, err = doc.Canvas()
	assert.ErrorIs(t, err, ErrNoPage)
}

func TestImageAspect(t *testing.T) {
	doc := newUncompressed(t)
	_, _ = doc.NewPage(nil)

	tag := StringTag("logo")
	id, err := doc.LoadImageData(makePNG(t, 200, 100), tag)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	w, h, err := doc.ImageSize(tag)
	require.NoError(t, err)
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)

	page, _ := doc.Canvas()
	require.NoError(t, page.PlaceImage(tag, &graphics.ImageOptions{Width: 50}))
	assert.Contains(t, string(page.Bytes()), "50 0 0 25 0 0 cm\n/Im1 Do\n")

	err = page.PlaceImage(StringTag("other"), nil)
	assert.ErrorIs(t, err, ErrImageNotFound)
	assert.ErrorIs(t, err, pdf.ResourceError)

	_, err = doc.LoadImageData(makePNG(t, 1, 1), tag)
	assert.ErrorIs(t, err, ErrDuplicateTag)

	buf := &bytes.Buffer{}
	require.NoError(t, doc.Write(buf))
	data := buf.String()
	assert.Contains(t, data, "/Subtype /Image")
	assert.Contains(t, data, "/XObject <<\n/Im1 ")
	checkStructure(t, buf.Bytes())
}

func TestUnusedResources(t *testing.T) {
	doc := newUncompressed(t)
	_, _ = doc.NewPage(nil)
	_, err := doc.LoadImageData(makePNG(t, 4, 4), IntTag(1))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, doc.Write(buf))
	assert.NotContains(t, buf.String(), "/Subtype /Image")
	assert.NotContains(t, buf.String(), "/Type /Font")
}

func TestLoadImages(t *testing.T) {
	dir := t.TempDir()
	var sources []ImageSource
	for i := range 5 {
		path := filepath.Join(dir, strconv.Itoa(i)+".png")
		require.NoError(t, os.WriteFile(path, makePNG(t, 10+i, 10), 0o644))
		sources = append(sources, ImageSource{Path: path, Tag: IntTag(int64(i))})
	}

	doc := newUncompressed(t)
	ids, err := doc.LoadImages(context.Background(), sources)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids)
	w, _, err := doc.ImageSize(IntTag(3))
	require.NoError(t, err)
	assert.Equal(t, 13, w)

	// a missing file registers nothing
	doc = newUncompressed(t)
	bad := append(sources[:2:2], ImageSource{Path: filepath.Join(dir, "missing.png"), Tag: StringTag("x")})
	_, err = doc.LoadImages(context.Background(), bad)
	assert.ErrorIs(t, err, pdf.IoError)
	_, _, err = doc.ImageSize(IntTag(0))
	assert.ErrorIs(t, err, ErrImageNotFound)

	_, err = doc.LoadImage(filepath.Join(dir, "missing.png"), StringTag("y"))
	assert.ErrorIs(t, err, pdf.IoError)
}

func TestPageSize(t *testing.T) {
	doc, err := New(&Options{Compression: NoCompression, PageSize: Letter, Orientation: Landscape})
	require.NoError(t, err)
	_, _ = doc.NewPage(nil)
	_, _ = doc.NewPage(&PageOptions{Size: A5})
	require.NoError(t, doc.SetPageSizeName(OnPage(1), "a4", Landscape))
	require.NoError(t, doc.SetRotation(Current, 90))

	s, err := doc.PageSizeOf(1)
	require.NoError(t, err)
	assert.Equal(t, Size{841.89, 595.28}, s)
	s, err = doc.PageSizeOf(2)
	require.NoError(t, err)
	assert.Equal(t, A5, s)

	assert.ErrorIs(t, doc.SetPageSizeName(Default, "A11", AsGiven), pdf.ValidationError)
	assert.ErrorIs(t, doc.SetPageSize(OnPage(9), A4, AsGiven), ErrInvalidPage)
	assert.ErrorIs(t, doc.SetRotation(Default, 45), pdf.ValidationError)

	buf := &bytes.Buffer{}
	require.NoError(t, doc.Write(buf))
	data := buf.String()
	assert.Contains(t, data, "/MediaBox [0 0 792 612]")
	assert.Contains(t, data, "/MediaBox [0 0 841.89 595.28]")
	assert.Contains(t, data, "/Rotate 90")
	checkStructure(t, buf.Bytes())
}

func TestOrient(t *testing.T) {
	assert.Equal(t, Size{20, 10}, Size{10, 20}.Orient(Landscape))
	assert.Equal(t, Size{20, 10}, Size{20, 10}.Orient(Landscape))
	assert.Equal(t, Size{10, 20}, Size{20, 10}.Orient(Portrait))
	assert.Equal(t, Size{20, 10}, Size{20, 10}.Orient(AsGiven))
}

func TestOptions(t *testing.T) {
	for _, opt := range []*Options{
		{Compression: 10},
		{Rotation: 30},
		{Language: "not a language tag!"},
		{PageSize: Size{-1, 10}},
	} {
		_, err := New(opt)
		assert.ErrorIs(t, err, pdf.ValidationError, "%+v", opt)
	}
}

func TestInfo(t *testing.T) {
	doc, err := New(&Options{Compression: NoCompression, Language: "de-DE", XMP: true})
	require.NoError(t, err)
	_, _ = doc.NewPage(nil)

	date := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	require.NoError(t, doc.SetInfo(Title, "Grüße"))
	require.NoError(t, doc.SetInfo(Author, "A. N. Author"))
	require.NoError(t, doc.SetInfo(CreationDate, date))
	assert.ErrorIs(t, doc.SetInfo(Title, 7), pdf.ValidationError)
	assert.ErrorIs(t, doc.SetInfo(ModDate, "yesterday"), pdf.ValidationError)
	assert.ErrorIs(t, doc.SetInfo("Colour", "red"), pdf.ValidationError)

	buf := &bytes.Buffer{}
	require.NoError(t, doc.Write(buf))
	data := buf.String()
	assert.Contains(t, data, "/Author (A. N. Author)")
	assert.Contains(t, data, "/CreationDate (D:20260314150926+00'00')")
	assert.Contains(t, data, "/Producer (seehuhn.de/go/pdfgen)")
	assert.Contains(t, data, "/Lang (de-DE)")
	assert.Contains(t, data, "/Subtype /XML")
	assert.Contains(t, data, "A. N. Author</rdf:li>")
	checkStructure(t, buf.Bytes())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	doc := newUncompressed(t)
	_, _ = doc.NewPage(nil)
	require.NoError(t, doc.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	checkStructure(t, data)

	doc = newUncompressed(t)
	_, _ = doc.NewPage(nil)
	err = doc.WriteFile(filepath.Join(t.TempDir(), "missing", "out.pdf"))
	assert.ErrorIs(t, err, pdf.IoError)
}

func TestFonts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.afm")
	require.NoError(t, os.WriteFile(path, []byte(testAFM), 0o644))

	doc := newUncompressed(t)
	id1, err := doc.LoadFont(path)
	require.NoError(t, err)
	id2, err := doc.LoadFont(path)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	_, _ = doc.NewPage(nil)
	page, _ := doc.Canvas()
	require.NoError(t, page.BeginText())
	require.NoError(t, page.SetFont(font.Query{Family: "Test"}, 12))
	require.NoError(t, page.ShowText("AV"))
	err = page.SetFont(font.Query{Family: "Missing"}, 12)
	assert.ErrorIs(t, err, ErrFontNotFound)
	require.NoError(t, page.EndText())

	buf := &bytes.Buffer{}
	require.NoError(t, doc.Write(buf))
	assert.Contains(t, buf.String(), "/BaseFont /Test-Regular")
	assert.Contains(t, buf.String(), "/FontDescriptor")
	checkStructure(t, buf.Bytes())
}

const testAFM = `StartFontMetrics 4.1
FontName Test-Regular
FullName Test Regular
FamilyName Test
Weight Medium
ItalicAngle 0
IsFixedPitch false
FontBBox -10 -200 900 800
CapHeight 700
XHeight 500
Ascender 750
Descender -200
StartCharMetrics 3
C 32 ; WX 250 ; N space ; B 0 0 0 0 ;
C 65 ; WX 600 ; N A ; B 0 0 600 700 ;
C 86 ; WX 600 ; N V ; B 0 0 600 700 ;
EndCharMetrics
StartKernData
StartKernPairs 1
KPX A V -80
EndKernPairs
EndKernData
EndFontMetrics
`

func TestErrorKinds(t *testing.T) {
	for _, sentinel := range []error{ErrAlreadyInTextBlock, ErrStackUnderflow, ErrIsCurrentPage} {
		assert.True(t, errors.Is(sentinel, pdf.StateError))
	}
	assert.True(t, errors.Is(ErrDuplicateTag, pdf.ValidationError))
	assert.True(t, errors.Is(ErrCorruptImage, pdf.CodecError))
}
