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
	"bufio"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/pdfgen/pagetree"
	"seehuhn.de/go/pdfgen/pdf"
)

// Write writes the document as a PDF file.
//
// The document is consumed by the first call which passes the initial
// checks: afterwards, all methods which modify the document fail with
// [ErrFinalized], even if writing failed.
func (d *Document) Write(w io.Writer) error {
	if err := d.checkComplete("Write"); err != nil {
		return err
	}
	d.finalized = true
	return d.write(w)
}

// WriteFile writes the document to the named file.  The file is created
// or truncated.  If writing fails, the partial file is removed.
func (d *Document) WriteFile(path string) (err error) {
	const op = "WriteFile"
	if err := d.checkComplete(op); err != nil {
		return err
	}

	fd, err := os.Create(path)
	if err != nil {
		return pdf.Wrap(pdf.IoError, op, err)
	}
	defer func() {
		closeErr := fd.Close()
		if err == nil && closeErr != nil {
			err = pdf.Wrap(pdf.IoError, op, closeErr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	buf := bufio.NewWriter(fd)
	d.finalized = true
	err = d.write(buf)
	if err != nil {
		return err
	}
	err = buf.Flush()
	if err != nil {
		return pdf.Wrap(pdf.IoError, op, err)
	}
	return nil
}

// checkComplete verifies that the document can be written.
func (d *Document) checkComplete(op string) error {
	if d.finalized {
		return wrap(op, ErrFinalized, "")
	}
	if len(d.pages) == 0 {
		return wrap(op, ErrNoPage, "document has no pages")
	}
	for _, n := range d.Pages() {
		b := d.pages[n].content
		if b.Depth() > 0 {
			return wrap(op, ErrGraphicsStackNotEmpty,
				fmt.Sprintf("page %d has %d unrestored graphics states", n, b.Depth()))
		}
		if err := b.CheckComplete(); err != nil {
			return &pdf.Error{Kind: pdf.StateError, Op: op,
				Msg: fmt.Sprintf("page %d", n), Err: err}
		}
	}
	return nil
}

// write serializes the document.  The objects are written in the order
// images, fonts, resources, pages, page tree, metadata and catalog.
func (d *Document) write(w io.Writer) error {
	out, err := pdf.NewWriter(w, &pdf.WriterOptions{
		Version:     d.version,
		Compression: d.compression,
		Logger:      d.log,
	})
	if err != nil {
		return err
	}

	xObjects := pdf.Dict{}
	for _, id := range d.images.Used() {
		ref := out.Alloc()
		if err := d.images.MustGet(id).Embed(out, ref); err != nil {
			return err
		}
		xObjects[imageName(id)] = ref
	}
	d.log.Debug("images written", "count", len(xObjects))

	fonts := pdf.Dict{}
	for _, id := range d.fontIDs.Used() {
		ref := out.Alloc()
		if err := d.fontIDs.MustGet(id).Embed(out, ref); err != nil {
			return err
		}
		fonts[fontName(id)] = ref
	}
	d.log.Debug("fonts written", "count", len(fonts))

	resources := pdf.Dict{
		"ProcSet": pdf.Array{
			pdf.Name("PDF"), pdf.Name("Text"),
			pdf.Name("ImageB"), pdf.Name("ImageC"), pdf.Name("ImageI"),
		},
	}
	if len(fonts) > 0 {
		resources["Font"] = fonts
	}
	if len(xObjects) > 0 {
		resources["XObject"] = xObjects
	}
	resRef, err := out.Put(0, resources)
	if err != nil {
		return err
	}

	numbers := d.Pages()
	pageRefs := make([]pdf.Reference, len(numbers))
	for i := range pageRefs {
		pageRefs[i] = out.Alloc()
	}
	tree, err := pagetree.New(out, pageRefs)
	if err != nil {
		return err
	}
	for i, n := range numbers {
		if err := d.writePage(out, d.pages[n], pageRefs[i], tree.Parent(i), resRef); err != nil {
			return err
		}
	}

	inherit := pdf.Dict{
		"MediaBox": mediaBox(d.pageSize),
	}
	if d.rotation != 0 {
		inherit["Rotate"] = pdf.Integer(d.rotation)
	}
	if err := tree.Write(out, inherit); err != nil {
		return err
	}

	var infoRef pdf.Reference
	if infoDict := d.info.AsDict(); len(infoDict) > 0 {
		infoRef, err = out.Put(0, infoDict)
		if err != nil {
			return err
		}
	}

	catalog := pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": tree.Root(),
	}
	if d.xmp {
		ref, err := d.writeMetadata(out)
		if err != nil {
			return err
		}
		catalog["Metadata"] = ref
	}
	if d.hasLanguage() {
		catalog["Lang"] = pdf.Text(d.lang.String())
	}
	catalogRef, err := out.Put(0, catalog)
	if err != nil {
		return err
	}

	err = out.Close(catalogRef, infoRef)
	if err != nil {
		return err
	}
	d.log.Debug("document written",
		"pages", len(numbers), "bytes", out.Pos())
	return nil
}

func (d *Document) writePage(out *pdf.Writer, p *Page, ref, parent, resources pdf.Reference) error {
	contentRef, err := out.PutStream(0, pdf.Dict{}, p.content.Bytes())
	if err != nil {
		return fmt.Errorf("page %d: %w", p.number, err)
	}

	dict := pdf.Dict{
		"Type":      pdf.Name("Page"),
		"Parent":    parent,
		"Resources": resources,
		"Contents":  contentRef,
	}
	if size := d.sizeOf(p); size != d.pageSize {
		dict["MediaBox"] = mediaBox(size)
	}
	if rot := d.rotationOf(p); rot != d.rotation {
		dict["Rotate"] = pdf.Integer(rot)
	}
	_, err = out.Put(ref, dict)
	return err
}

func mediaBox(s Size) pdf.Array {
	r := s.Rect()
	return pdf.Rectangle(r.LLx, r.LLy, r.URx, r.URy)
}

func imageName(id int) pdf.Name {
	return pdf.Name(fmt.Sprintf("Im%d", id))
}

func fontName(id int) pdf.Name {
	return pdf.Name(fmt.Sprintf("F%d", id))
}
