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
	"fmt"
	"io"
	"log/slog"
)

// WriterOptions control how a PDF file is written.
type WriterOptions struct {
	// Version is the PDF version written into the file header.
	// The default is PDF 1.7.
	Version Version

	// Compression is the zlib compression level used for streams,
	// between 0 (no compression) and 9 (best compression).
	Compression int

	// Logger, if set, receives debug messages about the objects written.
	Logger *slog.Logger
}

// Writer represents a PDF file open for writing.
//
// Objects are identified by sequential object numbers, starting at 1.  The
// byte offset of every object is recorded so that the cross-reference table
// can be emitted by [Writer.Close].
type Writer struct {
	w       *posWriter
	version Version
	level   int
	log     *slog.Logger

	nextRef Reference
	xref    map[Reference]int64
	closed  bool
}

// NewWriter prepares a PDF file for writing and writes the file header.
func NewWriter(w io.Writer, opt *WriterOptions) (*Writer, error) {
	if opt == nil {
		opt = &WriterOptions{}
	}
	ver := opt.Version
	if ver == 0 {
		ver = V1_7
	}
	verString, err := ver.ToString()
	if err != nil {
		return nil, &Error{Kind: ValidationError, Op: "NewWriter", Err: err}
	}
	if opt.Compression < 0 || opt.Compression > 9 {
		return nil, &Error{Kind: ValidationError, Op: "NewWriter",
			Msg: fmt.Sprintf("invalid compression level %d", opt.Compression)}
	}
	logger := opt.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pdf := &Writer{
		w:       &posWriter{w: w},
		version: ver,
		level:   opt.Compression,
		log:     logger,
		nextRef: 1,
		xref:    make(map[Reference]int64),
	}

	_, err = fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", verString)
	if err != nil {
		return nil, pdf.ioError(err)
	}
	return pdf, nil
}

// Version returns the PDF version of the file being written.
func (pdf *Writer) Version() Version {
	return pdf.version
}

// Compression returns the zlib compression level used for streams.
func (pdf *Writer) Compression() int {
	return pdf.level
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	ref := pdf.nextRef
	pdf.nextRef++
	return ref
}

// Pos returns the number of bytes written so far.
func (pdf *Writer) Pos() int64 {
	return pdf.w.pos
}

// Offset returns the byte offset at which the object ref was written.
func (pdf *Writer) Offset(ref Reference) (int64, bool) {
	pos, ok := pdf.xref[ref]
	return pos, ok
}

// Put writes an object to the PDF file, as an indirect object.  If ref is 0,
// a new object number is allocated.  The returned reference can be used to
// refer to this object from other parts of the file.
func (pdf *Writer) Put(ref Reference, obj Object) (Reference, error) {
	ref, err := pdf.begin(ref)
	if err != nil {
		return 0, err
	}
	err = writeObject(pdf.w, obj)
	if err != nil {
		return 0, pdf.ioError(err)
	}
	return ref, pdf.end()
}

// PutStream writes a stream object to the PDF file.  The data is compressed
// using the FlateDecode filter, unless dict already specifies a filter, the
// compression level is 0, or compression does not make the data smaller.
// The /Length entry of dict is set automatically.
func (pdf *Writer) PutStream(ref Reference, dict Dict, data []byte) (Reference, error) {
	if dict == nil {
		dict = Dict{}
	}
	if _, hasFilter := dict["Filter"]; !hasFilter && pdf.level > 0 && len(data) > 0 {
		compressed, err := Compress(data, pdf.level)
		if err != nil {
			return 0, &Error{Kind: IoError, Op: "PutStream", Err: err}
		}
		pdf.log.Debug("stream compression",
			"raw", len(data), "compressed", len(compressed))
		if len(compressed) < len(data) {
			dict["Filter"] = Name("FlateDecode")
			data = compressed
		}
	}
	return pdf.putStream(ref, dict, data)
}

// PutStreamFiltered writes a stream object whose data is already encoded
// as described by the /Filter entry of dict.
func (pdf *Writer) PutStreamFiltered(ref Reference, dict Dict, data []byte) (Reference, error) {
	return pdf.putStream(ref, dict, data)
}

func (pdf *Writer) putStream(ref Reference, dict Dict, data []byte) (Reference, error) {
	dict["Length"] = Integer(len(data))

	ref, err := pdf.begin(ref)
	if err != nil {
		return 0, err
	}
	err = dict.PDF(pdf.w)
	if err != nil {
		return 0, pdf.ioError(err)
	}
	_, err = io.WriteString(pdf.w, "\nstream\n")
	if err != nil {
		return 0, pdf.ioError(err)
	}
	_, err = pdf.w.Write(data)
	if err != nil {
		return 0, pdf.ioError(err)
	}
	_, err = io.WriteString(pdf.w, "\nendstream")
	if err != nil {
		return 0, pdf.ioError(err)
	}
	return ref, pdf.end()
}

func (pdf *Writer) begin(ref Reference) (Reference, error) {
	if pdf.closed {
		return 0, &Error{Kind: StateError, Msg: "writer is closed"}
	}
	if pdf.w.err != nil {
		return 0, pdf.ioError(pdf.w.err)
	}
	if ref == 0 {
		ref = pdf.Alloc()
	} else if ref >= pdf.nextRef {
		return 0, &Error{Kind: StateError,
			Msg: fmt.Sprintf("object %d was not allocated", ref)}
	} else if _, seen := pdf.xref[ref]; seen {
		return 0, &Error{Kind: StateError,
			Msg: fmt.Sprintf("object %d already written", ref)}
	}

	pdf.xref[ref] = pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d 0 obj\n", uint32(ref))
	if err != nil {
		return 0, pdf.ioError(err)
	}
	return ref, nil
}

func (pdf *Writer) end() error {
	_, err := io.WriteString(pdf.w, "\nendobj\n\n")
	return pdf.ioError(err)
}

// Close writes the cross-reference table and the file trailer.
// The catalog reference is required, the info reference may be 0.
//
// Close does not close the underlying io.Writer.
func (pdf *Writer) Close(catalog, info Reference) error {
	if pdf.closed {
		return &Error{Kind: StateError, Msg: "writer is closed"}
	}
	if catalog == 0 {
		return &Error{Kind: ValidationError, Msg: "missing /Catalog"}
	}
	if pdf.w.err != nil {
		return pdf.ioError(pdf.w.err)
	}
	for ref := Reference(1); ref < pdf.nextRef; ref++ {
		if _, ok := pdf.xref[ref]; !ok {
			return &Error{Kind: StateError,
				Msg: fmt.Sprintf("object %d was allocated but never written", ref)}
		}
	}
	pdf.closed = true

	xrefPos := pdf.w.pos
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "xref\n0 %d\n0000000000 65535 f\r\n", uint32(pdf.nextRef))
	for ref := Reference(1); ref < pdf.nextRef; ref++ {
		fmt.Fprintf(buf, "%010d 00000 n\r\n", pdf.xref[ref])
	}
	buf.WriteString("trailer\n")
	trailer := Dict{
		"Size": Integer(pdf.nextRef),
		"Root": catalog,
	}
	if info != 0 {
		trailer["Info"] = info
	}
	_ = trailer.PDF(buf)
	fmt.Fprintf(buf, "\nstartxref\n%d\n%%%%EOF\n", xrefPos)

	_, err := pdf.w.Write(buf.Bytes())
	if err != nil {
		return pdf.ioError(err)
	}
	pdf.log.Debug("xref written",
		"objects", int(pdf.nextRef)-1, "bytes", pdf.w.pos)
	return nil
}

func (pdf *Writer) ioError(err error) error {
	if err == nil {
		return nil
	}
	if _, isOurs := err.(*Error); isOurs {
		return err
	}
	return &Error{Kind: IoError, Err: err}
}

// Compress returns the zlib compressed form of data.
func Compress(data []byte, level int) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw, err := zlib.NewWriterLevel(buf, level)
	if err != nil {
		return nil, err
	}
	_, err = zw.Write(data)
	if err != nil {
		return nil, err
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// posWriter counts the bytes written and keeps the first error.
type posWriter struct {
	w   io.Writer
	pos int64
	err error
}

func (w *posWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.pos += int64(n)
	if err != nil {
		w.err = err
	}
	return n, err
}
