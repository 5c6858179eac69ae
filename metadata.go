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

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfgen/pdf"
)

// xmpBasic is the XMP basic namespace.
type xmpBasic struct {
	_           xmp.Namespace `xmp:"http://ns.adobe.com/xap/1.0/"`
	_           xmp.Prefix    `xmp:"xmp"`
	CreateDate  xmp.Date
	ModifyDate  xmp.Date
	CreatorTool xmp.AgentName
}

// xmpPDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type xmpPDF struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

func (d *Document) hasLanguage() bool {
	return d.lang != language.Und
}

// metadata converts the document information dictionary into an XMP
// packet.
func (d *Document) metadata() (*xmp.Packet, error) {
	info := &d.info

	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(language.Und, info.Title)
		if d.hasLanguage() {
			dc.Title.Set(d.lang, info.Title)
		}
	}
	if info.Subject != "" {
		dc.Description.Set(language.Und, info.Subject)
		if d.hasLanguage() {
			dc.Description.Set(d.lang, info.Subject)
		}
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}

	basic := &xmpBasic{}
	if !info.CreationDate.IsZero() {
		basic.CreateDate = xmp.NewDate(info.CreationDate)
	}
	if !info.ModDate.IsZero() {
		basic.ModifyDate = xmp.NewDate(info.ModDate)
	}
	if info.Creator != "" {
		basic.CreatorTool = xmp.NewAgentName(info.Creator)
	}

	pdfNS := &xmpPDF{}
	if info.Keywords != "" {
		pdfNS.Keywords = xmp.NewText(info.Keywords)
	}
	if info.Producer != "" {
		pdfNS.Producer = xmp.NewAgentName(info.Producer)
	}

	packet := xmp.NewPacket()
	if err := packet.Set(dc, basic, pdfNS); err != nil {
		return nil, err
	}
	return packet, nil
}

// writeMetadata writes the XMP metadata stream, without compression.
func (d *Document) writeMetadata(out *pdf.Writer) (pdf.Reference, error) {
	packet, err := d.metadata()
	if err != nil {
		return 0, &pdf.Error{Kind: pdf.ValidationError, Op: "Write", Msg: "XMP metadata", Err: err}
	}

	buf := &bytes.Buffer{}
	err = packet.Write(buf, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return 0, &pdf.Error{Kind: pdf.ValidationError, Op: "Write", Msg: "XMP metadata", Err: err}
	}

	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	return out.PutStreamFiltered(0, dict, buf.Bytes())
}
