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

// Pdfgen-demo writes a two-page sample document, showing images, text
// and vector graphics.
//
// Usage:
//
//	pdfgen-demo [-paper A4] [-o out.pdf] [-v]
//
// Without -o, the PDF file is written to standard output.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/graphics"
)

var (
	paper   = flag.String("paper", "A4", "paper size")
	outName = flag.String("o", "", "output file name")
	verbose = flag.Bool("v", false, "log debug messages")
)

const lorem = `The image above shows the Mandelbrot set, the set of complex ` +
	`numbers c for which the sequence z, z² + c, ... started at z = 0 stays ` +
	`bounded.  Points outside the set are coloured by the number of ` +
	`iterations needed to leave the disk of radius 2.`

func main() {
	flag.Parse()

	if *outName == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("refusing to write PDF data to a terminal, use -o")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	err := run(logger)
	if err != nil {
		log.Fatal(err)
	}
}

func run(logger *slog.Logger) error {
	size, ok := pdfgen.PageSize(*paper)
	if !ok {
		return fmt.Errorf("unknown paper size %q", *paper)
	}

	doc, err := pdfgen.New(&pdfgen.Options{
		PageSize: size,
		Language: "en-GB",
		XMP:      true,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	err = doc.SetInfo(pdfgen.Title, "pdfgen demo")
	if err != nil {
		return err
	}
	err = doc.SetInfo(pdfgen.Creator, "pdfgen-demo")
	if err != nil {
		return err
	}

	err = imagePage(doc, size)
	if err != nil {
		return err
	}
	err = shapesPage(doc, size)
	if err != nil {
		return err
	}

	if *outName != "" {
		return doc.WriteFile(*outName)
	}
	return doc.Write(os.Stdout)
}

func imagePage(doc *pdfgen.Document, size pdfgen.Size) error {
	raw := &bytes.Buffer{}
	err := png.Encode(raw, mandelbrot())
	if err != nil {
		return err
	}
	tag := pdfgen.StringTag("mandelbrot")
	_, err = doc.LoadImageData(raw.Bytes(), tag)
	if err != nil {
		return err
	}

	_, err = doc.NewPage(nil)
	if err != nil {
		return err
	}
	page, err := doc.Canvas()
	if err != nil {
		return err
	}

	w, h, err := doc.ImageSize(tag)
	if err != nil {
		return err
	}
	width := 0.75 * size.Width
	height := width * float64(h) / float64(w)
	left := (size.Width - width) / 2
	bottom := size.Height - 72 - height
	err = page.PlaceImage(tag, &graphics.ImageOptions{X: left, Y: bottom, Width: width})
	if err != nil {
		return err
	}

	err = page.BeginText()
	if err != nil {
		return err
	}
	err = page.SetFont(font.Query{Family: "Times", Weight: 700}, 10)
	if err != nil {
		return err
	}
	err = page.TextAt(left, bottom-20, "Figure 1.", nil)
	if err != nil {
		return err
	}
	err = page.SetFont(font.Query{Family: "Times"}, 10)
	if err != nil {
		return err
	}
	st := page.GetState().Text
	lines := font.Wrap(st.Font, font.TextState{Size: st.Size, HorizontalScale: 1}, lorem, width)
	err = page.TextLines(left, bottom-34, lines, &graphics.TextOptions{Kern: true, Fill: true})
	if err != nil {
		return err
	}
	return page.EndText()
}

func shapesPage(doc *pdfgen.Document, size pdfgen.Size) error {
	_, err := doc.NewPage(&pdfgen.PageOptions{Orientation: pdfgen.Landscape})
	if err != nil {
		return err
	}
	page, err := doc.Canvas()
	if err != nil {
		return err
	}
	size = size.Orient(pdfgen.Landscape)

	cx, cy := size.Width/2, size.Height/2
	colours := []string{"crimson", "#f80", "gold", "seagreen", "#36c", "indigo"}
	for i, name := range colours {
		col, err := graphics.ParseColor(name)
		if err != nil {
			return err
		}
		err = page.SaveState()
		if err != nil {
			return err
		}
		err = page.Translate(cx, cy)
		if err != nil {
			return err
		}
		err = page.Rotate(float64(i) * 360 / float64(len(colours)))
		if err != nil {
			return err
		}
		err = page.SetFillColor(col)
		if err != nil {
			return err
		}
		err = page.Ellipse(120, 0, 100, 30)
		if err != nil {
			return err
		}
		err = page.Fill()
		if err != nil {
			return err
		}
		err = page.RestoreState()
		if err != nil {
			return err
		}
	}

	err = page.SetStrokeColor(graphics.Gray(0.3))
	if err != nil {
		return err
	}
	err = page.SetLineWidth(2)
	if err != nil {
		return err
	}
	err = page.SetDash([]float64{6, 3}, 0)
	if err != nil {
		return err
	}
	err = page.Rectangle(36, 36, size.Width-72, size.Height-72)
	if err != nil {
		return err
	}
	err = page.Stroke()
	if err != nil {
		return err
	}

	err = page.BeginText()
	if err != nil {
		return err
	}
	err = page.SetFont(font.Query{Family: "Helvetica", Weight: 700}, 24)
	if err != nil {
		return err
	}
	err = page.TextAt(cx, size.Height-80, "Rotated Ellipses",
		&graphics.TextOptions{Align: graphics.AlignCenter, Fill: true})
	if err != nil {
		return err
	}
	return page.EndText()
}

func mandelbrot() image.Image {
	const (
		xmin, ymin, xmax, ymax = -2.5, -1.5, +1.5, +1.5
		width, height          = 768, 576
		maxDepth               = 200
	)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for i := range width {
	yLoop:
		for j := range height {
			x := xmin + (xmax-xmin)*float64(i)/width
			y := ymin + (ymax-ymin)*float64(j)/height
			z := complex(x, y)

			var v complex128
			for n := range maxDepth {
				v = v*v + z
				if real(v)*real(v)+imag(v)*imag(v) > 4 {
					img.Set(i, j, palette(n, maxDepth))
					continue yLoop
				}
			}
			img.Set(i, j, color.RGBA{0, 0, 0, 255})
		}
	}
	return img
}

// palette maps escape times to a curve through RGB space.
func palette(pos, limit int) color.Color {
	t := math.Sqrt(float64(pos) / float64(limit))
	r := 0.5 + 0.5*math.Cos(2*math.Pi*(t+0.0))
	g := 0.5 + 0.5*math.Cos(2*math.Pi*(t+0.33))
	b := 0.5 + 0.5*math.Cos(2*math.Pi*(t+0.67))
	return color.RGBA{uint8(255 * r), uint8(255 * g), uint8(255 * b), 255}
}
