// seehuhn.de/go/pixline - software line rasterization
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

// Command genpdf generates inspection images for the line test cases.
// Each PDF shows the pixels set by the DDA rasterizer as white squares on
// black, with the ideal line through the pixel centres drawn on top in
// grey. If Ghostscript is installed, the PDFs are also rendered to PNG.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pixline"
	"seehuhn.de/go/pixline/testcases"
)

const refDir = "testdata/reference"

func main() {
	bresenham := flag.Bool("bresenham", false, "use the Bresenham algorithm")
	noPNG := flag.Bool("no-png", false, "do not run Ghostscript")
	flag.Parse()

	// Create output directory
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	r := pixline.NewRasterizer(rect.Rect{})

	// Process all test cases
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			r.Reset(rect.Rect{})
			if *bresenham {
				r.Algorithm = pixline.Bresenham
			}
			buf := pixline.NewBuffer(tc.Width, tc.Height)
			if err := pixline.RenderCase(tc, r, buf, pixline.White); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := generatePDF(tc, buf, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *noPNG {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, buf *pixline.Buffer, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	// Apply Y-axis flip.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	// rasterized pixels
	page.SetFillColor(color.DeviceGray(1))
	n := 0
	for y := range buf.Height {
		for x := range buf.Width {
			if buf.Pix[y*buf.Width+x] != pixline.Black {
				page.Rectangle(float64(x), float64(y), 1, 1)
				n++
			}
		}
	}
	if n > 0 {
		page.Fill()
	}

	// ideal line
	page.SetStrokeColor(color.DeviceGray(0.5))
	page.SetLineWidth(0.15)
	switch op := tc.Op.(type) {
	case testcases.Segment:
		page.MoveTo(float64(op.Start.X)+0.5, float64(op.Start.Y)+0.5)
		page.LineTo(float64(op.End.X)+0.5, float64(op.End.Y)+0.5)
	case testcases.Stroke:
		ctm := matrix.Identity
		if tc.CTM != (matrix.Matrix{}) {
			ctm = tc.CTM
		}
		drawPath(page, op.Path, ctm)
	}
	page.Stroke()

	return page.Close()
}

// pathBuilder is the part of the PDF page API used by drawPath.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPath adds the path to the page in device coordinates, shifted by
// half a pixel so that it runs through the centres of the pixels the
// rasterizer selects. Quadratic segments are converted to cubic ones,
// since PDF does not support them.
func drawPath(page pathBuilder, p path.Path, ctm matrix.Matrix) {
	dev := func(v vec.Vec2) (float64, float64) {
		x := ctm[0]*v.X + ctm[2]*v.Y + ctm[4]
		y := ctm[1]*v.X + ctm[3]*v.Y + ctm[5]
		return x + 0.5, y + 0.5
	}

	var current vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(dev(pts[0]))
			current = pts[0]
		case path.CmdLineTo:
			page.LineTo(dev(pts[0]))
			current = pts[0]
		case path.CmdQuadTo:
			c1 := current.Add(pts[0].Sub(current).Mul(2.0 / 3))
			c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3))
			x1, y1 := dev(c1)
			x2, y2 := dev(c2)
			x3, y3 := dev(pts[1])
			page.CurveTo(x1, y1, x2, y2, x3, y3)
			current = pts[1]
		case path.CmdCubeTo:
			x1, y1 := dev(pts[0])
			x2, y2 := dev(pts[1])
			x3, y3 := dev(pts[2])
			page.CurveTo(x1, y1, x2, y2, x3, y3)
			current = pts[2]
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r720: ten device pixels per raster pixel
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r720",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
