// seehuhn.de/go/resample - affine resampling of grayscale images
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

// Command genpdf generates reference images for the test patterns.
// It draws every source and expected pattern into a PDF file and renders
// it to PNG using Ghostscript, as an independent check of Pattern.Render.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/resample/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			if err := generate(&tc.Source, name+"_source"); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if tc.Want != nil {
				if err := generate(tc.Want, name+"_want"); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generate(p *testcases.Pattern, name string) error {
	pdfPath := filepath.Join(refDir, name+".pdf")
	pngPath := filepath.Join(refDir, name+".png")
	if err := generatePDF(p, pdfPath); err != nil {
		return err
	}
	return renderPNG(pdfPath, pngPath)
}

func generatePDF(p *testcases.Pattern, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(p.Width),
		URy: float64(p.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(float64(p.Background) / 255))
	page.Rectangle(0, 0, float64(p.Width), float64(p.Height))
	page.Fill()

	// PDF origin is bottom-left; patterns use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(p.Height)})

	for _, b := range p.Boxes {
		page.SetFillColor(color.DeviceGray(float64(b.Gray) / 255))
		page.Rectangle(b.Rect.LLx, b.Rect.LLy, b.Rect.URx-b.Rect.LLx, b.Rect.URy-b.Rect.LLy)
		page.Fill()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=1: no anti-aliasing, boxes are pixel-aligned
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
