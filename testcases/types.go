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

// Package testcases defines synthetic source images and affine warps used
// to test and benchmark the resampler.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single warp test.
type TestCase struct {
	Name   string    // lowercase a-z, 0-9 and _ only
	Source Pattern   // the image to warp
	Op     Operation // the warp to apply
	Want   *Pattern  // expected output, or nil if not known in closed form
}

// Operation is the warp applied to the source.
type Operation interface {
	isOperation()
}

// WarpRegion warps into an output anchored at a rectangle of the source.
type WarpRegion struct {
	M      matrix.Matrix
	Region rect.Rect // integer-aligned, in pixel coordinates
}

func (WarpRegion) isOperation() {}

// WarpCenter warps into an output of the source size, pivoting at Center.
type WarpCenter struct {
	M      matrix.Matrix
	Center vec.Vec2
}

func (WarpCenter) isOperation() {}

// Pattern is a grayscale image made of axis-aligned boxes painted in order
// over a uniform background. Coordinates have the origin at the top-left
// corner, with y increasing downward.
type Pattern struct {
	Width      int
	Height     int
	Background uint8
	Boxes      []Box
}

// Box is a filled rectangle. It covers the pixels (x, y) with
// LLx <= x < URx and LLy <= y < URy.
type Box struct {
	Rect rect.Rect // integer-aligned
	Gray uint8
}

// Render paints the pattern into buf, which holds Height rows of stride
// bytes each. Boxes are clipped to the pattern.
func (p *Pattern) Render(buf []byte, stride int) {
	for y := range p.Height {
		row := buf[y*stride : y*stride+p.Width]
		for x := range row {
			row[x] = p.Background
		}
	}
	for _, b := range p.Boxes {
		x0 := max(int(b.Rect.LLx), 0)
		x1 := min(int(b.Rect.URx), p.Width)
		y0 := max(int(b.Rect.LLy), 0)
		y1 := min(int(b.Rect.URy), p.Height)
		for y := y0; y < y1; y++ {
			row := buf[y*stride:]
			for x := x0; x < x1; x++ {
				row[x] = b.Gray
			}
		}
	}
}

// box is a helper to create a Box from pixel coordinates.
func box(x0, y0, x1, y1 float64, gray uint8) Box {
	return Box{Rect: rect.Rect{LLx: x0, LLy: y0, URx: x1, URy: y1}, Gray: gray}
}

// checker returns the boxes of a w×h checkerboard with square cells of the
// given size. The cell at the origin has gray level a, its neighbours b.
func checker(w, h, cell int, a, b uint8) []Box {
	var boxes []Box
	for y := 0; y < h; y += cell {
		for x := 0; x < w; x += cell {
			gray := a
			if (x/cell+y/cell)%2 == 1 {
				gray = b
			}
			boxes = append(boxes, box(float64(x), float64(y),
				float64(min(x+cell, w)), float64(min(y+cell, h)), gray))
		}
	}
	return boxes
}

// columns returns one full-height box per entry of grays.
func columns(h int, grays ...uint8) []Box {
	boxes := make([]Box, len(grays))
	for x, g := range grays {
		boxes[x] = box(float64(x), 0, float64(x+1), float64(h), g)
	}
	return boxes
}
