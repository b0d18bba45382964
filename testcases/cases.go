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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Matrices are written in coefficient order {a11, a21, a12, a22, tx, ty}.

var (
	checker16 = Pattern{Width: 16, Height: 16, Boxes: checker(16, 16, 4, 40, 200)}
	fine16    = Pattern{Width: 16, Height: 16, Boxes: checker(16, 16, 2, 30, 220)}
	square16  = Pattern{Width: 16, Height: 16, Background: 10, Boxes: []Box{box(6, 6, 10, 10, 240)}}
	small16   = Pattern{Width: 16, Height: 16, Background: 50, Boxes: []Box{box(4, 4, 8, 8, 200)}}
	left16    = Pattern{Width: 16, Height: 16, Background: 100, Boxes: []Box{box(0, 0, 4, 16, 255)}}
	right16   = Pattern{Width: 16, Height: 16, Background: 100, Boxes: []Box{box(12, 0, 16, 16, 255)}}
	ramp5     = Pattern{Width: 5, Height: 1, Boxes: columns(1, 0, 50, 100, 150, 200)}
)

var regionCases = []TestCase{
	{
		Name:   "identity",
		Source: checker16,
		Op:     WarpRegion{M: matrix.Identity, Region: pixels(0, 0, 16, 16)},
		Want:   &checker16,
	},
	{
		Name:   "crop",
		Source: square16,
		Op:     WarpRegion{M: matrix.Identity, Region: pixels(4, 4, 12, 12)},
		Want:   &Pattern{Width: 8, Height: 8, Background: 10, Boxes: []Box{box(2, 2, 6, 6, 240)}},
	},
	{
		Name:   "crop_translate",
		Source: square16,
		Op:     WarpRegion{M: matrix.Matrix{1, 0, 0, 1, -2, 1}, Region: pixels(4, 4, 12, 12)},
		Want:   &Pattern{Width: 8, Height: 8, Background: 10, Boxes: []Box{box(4, 1, 8, 5, 240)}},
	},
	{
		Name:   "overhang",
		Source: square16,
		Op:     WarpRegion{M: matrix.Identity, Region: pixels(-4, -4, 4, 4)},
		Want:   &Pattern{Width: 8, Height: 8, Boxes: []Box{box(4, 4, 8, 8, 10)}},
	},
	{
		Name:   "far_translate",
		Source: checker16,
		Op:     WarpRegion{M: matrix.Matrix{1, 0, 0, 1, 1000, 1000}, Region: pixels(0, 0, 16, 16)},
		Want:   &Pattern{Width: 16, Height: 16},
	},
	{
		// With an odd width the pivot sits on a half pixel, and truncation
		// toward zero maps two neighbouring output columns to column 2.
		Name:   "odd_width",
		Source: ramp5,
		Op:     WarpRegion{M: matrix.Identity, Region: pixels(0, 0, 5, 1)},
		Want:   &Pattern{Width: 5, Height: 1, Boxes: columns(1, 0, 50, 100, 100, 150)},
	},
	{
		Name:   "rotate_30deg",
		Source: checker16,
		Op:     WarpRegion{M: matrix.RotateDeg(30), Region: pixels(2, 2, 14, 14)},
	},
}

var centerCases = []TestCase{
	{
		Name:   "identity",
		Source: checker16,
		Op:     WarpCenter{M: matrix.Identity, Center: vec.Vec2{X: 8, Y: 8}},
		Want:   &checker16,
	},
	{
		Name:   "translate",
		Source: small16,
		Op:     WarpCenter{M: matrix.Matrix{1, 0, 0, 1, 2, -3}},
		Want: &Pattern{Width: 16, Height: 16, Boxes: []Box{
			box(0, 3, 14, 16, 50),
			box(2, 7, 6, 11, 200),
		}},
	},
	{
		Name:   "flip_x",
		Source: left16,
		Op:     WarpCenter{M: matrix.Matrix{-1, 0, 0, 1, 0, 0}, Center: vec.Vec2{X: 8, Y: 8}},
		Want: &Pattern{Width: 16, Height: 16, Background: 100, Boxes: []Box{
			box(0, 0, 1, 16, 0),
			box(13, 0, 16, 16, 255),
		}},
	},
	{
		Name:   "rotate_90deg",
		Source: right16,
		Op:     WarpCenter{M: matrix.Matrix{0, 1, -1, 0, 0, 0}, Center: vec.Vec2{X: 8, Y: 8}},
		Want: &Pattern{Width: 16, Height: 16, Background: 100, Boxes: []Box{
			box(0, 0, 16, 1, 0),
			box(0, 1, 16, 5, 255),
		}},
	},
	{
		Name:   "scale_2x",
		Source: fine16,
		Op:     WarpCenter{M: matrix.Scale(2, 2)},
		Want:   &Pattern{Width: 16, Height: 16, Boxes: checker(8, 8, 1, 30, 220)},
	},
	{
		Name:   "scale_half",
		Source: checker16,
		Op:     WarpCenter{M: matrix.Scale(0.5, 0.5)},
		Want:   &Pattern{Width: 16, Height: 16, Boxes: checker(16, 16, 8, 40, 200)},
	},
	{
		// Every pixel maps onto the pivot.
		Name:   "singular",
		Source: checker16,
		Op:     WarpCenter{M: matrix.Matrix{}, Center: vec.Vec2{X: 8, Y: 8}},
		Want:   &Pattern{Width: 16, Height: 16, Background: 40},
	},
	{
		Name:   "far_translate",
		Source: checker16,
		Op:     WarpCenter{M: matrix.Matrix{1, 0, 0, 1, -1000, 0}, Center: vec.Vec2{X: 8, Y: 8}},
		Want:   &Pattern{Width: 16, Height: 16},
	},
	{
		Name:   "nan",
		Source: checker16,
		Op: WarpCenter{
			M:      matrix.Matrix{math.NaN(), 0, 0, math.NaN(), 0, 0},
			Center: vec.Vec2{X: 8, Y: 8},
		},
		Want: &Pattern{Width: 16, Height: 16},
	},
	{
		Name:   "rotate_30deg",
		Source: checker16,
		Op:     WarpCenter{M: matrix.RotateDeg(30), Center: vec.Vec2{X: 8, Y: 8}},
	},
	{
		Name:   "shear",
		Source: checker16,
		Op:     WarpCenter{M: matrix.Matrix{1, 0, 0.5, 1, 0, 0}, Center: vec.Vec2{X: 8, Y: 8}},
	},
}

// pixels returns the integer-aligned rectangle [x0, x1) × [y0, y1).
func pixels(x0, y0, x1, y1 float64) rect.Rect {
	return rect.Rect{LLx: x0, LLy: y0, URx: x1, URy: y1}
}
