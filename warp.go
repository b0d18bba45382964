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

package resample

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Anchor determines the size of a warped image, the pivot of the
// transformation and how destination coordinates relate to the source.
// It is either a [Region] or a [Center].
type Anchor interface {
	isAnchor()
}

// Region anchors the output at a rectangle of the source image.
// The output has the size of the rectangle, the pivot is the centre of the
// rectangle and source positions are relative to its top-left corner
// (LLx, LLy). Coordinates must be integer-aligned.
type Region rect.Rect

func (Region) isAnchor() {}

// Center makes the output the same size as the source, with the pivot at
// the given point in source coordinates.
type Center vec.Vec2

func (Center) isAnchor() {}

// Warp resamples src under the affine transformation m.
//
// For every destination pixel (x, y), the offset from the pivot is mapped by
// m to an offset in the source:
//
//	u = a11*(x-cx) + a12*(y-cy) + tx + cx
//	v = a21*(x-cx) + a22*(y-cy) + ty + cy
//
// The matrix is applied as given, in the destination-to-source direction.
// The source position is truncated toward zero, both before and after
// adding the pivot, and for a [Region] shifted by the region origin. Pixels
// which map outside src are left at zero, the others receive the bilinearly
// interpolated source value.
//
// Warp fails only if src is nil, the anchor is missing, or a region has
// negative size.
func Warp(m matrix.Matrix, src *Image[uint8], anchor Anchor) (*Image[uint8], error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source image", ErrPrecondition)
	}

	var w, h, x0, y0 int
	var cx, cy float32
	switch a := anchor.(type) {
	case Region:
		x0, y0 = int(a.LLx), int(a.LLy)
		w, h = int(a.URx)-x0, int(a.URy)-y0
		if w < 0 || h < 0 {
			return nil, fmt.Errorf("%w: region %gx%g has negative size",
				ErrInvalidParameter, a.URx-a.LLx, a.URy-a.LLy)
		}
		cx = float32(float64(w) * 0.5)
		cy = float32(float64(h) * 0.5)
	case Center:
		w, h = src.width, src.height
		cx, cy = float32(a.X), float32(a.Y)
	default:
		return nil, fmt.Errorf("%w: unsupported anchor %T", ErrInvalidParameter, anchor)
	}

	out := NewImage[uint8](w, h)

	a11, a12, tx := float32(m[0]), float32(m[2]), float32(m[4])
	a21, a22, ty := float32(m[1]), float32(m[3]), float32(m[5])

	maxU := src.width - 1
	maxV := src.height - 1
	for y := range out.height {
		dy := float32(y) - cy
		row := out.Row(y)
		for x := range row {
			dx := float32(x) - cx

			u, okU := truncate(float32(a11*dx) + float32(a12*dy) + tx)
			v, okV := truncate(float32(a21*dx) + float32(a22*dy) + ty)
			if !okU || !okV {
				continue
			}
			u, okU = truncate(float32(u) + cx)
			v, okV = truncate(float32(v) + cy)
			if !okU || !okV {
				continue
			}
			u += x0
			v += y0

			if u < 0 || v < 0 || u > maxU || v > maxV {
				continue
			}
			row[x] = uint8(Bilinear(src, float32(u), float32(v)))
		}
	}

	return out, nil
}

// coordLimit bounds the coordinates that truncate accepts. Anything larger
// lies outside every image and might not be representable as an int.
const coordLimit = 1 << 30

// truncate converts f to an integer, rounding toward zero.
// It reports false for NaN and for values too large to be a pixel position.
func truncate(f float32) (int, bool) {
	if !(f > -coordLimit && f < coordLimit) {
		return 0, false
	}
	return int(f), true
}
