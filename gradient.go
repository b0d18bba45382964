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

import "fmt"

// Direction selects the derivative computed by [Gradient].
type Direction int

const (
	// Horizontal is the derivative along x (increasing column index).
	Horizontal Direction = iota

	// Vertical is the derivative along y (increasing row index).
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// sobel holds the 3×3 kernels, in row-major order.
var sobel = [...][9]int32{
	Horizontal: {-1, 0, 1, -2, 0, 2, -1, 0, 1},
	Vertical:   {-1, -2, -1, 0, 0, 0, 1, 2, 1},
}

// DirectionFromFlags converts a pair of derivative orders to a Direction.
// Only (1, 0) and (0, 1) are valid.
func DirectionFromFlags(dx, dy int) (Direction, error) {
	switch {
	case dx == 1 && dy == 0:
		return Horizontal, nil
	case dx == 0 && dy == 1:
		return Vertical, nil
	}
	Logger().Warn("invalid gradient flags", "dx", dx, "dy", dy)
	return 0, fmt.Errorf("%w: gradient flags dx=%d, dy=%d",
		ErrInvalidParameter, dx, dy)
}

// Gradient computes the Sobel derivative of src in direction dir, divided
// by 8. Pixels outside the image are taken to equal the nearest edge pixel.
//
// If dst is nil, a new image is allocated. Otherwise dst must have the size
// of src and is overwritten.
func Gradient(src *Image[uint8], dir Direction, dst *Image[float32]) (*Image[float32], error) {
	if dir != Horizontal && dir != Vertical {
		Logger().Warn("invalid gradient direction", "dir", dir)
		return nil, fmt.Errorf("%w: gradient direction %s", ErrInvalidParameter, dir)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil source image", ErrPrecondition)
	}
	if dst == nil {
		dst = NewImage[float32](src.width, src.height)
	} else if !SameSize(src, dst) {
		return nil, fmt.Errorf("%w: gradient buffer is %dx%d, source is %dx%d",
			ErrPrecondition, dst.width, dst.height, src.width, src.height)
	}
	if src.width == 0 || src.height == 0 {
		return dst, nil
	}

	k := &sobel[dir]
	t := replicateBorder(src)
	stride := t.stride
	for y := range src.height {
		out := dst.Row(y)
		above := t.data[y*stride:]
		here := t.data[(y+1)*stride:]
		below := t.data[(y+2)*stride:]
		for x := range out {
			sum := int32(above[x])*k[0] + int32(above[x+1])*k[1] + int32(above[x+2])*k[2] +
				int32(here[x])*k[3] + int32(here[x+1])*k[4] + int32(here[x+2])*k[5] +
				int32(below[x])*k[6] + int32(below[x+1])*k[7] + int32(below[x+2])*k[8]
			out[x] = float32(float64(sum) / 8.0)
		}
	}
	return dst, nil
}

// replicateBorder returns a copy of src padded by one pixel on every side.
// Edge rows and columns are duplicated outward, and each corner repeats the
// nearest corner pixel of src.
func replicateBorder(src *Image[uint8]) *Image[uint8] {
	w, h := src.width, src.height
	t := NewImage[uint8](w+2, h+2)

	// The copies cannot fail: every pair of views has matching size.
	_ = t.SubImage(1, 1, w, h).CopyFrom(src)
	_ = t.SubImage(1, 0, w, 1).CopyFrom(src.SubImage(0, 0, w, 1))
	_ = t.SubImage(1, h+1, w, 1).CopyFrom(src.SubImage(0, h-1, w, 1))
	_ = t.SubImage(0, 1, 1, h).CopyFrom(src.SubImage(0, 0, 1, h))
	_ = t.SubImage(w+1, 1, 1, h).CopyFrom(src.SubImage(w-1, 0, 1, h))

	t.Set(0, 0, src.At(0, 0))
	t.Set(w+1, 0, src.At(w-1, 0))
	t.Set(0, h+1, src.At(0, h-1))
	t.Set(w+1, h+1, src.At(w-1, h-1))
	return t
}
