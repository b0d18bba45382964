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

import "math"

// Bilinear returns the intensity of src at the fractional position (u, v),
// interpolated from the four surrounding samples.
//
// The taps are src[y][x], src[y+1][x], src[y][x+1] and src[y+1][x+1] with
// x = floor(u) and y = floor(v). Tap coordinates outside the image are
// clamped to the nearest edge sample. For integer positions inside the image
// the result equals the sample value exactly.
func Bilinear(src *Image[uint8], u, v float32) float32 {
	if src.width == 0 || src.height == 0 {
		return 0
	}

	xf := float32(math.Floor(float64(u)))
	yf := float32(math.Floor(float64(v)))
	fx := u - xf
	fy := v - yf

	w00 := float32((1 - fx) * (1 - fy))
	w01 := float32((1 - fx) * fy)
	w10 := float32(fx * (1 - fy))
	w11 := 1 - w00 - w01 - w10 // residual, not fx*fy

	x0 := clampIndex(xf, src.width)
	x1 := clampIndex(xf+1, src.width)
	row0 := src.data[clampIndex(yf, src.height)*src.stride:]
	row1 := src.data[clampIndex(yf+1, src.height)*src.stride:]

	return float32(w00*float32(row0[x0])) +
		float32(w01*float32(row1[x0])) +
		float32(w10*float32(row0[x1])) +
		float32(w11*float32(row1[x1]))
}

// clampIndex converts an integral float to an index in [0, size-1].
// NaN maps to 0.
func clampIndex(f float32, size int) int {
	if !(f > 0) {
		return 0
	}
	if f >= float32(size-1) {
		return size - 1
	}
	return int(f)
}
