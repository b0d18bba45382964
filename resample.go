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

// Package resample warps single-channel 8-bit images under 2D affine
// transformations and computes Sobel image gradients.
//
// Transformations are represented as [matrix.Matrix] values, see [NewAffine].
// [Warp] maps every destination pixel to a source position and samples the
// source with [Bilinear]. The output can either be anchored at a rectangle of
// the source ([Region]) or have the size of the source and rotate around an
// explicit pivot ([Center]). [Gradient] computes horizontal or vertical
// derivatives with a replicated one-pixel border.
//
// All functions allocate a fresh output image (except where an output buffer
// is explicitly reused) and never modify their inputs, so calls on different
// images can run concurrently.
package resample

//go:generate go run ./testcases/export

import (
	"errors"

	"seehuhn.de/go/geom/matrix"
)

var (
	// ErrPrecondition is returned when the source image is missing or has
	// the wrong pixel format, or when a reused output buffer does not match
	// the source.
	ErrPrecondition = errors.New("resample: precondition violated")

	// ErrInvalidParameter is returned for invalid gradient directions,
	// missing anchors and negative output sizes.
	ErrInvalidParameter = errors.New("resample: invalid parameter")
)

// NewAffine returns the affine transformation
//
//	| a11 a12 tx |
//	| a21 a22 ty |
//	|  0   0   1 |
//
// in the coefficient order used by [matrix.Matrix].
// No validation is performed.
func NewAffine(a11, a12, a21, a22, tx, ty float64) matrix.Matrix {
	return matrix.Matrix{a11, a21, a12, a22, tx, ty}
}
