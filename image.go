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
	"image"
)

// Pixel is the set of sample types an [Image] can hold.
type Pixel interface {
	~uint8 | ~float32
}

// Image is a single-channel 2D array of samples.
//
// Rows are stride samples apart, and the stride may exceed the width.
// Images returned by [Image.SubImage] share memory with their parent, so
// their rows are not contiguous.
type Image[T Pixel] struct {
	data   []T
	width  int
	height int
	stride int // samples per row, including padding
}

// NewImage allocates a zero-filled image with contiguous rows.
// Non-positive dimensions give an empty image.
func NewImage[T Pixel](width, height int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}
	return &Image[T]{
		data:   make([]T, width*height),
		width:  width,
		height: height,
		stride: width,
	}
}

// NewImageStride allocates a zero-filled image whose rows are stride
// samples apart.
func NewImageStride[T Pixel](width, height, stride int) (*Image[T], error) {
	if width < 0 || height < 0 || stride < width {
		return nil, fmt.Errorf("%w: %dx%d image with stride %d",
			ErrInvalidParameter, width, height, stride)
	}
	if width == 0 || height == 0 {
		return &Image[T]{}, nil
	}
	return &Image[T]{
		data:   make([]T, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// Width returns the image width in pixels.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image[T]) Height() int {
	return img.height
}

// Stride returns the distance between vertically adjacent samples.
func (img *Image[T]) Stride() int {
	return img.stride
}

// Row returns the samples of row y, excluding padding.
// The slice aliases the image. Row returns nil if y is out of range.
func (img *Image[T]) Row(y int) []T {
	if y < 0 || y >= img.height {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.width : start+img.width]
}

// At returns the sample at column x and row y.
// Out-of-range coordinates give zero.
func (img *Image[T]) At(x, y int) T {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		var zero T
		return zero
	}
	return img.data[y*img.stride+x]
}

// Set stores a sample. Out-of-range coordinates are ignored.
func (img *Image[T]) Set(x, y int, value T) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	img.data[y*img.stride+x] = value
}

// SubImage returns a view of the w×h rectangle with top-left corner (x, y).
// The rectangle is clipped to the image. The view shares memory with img.
func (img *Image[T]) SubImage(x, y, w, h int) *Image[T] {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, img.width), min(y+h, img.height)
	if x1 <= x0 || y1 <= y0 {
		return &Image[T]{}
	}

	start := y0*img.stride + x0
	end := (y1-1)*img.stride + x1
	return &Image[T]{
		data:   img.data[start:end:end],
		width:  x1 - x0,
		height: y1 - y0,
		stride: img.stride,
	}
}

// CopyFrom copies the samples of src into img, row by row.
// Both images must have the same size; either may be a view.
func (img *Image[T]) CopyFrom(src *Image[T]) error {
	if !SameSize(img, src) {
		return fmt.Errorf("%w: copy %dx%d into %dx%d", ErrPrecondition,
			src.width, src.height, img.width, img.height)
	}
	for y := range img.height {
		copy(img.Row(y), src.Row(y))
	}
	return nil
}

// Clone returns a copy of img with contiguous rows.
func (img *Image[T]) Clone() *Image[T] {
	c := NewImage[T](img.width, img.height)
	for y := range img.height {
		copy(c.Row(y), img.Row(y))
	}
	return c
}

// SameSize reports whether a and b have the same dimensions.
func SameSize[T, U Pixel](a *Image[T], b *Image[U]) bool {
	return a.width == b.width && a.height == b.height
}

// FromImage wraps an 8-bit grayscale image without copying.
// Any other pixel format is rejected with [ErrPrecondition].
func FromImage(src image.Image) (*Image[uint8], error) {
	gray, ok := src.(*image.Gray)
	if !ok {
		return nil, fmt.Errorf("%w: need single-channel 8-bit image, got %T",
			ErrPrecondition, src)
	}

	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return &Image[uint8]{}, nil
	}
	start := gray.PixOffset(b.Min.X, b.Min.Y)
	end := start + (h-1)*gray.Stride + w
	return &Image[uint8]{
		data:   gray.Pix[start:end:end],
		width:  w,
		height: h,
		stride: gray.Stride,
	}, nil
}

// ToGray returns an [image.Gray] sharing memory with img.
// The bounds of the result start at (0, 0).
func ToGray(img *Image[uint8]) *image.Gray {
	return &image.Gray{
		Pix:    img.data,
		Stride: img.stride,
		Rect:   image.Rect(0, 0, img.width, img.height),
	}
}
