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
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestGradientFlat(t *testing.T) {
	src := NewImage[uint8](7, 5)
	for y := range src.Height() {
		for x := range src.Width() {
			src.Set(x, y, 93)
		}
	}
	for _, dir := range []Direction{Horizontal, Vertical} {
		g, err := Gradient(src, dir, nil)
		if err != nil {
			t.Fatal(err)
		}
		for y := range g.Height() {
			for x, v := range g.Row(y) {
				if v != 0 {
					t.Errorf("%s: pixel (%d,%d) = %g, want 0", dir, x, y, v)
				}
			}
		}
	}
}

func TestGradientStepEdge(t *testing.T) {
	// left half 0, right half 255
	src := NewImage[uint8](8, 6)
	for y := range src.Height() {
		for x := 4; x < 8; x++ {
			src.Set(x, y, 255)
		}
	}

	gx, err := Gradient(src, Horizontal, nil)
	if err != nil {
		t.Fatal(err)
	}
	for y := range gx.Height() {
		for x, v := range gx.Row(y) {
			want := float32(0)
			if x == 3 || x == 4 {
				want = 4 * 255 / 8.0
			}
			if v != want {
				t.Errorf("dx at (%d,%d) = %g, want %g", x, y, v, want)
			}
		}
	}

	gy, err := Gradient(src, Vertical, nil)
	if err != nil {
		t.Fatal(err)
	}
	for y := range gy.Height() {
		for x, v := range gy.Row(y) {
			if v != 0 {
				t.Errorf("dy at (%d,%d) = %g, want 0", x, y, v)
			}
		}
	}
}

func TestGradientVerticalRamp(t *testing.T) {
	src := NewImage[uint8](4, 5)
	for y := range src.Height() {
		for x := range src.Width() {
			src.Set(x, y, uint8(10*y))
		}
	}
	g, err := Gradient(src, Vertical, nil)
	if err != nil {
		t.Fatal(err)
	}

	// interior rows see a difference of 20 across the kernel, the
	// replicated top and bottom rows only 10
	want := []float32{40.0 / 8, 80.0 / 8, 80.0 / 8, 80.0 / 8, 40.0 / 8}
	for y := range g.Height() {
		for x, v := range g.Row(y) {
			if v != want[y] {
				t.Errorf("(%d,%d) = %g, want %g", x, y, v, want[y])
			}
		}
	}
}

func TestGradientCorners(t *testing.T) {
	// a single bright pixel in the top-left corner
	src := NewImage[uint8](3, 3)
	src.Set(0, 0, 80)

	g, err := Gradient(src, Horizontal, nil)
	if err != nil {
		t.Fatal(err)
	}
	// The first padded rows are (80 80 0 0 0), (80 80 0 0 0), (0 0 0 0 0),
	// so columns 0 and 1 see the bright pixel on their left only.
	want := [][]float32{
		{-(80 + 2*80) / 8.0, -(80 + 2*80) / 8.0, 0},
		{-80 / 8.0, -80 / 8.0, 0},
		{0, 0, 0},
	}
	for y := range 3 {
		for x := range 3 {
			if got := g.At(x, y); got != want[y][x] {
				t.Errorf("(%d,%d) = %g, want %g", x, y, got, want[y][x])
			}
		}
	}
}

func TestGradientReuse(t *testing.T) {
	src := testImage(6, 4)
	buf := NewImage[float32](6, 4)
	buf.Set(0, 0, 1e9)

	g, err := Gradient(src, Horizontal, buf)
	if err != nil {
		t.Fatal(err)
	}
	if g != buf {
		t.Error("matching output buffer was not reused")
	}
	fresh, err := Gradient(src, Horizontal, nil)
	if err != nil {
		t.Fatal(err)
	}
	for y := range 4 {
		for x := range 6 {
			if g.At(x, y) != fresh.At(x, y) {
				t.Errorf("(%d,%d): reused %g, fresh %g", x, y, g.At(x, y), fresh.At(x, y))
			}
		}
	}

	_, err = Gradient(src, Horizontal, NewImage[float32](4, 6))
	if !errors.Is(err, ErrPrecondition) {
		t.Errorf("mismatched buffer: got %v, want ErrPrecondition", err)
	}
}

func TestGradientDeterministic(t *testing.T) {
	src := testImage(13, 9)
	a, err := Gradient(src, Vertical, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Gradient(src, Vertical, nil)
	if err != nil {
		t.Fatal(err)
	}
	for y := range a.Height() {
		for x := range a.Width() {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("(%d,%d): %g != %g", x, y, a.At(x, y), b.At(x, y))
			}
		}
	}
	a.Set(0, 0, a.At(0, 0)+1)
	if a.At(0, 0) == b.At(0, 0) {
		t.Error("outputs share memory")
	}
}

func TestGradientSubImage(t *testing.T) {
	full := testImage(12, 12)
	view := full.SubImage(3, 2, 6, 7)

	a, err := Gradient(view, Horizontal, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Gradient(view.Clone(), Horizontal, nil)
	if err != nil {
		t.Fatal(err)
	}
	for y := range a.Height() {
		for x := range a.Width() {
			if a.At(x, y) != b.At(x, y) {
				t.Errorf("(%d,%d): view %g, copy %g", x, y, a.At(x, y), b.At(x, y))
			}
		}
	}
}

func TestGradientInvalid(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	src := testImage(4, 4)
	out := NewImage[float32](4, 4)
	out.Set(1, 1, 7)
	if _, err := Gradient(src, Direction(2), out); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Direction(2): got %v, want ErrInvalidParameter", err)
	}
	if out.At(1, 1) != 7 {
		t.Error("output modified after invalid parameter")
	}

	if _, err := Gradient(nil, Horizontal, nil); !errors.Is(err, ErrPrecondition) {
		t.Errorf("nil source: got %v, want ErrPrecondition", err)
	}

	for _, f := range [][2]int{{0, 0}, {1, 1}, {2, 0}, {-1, 0}} {
		if _, err := DirectionFromFlags(f[0], f[1]); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("DirectionFromFlags(%d, %d): got %v", f[0], f[1], err)
		}
	}
	if !strings.Contains(buf.String(), "invalid gradient") {
		t.Errorf("invalid parameters were not logged: %q", buf.String())
	}

	if d, err := DirectionFromFlags(1, 0); err != nil || d != Horizontal {
		t.Errorf("DirectionFromFlags(1, 0) = %v, %v", d, err)
	}
	if d, err := DirectionFromFlags(0, 1); err != nil || d != Vertical {
		t.Errorf("DirectionFromFlags(0, 1) = %v, %v", d, err)
	}
}

func TestGradientEmpty(t *testing.T) {
	g, err := Gradient(NewImage[uint8](0, 0), Vertical, nil)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 0 || g.Height() != 0 {
		t.Errorf("got %dx%d, want 0x0", g.Width(), g.Height())
	}
}

func TestReplicateBorder(t *testing.T) {
	src := testImage(4, 3)
	p := replicateBorder(src)
	if p.Width() != 6 || p.Height() != 5 {
		t.Fatalf("padded image is %dx%d, want 6x5", p.Width(), p.Height())
	}
	for y := -1; y <= 3; y++ {
		for x := -1; x <= 4; x++ {
			want := src.At(min(max(x, 0), 3), min(max(y, 0), 2))
			if got := p.At(x+1, y+1); got != want {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}
