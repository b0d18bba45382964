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

// Command resample warps a grayscale image or computes its gradient.
//
// Usage:
//
//	resample -in photo.tiff -out rotated.png -m 0.87,-0.5,0.5,0.87,0,0 -center 320,240
//	resample -in photo.png -out crop.png -region 100,50,64,64
//	resample -in photo.png -out edges.png -op dx
//
// Color input is converted to gray first. Gradient output is shifted by 128
// so that zero maps to mid-gray.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/resample"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func run(args []string, stderr io.Writer) error {
	flags := flag.NewFlagSet("resample", flag.ContinueOnError)
	flags.SetOutput(stderr)
	inFile := flags.String("in", "", "input image file (required)")
	outFile := flags.String("out", "", "output PNG file (required)")
	op := flags.String("op", "warp", "operation: warp, dx or dy")
	coeffs := flags.String("m", "1,0,0,1,0,0", "affine map a11,a12,a21,a22,tx,ty")
	region := flags.String("region", "", "output region x,y,w,h")
	center := flags.String("center", "", "pivot x,y (default: image centre)")
	verbose := flags.Bool("v", false, "log diagnostics to stderr")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *inFile == "" || *outFile == "" {
		fmt.Fprintf(stderr, "Error: -in and -out flags are required\n\n")
		flags.Usage()
		return errUsage
	}
	if *region != "" && *center != "" {
		return fmt.Errorf("%w: -region and -center are mutually exclusive", errUsage)
	}

	if *verbose {
		resample.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer resample.SetLogger(nil)
	}

	src, err := readGray(*inFile)
	if err != nil {
		return err
	}
	img, err := resample.FromImage(src)
	if err != nil {
		return err
	}
	resample.Logger().Debug("input decoded",
		"file", *inFile, "width", img.Width(), "height", img.Height())

	var out *image.Gray
	switch *op {
	case "warp":
		m, err := parseMatrix(*coeffs)
		if err != nil {
			return err
		}
		anchor, err := parseAnchor(*region, *center, img)
		if err != nil {
			return err
		}
		res, err := resample.Warp(m, img, anchor)
		if err != nil {
			return err
		}
		out = resample.ToGray(res)
	case "dx", "dy":
		dx, dy := 1, 0
		if *op == "dy" {
			dx, dy = 0, 1
		}
		dir, err := resample.DirectionFromFlags(dx, dy)
		if err != nil {
			return err
		}
		g, err := resample.Gradient(img, dir, nil)
		if err != nil {
			return err
		}
		out = resample.ToGray(shiftGradient(g))
	default:
		return fmt.Errorf("%w: unknown operation %q", errUsage, *op)
	}

	return writePNG(*outFile, out)
}

// readGray decodes an image file and converts it to 8-bit gray.
func readGray(fname string) (*image.Gray, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if gray, ok := img.(*image.Gray); ok {
		return gray, nil
	}

	resample.Logger().Debug("converting to gray", "format", format, "type", fmt.Sprintf("%T", img))
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray, nil
}

func writePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// shiftGradient maps gradient values to 8 bits as 128+g, clamped.
func shiftGradient(g *resample.Image[float32]) *resample.Image[uint8] {
	out := resample.NewImage[uint8](g.Width(), g.Height())
	for y := range g.Height() {
		row := out.Row(y)
		for x, v := range g.Row(y) {
			row[x] = uint8(min(max(math.Round(128+float64(v)), 0), 255))
		}
	}
	return out
}

func parseMatrix(s string) (matrix.Matrix, error) {
	c, err := parseFloats(s, 6)
	if err != nil {
		return matrix.Matrix{}, fmt.Errorf("-m: %w", err)
	}
	return resample.NewAffine(c[0], c[1], c[2], c[3], c[4], c[5]), nil
}

// parseAnchor builds the warp anchor. Without -region or -center the
// pivot is the image centre.
func parseAnchor(region, center string, img *resample.Image[uint8]) (resample.Anchor, error) {
	switch {
	case region != "":
		r, err := parseFloats(region, 4)
		if err != nil {
			return nil, fmt.Errorf("-region: %w", err)
		}
		return resample.Region(rect.Rect{
			LLx: math.Trunc(r[0]),
			LLy: math.Trunc(r[1]),
			URx: math.Trunc(r[0]) + math.Trunc(r[2]),
			URy: math.Trunc(r[1]) + math.Trunc(r[3]),
		}), nil
	case center != "":
		c, err := parseFloats(center, 2)
		if err != nil {
			return nil, fmt.Errorf("-center: %w", err)
		}
		return resample.Center(vec.Vec2{X: c[0], Y: c[1]}), nil
	default:
		return resample.Center(vec.Vec2{
			X: float64(img.Width()) / 2,
			Y: float64(img.Height()) / 2,
		}), nil
	}
}

// parseFloats parses a comma-separated list of exactly n numbers.
func parseFloats(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("need %d comma-separated values, got %d", n, len(fields))
	}
	res := make([]float64, n)
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}
