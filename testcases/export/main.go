// Command export writes test case definitions to JSON for external
// reference generators.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/resample/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string       `json:"name"`
	Source jsonPattern  `json:"source"`
	Op     string       `json:"op"`
	Matrix [6]float64   `json:"matrix"` // a11, a12, a21, a22, tx, ty
	Region *[4]float64  `json:"region,omitempty"`
	Center *[2]float64  `json:"center,omitempty"`
	Want   *jsonPattern `json:"want,omitempty"`
}

type jsonPattern struct {
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Background uint8     `json:"background"`
	Boxes      []jsonBox `json:"boxes"`
}

type jsonBox struct {
	Rect [4]float64 `json:"rect"` // x0, y0, x1, y1
	Gray uint8      `json:"gray"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Source: patternToJSON(&tc.Source),
	}
	if tc.Want != nil {
		want := patternToJSON(tc.Want)
		jtc.Want = &want
	}

	switch op := tc.Op.(type) {
	case testcases.WarpRegion:
		jtc.Op = "region"
		m := op.M
		jtc.Matrix = [6]float64{m[0], m[2], m[1], m[3], m[4], m[5]}
		r := op.Region
		jtc.Region = &[4]float64{r.LLx, r.LLy, r.URx, r.URy}
	case testcases.WarpCenter:
		jtc.Op = "center"
		m := op.M
		jtc.Matrix = [6]float64{m[0], m[2], m[1], m[3], m[4], m[5]}
		jtc.Center = &[2]float64{op.Center.X, op.Center.Y}
	}
	return jtc
}

func patternToJSON(p *testcases.Pattern) jsonPattern {
	jp := jsonPattern{
		Width:      p.Width,
		Height:     p.Height,
		Background: p.Background,
		Boxes:      make([]jsonBox, len(p.Boxes)),
	}
	for i, b := range p.Boxes {
		jp.Boxes[i] = jsonBox{
			Rect: [4]float64{b.Rect.LLx, b.Rect.LLy, b.Rect.URx, b.Rect.URy},
			Gray: b.Gray,
		}
	}
	return jp
}
