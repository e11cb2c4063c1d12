// seehuhn.de/go/grayfilter - grayscale image filters
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

// Command export writes test case definitions to JSON, for use by
// external reference implementations.
// Run from the grayfilter module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/grayfilter"
	"seehuhn.de/go/grayfilter/testcases"
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
	Name      string      `json:"name"`
	Input     jsonRaster  `json:"input"`
	Op        string      `json:"op"`
	N         int         `json:"n,omitempty"`
	Kernel    [][]float64 `json:"kernel,omitempty"`
	Want      *jsonRaster `json:"want,omitempty"`
	Tolerance int         `json:"tolerance,omitempty"`
}

type jsonRaster struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Pixels []int `json:"pixels"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Input:     rasterToJSON(tc.Input),
		Tolerance: tc.Tolerance,
	}
	if tc.Want != nil {
		want := rasterToJSON(tc.Want)
		jtc.Want = &want
	}

	switch op := tc.Op.(type) {
	case testcases.Invert:
		jtc.Op = "invert"
	case testcases.Blur:
		jtc.Op = "blur"
		jtc.N = op.N
	case testcases.Sharpen:
		jtc.Op = "sharpen"
		jtc.N = op.N
	case testcases.Edges:
		jtc.Op = "edges"
	case testcases.Correlate:
		jtc.Op = "correlate"
		jtc.Kernel = op.Kernel
	}
	return jtc
}

func rasterToJSON(r *grayfilter.Raster) jsonRaster {
	pix := r.Pix
	if pix == nil {
		pix = []int{}
	}
	return jsonRaster{Width: r.Width, Height: r.Height, Pixels: pix}
}
