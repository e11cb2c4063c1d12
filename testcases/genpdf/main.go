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

// Command genpdf writes a PDF proof sheet for every test case.
// Each sheet shows the input, the computed result and, if available, the
// expected result.  Run from the grayfilter module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/grayfilter"
	"seehuhn.de/go/grayfilter/proof"
	"seehuhn.de/go/grayfilter/testcases"
)

const proofDir = "testdata/proof"

func main() {
	if err := os.MkdirAll(proofDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if tc.Input.Width == 0 || tc.Input.Height == 0 {
				continue
			}
			if err := generatePDF(tc, filepath.Join(proofDir, name+".pdf")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	result, err := testcases.Apply(tc.Input, tc.Op)
	if err != nil {
		return err
	}

	panels := []*grayfilter.Raster{tc.Input, result}
	if tc.Want != nil {
		panels = append(panels, tc.Want)
	}

	// small test rasters get bigger pixels
	scale := proof.DefaultScale
	if tc.Input.Width < 16 {
		scale = 32
	}

	return proof.WritePDF(pdfPath, &proof.Sheet{
		Panels: panels,
		Scale:  scale,
	})
}
