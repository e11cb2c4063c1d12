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

package testcases

import "seehuhn.de/go/grayfilter"

// TestCase defines a single filter test.
type TestCase struct {
	Name  string             // lowercase a-z, 0-9 and _ only
	Input *grayfilter.Raster // the source raster
	Op    Operation          // the filter to apply

	// Want is the expected result.  If Want is nil, only the general
	// properties of the filter are checked (size, value range).
	Want *grayfilter.Raster

	// Tolerance is the maximal allowed per-pixel difference between the
	// result and Want.  Results involving square roots may differ in the
	// last digit from reference images produced with a different rounding
	// rule.
	Tolerance int
}

// Operation is the filter to apply to the input raster.
type Operation interface {
	isOperation()
}

// Invert replaces every pixel v with 255-v.
type Invert struct{}

func (Invert) isOperation() {}

// Blur applies an N×N box blur.
type Blur struct {
	N int
}

func (Blur) isOperation() {}

// Sharpen applies an unsharp mask with an N×N box blur.
type Sharpen struct {
	N int
}

func (Sharpen) isOperation() {}

// Edges computes the Sobel gradient magnitude.
type Edges struct{}

func (Edges) isOperation() {}

// Correlate applies the kernel without clamping the result.
// Kernel[i][j] is the weight for horizontal offset i and vertical offset j.
type Correlate struct {
	Kernel [][]float64
}

func (Correlate) isOperation() {}

// Apply runs the operation op on the raster r.
func Apply(r *grayfilter.Raster, op Operation) (*grayfilter.Raster, error) {
	switch op := op.(type) {
	case Invert:
		return r.Inverted(), nil
	case Blur:
		return r.Blurred(op.N)
	case Sharpen:
		return r.Sharpened(op.N)
	case Edges:
		return r.Edges(), nil
	case Correlate:
		k, err := grayfilter.NewKernel(op.Kernel)
		if err != nil {
			return nil, err
		}
		return r.ApplyKernel(k), nil
	default:
		panic("unknown operation")
	}
}

// raster builds a raster from rows of pixel values.
func raster(rows ...[]int) *grayfilter.Raster {
	if len(rows) == 0 {
		return grayfilter.New(0, 0)
	}
	w, h := len(rows[0]), len(rows)
	r := grayfilter.New(w, h)
	for y, row := range rows {
		if len(row) != w {
			panic("ragged raster")
		}
		copy(r.Pix[y*w:], row)
	}
	return r
}

// constant builds a raster where every pixel has the value v.
func constant(w, h, v int) *grayfilter.Raster {
	r := grayfilter.New(w, h)
	for i := range r.Pix {
		r.Pix[i] = v
	}
	return r
}
