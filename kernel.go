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

package grayfilter

import "slices"

// Kernel is an immutable square matrix of weights for [Raster.ApplyKernel].
// The size is always odd, so that there is a unique centre cell.
//
// The first index of a kernel is the horizontal offset and the second
// index is the vertical offset, matching the (x, y) order used for raster
// coordinates.  For asymmetric kernels this matters: At(i, j) is the
// weight of the pixel at (x-r+i, y-r+j), where r is the radius.
type Kernel struct {
	size int
	w    []float64 // w[i*size+j]
}

// NewKernel creates a kernel from the given weights.  rows[i][j] is the
// weight for horizontal offset i and vertical offset j.  The weights are
// copied.
func NewKernel(rows [][]float64) (*Kernel, error) {
	n := len(rows)
	if n == 0 {
		return nil, &MalformedKernelError{Msg: "empty kernel"}
	}
	for _, row := range rows {
		if len(row) != n {
			return nil, &MalformedKernelError{
				Rows: n,
				Cols: len(row),
				Msg:  "kernel is not square",
			}
		}
	}
	if n%2 == 0 {
		return nil, &MalformedKernelError{
			Rows: n,
			Cols: n,
			Msg:  "kernel size must be odd",
		}
	}

	k := &Kernel{size: n, w: make([]float64, 0, n*n)}
	for _, row := range rows {
		k.w = append(k.w, row...)
	}
	return k, nil
}

// mustKernel is used for the built-in kernels.
func mustKernel(rows [][]float64) *Kernel {
	k, err := NewKernel(rows)
	if err != nil {
		panic(err)
	}
	return k
}

// BoxBlur returns the n×n averaging kernel, where every weight is 1/n².
// The size n must be odd and positive.
func BoxBlur(n int) (*Kernel, error) {
	if n < 1 || n%2 == 0 {
		return nil, &MalformedKernelError{
			Rows: n,
			Cols: n,
			Msg:  "box blur size must be odd and positive",
		}
	}
	w := 1 / float64(n*n)
	k := &Kernel{size: n, w: make([]float64, n*n)}
	for i := range k.w {
		k.w[i] = w
	}
	return k, nil
}

// Gradient kernels for edge detection.
var (
	SobelX = mustKernel([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})
	SobelY = mustKernel([][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})
)

// Size returns the side length of the kernel.
func (k *Kernel) Size() int {
	return k.size
}

// Radius returns the distance from the centre cell to the kernel border.
func (k *Kernel) Radius() int {
	return k.size / 2
}

// At returns the weight for horizontal offset i and vertical offset j,
// both in the range [0, Size()).
func (k *Kernel) At(i, j int) float64 {
	return k.w[i*k.size+j]
}

// Rows returns a copy of the weights, in the format accepted by [NewKernel].
func (k *Kernel) Rows() [][]float64 {
	rows := make([][]float64, k.size)
	for i := range rows {
		rows[i] = slices.Clone(k.w[i*k.size : (i+1)*k.size])
	}
	return rows
}

// Sum returns the sum of all weights.
// Averaging kernels have sum 1, gradient kernels have sum 0.
func (k *Kernel) Sum() float64 {
	var sum float64
	for _, w := range k.w {
		sum += w
	}
	return sum
}
