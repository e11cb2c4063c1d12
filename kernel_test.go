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

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewKernelValidation(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		ok   bool
	}{
		{"nil", nil, false},
		{"empty_rows", [][]float64{}, false},
		{"empty_row", [][]float64{{}}, false},
		{"even", [][]float64{{1, 0}, {0, 1}}, false},
		{"not_square", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8}}, false},
		{"wide", [][]float64{{1, 2, 3}}, false},
		{"single", [][]float64{{2}}, true},
		{"three", [][]float64{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k, err := NewKernel(c.rows)
			if c.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if k.Size() != len(c.rows) {
					t.Errorf("Size() = %d, want %d", k.Size(), len(c.rows))
				}
				return
			}
			var kErr *MalformedKernelError
			if !errors.As(err, &kErr) {
				t.Errorf("got error %v, want *MalformedKernelError", err)
			}
		})
	}
}

func TestKernelIsCopied(t *testing.T) {
	rows := [][]float64{{1}}
	k, err := NewKernel(rows)
	if err != nil {
		t.Fatal(err)
	}
	rows[0][0] = 5
	if k.At(0, 0) != 1 {
		t.Error("kernel shares memory with its input")
	}

	out := k.Rows()
	out[0][0] = 7
	if k.At(0, 0) != 1 {
		t.Error("Rows() exposes the kernel weights")
	}
}

func TestKernelOrientation(t *testing.T) {
	k, err := NewKernel([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	if err != nil {
		t.Fatal(err)
	}
	// the first index is the horizontal offset
	if got := k.At(0, 2); got != 3 {
		t.Errorf("At(0, 2) = %g, want 3", got)
	}
	if got := k.At(2, 0); got != 7 {
		t.Errorf("At(2, 0) = %g, want 7", got)
	}
	if k.Radius() != 1 {
		t.Errorf("Radius() = %d, want 1", k.Radius())
	}
}

func TestBoxBlur(t *testing.T) {
	for _, n := range []int{1, 3, 5, 9} {
		k, err := BoxBlur(n)
		if err != nil {
			t.Fatal(err)
		}
		if k.Size() != n {
			t.Errorf("n=%d: Size() = %d", n, k.Size())
		}
		want := 1 / float64(n*n)
		for i := range n {
			for j := range n {
				if k.At(i, j) != want {
					t.Fatalf("n=%d: At(%d, %d) = %g, want %g", n, i, j, k.At(i, j), want)
				}
			}
		}
		if math.Abs(k.Sum()-1) > 1e-12 {
			t.Errorf("n=%d: weights sum to %g", n, k.Sum())
		}
	}

	for _, n := range []int{-3, 0, 2, 4} {
		_, err := BoxBlur(n)
		var kErr *MalformedKernelError
		if !errors.As(err, &kErr) {
			t.Errorf("BoxBlur(%d): got error %v, want *MalformedKernelError", n, err)
		}
	}
}

func TestSobelKernels(t *testing.T) {
	if SobelX.Sum() != 0 || SobelY.Sum() != 0 {
		t.Error("gradient kernels must have zero sum")
	}
	// SobelY is the transpose of SobelX
	for i := range 3 {
		for j := range 3 {
			if SobelX.At(i, j) != SobelY.At(j, i) {
				t.Fatalf("SobelX.At(%d, %d) != SobelY.At(%d, %d)", i, j, j, i)
			}
		}
	}
	want := [][]float64{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	if d := cmp.Diff(want, SobelX.Rows()); d != "" {
		t.Errorf("SobelX (-want +got):\n%s", d)
	}
}
