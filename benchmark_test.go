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

package grayfilter_test

import (
	"fmt"
	"testing"

	"seehuhn.de/go/grayfilter"
	"seehuhn.de/go/grayfilter/testcases"
)

// BenchmarkApplyKernel compares the sequential and the banded code path
// of the correlation engine.
func BenchmarkApplyKernel(b *testing.B) {
	sizes := []int{20, 200, 1000}
	approaches := []struct {
		name      string
		threshold int
	}{
		{"seq", 1 << 62},
		{"par", 0},
	}

	for _, size := range sizes {
		src := testcases.Disc(size, float64(size)*0.4)
		k, err := grayfilter.BoxBlur(5)
		if err != nil {
			b.Fatal(err)
		}
		for _, approach := range approaches {
			b.Run(fmt.Sprintf("%dx%d_%s", size, size, approach.name), func(b *testing.B) {
				defer grayfilter.SetParallelThreshold(approach.threshold)()

				b.ReportAllocs()
				for b.Loop() {
					src.ApplyKernel(k)
				}
			})
		}
	}
}

// BenchmarkFilters measures the complete filters on a 256×256 image.
func BenchmarkFilters(b *testing.B) {
	src := testcases.Star(256, 120)

	b.Run("inverted", func(b *testing.B) {
		for b.Loop() {
			src.Inverted()
		}
	})
	b.Run("blurred", func(b *testing.B) {
		for b.Loop() {
			_, _ = src.Blurred(5)
		}
	})
	b.Run("sharpened", func(b *testing.B) {
		for b.Loop() {
			_, _ = src.Sharpened(11)
		}
	})
	b.Run("edges", func(b *testing.B) {
		for b.Loop() {
			src.Edges()
		}
	})
}
