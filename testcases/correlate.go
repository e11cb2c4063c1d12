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

var correlateCases = []TestCase{
	{
		// weight at horizontal offset +1
		Name:  "shift_left",
		Input: raster([]int{1, 2, 3}, []int{4, 5, 6}),
		Op: Correlate{Kernel: [][]float64{
			{0, 0, 0},
			{0, 0, 0},
			{0, 1, 0},
		}},
		Want: raster([]int{2, 3, 3}, []int{5, 6, 6}),
	},
	{
		// weight at vertical offset +1
		Name:  "shift_up",
		Input: raster([]int{1, 2, 3}, []int{4, 5, 6}),
		Op: Correlate{Kernel: [][]float64{
			{0, 0, 0},
			{0, 0, 1},
			{0, 0, 0},
		}},
		Want: raster([]int{4, 5, 6}, []int{4, 5, 6}),
	},
	{
		// weight at horizontal offset -2
		Name:  "shift_right_far",
		Input: raster([]int{1, 2, 3}, []int{4, 5, 6}),
		Op: Correlate{Kernel: [][]float64{
			{0, 0, 1, 0, 0},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
		}},
		Want: raster([]int{1, 1, 1}, []int{4, 4, 4}),
	},
	{
		Name:  "negate",
		Input: raster([]int{1, 2, 3}, []int{4, 5, 6}),
		Op: Correlate{Kernel: [][]float64{
			{0, 0, 0},
			{0, -1, 0},
			{0, 0, 0},
		}},
		Want: raster([]int{-1, -2, -3}, []int{-4, -5, -6}),
	},
	{
		// halves are rounded to even
		Name:  "half",
		Input: raster([]int{1, 2, 3, 5}),
		Op: Correlate{Kernel: [][]float64{
			{0, 0, 0},
			{0, 0.5, 0},
			{0, 0, 0},
		}},
		Want: raster([]int{0, 1, 2, 2}),
	},
	{
		Name:  "scale_up",
		Input: raster([]int{100, 200}),
		Op:    Correlate{Kernel: [][]float64{{3}}},
		Want:  raster([]int{300, 600}),
	},
}
