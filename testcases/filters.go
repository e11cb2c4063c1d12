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

var invertCases = []TestCase{
	{
		Name:  "ramp",
		Input: raster([]int{0, 85, 170, 255}),
		Op:    Invert{},
		Want:  raster([]int{255, 170, 85, 0}),
	},
	{
		Name:  "checker",
		Input: raster([]int{0, 255}, []int{255, 0}),
		Op:    Invert{},
		Want:  raster([]int{255, 0}, []int{0, 255}),
	},
	{
		Name:  "mixed_row",
		Input: raster([]int{29, 89, 136, 200}),
		Op:    Invert{},
		Want:  raster([]int{226, 166, 119, 55}),
	},
	{
		Name:  "empty",
		Input: raster(),
		Op:    Invert{},
		Want:  raster(),
	},
}

var blurCases = []TestCase{
	{
		// Every 3×3 window, after border replication, contains the
		// centre pixel exactly once.
		Name: "bright_centre",
		Input: raster(
			[]int{0, 0, 0},
			[]int{0, 255, 0},
			[]int{0, 0, 0},
		),
		Op: Blur{N: 3},
		Want: raster(
			[]int{28, 28, 28},
			[]int{28, 28, 28},
			[]int{28, 28, 28},
		),
	},
	{
		Name:  "single_pixel",
		Input: raster([]int{77}),
		Op:    Blur{N: 5},
		Want:  raster([]int{77}),
	},
	{
		Name:  "constant",
		Input: constant(4, 3, 100),
		Op:    Blur{N: 3},
		Want:  constant(4, 3, 100),
	},
	{
		Name:  "constant_large_kernel",
		Input: constant(3, 2, 201),
		Op:    Blur{N: 7},
		Want:  constant(3, 2, 201),
	},
	{
		// With a single row, every column is sampled three times, so the
		// result is the mean of three horizontal neighbours.
		Name:  "step_row",
		Input: raster([]int{0, 0, 90, 90}),
		Op:    Blur{N: 3},
		Want:  raster([]int{0, 30, 60, 90}),
	},
	{
		Name:  "identity",
		Input: raster([]int{3, 1, 4}, []int{1, 5, 9}),
		Op:    Blur{N: 1},
		Want:  raster([]int{3, 1, 4}, []int{1, 5, 9}),
	},
}

var sharpenCases = []TestCase{
	{
		Name:  "constant",
		Input: constant(3, 3, 50),
		Op:    Sharpen{N: 3},
		Want:  constant(3, 3, 50),
	},
	{
		// blurred: 0 30 60 90, so 2p-b is 0 -30 120 90 before clamping
		Name:  "step_row",
		Input: raster([]int{0, 0, 90, 90}),
		Op:    Sharpen{N: 3},
		Want:  raster([]int{0, 0, 120, 90}),
	},
	{
		Name: "bright_centre",
		Input: raster(
			[]int{0, 0, 0},
			[]int{0, 255, 0},
			[]int{0, 0, 0},
		),
		Op: Sharpen{N: 3},
		Want: raster(
			[]int{0, 0, 0},
			[]int{0, 255, 0},
			[]int{0, 0, 0},
		),
	},
}

var edgesCases = []TestCase{
	{
		Name:  "constant",
		Input: constant(3, 3, 200),
		Op:    Edges{},
		Want:  constant(3, 3, 0),
	},
	{
		Name: "vertical_step",
		Input: raster(
			[]int{0, 0, 255, 255},
			[]int{0, 0, 255, 255},
			[]int{0, 0, 255, 255},
		),
		Op: Edges{},
		Want: raster(
			[]int{0, 255, 255, 0},
			[]int{0, 255, 255, 0},
			[]int{0, 255, 255, 0},
		),
		Tolerance: 1,
	},
	{
		// The horizontal gradient is 4*(p[x+1]-p[x-1]).
		Name:      "small_ramp",
		Input:     raster([]int{0, 10, 20}),
		Op:        Edges{},
		Want:      raster([]int{40, 80, 40}),
		Tolerance: 1,
	},
	{
		// (gx, gy) is (20, 20), (60, 20), (20, 60) and (60, 60)
		Name: "corner",
		Input: raster(
			[]int{0, 0},
			[]int{0, 20},
		),
		Op: Edges{},
		Want: raster(
			[]int{28, 63},
			[]int{63, 85},
		),
		Tolerance: 1,
	},
}
