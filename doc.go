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

// Package grayfilter implements filters for grayscale raster images.
//
// A [Raster] stores integer intensities in row-major order.  Two generic
// engines operate on rasters: [Raster.ApplyPerPixel] (and its two-input
// form [Raster.Combine]) maps every pixel independently, and
// [Raster.ApplyKernel] correlates the raster with a square [Kernel],
// replicating the border pixels outside the raster.  The filters
// [Raster.Inverted], [Raster.Blurred], [Raster.Sharpened] and
// [Raster.Edges] are built from these two engines.
//
// Reading and writing image files is implemented in the sub-package
// seehuhn.de/go/grayfilter/codec.
package grayfilter

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
