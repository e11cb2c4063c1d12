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
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the amount of work (pixels times kernel cells) above
// which ApplyKernel splits the output into bands of rows and processes the
// bands concurrently.  Tests set this to 0 or to a very large value, to
// force one of the two code paths.
var parallelThreshold = 1 << 20

// bandRows is the number of output rows per concurrent work item.
const bandRows = 16

// ApplyPerPixel computes a new raster of the same size, where the pixel at
// (x, y) is f(v, x, y) and v is the value of the receiver at (x, y).
// The function f must not depend on the iteration order.
func (r *Raster) ApplyPerPixel(f func(v, x, y int) int) *Raster {
	out := New(r.Width, r.Height)
	for y := range r.Height {
		for x := range r.Width {
			i := x + r.Width*y
			out.Pix[i] = f(r.Pix[i], x, y)
		}
	}
	return out
}

// Combine computes a new raster from two rasters of identical size, where
// the pixel at (x, y) is f(a, b, x, y) for the receiver's value a and the
// other raster's value b.
func (r *Raster) Combine(other *Raster, f func(a, b, x, y int) int) (*Raster, error) {
	if r.Width != other.Width || r.Height != other.Height {
		return nil, &DimensionError{
			Width:       r.Width,
			Height:      r.Height,
			OtherWidth:  other.Width,
			OtherHeight: other.Height,
		}
	}
	out := New(r.Width, r.Height)
	for y := range r.Height {
		for x := range r.Width {
			i := x + r.Width*y
			out.Pix[i] = f(r.Pix[i], other.Pix[i], x, y)
		}
	}
	return out, nil
}

// ApplyKernel correlates the raster with the kernel k.  The kernel is not
// flipped, so asymmetric kernels are applied in the orientation given.
//
// The value at (x, y) of the result is the sum of k.At(i, j) times the
// input pixel at (x-r+i, y-r+j), where r is the kernel radius, rounded to
// the nearest integer (ties to even).  Pixels outside the raster are
// replaced by the nearest border pixel.  The result is not clamped; call
// [Raster.ClampAll] to obtain a displayable image.
func (r *Raster) ApplyKernel(k *Kernel) *Raster {
	out := New(r.Width, r.Height)

	work := r.Width * r.Height * k.size * k.size
	if work <= parallelThreshold || r.Height <= bandRows {
		r.correlateRows(out, k, 0, r.Height)
		return out
	}

	workers := runtime.GOMAXPROCS(0)
	Logger().Debug("parallel correlation",
		"width", r.Width, "height", r.Height,
		"kernel", k.size, "workers", workers)

	// Each band writes a disjoint set of output rows and only reads from
	// the receiver, so no locking is needed.
	var g errgroup.Group
	g.SetLimit(workers)
	for y0 := 0; y0 < r.Height; y0 += bandRows {
		y1 := min(y0+bandRows, r.Height)
		g.Go(func() error {
			r.correlateRows(out, k, y0, y1)
			return nil
		})
	}
	_ = g.Wait() // the bands cannot fail

	return out
}

// correlateRows fills rows y0, ..., y1-1 of out.
func (r *Raster) correlateRows(out *Raster, k *Kernel, y0, y1 int) {
	rad := k.Radius()
	for y := y0; y < y1; y++ {
		for x := range r.Width {
			var sum float64
			for i := range k.size {
				col := k.w[i*k.size : (i+1)*k.size]
				for j, w := range col {
					sum += w * float64(r.GetClamped(x-rad+i, y-rad+j))
				}
			}
			out.Pix[x+out.Width*y] = int(math.RoundToEven(sum))
		}
	}
}
