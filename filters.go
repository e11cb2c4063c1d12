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

import "math"

// Inverted returns the photographic negative, mapping v to 255-v.
// The result of inverting a finalized raster is finalized.
func (r *Raster) Inverted() *Raster {
	return r.ApplyPerPixel(func(v, _, _ int) int {
		return 255 - v
	})
}

// Blurred applies an n×n box blur.  The size n must be odd and positive.
// The result is clamped to the range 0 to 255.
func (r *Raster) Blurred(n int) (*Raster, error) {
	k, err := BoxBlur(n)
	if err != nil {
		return nil, err
	}
	return r.Correlated(k), nil
}

// Sharpened applies an unsharp mask: each pixel p is replaced by 2p-b,
// where b is the corresponding pixel of the n×n box-blurred raster.
// The result is clamped to the range 0 to 255.
func (r *Raster) Sharpened(n int) (*Raster, error) {
	blurred, err := r.Blurred(n)
	if err != nil {
		return nil, err
	}
	out, err := r.Combine(blurred, func(p, b, _, _ int) int {
		return 2*p - b
	})
	if err != nil {
		return nil, err
	}
	out.ClampAll()
	return out, nil
}

// Edges returns the gradient magnitude sqrt(gx²+gy²), where gx and gy are
// the correlations with [SobelX] and [SobelY].  The result is clamped to
// the range 0 to 255.
func (r *Raster) Edges() *Raster {
	gx := r.ApplyKernel(SobelX)
	gy := r.ApplyKernel(SobelY)

	out, err := gx.Combine(gy, func(a, b, _, _ int) int {
		fa, fb := float64(a), float64(b)
		return int(math.RoundToEven(math.Sqrt(fa*fa + fb*fb)))
	})
	if err != nil {
		// gx and gy are computed from the same raster
		panic(err)
	}
	out.ClampAll()
	return out
}

// Correlated applies an arbitrary kernel and clamps the result to the
// range 0 to 255.
func (r *Raster) Correlated(k *Kernel) *Raster {
	out := r.ApplyKernel(k)
	out.ClampAll()
	return out
}
