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
	"fmt"
	"image"
	"slices"
	"strings"
)

// Raster is a width×height grid of intensity values.
//
// Pixel (x, y) is stored at Pix[x+Width*y], so rows are contiguous and x
// varies fastest.  Finalized rasters hold values in the range 0 to 255;
// intermediate results (for example the output of [Raster.ApplyKernel])
// may hold arbitrary integers until [Raster.ClampAll] is called.
//
// Transforms never modify their receiver.  Each transform allocates a new
// output raster, so independent transforms of the same source can run
// concurrently.
type Raster struct {
	Width  int
	Height int
	Pix    []int
}

// New allocates a blank raster where every pixel is 0.
func New(width, height int) *Raster {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grayfilter: invalid raster size %dx%d", width, height))
	}
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]int, width*height),
	}
}

// FromPix wraps an existing pixel slice, in row-major order.
// The slice is used directly, not copied.
func FromPix(width, height int, pix []int) (*Raster, error) {
	if width < 0 || height < 0 || len(pix) != width*height {
		return nil, &DimensionError{
			Width:  width,
			Height: height,
			Len:    len(pix),
		}
	}
	return &Raster{Width: width, Height: height, Pix: pix}, nil
}

// Get returns the pixel at (x, y).
// Coordinates outside the raster are a programming error and cause a panic.
func (r *Raster) Get(x, y int) int {
	return r.Pix[r.index(x, y)]
}

// GetClamped returns the pixel at (x, y) after moving the coordinates to
// the nearest point inside the raster.  This extends the border pixels
// infinitely outwards.
func (r *Raster) GetClamped(x, y int) int {
	x = max(0, min(r.Width-1, x))
	y = max(0, min(r.Height-1, y))
	return r.Pix[x+r.Width*y]
}

// Set overwrites the pixel at (x, y).  The value is stored as given,
// without range clamping.
func (r *Raster) Set(x, y, value int) {
	r.Pix[r.index(x, y)] = value
}

func (r *Raster) index(x, y int) int {
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		panic(fmt.Sprintf("grayfilter: pixel (%d, %d) outside %dx%d raster",
			x, y, r.Width, r.Height))
	}
	return x + r.Width*y
}

// ClampAll forces every pixel into the range 0 to 255, in place.
func (r *Raster) ClampAll() {
	for i, v := range r.Pix {
		r.Pix[i] = max(0, min(255, v))
	}
}

// IsFinalized reports whether all pixels are in the range 0 to 255.
func (r *Raster) IsFinalized() bool {
	for _, v := range r.Pix {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// Equal reports whether two rasters have the same size and pixels.
func (r *Raster) Equal(other *Raster) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Width == other.Width && r.Height == other.Height &&
		slices.Equal(r.Pix, other.Pix)
}

// Clone returns an independent copy of the raster.
func (r *Raster) Clone() *Raster {
	return &Raster{
		Width:  r.Width,
		Height: r.Height,
		Pix:    slices.Clone(r.Pix),
	}
}

// Bounds returns the raster area, with the origin at (0, 0).
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

// Gray converts a finalized raster into an 8-bit grayscale image.
// Values outside 0 to 255 are clamped.
func (r *Raster) Gray() *image.Gray {
	img := image.NewGray(r.Bounds())
	for y := range r.Height {
		row := img.Pix[y*img.Stride : y*img.Stride+r.Width]
		for x, v := range r.Pix[y*r.Width : (y+1)*r.Width] {
			row[x] = uint8(max(0, min(255, v)))
		}
	}
	return img
}

// FromGray copies an 8-bit grayscale image into a new raster.
func FromGray(img *image.Gray) *Raster {
	b := img.Bounds()
	r := New(b.Dx(), b.Dy())
	for y := range r.Height {
		row := img.Pix[y*img.Stride : y*img.Stride+r.Width]
		for x, v := range row {
			r.Pix[x+r.Width*y] = int(v)
		}
	}
	return r
}

func (r *Raster) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Raster(%d, %d, [", r.Width, r.Height)
	for i, v := range r.Pix {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteString("])")
	return b.String()
}
