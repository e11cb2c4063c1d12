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
	"strconv"
)

// MalformedKernelError is returned when a kernel is not square, has an
// even size, or is empty.
type MalformedKernelError struct {
	Rows int // number of rows
	Cols int // length of the first offending row, or 0
	Msg  string
}

func (err *MalformedKernelError) Error() string {
	return "malformed kernel (" + strconv.Itoa(err.Rows) + "x" +
		strconv.Itoa(err.Cols) + "): " + err.Msg
}

// DimensionError is returned when raster dimensions do not fit the
// available pixel data, or when two rasters which are combined
// pixel-by-pixel have different sizes.
type DimensionError struct {
	Width, Height int
	Len           int // length of the pixel slice, if relevant

	OtherWidth, OtherHeight int
}

func (err *DimensionError) Error() string {
	if err.OtherWidth != 0 || err.OtherHeight != 0 {
		return fmt.Sprintf("raster size mismatch: %dx%d vs. %dx%d",
			err.Width, err.Height, err.OtherWidth, err.OtherHeight)
	}
	return fmt.Sprintf("%d pixels do not fit a %dx%d raster",
		err.Len, err.Width, err.Height)
}
