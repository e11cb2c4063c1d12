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

// Package display shows rasters in a terminal window.
//
// Displaying images is optional.  A [Terminal] must be constructed
// explicitly, and construction fails with [ErrUnavailable] when the
// output is not an interactive terminal.
package display

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/grayfilter"
)

// ErrUnavailable is returned by NewTerminal when no terminal is attached.
var ErrUnavailable = errors.New("display: no terminal available")

// Terminal renders rasters using ANSI escape sequences.
// Every text cell shows two pixel rows, using the "upper half block"
// character with different foreground and background colours.
type Terminal struct {
	w    io.Writer
	size func() (cols, rows int, err error)
}

// NewTerminal returns a display writing to f.
// If f is not a terminal, ErrUnavailable is returned.
func NewTerminal(f *os.File) (*Terminal, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrUnavailable
	}
	return &Terminal{
		w: f,
		size: func() (int, int, error) {
			return term.GetSize(fd)
		},
	}, nil
}

// Show draws the raster, scaled to fit the current terminal size.
// Pixel values outside the range 0 to 255 are clamped.
func (t *Terminal) Show(r *grayfilter.Raster) error {
	cols, rows, err := t.size()
	if err != nil {
		return err
	}
	return render(t.w, r, cols, max(rows-1, 1)*2)
}

// render writes the raster with at most maxW columns and maxH pixel rows.
// The aspect ratio is kept; pixels are sampled from the nearest source
// pixel.
func render(w io.Writer, r *grayfilter.Raster, maxW, maxH int) error {
	if r.Width == 0 || r.Height == 0 || maxW <= 0 || maxH <= 0 {
		return nil
	}

	outW, outH := r.Width, r.Height
	if outW > maxW || outH > maxH {
		scale := min(float64(maxW)/float64(r.Width), float64(maxH)/float64(r.Height))
		outW = max(1, int(float64(r.Width)*scale))
		outH = max(1, int(float64(r.Height)*scale))
	}
	grayfilter.Logger().Debug("terminal display",
		"width", r.Width, "height", r.Height,
		"cols", outW, "rows", (outH+1)/2)

	sample := func(x, y int) int {
		sx := x * r.Width / outW
		sy := y * r.Height / outH
		return r.GetClamped(sx, sy)
	}

	buf := bufio.NewWriter(w)
	for y := 0; y < outH; y += 2 {
		for x := range outW {
			top := ansiGray(sample(x, y))
			if y+1 < outH {
				bottom := ansiGray(sample(x, y+1))
				fmt.Fprintf(buf, "\x1b[38;5;%dm\x1b[48;5;%dm▀", top, bottom)
			} else {
				fmt.Fprintf(buf, "\x1b[0m\x1b[38;5;%dm▀", top)
			}
		}
		buf.WriteString("\x1b[0m\n")
	}
	return buf.Flush()
}

// ansiGray maps an intensity to the closest colour of the xterm 256 colour
// palette.  Indices 232 to 255 form a gray ramp from 8 to 238, and indices
// 16 and 231 are black and white.
func ansiGray(v int) int {
	v = max(0, min(255, v))
	switch {
	case v < 4:
		return 16
	case v > 246:
		return 231
	}
	return 232 + min(23, max(0, (v-8+5)/10))
}
