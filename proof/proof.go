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

// Package proof writes PDF proof sheets, which show one or more rasters
// side by side for visual inspection.
package proof

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/grayfilter"
)

// Default layout parameters, in PDF points.
const (
	DefaultScale  = 4.0
	DefaultGap    = 8.0
	DefaultMargin = 16.0
)

// Sheet is a row of rasters shown next to each other.
type Sheet struct {
	Panels []*grayfilter.Raster

	// Scale is the side length of a pixel, in PDF points.
	// If this is zero, DefaultScale is used.
	Scale float64

	// Gap is the horizontal space between panels, in PDF points.
	// If this is zero, DefaultGap is used.
	Gap float64
}

// Layout returns the page size and the position of each panel, in a
// coordinate system where y grows downwards.
func (s *Sheet) Layout() (page rect.Rect, panels []rect.Rect) {
	scale := s.Scale
	if scale <= 0 {
		scale = DefaultScale
	}
	gap := s.Gap
	if gap <= 0 {
		gap = DefaultGap
	}

	x := DefaultMargin
	maxHeight := 0.0
	for i, r := range s.Panels {
		if i > 0 {
			x += gap
		}
		w := float64(r.Width) * scale
		h := float64(r.Height) * scale
		panels = append(panels, rect.Rect{
			LLx: x,
			LLy: DefaultMargin,
			URx: x + w,
			URy: DefaultMargin + h,
		})
		x += w
		maxHeight = max(maxHeight, h)
	}

	page = rect.Rect{
		URx: x + DefaultMargin,
		URy: maxHeight + 2*DefaultMargin,
	}
	return page, panels
}

// WritePDF writes the sheet as a single page PDF file.
// Every pixel is painted as a filled square; values outside the range
// 0 to 255 are clamped for display.
func WritePDF(fileName string, s *Sheet) error {
	pageRect, panels := s.Layout()
	paper := &pdf.Rectangle{
		URx: pageRect.URx,
		URy: pageRect.URy,
	}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; the layout uses top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, pageRect.URy})

	for i, r := range s.Panels {
		box := panels[i]
		scale := (box.URx - box.LLx) / float64(max(r.Width, 1))
		for y := range r.Height {
			// merge runs of equal pixels into a single rectangle
			x0 := 0
			for x0 < r.Width {
				v := clamp(r.Get(x0, y))
				x1 := x0 + 1
				for x1 < r.Width && clamp(r.Get(x1, y)) == v {
					x1++
				}
				page.SetFillColor(color.DeviceGray(float64(v) / 255))
				page.Rectangle(
					box.LLx+float64(x0)*scale,
					box.LLy+float64(y)*scale,
					float64(x1-x0)*scale,
					scale)
				page.Fill()
				x0 = x1
			}
		}
	}

	grayfilter.Logger().Debug("proof sheet written",
		"file", fileName, "panels", len(s.Panels))

	return page.Close()
}

func clamp(v int) int {
	return max(0, min(255, v))
}
