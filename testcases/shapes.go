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

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/grayfilter"
)

// Shape test cases use anti-aliased synthetic images.  There is no
// expected output for these, only the general filter properties are
// checked.
var shapeCases = []TestCase{
	{
		Name:  "disc_invert",
		Input: Disc(48, 16),
		Op:    Invert{},
	},
	{
		Name:  "disc_blur",
		Input: Disc(48, 16),
		Op:    Blur{N: 5},
	},
	{
		Name:  "star_sharpen",
		Input: Star(64, 28),
		Op:    Sharpen{N: 3},
	},
	{
		Name:  "star_edges",
		Input: Star(64, 28),
		Op:    Edges{},
	},
	{
		Name:  "ring_edges",
		Input: Ring(64, 24, 12),
		Op:    Edges{},
	},
}

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498

// Disc returns a size×size raster showing a white disc of radius r on a
// black background, centred in the raster.
func Disc(size int, r float64) *grayfilter.Raster {
	c := float64(size) / 2
	return rasterise(size, circle(c, c, r, false))
}

// Ring returns a size×size raster showing a white ring between the radii
// inner and outer.
func Ring(size int, outer, inner float64) *grayfilter.Raster {
	c := float64(size) / 2
	outerPath := circle(c, c, outer, false)
	innerPath := circle(c, c, inner, true)
	return rasterise(size, func(yield func(path.Command, []vec.Vec2) bool) {
		for cmd, pts := range outerPath {
			if !yield(cmd, pts) {
				return
			}
		}
		for cmd, pts := range innerPath {
			if !yield(cmd, pts) {
				return
			}
		}
	})
}

// Star returns a size×size raster showing a white five-pointed star with
// outer radius r.
func Star(size int, r float64) *grayfilter.Raster {
	c := float64(size) / 2
	return rasterise(size, fivePointStar(c, c, r))
}

// rasterise fills the path with the non-zero winding rule and converts the
// coverage into intensities.
func rasterise(size int, p path.Path) *grayfilter.Raster {
	v := vector.NewRasterizer(size, size)
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			v.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdLineTo:
			v.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdQuadTo:
			v.QuadTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y))
		case path.CmdCubeTo:
			v.CubeTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case path.CmdClose:
			v.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	v.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	r := grayfilter.New(size, size)
	for i, a := range dst.Pix {
		r.Pix[i] = int(a)
	}
	return r
}

// circle builds a circular path from four cubic Bézier curves.
func circle(cx, cy, r float64, clockwise bool) path.Path {
	k := r * kappa
	s := 1.0
	if clockwise {
		s = -1
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: cx + r, Y: cy}}) {
			return
		}
		quarters := [][]vec.Vec2{
			{{X: cx + r, Y: cy - s*k}, {X: cx + k, Y: cy - s*r}, {X: cx, Y: cy - s*r}},
			{{X: cx - k, Y: cy - s*r}, {X: cx - r, Y: cy - s*k}, {X: cx - r, Y: cy}},
			{{X: cx - r, Y: cy + s*k}, {X: cx - k, Y: cy + s*r}, {X: cx, Y: cy + s*r}},
			{{X: cx + k, Y: cy + s*r}, {X: cx + r, Y: cy + s*k}, {X: cx + r, Y: cy}},
		}
		for _, q := range quarters {
			if !yield(path.CmdCubeTo, q) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// fivePointStar builds a star path, connecting every second point of a
// regular pentagon.
func fivePointStar(cx, cy, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		pts := make([]vec.Vec2, 5)
		for i := range 5 {
			angle := float64(i)*2*math.Pi/5 - math.Pi/2
			pts[i] = vec.Vec2{
				X: cx + r*math.Cos(angle),
				Y: cy + r*math.Sin(angle),
			}
		}

		order := []int{0, 2, 4, 1, 3}
		if !yield(path.CmdMoveTo, []vec.Vec2{pts[order[0]]}) {
			return
		}
		for _, i := range order[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{pts[i]}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
