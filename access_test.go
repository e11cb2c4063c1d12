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
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPixelLayout(t *testing.T) {
	r := New(3, 2)
	r.Set(0, 0, 1)
	r.Set(2, 0, 2)
	r.Set(1, 1, 3)
	r.Set(2, 1, -4)

	want := []int{1, 0, 2, 0, 3, -4}
	if d := cmp.Diff(want, r.Pix); d != "" {
		t.Errorf("pixels (-want +got):\n%s", d)
	}
	if got := r.Get(2, 1); got != -4 {
		t.Errorf("Get(2, 1) = %d, want -4", got)
	}
}

func TestGetClamped(t *testing.T) {
	r, err := FromPix(3, 2, []int{
		1, 2, 3,
		4, 5, 6,
	})
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		x, y int
		want int
	}{
		{0, 0, 1},
		{2, 1, 6},
		{-1, 0, 1},
		{-100, -100, 1},
		{3, 0, 3},
		{1, -1, 2},
		{1, 2, 5},
		{10, 10, 6},
		{-5, 7, 4},
	}
	for _, c := range cases {
		if got := r.GetClamped(c.x, c.y); got != c.want {
			t.Errorf("GetClamped(%d, %d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestOutOfRangePanics(t *testing.T) {
	r := New(2, 2)
	calls := map[string]func(){
		"get_x":    func() { r.Get(2, 0) },
		"get_y":    func() { r.Get(0, -1) },
		"set_x":    func() { r.Set(-1, 0, 0) },
		"set_y":    func() { r.Set(0, 2, 0) },
		"negative": func() { New(-1, 3) },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			call()
		})
	}
}

func TestFromPix(t *testing.T) {
	_, err := FromPix(2, 2, []int{1, 2, 3})
	var dimErr *DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("got error %v, want *DimensionError", err)
	}
	if dimErr.Len != 3 {
		t.Errorf("Len = %d, want 3", dimErr.Len)
	}

	r, err := FromPix(0, 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.Width != 0 || r.Height != 5 {
		t.Errorf("got %dx%d, want 0x5", r.Width, r.Height)
	}
}

func TestEqual(t *testing.T) {
	a, _ := FromPix(2, 1, []int{1, 2})
	b, _ := FromPix(2, 1, []int{1, 2})
	c, _ := FromPix(1, 2, []int{1, 2})
	d, _ := FromPix(2, 1, []int{1, 3})

	if !a.Equal(b) {
		t.Error("identical rasters are not equal")
	}
	if a.Equal(c) {
		t.Error("rasters of different shape are equal")
	}
	if a.Equal(d) {
		t.Error("rasters with different pixels are equal")
	}
	if a.Equal(nil) {
		t.Error("raster equals nil")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a, _ := FromPix(2, 1, []int{1, 2})
	b := a.Clone()
	b.Set(0, 0, 9)
	if a.Get(0, 0) != 1 {
		t.Error("modifying the clone changed the original")
	}
}

func TestGrayRoundTrip(t *testing.T) {
	r, _ := FromPix(3, 2, []int{0, 1, 2, 253, 254, 255})
	img := r.Gray()
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	back := FromGray(img)
	if !back.Equal(r) {
		t.Errorf("got %v, want %v", back, r)
	}

	// sub-images start at an offset into Pix
	sub := img.SubImage(image.Rect(1, 1, 3, 2)).(*image.Gray)
	want, _ := FromPix(2, 1, []int{254, 255})
	if got := FromGray(sub); !got.Equal(want) {
		t.Errorf("sub-image: got %v, want %v", got, want)
	}
}

func TestString(t *testing.T) {
	r, _ := FromPix(2, 1, []int{-1, 300})
	if got, want := r.String(), "Raster(2, 1, [-1 300])"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
