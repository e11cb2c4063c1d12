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

// Package codec converts between image files and grayscale rasters.
//
// Decoding supports PNG, GIF, JPEG, BMP, TIFF and WebP files.  Colour
// images are converted to intensities using the weights 0.299, 0.587 and
// 0.114 for red, green and blue.  Encoding writes 8-bit grayscale PNG,
// GIF, BMP or TIFF files, all of which store the intensities without loss.
package codec

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	_ "image/jpeg" // register the JPEG decoder
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register the WebP decoder

	"seehuhn.de/go/grayfilter"
)

// Format is an output file format.
type Format int

// These are the supported output formats.
const (
	PNG Format = iota
	GIF
	BMP
	TIFF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case GIF:
		return "gif"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath chooses the output format from the file name extension.
func FormatFromPath(fileName string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".png":
		return PNG, nil
	case ".gif":
		return GIF, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	}
	return 0, &UnsupportedFormatError{
		Format: ext,
		Reason: "unknown output file extension",
	}
}

// ErrNotFinalized is returned when a raster with values outside the range
// 0 to 255 is encoded.  Use [grayfilter.Raster.ClampAll] first.
var ErrNotFinalized = errors.New("raster has pixel values outside 0..255")

// UnsupportedFormatError is returned for image files with an unknown pixel
// layout, and for unknown file formats.
type UnsupportedFormatError struct {
	Format string
	Reason string
}

func (err *UnsupportedFormatError) Error() string {
	return "unsupported image format " + err.Format + ": " + err.Reason
}

// Decode reads an image file and converts it into a raster.  The returned
// string is the format name, as reported by [image.Decode].
func Decode(r io.Reader) (*grayfilter.Raster, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	res, err := FromImage(img)
	if err != nil {
		return nil, format, err
	}
	grayfilter.Logger().Debug("image decoded",
		"format", format,
		"type", fmt.Sprintf("%T", img),
		"width", res.Width,
		"height", res.Height)
	return res, format, nil
}

// FromImage converts an image into a raster.
//
// Grayscale images keep their intensities (16-bit images are reduced to
// their high byte).  Colour images are converted to luminance, alpha is
// ignored.  Other pixel layouts, for example CMYK or pure alpha masks,
// result in an [UnsupportedFormatError].
func FromImage(img image.Image) (*grayfilter.Raster, error) {
	if g, ok := img.(*image.Gray); ok {
		return grayfilter.FromGray(g), nil
	}

	var pixel func(c color.Color) int
	switch m := img.ColorModel(); m.(type) {
	case color.Palette:
		pixel = rgbLuminance
	default:
		switch m {
		case color.GrayModel, color.Gray16Model:
			pixel = grayIntensity
		case color.RGBAModel, color.RGBA64Model,
			color.NRGBAModel, color.NRGBA64Model,
			color.YCbCrModel, color.NYCbCrAModel:
			pixel = rgbLuminance
		default:
			return nil, &UnsupportedFormatError{
				Format: fmt.Sprintf("%T", img),
				Reason: "pixel layout is neither gray nor RGB",
			}
		}
	}

	b := img.Bounds()
	res := grayfilter.New(b.Dx(), b.Dy())
	for y := range res.Height {
		for x := range res.Width {
			res.Pix[x+res.Width*y] = pixel(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return res, nil
}

func grayIntensity(c color.Color) int {
	r, _, _, _ := c.RGBA()
	return int(r >> 8)
}

func rgbLuminance(c color.Color) int {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Luminance(nc.R, nc.G, nc.B)
}

// Luminance converts an RGB colour into an intensity, using the ITU-R
// BT.601 weights.  Halves are rounded to even.
func Luminance(r, g, b uint8) int {
	y := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	return int(math.RoundToEven(y))
}

// Encode writes the raster as an 8-bit grayscale image in the given format.
// All pixels must be in the range 0 to 255.
func Encode(w io.Writer, r *grayfilter.Raster, f Format) error {
	if !r.IsFinalized() {
		return ErrNotFinalized
	}
	img := r.Gray()

	switch f {
	case PNG:
		return png.Encode(w, img)
	case GIF:
		return gif.Encode(w, grayPaletted(img), nil)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return &UnsupportedFormatError{
			Format: f.String(),
			Reason: "no encoder",
		}
	}
}

// grayPalette maps every palette index to the gray level of the same value.
var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// grayPaletted converts img to a paletted image without quantisation loss.
func grayPaletted(img *image.Gray) *image.Paletted {
	p := image.NewPaletted(img.Bounds(), grayPalette)
	copy(p.Pix, img.Pix)
	return p
}

// Load reads an image file from disk.
func Load(fileName string) (*grayfilter.Raster, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return r, nil
}

// Save writes the raster to disk.  The file format is determined by the
// file name extension, see [FormatFromPath].
func Save(fileName string, r *grayfilter.Raster) (err error) {
	format, err := FormatFromPath(fileName)
	if err != nil {
		return err
	}

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, r, format)
}
