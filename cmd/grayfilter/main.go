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

// Command grayfilter applies filters to an image file.
//
// Usage:
//
//	grayfilter [options] input output
//
// The input can be any PNG, GIF, JPEG, BMP, TIFF or WebP file.  It is
// converted to grayscale before filtering.  The output format is chosen
// from the file name extension (.png, .gif, .bmp, .tif or .tiff).
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"seehuhn.de/go/grayfilter"
	"seehuhn.de/go/grayfilter/codec"
	"seehuhn.de/go/grayfilter/display"
	"seehuhn.de/go/grayfilter/pipeline"
	"seehuhn.de/go/grayfilter/proof"
)

func main() {
	ops := flag.String("ops", "", "comma separated filters, e.g. \"blur=3,edges\"")
	pdfFile := flag.String("pdf", "", "write a PDF proof sheet (input and output) to this file")
	show := flag.Bool("show", false, "show the result in the terminal")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input output\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	grayfilter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: level})))

	err := run(flag.Arg(0), flag.Arg(1), *ops, *pdfFile, *show)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inputFile, outputFile, ops, pdfFile string, show bool) error {
	steps, err := pipeline.Parse(ops)
	if err != nil {
		return err
	}

	in, err := codec.Load(inputFile)
	if err != nil {
		return err
	}

	out, err := pipeline.Run(in, steps)
	if err != nil {
		return err
	}

	err = codec.Save(outputFile, out)
	if err != nil {
		return err
	}
	grayfilter.Logger().Info("image written",
		"file", outputFile, "width", out.Width, "height", out.Height)

	if pdfFile != "" {
		err = proof.WritePDF(pdfFile, &proof.Sheet{
			Panels: []*grayfilter.Raster{in, out},
			Scale:  1,
		})
		if err != nil {
			return err
		}
	}

	if show {
		term, err := display.NewTerminal(os.Stdout)
		if errors.Is(err, display.ErrUnavailable) {
			grayfilter.Logger().Warn("not showing the image", "reason", err)
			return nil
		} else if err != nil {
			return err
		}
		return term.Show(out)
	}

	return nil
}
