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

// Package pipeline parses and runs sequences of filters, given as text.
//
// A pipeline is a comma separated list of steps:
//
//	invert        photographic negative
//	blur=N        N×N box blur, N odd
//	sharpen=N     unsharp mask using an N×N box blur, N odd
//	edges         Sobel edge detection
//	kernel=FILE   correlation with a kernel read from a JSON file
//
// For example "blur=3,edges,invert".
package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/grayfilter"
)

// Step is a single filter in a pipeline.
type Step struct {
	Name   string             // "invert", "blur", "sharpen", "edges" or "kernel"
	N      int                // kernel size for "blur" and "sharpen"
	Kernel *grayfilter.Kernel // the kernel for "kernel"
}

func (s Step) String() string {
	switch s.Name {
	case "blur", "sharpen":
		return s.Name + "=" + strconv.Itoa(s.N)
	case "kernel":
		return fmt.Sprintf("kernel(%dx%d)", s.Kernel.Size(), s.Kernel.Size())
	default:
		return s.Name
	}
}

// SyntaxError describes an invalid pipeline description.
type SyntaxError struct {
	Step string
	Err  error
}

func (err *SyntaxError) Error() string {
	return "invalid pipeline step " + strconv.Quote(err.Step) + ": " + err.Err.Error()
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

// Parse converts a pipeline description into a list of steps.
// Kernel files are read while parsing.  An empty description gives an
// empty pipeline.
func Parse(desc string) ([]Step, error) {
	var steps []Step
	for field := range strings.SplitSeq(desc, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		name, arg, hasArg := strings.Cut(field, "=")
		name = strings.ToLower(strings.TrimSpace(name))
		arg = strings.TrimSpace(arg)

		step := Step{Name: name}
		switch name {
		case "invert", "edges":
			if hasArg {
				return nil, &SyntaxError{field, fmt.Errorf("%s takes no argument", name)}
			}
		case "blur", "sharpen":
			if !hasArg {
				return nil, &SyntaxError{field, fmt.Errorf("%s needs a kernel size", name)}
			}
			n, err := strconv.Atoi(arg)
			if err != nil {
				return nil, &SyntaxError{field, err}
			}
			if _, err := grayfilter.BoxBlur(n); err != nil {
				return nil, &SyntaxError{field, err}
			}
			step.N = n
		case "kernel":
			if !hasArg {
				return nil, &SyntaxError{field, fmt.Errorf("kernel needs a file name")}
			}
			k, err := LoadKernel(arg)
			if err != nil {
				return nil, &SyntaxError{field, err}
			}
			step.Kernel = k
		default:
			return nil, &SyntaxError{field, fmt.Errorf("unknown filter %q", name)}
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// LoadKernel reads a kernel from a JSON file.  The file contains an array
// of arrays of numbers, where element [i][j] is the weight for horizontal
// offset i and vertical offset j.
func LoadKernel(fileName string) (*grayfilter.Kernel, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	return ParseKernel(data)
}

// ParseKernel decodes a kernel in the JSON format used by [LoadKernel].
func ParseKernel(data []byte) (*grayfilter.Kernel, error) {
	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return grayfilter.NewKernel(rows)
}

// Run applies the steps in order.  Every step produces a finalized
// raster, so that the output of the pipeline can be saved directly.
func Run(r *grayfilter.Raster, steps []Step) (*grayfilter.Raster, error) {
	log := grayfilter.Logger()
	for _, step := range steps {
		var err error
		switch step.Name {
		case "invert":
			r = r.Inverted()
		case "blur":
			r, err = r.Blurred(step.N)
		case "sharpen":
			r, err = r.Sharpened(step.N)
		case "edges":
			r = r.Edges()
		case "kernel":
			r = r.Correlated(step.Kernel)
		default:
			err = fmt.Errorf("unknown filter %q", step.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step, err)
		}
		log.Debug("filter applied", "step", step.String(),
			"width", r.Width, "height", r.Height)
	}
	return r, nil
}
