// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure draws styled figures with gonum plot: grids of axes with
// optional outside legends and color bars, jitter plots, heatmaps and
// bootstrap regression bands, saved as vector or raster images.
//
// Every function takes the [style.Style] to use explicitly, or a [Figure]
// or [Axes] that carries one; nothing is configured globally.
package figure

import (
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/systyle/base/errors"
	"cogentcore.org/systyle/style"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrInvalid is wrapped by errors for invalid arguments.
var ErrInvalid = errors.New("figure: invalid argument")

// Figure is a grid of [Axes] sharing a style.
type Figure struct {

	// Style is the style used for all of the axes.
	Style *style.Style

	// Rows and Cols are the number of rows and columns of axes.
	Rows, Cols int

	// Width and Height are the size of each axes, in inches.
	Width, Height float64

	// Axes are the axes in row-major order.
	Axes []*Axes
}

// New returns a new figure with rows by cols axes. The size of each axes
// in inches is given by size: none uses the style figure.figsize, one value
// gives square axes, and two give the width and height. The figure is
// cols times the axes width wide and rows times the axes height tall.
// A nil style uses [style.Default].
func New(st *style.Style, rows, cols int, size ...float64) (*Figure, error) {
	if st == nil {
		st = style.Default()
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %d by %d axes", ErrInvalid, rows, cols)
	}
	w, h := st.Size()
	switch len(size) {
	case 0:
	case 1:
		w, h = size[0], size[0]
	case 2:
		w, h = size[0], size[1]
	default:
		return nil, fmt.Errorf("%w: %d size values, want 1 (square) or 2 (width, height)", ErrInvalid, len(size))
	}
	if !(w > 0 && h > 0) || math.IsInf(w, 1) || math.IsInf(h, 1) {
		return nil, fmt.Errorf("%w: axes size %g by %g", ErrInvalid, w, h)
	}
	f := &Figure{Style: st, Rows: rows, Cols: cols, Width: w, Height: h}
	f.Axes = make([]*Axes, rows*cols)
	for i := range f.Axes {
		f.Axes[i] = NewAxes(st)
	}
	return f, nil
}

// At returns the axes at given row and column.
func (f *Figure) At(row, col int) *Axes {
	return f.Axes[row*f.Cols+col]
}

// Size returns the total size of the figure.
func (f *Figure) Size() (w, h vg.Length) {
	return vg.Length(float64(f.Cols)*f.Width) * vg.Inch, vg.Length(float64(f.Rows)*f.Height) * vg.Inch
}

// Draw draws all of the axes onto the canvas, in a regular grid.
func (f *Figure) Draw(c draw.Canvas) {
	c.SetColor(color.White)
	c.Fill(c.Rectangle.Path())
	pad := vg.Points(f.Style.FontSize) / 2
	tiles := draw.Tiles{
		Rows: f.Rows, Cols: f.Cols,
		PadX: pad, PadY: pad,
		PadTop: pad, PadBottom: pad, PadLeft: pad, PadRight: pad,
	}
	for i, ax := range f.Axes {
		ax.Draw(tiles.At(c, i%f.Cols, i/f.Cols))
	}
}
