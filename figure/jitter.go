// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"cogentcore.org/systyle/base/randx"
	"cogentcore.org/systyle/style"
	"cogentcore.org/systyle/table"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// NonNullJitter returns the finite values of vals, with x positions
// uniformly jittered within dx of 1 + offset. Optionally can pass a single
// Rand interface to use, otherwise uses the system global Rand source.
func NonNullJitter(vals []float64, dx, offset float64, randOpt ...randx.Rand) (ys, xs []float64) {
	ys = make([]float64, 0, len(vals))
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		ys = append(ys, v)
	}
	xs = randx.UniformN(len(ys), -dx, dx, randOpt...)
	for i := range xs {
		xs[i] += 1 + offset
	}
	return ys, xs
}

// JitterParams are the parameters for [Jitter].
type JitterParams struct {

	// YLabel is the y axis label.
	YLabel string

	// DX is the half width of the jitter around each column position.
	DX float64 `default:"0.1"`

	// Offset shifts all of the column positions.
	Offset float64

	// XLabels label the columns. If nil, the column names are used,
	// with underscores replaced by dashes.
	XLabels []string

	// Colors are the marker colors: one for all columns,
	// or one per column.
	Colors []string

	// Markers are the marker codes (see [ParseMarker]): one for all
	// columns, or one per column.
	Markers []string

	// EdgeColor is the color of the marker edges.
	EdgeColor string `default:"k"`

	// Alpha is the opacity of the marker fill.
	Alpha float64 `default:"1"`

	// MarkerSize is the marker diameter, in points.
	MarkerSize float64 `default:"12"`

	// TickFormat is a fmt format for the y tick labels, if set.
	TickFormat string

	// Rotation is the rotation of the column labels, in degrees.
	Rotation float64 `default:"90"`
}

// NewJitterParams returns new JitterParams with defaults set.
func NewJitterParams() *JitterParams {
	p := &JitterParams{}
	p.Defaults()
	return p
}

func (p *JitterParams) Defaults() {
	p.DX = 0.1
	p.Colors = []string{"k"}
	p.Markers = []string{"."}
	p.EdgeColor = "k"
	p.Alpha = 1
	p.MarkerSize = 12
	p.Rotation = 90
}

// perColumn returns the n per-column values from a list with either
// one value for all columns or one per column.
func perColumn(what string, vals []string, n int) ([]string, error) {
	switch len(vals) {
	case 1:
		all := make([]string, n)
		for i := range all {
			all[i] = vals[0]
		}
		return all, nil
	case n:
		return vals, nil
	}
	return nil, fmt.Errorf("%w: %d %s for %d columns", ErrInvalid, len(vals), what, n)
}

// Jitter adds one jittered scatter per named table column to the axes,
// with column i centered at x = i + 1 + params.Offset, and labels the
// columns at x = i + 1, so that an offset shifts the points of a second
// group next to those of the first. NaN and infinite values are left out. It returns the scatters
// in column order. A nil params uses the defaults. Optionally can pass a
// single Rand interface to use, otherwise uses the system global Rand source.
func Jitter(ax *Axes, tbl *table.Table, names []string, params *JitterParams, randOpt ...randx.Rand) ([]*plotter.Scatter, error) {
	if params == nil {
		params = NewJitterParams()
	}
	n := len(names)
	if n == 0 {
		return nil, fmt.Errorf("%w: no jitter columns", ErrInvalid)
	}
	cols := make([][]float64, n)
	for i, nm := range names {
		col, err := tbl.Column(nm)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	labels := params.XLabels
	if labels == nil {
		labels = make([]string, n)
		for i, nm := range names {
			labels[i] = strings.ReplaceAll(nm, "_", "-")
		}
	} else if len(labels) != n {
		return nil, fmt.Errorf("%w: %d x labels for %d columns", ErrInvalid, len(labels), n)
	}
	colors, err := perColumn("colors", params.Colors, n)
	if err != nil {
		return nil, err
	}
	markers, err := perColumn("markers", params.Markers, n)
	if err != nil {
		return nil, err
	}
	edge, err := style.Color(params.EdgeColor)
	if err != nil {
		return nil, err
	}
	glyphs := make([]draw.GlyphStyle, n)
	for i := range glyphs {
		shape, err := ParseMarker(markers[i])
		if err != nil {
			return nil, err
		}
		clr, err := style.Color(colors[i])
		if err != nil {
			return nil, err
		}
		glyphs[i] = draw.GlyphStyle{
			Color:  fillColor(clr, params.Alpha),
			Radius: vg.Points(params.MarkerSize / 2),
			Shape:  shape.Glyph(edge),
		}
	}

	scatters := make([]*plotter.Scatter, n)
	for i, col := range cols {
		ys, xs := NonNullJitter(col, params.DX, params.Offset+float64(i), randOpt...)
		xys := make(plotter.XYs, len(ys))
		for j := range xys {
			xys[j].X, xys[j].Y = xs[j], ys[j]
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle = glyphs[i]
		scatters[i] = sc
		if len(xys) > 0 {
			ax.Add(sc)
		}
	}

	Labels(&ax.X, 1, labels)
	RotateLabels(&ax.X, params.Rotation)
	lo, hi := 1+math.Min(0, params.Offset), float64(n)+math.Max(0, params.Offset)
	ax.X.Min = math.Min(ax.X.Min, lo-0.5)
	ax.X.Max = math.Max(ax.X.Max, hi+0.5)
	ax.Y.Label.Text = params.YLabel
	if params.TickFormat != "" {
		PlainTicks(&ax.Y, params.TickFormat)
	}
	return scatters, nil
}

// fillColor returns the color with the given opacity,
// leaving it unchanged when fully opaque.
func fillColor(c color.Color, alpha float64) color.Color {
	if alpha >= 1 {
		return c
	}
	return style.WithAlpha(c, alpha)
}
