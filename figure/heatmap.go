// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/systyle/style"
	"gonum.org/v1/plot/plotter"
)

// HeatmapParams are the parameters for [Heatmap].
type HeatmapParams struct {

	// XLabel and YLabel are the axis labels.
	XLabel, YLabel string

	// ZLabel is the color bar label.
	ZLabel string

	// XTickLabels label the columns, if set.
	// There must be one per column.
	XTickLabels []string

	// YTickLabels label the rows, if set.
	// There must be one per row.
	YTickLabels []string

	// VMin and VMax are the data values at the ends of the color map.
	// NaN uses the minimum and maximum of the data. Values outside
	// of the range get the end colors.
	VMin, VMax float64

	// CMap is the name of the color map, see [ColorMap].
	// If empty, the style image.cmap is used.
	CMap string

	// NaNColor is the color of NaN cells.
	NaNColor color.Color

	// XRotation rotates the column labels, in degrees.
	XRotation float64

	// Size is the width and height of the axes, in inches.
	Size float64 `default:"9"`

	// Levels is the number of colors in the palette.
	Levels int `default:"256"`
}

// NewHeatmapParams returns new HeatmapParams with defaults set.
func NewHeatmapParams() *HeatmapParams {
	p := &HeatmapParams{}
	p.Defaults()
	return p
}

func (p *HeatmapParams) Defaults() {
	p.VMin = math.NaN()
	p.VMax = math.NaN()
	p.NaNColor = style.Gray(0.4)
	p.Size = 9
	p.Levels = 256
}

// matrixGrid is a [plotter.GridXYZ] for a row-major matrix,
// with row r at height r and column c at c.
type matrixGrid [][]float64

var _ plotter.GridXYZ = matrixGrid(nil)

func (m matrixGrid) Dims() (c, r int) { return len(m[0]), len(m) }

func (m matrixGrid) Z(c, r int) float64 { return m[r][c] }

func (m matrixGrid) X(c int) float64 { return float64(c) }

func (m matrixGrid) Y(r int) float64 { return float64(r) }

// checkMatrix returns an error if the matrix is empty or ragged.
func checkMatrix(matrix [][]float64) error {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return fmt.Errorf("%w: empty heatmap matrix", ErrInvalid)
	}
	for i, row := range matrix {
		if len(row) != len(matrix[0]) {
			return fmt.Errorf("%w: heatmap row %d has %d values, want %d", ErrInvalid, i, len(row), len(matrix[0]))
		}
	}
	return nil
}

// dataRange returns the range of the finite values in the matrix,
// or 0, 1 if there are none.
func dataRange(matrix [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range matrix {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo > hi {
		return 0, 1
	}
	return lo, hi
}

// Heatmap returns a single axes figure with the matrix drawn as a grid of
// colored cells, with a color bar on the right. Row i of the matrix is
// drawn at height i, so the first row is at the bottom, and is labeled with
// the i-th y tick label. A nil style uses [style.Default] and nil params
// use the defaults.
func Heatmap(st *style.Style, matrix [][]float64, params *HeatmapParams) (*Figure, error) {
	if params == nil {
		params = NewHeatmapParams()
	}
	if err := checkMatrix(matrix); err != nil {
		return nil, err
	}
	cols, rows := matrixGrid(matrix).Dims()
	if params.XTickLabels != nil && len(params.XTickLabels) != cols {
		return nil, fmt.Errorf("%w: %d x tick labels for %d columns", ErrInvalid, len(params.XTickLabels), cols)
	}
	if params.YTickLabels != nil && len(params.YTickLabels) != rows {
		return nil, fmt.Errorf("%w: %d y tick labels for %d rows", ErrInvalid, len(params.YTickLabels), rows)
	}
	if params.Levels < 2 {
		return nil, fmt.Errorf("%w: %d color levels", ErrInvalid, params.Levels)
	}
	f, err := New(st, 1, 1, params.Size)
	if err != nil {
		return nil, err
	}
	name := params.CMap
	if name == "" {
		name = f.Style.CMap
	}
	cmap, err := ColorMap(name)
	if err != nil {
		return nil, err
	}

	lo, hi := dataRange(matrix)
	if !math.IsNaN(params.VMin) {
		lo = params.VMin
	}
	if !math.IsNaN(params.VMax) {
		hi = params.VMax
	}
	switch {
	case lo > hi:
		return nil, fmt.Errorf("%w: heatmap range %g > %g", ErrInvalid, lo, hi)
	case lo == hi:
		lo, hi = lo-0.5, hi+0.5
	}
	cmap.SetMin(lo)
	cmap.SetMax(hi)

	pal := cmap.Palette(params.Levels)
	hm := plotter.NewHeatMap(matrixGrid(matrix), pal)
	hm.Min, hm.Max = lo, hi
	cs := pal.Colors()
	hm.Underflow = cs[0]
	hm.Overflow = cs[len(cs)-1]
	hm.NaN = params.NaNColor

	ax := f.Axes[0]
	ax.Add(hm)
	ax.X.Label.Text = params.XLabel
	ax.Y.Label.Text = params.YLabel
	ax.X.Padding = 0
	ax.Y.Padding = 0
	if params.XTickLabels != nil {
		Labels(&ax.X, 0, params.XTickLabels)
		RotateLabels(&ax.X, params.XRotation)
	}
	if params.YTickLabels != nil {
		Labels(&ax.Y, 0, params.YTickLabels)
	}
	ax.ColorBar(cmap, params.ZLabel)
	return f, nil
}
