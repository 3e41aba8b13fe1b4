// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func TestHeatmap(t *testing.T) {
	m := [][]float64{
		{1, 2, 3},
		{4, math.NaN(), 6},
	}
	params := NewHeatmapParams()
	params.Size = 3
	params.XTickLabels = []string{"a", "b", "c"}
	params.YTickLabels = []string{"r0", "r1"}
	params.ZLabel = "z"
	f, err := Heatmap(testStyle(), m, params)
	require.NoError(t, err)
	require.Len(t, f.Axes, 1)
	assert.Equal(t, 3.0, f.Width)

	ax := f.Axes[0]
	require.NotNil(t, ax.colorBar)
	assert.Equal(t, "z", ax.colorBar.Y.Label.Text)
	assert.Equal(t, 1.0, ax.colorBar.Y.Min)
	assert.Equal(t, 6.0, ax.colorBar.Y.Max)
	assert.Equal(t, []plot.Tick{{Value: 0, Label: "r0"}, {Value: 1, Label: "r1"}}, ax.Y.Tick.Marker.Ticks(0, 1))
	assert.Equal(t, 60, f.Image().Bounds().Dx())

	g := matrixGrid(m)
	c, r := g.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 6.0, g.Z(2, 1))
	assert.Equal(t, 1.0, g.Y(1))
}

func TestHeatmapRange(t *testing.T) {
	params := NewHeatmapParams()
	params.Size = 2
	params.VMax = 10
	f, err := Heatmap(testStyle(), [][]float64{{1, 20}}, params)
	require.NoError(t, err)
	cb := f.Axes[0].colorBar
	assert.Equal(t, 1.0, cb.Y.Min)
	assert.Equal(t, 10.0, cb.Y.Max)

	f, err = Heatmap(testStyle(), [][]float64{{3, 3}}, NewHeatmapParams())
	require.NoError(t, err)
	cb = f.Axes[0].colorBar
	assert.Equal(t, 2.5, cb.Y.Min)
	assert.Equal(t, 3.5, cb.Y.Max)

	f, err = Heatmap(testStyle(), [][]float64{{math.NaN()}}, nil)
	require.NoError(t, err)
	cb = f.Axes[0].colorBar
	assert.Equal(t, 0.0, cb.Y.Min)
	assert.Equal(t, 1.0, cb.Y.Max)
}

func TestHeatmapErrors(t *testing.T) {
	tests := []struct {
		name   string
		m      [][]float64
		params func(p *HeatmapParams)
	}{
		{"empty", nil, nil},
		{"empty row", [][]float64{{}}, nil},
		{"ragged", [][]float64{{1, 2}, {3}}, nil},
		{"x labels", [][]float64{{1, 2}}, func(p *HeatmapParams) { p.XTickLabels = []string{"a"} }},
		{"y labels", [][]float64{{1, 2}}, func(p *HeatmapParams) { p.YTickLabels = []string{"a", "b"} }},
		{"range", [][]float64{{1, 2}}, func(p *HeatmapParams) { p.VMin, p.VMax = 2, 1 }},
		{"cmap", [][]float64{{1, 2}}, func(p *HeatmapParams) { p.CMap = "nope" }},
		{"levels", [][]float64{{1, 2}}, func(p *HeatmapParams) { p.Levels = 1 }},
	}
	for _, tc := range tests {
		params := NewHeatmapParams()
		if tc.params != nil {
			tc.params(params)
		}
		_, err := Heatmap(testStyle(), tc.m, params)
		assert.ErrorIs(t, err, ErrInvalid, tc.name)
	}
}
