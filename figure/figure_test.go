// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"testing"

	"cogentcore.org/systyle/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// testStyle returns a plain text, low resolution style for fast rendering.
func testStyle() *style.Style {
	return style.Default().With(func(s *style.Style) {
		s.UseTex = false
		s.DPI = 20
	})
}

func TestNew(t *testing.T) {
	f, err := New(nil, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, f.Width)
	assert.Equal(t, 5.0, f.Height)
	assert.Len(t, f.Axes, 1)
	assert.NotNil(t, f.Style)

	f, err = New(testStyle(), 2, 3, 2)
	require.NoError(t, err)
	w, h := f.Size()
	assert.Equal(t, 6*vg.Inch, w)
	assert.Equal(t, 4*vg.Inch, h)
	assert.Len(t, f.Axes, 6)
	assert.Same(t, f.Axes[5], f.At(1, 2))

	f, err = New(testStyle(), 1, 2, 3, 4)
	require.NoError(t, err)
	w, h = f.Size()
	assert.Equal(t, 6*vg.Inch, w)
	assert.Equal(t, 4*vg.Inch, h)

	for _, tc := range []struct {
		rows, cols int
		size       []float64
	}{
		{0, 1, nil},
		{1, -1, nil},
		{1, 1, []float64{1, 2, 3}},
		{1, 1, []float64{-1}},
		{1, 1, []float64{0, 2}},
	} {
		_, err := New(testStyle(), tc.rows, tc.cols, tc.size...)
		assert.ErrorIs(t, err, ErrInvalid, "%v", tc)
	}
}

func TestAxes(t *testing.T) {
	st := testStyle().With(func(s *style.Style) {
		s.SpineTop = true
		s.SpineRight = true
	})
	ax := NewAxes(st)
	assert.True(t, ax.SpineTop)
	assert.True(t, ax.SpineRight)
	assert.Equal(t, vg.Points(st.AxesLineWidth), ax.X.LineStyle.Width)
	SimpleAxis(ax)
	assert.False(t, ax.SpineTop)
	assert.False(t, ax.SpineRight)
}

func TestLegendOutside(t *testing.T) {
	f, err := New(testStyle(), 1, 1)
	require.NoError(t, err)
	ax := f.Axes[0]
	line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)
	ax.Add(line)

	err = LegendOutside(ax, []plot.Thumbnailer{line}, []string{"a", "b"}, 12, true)
	assert.ErrorIs(t, err, ErrInvalid)
	err = LegendOutside(ax, nil, []string{}, 12, true)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Nil(t, ax.outside)

	require.NoError(t, LegendOutside(ax, []plot.Thumbnailer{line}, []string{"line"}, 12, true))
	require.NotNil(t, ax.outside)
	assert.True(t, ax.outside.Frame)
	assert.Equal(t, vg.Points(12), ax.outside.TextStyle.Font.Size)

	ax.Legend.Add("moved", line)
	require.NoError(t, LegendOutside(ax, nil, nil, 10, false))
	assert.False(t, ax.outside.Frame)

	img := f.Image()
	assert.Equal(t, 100, img.Bounds().Dx())
}
