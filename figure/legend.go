// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"image/color"

	"cogentcore.org/systyle/style"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// outsideLegend is a legend drawn to the right of the plot area,
// vertically centered.
type outsideLegend struct {
	plot.Legend

	// Frame draws a frame around the legend.
	Frame bool
}

// LegendOutside moves the legend of the axes outside of the plot area, to
// the right of it and vertically centered. If thumbs and labels are both
// nil, the entries already added to the axes legend are moved. Otherwise
// the legend has one entry per label, drawn with the corresponding
// thumbnail, and the lengths must match. The legend text has the given
// font size in points, and a frame is drawn if frameon is set.
func LegendOutside(ax *Axes, thumbs []plot.Thumbnailer, labels []string, size float64, frameon bool) error {
	if len(thumbs) != len(labels) || (thumbs == nil) != (labels == nil) {
		return fmt.Errorf("%w: %d legend thumbnails for %d labels", ErrInvalid, len(thumbs), len(labels))
	}
	leg := ax.Legend
	if labels != nil {
		leg = plot.NewLegend()
		leg.TextStyle = ax.Legend.TextStyle
		for i, lb := range labels {
			leg.Add(lb, thumbs[i])
		}
	}
	leg.TextStyle.Font = ax.Style.Font(size)
	leg.Top = true
	leg.Left = true
	leg.XOffs, leg.YOffs = 0, 0
	ax.outside = &outsideLegend{Legend: leg, Frame: frameon}

	empty := plot.NewLegend()
	empty.TextStyle = ax.Legend.TextStyle
	ax.Legend = empty
	return nil
}

// draw draws the legend at the right of the canvas,
// and returns the remaining canvas.
func (l *outsideLegend) draw(c draw.Canvas) draw.Canvas {
	pad := l.TextStyle.Font.Size / 2
	sz := l.Rectangle(c).Size()
	w := sz.X + 2*pad
	cy := c.Center().Y
	box := vg.Rectangle{
		Min: vg.Point{X: c.Max.X - w, Y: cy - sz.Y/2 - pad},
		Max: vg.Point{X: c.Max.X, Y: cy + sz.Y/2 + pad},
	}
	if l.Frame {
		pts := []vg.Point{
			box.Min,
			{X: box.Max.X, Y: box.Min.Y},
			box.Max,
			{X: box.Min.X, Y: box.Max.Y},
			box.Min,
		}
		c.FillPolygon(color.White, pts)
		c.StrokeLines(draw.LineStyle{Color: style.Gray(0.8), Width: vg.Points(0.8)}, pts)
	}
	inner := draw.Canvas{
		Canvas: c.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: box.Min.X + pad, Y: box.Min.Y + pad},
			Max: vg.Point{X: box.Max.X - pad, Y: box.Max.Y - pad},
		},
	}
	l.Legend.Draw(inner)
	return draw.Crop(c, 0, -(w + pad), 0, 0)
}
