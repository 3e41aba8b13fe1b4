// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"cogentcore.org/systyle/style"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Axes is one plot of a [Figure], with the figure style applied.
// The embedded [plot.Plot] is used to add plotters and set labels.
type Axes struct {
	*plot.Plot

	// Style is the style the plot was configured with.
	Style *style.Style

	// SpineTop draws a line along the top of the data area.
	SpineTop bool

	// SpineRight draws a line along the right of the data area.
	SpineRight bool

	// outside is the legend drawn to the right of the plot, if any.
	outside *outsideLegend

	// colorBar is the color bar plot drawn to the right of the plot, if any.
	colorBar *plot.Plot
}

// NewAxes returns new axes with the given style applied.
func NewAxes(st *style.Style) *Axes {
	p := plot.New()
	st.Apply(p)
	p.Legend.Top = true
	return &Axes{Plot: p, Style: st, SpineTop: st.SpineTop, SpineRight: st.SpineRight}
}

// SimpleAxis removes the top and right spines, leaving only the
// bottom and left axis lines with their ticks.
func SimpleAxis(ax *Axes) {
	ax.SpineTop = false
	ax.SpineRight = false
}

// ColorBar adds a vertical color bar for the color map, with the given label,
// drawn to the right of the plot. The color map range must be set.
// It returns the color bar plot for further configuration.
func (ax *Axes) ColorBar(cmap palette.ColorMap, label string) *plot.Plot {
	cb := plot.New()
	ax.Style.Apply(cb)
	cb.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: true})
	cb.HideX()
	cb.X.Padding = 0
	cb.Y.Padding = 0
	cb.Y.Label.Text = label
	ax.colorBar = cb
	return cb
}

// Draw draws the axes onto the canvas, including any outside legend
// and color bar.
func (ax *Axes) Draw(c draw.Canvas) {
	if ax.outside != nil {
		c = ax.outside.draw(c)
	}
	if ax.colorBar != nil {
		c = ax.drawColorBar(c)
	}
	ax.Plot.Draw(c)
	ax.drawSpines(c)
}

// drawColorBar draws the color bar at the right of the canvas, with the
// same height as the data area, and returns the remaining canvas.
func (ax *Axes) drawColorBar(c draw.Canvas) draw.Canvas {
	w := c.Max.X - c.Min.X
	barW := 0.046 * w
	gap := 0.04 * w
	probe := draw.Crop(c, w/2, 0, 0, 0)
	axisW := ax.colorBar.DataCanvas(probe).Min.X - probe.Min.X
	rest := draw.Crop(c, 0, -(axisW + barW + gap), 0, 0)
	dc := ax.Plot.DataCanvas(rest)
	cbc := draw.Canvas{
		Canvas: c.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: c.Max.X - axisW - barW, Y: dc.Min.Y},
			Max: vg.Point{X: c.Max.X, Y: dc.Max.Y},
		},
	}
	ax.colorBar.Draw(cbc)
	return rest
}

func (ax *Axes) drawSpines(c draw.Canvas) {
	if !ax.SpineTop && !ax.SpineRight {
		return
	}
	dc := ax.DataCanvas(c)
	xmin := dc.Min.X - ax.Y.Padding
	xmax := dc.Max.X + ax.Y.Padding
	ymin := dc.Min.Y - ax.X.Padding
	ymax := dc.Max.Y + ax.X.Padding
	if ax.SpineTop {
		c.StrokeLine2(ax.X.LineStyle, xmin, ymax, xmax, ymax)
	}
	if ax.SpineRight {
		c.StrokeLine2(ax.Y.LineStyle, xmax, ymin, xmax, ymax)
	}
}
