// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"slices"

	"cogentcore.org/systyle/base/randx"
	"cogentcore.org/systyle/stats/bootstrap"
	"cogentcore.org/systyle/stats/linreg"
	"cogentcore.org/systyle/style"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BandOptions are the drawing options for [BootstrapLR].
type BandOptions struct {

	// Legend adds the line and band to the axes legend.
	Legend bool `default:"true"`

	// Color is the color of the line and the band.
	Color string `default:"r"`

	// Alpha is the opacity of the band.
	Alpha float64 `default:"0.5"`

	// Grid has the x values to evaluate the band at.
	// If nil, a grid spanning the range of x is used.
	Grid []float64
}

// NewBandOptions returns new BandOptions with defaults set.
func NewBandOptions() *BandOptions {
	o := &BandOptions{}
	o.Defaults()
	return o
}

func (o *BandOptions) Defaults() {
	o.Legend = true
	o.Color = "r"
	o.Alpha = 0.5
}

// ConfLabel returns the legend label for a confidence band with
// the given confidence in percent. The percent sign is escaped
// for LaTeX when tex is true.
func ConfLabel(conf float64, tex bool) string {
	pct := "%"
	if tex {
		pct = `\%`
	}
	return fmt.Sprintf("%g%s Boot. C.I.", conf, pct)
}

// BootstrapLR draws the maximum likelihood regression line of y on x and
// its bootstrap percentile band onto the axes, and returns the regression
// summary and the band. NaN values must be removed first, see
// [linreg.DropNaN]. Nil params and opts use the defaults. Optionally can
// pass a single Rand interface to use, otherwise uses the system global
// Rand source.
func BootstrapLR(ax *Axes, x, y []float64, params *bootstrap.Params, opts *BandOptions, randOpt ...randx.Rand) (*linreg.Summary, *bootstrap.Band, error) {
	if params == nil {
		params = bootstrap.NewParams()
	}
	if opts == nil {
		opts = NewBandOptions()
	}
	clr, err := style.Color(opts.Color)
	if err != nil {
		return nil, nil, err
	}
	band, err := bootstrap.LinReg(x, y, opts.Grid, params, randOpt...)
	if err != nil {
		return nil, nil, err
	}
	sum, err := linreg.Summarize(x, y)
	if err != nil {
		return nil, nil, err
	}

	n := len(band.Grid)
	outline := make(plotter.XYs, 0, 2*n)
	for i, gx := range band.Grid {
		outline = append(outline, plotter.XY{X: gx, Y: band.Upper[i]})
	}
	for i, gx := range slices.Backward(band.Grid) {
		outline = append(outline, plotter.XY{X: gx, Y: band.Lower[i]})
	}
	poly, err := plotter.NewPolygon(outline)
	if err != nil {
		return nil, nil, err
	}
	poly.Color = style.WithAlpha(clr, opts.Alpha)
	poly.LineStyle.Width = 0

	fitted := sum.Fit().Eval(band.Grid)
	pts := make(plotter.XYs, n)
	for i := range pts {
		pts[i].X, pts[i].Y = band.Grid[i], fitted[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, nil, err
	}
	line.LineStyle.Color = clr
	line.LineStyle.Width = vg.Points(ax.Style.LineWidth)

	ax.Add(poly, line)
	if opts.Legend {
		ax.Legend.Add("LR", line)
		ax.Legend.Add(ConfLabel(params.Confidence(), ax.Style.UseTex), poly)
	}
	return sum, band, nil
}
