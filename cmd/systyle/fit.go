// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/systyle/figure"
	"cogentcore.org/systyle/stats/bootstrap"
	"cogentcore.org/systyle/stats/linreg"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// fitResult is the YAML output of the fit command.
type fitResult struct {
	Summary       *linreg.Summary `yaml:"summary"`
	Confidence    float64         `yaml:"confidence"`
	B             int             `yaml:"b"`
	Dropped       int             `yaml:"dropped"`
	Redrawn       int             `yaml:"redrawn"`
	GridGenerated bool            `yaml:"grid_generated"`
	Files         []string        `yaml:"files,omitempty"`
}

func newFitCmd(opts *options) *cobra.Command {
	var xcol, ycol string
	params := bootstrap.NewParams()
	band := figure.NewBandOptions()
	cmd := &cobra.Command{
		Use:   "fit <csv>",
		Short: "Fit a linear regression with a bootstrap confidence band",
		Long: `Fit reads the x and y columns of a CSV file, drops rows with missing
values, and prints the least squares regression summary as YAML.
With --name, it also saves a scatter plot of the data with the
regression line and its bootstrap percentile band.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := openTable(args[0])
			if err != nil {
				return err
			}
			x, err := dt.Column(xcol)
			if err != nil {
				return err
			}
			y, err := dt.Column(ycol)
			if err != nil {
				return err
			}
			xs, ys := linreg.DropNaN(x, y)
			st, err := opts.loadStyle()
			if err != nil {
				return err
			}
			f, err := figure.New(st, 1, 1)
			if err != nil {
				return err
			}
			ax := f.Axes[0]
			sum, bnd, err := figure.BootstrapLR(ax, xs, ys, params, band, opts.rand(cmd)...)
			if err != nil {
				return err
			}
			if err := addPoints(ax, xs, ys); err != nil {
				return err
			}
			ax.X.Label.Text = xcol
			ax.Y.Label.Text = ycol

			res := &fitResult{
				Summary:       sum,
				Confidence:    params.Confidence(),
				B:             params.B,
				Dropped:       len(x) - len(xs),
				Redrawn:       bnd.Redrawn,
				GridGenerated: bnd.GridGenerated,
			}
			if res.Files, err = opts.save(f); err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), res)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&xcol, "x", "x", "x column name")
	fs.StringVar(&ycol, "y", "y", "y column name")
	fs.IntVar(&params.B, "b", params.B, "number of bootstrap resamples")
	fs.Float64Var(&params.QLow, "qlow", params.QLow, "lower band percentile")
	fs.Float64Var(&params.QHigh, "qhigh", params.QHigh, "upper band percentile")
	fs.IntVar(&params.NGrid, "ngrid", params.NGrid, "number of band grid points")
	fs.IntVar(&params.Workers, "workers", 0, "number of fitting goroutines; 0 for all CPUs")
	fs.BoolVar(&band.Legend, "legend", band.Legend, "add the line and band to the legend")
	fs.Float64Var(&band.Alpha, "alpha", band.Alpha, "band opacity")
	addOutputFlags(cmd, opts)
	return cmd
}

// addPoints adds a scatter of the data points to the axes.
func addPoints(ax *figure.Axes, x, y []float64) error {
	xys := make(plotter.XYs, len(x))
	for i := range xys {
		xys[i].X, xys[i].Y = x[i], y[i]
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("data points: %w", err)
	}
	sc.GlyphStyle = draw.GlyphStyle{
		Color:  ax.Style.Cycle(0),
		Radius: ax.Style.GlyphRadius(),
		Shape:  draw.CircleGlyph{},
	}
	ax.Add(sc)
	return nil
}
