// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/systyle/figure"
	"github.com/spf13/cobra"
)

func newJitterCmd(opts *options) *cobra.Command {
	var cols []string
	var frameless bool
	params := figure.NewJitterParams()
	cmd := &cobra.Command{
		Use:   "jitter <csv>",
		Short: "Draw jittered strip plots of CSV columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := openTable(args[0])
			if err != nil {
				return err
			}
			if len(cols) == 0 {
				cols = dt.Names
			}
			st, err := opts.loadStyle()
			if err != nil {
				return err
			}
			f, err := figure.New(st, 1, 1)
			if err != nil {
				return err
			}
			ax := f.Axes[0]
			if _, err := figure.Jitter(ax, dt, cols, params, opts.rand(cmd)...); err != nil {
				return err
			}
			if frameless {
				figure.SimpleAxis(ax)
			}
			files, err := opts.save(f)
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), map[string]any{"columns": cols, "files": files})
		},
	}
	fs := cmd.Flags()
	fs.StringSliceVar(&cols, "cols", nil, "columns to plot; all if empty")
	fs.StringVar(&params.YLabel, "ylabel", "", "y axis label")
	fs.StringSliceVar(&params.XLabels, "xlabels", nil, "column labels; column names if empty")
	fs.StringSliceVar(&params.Colors, "colors", params.Colors, "marker colors: one, or one per column")
	fs.StringSliceVar(&params.Markers, "markers", params.Markers, "marker codes (. o s ^ + x): one, or one per column")
	fs.Float64Var(&params.DX, "dx", params.DX, "jitter half width")
	fs.Float64Var(&params.Alpha, "alpha", params.Alpha, "marker opacity")
	fs.Float64Var(&params.MarkerSize, "markersize", params.MarkerSize, "marker size in points")
	fs.StringVar(&params.TickFormat, "ytick-format", "", "fmt format for y tick labels, e.g. %.1f")
	fs.BoolVar(&frameless, "simple", true, "draw only the bottom and left axes")
	addOutputFlags(cmd, opts)
	return cmd
}
