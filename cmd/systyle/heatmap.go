// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/systyle/figure"
	"github.com/spf13/cobra"
)

func newHeatmapCmd(opts *options) *cobra.Command {
	params := figure.NewHeatmapParams()
	cmd := &cobra.Command{
		Use:   "heatmap <csv>",
		Short: "Draw a CSV matrix as a heatmap",
		Long: `Heatmap draws a CSV matrix as a heatmap with a color bar. The header
has the column labels. If the first header cell is empty, the first
column has the row labels. The first row is drawn at the bottom.
Missing values are drawn in grey.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := openTable(args[0])
			if err != nil {
				return err
			}
			st, err := opts.loadStyle()
			if err != nil {
				return err
			}
			params.XTickLabels = dt.Names
			params.YTickLabels = dt.RowNames
			f, err := figure.Heatmap(st, dt.Matrix(), params)
			if err != nil {
				return err
			}
			files, err := opts.save(f)
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), map[string]any{"rows": dt.NumRows(), "cols": dt.NumCols(), "files": files})
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&params.XLabel, "xlabel", "", "x axis label")
	fs.StringVar(&params.YLabel, "ylabel", "", "y axis label")
	fs.StringVar(&params.ZLabel, "zlabel", "", "color bar label")
	fs.Float64Var(&params.VMin, "vmin", params.VMin, "value at the low end of the color map; data minimum if NaN")
	fs.Float64Var(&params.VMax, "vmax", params.VMax, "value at the high end of the color map; data maximum if NaN")
	fs.StringVar(&params.CMap, "cmap", "", "color map name; style image.cmap if empty")
	fs.Float64Var(&params.XRotation, "xrotation", 90, "rotation of the column labels, in degrees")
	fs.Float64Var(&params.Size, "size", params.Size, "axes size in inches")
	addOutputFlags(cmd, opts)
	return cmd
}
