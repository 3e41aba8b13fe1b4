// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/systyle/style"
	"github.com/spf13/cobra"
)

func newStyleCmd(opts *options) *cobra.Command {
	var format string
	var watch bool
	cmd := &cobra.Command{
		Use:   "style",
		Short: "Print the figure style",
		Long: `Style prints the default style, or the --style file, as YAML or TOML.
With --watch, the style file is printed again each time it changes,
until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ff, err := style.ParseFormat(format)
			if err != nil {
				return err
			}
			st, err := opts.loadStyle()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if err := st.Encode(w, ff); err != nil {
				return err
			}
			if !watch || opts.styleFile == "" {
				return nil
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return style.Watch(ctx, opts.styleFile, func(st *style.Style) {
				if err := st.Encode(w, ff); err != nil {
					slog.Error("style: encode", "err", err)
				}
			})
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&format, "format", "yaml", "output format: yaml or toml")
	fs.BoolVar(&watch, "watch", false, "print the --style file again whenever it changes")
	return cmd
}
