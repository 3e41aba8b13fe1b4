// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/systyle/base/logx"
	"cogentcore.org/systyle/base/randx"
	"cogentcore.org/systyle/figure"
	"cogentcore.org/systyle/style"
	"cogentcore.org/systyle/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// options are the flags shared by the plotting commands.
type options struct {
	logLevel  string
	verbose   bool
	debug     bool
	quiet     bool
	styleFile string
	out       string
	name      string
	exts      []string
	seed      int64
}

// newRootCmd returns the root command with all subcommands.
func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "systyle",
		Short:        "Styled statistical figures from CSV data",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setupLogging(cmd.ErrOrStderr())
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error; overrides -v, --vv and -q")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log info messages")
	pf.BoolVar(&opts.debug, "vv", false, "log debug messages")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "log only errors")
	pf.StringVar(&opts.styleFile, "style", "", "style file (yaml, mplstyle or toml), instead of the default style")

	root.AddCommand(newFitCmd(opts), newJitterCmd(opts), newHeatmapCmd(opts), newStyleCmd(opts))
	return root
}

// addOutputFlags adds the flags for saving figures and seeding.
func addOutputFlags(cmd *cobra.Command, opts *options) {
	fs := cmd.Flags()
	fs.StringVar(&opts.out, "out", ".", "output directory")
	fs.StringVar(&opts.name, "name", "", "figure file name without extension; no figure is saved if empty")
	fs.StringSliceVar(&opts.exts, "ext", figure.DefaultExts, "figure file extensions")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed, for reproducible results")
}

// setupLogging sets the default logger to write to w at the level
// selected by the logging flags.
func (opts *options) setupLogging(w io.Writer) error {
	logx.UserLevel = logx.LevelFromFlags(opts.debug, opts.verbose, opts.quiet)
	if opts.logLevel != "" {
		lvl, err := logx.ParseLevel(opts.logLevel)
		if err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
		logx.UserLevel = lvl
	}
	logx.SetDefaultLogger(w)
	return nil
}

// loadStyle returns the style from the --style file, or the default.
func (opts *options) loadStyle() (*style.Style, error) {
	if opts.styleFile == "" {
		return style.Default(), nil
	}
	return style.Open(opts.styleFile)
}

// rand returns the seeded random source if --seed was given, else nil.
func (opts *options) rand(cmd *cobra.Command) []randx.Rand {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	return []randx.Rand{randx.NewSysRand(opts.seed)}
}

// save saves the figure if --name is set, returning the files written.
func (opts *options) save(f *figure.Figure) ([]string, error) {
	files, err := f.Save(opts.out, opts.name, opts.exts...)
	if err != nil {
		return nil, err
	}
	for _, fn := range files {
		slog.Info("saved figure", "file", fn)
	}
	return files, nil
}

// writeYAML writes v to w as YAML.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// openTable reads a CSV or TSV table file.
func openTable(filename string) (*table.Table, error) {
	dt, err := table.OpenCSV(filename, table.Detect)
	if err != nil {
		return nil, err
	}
	slog.Debug("read table", "file", filename, "rows", dt.NumRows(), "cols", dt.NumCols())
	return dt, nil
}
