// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bootstrap estimates confidence intervals by case resampling:
// repeatedly drawing samples with replacement from the data and
// recomputing a statistic, then taking percentiles of the results.
// [LinReg] gives a pointwise band around an ordinary least squares line.
package bootstrap

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"cogentcore.org/systyle/base/randx"
	"cogentcore.org/systyle/stats/linreg"
	"cogentcore.org/systyle/stats/quantile"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Band is a pointwise percentile band around a regression line.
type Band struct {

	// Grid has the x values at which the band is evaluated.
	Grid []float64

	// Lower has the QLow percentile of the fitted lines at each grid point.
	Lower []float64

	// Upper has the QHigh percentile of the fitted lines at each grid point.
	Upper []float64

	// Fits has the line fitted to each resample.
	Fits []linreg.Fit

	// GridGenerated is true if Grid was generated from the range of x,
	// and false if it is the grid passed by the caller.
	GridGenerated bool

	// Redrawn is the number of degenerate resamples that were redrawn.
	Redrawn int
}

// Width returns Upper - Lower at each grid point.
func (b *Band) Width() []float64 {
	w := make([]float64, len(b.Grid))
	floats.SubTo(w, b.Upper, b.Lower)
	return w
}

// Grid returns n points uniformly spanning [min(x), max(x)].
// n must be at least 2.
func Grid(x []float64, n int) []float64 {
	return floats.Span(make([]float64, n), floats.Min(x), floats.Max(x))
}

// LinReg computes a bootstrap percentile band around the ordinary
// least squares fit of y on x. For each of params.B iterations, a resample
// of the (x, y) pairs is drawn with replacement, a line is fit, and evaluated
// over the grid. The band is the params.QLow and params.QHigh percentiles
// of the B fitted values at each grid point.
//
// If grid is nil, a params.NGrid point grid spanning the range of x is
// generated and Band.GridGenerated is set. If params is nil, defaults
// are used. Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source, and results are not reproducible.
//
// All argument errors (wrapping [linreg.ErrInvalidInput]) and
// degeneracies (wrapping [linreg.ErrDegenerate]) are reported before
// the random source is used.
func LinReg(x, y, grid []float64, params *Params, randOpt ...randx.Rand) (*Band, error) {
	if params == nil {
		params = NewParams()
	}
	if err := linreg.CheckSample(x, y); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	band := &Band{Grid: grid}
	if grid == nil {
		band.Grid = Grid(x, params.NGrid)
		band.GridGenerated = true
	} else if len(grid) == 0 {
		return nil, fmt.Errorf("%w: empty evaluation grid", linreg.ErrInvalidInput)
	} else if slices.ContainsFunc(grid, notFinite) {
		return nil, fmt.Errorf("%w: evaluation grid has non-finite values", linreg.ErrInvalidInput)
	}
	if err := linreg.CheckVariance(x); err != nil {
		return nil, err
	}

	idxs, redrawn, err := resamples(x, params, randOpt...)
	if err != nil {
		return nil, err
	}
	band.Redrawn = redrawn
	if redrawn > 0 {
		slog.Debug("bootstrap: redrew degenerate resamples", "redrawn", redrawn, "B", params.B)
	}

	ng := len(band.Grid)
	rows := make([][]float64, params.B)
	band.Fits = make([]linreg.Fit, params.B)
	err = parallel(params.B, params.workers(), func(start, end int) error {
		n := len(x)
		xb := make([]float64, n)
		yb := make([]float64, n)
		for b := start; b < end; b++ {
			for i, ix := range idxs[b] {
				xb[i] = x[ix]
				yb[i] = y[ix]
			}
			fit, err := linreg.OLS(xb, yb)
			if err != nil {
				return fmt.Errorf("resample %d: %w", b, err)
			}
			band.Fits[b] = fit
			rows[b] = fit.EvalInto(make([]float64, ng), band.Grid)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	band.Lower = make([]float64, ng)
	band.Upper = make([]float64, ng)
	lo, hi := params.QLow/100, params.QHigh/100
	err = parallel(ng, params.workers(), func(start, end int) error {
		col := make([]float64, params.B)
		for j := start; j < end; j++ {
			for b, r := range rows {
				col[b] = r[j]
			}
			slices.Sort(col)
			band.Lower[j] = quantile.Sorted(col, lo, params.Method)
			band.Upper[j] = quantile.Sorted(col, hi, params.Method)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return band, nil
}

// resamples draws all of the resample index sets sequentially from
// the random source, so that the results for a given seed do not depend
// on how the fitting is distributed over workers. Resamples without
// variance in x are handled according to params.Degenerate.
func resamples(x []float64, params *Params, randOpt ...randx.Rand) ([][]int, int, error) {
	rnd := randx.Rand(randx.NewGlobalRand())
	if len(randOpt) > 0 && randOpt[0] != nil {
		rnd = randOpt[0]
	}
	n := len(x)
	idxs := make([][]int, params.B)
	xb := make([]float64, n)
	redrawn := 0
	for b := range idxs {
		idx := make([]int, n)
		for try := 0; ; try++ {
			randx.ResampleInto(idx, n, rnd)
			for i, ix := range idx {
				xb[i] = x[ix]
			}
			if linreg.CheckVariance(xb) == nil {
				break
			}
			if params.Degenerate == Fail {
				return nil, redrawn, fmt.Errorf("%w: resample %d has no variance in x", linreg.ErrDegenerate, b)
			}
			if try >= params.MaxRedraws {
				return nil, redrawn, fmt.Errorf("%w: resample %d had no variance in x after %d redraws", linreg.ErrDegenerate, b, params.MaxRedraws)
			}
			redrawn++
		}
		idxs[b] = idx
	}
	return idxs, redrawn, nil
}

// parallel calls fun on contiguous chunks of [0, n) using
// up to the given number of goroutines, returning the first error.
func parallel(n, workers int, fun func(start, end int) error) error {
	workers = max(1, min(workers, n))
	if workers == 1 {
		return fun(0, n)
	}
	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			return fun(start, end)
		})
	}
	return g.Wait()
}

func notFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
