// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bootstrap

import (
	"fmt"
	"slices"

	"cogentcore.org/systyle/base/randx"
	"cogentcore.org/systyle/stats/linreg"
	"cogentcore.org/systyle/stats/quantile"
	"gonum.org/v1/gonum/stat"
)

// Interval is a bootstrap percentile interval for a scalar statistic.
type Interval struct {

	// Lower is the QLow percentile of the bootstrap distribution.
	Lower float64

	// Upper is the QHigh percentile of the bootstrap distribution.
	Upper float64

	// Mean of the bootstrap distribution.
	Mean float64

	// StdDev of the bootstrap distribution, an estimate
	// of the standard error of the statistic.
	StdDev float64

	// Estimate is the statistic computed on the original values.
	Estimate float64

	// B is the number of resamples.
	B int
}

// Contains returns true if v is within the interval.
func (iv *Interval) Contains(v float64) bool {
	return v >= iv.Lower && v <= iv.Upper
}

// Stat computes a bootstrap percentile interval for the given statistic
// of the values, e.g., [stat.Mean]. The values must be non-empty and
// finite. Only the QLow, QHigh, B and Method params are used.
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func Stat(values []float64, fun func(vals []float64) float64, params *Params, randOpt ...randx.Rand) (*Interval, error) {
	if params == nil {
		params = NewParams()
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values", linreg.ErrInvalidInput)
	}
	if slices.ContainsFunc(values, notFinite) {
		return nil, fmt.Errorf("%w: values are not all finite", linreg.ErrInvalidInput)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	n := len(values)
	dist := make([]float64, params.B)
	idx := make([]int, n)
	sample := make([]float64, n)
	for b := range dist {
		randx.ResampleInto(idx, n, randOpt...)
		for i, ix := range idx {
			sample[i] = values[ix]
		}
		dist[b] = fun(sample)
	}
	if slices.ContainsFunc(dist, notFinite) {
		return nil, fmt.Errorf("%w: statistic is not finite on some resamples", linreg.ErrDegenerate)
	}
	iv := &Interval{B: params.B, Estimate: fun(slices.Clone(values))}
	iv.Mean, iv.StdDev = stat.MeanStdDev(dist, nil)
	slices.Sort(dist)
	iv.Lower = quantile.Sorted(dist, params.QLow/100, params.Method)
	iv.Upper = quantile.Sorted(dist, params.QHigh/100, params.Method)
	return iv, nil
}
