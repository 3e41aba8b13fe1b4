// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quantile computes percentiles and quantiles of float64
// data, using the same index conventions as NumPy, so that results
// agree with values computed there.
package quantile

import (
	"fmt"
	"math"
	"slices"

	"cogentcore.org/systyle/base/errors"
)

// ErrInvalid is returned for empty data or out-of-range percentiles.
var ErrInvalid = errors.New("quantile: invalid argument")

// Method is the interpolation method used when the desired quantile
// lies between two data points i < j.
type Method int32

const (
	// Linear interpolates between the points: v[i] + (v[j]-v[i]) * fraction.
	// This is the default method in NumPy.
	Linear Method = iota

	// Lower takes v[i].
	Lower

	// Higher takes v[j].
	Higher

	// Nearest takes v[i] or v[j] whichever is nearest,
	// rounding half to even.
	Nearest

	// Midpoint takes (v[i] + v[j]) / 2.
	Midpoint

	MethodN
)

var methodNames = [...]string{"Linear", "Lower", "Higher", "Nearest", "Midpoint"}

func (m Method) String() string {
	if m < 0 || m >= MethodN {
		return fmt.Sprintf("Method(%d)", m)
	}
	return methodNames[m]
}

// Sorted returns the p quantile (p in [0, 1]) of already sorted
// values using given method. sorted must be non-empty.
func Sorted(sorted []float64, p float64, method Method) float64 {
	n := len(sorted)
	last := float64(n - 1)
	switch method {
	case Lower:
		return sorted[int(math.Floor(last*p))]
	case Higher:
		return sorted[int(math.Ceil(last*p))]
	case Nearest:
		return sorted[int(math.RoundToEven(last*p))]
	case Midpoint:
		lo := math.Floor(last * p)
		hi := math.Ceil(last * p)
		if lo == hi {
			return sorted[int(lo)]
		}
		return lerp(sorted[int(lo)], sorted[int(hi)], 0.5)
	}
	// linear is NumPy's type 7 rule, alpha = beta = 1, with its virtual
	// index n*p + alpha + p*(1-alpha-beta) - 1 evaluated in the same
	// order so that results match it exactly.
	const alpha, beta = 1.0, 1.0
	vi := float64(n)*p + (alpha + p*(1-alpha-beta)) - 1
	if vi >= last {
		return sorted[n-1]
	}
	if vi < 0 {
		return sorted[0]
	}
	prev := math.Floor(vi)
	i := int(prev)
	return lerp(sorted[i], sorted[i+1], vi-prev)
}

// lerp interpolates from a to b, symmetrically from the nearer end
// so that lerp(a, b, 1) == b exactly.
func lerp(a, b, t float64) float64 {
	d := b - a
	if t >= 0.5 {
		return b - d*(1-t)
	}
	return a + d*t
}

// Check returns an error if the data are empty or contain NaN values,
// or the percentile q is outside [0, 100].
func Check(data []float64, q float64) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: no data", ErrInvalid)
	}
	if math.IsNaN(q) || q < 0 || q > 100 {
		return fmt.Errorf("%w: percentile %v not in [0, 100]", ErrInvalid, q)
	}
	if slices.ContainsFunc(data, math.IsNaN) {
		return fmt.Errorf("%w: data contain NaN", ErrInvalid)
	}
	return nil
}

// Percentile returns the q-th percentile (q in [0, 100]) of the data
// with the [Linear] method. The data are not modified.
func Percentile(data []float64, q float64) (float64, error) {
	return PercentileMethod(data, q, Linear)
}

// PercentileMethod returns the q-th percentile (q in [0, 100]) of the data
// with given method. The data are not modified.
func PercentileMethod(data []float64, q float64, method Method) (float64, error) {
	if err := Check(data, q); err != nil {
		return 0, err
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	return Sorted(sorted, q/100, method), nil
}

// Percentiles returns the percentiles qs of the data, sorting only once.
func Percentiles(data []float64, method Method, qs ...float64) ([]float64, error) {
	for _, q := range qs {
		if err := Check(data, q); err != nil {
			return nil, err
		}
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	res := make([]float64, len(qs))
	for i, q := range qs {
		res[i] = Sorted(sorted, q/100, method)
	}
	return res, nil
}

// Columns returns the q-th percentile of each column of the given rows,
// which must all have the same length as the first row.
func Columns(rows [][]float64, q float64, method Method) ([]float64, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalid)
	}
	ncol := len(rows[0])
	res := make([]float64, ncol)
	col := make([]float64, len(rows))
	for j := range ncol {
		for i, r := range rows {
			if len(r) != ncol {
				return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalid, i, len(r), ncol)
			}
			col[i] = r[j]
		}
		if err := Check(col, q); err != nil {
			return nil, err
		}
		slices.Sort(col)
		res[j] = Sorted(col, q/100, method)
	}
	return res, nil
}
