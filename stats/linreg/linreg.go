// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linreg provides ordinary least squares fitting of a line
// y = Slope * x + Intercept, and a summary of the maximum likelihood
// fit of a sample (p-value, r^2, standard errors).
package linreg

import (
	"fmt"
	"math"

	"cogentcore.org/systyle/base/errors"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrInvalidInput is returned for malformed arguments: mismatched
	// lengths, too few points, non-finite values, or bad parameters.
	ErrInvalidInput = errors.New("linreg: invalid input")

	// ErrDegenerate is returned when the regression is undefined,
	// e.g., when all x values are identical.
	ErrDegenerate = errors.New("linreg: numerically degenerate")
)

// Fit is a fitted line y = Slope * x + Intercept,
// with the intercept taken at x = 0.
type Fit struct {
	Slope     float64
	Intercept float64
}

// At returns the value of the line at x.
func (f Fit) At(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// Eval returns the values of the line at each of the grid points.
func (f Fit) Eval(grid []float64) []float64 {
	return f.EvalInto(make([]float64, len(grid)), grid)
}

// EvalInto sets dst[i] to the value of the line at grid[i], and returns dst,
// which must be at least as long as grid.
func (f Fit) EvalInto(dst, grid []float64) []float64 {
	for i, x := range grid {
		dst[i] = f.Slope*x + f.Intercept
	}
	return dst
}

func (f Fit) String() string {
	return fmt.Sprintf("y = %.6g * x + %.6g", f.Slope, f.Intercept)
}

// CheckSample returns an error wrapping [ErrInvalidInput] if x and y
// do not form a valid sample: they must have equal length >= 2,
// and all values must be finite.
func CheckSample(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: len(x) = %d != len(y) = %d", ErrInvalidInput, len(x), len(y))
	}
	if len(x) < 2 {
		return fmt.Errorf("%w: need at least 2 points, have %d", ErrInvalidInput, len(x))
	}
	if err := checkFinite("x", x); err != nil {
		return err
	}
	return checkFinite("y", y)
}

func checkFinite(name string, vs []float64) error {
	for i, v := range vs {
		if !isFinite(v) {
			return fmt.Errorf("%w: %s[%d] = %v is not finite (use DropNaN first)", ErrInvalidInput, name, i, v)
		}
	}
	return nil
}

// CheckVariance returns an error wrapping [ErrDegenerate] if all
// of the x values are identical, so that the slope is undefined, or if
// the variance of x is not representable as a positive finite number.
func CheckVariance(x []float64) error {
	if Constant(x) {
		return fmt.Errorf("%w: all %d x values are identical (%v), slope is undefined", ErrDegenerate, len(x), x[0])
	}
	_, vx := stat.PopMeanVariance(x, nil)
	if !(vx > 0) || math.IsInf(vx, 1) {
		return fmt.Errorf("%w: x variance %v is out of floating point range", ErrDegenerate, vx)
	}
	return nil
}

// Constant returns true if all values are identical
// (including the empty case).
func Constant(vs []float64) bool {
	for _, v := range vs[min(1, len(vs)):] {
		if v != vs[0] {
			return false
		}
	}
	return true
}

// OLS returns the ordinary least squares fit of y on x.
// It returns an error wrapping [ErrInvalidInput] for an invalid
// sample, and [ErrDegenerate] if x has no usable variance
// or the fitted line is not finite.
func OLS(x, y []float64) (Fit, error) {
	if err := CheckSample(x, y); err != nil {
		return Fit{}, err
	}
	if err := CheckVariance(x); err != nil {
		return Fit{}, err
	}
	fit := ols(x, y)
	if !isFinite(fit.Slope) || !isFinite(fit.Intercept) {
		return Fit{}, fmt.Errorf("%w: fitted line %v is not finite", ErrDegenerate, fit)
	}
	return fit, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ols does the fit without any checks.
func ols(x, y []float64) Fit {
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	return Fit{Slope: beta, Intercept: alpha}
}

// DropNaN returns copies of x and y with all pairs removed where
// either value is NaN. Lengths must match: otherwise it returns nil slices.
func DropNaN(x, y []float64) (xs, ys []float64) {
	if len(x) != len(y) {
		return nil, nil
	}
	xs = make([]float64, 0, len(x))
	ys = make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return
}
