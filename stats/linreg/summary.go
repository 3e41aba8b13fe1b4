// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linreg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// tiny keeps the t statistic finite for a perfect fit.
const tiny = 1.0e-20

// Summary has the maximum likelihood linear regression results
// for a sample, computed once on the sample as given.
type Summary struct {

	// N is the number of points in the sample.
	N int `yaml:"n"`

	// Slope of the fitted line.
	Slope float64 `yaml:"slope"`

	// Intercept of the fitted line at x = 0.
	Intercept float64 `yaml:"intercept"`

	// RValue is the Pearson correlation coefficient between x and y.
	// It is 0 when y is constant.
	RValue float64 `yaml:"r"`

	// RSquared is the coefficient of determination, RValue^2.
	RSquared float64 `yaml:"r_squared"`

	// PValue is the two-sided p-value for the null hypothesis
	// that the slope is zero, using a t test with N-2 degrees of freedom.
	PValue float64 `yaml:"p_value"`

	// StdErr is the standard error of the slope.
	StdErr float64 `yaml:"stderr"`

	// InterceptStdErr is the standard error of the intercept.
	InterceptStdErr float64 `yaml:"intercept_stderr"`
}

// Fit returns the fitted line.
func (s *Summary) Fit() Fit {
	return Fit{Slope: s.Slope, Intercept: s.Intercept}
}

// Summarize returns the [Summary] of the ordinary least squares
// regression of y on x. It is deterministic: the same input always
// gives bit-identical results.
func Summarize(x, y []float64) (*Summary, error) {
	fit, err := OLS(x, y)
	if err != nil {
		return nil, err
	}
	n := len(x)
	s := &Summary{N: n, Slope: fit.Slope, Intercept: fit.Intercept}

	mx, vx := stat.PopMeanVariance(x, nil)
	_, vy := stat.PopMeanVariance(y, nil)

	if vy != 0 {
		s.RValue = math.Max(-1, math.Min(1, stat.Correlation(x, y, nil)))
	}
	s.RSquared = s.RValue * s.RValue

	if n == 2 {
		// exact fit through two points: no residual degrees of freedom
		if y[0] == y[1] {
			s.PValue = 1
		}
		return s, nil
	}
	df := float64(n - 2)
	r := s.RValue
	t := r * math.Sqrt(df/((1-r+tiny)*(1+r+tiny)))
	s.PValue = 2 * distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.Survival(math.Abs(t))
	s.StdErr = math.Sqrt((1 - r*r) * vy / vx / df)
	s.InterceptStdErr = s.StdErr * math.Sqrt(vx+mx*mx)
	for _, v := range []float64{s.PValue, s.StdErr, s.InterceptStdErr} {
		if !isFinite(v) {
			return nil, fmt.Errorf("%w: regression statistics are not finite: %v", ErrDegenerate, s)
		}
	}
	return s, nil
}

// String returns a one-line description of the summary statistics.
func (s *Summary) String() string {
	return fmt.Sprintf("N: %d\tSlope: %8.6g\tIntercept: %8.6g\tR^2: %8.6g\tP: %8.4g", s.N, s.Slope, s.Intercept, s.RSquared, s.PValue)
}
