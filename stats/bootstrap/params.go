// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bootstrap

import (
	"fmt"
	"math"
	"runtime"

	"cogentcore.org/systyle/stats/linreg"
	"cogentcore.org/systyle/stats/quantile"
)

// DegeneratePolicy determines what happens when a resample
// has no variance in x, so that its regression line is undefined.
type DegeneratePolicy int32

const (
	// Redraw draws a new resample in place of a degenerate one,
	// up to Params.MaxRedraws times per iteration.
	Redraw DegeneratePolicy = iota

	// Fail returns an error wrapping [linreg.ErrDegenerate]
	// as soon as a degenerate resample is drawn, before any fitting.
	Fail
)

func (dp DegeneratePolicy) String() string {
	switch dp {
	case Redraw:
		return "Redraw"
	case Fail:
		return "Fail"
	}
	return fmt.Sprintf("DegeneratePolicy(%d)", int32(dp))
}

// Params are the parameters for bootstrap resampling.
type Params struct {

	// QLow is the lower percentile of the band, in [0, 100].
	QLow float64 `default:"2.5"`

	// QHigh is the upper percentile of the band, in [0, 100], >= QLow.
	QHigh float64 `default:"97.5"`

	// B is the number of bootstrap resamples.
	B int `default:"1000"`

	// NGrid is the number of points in the evaluation grid
	// generated when none is given.
	NGrid int `default:"50"`

	// Workers is the number of goroutines used for fitting.
	// If <= 0, runtime.GOMAXPROCS is used. Results do not depend on it.
	Workers int

	// MaxRedraws is the maximum number of times a single degenerate
	// resample is redrawn under the [Redraw] policy.
	MaxRedraws int `default:"100"`

	// Degenerate determines how resamples without x variance are handled.
	Degenerate DegeneratePolicy

	// Method is the percentile interpolation method.
	Method quantile.Method
}

// NewParams returns new Params with defaults set.
func NewParams() *Params {
	p := &Params{}
	p.Defaults()
	return p
}

func (p *Params) Defaults() {
	p.QLow = 2.5
	p.QHigh = 97.5
	p.B = 1000
	p.NGrid = 50
	p.MaxRedraws = 100
}

// Confidence returns the nominal coverage of the band, in percent.
func (p *Params) Confidence() float64 {
	return p.QHigh - p.QLow
}

// Validate returns an error wrapping [linreg.ErrInvalidInput]
// if any of the parameters are out of range.
func (p *Params) Validate() error {
	inv := linreg.ErrInvalidInput
	switch {
	case p.B <= 0:
		return fmt.Errorf("%w: number of resamples B = %d must be positive", inv, p.B)
	case math.IsNaN(p.QLow) || p.QLow < 0 || p.QLow > 100:
		return fmt.Errorf("%w: QLow = %v not in [0, 100]", inv, p.QLow)
	case math.IsNaN(p.QHigh) || p.QHigh < 0 || p.QHigh > 100:
		return fmt.Errorf("%w: QHigh = %v not in [0, 100]", inv, p.QHigh)
	case p.QLow > p.QHigh:
		return fmt.Errorf("%w: QLow = %v > QHigh = %v", inv, p.QLow, p.QHigh)
	case p.NGrid < 2:
		return fmt.Errorf("%w: NGrid = %d must be at least 2", inv, p.NGrid)
	case p.MaxRedraws < 0:
		return fmt.Errorf("%w: MaxRedraws = %d must not be negative", inv, p.MaxRedraws)
	case p.Method < 0 || p.Method >= quantile.MethodN:
		return fmt.Errorf("%w: unknown percentile method %v", inv, p.Method)
	}
	return nil
}

// workers returns the effective number of workers.
func (p *Params) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.GOMAXPROCS(0)
}
