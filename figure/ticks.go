// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// PlainTicks sets the axis to label its default tick positions with the
// given fmt format, e.g. "%.1f", as plain numbers.
func PlainTicks(axis *plot.Axis, format string) {
	axis.Tick.Marker = labeledTicks(func(v float64) string {
		return fmt.Sprintf(format, v)
	})
}

// SciTicks sets the axis to label its default tick positions in
// LaTeX scientific notation with the given number of digits
// after the decimal point, see [SciNotation].
func SciTicks(axis *plot.Axis, digits int) {
	axis.Tick.Marker = labeledTicks(func(v float64) string {
		return SciNotation(v, digits)
	})
}

// labeledTicks returns default ticks with the major tick labels
// given by the label function.
func labeledTicks(label func(v float64) string) plot.Ticker {
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		ticks := plot.DefaultTicks{}.Ticks(min, max)
		for i := range ticks {
			if !ticks[i].IsMinor() {
				ticks[i].Label = label(ticks[i].Value)
			}
		}
		return ticks
	})
}

// SciNotation returns v in LaTeX scientific notation, with the given
// number of digits after the decimal point in the mantissa, e.g.
// $1.50 \times 10^{3}$ for 1500 with 2 digits. Values with a zero exponent
// have no power of ten, zero is $0$, and non-finite values are returned
// as plain text.
func SciNotation(v float64, digits int) string {
	switch {
	case v == 0:
		return "$0$"
	case math.IsNaN(v) || math.IsInf(v, 0):
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	digits = max(digits, 0)
	exp := int(math.Floor(math.Log10(math.Abs(v))))
	mant := v / math.Pow(10, float64(exp))
	scale := math.Pow(10, float64(digits))
	if math.Abs(math.Round(mant*scale)/scale) >= 10 {
		mant /= 10
		exp++
	}
	m := strconv.FormatFloat(mant, 'f', digits, 64)
	if exp == 0 {
		return "$" + m + "$"
	}
	return fmt.Sprintf(`$%s \times 10^{%d}$`, m, exp)
}

// Labels sets the axis ticks to the given labels,
// at positions start, start+1, ...
func Labels(axis *plot.Axis, start float64, labels []string) {
	ticks := make(plot.ConstantTicks, len(labels))
	for i, lb := range labels {
		ticks[i] = plot.Tick{Value: start + float64(i), Label: lb}
	}
	axis.Tick.Marker = ticks
}

// RotateLabels rotates the tick labels of the horizontal axis
// counterclockwise by the given angle in degrees, aligning their
// ends with the ticks.
func RotateLabels(axis *plot.Axis, degrees float64) {
	axis.Tick.Label.Rotation = degrees * math.Pi / 180
	if degrees != 0 {
		axis.Tick.Label.XAlign = draw.XRight
		axis.Tick.Label.YAlign = draw.YCenter
	}
}
