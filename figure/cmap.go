// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// colorMaps are the named color maps for [ColorMap].
var colorMaps = map[string]func() palette.ColorMap{
	"jet":               func() palette.ColorMap { return NewJet() },
	"coolwarm":          func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"bwr":               func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"blackbody":         moreland.BlackBody,
	"hot":               moreland.BlackBody,
	"extendedblackbody": moreland.ExtendedBlackBody,
	"kindlmann":         moreland.Kindlmann,
	"extendedkindlmann": moreland.ExtendedKindlmann,
	"purpleorange":      func() palette.ColorMap { return moreland.SmoothPurpleOrange() },
	"greenpurple":       func() palette.ColorMap { return moreland.SmoothGreenPurple() },
}

// ColorMapNames returns the sorted names accepted by [ColorMap].
func ColorMapNames() []string {
	names := make([]string, 0, len(colorMaps))
	for nm := range colorMaps {
		names = append(names, nm)
	}
	slices.Sort(names)
	return names
}

// ColorMap returns a new color map with the given name,
// as used for image.cmap in styles.
func ColorMap(name string) (palette.ColorMap, error) {
	if fn, ok := colorMaps[strings.ToLower(name)]; ok {
		return fn(), nil
	}
	return nil, fmt.Errorf("%w: unknown color map %q, want one of %v", ErrInvalid, name, ColorMapNames())
}

// jetData are the red, green and blue control points of the jet map,
// as (position, value) pairs.
var jetData = [3][][2]float64{
	{{0, 0}, {0.35, 0}, {0.66, 1}, {0.89, 1}, {1, 0.5}},
	{{0, 0}, {0.125, 0}, {0.375, 1}, {0.64, 1}, {0.91, 0}, {1, 0}},
	{{0, 0.5}, {0.11, 1}, {0.34, 1}, {0.65, 0}, {1, 0}},
}

// Jet is the jet color map, from dark blue through cyan,
// yellow and red to dark red.
type Jet struct {
	min, max, alpha float64
}

var _ palette.ColorMap = (*Jet)(nil)

// NewJet returns a jet color map over [0, 1].
func NewJet() *Jet {
	return &Jet{min: 0, max: 1, alpha: 1}
}

// At returns the color for the value, which must be within [Min, Max].
func (j *Jet) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < j.min:
		return nil, palette.ErrUnderflow
	case v > j.max:
		return nil, palette.ErrOverflow
	}
	t := 0.0
	if j.max > j.min {
		t = (v - j.min) / (j.max - j.min)
	}
	var rgb [3]uint8
	for i, ctl := range jetData {
		rgb[i] = uint8(math.Round(255 * interp(ctl, t)))
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: uint8(math.Round(255 * j.alpha))}, nil
}

// interp linearly interpolates the control points at t in [0, 1].
func interp(ctl [][2]float64, t float64) float64 {
	for i := 1; i < len(ctl); i++ {
		if t <= ctl[i][0] {
			a, b := ctl[i-1], ctl[i]
			return a[1] + (b[1]-a[1])*(t-a[0])/(b[0]-a[0])
		}
	}
	return ctl[len(ctl)-1][1]
}

func (j *Jet) Max() float64 { return j.max }

func (j *Jet) SetMax(v float64) { j.max = v }

func (j *Jet) Min() float64 { return j.min }

func (j *Jet) SetMin(v float64) { j.min = v }

func (j *Jet) Alpha() float64 { return j.alpha }

// SetAlpha sets the opacity, between 0 and 1.
func (j *Jet) SetAlpha(alpha float64) { j.alpha = max(0, min(1, alpha)) }

// Palette returns n colors evenly spaced over the map range.
func (j *Jet) Palette(n int) palette.Palette {
	cs := make(colors, n)
	for i := range cs {
		v := j.min
		if n > 1 {
			v += (j.max - j.min) * float64(i) / float64(n-1)
		}
		cs[i], _ = j.At(v)
	}
	return cs
}

type colors []color.Color

func (cs colors) Colors() []color.Color { return cs }
