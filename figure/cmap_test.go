// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/palette"
)

func TestJet(t *testing.T) {
	j := NewJet()
	c, err := j.At(0)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0, G: 0, B: 128, A: 255}, c)

	c, err = j.At(1)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 128, G: 0, B: 0, A: 255}, c)

	c, err = j.At(0.5)
	require.NoError(t, err)
	mid := c.(color.NRGBA)
	assert.Equal(t, uint8(255), mid.G)
	assert.Equal(t, mid.R, mid.B)

	j.SetMin(10)
	j.SetMax(20)
	c, err = j.At(20)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 128, G: 0, B: 0, A: 255}, c)

	_, err = j.At(math.NaN())
	assert.ErrorIs(t, err, palette.ErrNaN)
	_, err = j.At(9)
	assert.ErrorIs(t, err, palette.ErrUnderflow)
	_, err = j.At(21)
	assert.ErrorIs(t, err, palette.ErrOverflow)

	j.SetAlpha(2)
	assert.Equal(t, 1.0, j.Alpha())
	cs := j.Palette(5).Colors()
	assert.Len(t, cs, 5)
	assert.Equal(t, color.NRGBA{R: 0, G: 0, B: 128, A: 255}, cs[0])
}

func TestColorMap(t *testing.T) {
	cm, err := ColorMap("JET")
	require.NoError(t, err)
	assert.IsType(t, &Jet{}, cm)

	for _, nm := range ColorMapNames() {
		cm, err := ColorMap(nm)
		require.NoError(t, err, nm)
		cm.SetMin(0)
		cm.SetMax(1)
		_, err = cm.At(0.5)
		assert.NoError(t, err, nm)
	}

	_, err = ColorMap("viridian")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseMarker(t *testing.T) {
	for code, want := range map[string]Shapes{".": Point, "o": Circle, "s": Square, "^": Triangle, "+": Plus, "x": Cross} {
		sh, err := ParseMarker(code)
		require.NoError(t, err)
		assert.Equal(t, want, sh)
	}
	_, err := ParseMarker("*")
	assert.ErrorIs(t, err, ErrInvalid)

	g := Point.Glyph(color.Black).(EdgedGlyph)
	assert.Equal(t, 0.5, g.Scale)
	g = Plus.Glyph(color.Black).(EdgedGlyph)
	assert.Nil(t, g.Fill)
}
