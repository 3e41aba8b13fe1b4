// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

func TestCollection(t *testing.T) {
	coll := Collection()
	assert.Len(t, coll, 9)
	for _, f := range coll {
		assert.Equal(t, Typeface, f.Font.Typeface)
		assert.NotNil(t, f.Face)
	}
	// registered once
	assert.Equal(t, len(coll), len(Collection()))
}

func TestCache(t *testing.T) {
	c := Cache()
	assert.Same(t, c, Cache())
	fnt := font.Font{Typeface: Typeface, Variant: Sans, Weight: xfont.WeightBold}
	assert.True(t, c.Has(fnt))
	face := c.Lookup(fnt, vg.Points(12))
	assert.Equal(t, Sans, face.Font.Variant)
	assert.True(t, c.Has(font.Font{Typeface: "Liberation", Variant: "Serif"}))
}

func TestVariant(t *testing.T) {
	v, ok := Variant("sans-serif")
	assert.True(t, ok)
	assert.Equal(t, Sans, v)
	v, ok = Variant("Comic Sans")
	assert.False(t, ok)
	assert.Equal(t, Serif, v)
	assert.Equal(t, vg.Points(11), Font(Mono, 11).Size)
}

func TestTrueType(t *testing.T) {
	fnt := Font(Sans, 10)
	fnt.Style = xfont.StyleItalic
	lm := Cache().Lookup(fnt, fnt.Size)
	tt := TrueType(lm)
	assert.Equal(t, font.Typeface("Liberation"), tt.Font.Typeface)
	assert.Equal(t, Sans, tt.Font.Variant)
	assert.Equal(t, xfont.StyleItalic, tt.Font.Style)
	assert.Equal(t, vg.Points(10), tt.Font.Size)
	assert.NotSame(t, lm.Face, tt.Face)

	lib := Cache().Lookup(font.Font{Typeface: "Liberation", Variant: "Mono"}, 8)
	assert.Equal(t, lib, TrueType(lib))
}
