// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"image/color"
	"testing"

	"cogentcore.org/systyle/fonts"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

func TestHasMath(t *testing.T) {
	assert.True(t, HasMath(`$x^2$`))
	assert.True(t, HasMath(`slope $\beta$ fit`))
	assert.False(t, HasMath(`95\% Boot. C.I.`))
	assert.False(t, HasMath(`costs \$5 or \$6`))
	assert.False(t, HasMath(`$`))
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, "95% Boot. C.I.", Unescape(`95\% Boot. C.I.`))
	assert.Equal(t, "a_b & c", Unescape(`a\_b \& c`))
	assert.Equal(t, "$5", Unescape(`\$5`))
	assert.Equal(t, "x²", Unescape(`$x^2$`))
	assert.Equal(t, "1.50 × 10³", Unescape(`$1.50 \times 10^{3}$`))
	assert.Equal(t, "-2.5 × 10⁻¹²", Unescape(`$-2.5 \times 10^{-12}$`))
	assert.Equal(t, "e^xy ± 1", Unescape(`$e^{xy} \pm 1$`))
}

func TestTexBox(t *testing.T) {
	h := NewTex(fonts.Cache())
	fnt := fonts.Font(fonts.Serif, 12)

	w, ht, d := h.Box(`95\% Boot. C.I.`, fnt)
	pw, pht, pd := h.Plain.Box("95% Boot. C.I.", fnt)
	assert.Equal(t, pw, w)
	assert.Equal(t, pht, ht)
	assert.Equal(t, pd, d)

	w, _, _ = h.Box(`$x^2$`, fnt)
	assert.Greater(t, float64(w), 0.0)

	// unparseable math falls back to plain text
	w, _, _ = h.Box(`$a#b$`, fnt)
	pw, _, _ = h.Plain.Box("a#b", fnt)
	assert.Equal(t, pw, w)
	assert.Same(t, fonts.Cache(), h.Cache())
}

// recorder is a canvas that records the strings drawn on it.
type recorder struct {
	vg.Canvas
	strs []string
}

func (r *recorder) SetColor(c color.Color) {}
func (r *recorder) Push() {}
func (r *recorder) Pop() {}
func (r *recorder) Rotate(a float64) {}
func (r *recorder) Translate(pt vg.Point) {}
func (r *recorder) Scale(x, y float64) {}
func (r *recorder) Fill(p vg.Path) {}
func (r *recorder) Stroke(p vg.Path) {}
func (r *recorder) SetLineWidth(w vg.Length) {}
func (r *recorder) FillString(f font.Face, pt vg.Point, s string) {
	r.strs = append(r.strs, s)
}

func TestTexDraw(t *testing.T) {
	h := NewTex(fonts.Cache())
	sty := text.Style{Font: fonts.Font(fonts.Serif, 12), Handler: h.Plain}

	rec := &recorder{}
	h.Draw(rec, `$a#b$`, sty, vg.Point{})
	assert.Equal(t, []string{"a#b"}, rec.strs)

	rec = &recorder{}
	h.Draw(rec, `$1.50 \times 10^{3}$`, sty, vg.Point{})
	assert.Equal(t, []string{"1.50 × 10³"}, rec.strs)

	rec = &recorder{}
	h.Draw(rec, `95\% Boot. C.I.`, sty, vg.Point{})
	assert.Equal(t, []string{"95% Boot. C.I."}, rec.strs)
}
