// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"bytes"
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/systyle/fonts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

func TestDefault(t *testing.T) {
	st := Default()
	assert.Equal(t, "serif", st.FontFamily)
	assert.Equal(t, 15.0, st.FontSize)
	assert.True(t, st.UseTex)
	assert.False(t, st.SpineTop)
	assert.False(t, st.SpineRight)
	assert.False(t, st.LegendFrame)
	assert.Equal(t, []float64{5, 5}, st.FigSize)
	assert.Equal(t, "k", st.Colors[0])
	assert.Equal(t, 300.0, st.DPI)
	assert.Equal(t, "tight", st.BBox)
	assert.Equal(t, "jet", st.CMap)
	assert.Nil(t, st.Extra)

	w, h := st.Size()
	assert.Equal(t, 5.0, w)
	assert.Equal(t, 5.0, h)
	assert.Equal(t, vg.Points(4), st.GlyphRadius())

	// each call is independent
	st.FontSize = 3
	assert.Equal(t, 15.0, Default().FontSize)
}

func TestWith(t *testing.T) {
	st := Default()
	small := st.With(func(s *Style) {
		s.FontSize = 9
		s.Colors[0] = "b"
	})
	assert.Equal(t, 9.0, small.FontSize)
	assert.Equal(t, "b", small.Colors[0])
	assert.Equal(t, 15.0, st.FontSize)
	assert.Equal(t, "k", st.Colors[0])

	var sl Stylers
	sl.Add(func(s *Style) { s.UseTex = false })
	sl.Add(func(s *Style) { s.DPI = 72 })
	plain := st.With(sl...)
	assert.False(t, plain.UseTex)
	assert.Equal(t, 72.0, plain.DPI)
	assert.True(t, st.UseTex)

	cp := st.Clone()
	assert.Equal(t, st.Params(), cp.Params())
	assert.NotSame(t, st, cp)
}

func TestDecodeTOML(t *testing.T) {
	st := Default()
	err := st.Decode([]byte(`
"savefig.bbox" = "standard"

[font]
size = 12
family = "sans-serif"

[lines]
linewidth = 3
`), TOML)
	require.NoError(t, err)
	assert.Equal(t, 12.0, st.FontSize)
	assert.Equal(t, "sans-serif", st.FontFamily)
	assert.Equal(t, 3.0, st.LineWidth)
	assert.Equal(t, "standard", st.BBox)
	assert.Equal(t, fonts.Sans, st.Font(10).Variant)
}

func TestSet(t *testing.T) {
	st := Default()
	require.NoError(t, st.Set("axes.prop_cycle", "r, 'b'"))
	assert.Equal(t, []string{"r", "b"}, st.Colors)
	require.NoError(t, st.Set("text.usetex", "false"))
	assert.False(t, st.UseTex)
	require.NoError(t, st.Set("figure.figsize", []any{4, 3.5}))
	assert.Equal(t, []float64{4, 3.5}, st.FigSize)

	// rejected values leave the parameters unchanged
	assert.Error(t, st.Set("font.size", "big"))
	assert.Equal(t, 15.0, st.FontSize)
	require.NoError(t, st.Set("legend.frameon", true))
	assert.Error(t, st.Set("legend.frameon", "yes please"))
	assert.True(t, st.LegendFrame)
	assert.Error(t, st.Set("figure.figsize", []any{"a"}))
	assert.Equal(t, []float64{4, 3.5}, st.FigSize)

	require.NoError(t, st.Set("font.sise", 3))
	assert.Equal(t, 15.0, st.FontSize)
	v, ok := st.Get("font.sise")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	v, ok = st.Get("font.size")
	assert.True(t, ok)
	assert.Equal(t, 15.0, v)
	_, ok = st.Get("nothing")
	assert.False(t, ok)
}

func TestSuggest(t *testing.T) {
	s, ok := Suggest("font.sise")
	assert.True(t, ok)
	assert.Equal(t, "font.size", s)
	_, ok = Suggest("zzzzzzzzzzzz")
	assert.False(t, ok)
	assert.Contains(t, Keys(), "savefig.dpi")
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{YAML, TOML} {
		st := Default().With(func(s *Style) {
			s.FontSize = 11.5
			s.Colors = []string{"#336699", "0.4"}
		})
		var buf bytes.Buffer
		require.NoError(t, st.Encode(&buf, format))
		got := &Style{}
		require.NoError(t, got.Decode(buf.Bytes(), format), format.String())
		assert.Equal(t, st.Params(), got.Params(), format.String())
	}
}

func TestOpenSave(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"s.yaml", "s.toml", "s.mplstyle"} {
		fn := filepath.Join(dir, name)
		st := Default().With(func(s *Style) { s.MarkerSize = 5 })
		require.NoError(t, st.Save(fn))
		got, err := Open(fn)
		require.NoError(t, err)
		assert.Equal(t, 5.0, got.MarkerSize)
	}
	_, err := Open(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
	_, err = Open(filepath.Join(dir, "s.json"))
	assert.Error(t, err)

	f, err := FormatFor("/etc/matplotlibrc")
	assert.NoError(t, err)
	assert.Equal(t, YAML, f)
	f, err = ParseFormat("TOML")
	assert.NoError(t, err)
	assert.Equal(t, TOML, f)
	_, err = ParseFormat("ini")
	assert.Error(t, err)
}

func TestColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"k", color.RGBA{0, 0, 0, 255}},
		{"r", color.RGBA{255, 0, 0, 255}},
		{"#ff0000", color.NRGBA{255, 0, 0, 255}},
		{"#0f0", color.NRGBA{0, 255, 0, 255}},
		{"#11223344", color.NRGBA{0x11, 0x22, 0x33, 0x44}},
		{"0.4", color.RGBA{102, 102, 102, 255}},
		{"SteelBlue", color.RGBA{70, 130, 180, 255}},
	}
	for _, tt := range tests {
		c, err := Color(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}
	for _, bad := range []string{"", "#12", "#gggggg", "1.5", "notacolor"} {
		_, err := Color(bad)
		assert.Error(t, err, bad)
	}
	assert.Equal(t, color.NRGBA{255, 0, 0, 128}, WithAlpha(color.RGBA{255, 0, 0, 255}, 0.5))

	st := Default()
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, st.Cycle(1))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, st.Cycle(len(st.Colors)))
	assert.Equal(t, vg.Points(2), st.LineStyle(0).Width)
}

func TestApply(t *testing.T) {
	p := plot.New()
	st := Default()
	st.Apply(p)
	assert.Equal(t, fonts.Typeface, p.X.Label.TextStyle.Font.Typeface)
	assert.Equal(t, vg.Points(17), p.X.Label.TextStyle.Font.Size)
	assert.Equal(t, vg.Points(14), p.Y.Tick.Label.Font.Size)
	assert.Equal(t, vg.Points(15), p.Legend.TextStyle.Font.Size)
	assert.IsType(t, Tex{}, p.Title.TextStyle.Handler)

	st.With(func(s *Style) { s.UseTex = false }).Apply(p)
	assert.IsType(t, text.Plain{}, p.Y.Label.TextStyle.Handler)
}
