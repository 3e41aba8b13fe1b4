// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package style provides figure styles: consistent fonts, sizes, line
// widths and colors, read from matplotlib-style rc parameter files.
// A Style is an explicit value passed to each rendering call, and is never
// installed globally, so that multiple styles can be used side by side.
package style

import (
	_ "embed"
	"image/color"

	"cogentcore.org/systyle/base/errors"
	"cogentcore.org/systyle/fonts"
	"github.com/jinzhu/copier"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//go:embed systyle.yaml
var defaultStyle []byte

// Style has the styling parameters for figures. Fields are set from
// style files using their matplotlib rc parameter names, given in the
// rc field tags. Sizes are in points unless noted.
type Style struct {

	// FontFamily is serif, sans-serif or monospace, rendered with
	// the Latin Modern fonts, or a Liberation font variant name.
	FontFamily string `rc:"font.family"`

	// FontSize is the base font size.
	FontSize float64 `rc:"font.size"`

	// UseTex renders text with the LaTeX text handler, so that
	// $...$ math is typeset.
	UseTex bool `rc:"text.usetex"`

	// TitleSize is the font size of axes titles.
	TitleSize float64 `rc:"axes.titlesize"`

	// LabelSize is the font size of axis labels.
	LabelSize float64 `rc:"axes.labelsize"`

	// AxesLineWidth is the width of the axis lines and ticks.
	AxesLineWidth float64 `rc:"axes.linewidth"`

	// SpineTop draws a line along the top of the plot area.
	SpineTop bool `rc:"axes.spines.top"`

	// SpineRight draws a line along the right of the plot area.
	SpineRight bool `rc:"axes.spines.right"`

	// Colors is the color cycle for successive plot elements.
	Colors []string `rc:"axes.prop_cycle"`

	// XTickSize is the font size of x tick labels.
	XTickSize float64 `rc:"xtick.labelsize"`

	// YTickSize is the font size of y tick labels.
	YTickSize float64 `rc:"ytick.labelsize"`

	// LegendSize is the font size of legend entries.
	LegendSize float64 `rc:"legend.fontsize"`

	// LegendFrame draws a frame around legends.
	LegendFrame bool `rc:"legend.frameon"`

	// LineWidth is the default width of plotted lines.
	LineWidth float64 `rc:"lines.linewidth"`

	// MarkerSize is the default marker diameter.
	MarkerSize float64 `rc:"lines.markersize"`

	// FigSize is the default width and height of one axes, in inches.
	FigSize []float64 `rc:"figure.figsize"`

	// CMap is the name of the default color map for images.
	CMap string `rc:"image.cmap"`

	// DPI is the resolution of saved raster images.
	DPI float64 `rc:"savefig.dpi"`

	// BBox is "tight" to crop surrounding whitespace from saved images.
	BBox string `rc:"savefig.bbox"`

	// Format is the default file format (extension) for saved figures.
	Format string `rc:"savefig.format"`

	// Extra has parameters from the style file that are not
	// otherwise used.
	Extra map[string]any
}

// Default returns a new copy of the bundled default style.
func Default() *Style {
	st := &Style{}
	errors.Must(st.Decode(defaultStyle, YAML))
	return st
}

// Clone returns a deep copy of the style.
func (st *Style) Clone() *Style {
	cp := &Style{}
	errors.Log(copier.CopyWithOption(cp, st, copier.Option{DeepCopy: true}))
	return cp
}

// With returns a copy of the style with the given styling functions
// applied, leaving the receiver unchanged.
func (st *Style) With(fs ...func(s *Style)) *Style {
	cp := st.Clone()
	Stylers(fs).Run(cp)
	return cp
}

// Stylers is a list of styling functions that set Style properties.
// These are called in the order added.
type Stylers []func(s *Style)

// Add Adds a styling function to the list.
func (sl *Stylers) Add(f func(s *Style)) {
	*sl = append(*sl, f)
}

// Run runs the list of styling functions on given [Style] object.
func (sl Stylers) Run(s *Style) {
	for _, f := range sl {
		f(s)
	}
}

// Font returns the font for the style family at given size in points.
func (st *Style) Font(size float64) font.Font {
	if v, ok := fonts.Variant(st.FontFamily); ok {
		return fonts.Font(v, size)
	}
	switch st.FontFamily {
	case "Liberation Sans", "Liberation Serif", "Liberation Mono":
		return font.Font{Typeface: "Liberation", Variant: font.Variant(st.FontFamily[len("Liberation "):]), Size: font.Length(size)}
	}
	return fonts.Font(fonts.Serif, size)
}

// TextHandler returns the text handler: [Tex] if UseTex, else plain text.
func (st *Style) TextHandler() text.Handler {
	if st.UseTex {
		return NewTex(fonts.Cache())
	}
	return text.Plain{Fonts: fonts.Cache()}
}

// FontCache returns the font cache used for text.
func (st *Style) FontCache() *font.Cache {
	return fonts.Cache()
}

// Cycle returns the i-th color of the color cycle, wrapping around.
// Invalid colors are logged and returned as black.
func (st *Style) Cycle(i int) color.Color {
	if len(st.Colors) == 0 {
		return color.Black
	}
	c, err := Color(st.Colors[i%len(st.Colors)])
	if errors.Log(err) != nil {
		return color.Black
	}
	return c
}

// LineStyle returns the default line style with the i-th cycle color.
func (st *Style) LineStyle(i int) draw.LineStyle {
	return draw.LineStyle{Color: st.Cycle(i), Width: vg.Points(st.LineWidth)}
}

// GlyphRadius returns the default marker radius.
func (st *Style) GlyphRadius() vg.Length {
	return vg.Points(st.MarkerSize / 2)
}

// Size returns the default size of one axes, in inches.
func (st *Style) Size() (w, h float64) {
	switch len(st.FigSize) {
	case 0:
		return 5, 5
	case 1:
		return st.FigSize[0], st.FigSize[0]
	}
	return st.FigSize[0], st.FigSize[1]
}

// Apply sets the fonts, text handler, sizes and axis line widths of the
// given plot from the style. Only the plot is modified.
func (st *Style) Apply(p *plot.Plot) {
	hdlr := st.TextHandler()
	p.TextHandler = hdlr
	p.Title.TextStyle.Font = st.Font(st.TitleSize)
	p.Title.TextStyle.Handler = hdlr

	tickSizes := []float64{st.XTickSize, st.YTickSize}
	for i, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font = st.Font(st.LabelSize)
		ax.Label.TextStyle.Handler = hdlr
		ax.Tick.Label.Font = st.Font(tickSizes[i])
		ax.Tick.Label.Handler = hdlr
		ax.LineStyle.Width = vg.Points(st.AxesLineWidth)
		ax.Tick.LineStyle.Width = vg.Points(st.AxesLineWidth)
	}
	p.Legend.TextStyle.Font = st.Font(st.LegendSize)
	p.Legend.TextStyle.Handler = hdlr
}
