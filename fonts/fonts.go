// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fonts provides the Latin Modern (Computer Modern) fonts
// as a plot font collection, so that text in figures matches
// LaTeX-typeset documents.
package fonts

import (
	"fmt"
	"sync"

	"codeberg.org/go-fonts/latin-modern/lmmono10italic"
	"codeberg.org/go-fonts/latin-modern/lmmono10regular"
	"codeberg.org/go-fonts/latin-modern/lmroman10bold"
	"codeberg.org/go-fonts/latin-modern/lmroman10bolditalic"
	"codeberg.org/go-fonts/latin-modern/lmroman10italic"
	"codeberg.org/go-fonts/latin-modern/lmroman10regular"
	"codeberg.org/go-fonts/latin-modern/lmsans10bold"
	"codeberg.org/go-fonts/latin-modern/lmsans10oblique"
	"codeberg.org/go-fonts/latin-modern/lmsans10regular"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
)

// Typeface is the typeface name of the Latin Modern fonts.
const Typeface font.Typeface = "Latin Modern"

// Variants of the [Typeface].
const (
	Serif font.Variant = "Serif"
	Sans  font.Variant = "Sans"
	Mono  font.Variant = "Mono"
)

var (
	once       sync.Once
	collection font.Collection

	cacheOnce sync.Once
	cache     *font.Cache
)

// Collection returns the collection of Latin Modern faces:
// roman (Serif), sans and mono, in regular, italic and bold.
func Collection() font.Collection {
	once.Do(func() {
		// lmr
		register(Serif, xfont.StyleNormal, xfont.WeightNormal, lmroman10regular.TTF)
		register(Serif, xfont.StyleItalic, xfont.WeightNormal, lmroman10italic.TTF)
		register(Serif, xfont.StyleNormal, xfont.WeightBold, lmroman10bold.TTF)
		register(Serif, xfont.StyleItalic, xfont.WeightBold, lmroman10bolditalic.TTF)
		// lmss
		register(Sans, xfont.StyleNormal, xfont.WeightNormal, lmsans10regular.TTF)
		register(Sans, xfont.StyleItalic, xfont.WeightNormal, lmsans10oblique.TTF)
		register(Sans, xfont.StyleNormal, xfont.WeightBold, lmsans10bold.TTF)
		// lmtt
		register(Mono, xfont.StyleNormal, xfont.WeightNormal, lmmono10regular.TTF)
		register(Mono, xfont.StyleItalic, xfont.WeightNormal, lmmono10italic.TTF)

		// Ensure that any outside appends will not reuse the backing store.
		n := len(collection)
		collection = collection[:n:n]
	})
	return collection
}

func register(variant font.Variant, style xfont.Style, weight xfont.Weight, ttf []byte) {
	face, err := opentype.Parse(ttf)
	if err != nil {
		panic(fmt.Errorf("failed to parse font: %v", err))
	}
	collection = append(collection, font.Face{
		Font: font.Font{Typeface: Typeface, Variant: variant, Style: style, Weight: weight},
		Face: face,
	})
}

// Cache returns a font cache with the Liberation fonts used by default
// in plots, plus the Latin Modern [Collection]. It is shared, and
// safe for concurrent use.
func Cache() *font.Cache {
	cacheOnce.Do(func() {
		cache = font.NewCache(liberation.Collection())
		cache.Add(Collection())
	})
	return cache
}

// Variant returns the Latin Modern variant for a matplotlib style
// font family name: serif, sans-serif or monospace (and common aliases).
// Unknown names return Serif and false.
func Variant(family string) (font.Variant, bool) {
	switch family {
	case "serif", "roman", "cmr", "Computer Modern", "Latin Modern", "Latin Modern Roman":
		return Serif, true
	case "sans-serif", "sans", "cmss", "Latin Modern Sans":
		return Sans, true
	case "monospace", "mono", "cmtt", "Latin Modern Mono":
		return Mono, true
	}
	return Serif, false
}

// Font returns the Latin Modern font of given variant and size.
func Font(variant font.Variant, size float64) font.Font {
	return font.Font{Typeface: Typeface, Variant: variant, Size: font.Length(size)}
}

// TrueType returns the Liberation face with the same variant, style,
// weight and size as the given Latin Modern face. The Latin Modern fonts
// have PostScript outlines, which PDF output cannot embed. Other faces
// are returned unchanged.
func TrueType(face font.Face) font.Face {
	if face.Font.Typeface != Typeface {
		return face
	}
	fnt := face.Font
	fnt.Typeface = "Liberation"
	return Cache().Lookup(fnt, fnt.Size)
}
