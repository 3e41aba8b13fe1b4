// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"log/slog"
	"regexp"
	"strings"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Tex is the text handler used when text.usetex is set. Strings with
// $...$ math are typeset by the LaTeX handler. Other strings, and math
// that the LaTeX parser cannot handle, are drawn as plain text in the
// same fonts with TeX escapes such as \% and \_ replaced by the
// characters they stand for.
type Tex struct {
	Latex text.Latex
	Plain text.Plain
}

var _ text.Handler = Tex{}

// NewTex returns a [Tex] handler using the given font cache.
func NewTex(fonts *font.Cache) Tex {
	return Tex{Latex: text.Latex{Fonts: fonts}, Plain: text.Plain{Fonts: fonts}}
}

func (h Tex) Cache() *font.Cache {
	return h.Plain.Fonts
}

func (h Tex) Extents(fnt font.Font) font.Extents {
	return h.Plain.Extents(fnt)
}

func (h Tex) Lines(txt string) []string {
	return h.Plain.Lines(txt)
}

func (h Tex) Box(txt string, fnt font.Font) (width, height, depth vg.Length) {
	if !h.typesets(txt, fnt) {
		return h.Plain.Box(Unescape(txt), fnt)
	}
	return h.Latex.Box(txt, fnt)
}

func (h Tex) Draw(c vg.Canvas, txt string, sty text.Style, pt vg.Point) {
	if !h.typesets(txt, sty.Font) {
		h.Plain.Draw(c, Unescape(txt), sty, pt)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("style: LaTeX text could not be drawn", "text", txt, "err", r)
		}
	}()
	h.Latex.Draw(c, txt, sty, pt)
}

// typesets returns whether the text has math that the LaTeX
// handler can lay out. Text that it cannot is logged, and is
// drawn as plain text instead.
func (h Tex) typesets(txt string, fnt font.Font) (ok bool) {
	if !HasMath(txt) {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("style: LaTeX text rendered as plain text", "text", txt, "err", r)
			ok = false
		}
	}()
	h.Latex.Box(txt, fnt)
	return true
}

// HasMath returns whether the text has a $...$ math span,
// not counting escaped \$ dollar signs.
func HasMath(txt string) bool {
	n := 0
	for i := 0; i < len(txt); i++ {
		switch txt[i] {
		case '\\':
			i++
		case '$':
			n++
		}
	}
	return n >= 2
}

var texEscapes = strings.NewReplacer(
	`\%`, "%", `\_`, "_", `\&`, "&", `\#`, "#", `\$`, "$",
	`\{`, "{", `\}`, "}", `\ `, " ", "~", " ", "$", "",
	`\times`, "×", `\cdot`, "·", `\pm`, "±",
)

// texSup matches a superscript: ^{...} or ^ and a single character.
var texSup = regexp.MustCompile(`\^(\{[^{}]*\}|[0-9A-Za-z+-])`)

// superscripts are the Unicode superscript forms of characters.
var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', 'n': 'ⁿ', 'i': 'ⁱ',
}

// Unescape returns the text with TeX escape sequences replaced by
// the characters they stand for, and math delimiters removed.
// Superscripts such as 10^{-3} use Unicode superscript characters
// where they all exist, so that the plain text reads 10⁻³.
func Unescape(txt string) string {
	txt = texSup.ReplaceAllStringFunc(txt, func(m string) string {
		exp := strings.TrimSuffix(strings.TrimPrefix(m[1:], "{"), "}")
		sup := make([]rune, 0, len(exp))
		for _, r := range exp {
			sr, ok := superscripts[r]
			if !ok {
				return "^" + exp
			}
			sup = append(sup, sr)
		}
		return string(sup)
	})
	return texEscapes.Replace(txt)
}
