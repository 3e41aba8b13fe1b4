// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// shortColors are the matplotlib single letter color codes.
var shortColors = map[string]color.RGBA{
	"k": {0, 0, 0, 255},
	"w": {255, 255, 255, 255},
	"r": {255, 0, 0, 255},
	"g": {0, 128, 0, 255},
	"b": {0, 0, 255, 255},
	"c": {0, 191, 191, 255},
	"m": {191, 0, 191, 255},
	"y": {191, 191, 0, 255},
}

// Color parses a matplotlib color specification: a single letter code
// (k, r, g, b, c, m, y, w), an SVG color name, #rgb, #rrggbb or #rrggbbaa
// hex, or a gray level between 0 and 1 given as a string, e.g., "0.4".
func Color(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := shortColors[s]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return hexColor(s)
	}
	if g, err := strconv.ParseFloat(s, 64); err == nil {
		if g < 0 || g > 1 {
			return nil, fmt.Errorf("style: gray level %v not in [0, 1]", g)
		}
		return Gray(g), nil
	}
	return nil, fmt.Errorf("style: invalid color %q", s)
}

// Gray returns the gray color with given level between 0 (black) and 1 (white).
func Gray(level float64) color.Color {
	v := uint8(level*255 + 0.5)
	return color.RGBA{v, v, v, 255}
}

// WithAlpha returns the color with the given opacity between 0 and 1,
// as a non-premultiplied color.
func WithAlpha(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(max(0, min(1, alpha))*float64(n.A) + 0.5)
	return n
}

func hexColor(s string) (color.Color, error) {
	h := s[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return nil, fmt.Errorf("style: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("style: invalid hex color %q", s)
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}
