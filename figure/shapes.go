// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Shapes are the marker shapes.
type Shapes int32

const (
	// Point is a small filled circle with an edge.
	Point Shapes = iota

	// Circle is a filled circle with an edge.
	Circle

	// Square is a filled square with an edge.
	Square

	// Triangle is a filled triangle with an edge.
	Triangle

	// Plus is a plus sign.
	Plus

	// Cross is a big X.
	Cross
)

// markerCodes are the matplotlib marker codes for the shapes.
var markerCodes = map[string]Shapes{
	".": Point,
	"o": Circle,
	"s": Square,
	"^": Triangle,
	"+": Plus,
	"x": Cross,
}

// ParseMarker returns the shape for a matplotlib marker code:
// . o s ^ + or x.
func ParseMarker(code string) (Shapes, error) {
	if sh, ok := markerCodes[code]; ok {
		return sh, nil
	}
	return Point, fmt.Errorf("%w: unknown marker %q", ErrInvalid, code)
}

// Glyph returns the glyph drawer for the shape, with edges drawn
// in the given color. Plus and Cross are drawn only in the edge color.
func (sh Shapes) Glyph(edge color.Color) draw.GlyphDrawer {
	switch sh {
	case Circle:
		return EdgedGlyph{Fill: draw.CircleGlyph{}, Edge: draw.RingGlyph{}, EdgeColor: edge}
	case Square:
		return EdgedGlyph{Fill: draw.BoxGlyph{}, Edge: draw.SquareGlyph{}, EdgeColor: edge}
	case Triangle:
		return EdgedGlyph{Fill: draw.PyramidGlyph{}, Edge: draw.TriangleGlyph{}, EdgeColor: edge}
	case Plus:
		return EdgedGlyph{Edge: draw.PlusGlyph{}, EdgeColor: edge}
	case Cross:
		return EdgedGlyph{Edge: draw.CrossGlyph{}, EdgeColor: edge}
	}
	return EdgedGlyph{Fill: draw.CircleGlyph{}, Edge: draw.RingGlyph{}, EdgeColor: edge, Scale: 0.5}
}

// EdgedGlyph draws a filled glyph in the glyph color,
// with an outline in the edge color.
type EdgedGlyph struct {

	// Fill draws the filled shape. It is optional.
	Fill draw.GlyphDrawer

	// Edge draws the outline. It is optional.
	Edge draw.GlyphDrawer

	// EdgeColor is the outline color. If nil,
	// the glyph color is used.
	EdgeColor color.Color

	// Scale multiplies the glyph radius, if non-zero.
	Scale float64
}

func (g EdgedGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	if g.Scale != 0 {
		sty.Radius *= vg.Length(g.Scale)
	}
	if g.Fill != nil {
		c.SetColor(sty.Color)
		g.Fill.DrawGlyph(c, sty, pt)
	}
	if g.Edge != nil {
		if g.EdgeColor != nil {
			sty.Color = g.EdgeColor
		}
		c.SetColor(sty.Color)
		g.Edge.DrawGlyph(c, sty, pt)
	}
}
