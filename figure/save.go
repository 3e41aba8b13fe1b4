// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/systyle/fonts"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// DefaultExts are the file formats written by [Figure.Save]
// when none are given.
var DefaultExts = []string{"svg", "png"}

// rasterEncoders are the encoders for raster image formats.
var rasterEncoders = map[string]imgio.Encoder{
	"png":  imgio.PNGEncoder(),
	"jpg":  imgio.JPEGEncoder(95),
	"jpeg": imgio.JPEGEncoder(95),
	"bmp":  imgio.BMPEncoder(),
}

// vectorFormats are the vector image formats.
var vectorFormats = []string{"svg", "pdf", "eps", "tex"}

// TightPad is the padding around the content of images cropped
// to a tight bounding box, in inches.
const TightPad = 0.1

// Save writes the figure to dir/name.ext for each of the given file
// extensions, or [DefaultExts] if none are given, and returns the paths
// written. The directory is created if needed. Nothing is written if name
// is empty. Raster images use the style savefig.dpi, and are cropped to
// their content when savefig.bbox is tight.
func (f *Figure) Save(dir, name string, exts ...string) ([]string, error) {
	if name == "" {
		return nil, nil
	}
	if len(exts) == 0 {
		exts = DefaultExts
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	var paths []string
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(ext, "."))
		path := filepath.Join(dir, name+"."+ext)
		if err := f.saveFile(path, ext); err != nil {
			return paths, err
		}
		slog.Debug("figure: saved", "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}

func (f *Figure) saveFile(path, format string) error {
	if enc, ok := rasterEncoders[format]; ok {
		return imgio.Save(path, f.savedImage(), enc)
	}
	if !slices.Contains(vectorFormats, format) {
		return fmt.Errorf("%w: unsupported image format %q", ErrInvalid, format)
	}
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	err = f.Encode(fp, format)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

// Encode writes the figure to w in the given format:
// png, jpg, jpeg, bmp, svg, pdf, eps or tex.
func (f *Figure) Encode(w io.Writer, format string) error {
	format = strings.ToLower(format)
	if enc, ok := rasterEncoders[format]; ok {
		return enc(w, f.savedImage())
	}
	width, height := f.Size()
	var c vg.CanvasWriterTo
	switch format {
	case "svg":
		c = vgsvg.NewWith(vgsvg.UseWH(width, height), vgsvg.EmbedFonts(true))
	case "pdf":
		pc := vgpdf.New(width, height)
		pc.EmbedFonts(true)
		c = pdfCanvas{pc}
	default:
		var err error
		c, err = draw.NewFormattedCanvas(width, height, format)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return writeCanvas(w, c, f.Draw)
}

// writeCanvas draws onto the canvas and writes it to w. Panics from
// the vector backends, such as fonts that cannot be embedded,
// are returned as errors.
func writeCanvas(w io.Writer, c vg.CanvasWriterTo, drawFn func(draw.Canvas)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: cannot render figure: %v", ErrInvalid, r)
		}
	}()
	drawFn(draw.New(c))
	_, err = c.WriteTo(w)
	return err
}

// pdfCanvas draws text in TrueType fonts, which are the only
// fonts the PDF backend can embed.
type pdfCanvas struct {
	*vgpdf.Canvas
}

func (c pdfCanvas) FillString(face font.Face, pt vg.Point, str string) {
	c.Canvas.FillString(fonts.TrueType(face), pt, str)
}

// DPI returns the resolution of raster images, from the style.
func (f *Figure) DPI() int {
	if f.Style.DPI <= 0 {
		return vgimg.DefaultDPI
	}
	return int(math.Round(f.Style.DPI))
}

// Image renders the figure to an image at the style resolution.
func (f *Figure) Image() image.Image {
	width, height := f.Size()
	c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(f.DPI()), vgimg.UseBackgroundColor(color.White))
	f.Draw(draw.New(c))
	return c.Image()
}

// savedImage returns the rendered image, cropped when
// the style bounding box is tight.
func (f *Figure) savedImage() image.Image {
	img := f.Image()
	if f.Style.BBox != "tight" {
		return img
	}
	return Tight(img, int(math.Round(TightPad*float64(f.DPI()))))
}

// Tight returns the image cropped to the bounding box of its non-white
// pixels, plus pad pixels on each side within the image bounds.
// An image with no content is returned unchanged.
func Tight(img image.Image, pad int) image.Image {
	b := img.Bounds()
	box := image.Rectangle{Min: b.Max, Max: b.Min}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if isWhite(img.At(x, y)) {
				continue
			}
			box.Min.X = min(box.Min.X, x)
			box.Min.Y = min(box.Min.Y, y)
			box.Max.X = max(box.Max.X, x+1)
			box.Max.Y = max(box.Max.Y, y+1)
		}
	}
	if box.Empty() {
		return img
	}
	box = image.Rect(box.Min.X-pad, box.Min.Y-pad, box.Max.X+pad, box.Max.Y+pad).Intersect(b)
	return transform.Crop(img, box)
}

// isWhite returns whether the color is opaque white, or fully transparent.
func isWhite(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return a == 0 || (r == 0xffff && g == 0xffff && b == 0xffff && a == 0xffff)
}
