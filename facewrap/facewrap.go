// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package facewrap adapts a ttfraster.Font, fixed at one point size, to
// the golang.org/x/image/font.Face interface, so the rasterizer composes
// with font.Drawer and the rest of that ecosystem for plain left-to-right
// string drawing. It does not perform shaping: GSUB/GPOS and run
// segmentation remain out of scope, same as the core package.
package facewrap

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/nwidger/ttfraster"
)

// Face implements font.Face for one ttfraster.Font at one fixed point
// size. Construct one per (font, size) pair; it carries no state of its
// own beyond that pair, so it is as safe for concurrent use as the
// wrapped Font's GetChar.
type Face struct {
	font      *ttfraster.Font
	pointSize float64
	scale     float64
}

var _ font.Face = (*Face)(nil)

// New wraps f, rendering every glyph at pointSize.
func New(f *ttfraster.Font, pointSize float64) *Face {
	return &Face{
		font:      f,
		pointSize: pointSize,
		scale:     pointSize * f.DPI() / 72 / float64(f.UnitsPerEm()),
	}
}

// Close is a no-op: the wrapped Font owns no resources Close would
// release.
func (f *Face) Close() error { return nil }

// Glyph returns the coverage mask for r, positioned so dot lands on the
// glyph's origin.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	m, bitmap := f.font.GetChar(r, f.pointSize)
	advance = fixed.I(m.AdvanceWidth)
	if m.Width == 0 || m.Height == 0 {
		return image.Rectangle{}, nil, image.Point{}, advance, true
	}
	alpha := &image.Alpha{
		Pix:    bitmap,
		Stride: m.Width,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
	x0 := dot.X.Round() + m.LeftSideBearing
	y0 := dot.Y.Round() + m.BaseLine
	dr = image.Rect(x0, y0, x0+m.Width, y0+m.Height)
	return dr, alpha, image.Point{}, advance, true
}

// GlyphBounds returns r's bounding box relative to the dot, in 26.6 fixed
// point.
func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	m, _ := f.font.GetChar(r, f.pointSize)
	bounds = fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: fixed.I(m.LeftSideBearing), Y: fixed.I(m.BaseLine)},
		Max: fixed.Point26_6{X: fixed.I(m.LeftSideBearing + m.Width), Y: fixed.I(m.BaseLine + m.Height)},
	}
	return bounds, fixed.I(m.AdvanceWidth), true
}

// GlyphAdvance returns how far the pen should move after drawing r.
func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	m, _ := f.font.GetChar(r, f.pointSize)
	return fixed.I(m.AdvanceWidth), true
}

// Kern returns the additional spacing to apply between r0 and r1, scaled
// from the underlying kern table's FUnits to this Face's point size.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	v, ok := f.font.GetKerning(r0, r1)
	if !ok {
		return 0
	}
	return fixed.Int26_6(math.Round(float64(v) * f.scale * 64))
}

// Metrics returns whole-font vertical metrics derived from the font's
// bounding box, scaled to this Face's point size. The wrapped font
// carries no explicit ascent/descent/line-gap fields (those live in the
// 'OS/2'/'hhea' tables the core spec does not consume), so this is a
// bounding-box approximation rather than the font's hinted metrics.
func (f *Face) Metrics() font.Metrics {
	b := f.font.Bounds()
	return font.Metrics{
		Height:  fixed.I(int(math.Round(float64(b.YMax-b.YMin) * f.scale))),
		Ascent:  fixed.I(int(math.Round(float64(b.YMax) * f.scale))),
		Descent: fixed.I(int(math.Round(float64(-b.YMin) * f.scale))),
	}
}
