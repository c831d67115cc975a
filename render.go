// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package ttfraster

import (
	"math"

	"github.com/nwidger/ttfraster/raster"
	"github.com/nwidger/ttfraster/truetype"
)

// A Font renders characters of a parsed TrueType font to coverage
// bitmaps. Outside of the cache and the two scratch buffers the
// Rasterizer owns, a Font is read-only after Load: per § Concurrency,
// rendering the same Font concurrently from multiple goroutines requires
// external synchronization, but distinct Fonts (or clones, see Clone) may
// be rendered from independent goroutines freely.
type Font struct {
	tt   *truetype.Font
	opts RenderOptions

	cache *cache
	rast  *raster.Rasterizer
}

// Load parses font data and returns a ready-to-render Font. Every
// reachable glyph outline is decoded during this call (the pre-warm
// pass): rendering afterward never decodes an outline again.
func Load(data []byte, opts RenderOptions) (*Font, error) {
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Font{
		tt:    tt,
		opts:  opts,
		cache: newCache(),
		rast:  raster.NewRasterizer(),
	}, nil
}

// Clone returns a new Font sharing the same immutable parsed data (glyph
// outlines, cmap, kerning) but with its own cache and scratch buffers, so
// it can be rendered concurrently with the original from another
// goroutine.
func (f *Font) Clone() *Font {
	return &Font{
		tt:    f.tt,
		opts:  f.opts,
		cache: newCache(),
		rast:  raster.NewRasterizer(),
	}
}

// NumGlyphs, UnitsPerEm and Bounds expose the underlying truetype.Font's
// metadata without requiring callers to import package truetype directly
// for read-only inspection.
func (f *Font) NumGlyphs() int          { return f.tt.NumGlyphs() }
func (f *Font) UnitsPerEm() int         { return f.tt.UnitsPerEm() }
func (f *Font) Bounds() truetype.Bounds { return f.tt.Bounds() }

// DPI returns the device resolution this Font scales point sizes against,
// per RenderOptions.DPI (defaultDPI when left unconfigured).
func (f *Font) DPI() float64 { return f.opts.dpi() }

// GetChar renders codepoint ch at the given point size, honoring the
// Font's configured cache policy. It returns placement Metrics and an
// owned (caller may mutate freely) row-major 8-bit coverage bitmap,
// row-stride equal to metrics.Width.
func (f *Font) GetChar(ch rune, pointSize float64) (Metrics, []byte) {
	return f.getChar(ch, pointSize, f.opts.Cache)
}

// GetCharUncached renders codepoint ch exactly like GetChar but bypasses
// the cache on both read and write, regardless of the Font's configured
// policy. This is the "cached=false" instantiation of the spec's
// get_char<const CACHED: bool>: Go has no const-generic boolean
// parameter, so the two instantiations are spelled as two methods.
func (f *Font) GetCharUncached(ch rune, pointSize float64) (Metrics, []byte) {
	return f.getChar(ch, pointSize, false)
}

func (f *Font) getChar(ch rune, pointSize float64, cached bool) (Metrics, []byte) {
	return f.getGlyph(f.tt.Index(ch), pointSize, cached)
}

// GetGlyph is GetChar addressed by glyph id directly, skipping the cmap
// lookup. Useful for callers that already resolved a run of glyph ids
// (e.g. via a shaping library outside this package's scope).
func (f *Font) GetGlyph(gid truetype.Index, pointSize float64) (Metrics, []byte) {
	return f.getGlyph(gid, pointSize, f.opts.Cache)
}

func (f *Font) getGlyph(gid truetype.Index, pointSize float64, cached bool) (Metrics, []byte) {
	key := cacheKey{gid: gid, size: quantizeSize(pointSize)}
	if cached {
		if e, ok := f.cache.get(key); ok {
			bmp := make([]byte, len(e.bitmap))
			copy(bmp, e.bitmap)
			return e.metrics, bmp
		}
	}

	scale := pointSize * f.opts.dpi() / 72 / float64(f.tt.UnitsPerEm())
	outline := f.tt.Outline(gid)
	hm := f.tt.HMetric(gid)

	xMin, yMin := float64(outline.Bounds.XMin), float64(outline.Bounds.YMin)
	yMax := float64(outline.Bounds.YMax)

	width := int(math.Ceil(float64(outline.Bounds.XMax-outline.Bounds.XMin)*scale)) + 2
	height := int(math.Ceil(float64(outline.Bounds.YMax-outline.Bounds.YMin)*scale)) + 2
	baseline := int(math.Floor(yMin * scale))

	contours := scaleContours(outline.Contours, xMin, yMax, scale)
	bitmap := f.rast.Rasterize(contours, width, height, f.opts.FillRule)

	metrics := Metrics{
		Width:           width,
		Height:          height,
		AdvanceWidth:    int(math.Floor(float64(hm.AdvanceWidth) * scale)),
		LeftSideBearing: int(math.Floor(float64(hm.LeftSideBearing) * scale)),
		BaseLine:        baseline,
	}

	out := make([]byte, len(bitmap))
	copy(out, bitmap)

	if cached {
		stored := make([]byte, len(bitmap))
		copy(stored, bitmap)
		f.cache.put(key, cacheEntry{metrics: metrics, bitmap: stored})
	}

	return metrics, out
}

// scaleContours maps a glyph's FUnit contours into the Rasterizer's pixel
// space: (x, y) becomes ((x-xMin)*scale, (yMax-y)*scale), so the result has
// Y increasing downward with the origin at the bitmap's top-left, matching
// the tessellator's expected input.
func scaleContours(contours []truetype.Contour, xMin, yMax, scale float64) []raster.Contour {
	if len(contours) == 0 {
		return nil
	}
	out := make([]raster.Contour, len(contours))
	for ci, c := range contours {
		rc := make(raster.Contour, len(c.Points))
		for pi, p := range c.Points {
			px := (float64(p.X) - xMin) * scale
			py := (yMax - float64(p.Y)) * scale
			rc[pi] = raster.Point{
				X:       toFixed26_6(px),
				Y:       toFixed26_6(py),
				OnCurve: p.OnCurve,
			}
		}
		out[ci] = rc
	}
	return out
}

// GetKerning returns the horizontal kerning adjustment between left and
// right, in FUnits (the caller scales by the same factor GetChar used),
// and whether the font's 'kern' table defines one for this codepoint
// pair.
func (f *Font) GetKerning(left, right rune) (int16, bool) {
	return f.tt.KerningByRune(left, right)
}

// Flush drops every cached bitmap, per Cache.flush in the design.
func (f *Font) Flush() {
	f.cache.flush()
}
