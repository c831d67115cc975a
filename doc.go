// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package ttfraster renders TrueType glyphs to grayscale coverage bitmaps.
// It ties together package truetype (font parsing and glyph decoding) and
// package raster (Bézier flattening and scanline coverage accumulation)
// behind the top-level entry point described in the design: given a
// character and a point size, produce placement Metrics and an 8-bit
// coverage bitmap, optionally served from a per-(glyph, size) cache.
//
//	f, err := ttfraster.Load(fontBytes, ttfraster.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	metrics, bitmap := f.GetChar('A', 16)
package ttfraster

import (
	"math"

	"golang.org/x/image/math/fixed"
)

func toFixed26_6(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
