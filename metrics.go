// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package ttfraster

// Metrics describes the placement of one rendered glyph bitmap, all
// fields already scaled from FUnits to pixels at the render's point size.
type Metrics struct {
	// Width and Height are the bitmap's dimensions in pixels.
	Width, Height int
	// AdvanceWidth is how far the pen moves after drawing this glyph.
	AdvanceWidth int
	// LeftSideBearing is the horizontal offset from the pen position to
	// the glyph's left edge; it may be negative.
	LeftSideBearing int
	// BaseLine is floor(yMin*scale), where yMin is the bottom of the
	// glyph's FUnit bounding box: the height, in pixels, of the outline's
	// lowest point above the font baseline (negative for glyphs that
	// descend below it). The bitmap's top row corresponds to the top of
	// that bounding box.
	BaseLine int
}
