// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package ttfraster

import "github.com/nwidger/ttfraster/raster"

// A FillRule selects how the coverage accumulator's winding numbers
// become pixel opacity. NonZero is what TrueType itself uses; EvenOdd is
// the generalization the implementation notes call out as a direct,
// spec-compatible extension.
type FillRule = raster.FillRule

const (
	NonZero = raster.NonZero
	EvenOdd = raster.EvenOdd
)

// RenderOptions configures a Font's rendering behavior. It plays the role
// the teacher's truetype.Options and freetype.Context setters play,
// collapsed into one value passed at Load time: this package has no
// mutable Context to configure piecemeal, since every render call is
// already parameterized by point size.
type RenderOptions struct {
	// Cache enables the per-(glyph, size) bitmap cache described in the
	// design. When false, GetChar always re-rasterizes.
	Cache bool
	// FillRule selects non-zero (default) or even-odd winding.
	FillRule FillRule
	// DPI is the assumed device resolution used to turn a point size into
	// a pixel scale (pixels = points * DPI / 72). Zero means defaultDPI.
	DPI float64
}

// defaultDPI is the device resolution spec §4.6 fixes: 96.
const defaultDPI = 96

// DefaultOptions returns the reference configuration: caching on,
// non-zero fill, 96 DPI.
func DefaultOptions() RenderOptions {
	return RenderOptions{
		Cache:    true,
		FillRule: NonZero,
		DPI:      defaultDPI,
	}
}

// dpi returns the effective DPI, substituting defaultDPI for an
// unconfigured (zero) value.
func (o RenderOptions) dpi() float64 {
	if o.DPI == 0 {
		return defaultDPI
	}
	return o.DPI
}
