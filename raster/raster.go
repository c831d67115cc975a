// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package raster tessellates scaled glyph contours into line segments and
// accumulates their signed subpixel coverage into an 8-bit opacity bitmap.
// It knows nothing about TrueType; its only input is, per contour, a
// sequence of points already scaled to pixel space and tagged on/off
// curve.
package raster

import "golang.org/x/image/math/fixed"

// A Point is a pixel-space coordinate, in fixed.Int26_6 units, tagged
// whether it lies on the contour (OnCurve) or is a quadratic control point.
type Point struct {
	X, Y    fixed.Int26_6
	OnCurve bool
}

// A Contour is a closed loop of Points: the first Point is repeated as the
// last, and no two consecutive Points are both off-curve. This is exactly
// the shape truetype.Outline guarantees after scaling to pixel space; see
// truetype.Point and the midpoint-insertion pass in package truetype.
type Contour []Point

// A FillRule selects how accumulated winding numbers become pixel opacity.
type FillRule int

const (
	// NonZero treats any non-zero winding number as "inside". This is the
	// rule TrueType (and the reference rasterizer) uses.
	NonZero FillRule = iota
	// EvenOdd treats an odd winding number as "inside", ignoring sign.
	EvenOdd
)

// A Rasterizer owns the two scratch buffers (winding accumulator and
// output bitmap) reused across renders of a single Font, per the design's
// "grow monotonically, never shrink" scratch-buffer discipline. It is not
// safe for concurrent use: callers rendering the same Font from multiple
// goroutines must serialize access or use one Rasterizer per goroutine.
type Rasterizer struct {
	width, height int
	winding       []float32
	bitmap        []byte
}

// NewRasterizer returns a Rasterizer with empty scratch buffers; they grow
// lazily on first use.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// resize grows the scratch buffers to at least width*height, without
// shrinking their capacity, and zeroes the winding portion about to be
// reused. The bitmap portion is not zeroed: fill overwrites every byte.
func (r *Rasterizer) resize(width, height int) {
	n := width * height
	if cap(r.winding) < n {
		r.winding = make([]float32, n)
	} else {
		r.winding = r.winding[:n]
		for i := range r.winding {
			r.winding[i] = 0
		}
	}
	if cap(r.bitmap) < n {
		r.bitmap = make([]byte, n)
	} else {
		r.bitmap = r.bitmap[:n]
	}
	r.width, r.height = width, height
}

// Rasterize tessellates every contour (already scaled to a width x height
// pixel grid, origin top-left, Y increasing downward) and returns an 8-bit
// coverage bitmap, row-major with stride == width. The returned slice
// aliases the Rasterizer's internal scratch buffer: it is only valid until
// the next call to Rasterize on the same Rasterizer. Callers that need to
// retain it (e.g. to populate a cache) must copy it.
func (r *Rasterizer) Rasterize(contours []Contour, width, height int, rule FillRule) []byte {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	r.resize(width, height)
	for _, c := range contours {
		accumulateContour(r.winding, width, height, c)
	}
	fill(r.bitmap, r.winding, width, height, rule)
	return r.bitmap
}
