// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package raster

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

// square returns a closed, axis-aligned square contour, all points
// on-curve, winding clockwise in this package's Y-down pixel space.
func square(x0, y0, x1, y1 int) Contour {
	p := func(x, y int) Point { return Point{X: fixed.I(x), Y: fixed.I(y), OnCurve: true} }
	return Contour{p(x0, y0), p(x1, y0), p(x1, y1), p(x0, y1), p(x0, y0)}
}

// reverseSquare is square with the opposite winding direction, so that
// pairing it with an outer square of the other direction cancels winding
// inside it (a hole).
func reverseSquare(x0, y0, x1, y1 int) Contour {
	p := func(x, y int) Point { return Point{X: fixed.I(x), Y: fixed.I(y), OnCurve: true} }
	return Contour{p(x0, y0), p(x0, y1), p(x1, y1), p(x1, y0), p(x0, y0)}
}

func TestRasterizeFilledSquare(t *testing.T) {
	r := NewRasterizer()
	bmp := r.Rasterize([]Contour{square(2, 2, 18, 18)}, 20, 20, NonZero)

	at := func(x, y int) byte { return bmp[y*20+x] }
	if v := at(10, 10); v != 255 {
		t.Errorf("inside the square: got %d, want 255", v)
	}
	if v := at(0, 0); v != 0 {
		t.Errorf("outside the square: got %d, want 0", v)
	}
}

// TestDonut exercises scenario 5: an outer contour and an inner contour of
// opposite winding should cancel to zero coverage inside the hole, while
// the ring between them stays filled.
func TestDonut(t *testing.T) {
	r := NewRasterizer()
	contours := []Contour{
		square(2, 2, 18, 18),
		reverseSquare(7, 7, 13, 13),
	}
	bmp := r.Rasterize(contours, 20, 20, NonZero)

	at := func(x, y int) byte { return bmp[y*20+x] }
	if v := at(10, 10); v != 0 {
		t.Errorf("inside the hole: got %d, want 0", v)
	}
	if v := at(4, 4); v != 255 {
		t.Errorf("in the ring: got %d, want 255", v)
	}
	if v := at(0, 0); v != 0 {
		t.Errorf("outside the donut: got %d, want 0", v)
	}
}

// TestFillRuleDivergence shows NonZero and EvenOdd disagreeing on a region
// covered twice by same-direction squares, as the spec's RenderOptions
// generalization (§5 SUPPLEMENTED FEATURES) intends.
func TestFillRuleDivergence(t *testing.T) {
	contours := []Contour{
		square(2, 2, 12, 12),
		square(6, 6, 16, 16),
	}

	nz := NewRasterizer().Rasterize(contours, 20, 20, NonZero)
	eo := NewRasterizer().Rasterize(contours, 20, 20, EvenOdd)

	idx := 9*20 + 9 // inside both squares' overlap
	if nz[idx] != 255 {
		t.Errorf("NonZero overlap: got %d, want 255", nz[idx])
	}
	if eo[idx] != 0 {
		t.Errorf("EvenOdd overlap: got %d, want 0", eo[idx])
	}

	idxSingle := 3*20 + 3 // inside only the first square
	if nz[idxSingle] != 255 || eo[idxSingle] != 255 {
		t.Errorf("single coverage: NonZero=%d EvenOdd=%d, want 255 both", nz[idxSingle], eo[idxSingle])
	}
}

// TestWindingConservation is Property 3: the signed integral of the
// winding buffer over a closed contour is zero, since every up-going edge
// is matched by a down-going edge in the same closed loop.
func TestWindingConservation(t *testing.T) {
	width, height := 20, 20
	winding := make([]float32, width*height)
	accumulateContour(winding, width, height, square(2, 2, 18, 18))

	var sum float32
	for _, w := range winding {
		sum += w
	}
	if sum < -0.01 || sum > 0.01 {
		t.Errorf("winding integral: got %v, want ~0", sum)
	}
}

func TestRasterizeEmptyContourList(t *testing.T) {
	r := NewRasterizer()
	bmp := r.Rasterize(nil, 4, 4, NonZero)
	for i, v := range bmp {
		if v != 0 {
			t.Errorf("pixel %d: got %d, want 0 for an empty outline", i, v)
		}
	}
}

// TestRasterizerScratchReuse checks the "grow monotonically, never
// shrink" scratch buffer discipline: rendering a small glyph after a big
// one must not panic or return a short slice.
func TestRasterizerScratchReuse(t *testing.T) {
	r := NewRasterizer()
	_ = r.Rasterize([]Contour{square(2, 2, 90, 90)}, 100, 100, NonZero)
	bmp := r.Rasterize([]Contour{square(1, 1, 3, 3)}, 4, 4, NonZero)
	if len(bmp) != 16 {
		t.Fatalf("got bitmap of length %d, want 16", len(bmp))
	}
}
