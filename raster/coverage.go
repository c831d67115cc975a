// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package raster

import "math"

// minEdgeDy discards line edges shorter than this in Y: near-horizontal or
// degenerate edges contribute no winding and would otherwise divide by a
// near-zero slope below.
const minEdgeDy = 1e-6

// accumulateContour flattens c and deposits its edges' signed subpixel
// coverage into winding, a width*height buffer addressed row-major. This
// is Property 3 (winding conservation) made concrete: every up-going edge
// in the flattened polyline is matched by a down-going edge elsewhere in
// the same closed contour, so the buffer's total integral is zero.
func accumulateContour(winding []float32, width, height int, c Contour) {
	pts := flatten(c)
	for i := 0; i+1 < len(pts); i++ {
		accumulateEdge(winding, width, height,
			f26ToFloat(pts[i].X), f26ToFloat(pts[i].Y),
			f26ToFloat(pts[i+1].X), f26ToFloat(pts[i+1].Y))
	}
}

// accumulateEdge deposits the coverage of one line edge from (x0,y0) to
// (x1,y1) into winding. dir is +1 if the edge's original vertex order ran
// top to bottom (increasing Y), -1 otherwise; this sign is the edge's
// contribution to the non-zero winding number.
func accumulateEdge(winding []float32, width, height int, x0, y0, x1, y1 float64) {
	dir := float32(1)
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		dir = -1
	}
	if y1-y0 < minEdgeDy {
		return
	}

	yStart := int(math.Max(0, math.Floor(y0)))
	yEnd := int(math.Min(float64(height), math.Ceil(y1)))
	if yStart >= yEnd {
		return
	}

	dxdy := (x1 - x0) / (y1 - y0)
	for y := yStart; y < yEnd; y++ {
		yEnter := math.Max(y0, float64(y))
		yExit := math.Min(y1, float64(y+1))
		cov := yExit - yEnter
		if cov <= 0 {
			continue
		}
		yMid := (yEnter + yExit) / 2
		x := x0 + (yMid-y0)*dxdy
		if x < 0 || x >= float64(width) {
			continue
		}
		idx := y*width + int(x)
		winding[idx] += dir * float32(cov)
	}
}
