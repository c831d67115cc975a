// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package raster

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// flatten converts a scaled, closed Contour (on-curve points connected by
// lines, off-curve points each sandwiched between two on-curve points, per
// the Property 2 guarantee upstream) into a closed polyline: a sequence of
// plain pixel-space points with every quadratic flattened to line segments.
func flatten(c Contour) []fixed.Point26_6 {
	if len(c) == 0 {
		return nil
	}
	out := make([]fixed.Point26_6, 0, len(c)+len(c)/2)
	out = append(out, fixed.Point26_6{X: c[0].X, Y: c[0].Y})
	for i := 1; i < len(c); {
		if c[i].OnCurve {
			out = append(out, fixed.Point26_6{X: c[i].X, Y: c[i].Y})
			i++
			continue
		}
		// c[i] is an off-curve control point; Property 2 guarantees the
		// next point is on-curve and terminates this quadratic.
		p0 := out[len(out)-1]
		ctrl := fixed.Point26_6{X: c[i].X, Y: c[i].Y}
		p2 := fixed.Point26_6{X: c[i+1].X, Y: c[i+1].Y}
		flattenQuad(&out, p0, ctrl, p2)
		i += 2
	}
	return out
}

// flattenQuad appends a quadratic Bézier (p0 already the last point in
// out) to out as a run of line segments. The step count is proportional to
// the curve's curvature, per spec: steps = max(2, floor(0.25*curvature)),
// curvature = |ctrl.x - mid(p0,p2).x| + |ctrl.y - mid(p0,p2).y|. This
// avoids a square root in the inner loop — the 0.25 constant keeps visible
// error under a quarter pixel at typical text sizes. A recursive
// flatness-based subdivision would be equivalent; this is the simpler of
// the two to keep allocation-free.
func flattenQuad(out *[]fixed.Point26_6, p0, ctrl, p2 fixed.Point26_6) {
	p0x, p0y := f26ToFloat(p0.X), f26ToFloat(p0.Y)
	cx, cy := f26ToFloat(ctrl.X), f26ToFloat(ctrl.Y)
	p2x, p2y := f26ToFloat(p2.X), f26ToFloat(p2.Y)

	midx, midy := (p0x+p2x)/2, (p0y+p2y)/2
	curvature := math.Abs(cx-midx) + math.Abs(cy-midy)
	steps := int(0.25 * curvature)
	if steps < 2 {
		steps = 2
	}

	delta := 1.0 / float64(steps)
	for i := 1; i <= steps; i++ {
		t := delta * float64(i)
		mt := 1 - t
		x := mt*mt*p0x + 2*mt*t*cx + t*t*p2x
		y := mt*mt*p0y + 2*mt*t*cy + t*t*p2y
		*out = append(*out, floatToF26(x, y))
	}
}

func f26ToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

func floatToF26(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x * 64)),
		Y: fixed.Int26_6(math.Round(y * 64)),
	}
}
