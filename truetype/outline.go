// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// A Point is a co-ordinate pair in FUnits, plus whether it lies "on" the
// contour or is an "off" quadratic control point.
type Point struct {
	X, Y    int16
	OnCurve bool
}

// A Contour is a closed loop of Points. By the time an Outline leaves this
// package, the first Point is repeated as the last Point (Property 1,
// closure) and no two consecutive Points are both off-curve (Property 2,
// normalized curve pattern): an implicit on-curve midpoint has been
// materialized between any such pair.
type Contour struct {
	Points []Point
}

// An Outline holds one glyph's decoded contours and its FUnit bounding box.
// A glyph with zero contours (e.g. the space character) has a valid,
// empty Outline.
type Outline struct {
	Bounds   Bounds
	Contours []Contour
}

// insertMidpoints scans every contour and, between any two adjacent
// off-curve points, inserts an on-curve point at their arithmetic midpoint.
// This normalizes every segment the tessellator will see to either "on on"
// (a line) or "on off on" (a quadratic), regardless of how the font author
// chose to chain consecutive control points.
func insertMidpoints(contours []Contour) {
	for ci := range contours {
		pts := contours[ci].Points
		if len(pts) <= 1 {
			continue
		}
		out := make([]Point, 0, len(pts)+len(pts)/2)
		n := len(pts)
		for i := 0; i < n; i++ {
			out = append(out, pts[i])
			next := pts[(i+1)%n]
			if !pts[i].OnCurve && !next.OnCurve {
				out = append(out, Point{
					X:       midInt16(pts[i].X, next.X),
					Y:       midInt16(pts[i].Y, next.Y),
					OnCurve: true,
				})
			}
		}
		contours[ci].Points = out
	}
}

func midInt16(a, b int16) int16 {
	return int16((int32(a) + int32(b)) / 2)
}
