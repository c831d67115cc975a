// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import "math"

// Flags for decoding a simple glyph's contours. These are documented at
// http://developer.apple.com/fonts/TTRefMan/RM06/Chap6glyf.html.
const (
	flagOnCurve = 1 << iota
	flagXShortVector
	flagYShortVector
	flagRepeat
	flagPositiveXShortVector
	flagPositiveYShortVector
)

// The same flag bits (0x10 and 0x20) are overloaded to mean "this
// co-ordinate repeats the previous one" when the corresponding ShortVector
// bit is clear.
const (
	flagThisXIsSame = flagPositiveXShortVector
	flagThisYIsSame = flagPositiveYShortVector
)

// Flags for decoding a composite glyph's components.
const (
	compArgsAreWords = 1 << iota
	compArgsAreXYValues
	compRoundXYToGrid
	compWeHaveAScale
	compReserved
	compMoreComponents
	compWeHaveAnXAndYScale
	compWeHaveATwoByTwo
	compWeHaveInstructions
	compUseMyMetrics
	compOverlapCompound
)

// maxCompositeDepth defends against a font whose composite glyphs reference
// each other in a cycle, or nest absurdly deep.
const maxCompositeDepth = 8

// decodeGlyph decodes glyph index i into an Outline, in FUnits. A
// zero-length glyph (an empty loca range) is valid and yields an Outline
// with no contours. A malformed record (a coordinate stream shorter than
// declared, or a composite referencing an out-of-range glyph id) yields an
// empty Outline rather than an error: rendering that glyph then simply
// produces a blank bitmap with otherwise valid metrics.
func decodeGlyph(f *Font, i Index) Outline {
	contours, bounds, ok := decodeContours(f, i, 0)
	if !ok {
		return Outline{}
	}
	insertMidpoints(contours)
	return Outline{Bounds: bounds, Contours: contours}
}

// decodeContours recursively decodes glyph i's contours, already flattened
// (composite references resolved and transformed) but not yet midpoint
// normalized. ok is false for a malformed record.
func decodeContours(f *Font, i Index, depth int) (contours []Contour, bounds Bounds, ok bool) {
	if depth >= maxCompositeDepth {
		return nil, Bounds{}, false
	}
	start, end, err := glyphRange(f.loca, f.head.locaFormat, f.maxp.numGlyphs, int(i))
	if err != nil {
		return nil, Bounds{}, false
	}
	if start == end {
		return nil, Bounds{}, true
	}
	if end > uint32(len(f.glyf)) {
		return nil, Bounds{}, false
	}
	glyf := f.glyf[start:end]
	if len(glyf) < 10 {
		return nil, Bounds{}, false
	}
	numContours := int(i16At(glyf, 0))
	bounds = Bounds{
		XMin: i16At(glyf, 2),
		YMin: i16At(glyf, 4),
		XMax: i16At(glyf, 6),
		YMax: i16At(glyf, 8),
	}
	if numContours >= 0 {
		contours, ok = decodeSimpleGlyph(glyf, numContours)
		return contours, bounds, ok
	}
	if numContours != -1 {
		return nil, bounds, false
	}
	contours, ok = decodeCompositeGlyph(f, glyf, depth)
	return contours, bounds, ok
}

// decodeSimpleGlyph decodes the end-point indices, flags and delta-encoded
// co-ordinate streams of a simple glyph into closed contours.
func decodeSimpleGlyph(glyf []byte, numContours int) (contours []Contour, ok bool) {
	d := data(glyf[10:])
	if len(d) < 2*numContours {
		return nil, false
	}
	endPts := make([]int, numContours)
	for i := range endPts {
		endPts[i] = int(d.u16())
	}
	numPoints := 0
	if numContours > 0 {
		numPoints = endPts[numContours-1] + 1
	}

	if len(d) < 2 {
		return nil, false
	}
	instrLen := int(d.u16())
	if len(d) < instrLen {
		return nil, false
	}
	d.skip(instrLen)

	flags := make([]byte, numPoints)
	for i := 0; i < numPoints; {
		if len(d) < 1 {
			return nil, false
		}
		c := d.u8()
		flags[i] = c
		i++
		if c&flagRepeat != 0 {
			if len(d) < 1 {
				return nil, false
			}
			count := int(d.u8())
			for ; count > 0 && i < numPoints; count-- {
				flags[i] = c
				i++
			}
		}
	}

	xs := make([]int16, numPoints)
	var x int16
	for i := 0; i < numPoints; i++ {
		f := flags[i]
		switch {
		case f&flagXShortVector != 0:
			if len(d) < 1 {
				return nil, false
			}
			dx := int16(d.u8())
			if f&flagPositiveXShortVector == 0 {
				x -= dx
			} else {
				x += dx
			}
		case f&flagThisXIsSame == 0:
			if len(d) < 2 {
				return nil, false
			}
			x += d.i16()
		}
		xs[i] = x
	}

	ys := make([]int16, numPoints)
	var y int16
	for i := 0; i < numPoints; i++ {
		f := flags[i]
		switch {
		case f&flagYShortVector != 0:
			if len(d) < 1 {
				return nil, false
			}
			dy := int16(d.u8())
			if f&flagPositiveYShortVector == 0 {
				y -= dy
			} else {
				y += dy
			}
		case f&flagThisYIsSame == 0:
			if len(d) < 2 {
				return nil, false
			}
			y += d.i16()
		}
		ys[i] = y
	}

	contours = make([]Contour, numContours)
	start := 0
	for ci, endPt := range endPts {
		pts := make([]Point, 0, endPt-start+2)
		for j := start; j <= endPt; j++ {
			pts = append(pts, Point{X: xs[j], Y: ys[j], OnCurve: flags[j]&flagOnCurve != 0})
		}
		if len(pts) != 0 {
			pts = append(pts, pts[0])
		}
		contours[ci] = Contour{Points: pts}
		start = endPt + 1
	}
	return contours, true
}

// decodeCompositeGlyph decodes and resolves every component of a composite
// glyph, recursing into each referenced child and applying that component's
// affine transform (2x2 matrix then translation) to the child's points
// before appending them to the parent's contour list.
func decodeCompositeGlyph(f *Font, glyf []byte, depth int) (contours []Contour, ok bool) {
	d := data(glyf[10:])
	for {
		if len(d) < 4 {
			return contours, false
		}
		flags := d.u16()
		component := Index(d.u16())

		var dx, dy int16
		if flags&compArgsAreWords != 0 {
			if len(d) < 4 {
				return contours, false
			}
			dx, dy = d.i16(), d.i16()
		} else {
			if len(d) < 2 {
				return contours, false
			}
			dx, dy = int16(d.i8()), int16(d.i8())
		}

		xScale, scale01, scale10, yScale := float32(1), float32(0), float32(0), float32(1)
		switch {
		case flags&compWeHaveATwoByTwo != 0:
			if len(d) < 8 {
				return contours, false
			}
			xScale = f2dot14(d.i16())
			scale01 = f2dot14(d.i16())
			scale10 = f2dot14(d.i16())
			yScale = f2dot14(d.i16())
		case flags&compWeHaveAnXAndYScale != 0:
			if len(d) < 4 {
				return contours, false
			}
			xScale = f2dot14(d.i16())
			yScale = f2dot14(d.i16())
		case flags&compWeHaveAScale != 0:
			if len(d) < 2 {
				return contours, false
			}
			s := f2dot14(d.i16())
			xScale, yScale = s, s
		}

		childContours, _, childOK := decodeContours(f, component, depth+1)
		if !childOK {
			return contours, false
		}
		transformContours(childContours, xScale, scale01, scale10, yScale, dx, dy)
		contours = append(contours, childContours...)

		if flags&compMoreComponents == 0 {
			break
		}
	}
	return contours, true
}

// f2dot14 converts a raw composite-transform entry (a signed 16-bit value
// with an implied binary point 14 bits in) to a float32 scale factor.
func f2dot14(raw int16) float32 {
	return float32(raw) / 16384
}

// transformContours applies the 2x2 matrix [[xScale, scale10], [scale01,
// yScale]] followed by the translation (dx, dy) to every point of every
// contour, in place. The spec treats composite arguments as an XY
// translation unconditionally (ARGS_ARE_XY_VALUES point-match indices are
// not implemented; see DESIGN.md).
func transformContours(contours []Contour, xScale, scale01, scale10, yScale float32, dx, dy int16) {
	for ci := range contours {
		pts := contours[ci].Points
		for pi := range pts {
			px, py := float32(pts[pi].X), float32(pts[pi].Y)
			nx := px*xScale + py*scale10
			ny := px*scale01 + py*yScale
			pts[pi].X = roundInt16(nx) + dx
			pts[pi].Y = roundInt16(ny) + dy
		}
	}
}

func roundInt16(x float32) int16 {
	return int16(math.Round(float64(x)))
}
