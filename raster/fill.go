// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package raster

import "math"

// specklingEpsilon is the noise floor below which an accumulated winding
// value is clamped to zero. Two coincident edge crossings that should
// cancel exactly sometimes leave a few ULPs of float error; left
// unclamped, that shows up as isolated off-color pixels along straight
// stems.
const specklingEpsilon = 0.05

// fill integrates winding row by row into bitmap, an 8-bit coverage image
// of width*height pixels. The winding buffer holds signed partial coverage
// deposited per edge crossing (see accumulateEdge); a running sum reset at
// the start of each row turns those crossings into per-pixel coverage.
func fill(bitmap []byte, winding []float32, width, height int, rule FillRule) {
	for y := 0; y < height; y++ {
		row := winding[y*width : (y+1)*width]
		out := bitmap[y*width : (y+1)*width]
		var sum float32
		for x, w := range row {
			sum += w
			v := float64(sum)
			if v < 0 {
				v = -v
			}
			if rule == EvenOdd {
				m := math.Mod(v, 2)
				if m > 1 {
					m = 2 - m
				}
				v = m
			}
			if v < specklingEpsilon {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			out[x] = byte(math.Round(v * 255))
		}
	}
}
