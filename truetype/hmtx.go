// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// An HMetric holds the horizontal metrics of a single glyph, in FUnits.
type HMetric struct {
	AdvanceWidth    uint16
	LeftSideBearing int16
}

// hMetric returns the horizontal metrics for glyph i. Glyphs at or beyond
// numberOfHMetrics share the last entry's advance width and carry only a
// left side bearing of their own, per the 'hmtx' table's compaction scheme.
func hMetric(hmtx []byte, nHMetric, numGlyphs, i int) HMetric {
	if i < 0 || i >= numGlyphs {
		return HMetric{}
	}
	if i < nHMetric {
		return HMetric{
			AdvanceWidth:    u16At(hmtx, 4*i),
			LeftSideBearing: i16At(hmtx, 4*i+2),
		}
	}
	if nHMetric == 0 {
		return HMetric{}
	}
	advance := u16At(hmtx, 4*(nHMetric-1))
	lsbOffset := 4*nHMetric + 2*(i-nHMetric)
	if lsbOffset+2 > len(hmtx) {
		return HMetric{AdvanceWidth: advance}
	}
	return HMetric{
		AdvanceWidth:    advance,
		LeftSideBearing: i16At(hmtx, lsbOffset),
	}
}
