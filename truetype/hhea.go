// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import "fmt"

// hheaTable is the subset of 'hhea' this package needs: how many of the
// 'hmtx' entries are full (advance, lsb) pairs before it degenerates into a
// bare left-side-bearing list.
type hheaTable struct {
	numberOfHMetrics int
}

func parseHhea(hhea []byte, numGlyphs, hmtxLen int) (hheaTable, error) {
	if len(hhea) != 36 {
		return hheaTable{}, FormatError(fmt.Sprintf("bad hhea length: %d", len(hhea)))
	}
	nHMetric := int(u16At(hhea, 34))
	if 4*nHMetric+2*(numGlyphs-nHMetric) != hmtxLen {
		return hheaTable{}, FormatError(fmt.Sprintf("bad hmtx length: %d", hmtxLen))
	}
	return hheaTable{numberOfHMetrics: nHMetric}, nil
}
