// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import "fmt"

// maxpTable is the subset of 'maxp' this package needs: the glyph count
// that every other table's per-glyph arrays are sized against.
type maxpTable struct {
	numGlyphs int
}

func parseMaxp(maxp []byte) (maxpTable, error) {
	if len(maxp) != 32 && len(maxp) != 6 {
		return maxpTable{}, FormatError(fmt.Sprintf("bad maxp length: %d", len(maxp)))
	}
	return maxpTable{numGlyphs: int(u16At(maxp, 4))}, nil
}
