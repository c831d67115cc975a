// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import "fmt"

// A Bounds holds the co-ordinate range of one or more glyphs, in FUnits. The
// endpoints are inclusive.
type Bounds struct {
	XMin, YMin, XMax, YMax int16
}

// locaFormat selects whether the loca table uses 2-byte or 4-byte offsets.
type locaFormat int

const (
	locaFormatShort locaFormat = iota
	locaFormatLong
)

// headTable is the subset of the 'head' table that the rest of the package
// needs: the em square size, the glyph-space bounding box and which loca
// encoding is in effect.
type headTable struct {
	unitsPerEm int
	bounds     Bounds
	locaFormat locaFormat
}

func parseHead(head []byte) (headTable, error) {
	if len(head) != 54 {
		return headTable{}, FormatError(fmt.Sprintf("bad head length: %d", len(head)))
	}
	var h headTable
	h.unitsPerEm = int(u16At(head, 18))
	h.bounds = Bounds{
		XMin: i16At(head, 36),
		YMin: i16At(head, 38),
		XMax: i16At(head, 40),
		YMax: i16At(head, 42),
	}
	switch v := u16At(head, 50); v {
	case 0:
		h.locaFormat = locaFormatShort
	case 1:
		h.locaFormat = locaFormatLong
	default:
		return headTable{}, FormatError(fmt.Sprintf("bad indexToLocFormat: %d", v))
	}
	return h, nil
}
