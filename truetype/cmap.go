// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import "sort"

// An Index is a Font's index of a rune (a glyph id).
type Index uint16

// cmapSubtable maps a codepoint to a glyph id. A miss returns 0, the
// .notdef fallback.
type cmapSubtable interface {
	lookup(codepoint rune) Index
}

// encodingRecord is one entry of the cmap header: which (platform,
// encoding) this subtable serves and where it lives.
type encodingRecord struct {
	platformID, encodingID uint16
	offset                 uint32
}

// cmapPriority ranks an encoding record the way spec selection does:
// (platform 0, any) first, then (3, 10), then (3, 1), then anything else.
// Lower is better.
func cmapPriority(rec encodingRecord) int {
	switch {
	case rec.platformID == 0:
		return 0
	case rec.platformID == 3 && rec.encodingID == 10:
		return 1
	case rec.platformID == 3 && rec.encodingID == 1:
		return 2
	default:
		return 3
	}
}

// parseCmap selects exactly one subtable for the font, per the priority
// order above, and decodes it. If no subtable of a supported format (0, 4,
// 6, 12) exists among the font's encoding records, it returns
// UnsupportedError; callers should fall back to treating every codepoint as
// glyph 0 rather than failing the whole load.
func parseCmap(cmap []byte) (cmapSubtable, error) {
	if len(cmap) < 4 {
		return nil, FormatError("cmap table too short")
	}
	numTables := int(u16At(cmap, 2))
	if len(cmap) < 4+8*numTables {
		return nil, FormatError("cmap table too short for its encoding records")
	}

	records := make([]encodingRecord, numTables)
	for i := 0; i < numTables; i++ {
		x := 4 + 8*i
		records[i] = encodingRecord{
			platformID: u16At(cmap, x),
			encodingID: u16At(cmap, x+2),
			offset:     u32At(cmap, x+4),
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return cmapPriority(records[i]) < cmapPriority(records[j])
	})

	var lastErr error = UnsupportedError("no supported cmap subtable")
	for _, rec := range records {
		offset := int(rec.offset)
		if offset < 0 || offset+2 > len(cmap) {
			continue
		}
		sub, err := decodeCmapSubtable(cmap[offset:])
		if err == nil {
			return sub, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func decodeCmapSubtable(b []byte) (cmapSubtable, error) {
	if len(b) < 2 {
		return nil, FormatError("cmap subtable too short")
	}
	switch u16At(b, 0) {
	case 0:
		return parseCmapFormat0(b)
	case 4:
		return parseCmapFormat4(b)
	case 6:
		return parseCmapFormat6(b)
	case 12:
		return parseCmapFormat12(b)
	default:
		return nil, UnsupportedError("cmap subtable format")
	}
}

// cmapFormat0 is a flat 256-entry byte table, covering only codepoints < 256.
type cmapFormat0 struct {
	glyphIDArray [256]byte
}

func parseCmapFormat0(b []byte) (cmapSubtable, error) {
	if len(b) < 6+256 {
		return nil, FormatError("cmap format 0 too short")
	}
	var f cmapFormat0
	copy(f.glyphIDArray[:], b[6:6+256])
	return f, nil
}

func (f cmapFormat0) lookup(codepoint rune) Index {
	if codepoint < 0 || codepoint >= 256 {
		return 0
	}
	return Index(f.glyphIDArray[codepoint])
}

// cmapFormat4 is the segmented BMP mapping.
type cmapFormat4 struct {
	endCount, startCount, idRangeOffset []uint16
	idDelta                             []int16
	glyphIDArray                        []uint16
}

func parseCmapFormat4(b []byte) (cmapSubtable, error) {
	if len(b) < 14 {
		return nil, FormatError("cmap format 4 too short")
	}
	length := int(u16At(b, 2))
	segCountX2 := int(u16At(b, 6))
	if segCountX2%2 != 0 {
		return nil, FormatError("bad cmap format 4 segCountX2")
	}
	segCount := segCountX2 / 2

	base := 14
	need := base + segCountX2 + 2 // endCount + reservedPad
	need += 2 * segCountX2        // startCount + idDelta
	need += segCountX2            // idRangeOffset
	if len(b) < need || length > len(b) {
		return nil, FormatError("cmap format 4 too short for its segments")
	}

	f := cmapFormat4{
		endCount:      make([]uint16, segCount),
		startCount:    make([]uint16, segCount),
		idDelta:       make([]int16, segCount),
		idRangeOffset: make([]uint16, segCount),
	}
	p := base
	for i := 0; i < segCount; i++ {
		f.endCount[i] = u16At(b, p)
		p += 2
	}
	p += 2 // reservedPad
	for i := 0; i < segCount; i++ {
		f.startCount[i] = u16At(b, p)
		p += 2
	}
	for i := 0; i < segCount; i++ {
		f.idDelta[i] = i16At(b, p)
		p += 2
	}
	for i := 0; i < segCount; i++ {
		f.idRangeOffset[i] = u16At(b, p)
		p += 2
	}
	if length > p {
		glyphIDCount := (length - p) / 2
		f.glyphIDArray = make([]uint16, glyphIDCount)
		for i := 0; i < glyphIDCount && p+2 <= len(b); i++ {
			f.glyphIDArray[i] = u16At(b, p)
			p += 2
		}
	}
	return f, nil
}

func (f cmapFormat4) lookup(codepoint rune) Index {
	if codepoint < 0 || codepoint > 0xFFFF {
		return 0
	}
	c := uint16(codepoint)
	// First segment whose end >= c.
	i := sort.Search(len(f.endCount), func(i int) bool { return f.endCount[i] >= c })
	if i >= len(f.endCount) || c < f.startCount[i] {
		return 0
	}
	if f.idRangeOffset[i] == 0 {
		return Index(c + uint16(f.idDelta[i]))
	}
	segCount := len(f.endCount)
	index := int(f.idRangeOffset[i])/2 + int(c-f.startCount[i]) - (segCount - i)
	if index < 0 || index >= len(f.glyphIDArray) {
		return 0
	}
	gid := f.glyphIDArray[index]
	if gid == 0 {
		return 0
	}
	return Index(gid + uint16(f.idDelta[i]))
}

// cmapFormat6 is a dense range starting at firstCode.
type cmapFormat6 struct {
	firstCode    uint16
	glyphIDArray []uint16
}

func parseCmapFormat6(b []byte) (cmapSubtable, error) {
	if len(b) < 10 {
		return nil, FormatError("cmap format 6 too short")
	}
	firstCode := u16At(b, 6)
	entryCount := int(u16At(b, 8))
	if len(b) < 10+2*entryCount {
		return nil, FormatError("cmap format 6 too short for its entries")
	}
	ids := make([]uint16, entryCount)
	for i := 0; i < entryCount; i++ {
		ids[i] = u16At(b, 10+2*i)
	}
	return cmapFormat6{firstCode: firstCode, glyphIDArray: ids}, nil
}

func (f cmapFormat6) lookup(codepoint rune) Index {
	if codepoint < 0 {
		return 0
	}
	c := uint32(codepoint)
	first := uint32(f.firstCode)
	if c < first || c-first >= uint32(len(f.glyphIDArray)) {
		return 0
	}
	return Index(f.glyphIDArray[c-first])
}

// cmapFormat12 covers the full 32-bit codepoint space with sorted
// (start, end, startGlyph) groups.
type cmapFormat12 struct {
	groups []cmapGroup12
}

type cmapGroup12 struct {
	startCharCode, endCharCode, startGlyphID uint32
}

func parseCmapFormat12(b []byte) (cmapSubtable, error) {
	if len(b) < 16 {
		return nil, FormatError("cmap format 12 too short")
	}
	numGroups := int(u32At(b, 12))
	if len(b) < 16+12*numGroups {
		return nil, FormatError("cmap format 12 too short for its groups")
	}
	groups := make([]cmapGroup12, numGroups)
	for i := 0; i < numGroups; i++ {
		p := 16 + 12*i
		groups[i] = cmapGroup12{
			startCharCode: u32At(b, p),
			endCharCode:   u32At(b, p+4),
			startGlyphID:  u32At(b, p+8),
		}
	}
	return cmapFormat12{groups: groups}, nil
}

func (f cmapFormat12) lookup(codepoint rune) Index {
	if codepoint < 0 {
		return 0
	}
	c := uint32(codepoint)
	i := sort.Search(len(f.groups), func(i int) bool { return f.groups[i].endCharCode >= c })
	if i >= len(f.groups) {
		return 0
	}
	g := f.groups[i]
	if c < g.startCharCode || c > g.endCharCode {
		return 0
	}
	return Index(g.startGlyphID + (c - g.startCharCode))
}
