// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import "encoding/binary"

// buildTestFont assembles a tiny but structurally valid TrueType font in
// memory, by hand, the same way the original C FreeType test suite ships
// minimal fixture fonts rather than large binary blobs: two glyphs
// (.notdef, empty; and 'A', a triangle), a format-4 cmap mapping 'A' to
// glyph 1, and a kern pair between them.
func buildTestFont() []byte {
	const unitsPerEm = 1000

	// glyf: glyph 0 (.notdef) is empty; glyph 1 is a 3-point triangle,
	// all points on-curve, so no midpoint insertion is exercised here
	// (see TestInsertMidpoints for that).
	glyph1 := buildSimpleTriangleGlyph()
	glyf := glyph1 // glyph 0 contributes zero bytes

	// loca: short format, values are byte offsets / 2.
	loca := make([]byte, 0, 6)
	loca = appendU16(loca, 0)                      // glyph 0 start
	loca = appendU16(loca, 0)                      // glyph 0 end / glyph 1 start
	loca = appendU16(loca, uint16(len(glyph1)/2)) // glyph 1 end

	head := buildHead(unitsPerEm, 0, 0, 500, 500)
	maxp := buildMaxp(2)
	hhea := buildHhea(2)
	hmtx := buildHmtx([]HMetric{
		{AdvanceWidth: 500, LeftSideBearing: 0},
		{AdvanceWidth: 600, LeftSideBearing: 50},
	})
	cmap := buildCmapFormat4('A', 1)
	kern := buildKern(0, 1, -40)

	return buildSFNT(map[string][]byte{
		"head": head,
		"maxp": maxp,
		"hhea": hhea,
		"hmtx": hmtx,
		"loca": loca,
		"glyf": glyf,
		"cmap": cmap,
		"kern": kern,
	})
}

func appendU16(b []byte, v uint16) []byte {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	return append(b, buf[:]...)
}

func appendI16(b []byte, v int16) []byte {
	return appendU16(b, uint16(v))
}

func appendU32(b []byte, v uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return append(b, buf[:]...)
}

// buildSimpleTriangleGlyph returns one simple glyph: a closed triangle
// (0,0)-(500,0)-(250,500), all points on-curve, padded to an even length
// as every glyf entry must be.
func buildSimpleTriangleGlyph() []byte {
	var g []byte
	g = appendI16(g, 1)   // numberOfContours
	g = appendI16(g, 0)   // xMin
	g = appendI16(g, 0)   // yMin
	g = appendI16(g, 500) // xMax
	g = appendI16(g, 500) // yMax
	g = appendU16(g, 2)   // endPtsOfContours[0]
	g = appendU16(g, 0)   // instructionLength
	g = append(g, 0x01, 0x01, 0x01) // flags: on-curve, long deltas
	g = appendI16(g, 0)    // dx0
	g = appendI16(g, 500)  // dx1
	g = appendI16(g, -250) // dx2
	g = appendI16(g, 0)    // dy0
	g = appendI16(g, 0)    // dy1
	g = appendI16(g, 500)  // dy2
	if len(g)%2 != 0 {
		g = append(g, 0)
	}
	return g
}

func buildHead(unitsPerEm int, xMin, yMin, xMax, yMax int16) []byte {
	h := make([]byte, 54)
	binary.BigEndian.PutUint32(h[0:], 0x00010000)
	binary.BigEndian.PutUint32(h[12:], 0x5F0F3CF5)
	binary.BigEndian.PutUint16(h[18:], uint16(unitsPerEm))
	binary.BigEndian.PutUint16(h[36:], uint16(xMin))
	binary.BigEndian.PutUint16(h[38:], uint16(yMin))
	binary.BigEndian.PutUint16(h[40:], uint16(xMax))
	binary.BigEndian.PutUint16(h[42:], uint16(yMax))
	binary.BigEndian.PutUint16(h[50:], 0) // indexToLocFormat: short
	return h
}

func buildMaxp(numGlyphs int) []byte {
	var m []byte
	m = appendU32(m, 0x00005000)
	m = appendU16(m, uint16(numGlyphs))
	return m
}

func buildHhea(numberOfHMetrics int) []byte {
	h := make([]byte, 36)
	binary.BigEndian.PutUint16(h[34:], uint16(numberOfHMetrics))
	return h
}

func buildHmtx(metrics []HMetric) []byte {
	var m []byte
	for _, hm := range metrics {
		m = appendU16(m, hm.AdvanceWidth)
		m = appendI16(m, hm.LeftSideBearing)
	}
	return m
}

// buildCmapFormat4 returns a cmap table with one encoding record
// (platform 3, encoding 1) pointing at a format-4 subtable with a single
// segment mapping r to gid, plus the mandatory terminating 0xFFFF segment.
func buildCmapFormat4(r rune, gid uint16) []byte {
	c := uint16(r)

	var sub []byte
	sub = appendU16(sub, 4) // format
	sub = appendU16(sub, 0) // length placeholder, patched below
	sub = appendU16(sub, 0) // language
	sub = appendU16(sub, 4) // segCountX2 (2 segments)
	sub = appendU16(sub, 0) // searchRange
	sub = appendU16(sub, 0) // entrySelector
	sub = appendU16(sub, 0) // rangeShift
	// endCount
	sub = appendU16(sub, c)
	sub = appendU16(sub, 0xFFFF)
	sub = appendU16(sub, 0) // reservedPad
	// startCount
	sub = appendU16(sub, c)
	sub = appendU16(sub, 0xFFFF)
	// idDelta
	sub = appendI16(sub, int16(gid)-int16(c))
	sub = appendI16(sub, 1)
	// idRangeOffset
	sub = appendU16(sub, 0)
	sub = appendU16(sub, 0)
	binary.BigEndian.PutUint16(sub[2:], uint16(len(sub)))

	var cmap []byte
	cmap = appendU16(cmap, 0) // version
	cmap = appendU16(cmap, 1) // numTables
	cmap = appendU16(cmap, 3) // platformID
	cmap = appendU16(cmap, 1) // encodingID
	cmap = appendU32(cmap, uint32(len(cmap)+4))
	cmap = append(cmap, sub...)
	return cmap
}

// buildKern returns a 'kern' table with one format-0 horizontal subtable
// containing a single pair.
func buildKern(left, right Index, value int16) []byte {
	var pairs []byte
	pairs = appendU16(pairs, uint16(left))
	pairs = appendU16(pairs, uint16(right))
	pairs = appendI16(pairs, value)

	subtableHeaderLen := 14
	subtableLen := subtableHeaderLen + len(pairs)

	var sub []byte
	sub = appendU16(sub, 0) // subtable version
	sub = appendU16(sub, uint16(subtableLen))
	sub = appendU16(sub, 0x0001) // coverage: format 0, horizontal
	sub = appendU16(sub, 1)      // nPairs
	sub = appendU16(sub, 0)      // searchRange
	sub = appendU16(sub, 0)      // entrySelector
	sub = appendU16(sub, 0)      // rangeShift
	sub = append(sub, pairs...)

	var kern []byte
	kern = appendU16(kern, 0) // version
	kern = appendU16(kern, 1) // numTables
	kern = append(kern, sub...)
	return kern
}

// buildSFNT assembles a table directory and concatenated table data for
// the given tag -> bytes map, in the same layout parseDirectory expects:
// a 12-byte offset table, num_tables*16-byte records, then each table's
// raw bytes back to back.
func buildSFNT(tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}

	headerLen := 12 + 16*len(tags)
	dataOffset := headerLen
	var data []byte
	offsets := make(map[string]int, len(tags))
	for _, tag := range tags {
		offsets[tag] = dataOffset
		data = append(data, tables[tag]...)
		dataOffset += len(tables[tag])
	}

	var out []byte
	out = appendU32(out, 0x00010000)
	out = appendU16(out, uint16(len(tags)))
	out = appendU16(out, 0) // searchRange
	out = appendU16(out, 0) // entrySelector
	out = appendU16(out, 0) // rangeShift

	for _, tag := range tags {
		out = append(out, tag...)
		out = appendU32(out, 0) // checksum, unchecked
		out = appendU32(out, uint32(offsets[tag]))
		out = appendU32(out, uint32(len(tables[tag])))
	}
	out = append(out, data...)
	return out
}
