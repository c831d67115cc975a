// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import "fmt"

// sfntVersion is the scaler type found in a TrueType offset table.
const sfntVersion = 0x00010000

// tableRecord is one entry of the table directory: a 4-byte tag plus the
// byte range (from the start of the file) holding that table's data.
type tableRecord struct {
	tag            [4]byte
	checksum       uint32
	offset, length uint32
}

// readTable returns the slice of ttf named by a directory entry, checking
// that the offset and length stay within the font data.
func readTable(ttf []byte, rec tableRecord) ([]byte, error) {
	offset, length := int(rec.offset), int(rec.length)
	if offset < 0 || length < 0 {
		return nil, FormatError(fmt.Sprintf("table %q: negative offset/length", rec.tag))
	}
	end := offset + length
	if end < 0 || end > len(ttf) {
		return nil, FormatError(fmt.Sprintf("table %q: offset+length past end of data", rec.tag))
	}
	return ttf[offset:end], nil
}

// requiredTables lists the tags this package must find to decode a font at
// all. kern is optional: a font with no kerning simply reports none.
var requiredTables = [...]string{"cmap", "glyf", "head", "hhea", "hmtx", "loca", "maxp"}

// parseDirectory reads the 12-byte offset table and the table records that
// follow it, returning a tag-to-byte-range map. It does not interpret any
// table's contents.
func parseDirectory(ttf []byte) (map[string][]byte, error) {
	if len(ttf) < 12 {
		return nil, FormatError("data too short for an offset table")
	}
	d := data(ttf)
	if v := d.u32(); v != sfntVersion {
		return nil, FormatError(fmt.Sprintf("bad version: 0x%08x", v))
	}
	numTables := int(d.u16())
	d.skip(6) // searchRange, entrySelector, rangeShift

	const recordSize = 16
	if len(ttf) < 12+recordSize*numTables {
		return nil, FormatError("data too short for its table directory")
	}

	tables := make(map[string][]byte, numTables)
	for i := 0; i < numTables; i++ {
		x := 12 + recordSize*i
		rec := tableRecord{
			checksum: u32At(ttf, x+4),
			offset:   u32At(ttf, x+8),
			length:   u32At(ttf, x+12),
		}
		copy(rec.tag[:], ttf[x:x+4])
		tag := string(rec.tag[:])
		table, err := readTable(ttf, rec)
		if err != nil {
			return nil, err
		}
		tables[tag] = table
	}

	for _, tag := range requiredTables {
		if _, ok := tables[tag]; !ok {
			return nil, FormatError(fmt.Sprintf("missing required table %q", tag))
		}
	}
	return tables, nil
}
