// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// kernPair is a left/right glyph-id pair and its horizontal adjustment, in
// FUnits.
type kernPair struct {
	left, right Index
	value       int16
}

// parseKern decodes every format-0 horizontal-coverage subtable of a 'kern'
// table, the way Windows-targeted fonts (and the C FreeType
// implementation) expect. Apple's newer 32-bit 'kern' header is not
// supported; an unrecognized subtable is skipped rather than treated as
// fatal, since 'kern' is optional to begin with.
func parseKern(kern []byte) []kernPair {
	if len(kern) < 4 {
		return nil
	}
	d := data(kern)
	d.skip(2) // version
	numTables := int(d.u16())

	var pairs []kernPair
	offset := 4
	for t := 0; t < numTables; t++ {
		if offset+14 > len(kern) {
			break
		}
		length := int(u16At(kern, offset+2))
		coverage := u16At(kern, offset+4)
		format := coverage >> 8
		horizontal := coverage&0x0001 != 0
		if format == 0 && horizontal {
			nPairs := int(u16At(kern, offset+6))
			p := offset + 14
			for i := 0; i < nPairs && p+6 <= len(kern); i++ {
				pairs = append(pairs, kernPair{
					left:  Index(u16At(kern, p)),
					right: Index(u16At(kern, p+2)),
					value: i16At(kern, p+4),
				})
				p += 6
			}
		}
		if length <= 0 {
			break
		}
		offset += length
	}
	return pairs
}
