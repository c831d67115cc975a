// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package truetype provides a parser for the TTF file format and the data
// model for glyph outlines that the raster package consumes. That format is
// documented at http://developer.apple.com/fonts/TTRefMan/ and
// http://www.microsoft.com/typography/otspec/
//
// All numbers (bounds, point co-ordinates, font metrics) are measured in
// FUnits. To convert from FUnits to pixels, scale by
// (pointSize * resolution) / (font.UnitsPerEm() * 72dpi).
package truetype

// data interprets a byte slice as a stream of big-endian integer values.
// It is the unaligned big-endian reader that every table decoder in this
// package is built on.
type data []byte

// u32 returns the next big-endian uint32.
func (d *data) u32() uint32 {
	x := uint32((*d)[0])<<24 | uint32((*d)[1])<<16 | uint32((*d)[2])<<8 | uint32((*d)[3])
	*d = (*d)[4:]
	return x
}

// u16 returns the next big-endian uint16.
func (d *data) u16() uint16 {
	x := uint16((*d)[0])<<8 | uint16((*d)[1])
	*d = (*d)[2:]
	return x
}

// i16 returns the next big-endian int16.
func (d *data) i16() int16 {
	return int16(d.u16())
}

// u8 returns the next uint8.
func (d *data) u8() uint8 {
	x := (*d)[0]
	*d = (*d)[1:]
	return x
}

// i8 returns the next int8.
func (d *data) i8() int8 {
	return int8(d.u8())
}

// skip skips the next n bytes.
func (d *data) skip(n int) {
	*d = (*d)[n:]
}

// u32At returns the big-endian uint32 at the given offset in b, without
// bounds checking. Callers must have already validated that the table
// slices they hand out are long enough for the fields they read.
func u32At(b []byte, offset int) uint32 {
	return uint32(b[offset])<<24 | uint32(b[offset+1])<<16 | uint32(b[offset+2])<<8 | uint32(b[offset+3])
}

// u16At returns the big-endian uint16 at the given offset in b.
func u16At(b []byte, offset int) uint16 {
	return uint16(b[offset])<<8 | uint16(b[offset+1])
}

// i16At returns the big-endian int16 at the given offset in b.
func i16At(b []byte, offset int) int16 {
	return int16(u16At(b, offset))
}
