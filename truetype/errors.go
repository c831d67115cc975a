// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// A FormatError reports that the input is not a structurally valid TrueType
// font: a missing required table, an offset or length that runs past the
// end of the font data, or a table whose own internal length disagrees with
// its declared size. These are fatal at load time; there is no sensible
// partial font to return.
type FormatError string

func (e FormatError) Error() string {
	return "truetype: invalid font format: " + string(e)
}

// An UnsupportedError reports that the input uses a valid but unimplemented
// TrueType feature, such as a cmap subtable format we don't decode. Callers
// that hit this for cmap selection still get a usable (if degraded) font:
// every codepoint falls back to glyph 0.
type UnsupportedError string

func (e UnsupportedError) Error() string {
	return "truetype: unsupported feature: " + string(e)
}
