// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import "log"

// A Font is a parsed TrueType font: its table directory and every glyph
// outline reachable from it, decoded once at Parse time. A Font is
// immutable after Parse returns and may be shared freely for read-only
// access from multiple goroutines; it carries no scratch state of its own
// (the rasterizer's scratch buffers live outside this package).
type Font struct {
	head headTable
	hhea hheaTable
	maxp maxpTable
	hmtx []byte
	loca []byte
	glyf []byte

	cmap    cmapSubtable
	kerning map[kernKey]int16

	// outlines holds every glyph's decoded Outline, indexed by glyph id.
	// Populated eagerly in Parse (the "pre-warm pass" of the design):
	// per-render decoding is then O(1), at the cost of decoding glyphs a
	// caller may never render.
	outlines []Outline
}

type kernKey struct {
	left, right Index
}

// Parse decodes a TrueType font from its raw bytes. It reads the table
// directory and every required metadata table, selects a cmap subtable,
// and decodes every glyph's outline. A font missing a required table, or
// with a table whose declared offset/length runs past the end of data, is
// a StructurallyInvalidFont and Parse returns a FormatError. A cmap with
// no subtable in a supported format does not fail the load: every
// codepoint falls back to glyph 0 and the condition is logged.
func Parse(data []byte) (*Font, error) {
	tables, err := parseDirectory(data)
	if err != nil {
		return nil, err
	}

	head, err := parseHead(tables["head"])
	if err != nil {
		return nil, err
	}
	maxp, err := parseMaxp(tables["maxp"])
	if err != nil {
		return nil, err
	}
	hhea, err := parseHhea(tables["hhea"], maxp.numGlyphs, len(tables["hmtx"]))
	if err != nil {
		return nil, err
	}

	cmap, err := parseCmap(tables["cmap"])
	if err != nil {
		if _, ok := err.(UnsupportedError); !ok {
			return nil, err
		}
		log.Printf("truetype: %v; falling back to glyph 0 for every codepoint", err)
		cmap = nil
	}

	f := &Font{
		head: head,
		hhea: hhea,
		maxp: maxp,
		hmtx: tables["hmtx"],
		loca: tables["loca"],
		glyf: tables["glyf"],
		cmap: cmap,
	}

	if kern, ok := tables["kern"]; ok {
		pairs := parseKern(kern)
		if len(pairs) > 0 {
			f.kerning = make(map[kernKey]int16, len(pairs))
			for _, p := range pairs {
				f.kerning[kernKey{p.left, p.right}] = p.value
			}
		}
	}

	f.outlines = make([]Outline, maxp.numGlyphs)
	for i := range f.outlines {
		f.outlines[i] = decodeGlyph(f, Index(i))
	}

	return f, nil
}

// NumGlyphs returns the number of glyphs in the font, including the
// .notdef glyph at index 0.
func (f *Font) NumGlyphs() int {
	return f.maxp.numGlyphs
}

// UnitsPerEm returns the size of the font's design grid (the 'head'
// table's unitsPerEm), typically 1000 or 2048.
func (f *Font) UnitsPerEm() int {
	return f.head.unitsPerEm
}

// Bounds returns the font-wide bounding box, in FUnits, from the 'head'
// table.
func (f *Font) Bounds() Bounds {
	return f.head.bounds
}

// Index returns the glyph id for codepoint r, using the font's selected
// cmap subtable. A codepoint absent from the subtable, or a font with no
// supported subtable at all, yields glyph id 0 (.notdef) — never an
// error.
func (f *Font) Index(r rune) Index {
	if f.cmap == nil {
		return 0
	}
	return f.cmap.lookup(r)
}

// Outline returns the decoded outline for glyph id i, in FUnits. An out of
// range id returns the .notdef outline (id 0).
func (f *Font) Outline(i Index) Outline {
	if int(i) < 0 || int(i) >= len(f.outlines) {
		if len(f.outlines) == 0 {
			return Outline{}
		}
		return f.outlines[0]
	}
	return f.outlines[i]
}

// HMetric returns the horizontal advance width and left side bearing for
// glyph id i, in FUnits.
func (f *Font) HMetric(i Index) HMetric {
	return hMetric(f.hmtx, f.hhea.numberOfHMetrics, f.maxp.numGlyphs, int(i))
}

// Kerning returns the horizontal kerning adjustment, in FUnits, to apply
// between left and right when they are adjacent glyphs, and whether the
// font's 'kern' table defines one for this pair.
func (f *Font) Kerning(left, right Index) (int16, bool) {
	if f.kerning == nil {
		return 0, false
	}
	v, ok := f.kerning[kernKey{left, right}]
	return v, ok
}

// KerningByRune is Kerning, looking up both codepoints through the font's
// cmap first. It returns false both when the font carries no kerning for
// the resulting glyph pair and when either codepoint maps to .notdef via a
// cmap miss with no explicit pair for glyph 0.
func (f *Font) KerningByRune(left, right rune) (int16, bool) {
	return f.Kerning(f.Index(left), f.Index(right))
}
