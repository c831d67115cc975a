// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package ttfraster

import "github.com/nwidger/ttfraster/truetype"

// cacheKey identifies one rendered (glyph, point-size) pair. Point size is
// quantized to 1/64th of a point (the same granularity fixed.Int26_6 gives
// pixel coordinates) so that repeated calls with the same floating-point
// size hit the cache, per Property 5 (cache idempotence).
type cacheKey struct {
	gid  truetype.Index
	size uint32
}

func quantizeSize(pointSize float64) uint32 {
	if pointSize < 0 {
		pointSize = 0
	}
	return uint32(pointSize*64 + 0.5)
}

type cacheEntry struct {
	metrics Metrics
	bitmap  []byte
}

// cache is a keyed mapping (glyph-id, size) -> (Metrics, bitmap). It is
// unbounded: fonts have a bounded glyph count and callers render a bounded
// set of sizes, so the design accepts unbounded growth in exchange for
// never evicting a bitmap a caller might ask for again. flush is the only
// way entries leave it.
type cache struct {
	entries map[cacheKey]cacheEntry
}

func newCache() *cache {
	return &cache{entries: make(map[cacheKey]cacheEntry)}
}

func (c *cache) get(key cacheKey) (cacheEntry, bool) {
	e, ok := c.entries[key]
	return e, ok
}

func (c *cache) put(key cacheKey, e cacheEntry) {
	c.entries[key] = e
}

// flush drops every cached bitmap.
func (c *cache) flush() {
	c.entries = make(map[cacheKey]cacheEntry)
}
