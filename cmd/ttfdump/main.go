// Copyright 2010-2017 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Command ttfdump is a trivial ASCII-dump example: it loads a TrueType
// font, prints a summary of its tables, and renders one character as an
// ASCII-art coverage map. It is not part of the rasterizer's core and
// exists only to exercise the public API end to end.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nwidger/ttfraster"
	"github.com/nwidger/ttfraster/truetype"
)

var (
	fontfile  = flag.String("font", "", "filename of font to dump")
	char      = flag.String("char", "A", "character to render")
	pointSize = flag.Float64("size", 24, "point size to render at")
)

func main() {
	flag.Parse()

	data, err := os.ReadFile(*fontfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ttfdump: reading %s: %v\n", *fontfile, err)
		os.Exit(1)
	}

	tt, err := truetype.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ttfdump: parsing %s: %v\n", *fontfile, err)
		os.Exit(1)
	}
	fmt.Printf("glyphs:      %d\n", tt.NumGlyphs())
	fmt.Printf("unitsPerEm:  %d\n", tt.UnitsPerEm())
	fmt.Printf("bounds:      %+v\n", tt.Bounds())

	f, err := ttfraster.Load(data, ttfraster.DefaultOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ttfdump: %v\n", err)
		os.Exit(1)
	}

	r := []rune(*char)[0]
	metrics, bitmap := f.GetChar(r, *pointSize)
	fmt.Printf("\n%q at %gpt: %+v\n\n", r, *pointSize, metrics)
	dumpASCII(os.Stdout, bitmap, metrics.Width, metrics.Height)
}

// dumpASCII prints an 8-bit coverage bitmap as a grid of characters, one
// per pixel, darkest for highest coverage.
func dumpASCII(w *os.File, bitmap []byte, width, height int) {
	const ramp = " .:-=+*#%@"
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := bitmap[y*width+x]
			fmt.Fprint(w, string(ramp[int(v)*(len(ramp)-1)/255]))
		}
		fmt.Fprintln(w)
	}
}
