// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestInsertMidpoints checks Property 2 (normalized curve pattern): after
// insertMidpoints, no contour has two consecutive off-curve points.
func TestInsertMidpoints(t *testing.T) {
	contours := []Contour{{Points: []Point{
		{X: 0, Y: 0, OnCurve: true},
		{X: 10, Y: 10, OnCurve: false},
		{X: 20, Y: 0, OnCurve: false},
		{X: 0, Y: 0, OnCurve: true},
	}}}
	insertMidpoints(contours)

	pts := contours[0].Points
	for i := 0; i+1 < len(pts); i++ {
		if !pts[i].OnCurve && !pts[i+1].OnCurve {
			t.Fatalf("consecutive off-curve points at %d, %d: %+v", i, i+1, pts)
		}
	}

	// The midpoint should be inserted in place, between the two off-curve
	// points that produced it, not merely present somewhere in the slice.
	want := []Point{
		{X: 0, Y: 0, OnCurve: true},
		{X: 10, Y: 10, OnCurve: false},
		{X: 15, Y: 5, OnCurve: true},
		{X: 20, Y: 0, OnCurve: false},
		{X: 0, Y: 0, OnCurve: true},
	}
	if diff := cmp.Diff(want, pts); diff != "" {
		t.Errorf("midpoint insertion mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertMidpointsNoOffCurvePairs(t *testing.T) {
	contours := []Contour{{Points: []Point{
		{X: 0, Y: 0, OnCurve: true},
		{X: 10, Y: 0, OnCurve: true},
		{X: 0, Y: 0, OnCurve: true},
	}}}
	insertMidpoints(contours)
	if got, want := len(contours[0].Points), 3; got != want {
		t.Errorf("an all-on-curve contour should be untouched: got %d points, want %d", got, want)
	}
}

func TestMidInt16(t *testing.T) {
	if got, want := midInt16(0, 10), int16(5); got != want {
		t.Errorf("midInt16(0, 10): got %d, want %d", got, want)
	}
	if got, want := midInt16(-10, 10), int16(0); got != want {
		t.Errorf("midInt16(-10, 10): got %d, want %d", got, want)
	}
}
