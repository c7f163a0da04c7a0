// bezsel - a Bézier curve selection engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bezsel

import (
	"image"
	"math"
	"testing"

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func TestTessellateStraightLine(t *testing.T) {
	ctl := [4]vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0}}

	lastX := -1
	var last image.Point
	for _, pt := range Tessellate(ctl, 100) {
		if pt.Y != 0 {
			t.Errorf("sample %v is off the line", pt)
		}
		if pt.X < lastX {
			t.Errorf("x decreased from %d to %d", lastX, pt.X)
		}
		lastX = pt.X
		last = pt
	}
	if last != (image.Point{X: 10, Y: 0}) {
		t.Errorf("line ends at %v, want (10,0)", last)
	}
}

// TestTessellateAccuracy compares the forward differences against direct
// evaluation of the Bernstein form.
func TestTessellateAccuracy(t *testing.T) {
	ctl := [4]vec.Vec2{{X: 3, Y: 90}, {X: 20, Y: -40}, {X: 140, Y: 160}, {X: 180, Y: 10}}
	ref := curve.CubicBez{
		P0: curve.Pt(ctl[0].X, ctl[0].Y),
		P1: curve.Pt(ctl[1].X, ctl[1].Y),
		P2: curve.Pt(ctl[2].X, ctl[2].Y),
		P3: curve.Pt(ctl[3].X, ctl[3].Y),
	}

	for _, n := range []int{1, 7, 100, 1000, 5000} {
		count := 0
		prevIdx := -1
		var prev image.Point
		for i, pt := range Tessellate(ctl, n) {
			count++
			if i <= prevIdx {
				t.Fatalf("n=%d: step %d after step %d", n, i, prevIdx)
			}
			if count > 1 && pt == prev {
				t.Errorf("n=%d: duplicate point %v", n, pt)
			}
			want := ref.Eval(float64(i) / float64(n))
			if math.Abs(float64(pt.X)-want.X) > 0.5+1e-6 ||
				math.Abs(float64(pt.Y)-want.Y) > 0.5+1e-6 {
				t.Errorf("n=%d, i=%d: got %v, want about (%g,%g)", n, i, pt, want.X, want.Y)
			}
			prevIdx, prev = i, pt
		}
		if count > n+1 {
			t.Errorf("n=%d: %d points", n, count)
		}
		if prev != (image.Point{X: 180, Y: 10}) {
			t.Errorf("n=%d: curve ends at %v", n, prev)
		}
	}
}

func TestTessellateDefault(t *testing.T) {
	ctl := [4]vec.Vec2{{X: 0, Y: 0}, {X: 2000, Y: 0}, {X: 4000, Y: 0}, {X: 6000, Y: 0}}
	count := 0
	for range Tessellate(ctl, 0) {
		count++
	}
	if count != DefaultSubdivisions+1 {
		t.Errorf("%d points, want %d", count, DefaultSubdivisions+1)
	}
}

func TestTessellateRestart(t *testing.T) {
	ctl := [4]vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 50}, {X: 50, Y: 50}, {X: 50, Y: 0}}
	seq := Tessellate(ctl, 50)

	var first []image.Point
	for _, pt := range seq {
		first = append(first, pt)
	}

	// stop early, then run again from the start
	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	var second []image.Point
	for _, pt := range seq {
		second = append(second, pt)
	}
	diff(t, first, second)
}

func TestPolyline(t *testing.T) {
	p := squarePath(0, 0, 10, 10)
	poly := p.Polyline(16, ImageSpace)
	if len(poly) == 0 {
		t.Fatal("empty polyline")
	}
	if poly[0] != (image.Point{}) {
		t.Errorf("polyline starts at %v", poly[0])
	}
	if poly[len(poly)-1] != (image.Point{}) {
		t.Errorf("closing segment ends at %v", poly[len(poly)-1])
	}
	for i := 1; i < len(poly); i++ {
		if poly[i] == poly[i-1] {
			t.Errorf("duplicate point %v at %d", poly[i], i)
		}
	}
	// 10 unit steps per side, shared corners counted once
	if len(poly) != 41 {
		t.Errorf("%d points, want 41", len(poly))
	}

	big := p.Polyline(16, SupersampledSpace(3))
	maxX := 0
	for _, pt := range big {
		maxX = max(maxX, pt.X)
	}
	if maxX != 30 {
		t.Errorf("supersampled polyline reaches x=%d, want 30", maxX)
	}

	screen := p.Polyline(16, matrix.Matrix{1, 0, 0, 1, 100, 50})
	if screen[0] != (image.Point{X: 100, Y: 50}) {
		t.Errorf("screen polyline starts at %v", screen[0])
	}
}

func TestSpaceControlsZeroMatrix(t *testing.T) {
	ctl := [4]vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}, {X: 7, Y: 8}}
	diff(t, ctl, spaceControls(matrix.Matrix{}, ctl))
}
