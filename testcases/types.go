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

// Package testcases defines named closed curves for tests, benchmarks and
// the reference image generators.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rasterization test.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Knots  []Knot // the closed curve, one knot per anchor
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels

	// Overlapping marks curves which cover some area more than once.
	// Crossing-parity fills and nonzero-winding fills disagree on such
	// curves.
	Overlapping bool
}

// Knot is an anchor point together with the control point before it
// and the control point after it.
type Knot struct {
	In, At, Out vec.Vec2
}

// Path returns the curve as a closed path of cubic Bézier segments.
func (tc TestCase) Path() *path.Data {
	p := &path.Data{}
	if len(tc.Knots) == 0 {
		return p
	}
	p = p.MoveTo(tc.Knots[0].At)
	for i, k := range tc.Knots {
		next := tc.Knots[(i+1)%len(tc.Knots)]
		p = p.CubeTo(k.Out, next.In, next.At)
	}
	return p.Close()
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
