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

// Package bezsel implements the geometry behind a Bézier curve selection
// tool: an editable closed path of cubic segments, forward-difference
// tessellation, point insertion by de Casteljau subdivision, proximity
// tests and scan conversion of the curve into a coverage mask.
package bezsel

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import "github.com/GNOME/gimp-sub073/testcases"

// FromTestCase builds a closed curve path from the knots of a test case.
// Points are added in the order anchor, after-control, before-control of
// the next knot, and so on, ending with the before-control of the first
// knot.
func FromTestCase(tc testcases.TestCase) *CurvePath {
	p := NewCurvePath()
	for i, k := range tc.Knots {
		if i > 0 {
			p.AddPoint(Control, k.In.X, k.In.Y)
		}
		p.AddPoint(Anchor, k.At.X, k.At.Y)
		p.AddPoint(Control, k.Out.X, k.Out.Y)
	}
	if len(tc.Knots) > 0 {
		in := tc.Knots[0].In
		p.AddPoint(Control, in.X, in.Y)
		p.Close()
	}
	return p
}

// RenderExample renders a test case into a grayscale buffer, with
// antialiasing enabled.
// The buffer is pre-initialized with zeros, in row-major order.
// Each byte represents coverage from 0 (transparent) to 255 (opaque).
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) {
	r := NewRasterizer(width, height)
	r.Antialias = true
	r.Fill(FromTestCase(tc), func(y int, coverage []byte) {
		copy(buf[y*stride:y*stride+width], coverage)
	})
}
