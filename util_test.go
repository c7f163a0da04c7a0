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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// polygonPath returns a closed path through the given corners, with the
// control points placed on the straight edges so that every segment is a
// line.
func polygonPath(corners ...vec.Vec2) *CurvePath {
	p := NewCurvePath()
	n := len(corners)
	for i, c := range corners {
		prev := corners[(i+n-1)%n]
		next := corners[(i+1)%n]
		if i > 0 {
			in := c.Add(prev.Sub(c).Mul(1.0 / 3))
			p.AddPoint(Control, in.X, in.Y)
		}
		p.AddPoint(Anchor, c.X, c.Y)
		out := c.Add(next.Sub(c).Mul(1.0 / 3))
		p.AddPoint(Control, out.X, out.Y)
	}
	in := corners[0].Add(corners[n-1].Sub(corners[0]).Mul(1.0 / 3))
	p.AddPoint(Control, in.X, in.Y)
	p.Close()
	return p
}

// squarePath is the closed axis-aligned square with corners (x0, y0) and
// (x1, y1).
func squarePath(x0, y0, x1, y1 float64) *CurvePath {
	return polygonPath(
		vec.Vec2{X: x0, Y: y0},
		vec.Vec2{X: x1, Y: y0},
		vec.Vec2{X: x1, Y: y1},
		vec.Vec2{X: x0, Y: y1},
	)
}

// openPath returns an open path with n anchors along the x axis, spaced
// 30 units apart.  The points are A C (C A C)* ... C A.
func openPath(n int) (*CurvePath, []PointRef) {
	p := NewCurvePath()
	var anchors []PointRef
	for i := range n {
		x := float64(30 * i)
		if i > 0 {
			p.AddPoint(Control, x-10, 5)
		}
		anchors = append(anchors, p.AddPoint(Anchor, x, 0))
		if i < n-1 {
			p.AddPoint(Control, x+10, 5)
		}
	}
	return p, anchors
}

// kinds lists the kinds of the points of p in path order.
func kinds(p *CurvePath) []Kind {
	var res []Kind
	for _, pt := range p.Points() {
		res = append(res, pt.Kind)
	}
	return res
}

// coords lists the coordinates of the points of p in path order.
func coords(p *CurvePath) []vec.Vec2 {
	var res []vec.Vec2
	for _, pt := range p.Points() {
		res = append(res, pt.Vec2)
	}
	return res
}
