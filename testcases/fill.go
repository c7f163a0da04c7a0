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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:   "square",
		Knots:  polygon(pt(10, 10), pt(54, 10), pt(54, 54), pt(10, 54)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "triangle",
		Knots:  polygon(pt(32, 8), pt(56, 56), pt(8, 56)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "triangle_thin",
		Knots:  polygon(pt(4, 30), pt(60, 28), pt(60, 34)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "diamond",
		Knots:  polygon(pt(32, 6), pt(58, 32), pt(32, 58), pt(6, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "pentagon",
		Knots:  regularPolygon(32, 32, 26, 5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "concave_l",
		Knots:  polygon(pt(10, 10), pt(30, 10), pt(30, 40), pt(54, 40), pt(54, 54), pt(10, 54)),
		Width:  64,
		Height: 64,
	},
}

// polygon builds a closed curve whose segments are straight lines.
// The control points lie on the edges, one third of the way along.
func polygon(corners ...vec.Vec2) []Knot {
	n := len(corners)
	knots := make([]Knot, n)
	for i, c := range corners {
		prev := corners[(i+n-1)%n]
		next := corners[(i+1)%n]
		knots[i] = Knot{
			In:  c.Add(prev.Sub(c).Mul(1.0 / 3)),
			At:  c,
			Out: c.Add(next.Sub(c).Mul(1.0 / 3)),
		}
	}
	return knots
}

// regularPolygon builds a regular polygon with the first corner at the top.
func regularPolygon(cx, cy, r float64, sides int) []Knot {
	return polygon(polygonCorners(cx, cy, r, sides)...)
}

// polygonCorners returns the corners of a regular polygon, starting at
// the top and running clockwise on screen.
func polygonCorners(cx, cy, r float64, sides int) []vec.Vec2 {
	corners := make([]vec.Vec2, sides)
	for i := range sides {
		angle := float64(i)*2*math.Pi/float64(sides) - math.Pi/2
		corners[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return corners
}

// rectangle builds an axis-aligned rectangle.
func rectangle(x1, y1, x2, y2 float64) []Knot {
	return polygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}
