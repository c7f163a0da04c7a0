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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "circle",
		Knots:  circle(32, 32, 25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_small",
		Knots:  circle(16, 16, 4),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "ellipse_wide",
		Knots:  ellipse(32, 32, 28, 12),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ellipse_tall",
		Knots:  ellipse(32, 32, 10, 27),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic",
		Knots:  cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_shallow",
		Knots:  cubicCurve(10, 34, 24, 28, 40, 28, 54, 34),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "teardrop",
		Knots:  teardrop(32, 8, 32, 40, 18),
		Width:  64,
		Height: 64,
	},
}

// circle builds an approximate circle from four cubic segments, starting
// at the right and running through top, left and bottom.
func circle(cx, cy, r float64) []Knot {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse from four cubic segments.
func ellipse(cx, cy, rx, ry float64) []Knot {
	kx := rx * kappa
	ky := ry * kappa

	return []Knot{
		{In: pt(cx+rx, cy+ky), At: pt(cx+rx, cy), Out: pt(cx+rx, cy-ky)}, // right
		{In: pt(cx+kx, cy-ry), At: pt(cx, cy-ry), Out: pt(cx-kx, cy-ry)}, // top
		{In: pt(cx-rx, cy-ky), At: pt(cx-rx, cy), Out: pt(cx-rx, cy+ky)}, // left
		{In: pt(cx-kx, cy+ry), At: pt(cx, cy+ry), Out: pt(cx+kx, cy+ry)}, // bottom
	}
}

// cubicCurve builds a closed shape from one cubic Bézier curve and the
// straight chord back to its start.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) []Knot {
	a, b := pt(x1, y1), pt(x2, y2)
	return []Knot{
		{In: a.Add(b.Sub(a).Mul(1.0 / 3)), At: a, Out: pt(c1x, c1y)},
		{In: pt(c2x, c2y), At: b, Out: b.Add(a.Sub(b).Mul(1.0 / 3))},
	}
}

// teardrop builds a drop shape with a sharp tip at (tx, ty) and a round
// body of radius r centred at (cx, cy).
func teardrop(tx, ty, cx, cy, r float64) []Knot {
	k := r * kappa
	tip := pt(tx, ty)
	return []Knot{
		{In: pt(cx-r, cy-2*k), At: tip, Out: pt(cx+r, cy-2*k)},
		{In: pt(cx+r, cy-k), At: pt(cx+r, cy), Out: pt(cx+r, cy+k)},
		{In: pt(cx+k, cy+r), At: pt(cx, cy+r), Out: pt(cx-k, cy+r)},
		{In: pt(cx-r, cy+k), At: pt(cx-r, cy), Out: pt(cx-r, cy-k)},
	}
}
