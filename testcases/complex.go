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

import "math"

var complexCases = []TestCase{
	{
		Name:   "blob",
		Knots:  blob(32, 32, 22, 6),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "figure_eight",
		Knots:  figureEight(32, 32, 26, 14),
		Width:  64,
		Height: 64,
	},
	{
		Name:        "star",
		Knots:       star(32, 32, 28),
		Width:       64,
		Height:      64,
		Overlapping: true,
	},
}

// blob builds a smooth closed curve through n points on a wobbly circle.
// Tangents are chosen as for a Catmull-Rom spline.
func blob(cx, cy, r float64, n int) []Knot {
	at := make([]Knot, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		rr := r
		if i%2 == 1 {
			rr = r * 0.7
		}
		at[i].At = pt(cx+rr*math.Cos(angle), cy+rr*math.Sin(angle))
	}
	for i := range at {
		prev := at[(i+n-1)%n].At
		next := at[(i+1)%n].At
		tangent := next.Sub(prev).Mul(1.0 / 6)
		at[i].In = at[i].At.Sub(tangent)
		at[i].Out = at[i].At.Add(tangent)
	}
	return at
}

// figureEight builds a self-intersecting curve with two lobes of
// opposite orientation, touching at the centre.
func figureEight(cx, cy, w, h float64) []Knot {
	k := h * kappa
	return []Knot{
		{In: pt(cx-k, cy+h), At: pt(cx, cy), Out: pt(cx+k, cy-h)},
		{In: pt(cx+w/2-k, cy-h), At: pt(cx+w/2, cy-h), Out: pt(cx+w/2+k, cy-h)},
		{In: pt(cx+w, cy-k), At: pt(cx+w, cy), Out: pt(cx+w, cy+k)},
		{In: pt(cx+w/2+k, cy+h), At: pt(cx+w/2, cy+h), Out: pt(cx+w/2-k, cy+h)},
		{In: pt(cx+k, cy+h), At: pt(cx, cy), Out: pt(cx-k, cy-h)},
		{In: pt(cx-w/2+k, cy-h), At: pt(cx-w/2, cy-h), Out: pt(cx-w/2-k, cy-h)},
		{In: pt(cx-w, cy-k), At: pt(cx-w, cy), Out: pt(cx-w, cy+k)},
		{In: pt(cx-w/2-k, cy+h), At: pt(cx-w/2, cy+h), Out: pt(cx-w/2+k, cy+h)},
	}
}

// star builds a five-pointed star by connecting every second corner of a
// regular pentagon.  The centre is enclosed twice.
func star(cx, cy, r float64) []Knot {
	corners := polygonCorners(cx, cy, r, 5)
	return polygon(corners[0], corners[2], corners[4], corners[1], corners[3])
}
