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

import "seehuhn.de/go/geom/vec"

// Kind distinguishes the two roles a point can have in a path.
// The numeric values are the ones used in saved curve buffers.
type Kind uint8

const (
	// Anchor points lie on the curve.
	Anchor Kind = 1

	// Control points shape the tangent next to the anchor they belong to.
	Control Kind = 2
)

func (k Kind) String() string {
	switch k {
	case Anchor:
		return "anchor"
	case Control:
		return "control"
	default:
		return "invalid"
	}
}

// Point is a single anchor or control point, in image coordinates.
type Point struct {
	Kind Kind
	vec.Vec2
}

// PointRef refers to a point owned by a [CurvePath].
// The zero value is the null reference.
type PointRef uint32

// IsNull reports whether r is the null reference.
func (r PointRef) IsNull() bool {
	return r == 0
}

// HitTest reports whether (x, y) lies inside the axis-aligned square of
// side 2*halfwidth centred on p. Points on the boundary of the square
// count as hits.
func HitTest(p Point, x, y, halfwidth float64) bool {
	return contains(p.X, p.Y, x, y, halfwidth)
}

func contains(px, py, x, y, halfwidth float64) bool {
	return x >= px-halfwidth && x <= px+halfwidth &&
		y >= py-halfwidth && y <= py+halfwidth
}
