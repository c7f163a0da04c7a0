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
	"iter"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// ImageSpace maps image coordinates to themselves.
var ImageSpace = matrix.Identity

// SupersampledSpace returns the map from image coordinates to a grid
// which is factor times finer in both directions.
func SupersampledSpace(factor int) matrix.Matrix {
	return matrix.Scale(float64(factor), float64(factor))
}

// mat4 is a 4×4 matrix in row-major order.
type mat4 [4][4]float64

func (a *mat4) mul(b *mat4) mat4 {
	var c mat4
	for i := range 4 {
		for j := range 4 {
			var s float64
			for k := range 4 {
				s += a[i][k] * b[k][j]
			}
			c[i][j] = s
		}
	}
	return c
}

// bezierBasis converts the four control points of a cubic Bézier curve
// into the coefficients of t³, t², t and 1.
var bezierBasis = mat4{
	{-1, 3, -3, 1},
	{3, -6, 3, 0},
	{-3, 3, 0, 0},
	{1, 0, 0, 0},
}

// Tessellate approximates the cubic Bézier curve with control points ctl
// by evaluating it at t = i/n for i = 0, ..., n, using forward
// differences.  Coordinates are rounded to the nearest integer.
//
// The sequence yields the step index i together with the rounded point.
// A point equal to the previously yielded one is skipped, so at most n+1
// points are produced.  If n <= 0, DefaultSubdivisions is used.
//
// The control points must already be in the target coordinate space.
func Tessellate(ctl [4]vec.Vec2, n int) iter.Seq2[int, image.Point] {
	if n <= 0 {
		n = DefaultSubdivisions
	}
	return func(yield func(int, image.Point) bool) {
		var geom mat4
		for i, v := range ctl {
			geom[i][0] = v.X
			geom[i][1] = v.Y
		}
		coeff := bezierBasis.mul(&geom)

		d := 1 / float64(n)
		d2 := d * d
		d3 := d2 * d
		fwd := mat4{
			{0, 0, 0, 1},
			{d3, d2, d, 0},
			{6 * d3, 2 * d2, 0, 0},
			{6 * d3, 0, 0, 0},
		}
		delta := fwd.mul(&coeff)

		x, dx, dx2, dx3 := delta[0][0], delta[1][0], delta[2][0], delta[3][0]
		y, dy, dy2, dy3 := delta[0][1], delta[1][1], delta[2][1], delta[3][1]

		last := image.Point{X: roundInt(x), Y: roundInt(y)}
		if !yield(0, last) {
			return
		}
		for i := 1; i <= n; i++ {
			x += dx
			dx += dx2
			dx2 += dx3

			y += dy
			dy += dy2
			dy2 += dy3

			pt := image.Point{X: roundInt(x), Y: roundInt(y)}
			if pt == last {
				continue
			}
			if !yield(i, pt) {
				return
			}
			last = pt
		}
	}
}

// Polyline tessellates every segment of p, in path order, after mapping
// the control points through space.  Consecutive duplicate points are
// dropped, so the junction between two segments appears only once.
func (p *CurvePath) Polyline(n int, space matrix.Matrix) []image.Point {
	return p.appendPolyline(nil, n, space)
}

func (p *CurvePath) appendPolyline(dst []image.Point, n int, space matrix.Matrix) []image.Point {
	start := len(dst)
	for seg := range p.Segments() {
		ctl := spaceControls(space, p.Controls(seg))
		for _, pt := range Tessellate(ctl, n) {
			if len(dst) > start && dst[len(dst)-1] == pt {
				continue
			}
			dst = append(dst, pt)
		}
	}
	return dst
}

// spaceControls maps the control points through m.  The zero matrix is
// treated as the identity.
func spaceControls(m matrix.Matrix, ctl [4]vec.Vec2) [4]vec.Vec2 {
	if m == (matrix.Matrix{}) || m == matrix.Identity {
		return ctl
	}
	for i, v := range ctl {
		ctl[i] = vec.Vec2{
			X: m[0]*v.X + m[2]*v.Y + m[4],
			Y: m[1]*v.X + m[3]*v.Y + m[5],
		}
	}
	return ctl
}

func roundInt(v float64) int {
	return int(math.Floor(v + 0.5))
}

// DefaultSubdivisions is the number of forward-difference steps used per
// segment when the caller does not choose one.
const DefaultSubdivisions = 1000
