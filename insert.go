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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// InsertOnSegment splits the segment starting at the anchor segStart into
// two segments without changing the shape of the curve.
//
// The segment is tessellated with n steps in the coordinate space given by
// space, normally the screen.  The first sample, in curve order, which lies
// within halfwidth of (x, y) in both directions determines the split
// parameter t.  This is not necessarily the sample closest to (x, y).
//
// If no sample is close enough, the path is left unchanged and false is
// returned.  Otherwise the two controls of the segment are shortened, a
// new control, anchor and control are inserted between them, and the
// handle of the new anchor is returned.
//
// segStart must be an anchor followed by at least three points.
func (p *CurvePath) InsertOnSegment(segStart PointRef, x, y, halfwidth float64, n int, space matrix.Matrix) (PointRef, bool) {
	if n <= 0 {
		n = DefaultSubdivisions
	}
	start := p.node(segStart)
	if start == nil || start.Kind != Anchor {
		panic("bezsel: segment does not start at an anchor")
	}
	seg, ok := p.segmentAt(segStart)
	if !ok {
		panic("bezsel: segment has fewer than 4 points")
	}

	ctl := p.Controls(seg)
	step := -1
	for i, pt := range Tessellate(spaceControls(space, ctl), n) {
		if contains(float64(pt.X), float64(pt.Y), x, y, halfwidth) {
			step = i
			break
		}
	}
	if step < 0 {
		return 0, false
	}
	t := float64(step) / float64(n)

	p10 := lerp(ctl[0], ctl[1], t)
	p11 := lerp(ctl[1], ctl[2], t)
	p12 := lerp(ctl[2], ctl[3], t)
	p20 := lerp(p10, p11, t)
	p21 := lerp(p11, p12, t)
	p30 := lerp(p20, p21, t)

	p.nodes[seg[1]-1].Vec2 = p10
	p.nodes[seg[2]-1].Vec2 = p12

	c1 := p.newNode(Control, p20)
	a := p.newNode(Anchor, p30)
	c2 := p.newNode(Control, p21)
	p.link(seg[1], c1)
	p.link(c1, a)
	p.link(a, c2)
	p.link(c2, seg[2])
	p.count += 3

	Logger().Debug("segment split", "t", t, "points", p.count)
	return a, true
}

// newNode allocates an unlinked point in the arena.
func (p *CurvePath) newNode(kind Kind, v vec.Vec2) PointRef {
	p.nodes = append(p.nodes, node{Point: Point{Kind: kind, Vec2: v}, live: true})
	return PointRef(len(p.nodes))
}

func (p *CurvePath) link(a, b PointRef) {
	p.nodes[a-1].next = b
	p.nodes[b-1].prev = a
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}
