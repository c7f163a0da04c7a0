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
	"iter"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// node is an arena slot.  Links are handles into the same arena.
type node struct {
	Point
	prev, next PointRef
	live       bool
}

// CurvePath is an editable piecewise-cubic path.
//
// Points are stored in order Anchor, Control, then repeating triples
// Control, Anchor, Control.  Every anchor owns the control directly before
// and directly after it.  Four consecutive points starting at an anchor
// form one cubic segment.  Once closed, the last point links back to the
// first and the final segment ends at the first anchor.
//
// The zero value is an empty, open path.  A CurvePath is not safe for
// concurrent use.
type CurvePath struct {
	nodes  []node
	head   PointRef
	tail   PointRef
	count  int
	closed bool
}

// Segment holds the four points of one cubic piece:
// anchor, control, control, anchor.
type Segment [4]PointRef

// NewCurvePath returns an empty, open path.
func NewCurvePath() *CurvePath {
	return &CurvePath{}
}

func (p *CurvePath) node(r PointRef) *node {
	if r == 0 || int(r) > len(p.nodes) {
		return nil
	}
	n := &p.nodes[r-1]
	if !n.live {
		return nil
	}
	return n
}

// Len returns the number of points in the path.
func (p *CurvePath) Len() int { return p.count }

// Closed reports whether the path has been closed.
func (p *CurvePath) Closed() bool { return p.closed }

// Head returns the first point of the path.
func (p *CurvePath) Head() PointRef { return p.head }

// Tail returns the last point of the path.
func (p *CurvePath) Tail() PointRef { return p.tail }

// Valid reports whether r refers to a point that is still part of p.
func (p *CurvePath) Valid(r PointRef) bool {
	return p.node(r) != nil
}

// Next returns the point after r, or the null reference.
func (p *CurvePath) Next(r PointRef) PointRef {
	if n := p.node(r); n != nil {
		return n.next
	}
	return 0
}

// Prev returns the point before r, or the null reference.
func (p *CurvePath) Prev(r PointRef) PointRef {
	if n := p.node(r); n != nil {
		return n.prev
	}
	return 0
}

// Point returns the point r refers to.
func (p *CurvePath) Point(r PointRef) (Point, bool) {
	if n := p.node(r); n != nil {
		return n.Point, true
	}
	return Point{}, false
}

// AddPoint appends a point to the end of the path and returns its handle.
func (p *CurvePath) AddPoint(kind Kind, x, y float64) PointRef {
	p.nodes = append(p.nodes, node{
		Point: Point{Kind: kind, Vec2: vec.Vec2{X: x, Y: y}},
		live:  true,
	})
	ref := PointRef(len(p.nodes))

	if p.head == 0 {
		p.head = ref
	} else {
		p.nodes[p.tail-1].next = ref
		p.nodes[ref-1].prev = p.tail
	}
	if p.closed {
		p.nodes[ref-1].next = p.head
		p.nodes[p.head-1].prev = ref
	}
	p.tail = ref
	p.count++
	return ref
}

// Close links the last point back to the first one.  It returns false,
// and does nothing, if the path is empty.  Closing a closed path has no
// effect.
func (p *CurvePath) Close() bool {
	if p.count == 0 {
		return false
	}
	if p.closed {
		return true
	}
	p.nodes[p.tail-1].next = p.head
	p.nodes[p.head-1].prev = p.tail
	p.closed = true
	return true
}

// OffsetPoint moves the point r by (dx, dy).
// Null and stale references are ignored.
func (p *CurvePath) OffsetPoint(r PointRef, dx, dy float64) {
	if n := p.node(r); n != nil {
		n.X += dx
		n.Y += dy
	}
}

// RemovePointAt removes the given anchor together with two neighbouring
// control points.  For an anchor inside the path these are the two
// controls it owns.  At the ends of an open path, the anchor is removed
// together with the two controls on its only side.
//
// Removal is refused, and false is returned, if anchor does not refer to
// an anchor of p or if the path has seven points or fewer.
func (p *CurvePath) RemovePointAt(anchor PointRef) bool {
	n := p.node(anchor)
	if n == nil || n.Kind != Anchor {
		return false
	}
	if p.count <= minRemoveCount {
		Logger().Debug("point removal refused", "points", p.count, "closed", p.closed)
		return false
	}

	var first, last PointRef
	switch {
	case n.prev != 0 && n.next != 0:
		first, last = n.prev, n.next
	case n.prev == 0:
		first, last = anchor, p.Next(n.next)
	default:
		first, last = p.Prev(n.prev), anchor
	}
	if first == 0 || last == 0 {
		return false
	}

	before := p.nodes[first-1].prev
	after := p.nodes[last-1].next
	headRemoved, tailRemoved := false, false
	r := first
	for range 3 {
		headRemoved = headRemoved || r == p.head
		tailRemoved = tailRemoved || r == p.tail
		next := p.nodes[r-1].next
		p.nodes[r-1] = node{}
		r = next
	}

	if before != 0 {
		p.nodes[before-1].next = after
	}
	if after != 0 {
		p.nodes[after-1].prev = before
	}
	p.count -= 3

	if p.closed {
		if headRemoved {
			h := after
			for range p.count {
				if p.nodes[h-1].Kind == Anchor {
					break
				}
				h = p.nodes[h-1].next
			}
			p.head = h
		}
		p.tail = p.nodes[p.head-1].prev
	} else {
		if headRemoved {
			p.head = after
		}
		if tailRemoved {
			p.tail = before
		}
	}
	return true
}

// Points iterates over the points of p in path order.
func (p *CurvePath) Points() iter.Seq2[PointRef, Point] {
	return func(yield func(PointRef, Point) bool) {
		r := p.head
		for range p.count {
			n := p.nodes[r-1]
			if !yield(r, n.Point) {
				return
			}
			r = n.next
		}
	}
}

// Segments iterates over the cubic segments of p in path order.  An open
// path yields every complete segment; a trailing anchor with fewer than
// three points after it does not start a segment.  A closed path with N
// anchors yields N segments, the last one ending at the head.
func (p *CurvePath) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if p.count < 4 {
			return
		}
		limit := math.MaxInt
		if p.closed {
			limit = p.count / 3
		}
		start := p.head
		for range limit {
			seg, ok := p.segmentAt(start)
			if !ok {
				return
			}
			if !yield(seg) {
				return
			}
			start = seg[3]
		}
	}
}

// segmentAt collects the four points starting at r.
func (p *CurvePath) segmentAt(r PointRef) (Segment, bool) {
	var seg Segment
	for i := range seg {
		if r == 0 {
			return seg, false
		}
		seg[i] = r
		if i < 3 {
			r = p.nodes[r-1].next
		}
	}
	return seg, true
}

// Controls returns the coordinates of the four points of seg.
func (p *CurvePath) Controls(seg Segment) [4]vec.Vec2 {
	var ctl [4]vec.Vec2
	for i, r := range seg {
		n := p.node(r)
		if n == nil {
			panic("bezsel: segment has fewer than 4 points")
		}
		ctl[i] = n.Vec2
	}
	return ctl
}

// Bounds returns the bounding box of all anchor and control points.
// The curve itself always lies inside this box.
func (p *CurvePath) Bounds() rect.Rect {
	if p.count == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, pt := range p.Points() {
		b.LLx = min(b.LLx, pt.X)
		b.LLy = min(b.LLy, pt.Y)
		b.URx = max(b.URx, pt.X)
		b.URy = max(b.URy, pt.Y)
	}
	return b
}

// ToPath converts p into a path made of one cubic Bézier curve per
// segment.
func (p *CurvePath) ToPath() *path.Data {
	d := &path.Data{}
	started := false
	for seg := range p.Segments() {
		ctl := p.Controls(seg)
		if !started {
			d = d.MoveTo(ctl[0])
			started = true
		}
		d = d.CubeTo(ctl[1], ctl[2], ctl[3])
	}
	if started && p.closed {
		d = d.Close()
	}
	return d
}

// minRemoveCount is the largest path length for which RemovePointAt
// refuses to remove a point.  The smallest closed curve has two anchors
// and four controls.
const minRemoveCount = 7
