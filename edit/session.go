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

// Package edit implements an editing session for a selection curve.
//
// A [Session] owns one curve and the state an interactive tool keeps
// between pointer events: the current anchor and control point, the map
// from image to screen coordinates and the pick tolerance.  All
// coordinates passed to Session methods are screen coordinates.
package edit

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	bezsel "github.com/GNOME/gimp-sub073"
	"github.com/GNOME/gimp-sub073/curvebuf"
)

// Session is the editing state for a single curve.
//
// A Session is not safe for concurrent use.
type Session struct {
	// Screen maps image coordinates to screen coordinates.  The zero
	// matrix is treated as the identity.
	Screen matrix.Matrix

	// HalfWidth is the pick tolerance, in screen pixels.
	HalfWidth float64

	// Subdivisions is the number of tessellation steps per segment used
	// when inserting and converting.
	Subdivisions int

	// Supersample is passed on to the rasterizer by Convert.
	Supersample int

	path    *bezsel.CurvePath
	anchor  bezsel.PointRef
	control bezsel.PointRef
	state   int
}

// NewSession returns a session with an empty curve, shown at the given
// screen transformation.
func NewSession(screen matrix.Matrix) *Session {
	return &Session{
		Screen:       screen,
		HalfWidth:    DefaultHalfWidth,
		Subdivisions: bezsel.DefaultSubdivisions,
		Supersample:  bezsel.DefaultSupersample,
		path:         bezsel.NewCurvePath(),
		state:        curvebuf.StateStart,
	}
}

// Path returns the curve being edited.
func (s *Session) Path() *bezsel.CurvePath {
	return s.path
}

// Current returns the current anchor and control point.  Either may be
// the null reference.
func (s *Session) Current() (anchor, control bezsel.PointRef) {
	return s.anchor, s.control
}

// State returns the tool state, one of the curvebuf.State* constants.
func (s *Session) State() int {
	return s.state
}

// Add appends a new anchor at the screen position (x, y), together with
// its control points.  The first anchor gets only an after-control;
// later anchors get a before-control and an after-control.  All new
// points start out at the anchor position.
//
// Add returns false once the curve is closed.
func (s *Session) Add(x, y float64) (bezsel.PointRef, bool) {
	if s.path.Closed() {
		return 0, false
	}
	v := s.toImage(x, y)
	if s.path.Len() > 0 {
		s.path.AddPoint(bezsel.Control, v.X, v.Y)
	}
	s.anchor = s.path.AddPoint(bezsel.Anchor, v.X, v.Y)
	s.control = s.path.AddPoint(bezsel.Control, v.X, v.Y)
	s.state = curvebuf.StateAdd
	return s.anchor, true
}

// SetHandles moves the after-control of the current anchor to the screen
// position (x, y) and places its before-control opposite, so that the
// curve passes smoothly through the anchor.
func (s *Session) SetHandles(x, y float64) bool {
	a, ok := s.path.Point(s.anchor)
	if !ok {
		return false
	}
	out := s.toImage(x, y)
	in := a.Vec2.Mul(2).Sub(out)

	if next := s.path.Next(s.anchor); s.isControl(next) {
		s.moveTo(next, out)
		s.control = next
	}
	if prev := s.path.Prev(s.anchor); s.isControl(prev) {
		s.moveTo(prev, in)
	}
	return true
}

// Pick returns the first point, in path order, whose screen position is
// within HalfWidth of (x, y) in both directions.  The point becomes the
// current anchor, or the current control and the anchor owning it.
func (s *Session) Pick(x, y float64) (bezsel.PointRef, bool) {
	return s.pick(x, y, false)
}

func (s *Session) pick(x, y float64, anchorsOnly bool) (bezsel.PointRef, bool) {
	for r, pt := range s.path.Points() {
		if anchorsOnly && pt.Kind != bezsel.Anchor {
			continue
		}
		screen := bezsel.Point{Kind: pt.Kind, Vec2: s.toScreen(pt.Vec2)}
		if !bezsel.HitTest(screen, x, y, s.HalfWidth) {
			continue
		}
		if pt.Kind == bezsel.Anchor {
			s.anchor = r
			s.control = 0
		} else {
			s.control = r
			s.anchor = s.owner(r)
		}
		return r, true
	}
	return 0, false
}

// Drag moves the point r by the screen distance (dx, dy).  Moving an
// anchor also moves the control points it owns.
func (s *Session) Drag(r bezsel.PointRef, dx, dy float64) {
	pt, ok := s.path.Point(r)
	if !ok {
		return
	}
	d := s.toImageDelta(dx, dy)
	s.path.OffsetPoint(r, d.X, d.Y)
	if pt.Kind != bezsel.Anchor {
		return
	}
	if prev := s.path.Prev(r); s.isControl(prev) {
		s.path.OffsetPoint(prev, d.X, d.Y)
	}
	if next := s.path.Next(r); s.isControl(next) {
		s.path.OffsetPoint(next, d.X, d.Y)
	}
}

// Insert adds an anchor where the curve passes within HalfWidth of the
// screen position (x, y).  Segments are tried in path order and the first
// one containing a close enough sample is split.
func (s *Session) Insert(x, y float64) (bezsel.PointRef, bool) {
	for seg := range s.path.Segments() {
		a, ok := s.path.InsertOnSegment(seg[0], x, y, s.HalfWidth, s.Subdivisions, s.screen())
		if ok {
			s.anchor = a
			s.control = 0
			return a, true
		}
	}
	return 0, false
}

// Remove deletes the anchor at the screen position (x, y), together with
// two control points.  It returns false if there is no anchor at (x, y)
// or if the curve is too short to lose a segment.
func (s *Session) Remove(x, y float64) bool {
	r, ok := s.pick(x, y, true)
	if !ok {
		return false
	}
	if !s.path.RemovePointAt(r) {
		return false
	}
	s.anchor = 0
	s.control = 0
	if s.path.Closed() {
		s.anchor = s.path.Head()
	}
	return true
}

// Close finishes the curve.  If the last anchor still lacks the control
// point before the first anchor, one is added, mirroring the first
// anchor's after-control.  Curves with fewer than two anchors cannot be
// closed.
func (s *Session) Close() bool {
	if s.path.Closed() {
		return true
	}
	n := s.path.Len()
	if n < 5 {
		return false
	}
	if n%3 == 2 {
		head, _ := s.path.Point(s.path.Head())
		out, _ := s.path.Point(s.path.Next(s.path.Head()))
		in := head.Vec2.Mul(2).Sub(out.Vec2)
		s.path.AddPoint(bezsel.Control, in.X, in.Y)
	}
	if s.path.Len()%3 != 0 {
		return false
	}
	s.path.Close()
	s.state = curvebuf.StateEdit
	s.anchor = s.path.Head()
	s.control = 0
	return true
}

// Convert rasterizes the closed curve into a mask of the given size, in
// image coordinates.  It returns false if the curve is not closed.
func (s *Session) Convert(width, height int, antialias bool) (*bezsel.Mask, bool) {
	if !s.path.Closed() {
		return nil, false
	}
	r := bezsel.NewRasterizer(width, height)
	r.Subdivisions = s.Subdivisions
	r.Supersample = s.Supersample
	r.Antialias = antialias
	return r.Rasterize(s.path), true
}

// Save returns the curve as a curve buffer.
func (s *Session) Save(name string) *curvebuf.Buffer {
	b := curvebuf.FromPath(name, s.path)
	b.State = s.state
	return b
}

// Load replaces the curve with the one stored in b.
func (s *Session) Load(b *curvebuf.Buffer) {
	s.path = b.Path()
	s.anchor = 0
	s.control = 0
	switch {
	case s.path.Len() == 0:
		s.state = curvebuf.StateStart
	case s.path.Closed():
		s.state = curvebuf.StateEdit
		s.anchor = s.path.Head()
	default:
		s.state = curvebuf.StateAdd
		s.anchor = s.lastAnchor()
		s.control = s.path.Tail()
	}
}

func (s *Session) lastAnchor() bezsel.PointRef {
	for r := s.path.Tail(); r != 0; r = s.path.Prev(r) {
		if pt, _ := s.path.Point(r); pt.Kind == bezsel.Anchor {
			return r
		}
	}
	return 0
}

// owner returns the anchor a control point belongs to.
func (s *Session) owner(c bezsel.PointRef) bezsel.PointRef {
	for _, r := range []bezsel.PointRef{s.path.Prev(c), s.path.Next(c)} {
		if pt, ok := s.path.Point(r); ok && pt.Kind == bezsel.Anchor {
			return r
		}
	}
	return 0
}

func (s *Session) isControl(r bezsel.PointRef) bool {
	pt, ok := s.path.Point(r)
	return ok && pt.Kind == bezsel.Control
}

func (s *Session) moveTo(r bezsel.PointRef, v vec.Vec2) {
	pt, _ := s.path.Point(r)
	s.path.OffsetPoint(r, v.X-pt.X, v.Y-pt.Y)
}

// DefaultHalfWidth is the default pick tolerance in screen pixels.
const DefaultHalfWidth = 4
