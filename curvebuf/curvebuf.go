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

// Package curvebuf reads and writes curve buffers, the line-oriented text
// format in which a selection curve is saved.
//
// A curve buffer looks like this:
//
//	Name: outline
//	#POINTS: 6
//	CLOSED: 1
//	DRAW: 5
//	STATE: 4
//	TYPE: 1 X: 10 Y: 10
//	TYPE: 2 X: 30 Y: 10
//	...
//
// There is one TYPE line per point, in path order.  TYPE is 1 for anchor
// points and 2 for control points.  Coordinates are integers in image
// space.
package curvebuf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	bezsel "github.com/GNOME/gimp-sub073"
)

// ErrFormat is wrapped by all errors caused by malformed input.
var ErrFormat = errors.New("curvebuf: malformed curve buffer")

// Point is one saved point.
type Point struct {
	Kind bezsel.Kind
	X, Y int
}

// Buffer is the decoded form of a curve buffer.
type Buffer struct {
	Name   string
	Closed bool

	// Draw and State record the editor's display flags and tool state at
	// the time of saving.  They are carried through unchanged.
	Draw  int
	State int

	Points []Point
}

// Editor states stored in the STATE field.
const (
	StateStart = 1 // no points yet
	StateAdd   = 2 // points are being appended
	StateEdit  = 4 // the curve is closed and can be edited
)

// Display flags stored in the DRAW field.
const (
	DrawCurve   = 1
	DrawCurrent = 2
	DrawHandles = 4
	DrawAll     = DrawCurve | DrawHandles
)

// FromPath converts p into a buffer.  Coordinates are rounded to the
// nearest integer.
func FromPath(name string, p *bezsel.CurvePath) *Buffer {
	b := &Buffer{
		Name:   name,
		Closed: p.Closed(),
		Draw:   DrawAll,
	}
	switch {
	case p.Len() == 0:
		b.State = StateStart
	case p.Closed():
		b.State = StateEdit
	default:
		b.State = StateAdd
	}
	b.Points = make([]Point, 0, p.Len())
	for _, pt := range p.Points() {
		b.Points = append(b.Points, Point{
			Kind: pt.Kind,
			X:    int(math.Floor(pt.X + 0.5)),
			Y:    int(math.Floor(pt.Y + 0.5)),
		})
	}
	return b
}

// Path rebuilds the curve by adding the points in order, and closes it if
// the buffer is marked as closed.
func (b *Buffer) Path() *bezsel.CurvePath {
	p := bezsel.NewCurvePath()
	for _, pt := range b.Points {
		p.AddPoint(pt.Kind, float64(pt.X), float64(pt.Y))
	}
	if b.Closed {
		p.Close()
	}
	return p
}

// Decode reads a curve buffer from r.
//
// The header lines must appear in the order shown in the package
// documentation.  Point kinds must follow the pattern of a curve path:
// an anchor first, then every third point an anchor, all others
// controls.
func Decode(r io.Reader) (*Buffer, error) {
	s := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		for s.Scan() {
			lineNo++
			line := strings.TrimSpace(s.Text())
			if line != "" {
				return line, true
			}
		}
		return "", false
	}

	b := &Buffer{}
	var count, closed int
	header := []struct {
		key string
		int *int
	}{
		{"Name:", nil},
		{"#POINTS:", &count},
		{"CLOSED:", &closed},
		{"DRAW:", &b.Draw},
		{"STATE:", &b.State},
	}
	for _, h := range header {
		line, ok := next()
		if !ok {
			if err := s.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: missing %q line", ErrFormat, h.key)
		}
		rest, ok := strings.CutPrefix(line, h.key)
		if !ok {
			return nil, fmt.Errorf("%w: line %d: expected %q", ErrFormat, lineNo, h.key)
		}
		rest = strings.TrimSpace(rest)
		if h.int == nil {
			b.Name = rest
			continue
		}
		v, err := strconv.Atoi(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, lineNo, err)
		}
		*h.int = v
	}

	if count < 0 {
		return nil, fmt.Errorf("%w: negative point count %d", ErrFormat, count)
	}
	switch closed {
	case 0:
	case 1:
		b.Closed = true
	default:
		return nil, fmt.Errorf("%w: CLOSED must be 0 or 1, not %d", ErrFormat, closed)
	}
	if b.Closed && (count < 6 || count%3 != 0) {
		return nil, fmt.Errorf("%w: closed curve with %d points", ErrFormat, count)
	}

	b.Points = make([]Point, 0, min(count, 1<<16))
	for i := range count {
		line, ok := next()
		if !ok {
			if err := s.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: got %d of %d points", ErrFormat, i, count)
		}
		var kind, x, y int
		if _, err := fmt.Sscanf(line, "TYPE: %d X: %d Y: %d", &kind, &x, &y); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, lineNo, err)
		}
		want := bezsel.Control
		if i%3 == 0 {
			want = bezsel.Anchor
		}
		if bezsel.Kind(kind) != want {
			return nil, fmt.Errorf("%w: line %d: point %d has type %d, want %d",
				ErrFormat, lineNo, i, kind, want)
		}
		b.Points = append(b.Points, Point{Kind: want, X: x, Y: y})
	}

	if line, ok := next(); ok {
		return nil, fmt.Errorf("%w: line %d: unexpected %q", ErrFormat, lineNo, line)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

// Encode writes b to w.
func Encode(w io.Writer, b *Buffer) error {
	bw := bufio.NewWriter(w)
	closed := 0
	if b.Closed {
		closed = 1
	}
	if strings.ContainsAny(b.Name, "\r\n") {
		return fmt.Errorf("%w: name %q spans several lines", ErrFormat, b.Name)
	}
	fmt.Fprintf(bw, "Name: %s\n", b.Name)
	fmt.Fprintf(bw, "#POINTS: %d\n", len(b.Points))
	fmt.Fprintf(bw, "CLOSED: %d\n", closed)
	fmt.Fprintf(bw, "DRAW: %d\n", b.Draw)
	fmt.Fprintf(bw, "STATE: %d\n", b.State)
	for _, pt := range b.Points {
		fmt.Fprintf(bw, "TYPE: %d X: %d Y: %d\n", pt.Kind, pt.X, pt.Y)
	}
	return bw.Flush()
}
