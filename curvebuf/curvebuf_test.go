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

package curvebuf

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	bezsel "github.com/GNOME/gimp-sub073"
)

const square = `Name: square
#POINTS: 12
CLOSED: 1
DRAW: 5
STATE: 4
TYPE: 1 X: 10 Y: 10
TYPE: 2 X: 20 Y: 10
TYPE: 2 X: 30 Y: 10
TYPE: 1 X: 40 Y: 10
TYPE: 2 X: 40 Y: 20
TYPE: 2 X: 40 Y: 30
TYPE: 1 X: 40 Y: 40
TYPE: 2 X: 30 Y: 40
TYPE: 2 X: 20 Y: 40
TYPE: 1 X: 10 Y: 40
TYPE: 2 X: 10 Y: 30
TYPE: 2 X: 10 Y: 20
`

func TestDecode(t *testing.T) {
	b, err := Decode(strings.NewReader(square))
	if err != nil {
		t.Fatal(err)
	}
	if b.Name != "square" || !b.Closed || b.Draw != DrawAll || b.State != StateEdit {
		t.Errorf("unexpected header %+v", b)
	}
	if len(b.Points) != 12 {
		t.Fatalf("%d points, want 12", len(b.Points))
	}
	want := Point{Kind: bezsel.Control, X: 40, Y: 20}
	if d := cmp.Diff(want, b.Points[4]); d != "" {
		t.Error(d)
	}
}

func TestRoundTrip(t *testing.T) {
	b, err := Decode(strings.NewReader(square))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Encode(buf, b); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(square, buf.String()); d != "" {
		t.Error(d)
	}
}

func TestEncodeMultiLineName(t *testing.T) {
	b, err := Decode(strings.NewReader(square))
	if err != nil {
		t.Fatal(err)
	}
	b.Name = "two\nlines"
	buf := &bytes.Buffer{}
	if err := Encode(buf, b); !errors.Is(err, ErrFormat) {
		t.Errorf("got error %v, want ErrFormat", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes", buf.Len())
	}
}

func TestDecodeLenient(t *testing.T) {
	in := "\nName:   spaced name  \n#POINTS: 0\nCLOSED: 0\nDRAW: 0\nSTATE: 1\n\n"
	b, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if b.Name != "spaced name" || b.Closed || len(b.Points) != 0 {
		t.Errorf("unexpected buffer %+v", b)
	}
}

func TestDecodeErrors(t *testing.T) {
	header := "Name: x\n#POINTS: 4\nCLOSED: 0\nDRAW: 0\nSTATE: 2\n"
	closed := func(n int) string {
		return fmt.Sprintf("Name: x\n#POINTS: %d\nCLOSED: 1\nDRAW: 0\nSTATE: 4\n", n)
	}
	seg := "TYPE: 1 X: 0 Y: 0\nTYPE: 2 X: 1 Y: 0\nTYPE: 2 X: 2 Y: 0\n"
	cases := map[string]string{
		"empty":       "",
		"order":       "#POINTS: 4\nName: x\n",
		"count":       "Name: x\n#POINTS: many\n",
		"negative":    "Name: x\n#POINTS: -1\nCLOSED: 0\nDRAW: 0\nSTATE: 2\n",
		"closed flag": "Name: x\n#POINTS: 0\nCLOSED: 2\nDRAW: 0\nSTATE: 2\n",
		"short":       header + "TYPE: 1 X: 0 Y: 0\n",
		"bad type":    header + "TYPE: 3 X: 0 Y: 0\nTYPE: 2 X: 1 Y: 0\nTYPE: 2 X: 2 Y: 0\nTYPE: 1 X: 3 Y: 0\n",
		"pattern":     header + "TYPE: 1 X: 0 Y: 0\nTYPE: 1 X: 1 Y: 0\nTYPE: 2 X: 2 Y: 0\nTYPE: 1 X: 3 Y: 0\n",
		"garbled":     header + "TYPE: 1 X: zero Y: 0\n",
		"trailing":    header + "TYPE: 1 X: 0 Y: 0\nTYPE: 2 X: 1 Y: 0\nTYPE: 2 X: 2 Y: 0\nTYPE: 1 X: 3 Y: 0\nTYPE: 2 X: 4 Y: 0\n",
		"closed 3":    closed(3) + seg,
		"closed 10":   closed(10) + seg + seg + seg + "TYPE: 1 X: 9 Y: 0\n",
	}
	for name, in := range cases {
		_, err := Decode(strings.NewReader(in))
		if !errors.Is(err, ErrFormat) {
			t.Errorf("%s: got error %v, want ErrFormat", name, err)
		}
	}
}

func TestPath(t *testing.T) {
	b, err := Decode(strings.NewReader(square))
	if err != nil {
		t.Fatal(err)
	}
	p := b.Path()
	if !p.Closed() || p.Len() != 12 {
		t.Fatalf("closed=%t len=%d", p.Closed(), p.Len())
	}
	n := 0
	for range p.Segments() {
		n++
	}
	if n != 4 {
		t.Errorf("%d segments, want 4", n)
	}

	m := bezsel.Rasterize(p, 50, 50, 0, false)
	if m.At(25, 25) != 255 || m.At(5, 5) != 0 {
		t.Error("rasterized buffer does not cover the square")
	}
}

func TestFromPath(t *testing.T) {
	p := bezsel.NewCurvePath()
	p.AddPoint(bezsel.Anchor, 1.4, 2.5)
	p.AddPoint(bezsel.Control, -0.6, 7.49)

	b := FromPath("open", p)
	want := &Buffer{
		Name:  "open",
		Draw:  DrawAll,
		State: StateAdd,
		Points: []Point{
			{Kind: bezsel.Anchor, X: 1, Y: 3},
			{Kind: bezsel.Control, X: -1, Y: 7},
		},
	}
	if d := cmp.Diff(want, b); d != "" {
		t.Error(d)
	}

	if FromPath("", bezsel.NewCurvePath()).State != StateStart {
		t.Error("empty path not in start state")
	}

	sq, err := Decode(strings.NewReader(square))
	if err != nil {
		t.Fatal(err)
	}
	again := FromPath("square", sq.Path())
	if d := cmp.Diff(sq, again); d != "" {
		t.Error(d)
	}
}
