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

package edit

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func (s *Session) screen() matrix.Matrix {
	if s.Screen == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return s.Screen
}

// toScreen maps an image position to the screen.
func (s *Session) toScreen(v vec.Vec2) vec.Vec2 {
	m := s.screen()
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// toImage maps a screen position back to the image.
func (s *Session) toImage(x, y float64) vec.Vec2 {
	m := s.screen()
	return s.toImageDelta(x-m[4], y-m[5])
}

// toImageDelta maps a screen displacement to an image displacement.
// A singular screen matrix maps every displacement to zero.
func (s *Session) toImageDelta(dx, dy float64) vec.Vec2 {
	m := s.screen()
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 {
		return vec.Vec2{}
	}
	return vec.Vec2{
		X: (m[3]*dx - m[2]*dy) / det,
		Y: (m[0]*dy - m[1]*dx) / det,
	}
}
