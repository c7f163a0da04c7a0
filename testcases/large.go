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

// largeCases contains test cases on canvases big enough that the
// per-row buffers dominate the work.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Knots:  rectangle(50, 50, 462, 462),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_circle",
		Knots:  circle(256, 256, 200),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_diamond",
		Knots:  polygon(pt(256, 76), pt(436, 256), pt(256, 436), pt(76, 256)),
		Width:  512,
		Height: 512,
	},

	// Shape extending past all four sides of the canvas
	{
		Name:   "large_clipped",
		Knots:  rectangle(-100, -40, 612, 400),
		Width:  512,
		Height: 512,
	},
}
