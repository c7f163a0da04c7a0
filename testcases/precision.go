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

var precisionCases = []TestCase{
	// Subpixel positioning
	{
		Name:   "subpixel_offset_00",
		Knots:  offsetRectangle(20, 20, 24, 24, 0.0),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_25",
		Knots:  offsetRectangle(20, 20, 24, 24, 0.25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_50",
		Knots:  offsetRectangle(20, 20, 24, 24, 0.5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_75",
		Knots:  offsetRectangle(20, 20, 24, 24, 0.75),
		Width:  64,
		Height: 64,
	},

	// Shapes smaller than a pixel row
	{
		Name:   "tiny_square",
		Knots:  rectangle(30.2, 30.2, 31.8, 31.8),
		Width:  64,
		Height: 64,
	},
}

// offsetRectangle builds a w×h rectangle at (x, y), shifted by d in both
// directions.
func offsetRectangle(x, y, w, h, d float64) []Knot {
	return rectangle(x+d, y+d, x+d+w, y+d+h)
}
