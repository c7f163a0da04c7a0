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

import "image"

// Mask is a coverage mask in row-major order, one byte per pixel.
// 0 means not selected, 255 means fully selected.
type Mask struct {
	Width  int
	Height int
	Data   []byte
}

// NewMask returns an empty mask of the given size.
func NewMask(width, height int) *Mask {
	width = max(width, 0)
	height = max(height, 0)
	return &Mask{
		Width:  width,
		Height: height,
		Data:   make([]byte, width*height),
	}
}

// Bounds returns the rectangle covered by the mask.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// At returns the coverage at (x, y), or 0 outside the mask.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}
	return m.Data[y*m.Width+x]
}

// Set sets the coverage at (x, y).  Coordinates outside the mask are
// ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.Data[y*m.Width+x] = value
}

// Sum returns the total of all coverage values.
func (m *Mask) Sum() int {
	total := 0
	for _, v := range m.Data {
		total += int(v)
	}
	return total
}

// Alpha returns an image which shares its pixels with m.
func (m *Mask) Alpha() *image.Alpha {
	return &image.Alpha{
		Pix:    m.Data,
		Stride: m.Width,
		Rect:   m.Bounds(),
	}
}
