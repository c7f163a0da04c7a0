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
	"math"
	"slices"
)

// Rasterizer converts closed curve paths into coverage masks by scan
// conversion of the tessellated boundary.  Create one instance and reuse
// it for multiple paths.  Internal buffers grow as needed but never
// shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Width and Height give the size of the output in pixels.
	Width, Height int

	// Subdivisions is the number of forward-difference steps per segment.
	// Values <= 0 select DefaultSubdivisions.
	Subdivisions int

	// Antialias enables supersampling.  Without it every pixel is either
	// 0 or 255.
	Antialias bool

	// Supersample is the number of sub-samples per pixel along each axis
	// used when Antialias is set.  Values < 1 select DefaultSupersample.
	Supersample int

	// Internal buffers (reused across calls)
	poly      []image.Point // closed boundary polyline, in sample coordinates
	scanlines [][]int       // sorted x crossings, one list per sample row
	acc       []int         // coverage accumulated over the sub-rows of one row
	row       []byte        // output row handed to emit
}

// NewRasterizer returns a Rasterizer for output of the given size, with
// default values for the other parameters.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		Width:        width,
		Height:       height,
		Subdivisions: DefaultSubdivisions,
		Supersample:  DefaultSupersample,
	}
}

// Reset sets the output size and restores all other parameters to their
// defaults, keeping the capacity of the internal buffers.
func (r *Rasterizer) Reset(width, height int) {
	r.Width = width
	r.Height = height
	r.Subdivisions = DefaultSubdivisions
	r.Antialias = false
	r.Supersample = DefaultSupersample

	r.poly = r.poly[:0]
	r.acc = r.acc[:0]
	r.row = r.row[:0]
}

// Rasterize returns the coverage mask of the closed path p.
// See [Rasterizer.Fill] for the conditions under which it panics.
func Rasterize(p *CurvePath, width, height, subdivisions int, antialias bool) *Mask {
	r := NewRasterizer(width, height)
	r.Subdivisions = subdivisions
	r.Antialias = antialias
	return r.Rasterize(p)
}

// Rasterize returns a new coverage mask of size Width×Height for the
// closed path p.
func (r *Rasterizer) Rasterize(p *CurvePath) *Mask {
	m := NewMask(r.Width, r.Height)
	r.Fill(p, func(y int, coverage []byte) {
		copy(m.Data[y*m.Width:(y+1)*m.Width], coverage)
	})
	return m
}

// Fill scan-converts the closed path p.  Coverage is delivered row by row
// via the emit callback; rows without any coverage are skipped.  The
// coverage slice passed to emit has length Width and is only valid for
// the duration of the callback.
//
// Fill panics if p is open, or if p is closed but its points do not form
// complete segments.
func (r *Rasterizer) Fill(p *CurvePath, emit func(y int, coverage []byte)) {
	if !p.Closed() {
		panic("bezsel: cannot rasterize an open path")
	}
	if p.Len() < 6 || p.Len()%3 != 0 {
		panic("bezsel: segment has fewer than 4 points")
	}
	if r.Width <= 0 || r.Height <= 0 {
		return
	}

	scale := 1
	if r.Antialias {
		scale = r.Supersample
		if scale < 1 {
			scale = DefaultSupersample
		}
	}
	width := r.Width * scale
	height := r.Height * scale

	// Tessellate and close the boundary
	r.poly = p.appendPolyline(r.poly[:0], r.Subdivisions, SupersampledSpace(scale))
	if len(r.poly) == 0 {
		return
	}
	r.poly = append(r.poly, r.poly[0])

	// Collect the crossings of every edge with every sample row
	r.scanlines = slices.Grow(r.scanlines[:0], height)[:height]
	for i := range r.scanlines {
		r.scanlines[i] = r.scanlines[i][:0]
	}
	for i := 1; i < len(r.poly); i++ {
		r.addEdge(r.poly[i-1], r.poly[i], height)
	}

	Logger().Debug("rasterizing path",
		"points", p.Len(),
		"vertices", len(r.poly),
		"antialias", r.Antialias,
		"width", r.Width,
		"height", r.Height)

	if r.Antialias {
		r.fillSupersampled(width, height, scale, emit)
	} else {
		r.fillAliased(width, height, emit)
	}
}

// addEdge records the crossings of the edge (p0, p1) with the sample rows
// in [0, height).  An edge from y1 to y2 > y1 crosses the rows y1, ...,
// y2-1, so a vertex shared by two edges is counted once.
func (r *Rasterizer) addEdge(p0, p1 image.Point, height int) {
	// Skip horizontal edges
	if p0.Y == p1.Y {
		return
	}
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	if p1.Y <= 0 || p0.Y >= height {
		return
	}

	// Clip to the raster, interpolating x at the cut
	x1, y1, x2, y2 := p0.X, p0.Y, p1.X, p1.Y
	if y1 < 0 {
		x1 = xAt(p0, p1, 0)
		y1 = 0
	}
	if y2 > height {
		x2 = xAt(p0, p1, height)
		y2 = height
	}
	if y1 == y2 {
		return
	}

	// Step one row at a time.  frac carries the fractional part of the x
	// advance, biased by dy/2 so that x is rounded to the nearest pixel.
	dy := y2 - y1
	dx := x2 - x1
	inc := 1
	if dx < 0 {
		inc = -1
		dx = -dx
	}
	whole, rem := dx/dy, dx%dy
	frac := dy / 2
	x := x1
	for y := y1; y < y2; y++ {
		r.insertCrossing(y, x)
		x += inc * whole
		frac += rem
		if frac >= dy {
			frac -= dy
			x += inc
		}
	}
}

// insertCrossing adds x to the sorted crossing list of row y.
func (r *Rasterizer) insertCrossing(y, x int) {
	line := r.scanlines[y]
	i, _ := slices.BinarySearch(line, x)
	r.scanlines[y] = slices.Insert(line, i, x)
}

// xAt returns the x coordinate of the line through p0 and p1 at height y.
func xAt(p0, p1 image.Point, y int) int {
	t := float64(y-p0.Y) / float64(p1.Y-p0.Y)
	return p0.X + int(math.Round(t*float64(p1.X-p0.X)))
}

// fillAliased writes 255 for every pixel between a pair of crossings.
func (r *Rasterizer) fillAliased(width, height int, emit func(y int, coverage []byte)) {
	r.row = slices.Grow(r.row[:0], width)[:width]
	for y := range height {
		line := r.scanlines[y]
		covered := false
		clear(r.row)
		for i := 0; i+1 < len(line); i += 2 {
			x0, x1 := clampSpan(line[i], line[i+1], width)
			for x := x0; x < x1; x++ {
				r.row[x] = 255
			}
			covered = covered || x0 < x1
		}
		checkParity(y, line)
		r.scanlines[y] = line[:0]

		if covered {
			emit(y, r.row)
		}
	}
}

// fillSupersampled accumulates 255 per covered sub-pixel over scale
// consecutive sub-rows, then averages each scale×scale block into one
// output pixel.
func (r *Rasterizer) fillSupersampled(width, height, scale int, emit func(y int, coverage []byte)) {
	r.acc = slices.Grow(r.acc[:0], width)[:width]
	r.row = slices.Grow(r.row[:0], r.Width)[:r.Width]
	covered := false
	area := scale * scale
	for y := range height {
		if y%scale == 0 {
			clear(r.acc)
			covered = false
		}

		line := r.scanlines[y]
		for i := 0; i+1 < len(line); i += 2 {
			x0, x1 := clampSpan(line[i], line[i+1], width)
			for x := x0; x < x1; x++ {
				r.acc[x] += 255
			}
			covered = covered || x0 < x1
		}
		checkParity(y, line)
		r.scanlines[y] = line[:0]

		if (y+1)%scale != 0 || !covered {
			continue
		}
		for j := range r.row {
			sum := 0
			for _, v := range r.acc[j*scale : (j+1)*scale] {
				sum += v
			}
			r.row[j] = byte(sum / area)
		}
		emit(y/scale, r.row)
	}
}

// clampSpan clamps the half-open interval [x0, x1) to [0, width].
func clampSpan(x0, x1, width int) (int, int) {
	x0 = min(max(x0, 0), width)
	x1 = min(max(x1, 0), width)
	return x0, x1
}

// checkParity reports rows where the boundary crosses an odd number of
// times.  The unpaired last crossing is ignored by the fill.
func checkParity(y int, line []int) {
	if len(line)%2 != 0 {
		Logger().Debug("odd number of crossings", "row", y, "crossings", len(line))
	}
}

// Default values for rasterizer parameters.
const (
	// DefaultSupersample is the number of sub-samples per pixel along each
	// axis in antialiased mode, giving 9 samples per pixel.
	DefaultSupersample = 3
)
