// seehuhn.de/go/gridsvg - vector outlines for pixel grids
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

// Package raster turns filled outlines into anti-aliased pixel coverage.
//
// It is used to preview documents as PNG images, and by the tests to
// compare the area covered by different outlines of the same shape.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rule is a fill rule.
type Rule uint8

const (
	// NonZero fills points with a non-zero winding number.
	NonZero Rule = iota

	// EvenOdd fills points with an odd winding number.
	EvenOdd
)

func (r Rule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// edge is a non-horizontal line segment in device coordinates,
// stored with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dir    float32 // +1 if the path runs downwards, -1 otherwise
	dxdy   float64
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser computes exact area coverage for filled paths.
// A Rasteriser can be reused for many paths; its buffers are kept
// between calls.
type Rasteriser struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip is the device-space region for which coverage is computed.
	// Its corners must have integer coordinates.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it.
	Flatness float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	bbox      rect.Rect
	bboxEmpty bool
}

// NewRasteriser returns a rasteriser with the identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters, keeping allocated buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// Fill computes the coverage of the interior of p.
//
// The coverage is passed to emit row by row, for the range of columns
// with non-zero coverage.  The slice is only valid during the call.
func (r *Rasteriser) Fill(p *path.Data, rule Rule, emit func(y, xMin int, coverage []float32)) {
	if !r.collectEdges(p) {
		return
	}

	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := float64(y + 1)

		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, top, bottom, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// collectEdges flattens p into device-space edges.  It reports whether
// any edges were found.
func (r *Rasteriser) collectEdges(p *path.Data) bool {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			// elevate to a cubic with the same shape
			c1 := current.Add(p.Coords[k].Sub(current).Mul(2.0 / 3))
			c2 := p.Coords[k+1].Add(p.Coords[k].Sub(p.Coords[k+1]).Mul(2.0 / 3))
			r.flattenCubic(current, c1, c2, p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	return len(r.edges) > 0
}

// flattenCubic approximates a cubic Bézier curve by line segments,
// using Wang's formula for the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3))
	m := max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		if i == n {
			pt = p3
		}
		r.addEdge(prev, pt)
		prev = pt
	}
}

// linear applies the linear part of the CTM.
func (r *Rasteriser) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

func (r *Rasteriser) device(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y + r.CTM[4],
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y + r.CTM[5],
	}
}

func (r *Rasteriser) addEdge(from, to vec.Vec2) {
	a := r.device(from)
	b := r.device(to)
	if math.Abs(b.Y-a.Y) < horizontalThreshold {
		return
	}

	dir := float32(1)
	if b.Y < a.Y {
		a, b = b, a
		dir = -1
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dir:  dir,
		dxdy: (b.X - a.X) / (b.Y - a.Y),
	})

	if r.bboxEmpty {
		r.bbox = rect.Rect{LLx: min(a.X, b.X), LLy: a.Y, URx: max(a.X, b.X), URy: b.Y}
		r.bboxEmpty = false
		return
	}
	r.bbox.LLx = min(r.bbox.LLx, a.X, b.X)
	r.bbox.URx = max(r.bbox.URx, a.X, b.X)
	r.bbox.LLy = min(r.bbox.LLy, a.Y)
	r.bbox.URy = max(r.bbox.URy, b.Y)
}

// accumulate adds the part of e between the scanlines top and bottom to
// the cover and area buffers.
//
// For every pixel, cover holds the signed height of the edges crossing
// the pixel and area the part of this height lying to the right of the
// edges.  The coverage of a pixel is the sum of the covers to its left
// plus its own area.
func (r *Rasteriser) accumulate(e *edge, top, bottom float64, xMin, xMax int) bool {
	y0 := max(top, e.y0)
	y1 := min(bottom, e.y1)
	if y1 <= y0 {
		return false
	}
	xa := e.xAt(y0)
	xb := e.xAt(y1)
	left, right := min(xa, xb), max(xa, xb)
	height := y1 - y0

	colLeft := int(math.Floor(left))
	colRight := int(math.Floor(right))
	if colLeft == colRight {
		r.deposit(colLeft, e.dir*float32(height), (left+right)/2, xMin, xMax)
		return true
	}

	for col := colLeft; col <= colRight; col++ {
		l := max(float64(col), left)
		h := min(float64(col+1), right)
		if h <= l {
			continue
		}
		dy := height * (h - l) / (right - left)
		r.deposit(col, e.dir*float32(dy), (l+h)/2, xMin, xMax)
	}
	return true
}

// deposit records a piece of edge with signed height v and mean x
// position x in column col.
func (r *Rasteriser) deposit(col int, v float32, x float64, xMin, xMax int) {
	switch {
	case col < xMin:
		r.cover[0] += v
		r.area[0] += v
	case col < xMax:
		i := col - xMin
		r.cover[i] += v
		r.area[i] += v * float32(float64(col+1)-x)
	}
}

// integrate turns the cover and area of one scanline into coverage
// values, stored in cover.
func integrate(cover, area []float32, rule Rule) {
	var acc float32
	for i := range cover {
		w := acc + area[i]
		acc += cover[i]
		if w < 0 {
			w = -w
		}
		if rule == EvenOdd {
			w = float32(math.Mod(float64(w), 2))
			if w > 1 {
				w = 2 - w
			}
		} else if w > 1 {
			w = 1
		}
		cover[i] = w
	}
}

// trimZeros returns the smallest sub-slice containing all non-zero values,
// together with its offset.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

const (
	defaultFlatness = 0.25

	// edges with smaller vertical extent do not contribute
	horizontalThreshold = 1e-10
)
