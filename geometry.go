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

package gridsvg

import (
	"fmt"
	"iter"
)

// IntPoint is the coordinate of a grid cell.
type IntPoint struct {
	X, Y int
}

// Offset returns the point shifted by (dx, dy).
func (p IntPoint) Offset(dx, dy int) IntPoint {
	return IntPoint{X: p.X + dx, Y: p.Y + dy}
}

// Less reports whether p comes before q in row-major order.
func (p IntPoint) Less(q IntPoint) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

func (p IntPoint) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// IntSize is the size of a rectangular region of grid cells.
type IntSize struct {
	Width, Height int
}

// NewIntSize returns the size width×height.
// Negative dimensions are a programming error and cause a panic.
func NewIntSize(width, height int) IntSize {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("gridsvg: invalid size %dx%d", width, height))
	}
	return IntSize{Width: width, Height: height}
}

// IsEmpty reports whether the size covers no cells.
func (s IntSize) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

// IntRect is a rectangular region of grid cells.
type IntRect struct {
	Origin IntPoint
	Size   IntSize
}

// Rect returns the rectangle with the given origin and size.
func Rect(x, y, width, height int) IntRect {
	return IntRect{Origin: IntPoint{X: x, Y: y}, Size: NewIntSize(width, height)}
}

// Contains reports whether p lies inside r.
func (r IntRect) Contains(p IntPoint) bool {
	return p.X >= r.Origin.X && p.X < r.Origin.X+r.Size.Width &&
		p.Y >= r.Origin.Y && p.Y < r.Origin.Y+r.Size.Height
}

// Points iterates over all points of r in row-major order.
func (r IntRect) Points() iter.Seq[IntPoint] {
	return func(yield func(IntPoint) bool) {
		for y := r.Origin.Y; y < r.Origin.Y+r.Size.Height; y++ {
			for x := r.Origin.X; x < r.Origin.X+r.Size.Width; x++ {
				if !yield(IntPoint{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// DecimalPoint is a point with exact fractional coordinates.
type DecimalPoint struct {
	X, Y Decimal
}

// Pt returns the point (x, y).
func Pt(x, y Decimal) DecimalPoint {
	return DecimalPoint{X: x, Y: y}
}

// Add returns the point translated by (dx, dy).
func (p DecimalPoint) Add(dx, dy Decimal) DecimalPoint {
	return DecimalPoint{X: p.X + dx, Y: p.Y + dy}
}

func (p DecimalPoint) String() string {
	return string(p.append(nil))
}

// append appends "x,y" to buf.
func (p DecimalPoint) append(buf []byte) []byte {
	buf = p.X.append(buf)
	buf = append(buf, ',')
	return p.Y.append(buf)
}
