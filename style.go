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

import "fmt"

// ShapeKind is the basic form of a pixel shape.
type ShapeKind uint8

const (
	SquareShape ShapeKind = iota
	CircleShape
	RoundedShape
)

// Shape describes the shape drawn for one pixel.
type Shape struct {
	Kind ShapeKind

	// Corners lists the rounded corners of a RoundedShape.
	Corners QuadrantSet

	// Inverted selects the complement of the rounded corners within the
	// cell: only the areas between the corner arcs and the cell corners
	// are drawn.
	Inverted bool
}

// Square returns the square shape.
func Square() Shape { return Shape{Kind: SquareShape} }

// Circle returns the circle shape.
func Circle() Shape { return Shape{Kind: CircleShape} }

// RoundedCorners returns a square with the given corners rounded.
//
// Unlike [Square], the outline of the shape is split at the points where
// the corner arcs of neighbouring cells end, so that it can merge with
// inverted shapes next to it.
func RoundedCorners(corners QuadrantSet, inverted bool) Shape {
	return Shape{Kind: RoundedShape, Corners: corners, Inverted: inverted}
}

func (s Shape) String() string {
	switch s.Kind {
	case SquareShape:
		return "square"
	case CircleShape:
		return "circle"
	}
	if s.Inverted {
		return "inverted" + s.Corners.String()
	}
	return "rounded" + s.Corners.String()
}

// PixelStyle is a shape together with its size parameters.
type PixelStyle struct {
	Shape Shape

	// Margin is the part of the cell size left empty, split evenly
	// between opposite sides.  It is between 0 and 1.
	Margin Decimal

	// CornerRadius is the corner radius, relative to half the size of the
	// margined shape.  It is between 0 and 1.
	CornerRadius Decimal
}

// StandardPixel is a square filling the whole cell.
var StandardPixel = PixelStyle{Shape: Square()}

func (ps PixelStyle) String() string {
	return fmt.Sprintf("%s margin=%s radius=%s", ps.Shape, ps.Margin, ps.CornerRadius)
}

// Resolver decides which shape to draw for every cell of a grid.
// Decisions only depend on the cell and its eight neighbours.
type Resolver struct {
	grid   Grid
	size   int
	safe   []IntRect
	style  Style
	margin Decimal
	radius Decimal
	all    bool

	// radiusPercent is kept to distinguish the special values 0 and 100.
	radiusPercent uint
}

// NewResolver returns a resolver for the grid.
// The options must have passed [Options.Validate].
func NewResolver(g Grid, opts Options) *Resolver {
	return &Resolver{
		grid:          g,
		size:          g.Size(),
		safe:          g.SafeAreas(),
		style:         opts.Style,
		margin:        DecimalPercent(opts.PixelMargin),
		radius:        DecimalPercent(opts.CornerRadius),
		all:           opts.IgnoreSafeAreas,
		radiusPercent: opts.CornerRadius,
	}
}

// Resolve returns the style for the cell at p.
// The second return value is false if nothing is drawn for the cell.
func (r *Resolver) Resolve(p IntPoint) (PixelStyle, bool) {
	on := r.pixel(p)
	shape, ok := r.shape(p, on)
	if !ok {
		return PixelStyle{}, false
	}

	if r.all || !r.inSafeArea(p) {
		return PixelStyle{Shape: shape, Margin: r.margin, CornerRadius: r.radius}, true
	}

	// Safe areas stay undistorted: no margin, no rounding, no holes.
	// The radius is kept so that the outline is split at the same points
	// as the styled neighbours.
	if !on {
		return PixelStyle{}, false
	}
	if shape.Kind == SquareShape {
		return StandardPixel, true
	}
	return PixelStyle{Shape: RoundedCorners(0, false), CornerRadius: r.radius}, true
}

func (r *Resolver) shape(p IntPoint, on bool) (Shape, bool) {
	switch r.style {
	case Standard:
		return Square(), on

	case Dots:
		switch r.radiusPercent {
		case 0:
			return Square(), on
		case 100:
			return Circle(), on
		default:
			return RoundedCorners(AllQuadrants, false), on
		}

	case Holes:
		if on {
			return RoundedCorners(0, false), true
		}
		if r.radiusPercent == 0 {
			return Shape{}, false
		}
		return RoundedCorners(AllQuadrants, true), true

	default: // LiquidDots, LiquidHoles
		corners := r.liquidCorners(p, on, r.style == LiquidHoles)
		return RoundedCorners(corners, !on), true
	}
}

// liquidCorners returns the corners of the cell at p which lie at a
// junction of regions.  A corner is rounded if both orthogonal neighbours
// towards it differ from the cell, and either the diagonal neighbour
// differs too, or the cell's state is not the one being bridged.
func (r *Resolver) liquidCorners(p IntPoint, on, bridge bool) QuadrantSet {
	var corners QuadrantSet
	for q := range AllQuadrants.All() {
		dx, dy := q.Offset()
		round := r.pixel(p.Offset(dx, 0)) != on &&
			r.pixel(p.Offset(0, dy)) != on &&
			(r.pixel(p.Offset(dx, dy)) != on || on != bridge)
		if round {
			corners = corners.With(q)
		}
	}
	return corners
}

// pixel returns the state of the cell at p.  Cells outside the grid are
// unset.
func (r *Resolver) pixel(p IntPoint) bool {
	if p.X < 0 || p.Y < 0 || p.X >= r.size || p.Y >= r.size {
		return false
	}
	return r.grid.Pixel(p)
}

func (r *Resolver) inSafeArea(p IntPoint) bool {
	for _, a := range r.safe {
		if a.Contains(p) {
			return true
		}
	}
	return false
}
