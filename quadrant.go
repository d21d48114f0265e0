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
	"iter"
	"strings"
)

// Direction is one of the four orthogonal directions on the grid.
type Direction uint8

// The y axis points down.
const (
	Up Direction = iota
	Right
	Down
	Left
)

// Offset returns the grid offset of a step in direction d.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		return -1, 0
	}
}

func (d Direction) String() string {
	return [...]string{"up", "right", "down", "left"}[d]
}

// Quadrant is one of the four corner regions of a grid cell.
type Quadrant uint8

// Quadrants in clockwise order, starting at the top left.
const (
	TopLeft Quadrant = iota
	TopRight
	BottomRight
	BottomLeft
)

// Directions returns the vertical and the horizontal direction in which
// a shape filling the quadrant up to the cell corner touches a neighbour.
func (q Quadrant) Directions() [2]Direction {
	switch q {
	case TopLeft:
		return [2]Direction{Up, Left}
	case TopRight:
		return [2]Direction{Up, Right}
	case BottomRight:
		return [2]Direction{Down, Right}
	default:
		return [2]Direction{Down, Left}
	}
}

// Mirror returns the quadrant of the neighbouring cell in direction d
// which meets q across the shared cell edge.
func (q Quadrant) Mirror(d Direction) Quadrant {
	switch d {
	case Up, Down:
		// reflect vertically: TopLeft <-> BottomLeft, TopRight <-> BottomRight
		return 3 - q
	default:
		// reflect horizontally: TopLeft <-> TopRight, BottomRight <-> BottomLeft
		return q ^ 1
	}
}

// Offset returns the diagonal grid offset towards the cell corner of q.
func (q Quadrant) Offset() (dx, dy int) {
	switch q {
	case TopLeft:
		return -1, -1
	case TopRight:
		return 1, -1
	case BottomRight:
		return 1, 1
	default:
		return -1, 1
	}
}

func (q Quadrant) String() string {
	return [...]string{"top-left", "top-right", "bottom-right", "bottom-left"}[q]
}

// QuadrantSet is a set of quadrants.
type QuadrantSet uint8

// AllQuadrants contains all four quadrants.
const AllQuadrants QuadrantSet = 1<<TopLeft | 1<<TopRight | 1<<BottomRight | 1<<BottomLeft

// Quadrants returns the set containing the given quadrants.
func Quadrants(qq ...Quadrant) QuadrantSet {
	var s QuadrantSet
	for _, q := range qq {
		s = s.With(q)
	}
	return s
}

// Has reports whether q is in s.
func (s QuadrantSet) Has(q Quadrant) bool {
	return s&(1<<q) != 0
}

// With returns s with q added.
func (s QuadrantSet) With(q Quadrant) QuadrantSet {
	return s | 1<<q
}

// IsEmpty reports whether s contains no quadrants.
func (s QuadrantSet) IsEmpty() bool {
	return s == 0
}

// All iterates over the quadrants in s in clockwise order.
func (s QuadrantSet) All() iter.Seq[Quadrant] {
	return func(yield func(Quadrant) bool) {
		for q := TopLeft; q <= BottomLeft; q++ {
			if s.Has(q) && !yield(q) {
				return
			}
		}
	}
}

func (s QuadrantSet) String() string {
	var parts []string
	for q := range s.All() {
		parts = append(parts, q.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}
