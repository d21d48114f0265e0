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

import "strings"

// Grid is a square boolean pixel matrix, for example a QR code symbol.
type Grid interface {
	// Size returns the number of cells along each side.
	Size() int

	// Pixel reports whether the cell at p is set.
	// It is only called for 0 <= p.X, p.Y < Size().
	Pixel(p IntPoint) bool

	// SafeAreas returns regions which are drawn without styling,
	// for example the position markers of a QR code.
	SafeAreas() []IntRect
}

// BoolGrid is a [Grid] backed by a slice of rows.
// Missing entries in short rows are unset.
type BoolGrid struct {
	Rows  [][]bool
	Safe  []IntRect
	Width int // size of the grid; if zero, len(Rows) is used
}

// ParseGrid builds a grid from rows of text, where '#', 'X' and '1' mark
// set pixels and every other character an unset one.
func ParseGrid(rows ...string) *BoolGrid {
	g := &BoolGrid{Rows: make([][]bool, len(rows))}
	for y, row := range rows {
		for _, c := range row {
			g.Rows[y] = append(g.Rows[y], strings.ContainsRune("#X1", c))
		}
		g.Width = max(g.Width, len(g.Rows[y]))
	}
	g.Width = max(g.Width, len(rows))
	return g
}

// Size implements the [Grid] interface.
func (g *BoolGrid) Size() int {
	if g.Width > 0 {
		return g.Width
	}
	return len(g.Rows)
}

// Pixel implements the [Grid] interface.
func (g *BoolGrid) Pixel(p IntPoint) bool {
	if p.Y < 0 || p.Y >= len(g.Rows) {
		return false
	}
	row := g.Rows[p.Y]
	return p.X >= 0 && p.X < len(row) && row[p.X]
}

// SafeAreas implements the [Grid] interface.
func (g *BoolGrid) SafeAreas() []IntRect {
	return g.Safe
}
