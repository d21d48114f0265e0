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

// Package testcases holds small grids together with drawing options,
// covering the different pixel styles and their corner cases.
package testcases

import "seehuhn.de/go/gridsvg"

// TestCase defines a single drawing test.
type TestCase struct {
	Name    string // lowercase a-z and _ only
	Grid    *gridsvg.BoolGrid
	Options gridsvg.Options
}

// options returns the default options with the given style, margin and
// corner radius.
func options(style gridsvg.Style, margin, radius uint) gridsvg.Options {
	opts := gridsvg.DefaultOptions()
	opts.Style = style
	opts.PixelMargin = margin
	opts.CornerRadius = radius
	return opts
}

// grid is a shortcut for gridsvg.ParseGrid.
func grid(rows ...string) *gridsvg.BoolGrid {
	return gridsvg.ParseGrid(rows...)
}

// withSafe returns g with the given safe areas.
func withSafe(g *gridsvg.BoolGrid, safe ...gridsvg.IntRect) *gridsvg.BoolGrid {
	g.Safe = safe
	return g
}

var (
	checker = []string{
		"#.#",
		".#.",
		"#.#",
	}
	ring = []string{
		"###",
		"#.#",
		"###",
	}
	blob = []string{
		".##..",
		"####.",
		".#..#",
		".##.#",
		"...##",
	}
	finder = []string{
		"#######..",
		"#.....#.#",
		"#.###.#..",
		"#.###.#.#",
		"#.###.#..",
		"#.....#.#",
		"#######..",
		".........",
		"#.##.#.##",
	}
)
