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

package testcases

import "seehuhn.de/go/gridsvg"

var holesCases = []TestCase{
	{
		Name:    "ring",
		Grid:    grid(ring...),
		Options: options(gridsvg.Holes, 0, 100),
	},
	{
		Name:    "ring_half_radius",
		Grid:    grid(ring...),
		Options: options(gridsvg.Holes, 0, 50),
	},
	{
		Name:    "zero_radius",
		Grid:    grid(blob...),
		Options: options(gridsvg.Holes, 0, 0),
	},
	{
		Name:    "blob",
		Grid:    grid(blob...),
		Options: options(gridsvg.Holes, 0, 100),
	},
	{
		Name:    "checker",
		Grid:    grid(checker...),
		Options: options(gridsvg.Holes, 0, 80),
	},
}

var liquidCases = []TestCase{
	{
		Name:    "dots_single",
		Grid:    grid("#"),
		Options: options(gridsvg.LiquidDots, 0, 100),
	},
	{
		Name:    "dots_diagonal",
		Grid:    grid("#.", ".#"),
		Options: options(gridsvg.LiquidDots, 0, 100),
	},
	{
		Name:    "holes_diagonal",
		Grid:    grid("#.", ".#"),
		Options: options(gridsvg.LiquidHoles, 0, 100),
	},
	{
		Name:    "dots_ring",
		Grid:    grid(ring...),
		Options: options(gridsvg.LiquidDots, 0, 100),
	},
	{
		Name:    "holes_ring",
		Grid:    grid(ring...),
		Options: options(gridsvg.LiquidHoles, 0, 100),
	},
	{
		Name:    "dots_checker",
		Grid:    grid(checker...),
		Options: options(gridsvg.LiquidDots, 0, 60),
	},
	{
		Name:    "holes_checker",
		Grid:    grid(checker...),
		Options: options(gridsvg.LiquidHoles, 0, 60),
	},
	{
		Name:    "dots_blob",
		Grid:    grid(blob...),
		Options: options(gridsvg.LiquidDots, 0, 100),
	},
	{
		Name:    "holes_blob",
		Grid:    grid(blob...),
		Options: options(gridsvg.LiquidHoles, 0, 100),
	},
	{
		Name:    "zero_radius",
		Grid:    grid(blob...),
		Options: options(gridsvg.LiquidHoles, 0, 0),
	},
}

var marginCases = []TestCase{
	{
		Name:    "standard",
		Grid:    grid(blob...),
		Options: options(gridsvg.Standard, 20, 100),
	},
	{
		Name:    "dots",
		Grid:    grid(blob...),
		Options: options(gridsvg.Dots, 20, 100),
	},
	{
		Name:    "dots_rounded",
		Grid:    grid(blob...),
		Options: options(gridsvg.Dots, 15, 40),
	},
	{
		Name:    "holes",
		Grid:    grid(blob...),
		Options: options(gridsvg.Holes, 10, 100),
	},
	{
		Name:    "liquid_dots",
		Grid:    grid(blob...),
		Options: options(gridsvg.LiquidDots, 10, 100),
	},
	{
		Name:    "liquid_holes",
		Grid:    grid(blob...),
		Options: options(gridsvg.LiquidHoles, 25, 75),
	},
	{
		Name:    "full",
		Grid:    grid(blob...),
		Options: options(gridsvg.Dots, 100, 100),
	},
}

var safeCases = []TestCase{
	{
		Name:    "dots",
		Grid:    withSafe(grid(finder...), gridsvg.Rect(0, 0, 7, 7)),
		Options: options(gridsvg.Dots, 0, 100),
	},
	{
		Name:    "dots_margin",
		Grid:    withSafe(grid(finder...), gridsvg.Rect(0, 0, 7, 7)),
		Options: options(gridsvg.Dots, 20, 100),
	},
	{
		Name:    "holes",
		Grid:    withSafe(grid(finder...), gridsvg.Rect(0, 0, 7, 7)),
		Options: options(gridsvg.Holes, 0, 100),
	},
	{
		Name:    "liquid_dots",
		Grid:    withSafe(grid(finder...), gridsvg.Rect(0, 0, 7, 7)),
		Options: options(gridsvg.LiquidDots, 0, 100),
	},
	{
		Name:    "liquid_holes",
		Grid:    withSafe(grid(finder...), gridsvg.Rect(0, 0, 7, 7)),
		Options: options(gridsvg.LiquidHoles, 0, 80),
	},
	{
		Name: "ignored",
		Grid: withSafe(grid(finder...), gridsvg.Rect(0, 0, 7, 7)),
		Options: func() gridsvg.Options {
			opts := options(gridsvg.LiquidDots, 0, 100)
			opts.IgnoreSafeAreas = true
			return opts
		}(),
	},
}
