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

// unoptimized returns opts with shape optimization turned off.
func unoptimized(opts gridsvg.Options) gridsvg.Options {
	opts.NoShapeOptimization = true
	return opts
}

var basicCases = []TestCase{
	{
		Name:    "empty",
		Grid:    grid("...", "...", "..."),
		Options: options(gridsvg.Standard, 0, 100),
	},
	{
		Name:    "single_pixel",
		Grid:    grid("#"),
		Options: options(gridsvg.Standard, 0, 100),
	},
	{
		Name:    "pair",
		Grid:    grid("##", ".."),
		Options: options(gridsvg.Standard, 0, 100),
	},
	{
		Name:    "l_shape",
		Grid:    grid("#..", "#..", "##."),
		Options: options(gridsvg.Standard, 0, 100),
	},
	{
		Name:    "ring",
		Grid:    grid(ring...),
		Options: options(gridsvg.Standard, 0, 100),
	},
	{
		Name:    "checker",
		Grid:    grid(checker...),
		Options: options(gridsvg.Standard, 0, 100),
	},
	{
		Name:    "blob",
		Grid:    grid(blob...),
		Options: options(gridsvg.Standard, 0, 100),
	},
	{
		Name:    "no_border",
		Grid:    grid(blob...),
		Options: gridsvg.Options{Style: gridsvg.Standard},
	},
	{
		Name:    "dots_circle",
		Grid:    grid(blob...),
		Options: options(gridsvg.Dots, 0, 100),
	},
	{
		Name:    "dots_rounded",
		Grid:    grid(blob...),
		Options: options(gridsvg.Dots, 0, 50),
	},
	{
		Name:    "dots_square",
		Grid:    grid(blob...),
		Options: options(gridsvg.Dots, 0, 0),
	},
	{
		Name:    "unoptimized_standard",
		Grid:    grid(blob...),
		Options: unoptimized(options(gridsvg.Standard, 0, 100)),
	},
	{
		Name:    "unoptimized_dots",
		Grid:    grid(blob...),
		Options: unoptimized(options(gridsvg.Dots, 10, 100)),
	},
	{
		Name:    "unoptimized_liquid",
		Grid:    grid(blob...),
		Options: unoptimized(options(gridsvg.LiquidHoles, 0, 70)),
	},
}
