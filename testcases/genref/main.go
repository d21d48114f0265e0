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

// Command genref writes SVG, PNG and PDF versions of all test cases,
// for visual inspection.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/gridsvg"
	"seehuhn.de/go/gridsvg/raster"
	"seehuhn.de/go/gridsvg/testcases"
)

const (
	refDir = "testdata/reference"

	pixelsPerCell = 16
	pointsPerCell = 8
)

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, filepath.Join(refDir, name)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, base string) error {
	doc, err := gridsvg.Build(tc.Grid, tc.Options)
	if err != nil {
		return err
	}

	if err := os.WriteFile(base+".svg", []byte(doc.SVG()), 0644); err != nil {
		return err
	}

	if err := doc.WritePDF(base+".pdf", pointsPerCell); err != nil {
		return err
	}

	canvas := raster.NewCanvas(doc.ViewBox.Width*pixelsPerCell, doc.ViewBox.Height*pixelsPerCell, pixelsPerCell)
	for _, outline := range doc.Outlines() {
		canvas.Fill(outline, raster.EvenOdd)
	}
	f, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	err = canvas.WritePNG(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
