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

// Command export writes the test cases and their outlines to JSON, for
// use by external renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/gridsvg"
	"seehuhn.de/go/gridsvg/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name        string          `json:"name"`
	Rows        []string        `json:"rows"`
	SafeAreas   [][4]int        `json:"safe_areas,omitempty"`
	Style       string          `json:"style"`
	Margin      uint            `json:"margin"`
	Radius      uint            `json:"radius"`
	IgnoreSafe  bool            `json:"ignore_safe_areas,omitempty"`
	Unoptimized bool            `json:"no_shape_optimization,omitempty"`
	Border      int             `json:"border"`
	ViewBox     [2]int          `json:"view_box"`
	Outlines    [][]jsonSegment `json:"outlines"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	doc, err := gridsvg.Build(tc.Grid, tc.Options)
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:        category + "_" + tc.Name,
		Style:       tc.Options.Style.String(),
		Margin:      tc.Options.PixelMargin,
		Radius:      tc.Options.CornerRadius,
		IgnoreSafe:  tc.Options.IgnoreSafeAreas,
		Unoptimized: tc.Options.NoShapeOptimization,
		Border:      tc.Options.Border,
		ViewBox:     [2]int{doc.ViewBox.Width, doc.ViewBox.Height},
	}

	n := tc.Grid.Size()
	for y := range n {
		var row strings.Builder
		for x := range n {
			if tc.Grid.Pixel(gridsvg.IntPoint{X: x, Y: y}) {
				row.WriteByte('#')
			} else {
				row.WriteByte('.')
			}
		}
		jtc.Rows = append(jtc.Rows, row.String())
	}
	for _, a := range tc.Grid.SafeAreas() {
		jtc.SafeAreas = append(jtc.SafeAreas, [4]int{a.Origin.X, a.Origin.Y, a.Size.Width, a.Size.Height})
	}
	for _, outline := range doc.Outlines() {
		jtc.Outlines = append(jtc.Outlines, pathToJSON(outline))
	}
	return jtc, nil
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
