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

package gridsvg_test

import (
	"bytes"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/gridsvg"
	"seehuhn.de/go/gridsvg/raster"
	"seehuhn.de/go/gridsvg/testcases"
)

func TestSinglePixelSVG(t *testing.T) {
	svg, err := gridsvg.Render(gridsvg.ParseGrid("#"), gridsvg.DefaultOptions())
	require.NoError(t, err)

	expected := `<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n" +
		`<svg width="100%" height="100%" viewBox="0 0 3 3" version="1.1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">` + "\n" +
		"\t" + `<path d="M1,1H2V2H1Z" fill-rule="evenodd"/>` + "\n" +
		"</svg>\n"
	assert.Equal(t, expected, svg)
}

func TestEmptyGrid(t *testing.T) {
	doc, err := gridsvg.Build(gridsvg.ParseGrid(), gridsvg.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, doc.Figures)

	svg := doc.SVG()
	assert.Contains(t, svg, `viewBox="0 0 2 2"`)
	assert.NotContains(t, svg, "<path")

	var buf bytes.Buffer
	require.NoError(t, doc.WriteSVG(&buf))
	assert.Equal(t, svg, buf.String())
}

func TestUnoptimizedFigures(t *testing.T) {
	cases := []struct {
		style          gridsvg.Style
		margin, radius uint
		want           string
	}{
		{gridsvg.Standard, 0, 100, `<rect x="1" y="1" width="1" height="1"/>`},
		{gridsvg.Standard, 20, 100, `<rect x="1.1" y="1.1" width="0.8" height="0.8"/>`},
		{gridsvg.Dots, 20, 100, `<circle cx="1.5" cy="1.5" r="0.4"/>`},
		{gridsvg.Dots, 0, 50, `<path d="`},
	}
	for _, tc := range cases {
		opts := gridsvg.DefaultOptions()
		opts.Style = tc.style
		opts.PixelMargin = tc.margin
		opts.CornerRadius = tc.radius
		opts.NoShapeOptimization = true

		svg, err := gridsvg.Render(gridsvg.ParseGrid("#"), opts)
		require.NoError(t, err)
		assert.Contains(t, svg, "\t"+tc.want, "%s margin %d radius %d", tc.style, tc.margin, tc.radius)
	}
}

func TestInvalidInput(t *testing.T) {
	opts := gridsvg.DefaultOptions()
	opts.PixelMargin = 101
	_, err := gridsvg.Build(gridsvg.ParseGrid("#"), opts)
	assert.ErrorIs(t, err, gridsvg.ErrInvalidOption)

	_, err = gridsvg.Build(negativeGrid{}, gridsvg.DefaultOptions())
	assert.ErrorIs(t, err, gridsvg.ErrInvalidGrid)
}

type negativeGrid struct{}

func (negativeGrid) Size() int                     { return -1 }
func (negativeGrid) Pixel(gridsvg.IntPoint) bool   { return false }
func (negativeGrid) SafeAreas() []gridsvg.IntRect { return nil }

func TestDiagonalBridge(t *testing.T) {
	g := gridsvg.ParseGrid(
		"#.",
		".#",
	)
	opts := gridsvg.DefaultOptions()

	opts.Style = gridsvg.LiquidDots
	doc, err := gridsvg.Build(g, opts)
	require.NoError(t, err)
	assert.Len(t, doc.Figures, 2)

	opts.Style = gridsvg.LiquidHoles
	doc, err = gridsvg.Build(g, opts)
	require.NoError(t, err)
	assert.Len(t, doc.Figures, 1)
}

func TestAllCasesClosed(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			doc, err := gridsvg.Build(tc.Grid, tc.Options)
			require.NoError(t, err, "%s/%s", category, tc.Name)
			for i, fig := range doc.Figures {
				for j, p := range fig.Paths {
					assert.True(t, p.IsClosed(), "%s/%s: figure %d, loop %d", category, tc.Name, i, j)
				}
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			a, err := gridsvg.Render(tc.Grid, tc.Options)
			require.NoError(t, err)
			b, err := gridsvg.Render(tc.Grid, tc.Options)
			require.NoError(t, err)
			assert.Equal(t, a, b, "%s/%s", category, tc.Name)
		}
	}
}

// TestCombinedCoverage checks that merging the pixel shapes does not change
// the painted area.  Grid lines fall on pixel boundaries, so the shapes of
// the unoptimized document add up exactly.
func TestCombinedCoverage(t *testing.T) {
	const scale = 8
	for category, cases := range testcases.All {
		for _, tc := range cases {
			if tc.Options.NoShapeOptimization {
				continue
			}
			name := category + "/" + tc.Name
			t.Run(name, func(t *testing.T) {
				combined, err := gridsvg.Build(tc.Grid, tc.Options)
				require.NoError(t, err)

				opts := tc.Options
				opts.NoShapeOptimization = true
				separate, err := gridsvg.Build(tc.Grid, opts)
				require.NoError(t, err)

				a := paint(combined, scale)
				b := paint(separate, scale)
				for y := range a.Height {
					for x := range a.Width {
						diff := math.Abs(float64(a.Ink(x, y) - b.Ink(x, y)))
						if diff > 1e-3 {
							t.Fatalf("pixel (%d,%d): %g != %g", x, y, a.Ink(x, y), b.Ink(x, y))
						}
					}
				}
			})
		}
	}
}

func paint(doc *gridsvg.Document, scale int) *raster.Canvas {
	c := raster.NewCanvas(doc.ViewBox.Width*scale, doc.ViewBox.Height*scale, float64(scale))
	for _, outline := range doc.Outlines() {
		c.Fill(outline, raster.EvenOdd)
	}
	return c
}

func TestOutlines(t *testing.T) {
	opts := gridsvg.DefaultOptions()
	doc, err := gridsvg.Build(gridsvg.ParseGrid("#"), opts)
	require.NoError(t, err)
	outlines := doc.Outlines()
	require.Len(t, outlines, 1)
	cmds := outlines[0].Cmds
	require.Len(t, cmds, 6)
	assert.Equal(t, path.CmdMoveTo, cmds[0])
	for _, cmd := range cmds[1:5] {
		assert.Equal(t, path.CmdLineTo, cmd)
	}
	assert.Equal(t, path.CmdClose, cmds[5])

	opts.Style = gridsvg.Dots
	doc, err = gridsvg.Build(gridsvg.ParseGrid("#"), opts)
	require.NoError(t, err)
	outlines = doc.Outlines()
	require.Len(t, outlines, 1)
	cmds = outlines[0].Cmds
	require.Len(t, cmds, 6)
	for _, cmd := range cmds[1:5] {
		assert.Equal(t, path.CmdCubeTo, cmd)
	}
	// the curves end where the outline started
	coords := outlines[0].Coords
	assert.Equal(t, coords[0], coords[len(coords)-1])
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	gridsvg.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { gridsvg.SetLogger(nil) })

	_, err := gridsvg.Build(gridsvg.ParseGrid("##", "#."), gridsvg.DefaultOptions())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "built document")
	assert.Contains(t, out, "elements=3")
	assert.Contains(t, out, "clusters=1")
}

func TestWritePDF(t *testing.T) {
	opts := gridsvg.DefaultOptions()
	opts.Style = gridsvg.LiquidDots
	doc, err := gridsvg.Build(gridsvg.ParseGrid("##.", "#.#", ".##"), opts)
	require.NoError(t, err)

	fname := filepath.Join(t.TempDir(), "grid.pdf")
	require.NoError(t, doc.WritePDF(fname, 4))
	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))

	assert.ErrorIs(t, doc.WritePDF(fname, 0), gridsvg.ErrInvalidOption)
}
