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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolver(g Grid, style Style, margin, radius uint) *Resolver {
	opts := DefaultOptions()
	opts.Style = style
	opts.PixelMargin = margin
	opts.CornerRadius = radius
	return NewResolver(g, opts)
}

func TestResolveStandard(t *testing.T) {
	r := resolver(ParseGrid("#.", ".."), Standard, 10, 50)

	ps, ok := r.Resolve(IntPoint{0, 0})
	require.True(t, ok)
	assert.Equal(t, Square(), ps.Shape)
	assert.Equal(t, DecimalPercent(10), ps.Margin)

	_, ok = r.Resolve(IntPoint{1, 0})
	assert.False(t, ok)
}

func TestResolveDots(t *testing.T) {
	g := ParseGrid("#")
	cases := []struct {
		radius uint
		shape  Shape
	}{
		{0, Square()},
		{1, RoundedCorners(AllQuadrants, false)},
		{50, RoundedCorners(AllQuadrants, false)},
		{99, RoundedCorners(AllQuadrants, false)},
		{100, Circle()},
	}
	for _, tc := range cases {
		ps, ok := resolver(g, Dots, 0, tc.radius).Resolve(IntPoint{0, 0})
		require.True(t, ok)
		assert.Equal(t, tc.shape, ps.Shape, "radius %d", tc.radius)
		assert.Equal(t, DecimalPercent(tc.radius), ps.CornerRadius)
	}
}

func TestResolveHoles(t *testing.T) {
	g := ParseGrid("#.")

	r := resolver(g, Holes, 0, 70)
	ps, ok := r.Resolve(IntPoint{0, 0})
	require.True(t, ok)
	assert.Equal(t, RoundedCorners(0, false), ps.Shape)

	ps, ok = r.Resolve(IntPoint{1, 0})
	require.True(t, ok)
	assert.Equal(t, RoundedCorners(AllQuadrants, true), ps.Shape)

	// without rounding there are no holes to draw
	_, ok = resolver(g, Holes, 0, 0).Resolve(IntPoint{1, 0})
	assert.False(t, ok)
}

func TestResolveLiquidBlob(t *testing.T) {
	g := ParseGrid(
		"##.",
		"##.",
		"...",
	)
	r := resolver(g, LiquidDots, 0, 100)

	ps, ok := r.Resolve(IntPoint{0, 0})
	require.True(t, ok)
	assert.Equal(t, RoundedCorners(Quadrants(TopLeft), false), ps.Shape)

	ps, ok = r.Resolve(IntPoint{1, 1})
	require.True(t, ok)
	assert.Equal(t, RoundedCorners(Quadrants(BottomRight), false), ps.Shape)

	// the concave corner of an L-shape is filled by the unset pixel
	g = ParseGrid(
		"#.",
		"##",
	)
	ps, ok = resolver(g, LiquidDots, 0, 100).Resolve(IntPoint{1, 0})
	require.True(t, ok)
	assert.Equal(t, RoundedCorners(Quadrants(BottomLeft), true), ps.Shape)
}

// TestResolveLiquidBridge checks the junction of two diagonally touching
// pixels: dots keep them apart, holes join them.
func TestResolveLiquidBridge(t *testing.T) {
	g := ParseGrid(
		"#.",
		".#",
	)

	dots := resolver(g, LiquidDots, 0, 100)
	ps, _ := dots.Resolve(IntPoint{0, 0})
	assert.True(t, ps.Shape.Corners.Has(BottomRight))
	ps, _ = dots.Resolve(IntPoint{1, 0})
	assert.True(t, ps.Shape.Inverted)
	assert.True(t, ps.Shape.Corners.IsEmpty())

	holes := resolver(g, LiquidHoles, 0, 100)
	ps, _ = holes.Resolve(IntPoint{0, 0})
	assert.False(t, ps.Shape.Corners.Has(BottomRight))
	assert.Equal(t, Quadrants(TopLeft, TopRight, BottomLeft), ps.Shape.Corners)
	ps, _ = holes.Resolve(IntPoint{1, 0})
	assert.True(t, ps.Shape.Inverted)
	assert.Equal(t, Quadrants(BottomLeft), ps.Shape.Corners)
}

func TestResolveSafeAreas(t *testing.T) {
	g := ParseGrid(
		"#.#",
		"...",
		"#..",
	)
	g.Safe = []IntRect{Rect(0, 0, 2, 2)}

	r := resolver(g, Dots, 20, 100)
	ps, ok := r.Resolve(IntPoint{0, 0})
	require.True(t, ok)
	assert.Equal(t, PixelStyle{Shape: RoundedCorners(0, false), CornerRadius: DecimalPercent(100)}, ps)
	_, ok = r.Resolve(IntPoint{1, 0})
	assert.False(t, ok)

	// outside the safe area the style applies
	ps, ok = r.Resolve(IntPoint{2, 0})
	require.True(t, ok)
	assert.Equal(t, Circle(), ps.Shape)
	assert.Equal(t, DecimalPercent(20), ps.Margin)

	ps, ok = resolver(g, Dots, 20, 0).Resolve(IntPoint{0, 0})
	require.True(t, ok)
	assert.Equal(t, StandardPixel, ps)

	// unset pixels in safe areas are never drawn
	_, ok = resolver(g, Holes, 0, 100).Resolve(IntPoint{1, 1})
	assert.False(t, ok)
	_, ok = resolver(g, Holes, 0, 100).Resolve(IntPoint{2, 2})
	assert.True(t, ok)

	opts := DefaultOptions()
	opts.Style = Dots
	opts.IgnoreSafeAreas = true
	ps, ok = NewResolver(g, opts).Resolve(IntPoint{0, 0})
	require.True(t, ok)
	assert.Equal(t, Circle(), ps.Shape)
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "square", Square().String())
	assert.Equal(t, "circle", Circle().String())
	assert.Equal(t, "rounded{top-left}", RoundedCorners(Quadrants(TopLeft), false).String())
	assert.Equal(t, "inverted{}", RoundedCorners(0, true).String())
}
