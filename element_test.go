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

func TestSquareElement(t *testing.T) {
	elems := NewElements(IntPoint{2, 3}, StandardPixel)
	require.Len(t, elems, 1)
	e := elems[0]

	assert.Equal(t, IntPoint{2, 3}, e.Position)
	assert.Equal(t, AllQuadrants, e.Connecting)
	assert.True(t, e.Path.IsClosed())
	assert.Equal(t, "M2,3H3V4H2Z", e.Path.SVG())
}

func TestSquareElementMargin(t *testing.T) {
	ps := PixelStyle{Shape: Square(), Margin: DecimalPercent(20)}
	elems := NewElements(IntPoint{0, 0}, ps)
	require.Len(t, elems, 1)

	assert.True(t, elems[0].Connecting.IsEmpty())
	assert.Equal(t, "M0.1,0.1H0.9V0.9H0.1Z", elems[0].Path.SVG())
}

func TestCircleElement(t *testing.T) {
	ps := PixelStyle{Shape: Circle(), CornerRadius: DecimalPercent(100)}
	elems := NewElements(IntPoint{0, 0}, ps)
	require.Len(t, elems, 1)
	e := elems[0]

	assert.True(t, e.Connecting.IsEmpty())
	require.Len(t, e.Path.Curves, 4)
	for _, c := range e.Path.Curves {
		a, ok := c.(Arc)
		require.True(t, ok)
		assert.True(t, a.Clockwise)
		assert.Equal(t, ppt(50, 50), a.Center())
	}
	assert.Equal(t,
		"M0.5,0A0.5,0.5 0 0,1 1,0.5A0.5,0.5 0 0,1 0.5,1A0.5,0.5 0 0,1 0,0.5A0.5,0.5 0 0,1 0.5,0Z",
		e.Path.SVG())
}

func TestRoundedElement(t *testing.T) {
	ps := PixelStyle{
		Shape:        RoundedCorners(Quadrants(TopRight), false),
		CornerRadius: DecimalPercent(50),
	}
	elems := NewElements(IntPoint{0, 0}, ps)
	require.Len(t, elems, 1)
	e := elems[0]

	assert.Equal(t, Quadrants(TopLeft, BottomRight, BottomLeft), e.Connecting)
	assert.True(t, e.Path.IsClosed())
	// one rounded corner: line, arc, line; three flush corners: four lines
	assert.Len(t, e.Path.Curves, 3+3*4)
	assert.Equal(t, Line{From: ppt(50, 0), To: ppt(75, 0)}, e.Path.Curves[0])
	assert.Equal(t,
		Arc{From: ppt(75, 0), To: ppt(100, 25), Radius: DecimalPercent(25), Clockwise: true},
		e.Path.Curves[1])
}

func TestRoundedElementFullRadius(t *testing.T) {
	// with full radius the edges are only split at their middle
	ps := PixelStyle{Shape: RoundedCorners(0, false), CornerRadius: DecimalPercent(100)}
	elems := NewElements(IntPoint{0, 0}, ps)
	require.Len(t, elems, 1)
	assert.Len(t, elems[0].Path.Curves, 8)
	assert.Equal(t, AllQuadrants, elems[0].Connecting)

	optimized := OptimizeLines(elems[0].Path)
	assert.Equal(t, "M0,0H1V1H0Z", optimized.SVG())
}

func TestInvertedElements(t *testing.T) {
	ps := PixelStyle{
		Shape:        RoundedCorners(Quadrants(TopRight, BottomLeft), true),
		CornerRadius: DecimalPercent(100),
	}
	elems := NewElements(IntPoint{0, 0}, ps)
	require.Len(t, elems, 2)

	tr := elems[0]
	assert.Equal(t, Quadrants(TopRight), tr.Connecting)
	assert.Equal(t, []Curve{
		Line{From: ppt(50, 0), To: ppt(100, 0)},
		Line{From: ppt(100, 0), To: ppt(100, 50)},
		Arc{From: ppt(100, 50), To: ppt(50, 0), Radius: DecimalPercent(50), Clockwise: false},
	}, tr.Path.Curves)

	bl := elems[1]
	assert.Equal(t, Quadrants(BottomLeft), bl.Connecting)
	assert.True(t, bl.Path.IsClosed())
}

func TestInvertedElementsDegenerate(t *testing.T) {
	ps := PixelStyle{Shape: RoundedCorners(AllQuadrants, true)}
	assert.Empty(t, NewElements(IntPoint{0, 0}, ps))

	// with a margin, fillets never connect
	ps.CornerRadius = DecimalPercent(60)
	ps.Margin = DecimalPercent(10)
	elems := NewElements(IntPoint{0, 0}, ps)
	require.Len(t, elems, 4)
	for _, e := range elems {
		assert.True(t, e.Connecting.IsEmpty())
		assert.True(t, e.Path.IsClosed())
	}
}

func TestFullMarginElement(t *testing.T) {
	ps := PixelStyle{Shape: Circle(), Margin: DecimalInt(1)}
	assert.Empty(t, NewElements(IntPoint{0, 0}, ps))
}
