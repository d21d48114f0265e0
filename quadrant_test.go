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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadrantMirror(t *testing.T) {
	cases := []struct {
		q    Quadrant
		d    Direction
		want Quadrant
	}{
		{TopLeft, Up, BottomLeft},
		{TopLeft, Left, TopRight},
		{TopRight, Up, BottomRight},
		{TopRight, Right, TopLeft},
		{BottomRight, Down, TopRight},
		{BottomRight, Right, BottomLeft},
		{BottomLeft, Down, TopLeft},
		{BottomLeft, Left, BottomRight},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.q.Mirror(tc.d), "%s across %s", tc.q, tc.d)
		// mirroring twice is the identity
		assert.Equal(t, tc.q, tc.q.Mirror(tc.d).Mirror(tc.d))
	}
}

func TestQuadrantDirections(t *testing.T) {
	for q := range AllQuadrants.All() {
		qx, qy := q.Offset()
		for _, d := range q.Directions() {
			dx, dy := d.Offset()
			// every direction points towards the corner of the quadrant
			assert.True(t, dx == 0 && dy == qy || dy == 0 && dx == qx, "%s %s", q, d)
		}
	}
}

func TestQuadrantSet(t *testing.T) {
	s := Quadrants(BottomLeft, TopRight)
	assert.True(t, s.Has(TopRight))
	assert.False(t, s.Has(TopLeft))
	assert.Equal(t, []Quadrant{TopRight, BottomLeft}, slices.Collect(s.All()))
	assert.Equal(t, "{top-right bottom-left}", s.String())

	assert.True(t, QuadrantSet(0).IsEmpty())
	assert.Equal(t, AllQuadrants, Quadrants(TopLeft, TopRight, BottomRight, BottomLeft))
	assert.Equal(t, AllQuadrants, s.With(TopLeft).With(BottomRight))
}
