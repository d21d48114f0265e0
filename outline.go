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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498

func (p DecimalPoint) vec() vec.Vec2 {
	return vec.Vec2{X: p.X.Float64(), Y: p.Y.Float64()}
}

// Outline returns the loop as path data.  Arcs are approximated by cubic
// Bézier curves.
func (p Path) Outline() *path.Data {
	return p.addOutline(&path.Data{})
}

func (p Path) addOutline(d *path.Data) *path.Data {
	if len(p.Curves) == 0 {
		return d
	}
	d = d.MoveTo(p.Curves[0].Start().vec())
	for _, c := range p.Curves {
		switch c := c.(type) {
		case Line:
			d = d.LineTo(c.To.vec())
		case Arc:
			s := c.From.vec()
			e := c.To.vec()
			m := c.Center().vec()
			p1 := s.Add(e.Sub(m).Mul(kappa))
			p2 := e.Add(s.Sub(m).Mul(kappa))
			d = d.CubeTo(p1, p2, e)
		}
	}
	return d.Close()
}

// Outline returns all loops of the figure as a single path, to be filled
// with the even-odd rule.
func (f Figure) Outline() *path.Data {
	d := &path.Data{}
	for _, p := range f.Paths {
		d = p.addOutline(d)
	}
	return d
}

// Outlines returns the outline of every figure, in viewBox coordinates.
func (d *Document) Outlines() []*path.Data {
	res := make([]*path.Data, len(d.Figures))
	for i, fig := range d.Figures {
		res[i] = fig.Outline()
	}
	return res
}
