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

// Element is the outline of one pixel shape, or of one corner piece of an
// inverted shape.
type Element struct {
	// Position is the cell the element belongs to.
	Position IntPoint

	// Path is the closed outline of the element.
	Path Path

	// Connecting lists the quadrants in which the shape reaches the cell
	// corner, so that it can merge with neighbours which do the same.
	Connecting QuadrantSet

	// Style is the style the element was built from.
	Style PixelStyle
}

// cellFrame holds the coordinates of a margined cell.
type cellFrame struct {
	left, right, top, bottom Decimal
	half                     Decimal // half the side length
	radius                   Decimal // corner radius
}

func newCellFrame(p IntPoint, ps PixelStyle) cellFrame {
	inset := ps.Margin.Half()
	side := DecimalInt(1).Sub(ps.Margin)
	half := side.Half()
	x := DecimalInt(p.X)
	y := DecimalInt(p.Y)
	return cellFrame{
		left:   x.Add(inset),
		right:  x.Add(inset).Add(side),
		top:    y.Add(inset),
		bottom: y.Add(inset).Add(side),
		half:   half,
		radius: half.Mul(ps.CornerRadius),
	}
}

// cornerGeometry describes the clockwise walk around a corner of a cell:
// the corner point, and the directions of travel before and after it.
type cornerGeometry struct {
	corner       DecimalPoint
	inDX, inDY   int
	outDX, outDY int
}

func (f cellFrame) corner(q Quadrant) cornerGeometry {
	switch q {
	case TopLeft:
		return cornerGeometry{Pt(f.left, f.top), 0, -1, 1, 0}
	case TopRight:
		return cornerGeometry{Pt(f.right, f.top), 1, 0, 0, 1}
	case BottomRight:
		return cornerGeometry{Pt(f.right, f.bottom), 0, 1, -1, 0}
	default:
		return cornerGeometry{Pt(f.left, f.bottom), -1, 0, 0, -1}
	}
}

// before returns the point at distance d before the corner.
func (g cornerGeometry) before(d Decimal) DecimalPoint {
	return g.corner.Add(d.Scale(-g.inDX), d.Scale(-g.inDY))
}

// after returns the point at distance d after the corner.
func (g cornerGeometry) after(d Decimal) DecimalPoint {
	return g.corner.Add(d.Scale(g.outDX), d.Scale(g.outDY))
}

// clockwiseCorners is the order in which the corners of a cell are
// visited, starting from the middle of the top edge.
var clockwiseCorners = [4]Quadrant{TopRight, BottomRight, BottomLeft, TopLeft}

// pathBuilder collects curves, dropping segments of zero length.
type pathBuilder struct {
	curves []Curve
}

func (b *pathBuilder) line(from, to DecimalPoint) {
	if from != to {
		b.curves = append(b.curves, Line{From: from, To: to})
	}
}

func (b *pathBuilder) arc(from, to DecimalPoint, radius Decimal, clockwise bool) {
	if from == to || radius.IsZero() {
		b.line(from, to)
		return
	}
	b.curves = append(b.curves, Arc{From: from, To: to, Radius: radius, Clockwise: clockwise})
}

func (b *pathBuilder) path() Path {
	return Path{Curves: b.curves}
}

// NewElements returns the elements making up the shape of the pixel at p.
// Normal shapes give a single element.  Inverted shapes give one element
// per rounded corner, and none if the corner radius is zero.
func NewElements(p IntPoint, ps PixelStyle) []Element {
	f := newCellFrame(p, ps)
	flush := ps.Margin.IsZero()

	var b pathBuilder
	var connecting QuadrantSet

	switch ps.Shape.Kind {
	case SquareShape:
		b.line(Pt(f.left, f.top), Pt(f.right, f.top))
		b.line(Pt(f.right, f.top), Pt(f.right, f.bottom))
		b.line(Pt(f.right, f.bottom), Pt(f.left, f.bottom))
		b.line(Pt(f.left, f.bottom), Pt(f.left, f.top))
		if flush {
			connecting = AllQuadrants
		}

	case CircleShape:
		for _, q := range clockwiseCorners {
			g := f.corner(q)
			b.arc(g.before(f.half), g.after(f.half), f.half, true)
		}

	case RoundedShape:
		if ps.Shape.Inverted {
			return invertedElements(p, ps, f)
		}
		for _, q := range clockwiseCorners {
			g := f.corner(q)
			start := g.before(f.half)
			a := g.before(f.radius)
			c := g.after(f.radius)
			end := g.after(f.half)
			b.line(start, a)
			if ps.Shape.Corners.Has(q) {
				b.arc(a, c, f.radius, true)
			} else {
				// split at the points where neighbouring fillets end
				b.line(a, g.corner)
				b.line(g.corner, c)
				if flush {
					connecting = connecting.With(q)
				}
			}
			b.line(c, end)
		}
	}

	if len(b.curves) == 0 {
		return nil
	}
	return []Element{{Position: p, Path: b.path(), Connecting: connecting, Style: ps}}
}

// invertedElements returns one fillet per rounded corner: the area
// between the cell corner and the corner arc.
func invertedElements(p IntPoint, ps PixelStyle, f cellFrame) []Element {
	if f.radius.IsZero() {
		return nil
	}
	var res []Element
	for _, q := range clockwiseCorners {
		if !ps.Shape.Corners.Has(q) {
			continue
		}
		g := f.corner(q)
		a := g.before(f.radius)
		c := g.after(f.radius)

		var b pathBuilder
		b.line(a, g.corner)
		b.line(g.corner, c)
		b.arc(c, a, f.radius, false)

		var connecting QuadrantSet
		if ps.Margin.IsZero() {
			connecting = connecting.With(q)
		}
		res = append(res, Element{Position: p, Path: b.path(), Connecting: connecting, Style: ps})
	}
	return res
}
