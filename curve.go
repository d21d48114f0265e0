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

// Curve is a segment of an outline.
// The only implementations are [Line] and [Arc].
type Curve interface {
	Start() DecimalPoint
	End() DecimalPoint

	// Reverse returns the same segment traversed from End to Start.
	Reverse() Curve

	// appendSVG appends the path data for the segment, assuming the
	// current point is Start.
	appendSVG(buf []byte) []byte
}

// Line is a straight segment.
type Line struct {
	From, To DecimalPoint
}

// Start implements the [Curve] interface.
func (l Line) Start() DecimalPoint { return l.From }

// End implements the [Curve] interface.
func (l Line) End() DecimalPoint { return l.To }

// Reverse implements the [Curve] interface.
func (l Line) Reverse() Curve {
	return Line{From: l.To, To: l.From}
}

// IsHorizontal reports whether the line has constant y.
func (l Line) IsHorizontal() bool {
	return l.From.Y == l.To.Y
}

// IsVertical reports whether the line has constant x.
func (l Line) IsVertical() bool {
	return l.From.X == l.To.X
}

func (l Line) appendSVG(buf []byte) []byte {
	switch {
	case l.IsHorizontal():
		buf = append(buf, 'H')
		return l.To.X.append(buf)
	case l.IsVertical():
		buf = append(buf, 'V')
		return l.To.Y.append(buf)
	default:
		buf = append(buf, 'L')
		return l.To.append(buf)
	}
}

// Arc is a quarter circle from From to To.
//
// The segment turns clockwise on screen (with the y axis pointing down)
// if Clockwise is set, and anti-clockwise otherwise.
type Arc struct {
	From, To  DecimalPoint
	Radius    Decimal
	Clockwise bool
}

// Start implements the [Curve] interface.
func (a Arc) Start() DecimalPoint { return a.From }

// End implements the [Curve] interface.
func (a Arc) End() DecimalPoint { return a.To }

// Reverse implements the [Curve] interface.
func (a Arc) Reverse() Curve {
	return Arc{From: a.To, To: a.From, Radius: a.Radius, Clockwise: !a.Clockwise}
}

// Center returns the centre of the circle the arc lies on.
func (a Arc) Center() DecimalPoint {
	// The centre shares one coordinate with each endpoint.  For the
	// candidate C = (From.X, To.Y) the cross product of From-C and To-C
	// has the sign of dx·dy, and a positive cross product is a clockwise
	// turn when y points down.
	dx := a.To.X - a.From.X
	dy := a.To.Y - a.From.Y
	if (dx > 0) == (dy > 0) == a.Clockwise {
		return Pt(a.From.X, a.To.Y)
	}
	return Pt(a.To.X, a.From.Y)
}

func (a Arc) appendSVG(buf []byte) []byte {
	buf = append(buf, 'A')
	buf = a.Radius.append(buf)
	buf = append(buf, ',')
	buf = a.Radius.append(buf)
	if a.Clockwise {
		buf = append(buf, " 0 0,1 "...)
	} else {
		buf = append(buf, " 0 0,0 "...)
	}
	return a.To.append(buf)
}

// Path is a closed loop of curves.
// Each curve starts where the previous one ends, and the last curve ends
// where the first one starts.
type Path struct {
	Curves []Curve
}

// IsClosed reports whether the curves form one closed, gap-free loop.
func (p Path) IsClosed() bool {
	n := len(p.Curves)
	if n == 0 {
		return false
	}
	for i, c := range p.Curves {
		if c.End() != p.Curves[(i+1)%n].Start() {
			return false
		}
	}
	return true
}

// SVG returns the path data for the loop.
func (p Path) SVG() string {
	return string(p.appendSVG(nil))
}

func (p Path) appendSVG(buf []byte) []byte {
	if len(p.Curves) == 0 {
		return buf
	}
	buf = append(buf, 'M')
	buf = p.Curves[0].Start().append(buf)

	curves := p.Curves
	if _, isLine := curves[len(curves)-1].(Line); isLine && len(curves) > 1 {
		// closepath draws the final straight segment
		curves = curves[:len(curves)-1]
	}
	for _, c := range curves {
		buf = c.appendSVG(buf)
	}
	return append(buf, 'Z')
}
