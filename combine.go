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
	"cmp"
	"slices"
)

// endpoints is the unordered pair of endpoints of a curve.
// The smaller point (in x, then y order) is stored first.
type endpoints struct {
	a, b DecimalPoint
}

func endpointsOf(c Curve) endpoints {
	p, q := c.Start(), c.End()
	if q.X < p.X || q.X == p.X && q.Y < p.Y {
		p, q = q, p
	}
	return endpoints{a: p, b: q}
}

// curveIndex locates a curve within a cluster.
// Curves are ordered by element first, then by position in the path.
type curveIndex struct {
	element, curve int
}

func (i curveIndex) compare(j curveIndex) int {
	if c := cmp.Compare(i.element, j.element); c != 0 {
		return c
	}
	return cmp.Compare(i.curve, j.curve)
}

// Combine returns the outline of the union of the cluster's elements.
//
// Curves shared by two elements are interior and cancel.  The remaining
// curves are joined into closed loops, and runs of collinear lines are
// merged.  The loops are meant to be filled with the even-odd rule.
// A cluster with a single element returns the element's path unchanged.
//
// An *InvariantError is returned if the element outlines do not form a
// consistent boundary.
func (c Cluster) Combine() ([]Path, error) {
	switch len(c.Elements) {
	case 0:
		return nil, nil
	case 1:
		return []Path{c.Elements[0].Path}, nil
	}

	curveAt := func(i curveIndex) Curve {
		return c.Elements[i.element].Path.Curves[i.curve]
	}

	// Cancel curves which occur twice.
	boundary := make(map[endpoints]curveIndex)
	for ei, e := range c.Elements {
		for ci, curve := range e.Path.Curves {
			key := endpointsOf(curve)
			if _, seen := boundary[key]; seen {
				delete(boundary, key)
				continue
			}
			boundary[key] = curveIndex{element: ei, curve: ci}
		}
	}

	keys := make([]endpoints, 0, len(boundary))
	for key := range boundary {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(k, l endpoints) int {
		return boundary[k].compare(boundary[l])
	})

	// Index the remaining curves by endpoint.  A union of closed loops
	// meets every point an even number of times.
	incident := make(map[DecimalPoint][]endpoints)
	for _, key := range keys {
		incident[key.a] = append(incident[key.a], key)
		incident[key.b] = append(incident[key.b], key)
	}
	for _, key := range keys {
		for _, pt := range [2]DecimalPoint{key.a, key.b} {
			if len(incident[pt])%2 != 0 {
				idx := boundary[key]
				return nil, &InvariantError{
					Cluster: -1,
					Element: idx.element,
					Curve:   idx.curve,
					Point:   pt,
					Reason:  "odd number of boundary curves meet",
				}
			}
		}
	}

	// Walk the boundary, each loop starting at the first unused curve.
	used := make(map[endpoints]bool, len(keys))
	var paths []Path
	for _, startKey := range keys {
		if used[startKey] {
			continue
		}
		used[startKey] = true
		first := curveAt(boundary[startKey])
		curves := []Curve{first}
		pt := first.End()

		for pt != first.Start() {
			var next endpoints
			found := false
			for _, key := range incident[pt] {
				if !used[key] {
					next, found = key, true
					break
				}
			}
			if !found {
				idx := boundary[startKey]
				return nil, &InvariantError{
					Cluster: -1,
					Element: idx.element,
					Curve:   idx.curve,
					Point:   pt,
					Reason:  "boundary loop is not closed",
				}
			}
			used[next] = true

			curve := curveAt(boundary[next])
			if curve.Start() != pt {
				curve = curve.Reverse()
			}
			if curve.Start() != pt {
				idx := boundary[next]
				return nil, &InvariantError{
					Cluster: -1,
					Element: idx.element,
					Curve:   idx.curve,
					Point:   pt,
					Reason:  "gap in boundary loop",
				}
			}
			curves = append(curves, curve)
			pt = curve.End()
		}

		paths = append(paths, OptimizeLines(Path{Curves: curves}))
	}
	return paths, nil
}

// lineAxis classifies axis-aligned lines.
type lineAxis uint8

const (
	notAxisLine lineAxis = iota
	horizontal
	vertical
)

func axisOf(c Curve) lineAxis {
	l, ok := c.(Line)
	switch {
	case !ok:
		return notAxisLine
	case l.IsHorizontal():
		return horizontal
	case l.IsVertical():
		return vertical
	default:
		return notAxisLine
	}
}

// OptimizeLines replaces every maximal run of consecutive lines along the
// same axis by a single line.  Since the path is a loop, a run at the end
// continues into a run at the start.  Applying OptimizeLines to its own
// result changes nothing.
func OptimizeLines(p Path) Path {
	var out []Curve
	var runStart DecimalPoint
	runAxis := notAxisLine
	for _, c := range p.Curves {
		axis := axisOf(c)
		if runAxis != notAxisLine && axis != runAxis {
			out = append(out, Line{From: runStart, To: c.Start()})
			runAxis = notAxisLine
		}
		if axis == notAxisLine {
			out = append(out, c)
			continue
		}
		if runAxis == notAxisLine {
			runStart = c.Start()
			runAxis = axis
		}
	}

	if runAxis != notAxisLine {
		if len(out) == 0 {
			// a single run cannot close; leave such a path alone
			return p
		}
		first := out[0]
		if axisOf(first) == runAxis {
			out[0] = Line{From: runStart, To: first.End()}
		} else {
			out = append(out, Line{From: runStart, To: first.Start()})
		}
	}
	return Path{Curves: out}
}
