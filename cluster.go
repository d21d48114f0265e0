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

import "slices"

// Cluster is a maximal set of elements which are connected through
// mutually flush quadrants.
type Cluster struct {
	Elements []Element
}

// elementPool holds the elements not yet assigned to a cluster.
type elementPool struct {
	elements []Element
	live     []bool
	at       map[IntPoint][]int
	next     int // all indices below next are assigned
}

func newElementPool(elements []Element) *elementPool {
	p := &elementPool{
		elements: elements,
		live:     make([]bool, len(elements)),
		at:       make(map[IntPoint][]int),
	}
	for i, e := range elements {
		p.live[i] = true
		p.at[e.Position] = append(p.at[e.Position], i)
	}
	return p
}

// first removes and returns the lowest live index.
func (p *elementPool) first() (int, bool) {
	for p.next < len(p.live) && !p.live[p.next] {
		p.next++
	}
	if p.next == len(p.live) {
		return 0, false
	}
	p.live[p.next] = false
	return p.next, true
}

// neighbours removes and returns, in ascending order, the live elements
// which share a flush edge with element i.
func (p *elementPool) neighbours(i int, buf []int) []int {
	buf = buf[:0]
	e := &p.elements[i]
	for q := range e.Connecting.All() {
		for _, d := range q.Directions() {
			mirror := q.Mirror(d)
			pos := e.Position.Offset(d.Offset())
			for _, j := range p.at[pos] {
				if p.live[j] && p.elements[j].Connecting.Has(mirror) {
					buf = append(buf, j)
				}
			}
		}
	}
	slices.Sort(buf)
	buf = slices.Compact(buf)
	for _, j := range buf {
		p.live[j] = false
	}
	return buf
}

// FindClusters partitions the elements into clusters.
//
// Clusters are seeded with the lowest unassigned element and grown depth
// first, visiting the neighbours of each element in ascending order.
// Within a cluster the elements appear in visiting order.
func FindClusters(elements []Element) []Cluster {
	pool := newElementPool(elements)

	var clusters []Cluster
	var stack, buf []int
	for {
		seed, ok := pool.first()
		if !ok {
			break
		}

		var members []Element
		stack = append(stack[:0], seed)
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			members = append(members, elements[i])

			buf = pool.neighbours(i, buf)
			for k := len(buf) - 1; k >= 0; k-- {
				stack = append(stack, buf[k])
			}
		}
		clusters = append(clusters, Cluster{Elements: members})
	}
	return clusters
}
