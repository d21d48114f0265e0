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
	"errors"
	"fmt"
)

// ErrInvalidOption is returned (wrapped) for out-of-range options.
var ErrInvalidOption = errors.New("invalid option")

// ErrInvalidGrid is returned (wrapped) when a grid reports a negative size.
var ErrInvalidGrid = errors.New("invalid grid")

// InvariantError reports an inconsistent set of element outlines.
//
// Such an error always indicates a bug in the construction of pixel
// shapes, never a problem with the input grid.
type InvariantError struct {
	Cluster int          // index of the cluster, -1 if unknown
	Element int          // index of the element within the cluster, -1 if unknown
	Curve   int          // index of the curve within the element, -1 if unknown
	Point   DecimalPoint // where the problem was detected
	Reason  string
}

func (e *InvariantError) Error() string {
	msg := fmt.Sprintf("gridsvg: %s at %s", e.Reason, e.Point)
	if e.Cluster >= 0 {
		msg += fmt.Sprintf(" (cluster %d", e.Cluster)
		if e.Element >= 0 {
			msg += fmt.Sprintf(", element %d, curve %d", e.Element, e.Curve)
		}
		msg += ")"
	}
	return msg
}
