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
	"fmt"
	"strings"
)

// Style selects how pixels are shaped.
type Style uint8

const (
	// Standard draws every set pixel as a square.
	Standard Style = iota

	// Dots draws set pixels as squares, rounded squares or circles,
	// depending on the corner radius.
	Dots

	// Holes draws set pixels as squares and rounds the corners of the
	// unset pixels, so that the gaps look like round holes.
	Holes

	// LiquidDots rounds all convex and concave corners of the set
	// regions.  Diagonally touching pixels stay separate.
	LiquidDots

	// LiquidHoles is like LiquidDots, but diagonally touching set pixels
	// are joined by a bridge.
	LiquidHoles
)

var styleNames = [...]string{"standard", "dots", "holes", "liquidDots", "liquidHoles"}

// Styles returns all styles, in declaration order.
func Styles() []Style {
	return []Style{Standard, Dots, Holes, LiquidDots, LiquidHoles}
}

func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// ParseStyle returns the style with the given name.
// Names are matched case-insensitively.
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if strings.EqualFold(n, name) {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown style %q", ErrInvalidOption, name)
}

// Options controls how a grid is turned into a document.
type Options struct {
	Style Style

	// PixelMargin shrinks every pixel shape by the given percentage
	// (0..100) towards the cell centre.  Values above 50 may make QR
	// symbols unreadable.
	PixelMargin uint

	// CornerRadius is the corner radius as a percentage (0..100) of half
	// the pixel size.  It is ignored by the Standard style.
	CornerRadius uint

	// IgnoreSafeAreas applies the style to all pixels, including the
	// safe areas reported by the grid.
	IgnoreSafeAreas bool

	// NoShapeOptimization emits one shape per pixel instead of combining
	// touching shapes.  Renderers may show thin seams between pixels.
	NoShapeOptimization bool

	// Border is the width of the empty frame around the grid, in cells.
	Border int
}

// DefaultOptions returns the options used when nothing else is specified.
func DefaultOptions() Options {
	return Options{
		Style:        Standard,
		CornerRadius: 100,
		Border:       1,
	}
}

// Validate checks that all fields are in range.
func (o *Options) Validate() error {
	if int(o.Style) >= len(styleNames) {
		return fmt.Errorf("%w: unknown style %d", ErrInvalidOption, o.Style)
	}
	if o.PixelMargin > 100 {
		return fmt.Errorf("%w: pixel margin %d%% not in 0..100", ErrInvalidOption, o.PixelMargin)
	}
	if o.CornerRadius > 100 {
		return fmt.Errorf("%w: corner radius %d%% not in 0..100", ErrInvalidOption, o.CornerRadius)
	}
	if o.Border < 0 {
		return fmt.Errorf("%w: negative border %d", ErrInvalidOption, o.Border)
	}
	return nil
}
