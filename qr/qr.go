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

// Package qr provides QR code symbols as grids for the gridsvg package.
//
// The finder and alignment patterns of a symbol are reported as safe
// areas, so that they are drawn without decoration by default.
package qr

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"seehuhn.de/go/gridsvg"
)

// Level is an error correction level.
type Level uint8

const (
	L Level = iota // about 7% of the symbol can be restored
	M              // about 15%
	Q              // about 25%
	H              // about 30%
)

var levelNames = [...]string{"L", "M", "Q", "H"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", uint8(l))
}

// ParseLevel returns the level with the given name, which is one of
// "L", "M", "Q" and "H" in either case.
func ParseLevel(name string) (Level, error) {
	for i, n := range levelNames {
		if strings.EqualFold(n, name) {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown correction level %q", gridsvg.ErrInvalidOption, name)
}

func (l Level) recovery() qrcode.RecoveryLevel {
	switch l {
	case L:
		return qrcode.Low
	case Q:
		return qrcode.High
	case H:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// Code is an encoded QR code symbol, without quiet zone.
// It implements the [gridsvg.Grid] interface.
type Code struct {
	Version int
	Level   Level

	modules [][]bool
	safe    []gridsvg.IntRect
}

var _ gridsvg.Grid = (*Code)(nil)

// Encode returns the smallest symbol which holds content at the given
// error correction level.
func Encode(content string, level Level) (*Code, error) {
	if int(level) >= len(levelNames) {
		return nil, fmt.Errorf("%w: unknown correction level %d", gridsvg.ErrInvalidOption, level)
	}
	sym, err := qrcode.New(content, level.recovery())
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	sym.DisableBorder = true
	modules := sym.Bitmap()

	c := &Code{
		Version: sym.VersionNumber,
		Level:   level,
		modules: modules,
		safe:    functionPatterns(sym.VersionNumber, len(modules)),
	}
	gridsvg.Logger().Debug("encoded QR code",
		"bytes", len(content),
		"level", level.String(),
		"version", c.Version,
		"size", len(modules))
	return c, nil
}

// Size implements the [gridsvg.Grid] interface.
func (c *Code) Size() int {
	return len(c.modules)
}

// Pixel implements the [gridsvg.Grid] interface.
func (c *Code) Pixel(p gridsvg.IntPoint) bool {
	return c.modules[p.Y][p.X]
}

// SafeAreas implements the [gridsvg.Grid] interface.
// The result lists the three finder patterns followed by the alignment
// patterns in row-major order.
func (c *Code) SafeAreas() []gridsvg.IntRect {
	return c.safe
}

// functionPatterns returns the areas of the finder and alignment patterns
// of a symbol.
func functionPatterns(version, size int) []gridsvg.IntRect {
	if size < 21 {
		return nil
	}
	areas := []gridsvg.IntRect{
		gridsvg.Rect(0, 0, 7, 7),
		gridsvg.Rect(size-7, 0, 7, 7),
		gridsvg.Rect(0, size-7, 7, 7),
	}

	if version < 1 || version >= len(alignmentCentres) {
		return areas
	}
	centres := alignmentCentres[version]
	last := len(centres) - 1
	for i, y := range centres {
		for j, x := range centres {
			// these overlap the finder patterns
			if i == 0 && j == 0 || i == 0 && j == last || i == last && j == 0 {
				continue
			}
			areas = append(areas, gridsvg.Rect(x-2, y-2, 5, 5))
		}
	}
	return areas
}

// alignmentCentres lists, for each version, the row and column
// coordinates of the alignment pattern centres.
var alignmentCentres = [41][]int{
	2:  {6, 18},
	3:  {6, 22},
	4:  {6, 26},
	5:  {6, 30},
	6:  {6, 34},
	7:  {6, 22, 38},
	8:  {6, 24, 42},
	9:  {6, 26, 46},
	10: {6, 28, 50},
	11: {6, 30, 54},
	12: {6, 32, 58},
	13: {6, 34, 62},
	14: {6, 26, 46, 66},
	15: {6, 26, 48, 70},
	16: {6, 26, 50, 74},
	17: {6, 30, 54, 78},
	18: {6, 30, 56, 82},
	19: {6, 30, 58, 86},
	20: {6, 34, 62, 90},
	21: {6, 28, 50, 72, 94},
	22: {6, 26, 50, 74, 98},
	23: {6, 30, 54, 78, 102},
	24: {6, 28, 54, 80, 106},
	25: {6, 32, 58, 84, 110},
	26: {6, 30, 58, 86, 114},
	27: {6, 34, 62, 90, 118},
	28: {6, 26, 50, 74, 98, 122},
	29: {6, 30, 54, 78, 102, 126},
	30: {6, 26, 52, 78, 104, 130},
	31: {6, 30, 56, 82, 108, 134},
	32: {6, 34, 60, 86, 112, 138},
	33: {6, 30, 58, 86, 114, 142},
	34: {6, 34, 62, 90, 118, 146},
	35: {6, 30, 54, 78, 102, 126, 150},
	36: {6, 24, 50, 76, 102, 128, 154},
	37: {6, 28, 54, 80, 106, 132, 158},
	38: {6, 32, 58, 84, 110, 136, 162},
	39: {6, 26, 54, 82, 110, 138, 166},
	40: {6, 30, 58, 86, 114, 142, 170},
}
