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

package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Canvas accumulates black ink on white paper.
//
// The ink of separate fills is added up and capped at full coverage.
// This is exact for shapes which do not overlap, and avoids the seams
// which alpha compositing leaves between touching shapes.
type Canvas struct {
	Width, Height int

	ink []float32
	r   *Rasteriser
	ctm matrix.Matrix
}

// NewCanvas returns an empty canvas of the given size in pixels.
// User space coordinates are multiplied by scale.
func NewCanvas(width, height int, scale float64) *Canvas {
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Canvas{
		Width:  width,
		Height: height,
		ink:    make([]float32, width*height),
		r:      NewRasteriser(clip),
		ctm:    matrix.Matrix{scale, 0, 0, scale, 0, 0},
	}
}

// Fill adds ink for the interior of p.
func (c *Canvas) Fill(p *path.Data, rule Rule) {
	c.r.Reset(rect.Rect{URx: float64(c.Width), URy: float64(c.Height)})
	c.r.CTM = c.ctm
	c.r.Fill(p, rule, func(y, xMin int, coverage []float32) {
		row := c.ink[y*c.Width+xMin:]
		for i, v := range coverage {
			row[i] = min(1, row[i]+v)
		}
	})
}

// Ink returns the coverage of the pixel at (x, y), between 0 and 1.
func (c *Canvas) Ink(x, y int) float32 {
	return c.ink[y*c.Width+x]
}

// Image returns the canvas as a grayscale image.
func (c *Canvas) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, c.Width, c.Height))
	for y := range c.Height {
		for x := range c.Width {
			v := 1 - float64(c.Ink(x, y))
			img.SetGray(x, y, color.Gray{Y: uint8(math.Round(255 * v))})
		}
	}
	return img
}

// WritePNG writes the canvas as a PNG image.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}
