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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes the document as a single-page PDF file.
// Every grid cell is moduleSize PDF points wide.
func (d *Document) WritePDF(fname string, moduleSize float64) error {
	if moduleSize <= 0 {
		return fmt.Errorf("%w: module size %g", ErrInvalidOption, moduleSize)
	}
	w := float64(d.ViewBox.Width) * moduleSize
	h := float64(d.ViewBox.Height) * moduleSize

	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF user space has y pointing up.
	page.Transform(matrix.Matrix{moduleSize, 0, 0, -moduleSize, 0, h})
	page.SetFillColor(color.DeviceGray(0))

	for _, outline := range d.Outlines() {
		if len(outline.Cmds) == 0 {
			continue
		}
		for cmd, pts := range outline.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.FillEvenOdd()
	}

	return page.Close()
}
