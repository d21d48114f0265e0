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
	"io"
	"log/slog"
)

// FigureKind selects the SVG element used for a figure.
type FigureKind uint8

const (
	// PathFigure is drawn as a <path> element.
	PathFigure FigureKind = iota

	// RectFigure is an axis-aligned square, drawn as a <rect> element.
	RectFigure

	// CircleFigure is a circle, drawn as a <circle> element.
	CircleFigure
)

// Figure is one filled shape of a document.
type Figure struct {
	Kind FigureKind

	// Paths is the outline of the figure, filled with the even-odd rule.
	// It is set for all kinds of figures.
	Paths []Path

	// Origin and Side give the bounding square of RectFigure and
	// CircleFigure figures.
	Origin DecimalPoint
	Side   Decimal
}

// Document is the vector drawing of a grid.
type Document struct {
	// ViewBox is the size of the drawing, including the border.
	ViewBox IntSize

	// Figures holds one figure per cluster, or one figure per element if
	// shape optimization is disabled.
	Figures []Figure
}

// Build converts a grid into a document.
//
// Cells are visited in row-major order.  Unless opts.NoShapeOptimization
// is set, touching shapes are merged into a single outline per connected
// component.
func Build(g Grid, opts Options) (*Document, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	n := g.Size()
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrInvalidGrid, n)
	}

	r := NewResolver(g, opts)
	var elements []Element
	for p := range Rect(0, 0, n, n).Points() {
		ps, ok := r.Resolve(p)
		if !ok {
			continue
		}
		elements = append(elements, NewElements(p.Offset(opts.Border, opts.Border), ps)...)
	}

	side := n + 2*opts.Border
	doc := &Document{ViewBox: NewIntSize(side, side)}
	log := Logger()

	if opts.NoShapeOptimization {
		doc.Figures = make([]Figure, 0, len(elements))
		for _, e := range elements {
			doc.Figures = append(doc.Figures, elementFigure(e))
		}
		log.Debug("built document",
			slog.Int("size", n),
			slog.String("style", opts.Style.String()),
			slog.Int("elements", len(elements)))
		return doc, nil
	}

	clusters := FindClusters(elements)
	doc.Figures = make([]Figure, 0, len(clusters))
	loops := 0
	for i, c := range clusters {
		paths, err := c.Combine()
		if err != nil {
			var invErr *InvariantError
			if errors.As(err, &invErr) {
				invErr.Cluster = i
			}
			log.Error("cannot combine cluster",
				slog.Int("cluster", i),
				slog.Int("elements", len(c.Elements)),
				slog.Any("err", err))
			return nil, err
		}
		loops += len(paths)
		doc.Figures = append(doc.Figures, Figure{Kind: PathFigure, Paths: paths})
	}
	log.Debug("built document",
		slog.Int("size", n),
		slog.String("style", opts.Style.String()),
		slog.Int("elements", len(elements)),
		slog.Int("clusters", len(clusters)),
		slog.Int("loops", loops))
	return doc, nil
}

// elementFigure returns the stand-alone figure for a single element.
func elementFigure(e Element) Figure {
	fig := Figure{Kind: PathFigure, Paths: []Path{e.Path}}
	switch e.Style.Shape.Kind {
	case SquareShape:
		fig.Kind = RectFigure
	case CircleShape:
		fig.Kind = CircleFigure
	default:
		return fig
	}
	inset := e.Style.Margin.Half()
	fig.Origin = Pt(DecimalInt(e.Position.X).Add(inset), DecimalInt(e.Position.Y).Add(inset))
	fig.Side = DecimalInt(1).Sub(e.Style.Margin)
	return fig
}

// Render is a shortcut for [Build] followed by [Document.SVG].
func Render(g Grid, opts Options) (string, error) {
	doc, err := Build(g, opts)
	if err != nil {
		return "", err
	}
	return doc.SVG(), nil
}

const (
	svgHeader = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n" +
		`<svg width="100%" height="100%" viewBox="0 0 `
	svgNamespaces = `" version="1.1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">` + "\n"
	svgFooter     = "</svg>\n"
)

// SVG returns the document as a stand-alone SVG file.
func (d *Document) SVG() string {
	return string(d.appendSVG(nil))
}

// WriteSVG writes the document as a stand-alone SVG file.
func (d *Document) WriteSVG(w io.Writer) error {
	_, err := w.Write(d.appendSVG(nil))
	return err
}

func (d *Document) appendSVG(buf []byte) []byte {
	buf = append(buf, svgHeader...)
	buf = DecimalInt(d.ViewBox.Width).append(buf)
	buf = append(buf, ' ')
	buf = DecimalInt(d.ViewBox.Height).append(buf)
	buf = append(buf, svgNamespaces...)
	for _, fig := range d.Figures {
		buf = fig.appendSVG(buf)
	}
	return append(buf, svgFooter...)
}

func (f Figure) appendSVG(buf []byte) []byte {
	switch f.Kind {
	case RectFigure:
		buf = append(buf, "\t<rect x=\""...)
		buf = f.Origin.X.append(buf)
		buf = append(buf, "\" y=\""...)
		buf = f.Origin.Y.append(buf)
		buf = append(buf, "\" width=\""...)
		buf = f.Side.append(buf)
		buf = append(buf, "\" height=\""...)
		buf = f.Side.append(buf)
		return append(buf, "\"/>\n"...)

	case CircleFigure:
		r := f.Side.Half()
		buf = append(buf, "\t<circle cx=\""...)
		buf = f.Origin.X.Add(r).append(buf)
		buf = append(buf, "\" cy=\""...)
		buf = f.Origin.Y.Add(r).append(buf)
		buf = append(buf, "\" r=\""...)
		buf = r.append(buf)
		return append(buf, "\"/>\n"...)
	}

	if len(f.Paths) == 0 {
		return buf
	}
	buf = append(buf, "\t<path d=\""...)
	for _, p := range f.Paths {
		buf = p.appendSVG(buf)
	}
	return append(buf, "\" fill-rule=\"evenodd\"/>\n"...)
}
