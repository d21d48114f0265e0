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

// Command qrsvg encodes text as a QR code and writes it as an SVG file.
//
// Usage:
//
//	qrsvg [flags] text...
//
// If no text is given, the content is read from standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"seehuhn.de/go/gridsvg"
	"seehuhn.de/go/gridsvg/qr"
	"seehuhn.de/go/gridsvg/raster"
)

type config struct {
	level     string
	style     string
	margin    uint
	radius    uint
	border    int
	styleAll  bool
	noOpt     bool
	output    string
	pngFile   string
	pngScale  int
	pdfFile   string
	pdfModule float64
	verbose   bool
}

func main() {
	cfg := &config{}
	flag.StringVar(&cfg.level, "l", "M", "error correction level (L, M, Q or H)")
	flag.StringVar(&cfg.style, "s", "standard", "pixel style ("+styleList()+")")
	flag.UintVar(&cfg.margin, "m", 0, "pixel margin in percent")
	flag.UintVar(&cfg.radius, "r", 100, "corner radius in percent")
	flag.IntVar(&cfg.border, "b", 1, "border width in modules")
	flag.BoolVar(&cfg.styleAll, "a", false, "apply the style to finder and alignment patterns")
	flag.BoolVar(&cfg.noOpt, "no-opt", false, "emit one shape per pixel")
	flag.StringVar(&cfg.output, "o", "", "write the SVG to this file instead of standard output")
	flag.StringVar(&cfg.pngFile, "png", "", "also write a PNG preview to this file")
	flag.IntVar(&cfg.pngScale, "png-scale", 10, "pixels per module in the PNG preview")
	flag.StringVar(&cfg.pdfFile, "pdf", "", "also write a PDF file")
	flag.Float64Var(&cfg.pdfModule, "pdf-module", 4, "module size in PDF points")
	flag.BoolVar(&cfg.verbose, "v", false, "log progress to standard error")
	flag.Parse()

	if cfg.verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		gridsvg.SetLogger(slog.New(h))
	}

	if err := run(cfg, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "qrsvg:", err)
		if errors.Is(err, gridsvg.ErrInvalidOption) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func styleList() string {
	var names []string
	for _, s := range gridsvg.Styles() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}

func run(cfg *config, args []string) error {
	level, err := qr.ParseLevel(cfg.level)
	if err != nil {
		return err
	}
	style, err := gridsvg.ParseStyle(cfg.style)
	if err != nil {
		return err
	}
	opts := gridsvg.Options{
		Style:               style,
		PixelMargin:         cfg.margin,
		CornerRadius:        cfg.radius,
		IgnoreSafeAreas:     cfg.styleAll,
		NoShapeOptimization: cfg.noOpt,
		Border:              cfg.border,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	content, err := readContent(args)
	if err != nil {
		return err
	}

	code, err := qr.Encode(content, level)
	if err != nil {
		return err
	}
	doc, err := gridsvg.Build(code, opts)
	if err != nil {
		return err
	}

	if err := writeSVG(doc, cfg.output); err != nil {
		return err
	}
	if cfg.pngFile != "" {
		if err := writePNG(doc, cfg.pngFile, cfg.pngScale); err != nil {
			return err
		}
	}
	if cfg.pdfFile != "" {
		if err := doc.WritePDF(cfg.pdfFile, cfg.pdfModule); err != nil {
			return err
		}
	}
	return nil
}

func readContent(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func writeSVG(doc *gridsvg.Document, fname string) error {
	if fname == "" {
		return doc.WriteSVG(os.Stdout)
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = doc.WriteSVG(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func writePNG(doc *gridsvg.Document, fname string, scale int) error {
	if scale <= 0 {
		return fmt.Errorf("%w: PNG scale %d", gridsvg.ErrInvalidOption, scale)
	}
	canvas := raster.NewCanvas(doc.ViewBox.Width*scale, doc.ViewBox.Height*scale, float64(scale))
	for _, outline := range doc.Outlines() {
		canvas.Fill(outline, raster.EvenOdd)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = canvas.WritePNG(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
