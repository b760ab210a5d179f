// seehuhn.de/go/polyshape - polygon outlines for clipping shapes
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

// Command genpdf generates reference images of polygon outlines.
// It creates a PDF file for every outline and renders it to PNG using
// Ghostscript.
//
// By default the outlines of all test cases are rendered.  With the
// -config flag, the shapes described in the given YAML file are rendered
// instead.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/polyshape/config"
	"seehuhn.de/go/polyshape/testcases"
)

// outline is a built path together with its canvas size.
type outline struct {
	Name          string
	Path          *path.Data
	Width, Height float64
}

func main() {
	configFile := flag.String("config", "", "YAML file with shape descriptions")
	outDir := flag.String("o", "testdata/reference", "output directory")
	noPNG := flag.Bool("nopng", false, "skip the Ghostscript PNG conversion")
	flag.Parse()

	var outlines []outline
	var err error
	if *configFile != "" {
		outlines, err = fromConfig(*configFile)
	} else {
		outlines, err = fromTestCases()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}
	for _, o := range outlines {
		pdfPath := filepath.Join(*outDir, o.Name+".pdf")
		pngPath := filepath.Join(*outDir, o.Name+".png")

		if err := generatePDF(o, pdfPath); err != nil {
			panic(fmt.Errorf("%s: %w", o.Name, err))
		}
		if *noPNG {
			continue
		}
		if err := renderPNG(pdfPath, pngPath); err != nil {
			panic(fmt.Errorf("%s: %w", o.Name, err))
		}
	}
}

func fromTestCases() ([]outline, error) {
	var res []outline
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			p, err := tc.Build()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			res = append(res, outline{
				Name:   name,
				Path:   p,
				Width:  float64(tc.Width),
				Height: float64(tc.Height),
			})
		}
	}
	return res, nil
}

func fromConfig(fname string) ([]outline, error) {
	shapes, err := config.LoadFile(fname)
	if err != nil {
		return nil, err
	}

	var res []outline
	for i, s := range shapes {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("shape%03d", i)
		}
		p, err := s.Build()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		res = append(res, outline{
			Name:   name,
			Path:   p,
			Width:  s.Layout.Width,
			Height: s.Layout.Height,
		})
	}
	return res, nil
}

func generatePDF(o outline, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: o.Width,
		URy: o.Height,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Black background, so that the image shows the clip mask coverage.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, o.Width, o.Height)
	page.Fill()

	// PDF origin is bottom-left; outlines use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, o.Height})

	page.SetFillColor(color.DeviceGray(1))

	// PDF has no quadratic curves
	for cmd, pts := range o.Path.Iter().ToCubic() {
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
	page.Fill()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
