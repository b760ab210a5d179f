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

// Command export writes the outlines of all test cases to JSON, for use by
// external reference renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/polyshape"
	"seehuhn.de/go/polyshape/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Center   []float64     `json:"center"`
	Diameter float64       `json:"diameter"`
	Vertices int           `json:"vertices"`
	Rotation float64       `json:"rotation"`
	Style    string        `json:"style"`
	Path     []jsonSegment `json:"path"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	p, err := tc.Build()
	if err != nil {
		return jsonTestCase{}, err
	}
	return jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Center:   []float64{tc.Spec.Center.X, tc.Spec.Center.Y},
		Diameter: tc.Spec.Diameter,
		Vertices: tc.Spec.Vertices,
		Rotation: tc.Spec.Rotation,
		Style:    styleName(tc.Style),
		Path:     pathToJSON(p),
	}, nil
}

func styleName(style polyshape.EdgeStyle) string {
	switch s := style.(type) {
	case nil, polyshape.Regular:
		return "regular"
	case *polyshape.Paper:
		return fmt.Sprintf("paper(%g,%g)", s.OffsetX, s.OffsetY)
	case *polyshape.Star:
		if s.Concave {
			return fmt.Sprintf("concave_star(%g)", s.RadiusScale)
		}
		return fmt.Sprintf("star(%g)", s.RadiusScale)
	default:
		return fmt.Sprintf("%T", style)
	}
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
