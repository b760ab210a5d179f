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

// Package testcases contains a collection of named polygon outlines,
// used by the tests and by the tools which generate reference output.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polyshape"
)

// TestCase defines a single outline.
type TestCase struct {
	Name   string              // lowercase a-z, 0-9 and _ only
	Spec   polyshape.Spec      // the polygon
	Style  polyshape.EdgeStyle // how vertices are connected (nil means regular)
	Width  int                 // canvas width in pixels
	Height int                 // canvas height in pixels
}

// Build returns the outline of the test case.
func (tc TestCase) Build() (*path.Data, error) {
	return polyshape.Build(tc.Spec, tc.Style)
}

// centered returns a spec for a polygon filling most of a size×size canvas.
func centered(size float64, n int, rotation float64) polyshape.Spec {
	return polyshape.Spec{
		Center:   vec.Vec2{X: size / 2, Y: size / 2},
		Diameter: size * 0.85,
		Vertices: n,
		Rotation: rotation,
	}
}
