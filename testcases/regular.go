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

package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polyshape"
)

var regularCases = []TestCase{
	{
		Name:   "triangle",
		Spec:   centered(64, 3, 0),
		Style:  polyshape.Regular{},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "square",
		Spec:   centered(64, 4, 0),
		Style:  polyshape.Regular{},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "pentagon",
		Spec:   centered(64, 5, 0),
		Style:  polyshape.Regular{},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "hexagon",
		Spec:   centered(64, 6, 0),
		Style:  polyshape.Regular{},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "many_vertices",
		Spec:   centered(128, 64, 0),
		Style:  polyshape.Regular{},
		Width:  128,
		Height: 128,
	},
	{
		Name: "off_center",
		Spec: polyshape.Spec{
			Center:   vec.Vec2{X: 20, Y: 44},
			Diameter: 36,
			Vertices: 7,
		},
		Style:  polyshape.Regular{},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "tiny",
		Spec:   polyshape.Spec{Center: vec.Vec2{X: 8, Y: 8}, Diameter: 2, Vertices: 6},
		Style:  polyshape.Regular{},
		Width:  16,
		Height: 16,
	},
}

var rotationCases = []TestCase{
	{
		Name:   "triangle_90deg",
		Spec:   centered(64, 3, 90),
		Style:  polyshape.Regular{},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "triangle_minus_90deg",
		Spec:   centered(64, 3, -90),
		Style:  polyshape.Regular{},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "square_45deg",
		Spec:   centered(64, 4, 45),
		Style:  polyshape.Regular{},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "hexagon_360deg",
		Spec:   centered(64, 6, 360),
		Style:  polyshape.Regular{},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star_5deg",
		Spec:   centered(64, 5, 5),
		Style:  polyshape.NewStar(0.5, false),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "paper_30deg",
		Spec:   centered(64, 6, 30),
		Style:  polyshape.NewPaper(4, -4),
		Width:  64,
		Height: 64,
	},
}
