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

import "seehuhn.de/go/polyshape"

var paperCases = []TestCase{
	{
		Name:   "pentagon",
		Spec:   centered(128, 5, 0),
		Style:  polyshape.NewPaper(-15, 25),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "hexagon",
		Spec:   centered(64, 6, 0),
		Style:  polyshape.NewPaper(5, 5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zero_offset",
		Spec:   centered(64, 6, 0),
		Style:  polyshape.NewPaper(0, 0),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "triangle",
		Spec:   centered(64, 3, 0),
		Style:  polyshape.NewPaper(-6, 0),
		Width:  64,
		Height: 64,
	},
}
