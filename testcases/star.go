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

var starCases = []TestCase{
	// spikes: star points on the circumscribed circle
	{
		Name:   "spiky_odd",
		Spec:   centered(64, 5, 0),
		Style:  polyshape.NewStar(1, false),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "spiky_even",
		Spec:   centered(64, 6, 0),
		Style:  polyshape.NewStar(1, false),
		Width:  64,
		Height: 64,
	},

	// star points inside the polygon
	{
		Name:   "inner_odd",
		Spec:   centered(64, 5, 0),
		Style:  polyshape.NewStar(0.4, false),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "inner_even",
		Spec:   centered(64, 8, 0),
		Style:  polyshape.NewStar(0.4, false),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "seal",
		Spec:   centered(128, 16, 0),
		Style:  polyshape.NewStar(0.8, false),
		Width:  128,
		Height: 128,
	},

	// concave edges
	{
		Name:   "flower",
		Spec:   centered(128, 23, 0),
		Style:  polyshape.NewStar(0.8, true),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "concave_odd",
		Spec:   centered(64, 5, 0),
		Style:  polyshape.NewStar(0.3, true),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "concave_even",
		Spec:   centered(64, 6, 0),
		Style:  polyshape.NewStar(0.3, true),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bulging",
		Spec:   centered(64, 4, 0),
		Style:  polyshape.NewStar(1, true),
		Width:  64,
		Height: 64,
	},
}
