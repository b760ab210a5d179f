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

package polyshape

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Build returns the closed outline described by spec, with edges drawn
// by style.  A nil style means Regular.
//
// The path starts with a single MoveTo at vertex 0, visits the vertices
// in order of increasing angle, and ends with a ClosePath.  Styles draw
// the closing edge themselves, unless they implement [ClosingEdger] and
// report false.  For Regular the closing edge is the straight line drawn
// by ClosePath.
//
// A new path is returned on every call.  On error, no path is returned.
func Build(spec Spec, style EdgeStyle) (*path.Data, error) {
	if err := spec.Validate(); err != nil {
		Logger().Debug("polyshape: spec rejected", "error", err)
		return nil, err
	}
	if style == nil {
		style = Regular{}
	}

	ctx := Context{Center: spec.Center, Diameter: spec.Diameter}
	rot := matrix.RotateDeg(spec.Rotation)

	p := &path.Data{}
	var first, prev vec.Vec2
	for i := range spec.Vertices {
		cur := spec.rotate(rot, spec.raw(i))
		if i == 0 {
			p.MoveTo(cur)
			first = cur
		} else if err := style.Connect(p, ctx, prev, cur); err != nil {
			return nil, edgeError(i-1, i, err)
		}
		prev = cur
	}
	if drawsClosingEdge(style) {
		if err := style.Connect(p, ctx, prev, first); err != nil {
			return nil, edgeError(spec.Vertices-1, 0, err)
		}
	}
	p.Close()

	for _, pt := range p.Coords {
		if !isFinite(pt) {
			err := fmt.Errorf("%w: %v", ErrArithmetic, pt)
			Logger().Debug("polyshape: outline rejected", "error", err)
			return nil, err
		}
	}
	return p, nil
}

func edgeError(from, to int, err error) error {
	err = fmt.Errorf("edge %d-%d: %w", from, to, err)
	Logger().Debug("polyshape: edge style failed", "error", err)
	return err
}
