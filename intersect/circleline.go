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

// Package intersect computes intersections between simple geometric
// primitives.
package intersect

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/vec"
)

var (
	// ErrCoincident is returned when the two points defining a line are equal.
	ErrCoincident = errors.New("line points coincide")

	// ErrNonFinite is returned when the computation produced NaN or ±Inf.
	ErrNonFinite = errors.New("non-finite intersection")
)

// CircleLine returns the intersections of the infinite line through a and
// b with the circle of the given center and radius.
//
// The result has zero points if the line misses the circle, one point if
// the line is tangent, and two points otherwise.  The points are found
// by solving |a - t(b-a) - center| = radius for t; the point for the root
// -p+√disc comes first.
func CircleLine(a, b, center vec.Vec2, radius float64) ([]vec.Vec2, error) {
	ba := b.Sub(a)
	ca := center.Sub(a)

	qa := ba.Dot(ba)
	if qa == 0 {
		return nil, ErrCoincident
	}
	qb := ba.Dot(ca)
	qc := ca.Dot(ca) - radius*radius

	p := qb / qa
	q := qc / qa

	disc := p*p - q
	if disc < 0 {
		return nil, nil
	}

	s := math.Sqrt(disc)
	p1 := a.Sub(ba.Mul(-p + s))
	if !isFinite(p1) {
		return nil, ErrNonFinite
	}
	if disc == 0 {
		return []vec.Vec2{p1}, nil
	}
	p2 := a.Sub(ba.Mul(-p - s))
	if !isFinite(p2) {
		return nil, ErrNonFinite
	}
	return []vec.Vec2{p1, p2}, nil
}

func isFinite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
