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

// Package polyshape generates closed polygon outlines for use as clipping
// or drawing shapes.
//
// An outline is described by a [Spec] (center, diameter, number of
// vertices and rotation) and an [EdgeStyle] which decides how consecutive
// vertices are joined: [Regular] uses straight lines, [Star] bends every
// edge through a point on a circle around the center, and [Paper] draws
// slightly wavy, hand-drawn looking edges.  [Build] combines the two into a
// path.
package polyshape

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// MinVertices is the smallest vertex count accepted by [Build].
// Smaller counts are used by callers for circles, unclipped images
// and squares, which are not polygon outlines.
const MinVertices = 3

// Spec describes the polygon to generate.
type Spec struct {
	// Center is the center of the circumscribed circle.
	Center vec.Vec2

	// Diameter is the diameter of the circumscribed circle.
	// Must be non-negative.
	Diameter float64

	// Vertices is the number of polygon corners.
	// Must be at least MinVertices.
	Vertices int

	// Rotation rotates all vertices about Center, in degrees.
	Rotation float64
}

// Validate checks that the spec describes a polygon which can be built.
// The returned error wraps ErrInvalidSpec.
func (s Spec) Validate() error {
	switch {
	case s.Vertices < MinVertices:
		return fmt.Errorf("%w: %d vertices, need at least %d",
			ErrInvalidSpec, s.Vertices, MinVertices)
	case math.IsNaN(s.Diameter) || math.IsInf(s.Diameter, 0):
		return fmt.Errorf("%w: diameter %g", ErrInvalidSpec, s.Diameter)
	case s.Diameter < 0:
		return fmt.Errorf("%w: negative diameter %g", ErrInvalidSpec, s.Diameter)
	case !isFinite(s.Center):
		return fmt.Errorf("%w: center %v", ErrInvalidSpec, s.Center)
	case math.IsNaN(s.Rotation) || math.IsInf(s.Rotation, 0):
		return fmt.Errorf("%w: rotation %g", ErrInvalidSpec, s.Rotation)
	}
	return nil
}

// UpdatePosition moves and resizes the polygon, keeping the vertex count
// and rotation.
func (s *Spec) UpdatePosition(center vec.Vec2, diameter float64) {
	s.Center = center
	s.Diameter = diameter
}

// Vertex returns corner i of the polygon, after rotation.
// Vertex 0 of an unrotated polygon lies to the right of the center.
func (s Spec) Vertex(i int) vec.Vec2 {
	return s.rotate(matrix.RotateDeg(s.Rotation), s.raw(i))
}

// raw returns corner i before rotation.
func (s Spec) raw(i int) vec.Vec2 {
	r := s.Diameter / 2
	angle := 2 * math.Pi * float64(i) / float64(s.Vertices)
	return vec.Vec2{
		X: s.Center.X + r*math.Cos(angle),
		Y: s.Center.Y + r*math.Sin(angle),
	}
}

// rotate applies the linear part of m to pt, about the center of s.
func (s Spec) rotate(m matrix.Matrix, pt vec.Vec2) vec.Vec2 {
	d := pt.Sub(s.Center)
	return vec.Vec2{
		X: m[0]*d.X + m[2]*d.Y + s.Center.X,
		Y: m[1]*d.X + m[3]*d.Y + s.Center.Y,
	}
}

func isFinite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
