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
	"errors"
	"fmt"

	"seehuhn.de/go/polyshape/intersect"
)

var (
	// ErrInvalidSpec indicates that a Spec cannot be turned into a polygon,
	// for example because it has fewer than three vertices.
	ErrInvalidSpec = errors.New("invalid polygon spec")

	// ErrDegenerateGeometry indicates that an edge style could not place
	// its control points, for example because the edge midpoint coincides
	// with the polygon center.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrArithmetic indicates that a computation produced NaN or an
	// infinite value.
	ErrArithmetic = errors.New("non-finite coordinate")
)

// wrapIntersect maps an error from the intersect package to the
// corresponding error kind of this package.  Both errors remain visible
// to errors.Is.
func wrapIntersect(err error) error {
	if errors.Is(err, intersect.ErrNonFinite) {
		return fmt.Errorf("%w: %w", ErrArithmetic, err)
	}
	return fmt.Errorf("%w: %w", ErrDegenerateGeometry, err)
}
