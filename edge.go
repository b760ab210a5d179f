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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polyshape/intersect"
)

// Context describes the polygon an edge belongs to.
type Context struct {
	Center   vec.Vec2
	Diameter float64
}

// EdgeStyle decides how two consecutive polygon vertices are connected.
//
// Connect appends commands to p which lead from the current point, from,
// to the vertex to.  The last command must end at to.  Connect must not
// retain p.
//
// Styles with configuration are not safe for concurrent use while their
// configuration is being changed.
type EdgeStyle interface {
	Connect(p *path.Data, ctx Context, from, to vec.Vec2) error
}

// Regular connects vertices with straight lines.
type Regular struct{}

// Connect implements the EdgeStyle interface.
func (Regular) Connect(p *path.Data, _ Context, _, to vec.Vec2) error {
	p.LineTo(to)
	return nil
}

// Paper connects vertices with quadratic curves whose control point is
// the target vertex shifted by a fixed offset.  All edges bulge in the
// same direction on the page, which gives a hand-drawn look.
type Paper struct {
	OffsetX, OffsetY float64
}

// NewPaper returns a Paper style with the given offset.
func NewPaper(dx, dy float64) *Paper {
	return &Paper{OffsetX: dx, OffsetY: dy}
}

// UpdateOffsets changes the control point offset.
func (s *Paper) UpdateOffsets(dx, dy float64) {
	s.OffsetX = dx
	s.OffsetY = dy
}

// Connect implements the EdgeStyle interface.
func (s *Paper) Connect(p *path.Data, _ Context, _, to vec.Vec2) error {
	ctrl := to.Add(vec.Vec2{X: s.OffsetX, Y: s.OffsetY})
	p.QuadTo(ctrl, to)
	return nil
}

// Star connects each pair of vertices through a star point.
//
// The star point lies on the circle of radius RadiusScale*Diameter/2
// around the polygon center, in the direction of the edge midpoint.  With
// RadiusScale 1 it lies on the circumscribed circle and the outline gets
// spikes; smaller values pull the edges towards the center.
type Star struct {
	// RadiusScale is the star point radius as a fraction of the
	// polygon radius.
	RadiusScale float64

	// Concave selects a single quadratic curve with the star point as
	// control point.  Otherwise the edge is drawn as two straight lines
	// meeting at the star point.
	Concave bool
}

// NewStar returns a Star style.
func NewStar(radiusScale float64, concave bool) *Star {
	return &Star{RadiusScale: radiusScale, Concave: concave}
}

// SetRadiusScale changes the star point radius.
func (s *Star) SetRadiusScale(scale float64) {
	s.RadiusScale = scale
}

// SetConcave switches between curved and straight star edges.
func (s *Star) SetConcave(concave bool) {
	s.Concave = concave
}

// Connect implements the EdgeStyle interface.
func (s *Star) Connect(p *path.Data, ctx Context, from, to vec.Vec2) error {
	mid := from.Add(to).Mul(0.5)
	radius := ctx.Diameter / 2 * s.RadiusScale

	// The line runs from the edge midpoint through the center, and the
	// circle is centered on the second line point.
	pts, err := intersect.CircleLine(mid, ctx.Center, ctx.Center, radius)
	if err != nil {
		return wrapIntersect(err)
	}
	if len(pts) == 0 {
		return fmt.Errorf("%w: no star point for edge %v-%v",
			ErrDegenerateGeometry, from, to)
	}
	star := pts[0]

	if s.Concave {
		p.QuadTo(star, to)
	} else {
		p.LineTo(star)
		p.LineTo(to)
	}
	return nil
}

// ClosingEdger is an optional interface for edge styles.  If
// DrawsClosingEdge returns false, Build leaves the edge from the last
// vertex back to the first to the ClosePath command, which draws a
// straight line.  Styles which do not implement ClosingEdger draw the
// closing edge themselves.
type ClosingEdger interface {
	DrawsClosingEdge() bool
}

// DrawsClosingEdge implements the ClosingEdger interface.
// Regular edges are straight, so ClosePath draws the closing edge.
func (Regular) DrawsClosingEdge() bool {
	return false
}

// drawsClosingEdge reports whether Build must call style.Connect for the
// edge from the last vertex back to the first.
func drawsClosingEdge(style EdgeStyle) bool {
	if c, ok := style.(ClosingEdger); ok {
		return c.DrawsClosingEdge()
	}
	return true
}
