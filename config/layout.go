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

package config

import "seehuhn.de/go/geom/vec"

// Padding is the space left free on each side of a canvas.
type Padding struct {
	Left   float64 `yaml:"left,omitempty"`
	Top    float64 `yaml:"top,omitempty"`
	Right  float64 `yaml:"right,omitempty"`
	Bottom float64 `yaml:"bottom,omitempty"`
}

// Layout describes the canvas a polygon is placed on.
type Layout struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding Padding `yaml:"padding,omitempty"`

	// Border and Shadow reserve room for a border of the given width and
	// a shadow of the given radius around the outline.  Zero means none.
	Border float64 `yaml:"border,omitempty"`
	Shadow float64 `yaml:"shadow,omitempty"`
}

// Fit returns the largest polygon position and diameter which fit the
// layout.
//
// The diameter is the smaller of the available width and height, after
// removing the padding and twice the border and shadow.  On each axis the
// center is half the diameter plus half the padding plus border and shadow.
// If nothing fits, the diameter is zero.
func (l Layout) Fit() (center vec.Vec2, diameter float64) {
	extra := l.Border + l.Shadow
	xPad := l.Padding.Left + l.Padding.Right + 2*extra
	yPad := l.Padding.Top + l.Padding.Bottom + 2*extra
	diameter = max(0, min(l.Width-xPad, l.Height-yPad))

	center = vec.Vec2{
		X: diameter/2 + (l.Padding.Left+l.Padding.Right)/2 + extra,
		Y: diameter/2 + (l.Padding.Top+l.Padding.Bottom)/2 + extra,
	}
	return center, diameter
}
