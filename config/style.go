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

import (
	"fmt"
	"math"

	"seehuhn.de/go/polyshape"
)

// StyleKind selects one of the edge styles.
type StyleKind int

const (
	KindRegular StyleKind = iota
	KindPaper
	KindStar
)

var kindNames = []string{
	KindRegular: "regular",
	KindPaper:   "paper",
	KindStar:    "star",
}

func (k StyleKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("StyleKind(%d)", int(k))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (k StyleKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("invalid style kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The empty string selects KindRegular.
func (k *StyleKind) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		*k = KindRegular
		return nil
	}
	for i, name := range kindNames {
		if name == s {
			*k = StyleKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown edge style %q", s)
}

// Style describes an edge style.  Only the fields belonging to Kind are
// used.
type Style struct {
	Kind StyleKind `yaml:"kind"`

	// paper
	OffsetX float64 `yaml:"offset_x,omitempty"`
	OffsetY float64 `yaml:"offset_y,omitempty"`

	// star
	RadiusScale float64 `yaml:"radius_scale,omitempty"`
	Concave     bool    `yaml:"concave,omitempty"`
}

// Validate checks the fields belonging to Kind.  A star needs a positive
// radius scale; there is no default, since a zero scale pulls every edge
// through the center.
func (s Style) Validate() error {
	switch s.Kind {
	case KindRegular:
	case KindPaper:
		if !isFinite(s.OffsetX) || !isFinite(s.OffsetY) {
			return fmt.Errorf("%w: paper offset (%g, %g)",
				polyshape.ErrInvalidSpec, s.OffsetX, s.OffsetY)
		}
	case KindStar:
		if !(s.RadiusScale > 0) || math.IsInf(s.RadiusScale, 0) {
			return fmt.Errorf("%w: star radius scale %g",
				polyshape.ErrInvalidSpec, s.RadiusScale)
		}
	default:
		return fmt.Errorf("invalid style kind %d", int(s.Kind))
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// EdgeStyle returns a new edge style with the described configuration.
func (s Style) EdgeStyle() (polyshape.EdgeStyle, error) {
	switch s.Kind {
	case KindRegular:
		return polyshape.Regular{}, nil
	case KindPaper:
		return polyshape.NewPaper(s.OffsetX, s.OffsetY), nil
	case KindStar:
		return polyshape.NewStar(s.RadiusScale, s.Concave), nil
	default:
		return nil, fmt.Errorf("invalid style kind %d", int(s.Kind))
	}
}
