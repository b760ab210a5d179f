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

// Package config reads polygon shape descriptions from YAML files.
//
// A file contains a list of shapes:
//
//	shapes:
//	  - name: seal
//	    vertices: 16
//	    style:
//	      kind: star
//	      radius_scale: 0.8
//	    layout:
//	      width: 200
//	      height: 200
//	      border: 15
//	      shadow: 7.5
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/polyshape"
)

// DefaultVertices is the vertex count used when a shape does not give one.
const DefaultVertices = 6

// Shape describes one polygon outline and the canvas it is drawn on.
type Shape struct {
	Name     string  `yaml:"name"`
	Vertices int     `yaml:"vertices"`
	Rotation float64 `yaml:"rotation,omitempty"`
	Style    Style   `yaml:"style,omitempty"`
	Layout   Layout  `yaml:"layout"`
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
// It fills in defaults for fields missing from the input.
func (s *Shape) UnmarshalYAML(node *yaml.Node) error {
	type plain Shape
	tmp := plain{Vertices: DefaultVertices}
	if err := node.Decode(&tmp); err != nil {
		return err
	}
	*s = Shape(tmp)
	return nil
}

// Spec returns the polygon spec for the shape, fitted to its layout.
func (s *Shape) Spec() polyshape.Spec {
	center, diameter := s.Layout.Fit()
	return polyshape.Spec{
		Center:   center,
		Diameter: diameter,
		Vertices: s.Vertices,
		Rotation: s.Rotation,
	}
}

// Build returns the outline of the shape.
func (s *Shape) Build() (*path.Data, error) {
	style, err := s.Style.EdgeStyle()
	if err != nil {
		return nil, err
	}
	return polyshape.Build(s.Spec(), style)
}

type file struct {
	Shapes []Shape `yaml:"shapes"`
}

// Load reads shape descriptions from r and checks that each of them
// describes a valid polygon with a valid edge style.
func Load(r io.Reader) ([]Shape, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	for i := range f.Shapes {
		s := &f.Shapes[i]
		if err := s.Spec().Validate(); err != nil {
			return nil, fmt.Errorf("shape %d (%q): %w", i, s.Name, err)
		}
		if err := s.Style.Validate(); err != nil {
			return nil, fmt.Errorf("shape %d (%q): %w", i, s.Name, err)
		}
	}
	return f.Shapes, nil
}

// LoadFile reads shape descriptions from the named file.
func LoadFile(name string) (shapes []Shape, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	shapes, err = Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return shapes, nil
}
