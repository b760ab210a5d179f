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
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polyshape"
)

func TestLoadFile(t *testing.T) {
	shapes, err := LoadFile("testdata/shapes.yaml")
	require.NoError(t, err)
	require.Len(t, shapes, 4)

	seal := shapes[0]
	assert.Equal(t, "seal", seal.Name)
	assert.Equal(t, 16, seal.Vertices)
	assert.Equal(t, Style{Kind: KindStar, RadiusScale: 0.8}, seal.Style)
	assert.Equal(t, Layout{Width: 200, Height: 200, Border: 15, Shadow: 15}, seal.Layout)

	flower := shapes[1]
	assert.True(t, flower.Style.Concave)

	sketch := shapes[2]
	assert.Equal(t, 18.0, sketch.Rotation)
	assert.Equal(t, Style{Kind: KindPaper, OffsetX: -15, OffsetY: 25}, sketch.Style)
	assert.Equal(t, Padding{Left: 8, Top: 8, Right: 8, Bottom: 8}, sketch.Layout.Padding)

	plain := shapes[3]
	assert.Equal(t, DefaultVertices, plain.Vertices)
	assert.Equal(t, KindRegular, plain.Style.Kind)
}

func TestLoadBuild(t *testing.T) {
	shapes, err := LoadFile("testdata/shapes.yaml")
	require.NoError(t, err)

	for _, s := range shapes {
		p, err := s.Build()
		require.NoError(t, err, s.Name)
		assert.Equal(t, path.CmdMoveTo, p.Cmds[0], s.Name)
		assert.Equal(t, path.CmdClose, p.Cmds[len(p.Cmds)-1], s.Name)
	}
}

func TestLoadEmpty(t *testing.T) {
	shapes, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, shapes)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"unknown style": `
shapes:
  - name: bad
    style: {kind: wobbly}
    layout: {width: 10, height: 10}
`,
		"too few vertices": `
shapes:
  - name: circle
    vertices: 0
    layout: {width: 10, height: 10}
`,
		"nan width": `
shapes:
  - name: nan
    layout: {width: .nan, height: 10}
`,
		"not yaml": "shapes: [",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestLoadInvalidSpec(t *testing.T) {
	in := `
shapes:
  - name: passthrough
    vertices: 1
    layout: {width: 10, height: 10}
`
	_, err := Load(strings.NewReader(in))
	assert.ErrorIs(t, err, polyshape.ErrInvalidSpec)
	assert.ErrorContains(t, err, "passthrough")
}

func TestLoadStarWithoutRadius(t *testing.T) {
	in := `
shapes:
  - name: spiky
    style: {kind: star}
    layout: {width: 10, height: 10}
`
	_, err := Load(strings.NewReader(in))
	assert.ErrorIs(t, err, polyshape.ErrInvalidSpec)
	assert.ErrorContains(t, err, "spiky")
	assert.ErrorContains(t, err, "radius scale")
}

func TestStyleValidate(t *testing.T) {
	valid := []Style{
		{},
		{Kind: KindPaper},
		{Kind: KindPaper, OffsetX: -15, OffsetY: 25},
		{Kind: KindStar, RadiusScale: 0.8},
		{Kind: KindStar, RadiusScale: 1, Concave: true},
		{Kind: KindRegular, RadiusScale: 0},
	}
	for _, s := range valid {
		assert.NoError(t, s.Validate(), "%+v", s)
	}

	invalid := []Style{
		{Kind: KindStar},
		{Kind: KindStar, RadiusScale: -0.5},
		{Kind: KindStar, RadiusScale: math.NaN()},
		{Kind: KindStar, RadiusScale: math.Inf(1)},
		{Kind: KindPaper, OffsetX: math.NaN()},
		{Kind: KindPaper, OffsetY: math.Inf(-1)},
	}
	for _, s := range invalid {
		assert.ErrorIs(t, s.Validate(), polyshape.ErrInvalidSpec, "%+v", s)
	}

	assert.Error(t, Style{Kind: 7}.Validate())
}

func TestFit(t *testing.T) {
	l := Layout{
		Width:   200,
		Height:  300,
		Padding: Padding{Left: 10, Top: 20, Right: 30, Bottom: 40},
		Border:  5,
		Shadow:  7.5,
	}
	center, diameter := l.Fit()
	assert.Equal(t, 135.0, diameter)
	assert.Equal(t, vec.Vec2{X: 100, Y: 110}, center)

	// without decorations the polygon touches the shorter sides
	center, diameter = Layout{Width: 80, Height: 60}.Fit()
	assert.Equal(t, 60.0, diameter)
	assert.Equal(t, vec.Vec2{X: 30, Y: 30}, center)

	_, diameter = Layout{Width: 10, Height: 10, Border: 20}.Fit()
	assert.Equal(t, 0.0, diameter)
}

func TestStyleKindText(t *testing.T) {
	for _, k := range []StyleKind{KindRegular, KindPaper, KindStar} {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var back StyleKind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
	}

	var k StyleKind
	assert.Error(t, k.UnmarshalText([]byte("Star")))
	_, err := StyleKind(17).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "StyleKind(17)", StyleKind(17).String())
}

func TestStyleEdgeStyle(t *testing.T) {
	style, err := Style{Kind: KindStar, RadiusScale: 0.5, Concave: true}.EdgeStyle()
	require.NoError(t, err)
	assert.Equal(t, polyshape.NewStar(0.5, true), style)

	style, err = Style{Kind: KindPaper, OffsetX: 1, OffsetY: 2}.EdgeStyle()
	require.NoError(t, err)
	assert.Equal(t, polyshape.NewPaper(1, 2), style)

	style, err = Style{}.EdgeStyle()
	require.NoError(t, err)
	assert.Equal(t, polyshape.Regular{}, style)

	_, err = Style{Kind: -1}.EdgeStyle()
	assert.Error(t, err)
}

func TestShapeRoundTrip(t *testing.T) {
	in := Shape{
		Name:     "seal",
		Vertices: 16,
		Rotation: 10,
		Style:    Style{Kind: KindStar, RadiusScale: 0.8},
		Layout:   Layout{Width: 100, Height: 100, Border: 4},
	}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: star")

	var out Shape
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
