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
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// BenchmarkBuild measures outline construction for the different styles.
func BenchmarkBuild(b *testing.B) {
	styles := []struct {
		name  string
		style EdgeStyle
	}{
		{"regular", Regular{}},
		{"paper", NewPaper(-15, 25)},
		{"star", NewStar(0.8, false)},
		{"concave", NewStar(0.8, true)},
	}
	for _, n := range []int{5, 16, 256} {
		spec := Spec{
			Center:   vec.Vec2{X: 100, Y: 100},
			Diameter: 180,
			Vertices: n,
			Rotation: 10,
		}
		for _, s := range styles {
			b.Run(fmt.Sprintf("%s-%d", s.name, n), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					if _, err := Build(spec, s.style); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkBuildAndFill measures building an outline and filling it with
// x/image/vector, the way a caller would use it as a clip mask.
func BenchmarkBuildAndFill(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			spec := Spec{
				Center:   vec.Vec2{X: float64(size) / 2, Y: float64(size) / 2},
				Diameter: float64(size) * 0.9,
				Vertices: 23,
			}
			style := NewStar(0.8, true)
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			b.ReportAllocs()
			for b.Loop() {
				p, err := Build(spec, style)
				if err != nil {
					b.Fatal(err)
				}
				r.Reset(size, size)
				addToVector(r, p)
				r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
			}
		})
	}
}

// fill rasterises p into a new w×h alpha mask using the nonzero rule.
func fill(p *path.Data, w, h int) *image.Alpha {
	r := vector.NewRasterizer(w, h)
	addToVector(r, p)
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	return dst
}

// addToVector replays p on a vector.Rasterizer.
func addToVector(r *vector.Rasterizer, p *path.Data) {
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdLineTo:
			r.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdQuadTo:
			r.QuadTo(float32(pts[0].X), float32(pts[0].Y), float32(pts[1].X), float32(pts[1].Y))
		case path.CmdCubeTo:
			r.CubeTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case path.CmdClose:
			r.ClosePath()
		}
	}
}

// coveredArea returns the area covered by mask, in pixels.
func coveredArea(mask *image.Alpha) float64 {
	var sum int
	for _, a := range mask.Pix {
		sum += int(a)
	}
	return float64(sum) / 255
}
