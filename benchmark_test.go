// seehuhn.de/go/pixline - software line rasterization
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

package pixline

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var benchSizes = []int{20, 200, 2000}

// BenchmarkDrawLine draws a fan of lines from the centre to every pixel
// on the border of the buffer.
func BenchmarkDrawLine(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			buf := make([]Color, size*size)
			centre := image.Pt(size/2, size/2)
			border := borderPoints(size)

			b.ReportAllocs()
			for b.Loop() {
				for _, p := range border {
					DrawLine(buf, size, centre, p, Yellow)
				}
			}
		})
	}
}

func BenchmarkRasterizerDraw(b *testing.B) {
	for _, alg := range []Algorithm{DDA, Bresenham} {
		for _, size := range benchSizes {
			b.Run(fmt.Sprintf("%v/%dx%d", alg, size, size), func(b *testing.B) {
				buf := NewBuffer(size, size)
				r := NewRasterizer(rect.Rect{})
				r.Algorithm = alg
				centre := image.Pt(size/2, size/2)
				border := borderPoints(size)

				b.ReportAllocs()
				for b.Loop() {
					for _, p := range border {
						if err := r.Draw(buf, centre, p, Yellow); err != nil {
							b.Fatal(err)
						}
					}
				}
			})
		}
	}
}

// BenchmarkStrokeCircle strokes a circle outline.
func BenchmarkStrokeCircle(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			centre := float64(size) / 2
			radius := float64(size) * 0.45
			circle := makeCirclePath(centre, centre, radius)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				err := r.Stroke(circle, func(x, y int) {
					dst.Pix[y*dst.Stride+x] = 255
				})
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkVectorCircle draws a one pixel wide anti-aliased ring with
// x/image/vector, for comparison with BenchmarkStrokeCircle.
func BenchmarkVectorCircle(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			centre := float32(size) / 2
			radius := float32(size) * 0.45

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, centre, centre, radius+0.5, false)
				addCircleToVector(r, centre, centre, radius-0.5, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// borderPoints lists every pixel on the border of a size x size square.
func borderPoints(size int) []image.Point {
	var res []image.Point
	for i := range size - 1 {
		res = append(res,
			image.Pt(i, 0),
			image.Pt(size-1, i),
			image.Pt(size-1-i, size-1),
			image.Pt(0, size-1-i))
	}
	return res
}

// makeCirclePath creates a closed circle using four cubic Bézier curves.
// Uses a stack-allocated buffer to avoid heap allocations.
func makeCirclePath(cx, cy, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		// Magic number for circular arc approximation with cubic Bézier
		const k = 0.5522847498
		kr := k * r

		var buf [3]vec.Vec2

		buf[0] = vec.Vec2{X: cx, Y: cy - r}
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + kr, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - kr}, vec.Vec2{X: cx + r, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + r, Y: cy + kr}, vec.Vec2{X: cx + kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - kr, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + kr}, vec.Vec2{X: cx - r, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - r, Y: cy - kr}, vec.Vec2{X: cx - kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
