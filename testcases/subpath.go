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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Width:  64,
		Height: 64,
		Op:     Stroke{Path: twoTriangles(16, 32, 48, 32, 12)},
	},
	{
		Name:   "open_then_closed",
		Width:  64,
		Height: 64,
		Op: Stroke{Path: concat(
			polyline(false, pt(4, 4), pt(60, 4)),
			polyline(true, pt(20, 20), pt(44, 20), pt(44, 44), pt(20, 44)),
		)},
	},
	{
		Name:   "grid",
		Width:  64,
		Height: 64,
		Op:     Stroke{Path: grid(8, 8, 56, 56, 6)},
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) path.Path {
	return concat(
		polyline(true, pt(cx1, cy1-size), pt(cx1+size, cy1+size), pt(cx1-size, cy1+size)),
		polyline(true, pt(cx2, cy2-size), pt(cx2+size, cy2+size), pt(cx2-size, cy2+size)),
	)
}

// grid builds n+1 horizontal and n+1 vertical open lines.
func grid(x0, y0, x1, y1 float64, n int) path.Path {
	var parts []path.Path
	for i := range n + 1 {
		t := float64(i) / float64(n)
		y := y0 + t*(y1-y0)
		x := x0 + t*(x1-x0)
		parts = append(parts,
			polyline(false, pt(x0, y), pt(x1, y)),
			polyline(false, pt(x, y0), pt(x, y1)),
		)
	}
	return concat(parts...)
}

// concat joins several paths into one.
func concat(parts ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range parts {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}
