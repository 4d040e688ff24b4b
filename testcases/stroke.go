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

var strokeCases = []TestCase{
	{
		Name:   "horizontal_line",
		Width:  64,
		Height: 16,
		Op:     Stroke{Path: polyline(false, pt(4, 8), pt(60, 8))},
	},
	{
		Name:   "corner",
		Width:  64,
		Height: 64,
		Op:     Stroke{Path: polyline(false, pt(10, 50), pt(32, 10), pt(54, 50))},
	},
	{
		Name:   "zigzag",
		Width:  64,
		Height: 64,
		Op:     Stroke{Path: polyline(false, pt(4, 50), pt(16, 14), pt(28, 50), pt(40, 14), pt(52, 50))},
	},
	{
		Name:   "closed_square",
		Width:  64,
		Height: 64,
		Op:     Stroke{Path: polyline(true, pt(12, 12), pt(52, 12), pt(52, 52), pt(12, 52))},
	},
	{
		Name:   "closed_triangle",
		Width:  64,
		Height: 64,
		Op:     Stroke{Path: polyline(true, pt(10, 50), pt(32, 10), pt(54, 50))},
	},
	{
		Name:   "subpixel_vertices",
		Width:  32,
		Height: 32,
		Op:     Stroke{Path: polyline(false, pt(2.9, 3.1), pt(20.5, 7.75), pt(28.01, 29.99))},
	},
}

// polyline builds a path through the given points.
func polyline(closed bool, pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(pts) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
		if closed {
			yield(path.CmdClose, nil)
		}
	}
}
