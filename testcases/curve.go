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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Width:  64,
		Height: 64,
		Op:     Stroke{Path: quadraticCurve(10, 50, 32, 10, 54, 50)},
	},
	{
		Name:   "quadratic_shallow",
		Width:  64,
		Height: 64,
		Op:     Stroke{Path: quadraticCurve(10, 32, 32, 28, 54, 32)}, // control point near chord
	},
	{
		Name:   "cubic",
		Width:  64,
		Height: 64,
		Op:     Stroke{Path: cubicCurve(10, 50, 20, 10, 44, 10, 54, 50)},
	},
	{
		Name:   "cubic_scurve",
		Width:  64,
		Height: 64,
		Op:     Stroke{Path: cubicCurve(10, 50, 10, 10, 54, 54, 54, 14)}, // inflection
	},
	{
		Name:   "cubic_loop",
		Width:  64,
		Height: 64,
		Op:     Stroke{Path: cubicCurve(10, 32, 60, 5, 4, 59, 54, 32)}, // self-intersecting
	},
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Op:     Stroke{Path: circle(32, 32, 25)},
	},
}

// quadraticCurve builds an open path with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(x1, y1)}) {
			return
		}
		yield(path.CmdQuadTo, []vec.Vec2{pt(cx, cy), pt(x2, y2)})
	}
}

// cubicCurve builds an open path with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(x1, y1)}) {
			return
		}
		yield(path.CmdCubeTo, []vec.Vec2{pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)})
	}
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) path.Path {
	k := r * kappa
	quadrants := [][]vec.Vec2{
		{pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)}, // top-right
		{pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)}, // top-left
		{pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)}, // bottom-left
		{pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)}, // bottom-right
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(cx+r, cy)}) {
			return
		}
		for _, q := range quadrants {
			if !yield(path.CmdCubeTo, q) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
