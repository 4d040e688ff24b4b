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
	"seehuhn.de/go/geom/matrix"
)

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Width:  128,
		Height: 128,
		Op:     Stroke{Path: polyline(true, pt(0, 0), pt(20, 0), pt(20, 20), pt(0, 20))},
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "scale_half",
		Width:  64,
		Height: 64,
		Op:     Stroke{Path: polyline(true, pt(0, 0), pt(80, 0), pt(80, 80), pt(0, 80))},
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
	},
	{
		Name:   "rotate_45deg",
		Width:  64,
		Height: 64,
		Op:     Stroke{Path: polyline(true, pt(-10, -10), pt(10, -10), pt(10, 10), pt(-10, 10))},
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "rotate_5deg",
		Width:  64,
		Height: 64,
		Op:     Stroke{Path: polyline(true, pt(-20, -10), pt(20, -10), pt(20, 10), pt(-20, 10))},
		CTM:    matrix.RotateDeg(5).Translate(32, 32),
	},
	{
		Name:   "scaled_circle",
		Width:  128,
		Height: 64,
		Op:     Stroke{Path: circle(0, 0, 10)},
		CTM:    matrix.Scale(5, 2.5).Translate(64, 32),
	},
}
