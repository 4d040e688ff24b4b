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

var dashCases = []TestCase{
	{
		Name:   "simple",
		Width:  64,
		Height: 16,
		Op:     Stroke{Path: polyline(false, pt(2, 8), pt(62, 8)), Dash: []float64{4, 2}},
	},
	{
		Name:   "phase",
		Width:  64,
		Height: 16,
		Op:     Stroke{Path: polyline(false, pt(2, 8), pt(62, 8)), Dash: []float64{4, 2}, DashPhase: 3},
	},
	{
		Name:   "negative_phase",
		Width:  64,
		Height: 16,
		Op:     Stroke{Path: polyline(false, pt(2, 8), pt(62, 8)), Dash: []float64{4, 2}, DashPhase: -1},
	},
	{
		Name:   "odd_pattern",
		Width:  64,
		Height: 16,
		Op:     Stroke{Path: polyline(false, pt(2, 8), pt(62, 8)), Dash: []float64{3}},
	},
	{
		Name:   "across_corner",
		Width:  64,
		Height: 64,
		Op:     Stroke{Path: polyline(true, pt(12, 12), pt(52, 12), pt(52, 52), pt(12, 52)), Dash: []float64{5, 3}},
	},
	{
		Name:   "dotted_diagonal",
		Width:  64,
		Height: 64,
		Op:     Stroke{Path: polyline(false, pt(4, 60), pt(60, 4)), Dash: []float64{1, 1}},
	},
}
