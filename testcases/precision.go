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

// precisionCases exercise the truncation of the slope toward zero.
var precisionCases = []TestCase{
	{Name: "slope_third", Width: 16, Height: 8, Op: seg(0, 0, 9, 3)},
	{Name: "slope_third_negative", Width: 16, Height: 8, Op: seg(0, 3, 9, 0)},
	{Name: "slope_two_thirds", Width: 16, Height: 16, Op: seg(0, 0, 9, 6)},
	{Name: "slope_seven_tenths", Width: 16, Height: 16, Op: seg(0, 0, 10, 7)},
	{Name: "steep_seven_tenths", Width: 16, Height: 16, Op: seg(0, 0, 7, 10)},
	{Name: "leftward_shallow", Width: 16, Height: 16, Op: seg(14, 2, 1, 7)},
	{Name: "upward_steep", Width: 16, Height: 16, Op: seg(6, 14, 2, 1)},
}
