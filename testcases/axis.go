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

var axisCases = []TestCase{
	{Name: "horizontal", Width: 10, Height: 10, Op: seg(2, 5, 7, 5)},
	{Name: "horizontal_reversed", Width: 10, Height: 10, Op: seg(7, 5, 2, 5)},
	{Name: "horizontal_full_row", Width: 32, Height: 8, Op: seg(0, 0, 31, 0)},
	{Name: "vertical", Width: 10, Height: 10, Op: seg(3, 1, 3, 4)},
	{Name: "vertical_reversed", Width: 10, Height: 10, Op: seg(3, 4, 3, 1)},
	{Name: "vertical_full_column", Width: 8, Height: 32, Op: seg(7, 0, 7, 31)},
	{Name: "degenerate", Width: 10, Height: 10, Op: seg(4, 4, 4, 4)},
	{Name: "degenerate_origin", Width: 1, Height: 1, Op: seg(0, 0, 0, 0)},
	{Name: "single_step_right", Width: 4, Height: 4, Op: seg(1, 1, 2, 1)},
	{Name: "single_step_down", Width: 4, Height: 4, Op: seg(1, 1, 1, 2)},
}
