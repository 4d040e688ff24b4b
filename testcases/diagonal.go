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

var diagonalCases = []TestCase{
	// shallow and steep reference cases
	{Name: "shallow", Width: 10, Height: 10, Op: seg(0, 0, 4, 2)},
	{Name: "steep", Width: 10, Height: 10, Op: seg(0, 0, 2, 4)},

	// 45 degree lines in all four directions
	{Name: "diag_se", Width: 16, Height: 16, Op: seg(2, 2, 12, 12)},
	{Name: "diag_nw", Width: 16, Height: 16, Op: seg(12, 12, 2, 2)},
	{Name: "diag_ne", Width: 16, Height: 16, Op: seg(2, 12, 12, 2)},
	{Name: "diag_sw", Width: 16, Height: 16, Op: seg(12, 2, 2, 12)},

	// one line per octant, all starting at the centre
	{Name: "octant_0", Width: 32, Height: 32, Op: seg(16, 16, 29, 21)},
	{Name: "octant_1", Width: 32, Height: 32, Op: seg(16, 16, 21, 29)},
	{Name: "octant_2", Width: 32, Height: 32, Op: seg(16, 16, 11, 29)},
	{Name: "octant_3", Width: 32, Height: 32, Op: seg(16, 16, 3, 21)},
	{Name: "octant_4", Width: 32, Height: 32, Op: seg(16, 16, 3, 11)},
	{Name: "octant_5", Width: 32, Height: 32, Op: seg(16, 16, 11, 3)},
	{Name: "octant_6", Width: 32, Height: 32, Op: seg(16, 16, 21, 3)},
	{Name: "octant_7", Width: 32, Height: 32, Op: seg(16, 16, 29, 11)},

	// nearly axis-aligned
	{Name: "almost_horizontal", Width: 64, Height: 8, Op: seg(1, 3, 62, 4)},
	{Name: "almost_vertical", Width: 8, Height: 64, Op: seg(3, 1, 4, 62)},
}
