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

// longCases contain long lines, where the per-step truncation of the
// float32 slope has most room to drift away from the integer walker.
var longCases = []TestCase{
	{Name: "long_shallow", Width: 1024, Height: 512, Op: seg(0, 0, 1023, 377)},
	{Name: "long_steep", Width: 512, Height: 1024, Op: seg(3, 1020, 500, 0)},
	{Name: "long_prime_slope", Width: 2048, Height: 2048, Op: seg(10, 7, 2039, 1999)},
	{Name: "window_centre_to_corner", Width: 800, Height: 600, Op: seg(400, 300, 0, 0)},
	{Name: "window_centre_to_edge", Width: 800, Height: 600, Op: seg(400, 300, 799, 417)},
}
