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

// Package pixline draws one pixel wide, aliased lines into packed RGB
// pixel buffers.
//
// [DrawLine] is the minimal form: a digital differential analyzer (DDA)
// which steps along the dominant axis and truncates the slope contribution
// on the other axis, without any bounds checks. A [Rasterizer] adds bounds
// checking against a clip rectangle, symmetric handling of reversed
// segments, an integer Bresenham walker, dash patterns and the stroking of
// paths given in user space.
package pixline

//go:generate go run ./testcases/export

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pixline/testcases"
)

// RenderCase draws a test case into dst using c for all set pixels.
// The rasterizer's Algorithm, IncludeEnd and Flatness settings are
// honoured. Clip is set to the buffer area; CTM, Dash and DashPhase are
// taken from the test case.
func RenderCase(tc testcases.TestCase, r *Rasterizer, dst *Buffer, c Color) error {
	if dst.Width < tc.Width || dst.Height < tc.Height {
		return fmt.Errorf("pixline: %s: buffer %dx%d smaller than %dx%d",
			tc.Name, dst.Width, dst.Height, tc.Width, tc.Height)
	}

	switch op := tc.Op.(type) {
	case testcases.Segment:
		r.Clip = dst.Clip()
		r.Dash = nil
		r.DashPhase = 0
		return r.Draw(dst, op.Start, op.End, c)

	case testcases.Stroke:
		r.Clip = dst.Clip()
		r.CTM = matrix.Identity
		if tc.CTM != (matrix.Matrix{}) {
			r.CTM = tc.CTM
		}
		r.Dash = op.Dash
		r.DashPhase = op.DashPhase
		return r.Stroke(op.Path, func(x, y int) {
			dst.Pix[y*dst.Width+x] = c
		})

	default:
		return fmt.Errorf("pixline: %s: unknown operation %T", tc.Name, tc.Op)
	}
}
