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

package pixline

import (
	"errors"
	"fmt"
	"image"

	"seehuhn.de/go/geom/rect"
)

// ErrOutOfBounds is returned (wrapped in a [*BoundsError]) when a line
// would write a pixel outside the clip rectangle.
var ErrOutOfBounds = errors.New("pixline: point out of bounds")

// BoundsError reports a pixel outside the clip rectangle.
type BoundsError struct {
	Point image.Point
	Clip  rect.Rect
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("pixline: point (%d,%d) outside clip [%g,%g)x[%g,%g)",
		e.Point.X, e.Point.Y, e.Clip.LLx, e.Clip.URx, e.Clip.LLy, e.Clip.URy)
}

// Is makes errors.Is(err, ErrOutOfBounds) succeed.
func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// contains reports whether pixel p lies in the half-open clip rectangle.
func contains(clip rect.Rect, p image.Point) bool {
	x, y := float64(p.X), float64(p.Y)
	return x >= clip.LLx && x < clip.URx && y >= clip.LLy && y < clip.URy
}

// intersect returns the intersection of two clip rectangles.
// The result may be empty (URx <= LLx or URy <= LLy).
func intersect(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: max(a.LLx, b.LLx),
		LLy: max(a.LLy, b.LLy),
		URx: min(a.URx, b.URx),
		URy: min(a.URy, b.URy),
	}
}
