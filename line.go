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
	"fmt"
	"image"
	"iter"
)

// DrawLine writes c into every pixel on the straight path from start to
// end. The start pixel is written, the end pixel is not.
//
// Horizontal and vertical segments are only drawn in the direction of
// increasing coordinates: if end.X < start.X (horizontal) or end.Y <
// start.Y (vertical), nothing is drawn. Diagonal segments work in all
// directions. For each step along the dominant axis, the coordinate on the
// other axis is obtained by truncating the accumulated float32 slope
// toward zero. Use a [Rasterizer] for symmetric behaviour, bounds
// checking, or integer arithmetic.
//
// The caller must ensure that every written pixel lies inside the buffer,
// i.e. that buf holds at least width*height elements and both endpoints
// satisfy 0 <= x < width and 0 <= y < height. DrawLine does not allocate.
func DrawLine(buf []Color, width int, start, end image.Point, c Color) {
	walkLegacy(start, end, func(x, y int) {
		buf[y*width+x] = c
	})
}

// Algorithm selects how a [Rasterizer] steps along a line.
type Algorithm int

const (
	// DDA steps along the dominant axis and truncates the float32 slope
	// contribution toward zero on the other axis. Wherever [DrawLine]
	// draws a segment, DDA visits the same pixels in the same order;
	// reversed horizontal and vertical segments are stepped backwards
	// instead of being skipped.
	DDA Algorithm = iota

	// Bresenham uses an integer error accumulator. The result rounds to
	// the nearest pixel and is reproducible across platforms.
	Bresenham
)

func (a Algorithm) String() string {
	switch a {
	case DDA:
		return "dda"
	case Bresenham:
		return "bresenham"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm converts the name returned by [Algorithm.String] back
// into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "dda":
		return DDA, nil
	case "bresenham":
		return Bresenham, nil
	}
	return 0, fmt.Errorf("pixline: unknown algorithm %q", name)
}

// Points returns the sequence of pixels the given algorithm visits between
// start and end. If includeEnd is false, the end pixel is omitted.
func Points(start, end image.Point, alg Algorithm, includeEnd bool) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		// walkers have no early exit; remember when the consumer stopped
		stopped := false
		walk(alg, start, end, includeEnd, func(x, y int) {
			if stopped {
				return
			}
			stopped = !yield(image.Point{X: x, Y: y})
		})
	}
}

// StepCount returns the number of pixels a line from start to end covers,
// excluding the end pixel: max(|dx|, |dy|).
func StepCount(start, end image.Point) int {
	return max(abs(end.X-start.X), abs(end.Y-start.Y))
}

// walk dispatches to the walker for alg.
func walk(alg Algorithm, start, end image.Point, includeEnd bool, plot func(x, y int)) {
	if alg == Bresenham {
		walkBresenham(start, end, includeEnd, plot)
	} else {
		walkDDA(start, end, includeEnd, plot)
	}
}

// walkLegacy implements the three-case algorithm behind DrawLine.
func walkLegacy(start, end image.Point, plot func(x, y int)) {
	// horizontal
	if start.Y == end.Y {
		for x := start.X; x < end.X; x++ {
			plot(x, start.Y)
		}
		return
	}

	// vertical
	if start.X == end.X {
		for y := start.Y; y < end.Y; y++ {
			plot(start.X, y)
		}
		return
	}

	// diagonal
	dx := end.X - start.X
	dy := end.Y - start.Y
	slope := float32(dy) / float32(dx)

	if abs(dx) >= abs(dy) {
		sx := sign(dx)
		for i := range abs(dx) {
			s := i * sx
			plot(start.X+s, start.Y+int(float32(s)*slope))
		}
	} else {
		sy := sign(dy)
		for i := range abs(dy) {
			s := i * sy
			plot(start.X+int(float32(s)/slope), start.Y+s)
		}
	}
}

// walkDDA is the direction-symmetric form of walkLegacy.
func walkDDA(start, end image.Point, includeEnd bool, plot func(x, y int)) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	adx, ady := abs(dx), abs(dy)

	// Keep the arithmetic of walkLegacy, so that both agree pixel for
	// pixel on the segments walkLegacy draws.
	var slope float32
	if dx != 0 {
		slope = float32(dy) / float32(dx)
	}

	if adx >= ady {
		sx := sign(dx)
		for i := range adx {
			s := i * sx
			plot(start.X+s, start.Y+int(float32(s)*slope))
		}
	} else {
		sy := sign(dy)
		for i := range ady {
			s := i * sy
			x := start.X
			if dx != 0 {
				x += int(float32(s) / slope)
			}
			plot(x, start.Y+s)
		}
	}

	// The end pixel is plotted exactly, since dx*(dy/dx) need not round
	// back to dy in float32.
	if includeEnd {
		plot(end.X, end.Y)
	}
}

// walkBresenham steps along the line using an integer error term.
func walkBresenham(start, end image.Point, includeEnd bool, plot func(x, y int)) {
	dx := abs(end.X - start.X)
	dy := -abs(end.Y - start.Y)
	sx := sign(end.X - start.X)
	sy := sign(end.Y - start.Y)

	n := max(dx, -dy)
	if includeEnd {
		n++
	}

	err := dx + dy
	x, y := start.X, start.Y
	for range n {
		plot(x, y)
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
