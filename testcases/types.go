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

// Package testcases defines named line rasterization test cases, shared by
// the tests, the benchmarks and the export and genpdf commands.
package testcases

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // segment or stroke
	CTM    matrix.Matrix // transformation matrix for strokes (zero-value means no transform)
}

// Operation is the rendering operation of a test case.
type Operation interface {
	isOperation()
}

// Segment draws a single line between two pixels.
type Segment struct {
	Start, End image.Point
}

func (Segment) isOperation() {}

// Stroke draws a path as a sequence of one pixel wide lines.
type Stroke struct {
	Path      path.Path
	Dash      []float64 // dash pattern in pixel steps (nil for solid)
	DashPhase float64   // dash phase offset
}

func (Stroke) isOperation() {}

// Forward reports whether a segment is drawn in the direction of
// increasing coordinates on axis-aligned lines. Diagonal segments always
// count as forward.
func (s Segment) Forward() bool {
	switch {
	case s.Start.Y == s.End.Y:
		return s.End.X >= s.Start.X
	case s.Start.X == s.End.X:
		return s.End.Y >= s.Start.Y
	default:
		return true
	}
}

// seg is a helper to create a Segment from coordinates.
func seg(x0, y0, x1, y1 int) Segment {
	return Segment{Start: image.Pt(x0, y0), End: image.Pt(x1, y1)}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
