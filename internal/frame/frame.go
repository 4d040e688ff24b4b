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

// Package frame connects a window's event stream to the drawing code.
//
// A [Tracker] turns resize and pointer events into the per-frame [Input],
// a [Surface] supplies a correctly sized pixel buffer for every redraw,
// and a [Painter] fills the buffer.
package frame

import (
	"image"

	"seehuhn.de/go/pixline"
)

// Input is the state a painter needs to draw one frame.
type Input struct {
	Width, Height int

	// Cursor is the last known pointer position, clamped into the window.
	// It is only meaningful if HasCursor is set.
	Cursor    image.Point
	HasCursor bool
}

// Painter draws one frame. dst has the size given in the input.
type Painter interface {
	Paint(dst *pixline.Buffer, in Input) error
}

// PainterFunc adapts an ordinary function to the [Painter] interface.
type PainterFunc func(dst *pixline.Buffer, in Input) error

// Paint calls f(dst, in).
func (f PainterFunc) Paint(dst *pixline.Buffer, in Input) error {
	return f(dst, in)
}

// Tracker records window events and decides when a redraw is needed.
// The zero value is a window of size 0x0 with no cursor.
type Tracker struct {
	in    Input
	raw   image.Point
	dirty bool

	first  image.Point
	polled bool
}

// NewTracker returns a tracker for a window of the given size.
func NewTracker(width, height int) *Tracker {
	t := &Tracker{}
	t.Resize(width, height)
	return t
}

// Resize records a change of the window size.
func (t *Tracker) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == t.in.Width && height == t.in.Height {
		return
	}
	t.in.Width = width
	t.in.Height = height
	t.clampCursor()
	t.dirty = true
}

// Move records a pointer position in window coordinates. Positions
// outside the window are clamped to the nearest edge pixel.
func (t *Tracker) Move(x, y int) {
	p := image.Pt(x, y)
	if t.in.HasCursor && p == t.raw {
		return
	}
	t.raw = p
	t.in.HasCursor = true
	t.clampCursor()
	t.dirty = true
}

// Poll records a pointer position read once per frame. Window systems
// report a position even before the pointer has entered the window, so
// the first polled position is only taken as a cursor once the pointer
// has moved away from it.
func (t *Tracker) Poll(x, y int) {
	p := image.Pt(x, y)
	if !t.polled {
		t.first = p
		t.polled = true
		return
	}
	if !t.in.HasCursor && p == t.first {
		return
	}
	t.Move(x, y)
}

func (t *Tracker) clampCursor() {
	if !t.in.HasCursor {
		return
	}
	t.in.Cursor = image.Pt(
		min(max(t.raw.X, 0), max(t.in.Width-1, 0)),
		min(max(t.raw.Y, 0), max(t.in.Height-1, 0)),
	)
}

// Input returns the current frame state.
func (t *Tracker) Input() Input {
	return t.in
}

// NeedsRedraw reports whether anything changed since the last call to
// [Tracker.Drawn].
func (t *Tracker) NeedsRedraw() bool {
	return t.dirty
}

// Invalidate forces a redraw.
func (t *Tracker) Invalidate() {
	t.dirty = true
}

// Drawn marks the current state as presented.
func (t *Tracker) Drawn() {
	t.dirty = false
}
