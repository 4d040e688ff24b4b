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
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixline/testcases"
)

// TestAgainstBresenham renders every test case with both algorithms. The
// truncating DDA and the rounding Bresenham walker may differ by one pixel
// on the minor axis, so every DDA pixel must have a Bresenham pixel in its
// 3x3 neighbourhood and vice versa.
func TestAgainstBresenham(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				w, h := tc.Width, tc.Height

				r := NewRasterizer(rect.Rect{})
				dda := NewBuffer(w, h)
				if err := RenderCase(tc, r, dda, White); err != nil {
					t.Fatalf("DDA: %v", err)
				}

				r.Algorithm = Bresenham
				bres := NewBuffer(w, h)
				if err := RenderCase(tc, r, bres, White); err != nil {
					t.Fatalf("Bresenham: %v", err)
				}

				expected, actual := toGray(bres), toGray(dda)
				if err := compareNear(expected, actual, w, h); err != nil {
					_ = writeDiffImage(name, expected, actual, w, h)
					t.Error(err)
				}
			})
		}
	}
}

// toGray converts a buffer to one byte per pixel: 255 for set pixels,
// 0 for black ones.
func toGray(b *Buffer) []byte {
	gray := make([]byte, len(b.Pix))
	for i, c := range b.Pix {
		if c != Black {
			gray[i] = 255
		}
	}
	return gray
}

// compareNear checks that every set pixel in one image has a set pixel
// within Chebyshev distance 1 in the other.
func compareNear(expected, actual []byte, w, h int) error {
	near := func(img []byte, x, y int) bool {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				xx, yy := x+dx, y+dy
				if xx >= 0 && xx < w && yy >= 0 && yy < h && img[yy*w+xx] != 0 {
					return true
				}
			}
		}
		return false
	}

	var failures []string
	for y := range h {
		for x := range w {
			i := y*w + x
			if actual[i] != 0 && !near(expected, x, y) {
				failures = append(failures, fmt.Sprintf("extra pixel (%d,%d)", x, y))
			}
			if expected[i] != 0 && !near(actual, x, y) {
				failures = append(failures, fmt.Sprintf("missing pixel (%d,%d)", x, y))
			}
		}
	}
	if len(failures) > 5 {
		failures = append(failures[:5], "...")
	}
	if len(failures) > 0 {
		return errors.New(strings.Join(failures, "; "))
	}
	return nil
}

func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	// Create 3-panel image: actual (left), diff (middle), reference (right)
	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x

			// Left panel: actual output
			a := actual[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			// Middle panel: diff (green=missing, red=extra, black=match)
			diff := int(expected[i]) - int(actual[i])
			var diffColor color.RGBA
			if diff > 0 {
				diffColor = color.RGBA{R: 0, G: uint8(diff), B: 0, A: 255}
			} else if diff < 0 {
				diffColor = color.RGBA{R: uint8(-diff), G: 0, B: 0, A: 255}
			} else {
				diffColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
			}
			img.Set(x+w, y, diffColor)

			// Right panel: reference
			e := expected[i]
			img.Set(x+w*2, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func TestSegmentCasesMatchPoints(t *testing.T) {
	for _, tc := range segmentCases() {
		op := tc.Op.(testcases.Segment)
		for _, alg := range []Algorithm{DDA, Bresenham} {
			r := NewRasterizer(rect.Rect{})
			r.Algorithm = alg
			buf := NewBuffer(tc.Width, tc.Height)
			if err := RenderCase(tc, r, buf, Green); err != nil {
				t.Fatalf("%s/%v: %v", tc.Name, alg, err)
			}

			got := setPixels(buf.Pix, buf.Width, Green)
			want := collect(Points(op.Start, op.End, alg, false))
			slices.SortFunc(want, comparePoints)
			if !slices.Equal(got, want) {
				t.Errorf("%s/%v: got %v, want %v", tc.Name, alg, got, want)
			}
		}
	}
}

func TestLineOutOfBounds(t *testing.T) {
	clip := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	cases := []struct {
		start, end image.Point
		bad        image.Point
	}{
		{image.Pt(0, 0), image.Pt(10, 0), image.Pt(10, 0)},
		{image.Pt(-1, 3), image.Pt(5, 3), image.Pt(-1, 3)},
		{image.Pt(2, 2), image.Pt(4, 10), image.Pt(4, 10)},
		{image.Pt(3, -5), image.Pt(3, 20), image.Pt(3, -5)},
	}
	for _, c := range cases {
		for _, alg := range []Algorithm{DDA, Bresenham} {
			r := NewRasterizer(clip)
			r.Algorithm = alg
			calls := 0
			err := r.Line(c.start, c.end, func(x, y int) { calls++ })
			if !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("%v->%v: got error %v, want ErrOutOfBounds", c.start, c.end, err)
			}
			var bErr *BoundsError
			if !errors.As(err, &bErr) {
				t.Fatalf("%v->%v: error %T is not a *BoundsError", c.start, c.end, err)
			}
			if bErr.Point != c.bad {
				t.Errorf("%v->%v: reported point %v, want %v", c.start, c.end, bErr.Point, c.bad)
			}
			if calls != 0 {
				t.Errorf("%v->%v: %d pixels emitted before rejection", c.start, c.end, calls)
			}
		}
	}
}

func TestDrawClip(t *testing.T) {
	buf := NewBuffer(10, 10)

	// zero clip means the whole buffer
	var r Rasterizer
	if err := r.Draw(buf, image.Pt(0, 0), image.Pt(9, 9), Red); err != nil {
		t.Fatal(err)
	}
	if got := len(setPixels(buf.Pix, buf.Width, Red)); got != 9 {
		t.Errorf("%d pixels set, want 9", got)
	}

	// a clip larger than the buffer is reduced to the buffer
	r.Clip = rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100}
	if err := r.Draw(buf, image.Pt(0, 0), image.Pt(20, 0), Red); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("got %v, want ErrOutOfBounds", err)
	}

	// a smaller clip restricts drawing
	r.Clip = rect.Rect{LLx: 2, LLy: 2, URx: 8, URy: 8}
	if err := r.Draw(buf, image.Pt(1, 5), image.Pt(6, 5), Blue); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("got %v, want ErrOutOfBounds", err)
	}
	if err := r.Draw(buf, image.Pt(2, 5), image.Pt(7, 5), Blue); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if got := len(setPixels(buf.Pix, buf.Width, Blue)); got != 5 {
		t.Errorf("%d pixels set, want 5", got)
	}
}

func TestIncludeEnd(t *testing.T) {
	for _, alg := range []Algorithm{DDA, Bresenham} {
		buf := NewBuffer(10, 10)
		r := NewRasterizer(buf.Clip())
		r.Algorithm = alg
		r.IncludeEnd = true

		if err := r.Draw(buf, image.Pt(2, 5), image.Pt(7, 5), White); err != nil {
			t.Fatal(err)
		}
		got := setPixels(buf.Pix, buf.Width, White)
		want := []image.Point{{2, 5}, {3, 5}, {4, 5}, {5, 5}, {6, 5}, {7, 5}}
		if !slices.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", alg, got, want)
		}

		// a degenerate line covers a single pixel
		buf.Clear(Black)
		if err := r.Draw(buf, image.Pt(4, 4), image.Pt(4, 4), White); err != nil {
			t.Fatal(err)
		}
		got = setPixels(buf.Pix, buf.Width, White)
		if !slices.Equal(got, []image.Point{{4, 4}}) {
			t.Errorf("%v: degenerate line gave %v", alg, got)
		}
	}
}

func closedSquare(x, y, side float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x, Y: y}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x + side, Y: y}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x + side, Y: y + side}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x, Y: y + side}}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

func openCorner(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{{X: x3, Y: y3}})
	}
}

// TestStrokeClosedSquare verifies that every pixel on the outline of a
// closed square is emitted exactly once.
func TestStrokeClosedSquare(t *testing.T) {
	for _, alg := range []Algorithm{DDA, Bresenham} {
		r := NewRasterizer(rect.Rect{URx: 64, URy: 64})
		r.Algorithm = alg

		hits := map[image.Point]int{}
		err := r.Stroke(closedSquare(12, 12, 40), func(x, y int) {
			hits[image.Pt(x, y)]++
		})
		if err != nil {
			t.Fatal(err)
		}

		if len(hits) != 160 {
			t.Errorf("%v: %d distinct pixels, want 160", alg, len(hits))
		}
		for p, n := range hits {
			onOutline := (p.X == 12 || p.X == 52) && p.Y >= 12 && p.Y <= 52 ||
				(p.Y == 12 || p.Y == 52) && p.X >= 12 && p.X <= 52
			if !onOutline {
				t.Errorf("%v: pixel %v not on the outline", alg, p)
			}
			if n != 1 {
				t.Errorf("%v: pixel %v emitted %d times", alg, p, n)
			}
		}
	}
}

func TestStrokeIncludeEnd(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 64, URy: 64})
	var pts []image.Point
	emit := func(x, y int) { pts = append(pts, image.Pt(x, y)) }

	if err := r.Stroke(openCorner(10, 50, 32, 10, 54, 50), emit); err != nil {
		t.Fatal(err)
	}
	if slices.Contains(pts, image.Pt(54, 50)) {
		t.Error("final vertex drawn without IncludeEnd")
	}
	n := len(pts)

	pts = pts[:0]
	r.IncludeEnd = true
	if err := r.Stroke(openCorner(10, 50, 32, 10, 54, 50), emit); err != nil {
		t.Fatal(err)
	}
	if len(pts) != n+1 || pts[len(pts)-1] != image.Pt(54, 50) {
		t.Errorf("final vertex not drawn last: %d vs %d pixels", len(pts), n)
	}
	if c := countOf(pts, image.Pt(32, 10)); c != 1 {
		t.Errorf("inner vertex drawn %d times", c)
	}
}

func countOf(pts []image.Point, p image.Point) int {
	n := 0
	for _, q := range pts {
		if q == p {
			n++
		}
	}
	return n
}

func TestStrokeConnected(t *testing.T) {
	for _, tc := range testcases.All["curve"] {
		op := tc.Op.(testcases.Stroke)
		r := NewRasterizer(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
		r.IncludeEnd = true

		var pts []image.Point
		err := r.Stroke(op.Path, func(x, y int) {
			pts = append(pts, image.Pt(x, y))
		})
		if err != nil {
			t.Fatalf("%s: %v", tc.Name, err)
		}
		if len(pts) < 10 {
			t.Fatalf("%s: only %d pixels", tc.Name, len(pts))
		}
		for i := 1; i < len(pts); i++ {
			d := pts[i].Sub(pts[i-1])
			if abs(d.X) > 1 || abs(d.Y) > 1 {
				t.Errorf("%s: gap between %v and %v", tc.Name, pts[i-1], pts[i])
			}
		}
	}
}

func TestStrokeFlatnessFallback(t *testing.T) {
	for _, tc := range testcases.All["curve"] {
		op := tc.Op.(testcases.Stroke)
		clip := rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}

		stroke := func(flatness float64) []image.Point {
			r := NewRasterizer(clip)
			r.Flatness = flatness
			var pts []image.Point
			err := r.Stroke(op.Path, func(x, y int) {
				pts = append(pts, image.Pt(x, y))
			})
			if err != nil {
				t.Fatalf("%s: %v", tc.Name, err)
			}
			return pts
		}

		want := stroke(defaultFlatness)
		for _, flatness := range []float64{0, -1, math.NaN()} {
			got := stroke(flatness)
			if !slices.Equal(got, want) {
				t.Errorf("%s: flatness %g drew %d pixels, want %d",
					tc.Name, flatness, len(got), len(want))
			}
		}
	}
}

func TestStrokeCTM(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 64, URy: 64})
	r.CTM = matrix.Matrix{2, 0, 0, 2, 10, 10}

	hits := map[image.Point]bool{}
	err := r.Stroke(closedSquare(0, 0, 10), func(x, y int) {
		hits[image.Pt(x, y)] = true
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, corner := range []image.Point{{10, 10}, {30, 10}, {30, 30}, {10, 30}} {
		if !hits[corner] {
			t.Errorf("corner %v not drawn", corner)
		}
	}
	if len(hits) != 80 {
		t.Errorf("%d pixels, want 80", len(hits))
	}
}

func TestStrokeRejectsBeforeDrawing(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 32, URy: 32})
	calls := 0
	err := r.Stroke(openCorner(2, 2, 20, 20, 40, 2), func(x, y int) { calls++ })
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("got %v, want ErrOutOfBounds", err)
	}
	if calls != 0 {
		t.Errorf("%d pixels emitted before rejection", calls)
	}
}

func TestDash(t *testing.T) {
	cases := []struct {
		name  string
		dash  []float64
		phase float64
		on    func(i int) bool
	}{
		{"solid", nil, 0, func(i int) bool { return true }},
		{"simple", []float64{4, 2}, 0, func(i int) bool { return i%6 < 4 }},
		{"phase", []float64{4, 2}, 3, func(i int) bool { return (i+3)%6 < 4 }},
		{"negative_phase", []float64{4, 2}, -1, func(i int) bool { return (i+5)%6 < 4 }},
		{"odd", []float64{3}, 0, func(i int) bool { return i%6 < 3 }},
		{"dotted", []float64{1, 1}, 0, func(i int) bool { return i%2 == 0 }},
		{"zero_sum", []float64{0, 0}, 0, func(i int) bool { return true }},
		{"leading_zero", []float64{0, 2, 3, 1}, 0, func(i int) bool { return i%6 >= 2 && i%6 < 5 }},
	}

	start, end := image.Pt(2, 8), image.Pt(62, 8)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewRasterizer(rect.Rect{URx: 64, URy: 16})
			r.Dash = c.dash
			r.DashPhase = c.phase

			got := map[int]bool{}
			err := r.Line(start, end, func(x, y int) { got[x-start.X] = true })
			if err != nil {
				t.Fatal(err)
			}
			for i := range StepCount(start, end) {
				if got[i] != c.on(i) {
					t.Errorf("pixel %d: on=%t, want %t", i, got[i], c.on(i))
				}
			}
		})
	}
}

func TestDashContinuesAcrossSegments(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 64, URy: 64})
	r.Dash = []float64{5, 3}

	var pts []image.Point
	err := r.Stroke(closedSquare(12, 12, 40), func(x, y int) {
		pts = append(pts, image.Pt(x, y))
	})
	if err != nil {
		t.Fatal(err)
	}
	// 160 outline pixels, 5 of every 8 on
	if len(pts) != 100 {
		t.Errorf("%d pixels, want 100", len(pts))
	}
}

func TestReset(t *testing.T) {
	clip := rect.Rect{URx: 20, URy: 10}
	r := NewRasterizer(rect.Rect{URx: 5, URy: 5})
	r.Algorithm = Bresenham
	r.IncludeEnd = true
	r.CTM = matrix.Scale(3, 3)
	r.Flatness = 2
	r.Dash = []float64{1, 1}
	r.DashPhase = 1

	r.Reset(clip)

	want := NewRasterizer(clip)
	if r.Clip != want.Clip || r.Algorithm != want.Algorithm ||
		r.IncludeEnd != want.IncludeEnd || r.CTM != want.CTM ||
		r.Flatness != want.Flatness || r.Dash != nil || r.DashPhase != 0 {
		t.Errorf("Reset left %+v", r)
	}
}

func TestLoggerRecordsRejection(t *testing.T) {
	var logBuf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	r := NewRasterizer(rect.Rect{URx: 4, URy: 4})
	_ = r.Line(image.Pt(0, 0), image.Pt(8, 0), func(x, y int) {})

	if !strings.Contains(logBuf.String(), "line rejected") {
		t.Errorf("log output %q", logBuf.String())
	}
}
