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
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// segment is a line segment in device (pixel) coordinates.
type segment struct {
	a, b image.Point
	last bool // final segment of an open subpath
}

// Rasterizer draws one pixel wide, aliased lines with bounds checking.
// The caller creates one instance and reuses it for multiple lines and
// paths. Internal buffers grow as needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip is the device-space area lines may write to. Pixel (x, y) is
	// inside if LLx <= x < URx and LLy <= y < URy.
	Clip rect.Rect

	// Algorithm selects the line walker.
	Algorithm Algorithm

	// IncludeEnd makes lines write their end pixel. By default a line
	// covers its start pixel but not its end pixel, so that consecutive
	// segments of a polyline share no pixels.
	IncludeEnd bool

	// CTM maps user space to device space for Stroke.
	CTM matrix.Matrix

	// Flatness is the curve flattening tolerance in device pixels, used by
	// Stroke. Values which are not positive select the default of 0.25.
	Flatness float64

	// Dash lists alternating on/off run lengths, measured in pixel steps
	// along the dominant axis. Nil means solid. An odd number of entries
	// is repeated to make the pattern even, as in PDF.
	Dash []float64

	// DashPhase is the offset into the dash pattern in pixel steps.
	DashPhase float64

	// Flattening buffer (reused across calls)
	segs []segment

	// Dash state (valid during one Line or Stroke call)
	dashIdx    int
	dashOn     bool
	dashRemain float64
	dashSolid  bool
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, using
// the DDA algorithm and an identity transformation.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		Clip:      clip,
		Algorithm: DDA,
		CTM:       matrix.Identity,
		Flatness:  defaultFlatness,
	}
}

// Reset restores the defaults of [NewRasterizer] with the given clip
// rectangle, preserving internal buffer capacity.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.Clip = clip
	r.Algorithm = DDA
	r.IncludeEnd = false
	r.CTM = matrix.Identity
	r.Flatness = defaultFlatness
	r.Dash = nil
	r.DashPhase = 0

	r.segs = r.segs[:0]
}

// Line calls emit for every pixel on the line from start to end.
// Both endpoints must lie inside Clip; otherwise a [*BoundsError] is
// returned and emit is not called. Since all pixels of a line lie in the
// bounding box of its endpoints, this guarantees that every emitted pixel
// is inside Clip.
func (r *Rasterizer) Line(start, end image.Point, emit func(x, y int)) error {
	return r.line(r.Clip, start, end, emit)
}

// Draw writes c into every pixel of the line from start to end. The line
// is checked against the intersection of Clip and the buffer area; a zero
// Clip means the whole buffer.
func (r *Rasterizer) Draw(dst *Buffer, start, end image.Point, c Color) error {
	clip := dst.Clip()
	if r.Clip != (rect.Rect{}) {
		clip = intersect(r.Clip, clip)
	}
	return r.line(clip, start, end, func(x, y int) {
		dst.Pix[y*dst.Width+x] = c
	})
}

func (r *Rasterizer) line(clip rect.Rect, start, end image.Point, emit func(x, y int)) error {
	for _, p := range [2]image.Point{start, end} {
		if !contains(clip, p) {
			Logger().Debug("line rejected",
				"start", start, "end", end, "point", p, "clip", clip)
			return &BoundsError{Point: p, Clip: clip}
		}
	}

	r.startDash()
	walk(r.Algorithm, start, end, r.IncludeEnd, func(x, y int) {
		if r.dashStep() {
			emit(x, y)
		}
	})
	return nil
}

// Stroke draws the path as a connected sequence of one pixel wide lines.
// Vertices are mapped to device space using CTM and then rounded down to
// pixel coordinates; curves are flattened first. Closed subpaths get a
// closing segment. With IncludeEnd set, the final vertex of every open
// subpath is drawn.
//
// All segments are checked against Clip before the first pixel is
// emitted. The dash pattern runs continuously over all segments.
func (r *Rasterizer) Stroke(p path.Path, emit func(x, y int)) error {
	r.flattenPath(p)

	for _, s := range r.segs {
		for _, pt := range [2]image.Point{s.a, s.b} {
			if !contains(r.Clip, pt) {
				Logger().Debug("stroke rejected", "point", pt, "clip", r.Clip)
				return &BoundsError{Point: pt, Clip: r.Clip}
			}
		}
	}

	r.startDash()
	for _, s := range r.segs {
		walk(r.Algorithm, s.a, s.b, r.IncludeEnd && s.last, func(x, y int) {
			if r.dashStep() {
				emit(x, y)
			}
		})
	}
	return nil
}

// flattenPath walks the path, flattens curves and stores the resulting
// device-space segments in r.segs. Segments which collapse to a single
// pixel are dropped.
func (r *Rasterizer) flattenPath(p path.Path) {
	r.segs = r.segs[:0]

	var currentPt vec.Vec2
	var subpathStartPt vec.Vec2
	inSubpath := false

	endSubpath := func(startIdx int) {
		if len(r.segs) > startIdx {
			r.segs[len(r.segs)-1].last = true
		}
	}
	subpathStartIdx := 0

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath {
				endSubpath(subpathStartIdx)
			}
			currentPt = pts[0]
			subpathStartPt = currentPt
			subpathStartIdx = len(r.segs)
			inSubpath = true

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			r.addSegment(currentPt, pts[0])
			currentPt = pts[0]

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			r.flattenQuadratic(currentPt, pts[0], pts[1], r.addSegment)
			currentPt = pts[1]

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			r.flattenCubic(currentPt, pts[0], pts[1], pts[2], r.addSegment)
			currentPt = pts[2]

		case path.CmdClose:
			if inSubpath {
				if currentPt != subpathStartPt {
					r.addSegment(currentPt, subpathStartPt)
				}
				currentPt = subpathStartPt
				subpathStartIdx = len(r.segs)
				inSubpath = false
			}
		}
	}

	if inSubpath {
		endSubpath(subpathStartIdx)
	}
}

// addSegment maps a user-space segment to device space and appends it.
func (r *Rasterizer) addSegment(p0, p1 vec.Vec2) {
	a := r.toPixel(p0)
	b := r.toPixel(p1)
	if a == b {
		return
	}
	r.segs = append(r.segs, segment{a: a, b: b})
}

// toPixel maps a user-space point to the device pixel containing it.
func (r *Rasterizer) toPixel(p vec.Vec2) image.Point {
	x := r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4]
	y := r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5]
	return image.Point{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
// Used for CTM-aware tolerance checking where translation is irrelevant.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the start point (current point), p1 is control, p2 is endpoint.
// All points are in user space; CTM-aware tolerance checking is used.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := r.transformLinear(e).Length()

	tol := r.flatness()
	n := 1
	if errDev > tol {
		n = int(math.Ceil(math.Sqrt(errDev / tol)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is start, p1/p2 are controls, p3 is endpoint. All in user space.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)) // P0 - 2*P1 + P2
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		if nFloat := math.Sqrt(3 * m / (4 * r.flatness())); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// flatness returns the flattening tolerance, with the default standing in
// for settings which are not positive.
func (r *Rasterizer) flatness() float64 {
	if !(r.Flatness > 0) {
		return defaultFlatness
	}
	return r.Flatness
}

// startDash positions the dash state at DashPhase.
func (r *Rasterizer) startDash() {
	r.dashSolid = true
	n := len(r.Dash)
	if n == 0 {
		return
	}
	var period float64
	for _, d := range r.Dash {
		if d < 0 {
			return
		}
		period += d
	}
	if n%2 == 1 {
		period *= 2
	}
	if period <= 0 {
		return
	}
	r.dashSolid = false

	phase := math.Mod(r.DashPhase, period)
	if phase < 0 {
		phase += period
	}

	r.dashIdx = 0
	r.dashOn = true
	for phase >= r.Dash[r.dashIdx] {
		phase -= r.Dash[r.dashIdx]
		r.dashIdx = (r.dashIdx + 1) % n
		r.dashOn = !r.dashOn
	}
	r.dashRemain = r.Dash[r.dashIdx] - phase
}

// dashStep reports whether the current pixel is on, then advances the
// dash state by one pixel.
func (r *Rasterizer) dashStep() bool {
	if r.dashSolid {
		return true
	}
	on := r.dashOn
	r.dashRemain--
	for r.dashRemain <= 0 {
		r.dashIdx = (r.dashIdx + 1) % len(r.Dash)
		r.dashOn = !r.dashOn
		r.dashRemain += r.Dash[r.dashIdx]
	}
	return on
}

// Default values for rasterizer parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25
)
