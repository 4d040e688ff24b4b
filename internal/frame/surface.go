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

package frame

import (
	"seehuhn.de/go/pixline"
)

// Surface owns the pixel buffer for a window and converts it to the RGBA
// byte layout expected by the presentation layer.
type Surface struct {
	buf  pixline.Buffer
	rgba []byte
}

// Buffer returns a buffer of the given size. The storage is reused when
// possible, the contents are undefined.
func (s *Surface) Buffer(width, height int) *pixline.Buffer {
	if width != s.buf.Width || height != s.buf.Height {
		grow := width*height > cap(s.buf.Pix)
		s.buf.Resize(width, height)
		if grow {
			pixline.Logger().Debug("surface reallocated", "width", width, "height", height)
		}
	}
	return &s.buf
}

// Render paints a frame of the size given by in and returns its RGBA
// pixels, 4 bytes per pixel in row-major order. The returned slice is
// reused by the next call.
func (s *Surface) Render(p Painter, in Input) ([]byte, error) {
	buf := s.Buffer(in.Width, in.Height)
	if err := p.Paint(buf, in); err != nil {
		return nil, err
	}
	return s.present(), nil
}

func (s *Surface) present() []byte {
	n := 4 * len(s.buf.Pix)
	if cap(s.rgba) < n {
		s.rgba = make([]byte, n)
	}
	s.rgba = s.rgba[:n]
	s.buf.WriteRGBA(s.rgba)
	return s.rgba
}
