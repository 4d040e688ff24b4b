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
	"image/color"
	"slices"

	"seehuhn.de/go/geom/rect"
)

// Buffer is a row-major pixel buffer of packed colors.
// Pixel (x, y) is stored at Pix[y*Width+x].
//
// Buffer implements [draw.Image], so it can be used with the image/draw
// and golang.org/x/image/draw packages and with the image encoders.
type Buffer struct {
	Pix    []Color
	Width  int
	Height int
}

// NewBuffer allocates a black buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Pix:    make([]Color, width*height),
		Width:  width,
		Height: height,
	}
}

// Resize changes the buffer dimensions, reusing the existing storage when
// it is large enough. The pixel contents are undefined after a resize.
func (b *Buffer) Resize(width, height int) {
	n := width * height
	b.Pix = slices.Grow(b.Pix[:0], n)[:n]
	b.Width = width
	b.Height = height
}

// ColorModel implements the [image.Image] interface.
func (b *Buffer) ColorModel() color.Model {
	return ColorModel
}

// Bounds implements the [image.Image] interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements the [image.Image] interface.
// Pixels outside the buffer are reported as black.
func (b *Buffer) At(x, y int) color.Color {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return Black
	}
	return b.Pix[y*b.Width+x]
}

// Set implements the [draw.Image] interface.
// Pixels outside the buffer are ignored.
func (b *Buffer) Set(x, y int, c color.Color) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Pix[y*b.Width+x] = toColor(c).(Color)
}

// Clip returns the buffer area as a device-space rectangle.
func (b *Buffer) Clip() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(b.Width),
		URy: float64(b.Height),
	}
}

// Clear sets every pixel to c.
func (b *Buffer) Clear(c Color) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

// Fill sets every pixel to the value returned by f, in row-major order.
func (b *Buffer) Fill(f func(x, y int) Color) {
	i := 0
	for y := range b.Height {
		for x := range b.Width {
			b.Pix[i] = f(x, y)
			i++
		}
	}
}

// WriteRGBA converts the buffer to 8-bit RGBA bytes, as used by
// [image.RGBA] and by GPU texture uploads. dst must hold at least
// 4*Width*Height bytes.
func (b *Buffer) WriteRGBA(dst []byte) {
	if len(b.Pix) == 0 {
		return
	}
	_ = dst[4*len(b.Pix)-1]
	for i, c := range b.Pix {
		j := 4 * i
		dst[j+0] = c.R()
		dst[j+1] = c.G()
		dst[j+2] = c.B()
		dst[j+3] = 0xFF
	}
}

// RGBA returns a copy of the buffer as an [image.RGBA].
func (b *Buffer) RGBA() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	b.WriteRGBA(img.Pix)
	return img
}
