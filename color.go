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
	"image/color"
	"strconv"
	"strings"
)

// Color is a packed 24-bit RGB value: blue in the low byte, green in the
// middle byte and red in the high byte. The top byte is ignored.
type Color uint32

// RGB packs the three channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(b) | Color(g)<<8 | Color(r)<<16
}

// Predefined colors.
const (
	Black  Color = 0x000000
	White  Color = 0xFFFFFF
	Red    Color = 0xFF0000
	Green  Color = 0x00FF00
	Blue   Color = 0x0000FF
	Yellow Color = 0xFFFF00
)

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements the [color.Color] interface. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xFFFF
}

// String returns the color in #rrggbb notation.
func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// ColorModel converts arbitrary colors to [Color].
// Translucent colors are composited over black.
var ColorModel color.Model = color.ModelFunc(toColor)

func toColor(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ParseColor parses a color in "#rrggbb" or "rrggbb" notation.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("pixline: invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("pixline: invalid color %q: %w", s, err)
	}
	return Color(v), nil
}
