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

// Package scene contains the painters behind the demo commands.
package scene

import (
	"fmt"
	"image"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pixline"
	"seehuhn.de/go/pixline/internal/backdrop"
	"seehuhn.de/go/pixline/internal/config"
	"seehuhn.de/go/pixline/internal/frame"
)

// Names lists the scenes known to [New].
var Names = []string{"gradient", "cursorline"}

// New returns the painter for the named scene, set up from cfg.
// cfg must have been validated.
func New(name string, cfg config.Config) (frame.Painter, error) {
	switch name {
	case "gradient":
		return Gradient{Blue: uint8(cfg.GradientBlue)}, nil
	case "cursorline":
		return NewCursorLine(cfg)
	default:
		return nil, fmt.Errorf("scene: unknown scene %q", name)
	}
}

// Gradient fills the frame with a colour gradient: red increases from
// left to right, green from top to bottom.
type Gradient struct {
	Blue uint8
}

// Paint implements the [frame.Painter] interface.
func (g Gradient) Paint(dst *pixline.Buffer, in frame.Input) error {
	w, h := dst.Width, dst.Height
	dst.Fill(func(x, y int) pixline.Color {
		return pixline.RGB(uint8(x*255/w), uint8(y*255/h), g.Blue)
	})
	return nil
}

// CursorLine draws a line from the centre of the frame to the cursor.
type CursorLine struct {
	// Background paints the frame before the line is drawn.
	// If nil, the frame is cleared to black.
	Background frame.Painter

	Color pixline.Color

	// Rasterizer draws the line. If nil, [pixline.DrawLine] is used.
	Rasterizer *pixline.Rasterizer
}

// NewCursorLine returns a CursorLine set up from cfg.
func NewCursorLine(cfg config.Config) (*CursorLine, error) {
	c, err := pixline.ParseColor(cfg.LineColor)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s := &CursorLine{Color: c}

	switch cfg.Background {
	case config.BackgroundGradient:
		s.Background = Gradient{Blue: uint8(cfg.GradientBlue)}
	case config.BackgroundBackdrop:
		b, err := backdrop.Load(cfg.Backdrop)
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
		s.Background = Backdrop{b}
	}

	if cfg.Algorithm != config.AlgorithmLegacy {
		alg, err := pixline.ParseAlgorithm(cfg.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
		r := pixline.NewRasterizer(rect.Rect{})
		r.Algorithm = alg
		r.IncludeEnd = cfg.IncludeEnd
		r.Dash = cfg.Dash
		r.DashPhase = cfg.DashPhase
		s.Rasterizer = r
	}
	return s, nil
}

// Paint implements the [frame.Painter] interface.
func (s *CursorLine) Paint(dst *pixline.Buffer, in frame.Input) error {
	if s.Background != nil {
		if err := s.Background.Paint(dst, in); err != nil {
			return err
		}
	} else {
		dst.Clear(pixline.Black)
	}

	if !in.HasCursor || dst.Width == 0 || dst.Height == 0 {
		return nil
	}

	centre := image.Pt(dst.Width/2, dst.Height/2)
	if s.Rasterizer == nil {
		pixline.DrawLine(dst.Pix, dst.Width, centre, in.Cursor, s.Color)
		return nil
	}
	return s.Rasterizer.Draw(dst, centre, in.Cursor, s.Color)
}

// Backdrop adapts a [backdrop.Backdrop] to the [frame.Painter] interface.
type Backdrop struct {
	*backdrop.Backdrop
}

// Paint implements the [frame.Painter] interface.
func (b Backdrop) Paint(dst *pixline.Buffer, in frame.Input) error {
	b.Draw(dst)
	return nil
}
