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

// Package window shows a [frame.Painter] in a desktop window.
package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"seehuhn.de/go/pixline"
	"seehuhn.de/go/pixline/internal/config"
	"seehuhn.de/go/pixline/internal/frame"
)

// Run opens a resizable window and repaints it whenever its size or the
// cursor position changes. It blocks until the window is closed or Escape
// is pressed. Errors from the painter end the loop and are returned.
func Run(cfg config.Config, p frame.Painter) error {
	g := &game{
		painter: p,
		tracker: frame.NewTracker(cfg.Width, cfg.Height),
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	// the frame is only redrawn on change, keep the old one on screen
	ebiten.SetScreenClearedEveryFrame(false)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	painter frame.Painter
	tracker *frame.Tracker
	surface frame.Surface
	err     error
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	g.tracker.Poll(x, y)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if !g.tracker.NeedsRedraw() || g.err != nil {
		return
	}

	in := g.tracker.Input()
	b := screen.Bounds()
	if b.Dx() != in.Width || b.Dy() != in.Height {
		// Layout has not caught up yet
		return
	}

	pix, err := g.surface.Render(g.painter, in)
	if err != nil {
		g.err = err
		return
	}
	screen.WritePixels(pix)
	g.tracker.Drawn()
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// ebiten requires a positive screen size
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)

	in := g.tracker.Input()
	if w != in.Width || h != in.Height {
		pixline.Logger().Debug("window resized", "width", w, "height", h)
		g.tracker.Resize(w, h)
	}
	return w, h
}
