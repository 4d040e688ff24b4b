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

// Command snapshot renders a single frame of one of the demo scenes
// without opening a window. The output format is chosen by the file
// extension: ".png" or ".webp".
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"seehuhn.de/go/pixline"
	"seehuhn.de/go/pixline/internal/config"
	"seehuhn.de/go/pixline/internal/frame"
	"seehuhn.de/go/pixline/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	sceneName := flag.String("scene", "cursorline", "Scene: "+strings.Join(scene.Names, " or "))
	output := flag.String("o", "snapshot.png", "Output file (.png or .webp)")
	cursor := flag.String("cursor", "", "Cursor position as x,y (default: no cursor)")
	width := flag.Int("width", 0, "Frame width (default: 800)")
	height := flag.Int("height", 0, "Frame height (default: 600)")
	background := flag.String("background", "", "Background: black, gradient or backdrop (default: black)")
	backdrop := flag.String("backdrop", "", "Backdrop image (PNG, JPEG, TGA, SVG, ...)")
	lineColor := flag.String("color", "", "Line colour as #rrggbb (default: #ffff00)")
	algorithm := flag.String("algorithm", "", "Line algorithm: legacy, dda or bresenham (default: legacy)")
	includeEnd := flag.Bool("include-end", false, "Also draw the pixel under the cursor")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Width:      *width,
		Height:     *height,
		Background: *background,
		LineColor:  *lineColor,
		Algorithm:  *algorithm,
		IncludeEnd: *includeEnd,
		Backdrop:   *backdrop,
		LogLevel:   *logLevel,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level, _ := cfg.Level()
	pixline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	tracker := frame.NewTracker(cfg.Width, cfg.Height)
	if *cursor != "" {
		p, err := parsePoint(*cursor)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		tracker.Move(p.X, p.Y)
	}

	painter, err := scene.New(*sceneName, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	in := tracker.Input()
	var surface frame.Surface
	buf := surface.Buffer(in.Width, in.Height)
	if err := painter.Paint(buf, in); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeImage(*output, buf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	pixline.Logger().Info("snapshot written", "file", *output, "scene", *sceneName,
		"width", in.Width, "height", in.Height)
}

func parsePoint(s string) (image.Point, error) {
	var p image.Point
	if _, err := fmt.Sscanf(s, "%d,%d", &p.X, &p.Y); err != nil {
		return image.Point{}, fmt.Errorf("invalid cursor position %q: %w", s, err)
	}
	return p, nil
}

func writeImage(path string, buf *pixline.Buffer) (err error) {
	var encode func(io.Writer, *pixline.Buffer) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = func(w io.Writer, b *pixline.Buffer) error {
			return png.Encode(w, b.RGBA())
		}
	case ".webp":
		encode = func(w io.Writer, b *pixline.Buffer) error {
			return nativewebp.Encode(w, b.RGBA(), nil)
		}
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f, buf)
}
