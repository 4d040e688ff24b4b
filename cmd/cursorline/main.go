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

// Command cursorline opens a window and draws a line from the centre of
// the window to the mouse cursor.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"seehuhn.de/go/pixline"
	"seehuhn.de/go/pixline/internal/config"
	"seehuhn.de/go/pixline/internal/scene"
	"seehuhn.de/go/pixline/internal/window"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	title := flag.String("title", "", "Window title")
	width := flag.Int("width", 0, "Window width (default: 800)")
	height := flag.Int("height", 0, "Window height (default: 600)")
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

	if cfg.Title == "" {
		cfg.Title = "pixline cursor line"
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Title:      *title,
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

	painter, err := scene.New("cursorline", cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := window.Run(cfg, painter); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
