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

// Package config holds the settings shared by the pixline demo commands.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"

	"seehuhn.de/go/pixline"
)

// Background names accepted in Config.Background.
const (
	BackgroundBlack    = "black"
	BackgroundGradient = "gradient"
	BackgroundBackdrop = "backdrop"
)

// AlgorithmLegacy selects [pixline.DrawLine]. The other accepted algorithm
// names are those of [pixline.Algorithm].
const AlgorithmLegacy = "legacy"

// Config holds the window and drawing settings.
type Config struct {
	// Window
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	TPS    int    `json:"tps"`

	// Drawing
	Background   string    `json:"background"`
	LineColor    string    `json:"line_color"`
	GradientBlue int       `json:"gradient_blue"`
	Algorithm    string    `json:"algorithm"`
	IncludeEnd   bool      `json:"include_end"`
	Dash         []float64 `json:"dash"`
	DashPhase    float64   `json:"dash_phase"`
	Backdrop     string    `json:"backdrop"`

	LogLevel string `json:"log_level"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Title      string
	Width      int
	Height     int
	Background string
	LineColor  string
	Algorithm  string
	IncludeEnd bool
	Backdrop   string
	LogLevel   string
}

// Default returns the settings used when there is no config file.
func Default() Config {
	var c Config
	c.Resolve(Flags{})
	return c
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Title != "" {
		c.Title = flags.Title
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}
	if flags.LineColor != "" {
		c.LineColor = flags.LineColor
	}
	if flags.Algorithm != "" {
		c.Algorithm = flags.Algorithm
	}
	if flags.IncludeEnd {
		c.IncludeEnd = true
	}
	if flags.Backdrop != "" {
		c.Backdrop = flags.Backdrop
		if flags.Background == "" {
			c.Background = BackgroundBackdrop
		}
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	if c.Title == "" {
		c.Title = "pixline"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.Background == "" {
		c.Background = BackgroundBlack
	}
	if c.LineColor == "" {
		c.LineColor = pixline.Yellow.String()
	}
	if c.Algorithm == "" {
		c.Algorithm = AlgorithmLegacy
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks the settings after Resolve.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if c.GradientBlue < 0 || c.GradientBlue > 255 {
		return fmt.Errorf("config: gradient_blue %d not in 0..255", c.GradientBlue)
	}
	switch c.Background {
	case BackgroundBlack, BackgroundGradient:
	case BackgroundBackdrop:
		if c.Backdrop == "" {
			return fmt.Errorf("config: background %q needs a backdrop file", c.Background)
		}
	default:
		return fmt.Errorf("config: unknown background %q", c.Background)
	}
	if _, err := pixline.ParseColor(c.LineColor); err != nil {
		return fmt.Errorf("config: line_color: %w", err)
	}
	if c.Algorithm != AlgorithmLegacy {
		if _, err := pixline.ParseAlgorithm(c.Algorithm); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	for _, d := range c.Dash {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("config: invalid dash length %g", d)
		}
		if d < 0 {
			return fmt.Errorf("config: negative dash length %g", d)
		}
	}
	if math.IsNaN(c.DashPhase) || math.IsInf(c.DashPhase, 0) {
		return fmt.Errorf("config: invalid dash_phase %g", c.DashPhase)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}
	return level, nil
}
