// Package config loads the editor settings file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/animake/anim"
	"github.com/milk9111/animake/catalog"
	"github.com/milk9111/animake/playback"
)

const DefaultFile = "animake.yaml"

type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Grid struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type Config struct {
	Dir             string  `yaml:"dir"`
	BaseName        string  `yaml:"base_name"`
	SpeedRate       float64 `yaml:"speed_rate"`
	FixedStep       float64 `yaml:"fixed_step"`
	PatternCountMax int     `yaml:"pattern_count_max"`
	Window          Window  `yaml:"window"`
	Grid            Grid    `yaml:"grid"`
	Background      string  `yaml:"background"`
	Watch           bool    `yaml:"watch"`
	ScriptsDir      string  `yaml:"scripts_dir"`
	LastFile        string  `yaml:"last_file"`
}

func Default() Config {
	return Config{
		Dir:             ".",
		BaseName:        catalog.DefaultBaseName,
		SpeedRate:       1,
		PatternCountMax: anim.DefaultPatternCount,
		Window:          Window{Width: 1280, Height: 800},
		Grid:            Grid{Enabled: true, Size: 16},
		Background:      "#2b2b33",
		Watch:           true,
		ScriptsDir:      "scripts",
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate fills zero values with defaults, clamps the speed rate and
// rejects values that cannot be used.
func (c *Config) Validate() error {
	def := Default()
	if c.Dir == "" {
		c.Dir = def.Dir
	}
	if c.BaseName == "" {
		c.BaseName = def.BaseName
	}
	if c.SpeedRate == 0 {
		c.SpeedRate = def.SpeedRate
	}
	c.SpeedRate = min(max(c.SpeedRate, playback.MinSpeedRate), playback.MaxSpeedRate)
	if c.FixedStep < 0 {
		return fmt.Errorf("fixed_step must not be negative, got %v", c.FixedStep)
	}
	if c.PatternCountMax == 0 {
		c.PatternCountMax = def.PatternCountMax
	}
	if c.PatternCountMax < 1 {
		return fmt.Errorf("pattern_count_max must be at least 1, got %d", c.PatternCountMax)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window = def.Window
	}
	if c.Grid.Size <= 0 {
		c.Grid.Size = def.Grid.Size
	}
	if c.Background == "" {
		c.Background = def.Background
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	return nil
}

// BackgroundColor returns the parsed background, falling back to black.
func (c Config) BackgroundColor() color.RGBA {
	col, err := ParseColor(c.Background)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return col
}

// ParseColor accepts "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
