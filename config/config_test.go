package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "animake.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadOverridesAndClamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animake.yaml")
	body := `
dir: sprites
speed_rate: 40
fixed_step: 0.016
pattern_count_max: 60
grid:
  enabled: false
background: "#10203040"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dir != "sprites" || cfg.PatternCountMax != 60 || cfg.FixedStep != 0.016 {
		t.Fatalf("fields not read: %+v", cfg)
	}
	if cfg.SpeedRate != 10 {
		t.Fatalf("speed rate not clamped: %v", cfg.SpeedRate)
	}
	if cfg.Grid.Enabled || cfg.Grid.Size != 16 {
		t.Fatalf("grid %+v", cfg.Grid)
	}
	if cfg.BaseName != "NewAnimation" || cfg.Window.Width != 1280 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if got := cfg.BackgroundColor(); got != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}) {
		t.Fatalf("background %v", got)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"negative_fixed_step", "fixed_step: -1\n"},
		{"negative_pattern_max", "pattern_count_max: -2\n"},
		{"bad_color", "background: nope\n"},
		{"bad_yaml", "dir: [\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "animake.yaml")
			if err := os.WriteFile(path, []byte(c.body), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			cfg, err := Load(path)
			if err == nil {
				t.Fatalf("expected error, got %+v", cfg)
			}
			if cfg != Default() {
				t.Fatalf("failed load should return defaults")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animake.yaml")
	want := Default()
	want.LastFile = "hero.txt"
	want.Watch = false
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#ff0000", color.RGBA{R: 0xff, A: 0xff}, true},
		{"00ff0080", color.RGBA{G: 0xff, A: 0x80}, true},
		{"#fff", color.RGBA{}, false},
		{"#gg0000", color.RGBA{}, false},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if (err == nil) != c.ok || got != c.want {
			t.Errorf("ParseColor(%q) = %v, %v", c.in, got, err)
		}
	}
}
