package anim

import (
	"errors"
	"image"
	"math"
	"strings"
	"testing"
)

func TestNewClipDefaults(t *testing.T) {
	c := NewClip()
	if len(c.Patterns) != DefaultPatternCount {
		t.Fatalf("expected %d patterns, got %d", DefaultPatternCount, len(c.Patterns))
	}
	if c.Loop || c.OffsetX != 0 || c.OffsetY != 0 || c.Width != 0 || c.Height != 0 {
		t.Fatalf("expected zero geometry and no loop, got %+v", c)
	}
	for i, p := range c.Patterns {
		if p != (Pattern{Wait: 1}) {
			t.Fatalf("pattern %d: expected default, got %+v", i, p)
		}
	}
}

func TestClipCloneIsDeep(t *testing.T) {
	src := NewClip()
	dst := src.Clone()
	dst.Patterns[0].Column = 7
	dst.Patterns = append(dst.Patterns, Pattern{Wait: 3})
	if src.Patterns[0].Column != 0 {
		t.Fatalf("clone aliases source patterns")
	}
	if len(src.Patterns) != DefaultPatternCount {
		t.Fatalf("source length changed to %d", len(src.Patterns))
	}
}

func TestClipResize(t *testing.T) {
	cases := []struct {
		name  string
		start int
		to    int
	}{
		{"shrink_5_to_2", 5, 2},
		{"grow_2_to_7", 2, 7},
		{"same", 3, 3},
		{"to_zero", 4, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clip := Clip{}
			for i := 0; i < c.start; i++ {
				clip.Patterns = append(clip.Patterns, Pattern{Wait: float64(i + 2), Column: i, Row: i * 2})
			}
			clip.Resize(c.to)
			if len(clip.Patterns) != c.to {
				t.Fatalf("expected %d patterns, got %d", c.to, len(clip.Patterns))
			}
			for i, p := range clip.Patterns {
				if i < c.start {
					want := Pattern{Wait: float64(i + 2), Column: i, Row: i * 2}
					if p != want {
						t.Fatalf("pattern %d: expected %+v, got %+v", i, want, p)
					}
					continue
				}
				if p != NewPattern() {
					t.Fatalf("pattern %d: expected default, got %+v", i, p)
				}
			}
		})
	}
}

func TestSourceRect(t *testing.T) {
	clip := Clip{
		OffsetX: 10, OffsetY: 20, Width: 32, Height: 16,
		Patterns: []Pattern{{Wait: 1, Column: 0, Row: 0}, {Wait: 1, Column: 2, Row: 3}},
	}

	cases := []struct {
		name  string
		index int
		want  Rect
	}{
		{"first", 0, Rect{X: 10, Y: 20, Width: 32, Height: 16}},
		{"second", 1, Rect{X: 74, Y: 68, Width: 32, Height: 16}},
		{"clamped_high", 9, Rect{X: 74, Y: 68, Width: 32, Height: 16}},
		{"clamped_low", -1, Rect{X: 10, Y: 20, Width: 32, Height: 16}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := clip.SourceRect(c.index); got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}

	if got := (Clip{Width: 8}).SourceRect(0); got != (Rect{}) {
		t.Fatalf("empty clip should yield zero rect, got %+v", got)
	}

	if got := clip.SourceRect(1).Image(); got != image.Rect(74, 68, 106, 84) {
		t.Fatalf("unexpected image rect %v", got)
	}
}

func TestCatalogEditsKeepIndexAlignment(t *testing.T) {
	cat := NewCatalog("A")
	cat.Append("B", NewClip())
	cat.Append("C", NewClip())
	cat.Clips[1].Width = 99

	if !cat.RemoveAt(0) {
		t.Fatalf("RemoveAt(0) should succeed")
	}
	if cat.RemoveAt(5) {
		t.Fatalf("RemoveAt out of range should fail")
	}
	if cat.Len() != 2 || len(cat.Names) != 2 {
		t.Fatalf("expected 2 clips and names, got %d/%d", cat.Len(), len(cat.Names))
	}
	if cat.Names[0] != "B" || cat.Clips[0].Width != 99 {
		t.Fatalf("clip/name correspondence lost: %v %+v", cat.Names, cat.Clips[0])
	}
	if cat.IndexOf("C") != 1 || cat.IndexOf("A") != -1 {
		t.Fatalf("IndexOf mismatch")
	}
}

func TestCatalogCloneIsDeep(t *testing.T) {
	cat := NewCatalog("A")
	cat.TextureFile = "hero.png"
	cp := cat.Clone()
	cp.Names[0] = "Z"
	cp.Clips[0].Patterns[0].Row = 4
	if cat.Names[0] != "A" || cat.Clips[0].Patterns[0].Row != 0 {
		t.Fatalf("clone aliases source")
	}
	if cp.TextureFile != "hero.png" {
		t.Fatalf("texture not copied")
	}
}

func TestCatalogValidate(t *testing.T) {
	cases := []struct {
		name string
		cat  *Catalog
		want error
	}{
		{"ok", NewCatalog("A"), nil},
		{"nil", nil, ErrEmpty},
		{"empty", &Catalog{}, ErrEmpty},
		{"mismatch", &Catalog{Clips: []Clip{NewClip()}, Names: []string{"a", "b"}}, ErrMismatchedNames},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.cat.Validate()
			if c.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestCellAt(t *testing.T) {
	clip := Clip{OffsetX: 8, OffsetY: 4, Width: 16, Height: 32}
	cases := []struct {
		name     string
		x, y     float64
		col, row int
		ok       bool
	}{
		{"origin", 8, 4, 0, 0, true},
		{"inside_first", 23.9, 35.9, 0, 0, true},
		{"second_column", 24, 4, 1, 0, true},
		{"far", 8 + 16*5 + 1, 4 + 32*2, 5, 2, true},
		{"left_of_offset", 7, 10, 0, 0, false},
		{"above_offset", 10, 3, 0, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			col, row, ok := clip.CellAt(c.x, c.y)
			if ok != c.ok || col != c.col || row != c.row {
				t.Fatalf("CellAt(%v, %v) = %d, %d, %v; want %d, %d, %v", c.x, c.y, col, row, ok, c.col, c.row, c.ok)
			}
		})
	}
	if _, _, ok := (Clip{}).CellAt(1, 1); ok {
		t.Fatalf("zero sized clip reported a cell")
	}
}

func TestPatternValidate(t *testing.T) {
	cases := []struct {
		name string
		p    Pattern
		ok   bool
	}{
		{"default", NewPattern(), true},
		{"zero", Pattern{}, true},
		{"negative_wait", Pattern{Wait: -0.5}, false},
		{"nan_wait", Pattern{Wait: math.NaN()}, false},
		{"negative_column", Pattern{Wait: 1, Column: -1}, false},
		{"negative_row", Pattern{Wait: 1, Row: -2}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.p.Validate()
			if (err == nil) != c.ok {
				t.Fatalf("Validate(%+v) = %v, want ok %v", c.p, err, c.ok)
			}
			if err != nil && !errors.Is(err, ErrNegative) {
				t.Fatalf("expected ErrNegative, got %v", err)
			}
		})
	}

	err := ValidatePatterns([]Pattern{{Wait: 1}, {Wait: 1}, {Column: -3}})
	if !errors.Is(err, ErrNegative) || !strings.Contains(err.Error(), "pattern 2") {
		t.Fatalf("ValidatePatterns = %v", err)
	}
}
