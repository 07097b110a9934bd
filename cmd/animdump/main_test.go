package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/milk9111/animake/anim"
	"github.com/milk9111/animake/animfile"
)

func TestPrintCatalog(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	cat := &anim.Catalog{
		TextureFile: "hero.png",
		Names:       []string{"Walk", "Jump"},
		Clips: []anim.Clip{
			{Width: 32, Height: 32, Loop: true, Patterns: []anim.Pattern{{Wait: 5}, {Wait: 2.5, Column: 1}}},
			{OffsetX: 0, OffsetY: 32, Width: 16, Height: 24, Patterns: []anim.Pattern{{Wait: 1}}},
		},
	}
	var buf bytes.Buffer
	printCatalog(&buf, animfile.Location{Binary: "hero.anim", Text: "hero.txt"}, cat)
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "hero.anim" {
		t.Fatalf("header = %q", lines[0])
	}
	for _, want := range []string{"2 clips", "Walk", "32x32", "7.5", "0,32", "16x24", "false"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTotalWait(t *testing.T) {
	if got := totalWait(anim.Clip{}); got != 0 {
		t.Fatalf("empty clip = %v", got)
	}
	clip := anim.Clip{Patterns: []anim.Pattern{{Wait: 1}, {Wait: 0.5}}}
	if got := totalWait(clip); got != 1.5 {
		t.Fatalf("totalWait = %v", got)
	}
}
