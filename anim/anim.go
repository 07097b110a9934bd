package anim

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// DefaultPatternCount is the number of patterns a new clip starts with, so
// the editor always has a stable working set.
const DefaultPatternCount = 30

var (
	ErrEmpty           = errors.New("anim: catalog has no clips")
	ErrMismatchedNames = errors.New("anim: clip and name counts differ")
	ErrNegative        = errors.New("anim: negative pattern value")
)

// Pattern selects one sprite-sheet cell and how long to dwell on it.
type Pattern struct {
	Wait   float64
	Column int
	Row    int
}

// NewPattern returns a pattern with a wait of 1 on cell (0, 0).
func NewPattern() Pattern {
	return Pattern{Wait: 1}
}

// Validate rejects a negative (or NaN) wait, column or row.
func (p Pattern) Validate() error {
	if !(p.Wait >= 0) || p.Column < 0 || p.Row < 0 {
		return fmt.Errorf("%w: wait %g, column %d, row %d", ErrNegative, p.Wait, p.Column, p.Row)
	}
	return nil
}

// ValidatePatterns checks every pattern and names the first bad one.
func ValidatePatterns(ps []Pattern) error {
	for i, p := range ps {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("pattern %d: %w", i, err)
		}
	}
	return nil
}

// Rect is a source rectangle on the texture in pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Image converts the rect to an image.Rectangle, flooring the origin and
// rounding the size.
func (r Rect) Image() image.Rectangle {
	x := int(math.Floor(r.X))
	y := int(math.Floor(r.Y))
	return image.Rect(x, y, x+int(math.Round(r.Width)), y+int(math.Round(r.Height)))
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Clip is one named animation: a cell grid on the texture plus an ordered
// sequence of patterns. The name lives in the owning Catalog.
type Clip struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
	Loop    bool

	Patterns []Pattern
}

// NewClip creates a clip with zero geometry and DefaultPatternCount default
// patterns.
func NewClip() Clip {
	c := Clip{}
	c.Resize(DefaultPatternCount)
	return c
}

// Clone returns a deep copy; the pattern slice is never shared.
func (c Clip) Clone() Clip {
	out := c
	if c.Patterns != nil {
		out.Patterns = make([]Pattern, len(c.Patterns))
		copy(out.Patterns, c.Patterns)
	}
	return out
}

// Resize sets the pattern count to n, keeping existing patterns by index and
// filling new slots with NewPattern.
func (c *Clip) Resize(n int) {
	if n < 0 {
		n = 0
	}
	next := make([]Pattern, n)
	kept := copy(next, c.Patterns)
	for i := kept; i < n; i++ {
		next[i] = NewPattern()
	}
	c.Patterns = next
}

// SourceRect returns the texture rectangle for pattern i. The index is
// clamped into range; a clip without patterns yields the zero Rect.
func (c Clip) SourceRect(i int) Rect {
	if len(c.Patterns) == 0 {
		return Rect{}
	}
	i = ClampIndex(i, len(c.Patterns))
	p := c.Patterns[i]
	return Rect{
		X:      c.OffsetX + float64(p.Column)*c.Width,
		Y:      c.OffsetY + float64(p.Row)*c.Height,
		Width:  c.Width,
		Height: c.Height,
	}
}

// CellAt maps a texture pixel to the column and row of the clip's grid.
// ok is false when the clip has no cell size or the point lies above or to
// the left of the offset.
func (c Clip) CellAt(x, y float64) (column, row int, ok bool) {
	if c.Width <= 0 || c.Height <= 0 || x < c.OffsetX || y < c.OffsetY {
		return 0, 0, false
	}
	column = int(math.Floor((x - c.OffsetX) / c.Width))
	row = int(math.Floor((y - c.OffsetY) / c.Height))
	return column, row, true
}

// ClampIndex clamps i into [0, n-1]. It returns 0 when n is 0.
func ClampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Catalog is the persisted unit: a texture reference plus index-aligned
// clips and display names.
type Catalog struct {
	TextureFile string
	Clips       []Clip
	Names       []string
	TextPath    string
}

// NewCatalog returns a catalog holding a single default clip named name.
func NewCatalog(name string) *Catalog {
	return &Catalog{
		Clips: []Clip{NewClip()},
		Names: []string{name},
	}
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Clips)
}

// Clone deep-copies the catalog.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	out := &Catalog{
		TextureFile: c.TextureFile,
		TextPath:    c.TextPath,
		Clips:       make([]Clip, len(c.Clips)),
		Names:       make([]string, len(c.Names)),
	}
	for i := range c.Clips {
		out.Clips[i] = c.Clips[i].Clone()
	}
	copy(out.Names, c.Names)
	return out
}

// Append adds a clip and its name at the end.
func (c *Catalog) Append(name string, clip Clip) {
	c.Clips = append(c.Clips, clip)
	c.Names = append(c.Names, name)
}

// RemoveAt deletes the clip and name at i. It reports false when i is out of
// range.
func (c *Catalog) RemoveAt(i int) bool {
	if i < 0 || i >= len(c.Clips) || i >= len(c.Names) {
		return false
	}
	c.Clips = append(c.Clips[:i], c.Clips[i+1:]...)
	c.Names = append(c.Names[:i], c.Names[i+1:]...)
	return true
}

// IndexOf returns the first index whose name equals name, or -1.
func (c *Catalog) IndexOf(name string) int {
	for i, n := range c.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// Validate checks the structural invariants the manager relies on.
func (c *Catalog) Validate() error {
	if c == nil || len(c.Clips) == 0 {
		return ErrEmpty
	}
	if len(c.Clips) != len(c.Names) {
		return fmt.Errorf("%w: %d clips, %d names", ErrMismatchedNames, len(c.Clips), len(c.Names))
	}
	return nil
}
