// Package catalog owns the catalog being edited together with the selection
// and playback state that hangs off it.
package catalog

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/milk9111/animake/anim"
	"github.com/milk9111/animake/animfile"
	"github.com/milk9111/animake/playback"
)

const DefaultBaseName = "NewAnimation"

var (
	// ErrLastClip is returned when removing the only remaining clip.
	ErrLastClip = errors.New("catalog: cannot remove the last clip")
	// ErrNoPath is returned by SaveCurrent before any Load or Save.
	ErrNoPath      = errors.New("catalog: no file to save to")
	ErrOutOfRange  = errors.New("catalog: index out of range")
	ErrBadCount    = errors.New("catalog: pattern count must be at least 1")
	ErrNoPatterns  = errors.New("catalog: no patterns given")
	errNilCallback = errors.New("catalog: nil edit callback")
)

// TextureLoader is notified when the catalog's texture changes. The returned
// size is only logged.
type TextureLoader interface {
	LoadTexture(path string) (width, height int, err error)
}

type Options struct {
	Store     animfile.Store
	BaseName  string
	SpeedRate float64
	FixedStep float64
	Textures  TextureLoader
}

// Manager is not safe for concurrent use; the editor drives it from its
// update loop.
type Manager struct {
	store    animfile.Store
	baseName string
	textures TextureLoader

	cat      *anim.Catalog
	selected int
	pattern  int
	clock    *playback.Clock
	loc      animfile.Location
}

func New(opts Options) *Manager {
	base := opts.BaseName
	if base == "" {
		base = DefaultBaseName
	}
	clock := playback.NewClock()
	if opts.SpeedRate != 0 {
		clock.SetSpeedRate(opts.SpeedRate)
	}
	clock.FixedStep = opts.FixedStep
	return &Manager{
		store:    opts.Store,
		baseName: base,
		textures: opts.Textures,
		cat:      anim.NewCatalog(base + "1"),
		clock:    clock,
	}
}

func (m *Manager) Len() int { return m.cat.Len() }

// Names returns a copy of the clip names in catalog order.
func (m *Manager) Names() []string {
	out := make([]string, len(m.cat.Names))
	copy(out, m.cat.Names)
	return out
}

func (m *Manager) Name(i int) (string, bool) {
	if i < 0 || i >= m.cat.Len() {
		return "", false
	}
	return m.cat.Names[i], true
}

// Clip returns a deep copy of clip i.
func (m *Manager) Clip(i int) (anim.Clip, bool) {
	if i < 0 || i >= m.cat.Len() {
		return anim.Clip{}, false
	}
	return m.cat.Clips[i].Clone(), true
}

// Catalog returns a deep copy of the whole catalog.
func (m *Manager) Catalog() *anim.Catalog { return m.cat.Clone() }

func (m *Manager) Selected() int        { return m.selected }
func (m *Manager) SelectedPattern() int { return m.pattern }
func (m *Manager) PlaybackIndex() int   { return m.clock.Index() }
func (m *Manager) SpeedRate() float64   { return m.clock.SpeedRate }
func (m *Manager) TextureFile() string  { return m.cat.TextureFile }
func (m *Manager) TextPath() string     { return m.cat.TextPath }
func (m *Manager) Location() animfile.Location {
	return m.loc
}

// SelectedClip returns a deep copy of the selected clip.
func (m *Manager) SelectedClip() anim.Clip {
	return m.cat.Clips[m.selected].Clone()
}

func (m *Manager) current() *anim.Clip {
	return &m.cat.Clips[m.selected]
}

// PlaybackRect is the source rectangle of the pattern the clock is on.
func (m *Manager) PlaybackRect() anim.Rect {
	return m.current().SourceRect(m.clock.Index())
}

// EditRect is the source rectangle of the pattern being edited.
func (m *Manager) EditRect() anim.Rect {
	return m.current().SourceRect(m.pattern)
}

// Dump renders the text listing written next to saved catalogs. Before the
// first save it names SuggestedPath.
func (m *Manager) Dump() string {
	return animfile.DumpString(m.SuggestedPath(), m.cat)
}

// SuggestedPath is where the catalog would be saved: its current binary
// path, else one named after the texture, else after the base name.
func (m *Manager) SuggestedPath() string {
	switch {
	case m.loc.Binary != "":
		return m.loc.Binary
	case m.cat.TextureFile != "":
		tex := m.cat.TextureFile
		return strings.TrimSuffix(tex, filepath.Ext(tex)) + animfile.BinaryExt
	}
	return m.baseName + animfile.BinaryExt
}

// Select makes clip i current and restarts playback.
func (m *Manager) Select(i int) error {
	if i < 0 || i >= m.cat.Len() {
		return fmt.Errorf("%w: select %d of %d", ErrOutOfRange, i, m.cat.Len())
	}
	m.selected = i
	m.clock.Reset()
	m.clampIndices()
	return nil
}

// SelectPattern picks the pattern to edit; i is clamped into range.
func (m *Manager) SelectPattern(i int) {
	m.pattern = anim.ClampIndex(i, len(m.current().Patterns))
}

// AddClip appends a default clip named base plus the new clip count. When
// that name is taken "+" is appended until it is unique. The selection does
// not change.
func (m *Manager) AddClip(base string) string {
	if base == "" {
		base = m.baseName
	}
	name := base + strconv.Itoa(m.cat.Len()+1)
	for m.cat.IndexOf(name) >= 0 {
		name += "+"
	}
	m.cat.Append(name, anim.NewClip())
	return name
}

// RemoveSelected deletes the selected clip. The last clip is never removed.
func (m *Manager) RemoveSelected() error {
	if m.cat.Len() <= 1 {
		return ErrLastClip
	}
	m.cat.RemoveAt(m.selected)
	m.selected = anim.ClampIndex(m.selected, m.cat.Len())
	m.pattern = 0
	m.clock.Reset()
	return nil
}

// Rename overwrites the name of clip i. Duplicates are allowed.
func (m *Manager) Rename(i int, name string) error {
	if i < 0 || i >= m.cat.Len() {
		return fmt.Errorf("%w: rename %d of %d", ErrOutOfRange, i, m.cat.Len())
	}
	m.cat.Names[i] = name
	return nil
}

// ResizePatternCount changes the selected clip's pattern count, keeping
// existing patterns and default-filling new ones.
func (m *Manager) ResizePatternCount(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrBadCount, n)
	}
	m.current().Resize(n)
	m.clampIndices()
	return nil
}

// BulkSetWait gives every pattern of the selected clip the same wait. A
// negative wait is rejected.
func (m *Manager) BulkSetWait(v float64) error {
	if err := (anim.Pattern{Wait: v}).Validate(); err != nil {
		return fmt.Errorf("catalog: set wait: %w", err)
	}
	ps := m.current().Patterns
	for i := range ps {
		ps[i].Wait = v
	}
	return nil
}

// BulkSetColumn numbers the columns 0..N-1 in pattern order.
func (m *Manager) BulkSetColumn() {
	ps := m.current().Patterns
	for i := range ps {
		ps[i].Column = i
	}
}

func (m *Manager) BulkResetColumn() {
	ps := m.current().Patterns
	for i := range ps {
		ps[i].Column = 0
	}
}

// BulkSetRow numbers the rows 0..N-1 in pattern order.
func (m *Manager) BulkSetRow() {
	ps := m.current().Patterns
	for i := range ps {
		ps[i].Row = i
	}
}

func (m *Manager) BulkResetRow() {
	ps := m.current().Patterns
	for i := range ps {
		ps[i].Row = 0
	}
}

// UpdateSelected hands a copy of the selected clip to fn and keeps the
// result unless it leaves a pattern negative.
func (m *Manager) UpdateSelected(fn func(*anim.Clip)) error {
	if fn == nil {
		return errNilCallback
	}
	next := m.current().Clone()
	fn(&next)
	if err := anim.ValidatePatterns(next.Patterns); err != nil {
		return fmt.Errorf("catalog: update clip: %w", err)
	}
	*m.current() = next
	m.clampIndices()
	return nil
}

// UpdatePattern hands a copy of pattern i of the selected clip to fn and
// keeps the result when it is valid.
func (m *Manager) UpdatePattern(i int, fn func(*anim.Pattern)) error {
	if fn == nil {
		return errNilCallback
	}
	ps := m.current().Patterns
	if i < 0 || i >= len(ps) {
		return fmt.Errorf("%w: pattern %d of %d", ErrOutOfRange, i, len(ps))
	}
	next := ps[i]
	fn(&next)
	if err := next.Validate(); err != nil {
		return fmt.Errorf("catalog: update pattern %d: %w", i, err)
	}
	ps[i] = next
	return nil
}

// ReplacePatterns swaps the selected clip's whole pattern list. Nothing
// changes when any pattern is negative.
func (m *Manager) ReplacePatterns(ps []anim.Pattern) error {
	if len(ps) == 0 {
		return ErrNoPatterns
	}
	if err := anim.ValidatePatterns(ps); err != nil {
		return fmt.Errorf("catalog: replace patterns: %w", err)
	}
	next := make([]anim.Pattern, len(ps))
	copy(next, ps)
	m.current().Patterns = next
	m.clampIndices()
	return nil
}

// Play restarts playback of the selected clip.
func (m *Manager) Play() { m.clock.Reset() }

// Tick advances playback of the selected clip by dt.
func (m *Manager) Tick(dt float64) {
	m.clock.Advance(m.current(), dt)
}

func (m *Manager) SetSpeedRate(rate float64) { m.clock.SetSpeedRate(rate) }

// SetTexture records path, relative to the store directory when possible,
// and hands it to the texture loader. A loader error leaves the old texture
// in place.
func (m *Manager) SetTexture(path string) error {
	rel := m.store.Rel(path)
	if err := m.loadTexture(rel); err != nil {
		return err
	}
	m.cat.TextureFile = rel
	return nil
}

func (m *Manager) loadTexture(path string) error {
	if m.textures == nil || path == "" {
		return nil
	}
	w, h, err := m.textures.LoadTexture(m.store.Abs(path))
	if err != nil {
		return fmt.Errorf("catalog: load texture %s: %w", path, err)
	}
	log.Printf("catalog: texture %s (%dx%d)", path, w, h)
	return nil
}

// Load replaces the catalog with the one at path (binary or pointer file).
// On failure nothing changes.
func (m *Manager) Load(path string) error {
	cat, loc, err := m.store.Open(path)
	if err != nil {
		return fmt.Errorf("catalog: load %s: %w", path, err)
	}
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("catalog: load %s: %w", path, err)
	}
	m.cat = cat
	m.loc = loc
	m.selected = 0
	m.pattern = 0
	m.clock.Reset()
	if err := m.loadTexture(cat.TextureFile); err != nil {
		log.Printf("catalog: %v", err)
	}
	log.Printf("catalog: loaded %s (%d clips)", loc.Binary, cat.Len())
	return nil
}

// Save writes the catalog and its pointer file. On failure nothing changes.
func (m *Manager) Save(path string) error {
	loc, err := m.store.Save(path, m.cat)
	if err != nil {
		return fmt.Errorf("catalog: save %s: %w", path, err)
	}
	m.loc = loc
	m.cat.TextPath = loc.Text
	log.Printf("catalog: saved %s and %s", loc.Binary, loc.Text)
	return nil
}

// SaveCurrent saves back to the last loaded or saved binary path.
func (m *Manager) SaveCurrent() error {
	if m.loc.Binary == "" {
		return ErrNoPath
	}
	return m.Save(m.loc.Binary)
}

// Reload reads the last binary path again, dropping unsaved edits. The
// selection is kept when it is still in range.
func (m *Manager) Reload() error {
	if m.loc.Binary == "" {
		return ErrNoPath
	}
	selected, pattern := m.selected, m.pattern
	text := m.loc.Text
	if err := m.Load(m.loc.Binary); err != nil {
		return err
	}
	if text != "" {
		m.loc.Text = text
	}
	m.selected = anim.ClampIndex(selected, m.cat.Len())
	m.pattern = pattern
	m.clampIndices()
	return nil
}

func (m *Manager) clampIndices() {
	n := len(m.current().Patterns)
	m.pattern = anim.ClampIndex(m.pattern, n)
	m.clock.Clamp(n)
}
