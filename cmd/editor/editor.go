package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/animake/anim"
	"github.com/milk9111/animake/animfile"
	"github.com/milk9111/animake/catalog"
	"github.com/milk9111/animake/config"
	"github.com/milk9111/animake/render"
	"github.com/milk9111/animake/script"
	"github.com/milk9111/animake/watch"
)

// scriptTimeout bounds a pattern script so a runaway loop cannot freeze the
// editor.
const scriptTimeout = 2 * time.Second

// Editor is the ebiten game driving the catalog manager.
type Editor struct {
	cfg     config.Config
	cfgPath string
	store   animfile.Store
	manager *catalog.Manager
	texture *render.Texture

	ui     *ebitenui.UI
	panels *EditorUI
	canvas *Canvas
	prompt *Prompt

	watcher  *watch.Watcher
	ownWrite *watch.Suppressor

	width, height int
	dirty         bool
}

func NewEditor(cfg config.Config, cfgPath string) (*Editor, error) {
	e := &Editor{
		cfg:      cfg,
		cfgPath:  cfgPath,
		store:    animfile.Store{Dir: cfg.Dir},
		texture:  &render.Texture{},
		canvas:   NewCanvas(cfg.BackgroundColor(), cfg.Grid.Enabled, cfg.Grid.Size),
		prompt:   NewPrompt(),
		ownWrite: watch.NewSuppressor(),
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
	}
	e.manager = catalog.New(catalog.Options{
		Store:     e.store,
		BaseName:  cfg.BaseName,
		SpeedRate: cfg.SpeedRate,
		FixedStep: cfg.FixedStep,
		Textures:  e.texture,
	})

	ui, panels, err := BuildEditorUI(e.callbacks(), e.manager.SelectedPattern, e.canvas.Scale)
	if err != nil {
		return nil, err
	}
	e.ui, e.panels = ui, panels
	e.canvas.Resize(e.width, e.height)

	if cfg.Watch {
		w, err := watch.New(cfg.Dir)
		if err != nil {
			log.Printf("file watching disabled: %v", err)
		} else {
			e.watcher = w
		}
	}
	e.refresh()
	return e, nil
}

func (e *Editor) Close() error {
	if e.watcher != nil {
		return e.watcher.Close()
	}
	return nil
}

func (e *Editor) callbacks() uiCallbacks {
	return uiCallbacks{
		OnSelectClip: func(idx int) {
			if err := e.manager.Select(idx); err != nil {
				e.report(err)
			}
			e.refresh()
		},
		OnAddClip: func() {
			name := e.manager.AddClip(e.cfg.BaseName)
			e.changed("added " + name)
		},
		OnDeleteClip: func() {
			if err := e.manager.RemoveSelected(); err != nil {
				e.report(err)
				return
			}
			e.changed("animation deleted")
		},
		OnRenameClip: func(idx int, name string) {
			if err := e.manager.Rename(idx, name); err != nil {
				e.report(err)
				return
			}
			e.changed("renamed to " + name)
		},
		OnClipField: func(field string, v float64) {
			err := e.manager.UpdateSelected(func(c *anim.Clip) {
				switch field {
				case "offset_x":
					c.OffsetX = v
				case "offset_y":
					c.OffsetY = v
				case "width":
					c.Width = v
				case "height":
					c.Height = v
				}
			})
			if err != nil {
				e.report(err)
				return
			}
			e.dirty = true
		},
		OnToggleLoop: func() {
			e.manager.UpdateSelected(func(c *anim.Clip) { c.Loop = !c.Loop })
			e.changed("")
		},
		OnPatternCount: e.resizePatterns,
		OnSpeedRate: func(rate float64) {
			e.manager.SetSpeedRate(rate)
			e.refresh()
		},
		OnPlay: func() { e.manager.Play() },
		OnSelectPattern: func(idx int) {
			e.manager.SelectPattern(idx)
			e.refresh()
		},
		OnPatternField: func(field string, v float64) {
			err := e.manager.UpdatePattern(e.manager.SelectedPattern(), func(p *anim.Pattern) {
				switch field {
				case "wait":
					p.Wait = v
				case "column":
					p.Column = int(v)
				case "row":
					p.Row = int(v)
				}
			})
			if err != nil {
				e.report(err)
				return
			}
			e.dirty = true
		},
		OnBulk:      e.bulk,
		OnRunScript: e.browseScript,

		OnOpen:          e.open,
		OnSave:          e.saveAs,
		OnSaveCurrent:   e.save,
		OnReload:        e.reload,
		OnBrowseOpen:    e.browseOpen,
		OnBrowseSave:    e.browseSave,
		OnTexture:       e.setTexture,
		OnBrowseTexture: e.browseTexture,
		OnCopyDump: func() {
			if err := copyText(e.manager.Dump()); err != nil {
				e.report(err)
				return
			}
			e.status("dump copied to clipboard")
		},
		OnScale: func(scale int) { e.canvas.Scale = scale },
	}
}

func (e *Editor) resizePatterns(n int) {
	n = min(max(n, 1), e.cfg.PatternCountMax)
	if err := e.manager.ResizePatternCount(n); err != nil {
		e.report(err)
		return
	}
	e.changed("")
}

func (e *Editor) bulk(action, value string) {
	switch action {
	case "wait":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			e.status(fmt.Sprintf("wait %q is not a number", value))
			return
		}
		if err := e.manager.BulkSetWait(v); err != nil {
			e.report(err)
			return
		}
	case "set_column":
		e.manager.BulkSetColumn()
	case "reset_column":
		e.manager.BulkResetColumn()
	case "set_row":
		e.manager.BulkSetRow()
	case "reset_row":
		e.manager.BulkResetRow()
	default:
		return
	}
	e.changed("")
}

func (e *Editor) open(path string) {
	if err := e.manager.Load(path); err != nil {
		e.report(err)
		return
	}
	e.canvas.ResetView()
	e.dirty = false
	e.remember(path)
	e.status("opened " + path)
	e.refresh()
}

func (e *Editor) saveAs(path string) {
	if filepath.Ext(path) == "" {
		path += animfile.BinaryExt
	}
	bin := animfile.BinaryPathFor(path)
	e.ignoreOwnWrite(animfile.Location{Binary: bin, Text: animfile.TextPathFor(bin)})
	if err := e.manager.Save(path); err != nil {
		e.report(err)
		return
	}
	e.dirty = false
	e.remember(e.manager.Location().Text)
	e.status("saved " + e.manager.Location().Binary)
	e.refresh()
}

func (e *Editor) save() {
	if e.manager.Location().Binary == "" {
		e.browseSave()
		return
	}
	e.ignoreOwnWrite(e.manager.Location())
	if err := e.manager.SaveCurrent(); err != nil {
		e.report(err)
		return
	}
	e.dirty = false
	e.status("saved " + e.manager.Location().Binary)
	e.refresh()
}

func (e *Editor) reload() {
	if err := e.manager.Reload(); err != nil {
		e.report(err)
		return
	}
	e.dirty = false
	e.status("reloaded " + e.manager.Location().Binary)
	e.refresh()
}

func (e *Editor) setTexture(path string) {
	if err := e.manager.SetTexture(path); err != nil {
		e.report(err)
		return
	}
	e.canvas.ResetView()
	e.changed("texture " + e.manager.TextureFile())
}

// ask runs a native dialog when the build has them and the text prompt
// otherwise.
func (e *Editor) ask(label, initial string, native func(dir string) (string, error), then func(string)) {
	if nativeDialogs {
		path, err := native(e.store.Abs("."))
		if err != nil {
			e.report(err)
			return
		}
		then(path)
		return
	}
	e.prompt.Open(label, initial, then)
}

func (e *Editor) browseOpen() {
	e.ask("Open catalog:", e.manager.Location().Text, openCatalogDialog, e.open)
}

func (e *Editor) browseSave() {
	e.ask("Save catalog as:", e.manager.SuggestedPath(), saveCatalogDialog, e.saveAs)
}

func (e *Editor) browseTexture() {
	e.ask("Texture:", e.manager.TextureFile(), openTextureDialog, e.setTexture)
}

func (e *Editor) browseScript() {
	initial := ""
	if e.cfg.ScriptsDir != "" {
		initial = e.cfg.ScriptsDir + string(filepath.Separator)
	}
	e.ask("Pattern script:", initial, openScriptDialog, e.runScript)
}

func (e *Editor) runScript(path string) {
	ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
	defer cancel()
	count := len(e.manager.SelectedClip().Patterns)
	patterns, err := script.RunFile(ctx, e.store.Abs(path), count)
	if err != nil {
		e.report(err)
		return
	}
	if len(patterns) > e.cfg.PatternCountMax {
		patterns = patterns[:e.cfg.PatternCountMax]
	}
	if err := e.manager.ReplacePatterns(patterns); err != nil {
		e.report(err)
		return
	}
	e.changed(fmt.Sprintf("script set %d patterns", len(patterns)))
}

func (e *Editor) ignoreOwnWrite(loc animfile.Location) {
	for _, p := range []string{loc.Binary, loc.Text} {
		if p != "" {
			e.ownWrite.Ignore(e.store.Abs(p), time.Second)
		}
	}
}

// remember records the last opened file in the settings so the next start
// reopens it.
func (e *Editor) remember(path string) {
	if e.cfgPath == "" || path == "" || e.cfg.LastFile == path {
		return
	}
	e.cfg.LastFile = path
	if err := config.Save(e.cfgPath, e.cfg); err != nil {
		log.Printf("settings not saved: %v", err)
	}
}

func (e *Editor) changed(msg string) {
	e.dirty = true
	if msg != "" {
		e.status(msg)
	}
	e.refresh()
}

func (e *Editor) status(msg string) {
	log.Print(msg)
	e.panels.File.SetStatus(msg)
}

func (e *Editor) report(err error) {
	switch {
	case errors.Is(err, catalog.ErrLastClip):
		e.status("the last animation cannot be deleted")
	case errors.Is(err, catalog.ErrNoPath):
		e.status("nothing to save to yet")
	case errors.Is(err, anim.ErrNegative):
		e.status("wait, column and row cannot be negative")
	default:
		e.status(err.Error())
	}
}

// refresh pushes the manager's state into the panels.
func (e *Editor) refresh() {
	m := e.manager
	clip := m.SelectedClip()
	e.panels.Clips.SetClips(m.Names())
	e.panels.Clips.SetSelected(m.Selected())
	e.panels.Clip.Set(clipValues{
		OffsetX: clip.OffsetX,
		OffsetY: clip.OffsetY,
		Width:   clip.Width,
		Height:  clip.Height,
		Count:   len(clip.Patterns),
		Speed:   m.SpeedRate(),
		Loop:    clip.Loop,
	})
	idx := m.SelectedPattern()
	pv := patternValues{Index: idx, Count: len(clip.Patterns)}
	if idx < len(clip.Patterns) {
		p := clip.Patterns[idx]
		pv.Wait, pv.Column, pv.Row = p.Wait, p.Column, p.Row
	}
	e.panels.Pattern.Set(pv)
	e.panels.File.SetPath(m.Location().Text)
	e.panels.File.SetTexture(m.TextureFile())

	title := "animake"
	if loc := m.Location().Binary; loc != "" {
		title += " - " + loc
	}
	if e.dirty {
		title += " *"
	}
	ebiten.SetWindowTitle(title)
}

func (e *Editor) drainWatcher() {
	if e.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-e.watcher.Events:
			if !ok {
				e.watcher = nil
				return
			}
			e.onFileChanged(name)
		case err, ok := <-e.watcher.Errors:
			if ok {
				log.Printf("watch: %v", err)
			}
		default:
			return
		}
	}
}

func (e *Editor) onFileChanged(name string) {
	if !e.ownWrite.Allow(name) {
		return
	}
	changed := filepath.Clean(name)
	loc := e.manager.Location()
	switch {
	case loc.Binary != "" && changed == filepath.Clean(e.store.Abs(loc.Binary)):
		if e.dirty {
			e.status(loc.Binary + " changed on disk; Reload to discard your edits")
			return
		}
		e.reload()
	case e.texture.Path != "" && changed == e.texture.Path:
		if err := e.texture.Reload(); err != nil {
			e.report(err)
			return
		}
		e.status("texture reloaded")
	}
}

func (e *Editor) Update() error {
	e.drainWatcher()
	dt := 1 / float64(ebiten.TPS())

	if e.prompt.Update() {
		e.manager.Tick(dt)
		return nil
	}

	e.ui.Update()

	if !e.panels.ModalOpen() {
		e.handleShortcuts()
		if x, y, ok := e.canvas.Update(); ok {
			e.pickCell(x, y)
		}
	}

	e.manager.Tick(dt)
	return nil
}

func (e *Editor) handleShortcuts() {
	if !ctrlPressed() {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyS) && ebiten.IsKeyPressed(ebiten.KeyShift):
		e.browseSave()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		e.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		e.browseOpen()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		e.reload()
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		e.canvas.GridEnabled = !e.canvas.GridEnabled
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		e.manager.Play()
	}
}

// pickCell points the edited pattern at the cell under a click on the
// texture view.
func (e *Editor) pickCell(x, y float64) {
	col, row, ok := e.manager.SelectedClip().CellAt(x, y)
	if !ok {
		return
	}
	err := e.manager.UpdatePattern(e.manager.SelectedPattern(), func(p *anim.Pattern) {
		p.Column, p.Row = col, row
	})
	if err != nil {
		e.report(err)
		return
	}
	e.changed("")
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(e.canvas.Background)
	name, _ := e.manager.Name(e.manager.Selected())
	e.canvas.Draw(screen, canvasFrame{
		Sheet:    e.texture.Image,
		Clip:     e.manager.SelectedClip(),
		Play:     e.manager.PlaybackRect(),
		Edit:     e.manager.EditRect(),
		PlayIdx:  e.manager.PlaybackIndex(),
		EditIdx:  e.manager.SelectedPattern(),
		Speed:    e.manager.SpeedRate(),
		Selected: name,
	})
	e.ui.Draw(screen)
	e.prompt.Draw(screen)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.width || outsideHeight != e.height {
		e.width, e.height = outsideWidth, outsideHeight
		e.canvas.Resize(e.width, e.height)
	}
	return outsideWidth, outsideHeight
}
