package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Prompt is a one line path entry drawn over the canvas. It stands in for
// the native file dialogs when the editor is built without them. Enter
// submits, Escape cancels, Ctrl+V pastes.
type Prompt struct {
	open    bool
	label   string
	input   []rune
	onEnter func(string)
	chars   []rune
}

func NewPrompt() *Prompt { return &Prompt{} }

func (p *Prompt) IsOpen() bool { return p.open }

func (p *Prompt) Open(label, initial string, onEnter func(string)) {
	p.label = label
	p.input = []rune(initial)
	p.onEnter = onEnter
	p.open = true
}

func (p *Prompt) Close() {
	p.open = false
	p.label = ""
	p.input = nil
	p.onEnter = nil
}

// Update consumes keyboard input while the prompt is open and reports
// whether it did.
func (p *Prompt) Update() bool {
	if !p.open {
		return false
	}
	p.chars = ebiten.AppendInputChars(p.chars[:0])
	for _, r := range p.chars {
		if r == '\n' || r == '\r' {
			continue
		}
		p.input = append(p.input, r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) && ctrlPressed() {
		if s, err := pasteText(); err == nil {
			p.input = append(p.input, []rune(s)...)
		}
	}
	if repeatPressed(ebiten.KeyBackspace) && len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		cur := string(p.input)
		cb := p.onEnter
		p.Close()
		if cb != nil && cur != "" {
			cb(cur)
		}
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.Close()
	}
	return true
}

func (p *Prompt) Draw(screen *ebiten.Image) {
	if !p.open {
		return
	}
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	vector.FillRect(screen, 0, float32(sh/2-24), float32(sw), 48, color.RGBA{A: 0xcc}, false)
	label := p.label
	if label == "" {
		label = "Path:"
	}
	ebitenutil.DebugPrintAt(screen, label+" "+string(p.input)+"_", 16, sh/2-8)
	ebitenutil.DebugPrintAt(screen, "Enter to confirm, Esc to cancel", 16, sh/2+8)
}

func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// repeatPressed fires on press and then at a steady rate while held.
func repeatPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > 30 && d%4 == 0)
}
