package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/animake/anim"
	"github.com/milk9111/animake/render"
)

const (
	toolbarHeight = 48
	minZoom       = 0.25
	maxZoom       = 16
)

// Canvas draws the three views between the side panels: the whole texture
// with the clip grid on top, the playing animation at the bottom left and the
// pattern being edited at the bottom right.
type Canvas struct {
	Background  color.RGBA
	GridEnabled bool
	GridSize    int
	Scale       int

	zoom       float64
	panX, panY float64
	panning    bool
	lastX      int
	lastY      int

	texture, preview, edit image.Rectangle
}

func NewCanvas(bg color.RGBA, gridEnabled bool, gridSize int) *Canvas {
	return &Canvas{
		Background:  bg,
		GridEnabled: gridEnabled,
		GridSize:    gridSize,
		Scale:       2,
		zoom:        1,
		panX:        8,
		panY:        8,
	}
}

// Resize recomputes the view rectangles for a screen of w by h.
func (c *Canvas) Resize(w, h int) {
	area := image.Rect(leftPanelWidth, toolbarHeight, w-rightPanelWidth, h)
	if area.Dx() < 1 || area.Dy() < 1 {
		area = image.Rect(0, 0, max(w, 1), max(h, 1))
	}
	split := area.Min.Y + area.Dy()*3/5
	c.texture = image.Rect(area.Min.X, area.Min.Y, area.Max.X, split)
	mid := area.Min.X + area.Dx()/2
	c.preview = image.Rect(area.Min.X, split, mid, area.Max.Y)
	c.edit = image.Rect(mid, split, area.Max.X, area.Max.Y)
}

// Update handles zoom and pan of the texture view. It returns the texture
// pixel that was left clicked, if any.
func (c *Canvas) Update() (x, y float64, clicked bool) {
	mx, my := ebiten.CursorPosition()
	over := image.Pt(mx, my).In(c.texture)

	if _, wy := ebiten.Wheel(); wy != 0 && over {
		prev := c.zoom
		c.zoom = math.Max(minZoom, math.Min(maxZoom, c.zoom*math.Pow(1.25, wy)))
		// keep the pixel under the cursor in place
		lx := float64(mx - c.texture.Min.X)
		ly := float64(my - c.texture.Min.Y)
		c.panX = lx - (lx-c.panX)*c.zoom/prev
		c.panY = ly - (ly-c.panY)*c.zoom/prev
	}

	if over && (inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle)) {
		c.panning = true
		c.lastX, c.lastY = mx, my
	}
	if c.panning {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
			c.panning = false
		} else {
			c.panX += float64(mx - c.lastX)
			c.panY += float64(my - c.lastY)
			c.lastX, c.lastY = mx, my
		}
	}

	if over && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		tx := (float64(mx-c.texture.Min.X) - c.panX) / c.zoom
		ty := (float64(my-c.texture.Min.Y) - c.panY) / c.zoom
		return tx, ty, true
	}
	return 0, 0, false
}

func (c *Canvas) ResetView() {
	c.zoom = 1
	c.panX, c.panY = 8, 8
}

type canvasFrame struct {
	Sheet    *ebiten.Image
	Clip     anim.Clip
	Play     anim.Rect
	Edit     anim.Rect
	PlayIdx  int
	EditIdx  int
	Speed    float64
	Selected string
}

func (c *Canvas) Draw(screen *ebiten.Image, f canvasFrame) {
	c.drawTexture(screen, f)
	c.drawCell(screen, c.preview, f.Sheet, f.Play, fmt.Sprintf("%s  pattern %d  speed %.2f  x%d", f.Selected, f.PlayIdx+1, f.Speed, c.Scale))
	c.drawCell(screen, c.edit, f.Sheet, f.Edit, fmt.Sprintf("edit pattern %d", f.EditIdx+1))
}

func (c *Canvas) drawTexture(screen *ebiten.Image, f canvasFrame) {
	view := screen.SubImage(c.texture).(*ebiten.Image)
	view.Fill(c.Background)
	ox := float64(c.texture.Min.X) + c.panX
	oy := float64(c.texture.Min.Y) + c.panY

	if f.Sheet == nil {
		ebitenutil.DebugPrintAt(view, "No texture loaded", c.texture.Min.X+8, c.texture.Min.Y+8)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(c.zoom, c.zoom)
	op.GeoM.Translate(ox, oy)
	op.Filter = ebiten.FilterNearest
	view.DrawImage(f.Sheet, op)

	sw := float64(f.Sheet.Bounds().Dx())
	sh := float64(f.Sheet.Bounds().Dy())
	if c.GridEnabled {
		c.drawGrid(view, f.Clip, ox, oy, sw, sh)
	}
	c.strokeRect(view, f.Play, ox, oy, colornames.Cyan)
	c.strokeRect(view, f.Edit, ox, oy, colornames.Yellow)
}

// drawGrid follows the clip's cell size from its offset, or the configured
// grid size when the clip has no size yet.
func (c *Canvas) drawGrid(dst *ebiten.Image, clip anim.Clip, ox, oy, sw, sh float64) {
	stepX, stepY := clip.Width, clip.Height
	startX, startY := clip.OffsetX, clip.OffsetY
	if stepX <= 0 || stepY <= 0 {
		stepX, stepY = float64(c.GridSize), float64(c.GridSize)
		startX, startY = 0, 0
	}
	if stepX*c.zoom < 2 || stepY*c.zoom < 2 {
		return
	}
	lineColor := color.RGBA{255, 255, 255, 60}
	for x := startX; x <= sw; x += stepX {
		sx := float32(ox + x*c.zoom)
		vector.StrokeLine(dst, sx, float32(oy+startY*c.zoom), sx, float32(oy+sh*c.zoom), 1, lineColor, false)
	}
	for y := startY; y <= sh; y += stepY {
		sy := float32(oy + y*c.zoom)
		vector.StrokeLine(dst, float32(ox+startX*c.zoom), sy, float32(ox+sw*c.zoom), sy, 1, lineColor, false)
	}
}

func (c *Canvas) strokeRect(dst *ebiten.Image, r anim.Rect, ox, oy float64, clr color.Color) {
	if r.Empty() {
		return
	}
	vector.StrokeRect(dst,
		float32(ox+r.X*c.zoom), float32(oy+r.Y*c.zoom),
		float32(r.Width*c.zoom), float32(r.Height*c.zoom),
		2, clr, false)
}

func (c *Canvas) drawCell(screen *ebiten.Image, area image.Rectangle, sheet *ebiten.Image, r anim.Rect, caption string) {
	view := screen.SubImage(area).(*ebiten.Image)
	view.Fill(c.Background)
	vector.StrokeRect(view, float32(area.Min.X), float32(area.Min.Y), float32(area.Dx()), float32(area.Dy()), 1, colornames.Dimgray, false)
	ebitenutil.DebugPrintAt(view, caption, area.Min.X+6, area.Min.Y+4)

	scale := float64(max(c.Scale, 1))
	x := float64(area.Min.X) + (float64(area.Dx())-r.Width*scale)/2
	y := float64(area.Min.Y) + (float64(area.Dy())-r.Height*scale)/2
	if !render.DrawPattern(view, sheet, r, x, y, scale) {
		ebitenutil.DebugPrintAt(view, "(empty)", area.Min.X+6, area.Min.Y+20)
	}
}
