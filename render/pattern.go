package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/animake/anim"
)

// SourceRect converts r to pixels and clips it to the sheet. ok is false
// when nothing of r lies on the sheet.
func SourceRect(sheet *ebiten.Image, r anim.Rect) (image.Rectangle, bool) {
	if sheet == nil || r.Empty() {
		return image.Rectangle{}, false
	}
	src := r.Image().Intersect(sheet.Bounds())
	return src, !src.Empty()
}

// DrawPattern draws the cell r of sheet at (x, y) scaled by scale.
func DrawPattern(dst, sheet *ebiten.Image, r anim.Rect, x, y, scale float64) bool {
	src, ok := SourceRect(sheet, r)
	if !ok {
		return false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(sheet.SubImage(src).(*ebiten.Image), op)
	return true
}
