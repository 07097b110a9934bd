package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

type modalDialog struct {
	Overlay *widget.Container
	dialog  *widget.Container
}

func (d *modalDialog) show() { d.Overlay.GetWidget().Visibility = widget.Visibility_Show }
func (d *modalDialog) hide() { d.Overlay.GetWidget().Visibility = widget.Visibility_Hide }

func (d *modalDialog) Visible() bool {
	return d.Overlay.GetWidget().Visibility == widget.Visibility_Show
}

// newModalDialog builds a hidden full screen overlay with a centered box.
func newModalDialog() *modalDialog {
	overlay := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchHorizontal:  true,
				StretchVertical:    true,
			}),
			widget.WidgetOpts.MinSize(1, 1),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{0, 0, 0, 160})),
	)
	overlay.GetWidget().Visibility = widget.Visibility_Hide

	dialog := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(320, 140),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 220, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 16, Right: 16}),
			),
		),
	)
	dialog.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	overlay.AddChild(dialog)
	return &modalDialog{Overlay: overlay, dialog: dialog}
}

func dialogLabel(text string, fontFace *text.Face) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(text, fontFace, &widget.LabelColor{Idle: color.Black, Disabled: color.Gray{Y: 140}}),
	)
}

type clipRenameDialog struct {
	*modalDialog
	Open func(idx int, current string)
}

func newClipRenameDialog(theme *widget.Theme, fontFace *text.Face, onRenamed func(idx int, name string)) *clipRenameDialog {
	d := &clipRenameDialog{modalDialog: newModalDialog()}
	renameIdx := -1

	commit := func(name string) {
		if renameIdx >= 0 && onRenamed != nil && name != "" {
			onRenamed(renameIdx, name)
		}
		d.hide()
		renameIdx = -1
	}
	nameInput := newTextInput(fontFace, 260, nil, commit)

	buttonsRow := rowContainer(8)
	buttonsRow.AddChild(newButton(theme, fontFace, "OK", func() { commit(nameInput.GetText()) }))
	buttonsRow.AddChild(newButton(theme, fontFace, "Cancel", func() {
		d.hide()
		renameIdx = -1
	}))

	d.dialog.AddChild(dialogLabel("Rename animation", fontFace))
	d.dialog.AddChild(nameInput)
	d.dialog.AddChild(buttonsRow)

	d.Open = func(idx int, current string) {
		renameIdx = idx
		nameInput.SetText(current)
		nameInput.Focus(true)
		d.show()
	}
	return d
}
