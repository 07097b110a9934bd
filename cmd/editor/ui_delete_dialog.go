package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

type confirmDialog struct {
	*modalDialog
	Open func(message string, onConfirm func())
}

func newConfirmDialog(theme *widget.Theme, fontFace *text.Face) *confirmDialog {
	d := &confirmDialog{modalDialog: newModalDialog()}
	var pending func()

	message := dialogLabel("", fontFace)
	buttonsRow := rowContainer(8)
	buttonsRow.AddChild(newButton(theme, fontFace, "Yes", func() {
		d.hide()
		if pending != nil {
			pending()
		}
		pending = nil
	}))
	buttonsRow.AddChild(newButton(theme, fontFace, "No", func() {
		d.hide()
		pending = nil
	}))
	d.dialog.AddChild(message)
	d.dialog.AddChild(buttonsRow)

	d.Open = func(text string, onConfirm func()) {
		message.Label = text
		pending = onConfirm
		d.show()
	}
	return d
}
