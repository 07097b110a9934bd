package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

type LeftPanelUI struct {
	Container     *widget.Container
	Clips         *ClipPanel
	File          *FileFields
	RenameOverlay *widget.Container
	DeleteOverlay *widget.Container
	Dialogs       []*modalDialog
}

func buildLeftPanelUI(theme *widget.Theme, fontFace *text.Face, cb uiCallbacks) *LeftPanelUI {
	leftPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 40, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}),
			),
		),
	)

	file := addFileSection(leftPanel, theme, fontFace, cb)
	clips := addClipListSection(leftPanel, theme, fontFace, cb)

	renameDialog := newClipRenameDialog(theme, fontFace, cb.OnRenameClip)
	clips.openRenameDialog = renameDialog.Open

	deleteDialog := newConfirmDialog(theme, fontFace)
	clips.openDeleteDialog = func(name string) {
		deleteDialog.Open("Delete \""+name+"\"?", cb.OnDeleteClip)
	}

	return &LeftPanelUI{
		Container:     leftPanel,
		Clips:         clips,
		File:          file,
		RenameOverlay: renameDialog.Overlay,
		DeleteOverlay: deleteDialog.Overlay,
		Dialogs:       []*modalDialog{renameDialog.modalDialog, deleteDialog.modalDialog},
	}
}
