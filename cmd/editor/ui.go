package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	leftPanelWidth  = 240
	rightPanelWidth = 260
)

// BuildEditorUI lays out the file and clip list panel on the left, the clip
// and pattern fields on the right and the preview scale bar on top. current
// reports the pattern being edited for the previous/next buttons.
func BuildEditorUI(cb uiCallbacks, current func() int, initialScale int) (*ebitenui.UI, *EditorUI, error) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, nil, fmt.Errorf("load font: %w", err)
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)
	theme := ui.PrimaryTheme

	leftPanel := buildLeftPanelUI(theme, &fontFace, cb)

	rightPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(rightPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 40, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}),
			),
		),
	)
	clipFields := addClipSection(rightPanel, theme, &fontFace, cb)
	patternFields := addPatternSection(rightPanel, theme, &fontFace, cb, current)

	toolbarContainer, scaleBar := buildScaleBar(theme, &fontFace, cb.OnScale, initialScale)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	leftPanel.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	rightPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	toolbarContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(leftPanel.Container)
	root.AddChild(rightPanel)
	root.AddChild(toolbarContainer)
	root.AddChild(leftPanel.RenameOverlay)
	root.AddChild(leftPanel.DeleteOverlay)

	ui.Container = root
	return ui, &EditorUI{
		Clips:   leftPanel.Clips,
		Clip:    clipFields,
		Pattern: patternFields,
		File:    leftPanel.File,
		Scale:   scaleBar,
		dialogs: leftPanel.Dialogs,
	}, nil
}
