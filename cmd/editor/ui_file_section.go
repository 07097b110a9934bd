package main

import (
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func addFileSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, cb uiCallbacks) *FileFields {
	fields := &FileFields{}

	parent.AddChild(panelLabel("File (.anim or .txt)", fontFace))
	fields.path = newTextInput(fontFace, 220, nil, func(s string) {
		if s = strings.TrimSpace(s); s != "" && cb.OnOpen != nil {
			cb.OnOpen(s)
		}
	})
	parent.AddChild(fields.path)

	fileRow := rowContainer(6)
	fileRow.AddChild(newButton(theme, fontFace, "Open", func() {
		if p := strings.TrimSpace(fields.path.GetText()); p != "" && cb.OnOpen != nil {
			cb.OnOpen(p)
			return
		}
		if cb.OnBrowseOpen != nil {
			cb.OnBrowseOpen()
		}
	}))
	fileRow.AddChild(newButton(theme, fontFace, "Save", cb.OnSaveCurrent))
	fileRow.AddChild(newButton(theme, fontFace, "Save As", func() {
		if p := strings.TrimSpace(fields.path.GetText()); p != "" && cb.OnSave != nil {
			cb.OnSave(p)
			return
		}
		if cb.OnBrowseSave != nil {
			cb.OnBrowseSave()
		}
	}))
	parent.AddChild(fileRow)

	browseRow := rowContainer(6)
	browseRow.AddChild(newButton(theme, fontFace, "Browse...", cb.OnBrowseOpen))
	browseRow.AddChild(newButton(theme, fontFace, "Reload", cb.OnReload))
	browseRow.AddChild(newButton(theme, fontFace, "Copy dump", cb.OnCopyDump))
	parent.AddChild(browseRow)

	parent.AddChild(panelLabel("Texture", fontFace))
	fields.texture = newTextInput(fontFace, 220, nil, func(s string) {
		if s = strings.TrimSpace(s); s != "" && cb.OnTexture != nil {
			cb.OnTexture(s)
		}
	})
	parent.AddChild(fields.texture)
	parent.AddChild(newButton(theme, fontFace, "Choose texture...", cb.OnBrowseTexture))

	fields.status = panelLabel("", fontFace)
	parent.AddChild(fields.status)
	return fields
}
