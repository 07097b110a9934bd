package main

import (
	"strconv"

	"github.com/ebitenui/ebitenui/widget"
)

// uiCallbacks connects the panels to the editor. Nil callbacks are ignored.
type uiCallbacks struct {
	OnSelectClip func(idx int)
	OnAddClip    func()
	OnDeleteClip func()
	OnRenameClip func(idx int, name string)

	OnClipField    func(field string, value float64)
	OnToggleLoop   func()
	OnPatternCount func(n int)
	OnSpeedRate    func(rate float64)
	OnPlay         func()

	OnSelectPattern func(idx int)
	OnPatternField  func(field string, value float64)
	OnBulk          func(action, value string)
	OnRunScript     func()

	OnOpen         func(path string)
	OnSave         func(path string)
	OnSaveCurrent  func()
	OnReload       func()
	OnBrowseOpen   func()
	OnBrowseSave   func()
	OnTexture      func(path string)
	OnBrowseTexture func()
	OnCopyDump     func()

	OnScale func(scale int)
}

// EditorUI holds the widgets the editor refreshes after every change.
type EditorUI struct {
	Clips   *ClipPanel
	Clip    *ClipFields
	Pattern *PatternFields
	File    *FileFields
	Scale   *ScaleBar

	dialogs []*modalDialog
}

// ModalOpen reports whether a dialog currently captures input.
func (u *EditorUI) ModalOpen() bool {
	for _, d := range u.dialogs {
		if d.Visible() {
			return true
		}
	}
	return false
}

// ClipFields are the inputs for the selected clip's geometry and playback.
type ClipFields struct {
	offsetX, offsetY *widget.TextInput
	width, height    *widget.TextInput
	count            *widget.TextInput
	speed            *widget.TextInput
	loopBtn          *widget.Button

	suppress bool
}

type clipValues struct {
	OffsetX, OffsetY float64
	Width, Height    float64
	Count            int
	Speed            float64
	Loop             bool
}

func (f *ClipFields) Set(v clipValues) {
	if f == nil {
		return
	}
	f.suppress = true
	defer func() { f.suppress = false }()
	setIfUnfocused(f.offsetX, formatFloat(v.OffsetX))
	setIfUnfocused(f.offsetY, formatFloat(v.OffsetY))
	setIfUnfocused(f.width, formatFloat(v.Width))
	setIfUnfocused(f.height, formatFloat(v.Height))
	setIfUnfocused(f.count, strconv.Itoa(v.Count))
	setIfUnfocused(f.speed, formatFloat(v.Speed))
	setButtonLabel(f.loopBtn, loopLabel(v.Loop))
}

// PatternFields edit one pattern of the selected clip.
type PatternFields struct {
	index  *widget.Label
	wait   *widget.TextInput
	column *widget.TextInput
	row    *widget.TextInput
	bulk   *widget.TextInput

	suppress bool
}

type patternValues struct {
	Index, Count int
	Wait         float64
	Column, Row  int
}

func (f *PatternFields) Set(v patternValues) {
	if f == nil {
		return
	}
	f.suppress = true
	defer func() { f.suppress = false }()
	if f.index != nil {
		f.index.Label = "Pattern " + strconv.Itoa(v.Index+1) + " / " + strconv.Itoa(v.Count)
	}
	setIfUnfocused(f.wait, formatFloat(v.Wait))
	setIfUnfocused(f.column, strconv.Itoa(v.Column))
	setIfUnfocused(f.row, strconv.Itoa(v.Row))
}

// FileFields show the catalog and texture paths.
type FileFields struct {
	path    *widget.TextInput
	texture *widget.TextInput
	status  *widget.Label
}

func (f *FileFields) SetPath(p string) {
	if f != nil {
		setIfUnfocused(f.path, p)
	}
}

func (f *FileFields) SetTexture(p string) {
	if f != nil {
		setIfUnfocused(f.texture, p)
	}
}

func (f *FileFields) SetStatus(s string) {
	if f != nil && f.status != nil {
		f.status.Label = s
	}
}

func (f *FileFields) Path() string {
	if f == nil || f.path == nil {
		return ""
	}
	return f.path.GetText()
}

// ScaleBar is the radio group choosing the preview zoom.
type ScaleBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	scales  []int
}

func (sb *ScaleBar) SetScale(scale int) {
	if sb == nil || sb.group == nil {
		return
	}
	for i, s := range sb.scales {
		if s == scale {
			sb.group.SetActive(sb.buttons[i])
			return
		}
	}
}

func setIfUnfocused(in *widget.TextInput, s string) {
	if in == nil || in.IsFocused() || in.GetText() == s {
		return
	}
	in.SetText(s)
}

func setButtonLabel(btn *widget.Button, label string) {
	if btn == nil {
		return
	}
	if text := btn.Text(); text != nil {
		text.Label = label
	}
}

func loopLabel(loop bool) string {
	if loop {
		return "Loop: On"
	}
	return "Loop: Off"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
