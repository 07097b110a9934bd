package main

import (
	"strconv"
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func addClipSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, cb uiCallbacks) *ClipFields {
	fields := &ClipFields{}
	parent.AddChild(panelLabel("Animation", fontFace))

	floatField := func(label, name string) *widget.TextInput {
		row := rowContainer(6)
		row.AddChild(panelLabel(label, fontFace))
		in := newTextInput(fontFace, 80, func(s string) {
			if fields.suppress || cb.OnClipField == nil {
				return
			}
			if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				cb.OnClipField(name, v)
			}
		}, nil)
		row.AddChild(in)
		parent.AddChild(row)
		return in
	}
	fields.offsetX = floatField("Offset X", "offset_x")
	fields.offsetY = floatField("Offset Y", "offset_y")
	fields.width = floatField("Width   ", "width")
	fields.height = floatField("Height  ", "height")

	countRow := rowContainer(6)
	countRow.AddChild(panelLabel("Patterns", fontFace))
	fields.count = newTextInput(fontFace, 60, nil, func(s string) {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil && cb.OnPatternCount != nil {
			cb.OnPatternCount(n)
		}
	})
	countRow.AddChild(fields.count)
	parent.AddChild(countRow)

	speedRow := rowContainer(6)
	speedRow.AddChild(panelLabel("Speed", fontFace))
	fields.speed = newTextInput(fontFace, 60, nil, func(s string) {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil && cb.OnSpeedRate != nil {
			cb.OnSpeedRate(v)
		}
	})
	speedRow.AddChild(fields.speed)
	speedRow.AddChild(newButton(theme, fontFace, "1x", func() {
		if cb.OnSpeedRate != nil {
			cb.OnSpeedRate(1)
		}
	}))
	parent.AddChild(speedRow)

	playRow := rowContainer(6)
	fields.loopBtn = newButton(theme, fontFace, loopLabel(false), cb.OnToggleLoop)
	playRow.AddChild(fields.loopBtn)
	playRow.AddChild(newButton(theme, fontFace, "Play", cb.OnPlay))
	parent.AddChild(playRow)

	return fields
}
