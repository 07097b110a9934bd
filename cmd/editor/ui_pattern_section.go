package main

import (
	"strconv"
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func addPatternSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, cb uiCallbacks, current func() int) *PatternFields {
	fields := &PatternFields{}

	navRow := rowContainer(6)
	navRow.AddChild(newButton(theme, fontFace, "<", func() {
		if cb.OnSelectPattern != nil {
			cb.OnSelectPattern(current() - 1)
		}
	}))
	fields.index = panelLabel("Pattern 1 / 1", fontFace)
	navRow.AddChild(fields.index)
	navRow.AddChild(newButton(theme, fontFace, ">", func() {
		if cb.OnSelectPattern != nil {
			cb.OnSelectPattern(current() + 1)
		}
	}))
	parent.AddChild(navRow)

	numberField := func(label, name string) *widget.TextInput {
		row := rowContainer(6)
		row.AddChild(panelLabel(label, fontFace))
		in := newTextInput(fontFace, 80, func(s string) {
			if fields.suppress || cb.OnPatternField == nil {
				return
			}
			if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				cb.OnPatternField(name, v)
			}
		}, nil)
		row.AddChild(in)
		parent.AddChild(row)
		return in
	}
	fields.wait = numberField("Wait  ", "wait")
	fields.column = numberField("Column", "column")
	fields.row = numberField("Row   ", "row")

	parent.AddChild(panelLabel("All patterns", fontFace))
	bulk := func(action string) func() {
		return func() {
			if cb.OnBulk == nil {
				return
			}
			cb.OnBulk(action, strings.TrimSpace(fields.bulk.GetText()))
		}
	}

	waitRow := rowContainer(6)
	fields.bulk = newTextInput(fontFace, 60, nil, nil)
	fields.bulk.SetText("1")
	waitRow.AddChild(fields.bulk)
	waitRow.AddChild(newButton(theme, fontFace, "Set wait", bulk("wait")))
	parent.AddChild(waitRow)

	columnRow := rowContainer(6)
	columnRow.AddChild(newButton(theme, fontFace, "Column 0..N", bulk("set_column")))
	columnRow.AddChild(newButton(theme, fontFace, "Column 0", bulk("reset_column")))
	parent.AddChild(columnRow)

	rowRow := rowContainer(6)
	rowRow.AddChild(newButton(theme, fontFace, "Row 0..N", bulk("set_row")))
	rowRow.AddChild(newButton(theme, fontFace, "Row 0", bulk("reset_row")))
	parent.AddChild(rowRow)

	parent.AddChild(newButton(theme, fontFace, "Run script...", cb.OnRunScript))
	return fields
}
