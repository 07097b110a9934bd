package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ClipEntry is one row of the clip list.
type ClipEntry struct {
	Index int
	Name  string
}

// ClipPanel wraps the clip list so the editor can repopulate it without the
// selection handler treating that as a user click.
type ClipPanel struct {
	list    *widget.List
	entries []any

	openRenameDialog func(idx int, current string)
	openDeleteDialog func(name string)

	suppressEvents bool
}

func (cp *ClipPanel) SetClips(names []string) {
	if cp == nil || cp.list == nil {
		return
	}
	cp.suppressEvents = true
	entries := make([]any, len(names))
	for i, name := range names {
		entries[i] = ClipEntry{Index: i, Name: name}
	}
	cp.entries = entries
	cp.list.SetEntries(entries)
	cp.suppressEvents = false
}

func (cp *ClipPanel) SetSelected(idx int) {
	if cp == nil || cp.list == nil || idx < 0 || idx >= len(cp.entries) {
		return
	}
	cp.suppressEvents = true
	cp.list.SetSelectedEntry(cp.entries[idx])
	cp.suppressEvents = false
}

func (cp *ClipPanel) selected() (ClipEntry, bool) {
	if cp == nil || cp.list == nil {
		return ClipEntry{}, false
	}
	entry, ok := cp.list.SelectedEntry().(ClipEntry)
	return entry, ok
}

func addClipListSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, cb uiCallbacks) *ClipPanel {
	panel := &ClipPanel{}
	parent.AddChild(panelLabel("Animations", fontFace))

	clipList := widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if entry, ok := e.(ClipEntry); ok {
				return fmt.Sprintf("%d. %s", entry.Index+1, entry.Name)
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			entry, ok := args.Entry.(ClipEntry)
			if !ok || panel.suppressEvents {
				return
			}
			if cb.OnSelectClip != nil {
				cb.OnSelectClip(entry.Index)
			}
		}),
	)
	parent.AddChild(clipList)
	panel.list = clipList

	buttonsRow := rowContainer(6)
	buttonsRow.AddChild(newButton(theme, fontFace, "Add", cb.OnAddClip))
	buttonsRow.AddChild(newButton(theme, fontFace, "Rename", func() {
		sel, ok := panel.selected()
		if !ok || panel.openRenameDialog == nil {
			return
		}
		panel.openRenameDialog(sel.Index, sel.Name)
	}))
	buttonsRow.AddChild(newButton(theme, fontFace, "Delete", func() {
		sel, ok := panel.selected()
		if !ok || panel.openDeleteDialog == nil {
			return
		}
		panel.openDeleteDialog(sel.Name)
	}))
	parent.AddChild(buttonsRow)

	return panel
}
