//go:build !nogui

package gui

import (
	"voxplorer/internal/explorer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// showNavigator opens the "Navigate to Directory" window. It starts at the
// drives; double click drills into a directory and "Select Directory" makes
// the selection current.
func (a *App) showNavigator() fyne.Window {
	drives := a.explorer.Drives()
	picker := explorer.NewPicker(a.fs, drives)

	w := a.fyneApp.NewWindow("Navigate to Directory")
	location := widget.NewLabel("Drives")

	var list *widget.List
	refresh := func() {
		if picker.Dir() == "" {
			location.SetText("Drives")
		} else {
			location.SetText(picker.Dir())
		}
		list.UnselectAll()
		list.Refresh()
		list.ScrollToTop()
	}

	list = widget.NewList(
		func() int { return len(picker.Items()) },
		func() fyne.CanvasObject {
			return newEntryRow(
				func(id widget.ListItemID) { list.Select(id) },
				func(id widget.ListItemID) {
					items := picker.Items()
					if id >= 0 && id < len(items) && picker.Drill(items[id].Path) {
						refresh()
					}
				},
			)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			items := picker.Items()
			if id >= 0 && id < len(items) {
				obj.(*entryRow).SetEntry(id, items[id])
			}
		},
	)
	list.OnSelected = func(id widget.ListItemID) {
		items := picker.Items()
		if id >= 0 && id < len(items) {
			picker.Select(items[id].Path)
		}
	}

	up := widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() {
		picker.Up(drives)
		refresh()
	})
	selectBtn := widget.NewButton("Select Directory", func() {
		if picker.Choose(a.explorer) {
			w.Close()
		}
	})

	w.SetContent(container.NewBorder(
		container.NewBorder(nil, nil, up, nil, location),
		container.NewCenter(selectBtn),
		nil,
		nil,
		list,
	))
	w.Resize(fyne.NewSize(500, 300))
	w.Show()
	return w
}
