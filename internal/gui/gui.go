//go:build !nogui

package gui

import (
	"fmt"

	"voxplorer/internal/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
)

// Button labels, in bar order
const (
	BtnOpenFolder      = "Open Folder"
	BtnOpenFile        = "Open File"
	BtnRename          = "Rename"
	BtnCopy            = "Copy"
	BtnMove            = "Move"
	BtnPaste           = "Paste"
	BtnDelete          = "Delete"
	BtnPreview         = "Preview File"
	BtnVoice           = "Voice Commands"
	BtnStopListening   = "Stop Listening"
	BtnBack            = "Back"
	BtnChangeDirectory = "Change Directory"
)

// setupMainWindow sets up the main window content
func (a *App) setupMainWindow() {
	a.mainWindow.Resize(fyne.NewSize(float32(a.cfg.Window.Width), float32(a.cfg.Window.Height)))

	a.pathLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.pathLabel.Truncation = fyne.TextTruncateEllipsis
	a.statusLabel = widget.NewLabel("")
	a.statusLabel.Truncation = fyne.TextTruncateEllipsis

	a.list = a.createEntryList()

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.NavigateBackIcon(), func() { _ = a.explorer.Back() }),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), a.explorer.Refresh),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), func() { a.showSettings() }),
		widget.NewToolbarAction(theme.HelpIcon(), func() {
			dialog.ShowInformation("About",
				"Double click a folder to open it, or a file to open it with its default application.\n"+
					"Press Voice Commands and say e.g. \"open folder music\", \"copy file notes\",\n"+
					"\"paste\", \"go back\" or \"change directory to d\".",
				a.mainWindow)
		}),
	)

	content := container.NewBorder(
		container.NewBorder(nil, nil, nil, toolbar, a.pathLabel),
		container.NewVBox(
			a.createButtonBar(),
			widget.NewSeparator(),
			a.statusLabel,
		),
		nil,
		nil,
		a.list,
	)
	a.mainWindow.SetContent(content)

	a.mainWindow.Canvas().SetOnTypedKey(func(ke *fyne.KeyEvent) {
		switch ke.Name {
		case fyne.KeyBackspace:
			_ = a.explorer.Back()
		case fyne.KeyF5:
			a.explorer.Refresh()
		case fyne.KeyReturn, fyne.KeyEnter:
			if entry, ok := a.explorer.Selected(); ok {
				_ = a.explorer.Activate(entry.Path)
			}
		}
	})
}

// createButtonBar lays out the action buttons in a single wrapping row
func (a *App) createButtonBar() fyne.CanvasObject {
	actions := []struct {
		label string
		icon  fyne.Resource
		fn    func()
	}{
		{BtnOpenFolder, theme.FolderOpenIcon(), func() { _ = a.explorer.OpenFolder("") }},
		{BtnOpenFile, theme.FileIcon(), func() { _ = a.explorer.OpenFile("") }},
		{BtnRename, theme.DocumentCreateIcon(), func() { _ = a.explorer.Rename(anyKind, "") }},
		{BtnCopy, theme.ContentCopyIcon(), func() { _ = a.explorer.Copy(anyKind, "") }},
		{BtnMove, theme.ContentCutIcon(), func() { _ = a.explorer.Move(anyKind, "") }},
		{BtnPaste, theme.ContentPasteIcon(), func() { _ = a.explorer.Paste() }},
		{BtnDelete, theme.DeleteIcon(), func() { _ = a.explorer.Delete(anyKind, "") }},
		{BtnPreview, theme.VisibilityIcon(), func() { _ = a.explorer.Preview("") }},
		{BtnVoice, theme.MediaRecordIcon(), a.toggleVoice},
		{BtnBack, theme.NavigateBackIcon(), func() { _ = a.explorer.Back() }},
		{BtnChangeDirectory, theme.StorageIcon(), func() { a.showNavigator() }},
	}

	objects := make([]fyne.CanvasObject, 0, len(actions))
	for _, act := range actions {
		btn := widget.NewButtonWithIcon(act.label, act.icon, act.fn)
		a.buttons[act.label] = btn
		objects = append(objects, btn)
	}
	a.voiceButton = a.buttons[BtnVoice]
	a.voiceButton.Importance = widget.HighImportance

	return container.NewGridWrap(fyne.NewSize(150, 36), objects...)
}

// createEntryList shows the flat listing of the current directory
func (a *App) createEntryList() *widget.List {
	var list *widget.List
	list = widget.NewList(
		func() int {
			return len(a.explorer.Entries())
		},
		func() fyne.CanvasObject {
			return newEntryRow(
				func(id widget.ListItemID) { list.Select(id) },
				func(id widget.ListItemID) {
					entries := a.explorer.Entries()
					if id >= 0 && id < len(entries) {
						_ = a.explorer.Activate(entries[id].Path)
					}
				},
			)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			entries := a.explorer.Entries()
			if id < 0 || id >= len(entries) {
				return
			}
			obj.(*entryRow).SetEntry(id, entries[id])
		},
	)

	list.OnSelected = func(id widget.ListItemID) {
		entries := a.explorer.Entries()
		if id >= 0 && id < len(entries) {
			a.explorer.Select(entries[id].Path)
		}
	}
	list.OnUnselected = func(id widget.ListItemID) {
		if entry, ok := a.explorer.Selected(); ok {
			entries := a.explorer.Entries()
			if id >= 0 && id < len(entries) && entries[id].Path == entry.Path {
				a.explorer.Select("")
			}
		}
	}
	return list
}

// explorerChanged brings the widgets in line with the explorer state.
// It runs on the UI goroutine after every listing or selection change.
func (a *App) explorerChanged() {
	dir := a.explorer.Dir()
	if a.watcher != nil && dir != "" {
		if err := a.watcher.Follow(dir); err != nil {
			log.LogWithError(err).Debug("Cannot watch directory")
		}
	}
	if a.list == nil {
		return
	}

	a.pathLabel.SetText(dir)
	a.list.Refresh()

	if entry, ok := a.explorer.Selected(); ok {
		for i, e := range a.explorer.Entries() {
			if e.Path == entry.Path {
				a.list.Select(i)
				a.list.ScrollTo(i)
				break
			}
		}
	} else {
		a.list.UnselectAll()
	}
	a.updateStatus()
}

// updateStatus shows the entry count, the selection and the last announcement
func (a *App) updateStatus() {
	status := fmt.Sprintf("%d items", len(a.explorer.Entries()))
	if entry, ok := a.explorer.Selected(); ok {
		status += " | " + entry.Name
		if !entry.IsDir {
			status += ", " + humanize.Bytes(uint64(entry.Size))
		}
		if !entry.ModTime.IsZero() {
			status += ", modified " + humanize.Time(entry.ModTime)
		}
	}
	if a.lastAnnouncement != "" {
		status += " | " + a.lastAnnouncement
	}
	a.statusLabel.SetText(status)
}
