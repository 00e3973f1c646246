//go:build !nogui

package gui

import (
	"fmt"

	"voxplorer/internal/errors"
	"voxplorer/internal/log"
	"voxplorer/internal/preview"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Announce speaks text and shows it in the status bar
func (a *App) Announce(text string) {
	log.LogWithFields(log.F("announce", text)).Info("Announcement")
	a.lastAnnouncement = text
	a.voice.Announcer.Say(text)
	if a.statusLabel != nil {
		a.updateStatus()
	}
}

// ShowWarning displays a warning dialog
func (a *App) ShowWarning(title, msg string) {
	log.LogWithFields(log.F("title", title)).Warn(msg)
	dialog.ShowInformation(title, msg, a.mainWindow)
}

// ShowError displays an error dialog
func (a *App) ShowError(title, msg string) {
	log.LogWithFields(log.F("title", title)).Error(msg)
	dialog.ShowError(errors.New(msg), a.mainWindow)
}

// Confirm asks a yes/no question
func (a *App) Confirm(title, msg string, fn func(bool)) {
	dialog.ShowConfirm(title, msg, fn, a.mainWindow)
}

// AskString asks for a line of text in a modal form
func (a *App) AskString(title, prompt string, fn func(string, bool)) {
	entry := widget.NewEntry()
	items := []*widget.FormItem{widget.NewFormItem(prompt, entry)}
	form := dialog.NewForm(title, "OK", "Cancel", items, func(ok bool) {
		fn(entry.Text, ok)
	}, a.mainWindow)
	form.Resize(fyne.NewSize(400, 160))
	form.Show()
	a.mainWindow.Canvas().Focus(entry)
}

// ShowPreview opens a window with the text or the scaled image
func (a *App) ShowPreview(res preview.Result) {
	w := a.fyneApp.NewWindow(res.Title())

	switch res.Kind {
	case preview.Text:
		text := widget.NewMultiLineEntry()
		text.SetText(res.Text)
		text.Wrapping = fyne.TextWrapWord
		var content fyne.CanvasObject = text
		if res.Truncated {
			note := widget.NewLabel(fmt.Sprintf("Showing the first %d bytes", res.Limit))
			content = container.NewBorder(nil, note, nil, nil, text)
		}
		w.SetContent(content)
		w.Resize(fyne.NewSize(600, 400))

	case preview.Image:
		size := res.Image.Bounds().Size()
		img := canvas.NewImageFromImage(res.Image)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(float32(size.X), float32(size.Y)))
		w.SetContent(img)

	default:
		return
	}
	w.Show()
}
