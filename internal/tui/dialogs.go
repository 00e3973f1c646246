package tui

import (
	"voxplorer/internal/log"
	"voxplorer/internal/preview"
	"voxplorer/pkg/types"
)

// Announce speaks text and shows it in the status line
func (m *Model) Announce(text string) {
	log.LogWithFields(log.F("announce", text)).Info("Announcement")
	m.status.SetText(text)
	m.voice.Announcer.Say(text)
}

// ShowWarning shows msg above the status line until the next key
func (m *Model) ShowWarning(title, msg string) {
	log.LogWithFields(log.F("title", title)).Warn(msg)
	m.status.SetAlert(title + ": " + msg)
}

// ShowError shows msg above the status line until the next key
func (m *Model) ShowError(title, msg string) {
	log.LogWithFields(log.F("title", title)).Error(msg)
	m.status.SetAlert(title + ": " + msg)
}

// Confirm switches to Confirm mode; fn runs when the user answers
func (m *Model) Confirm(title, msg string, fn func(bool)) {
	m.mode = types.Confirm
	m.prompt = msg
	m.onConfirm = fn
}

// AskString switches to Input mode; fn runs on enter or esc
func (m *Model) AskString(title, prompt string, fn func(string, bool)) {
	m.mode = types.Input
	m.prompt = prompt
	m.onInput = fn
	m.input.Reset()
	m.input.Focus()
}

// ShowPreview switches to the preview pane
func (m *Model) ShowPreview(res preview.Result) {
	m.preview.SetResult(res)
	m.mode = types.Preview
}
