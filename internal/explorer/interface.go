package explorer

import (
	"context"

	"voxplorer/internal/log"
	"voxplorer/internal/preview"
	"voxplorer/pkg/types"
)

// Notifier delivers feedback to the user. Announce is spoken and shown in
// the status line; warnings and errors are modal in the GUI.
type Notifier interface {
	Announce(text string)
	ShowWarning(title, msg string)
	ShowError(title, msg string)
}

// Prompter asks the user a question. Answers arrive through the callback,
// which may run after the call returns.
type Prompter interface {
	Confirm(title, msg string, fn func(bool))
	AskString(title, prompt string, fn func(answer string, ok bool))
}

// Viewer displays a loaded preview
type Viewer interface {
	ShowPreview(res preview.Result)
}

// Previewer loads a file for preview
type Previewer interface {
	Load(path string) (preview.Result, error)
}

// Finder locates the first entry below root whose name contains query
type Finder interface {
	Find(ctx context.Context, root, query string, kind types.Kind) (string, bool, error)
}

// LogNotifier writes all feedback to the application log
type LogNotifier struct{}

func (LogNotifier) Announce(text string) {
	log.LogWithFields(log.F("announce", text)).Info("Announcement")
}

func (LogNotifier) ShowWarning(title, msg string) {
	log.LogWithFields(log.F("title", title)).Warn(msg)
}

func (LogNotifier) ShowError(title, msg string) {
	log.LogWithFields(log.F("title", title)).Error(msg)
}

// DeclinePrompter answers no to every question. It keeps headless callers
// from deleting anything.
type DeclinePrompter struct{}

func (DeclinePrompter) Confirm(_, _ string, fn func(bool)) { fn(false) }

func (DeclinePrompter) AskString(_, _ string, fn func(string, bool)) { fn("", false) }

type discardViewer struct{}

func (discardViewer) ShowPreview(preview.Result) {}
