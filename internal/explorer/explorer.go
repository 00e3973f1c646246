// Package explorer holds the state of one file explorer session: the current
// directory, its history, the listing, the selection and the clipboard.
//
// An Explorer is not safe for concurrent use. Every method must be called
// from the UI goroutine; background work reports back through that goroutine.
package explorer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"voxplorer/internal/errors"
	"voxplorer/internal/fsops"
	"voxplorer/internal/log"
	"voxplorer/internal/preview"
	"voxplorer/internal/search"
	"voxplorer/pkg/types"
)

// Announcements
const (
	MsgFolderOpened   = "Folder opened successfully."
	MsgFileOpened     = "File opened successfully."
	MsgReturned       = "Returned to the previous folder."
	MsgNoHistory      = "No previous directory to return to."
	MsgClipboardEmpty = "Clipboard is empty."
	MsgPasted         = "Item pasted successfully."
	MsgMoved          = "Item moved successfully."
	MsgDirChanged     = "Directory changed successfully."
	MsgNoResults      = "No results found."

	MsgNothingSelected = "No file or folder selected"
	MsgNoFileSelected  = "No file selected"
)

// Explorer is the application state shared by the GUI, the TUI and voice
type Explorer struct {
	fs        fsops.Operator
	opener    fsops.Opener
	previewer Previewer
	finder    Finder
	notifier  Notifier
	prompter  Prompter
	viewer    Viewer
	drives    func() []string
	onChange  func()

	dir       string
	history   []string
	clipboard types.Clipboard
	entries   []types.Entry
	selected  string
}

// Option configures an Explorer
type Option func(*Explorer)

func WithOpener(o fsops.Opener) Option     { return func(e *Explorer) { e.opener = o } }
func WithPreviewer(p Previewer) Option     { return func(e *Explorer) { e.previewer = p } }
func WithFinder(f Finder) Option           { return func(e *Explorer) { e.finder = f } }
func WithNotifier(n Notifier) Option       { return func(e *Explorer) { e.notifier = n } }
func WithPrompter(p Prompter) Option       { return func(e *Explorer) { e.prompter = p } }
func WithViewer(v Viewer) Option           { return func(e *Explorer) { e.viewer = v } }
func WithDrives(fn func() []string) Option { return func(e *Explorer) { e.drives = fn } }
func WithChangeHook(fn func()) Option      { return func(e *Explorer) { e.onChange = fn } }

// New creates an explorer over fs. Call Load before anything else.
func New(fs fsops.Operator, opts ...Option) *Explorer {
	e := &Explorer{
		fs:        fs,
		opener:    fsops.SystemOpener{},
		previewer: preview.New(),
		finder:    search.New(),
		notifier:  LogNotifier{},
		prompter:  DeclinePrompter{},
		viewer:    discardViewer{},
		drives:    fsops.Drives,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dir returns the current directory
func (e *Explorer) Dir() string { return e.dir }

// Entries returns the current listing in enumeration order
func (e *Explorer) Entries() []types.Entry { return e.entries }

// History returns a copy of the back stack, oldest first
func (e *Explorer) History() []string {
	return append([]string(nil), e.history...)
}

// CanGoBack reports whether Back has somewhere to go
func (e *Explorer) CanGoBack() bool { return len(e.history) > 0 }

// Clipboard returns the pending copy or move
func (e *Explorer) Clipboard() types.Clipboard { return e.clipboard }

// Drives returns the roots offered by the directory picker
func (e *Explorer) Drives() []string { return e.drives() }

// Selected returns the selected entry
func (e *Explorer) Selected() (types.Entry, bool) {
	if e.selected == "" {
		return types.Entry{}, false
	}
	return e.lookup(e.selected)
}

// Select focuses path. An empty path clears the selection.
func (e *Explorer) Select(path string) {
	if e.selected == path {
		return
	}
	e.selected = path
	e.changed()
}

// Load shows dir without touching history. It is used for the start
// directory.
func (e *Explorer) Load(dir string) error {
	return e.show(dir)
}

// Navigate makes dir the current directory and pushes the previous one
func (e *Explorer) Navigate(dir string) error {
	prev := e.dir
	if err := e.show(dir); err != nil {
		return err
	}
	if prev != "" {
		e.history = append(e.history, prev)
	}
	return nil
}

// Refresh re-reads the current directory, keeping the selection when the
// selected entry still exists
func (e *Explorer) Refresh() {
	entries, err := e.fs.List(e.dir)
	if err != nil {
		log.LogWithError(err).Warn("Listing incomplete")
	}
	e.entries = entries
	if _, ok := e.find(e.selected); !ok {
		e.selected = ""
	}
	e.changed()
}

// Back returns to the previous directory
func (e *Explorer) Back() error {
	if len(e.history) == 0 {
		e.notifier.Announce(MsgNoHistory)
		return errors.ErrNoHistory
	}
	last := e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	if err := e.show(last); err != nil {
		e.notifier.ShowError("Error", fmt.Sprintf("Cannot open folder: %v", err))
		return err
	}
	e.notifier.Announce(MsgReturned)
	return nil
}

// Activate opens a folder in place or a file with its default handler
func (e *Explorer) Activate(path string) error {
	entry, ok := e.lookup(path)
	if ok && entry.IsDir {
		return e.OpenFolder(path)
	}
	return e.OpenFile(path)
}

// OpenFolder navigates into path, or into the selection when path is empty
func (e *Explorer) OpenFolder(path string) error {
	return e.open(types.Folder, path)
}

// OpenFile opens path, or the selection when path is empty
func (e *Explorer) OpenFile(path string) error {
	return e.open(types.File, path)
}

func (e *Explorer) open(kind types.Kind, path string) error {
	path, err := e.target(path, MsgNothingSelected)
	if err != nil {
		return err
	}

	entry, statErr := fsops.Stat(path)
	if statErr == nil && kind.Matches(entry.IsDir) {
		if kind == types.Folder {
			err = e.Navigate(path)
		} else {
			err = e.opener.Open(path)
		}
		if err == nil {
			if kind == types.Folder {
				e.notifier.Announce(MsgFolderOpened)
			} else {
				e.notifier.Announce(MsgFileOpened)
			}
			return nil
		}
	} else if statErr != nil {
		err = statErr
	} else {
		err = errors.NewFileError("wrong kind", path, errors.InvalidOperation, nil)
	}

	log.LogWithError(err).Warn("Open failed")
	e.notifier.ShowWarning("Error", fmt.Sprintf("Cannot open %s: %s", kind, path))
	e.notifier.Announce(fmt.Sprintf("Cannot open %s.", kind))
	return err
}

// Rename renames the selection. With an empty newName the user is asked for
// one; a cancelled or empty answer does nothing.
func (e *Explorer) Rename(kind types.Kind, newName string) error {
	path, err := e.target("", MsgNothingSelected)
	if err != nil {
		return err
	}
	if newName != "" {
		return e.rename(kind, path, newName)
	}
	e.prompter.AskString("Rename", "Enter new name:", func(answer string, ok bool) {
		if ok && strings.TrimSpace(answer) != "" {
			_ = e.rename(kind, path, answer)
		}
	})
	return nil
}

func (e *Explorer) rename(kind types.Kind, path, newName string) error {
	newPath, err := e.fs.Rename(path, newName)
	if errors.Is(err, errors.ErrInvalidPath) {
		e.notifier.ShowError("Error", fmt.Sprintf("Could not rename %s: %q is not a valid name", kind, newName))
		return err
	}
	if err != nil {
		e.notifier.ShowError("Error", fmt.Sprintf("Could not rename %s: %v", kind, err))
		return err
	}
	if e.selected == path {
		e.selected = newPath
	}
	e.Refresh()
	e.notifier.Announce(kind.Label() + " renamed successfully.")
	return nil
}

// Copy puts path, or the selection, on the clipboard for copying
func (e *Explorer) Copy(kind types.Kind, path string) error {
	path, err := e.target(path, MsgNothingSelected)
	if err != nil {
		return err
	}
	e.clipboard = types.Clipboard{Path: path, Action: types.ActionCopy}
	e.notifier.Announce(kind.Label() + " copied to clipboard.")
	return nil
}

// Move puts path, or the selection, on the clipboard for moving
func (e *Explorer) Move(kind types.Kind, path string) error {
	path, err := e.target(path, MsgNothingSelected)
	if err != nil {
		return err
	}
	e.clipboard = types.Clipboard{Path: path, Action: types.ActionMove}
	e.notifier.Announce(kind.Label() + " cut to clipboard.")
	return nil
}

// Paste copies or moves the clipboard path into the current directory.
// The clipboard is left as it is, so a moved path fails on a second paste.
func (e *Explorer) Paste() error {
	if e.clipboard.Empty() {
		e.notifier.Announce(MsgClipboardEmpty)
		return errors.ErrClipboardEmpty
	}

	var (
		dest string
		err  error
		msg  string
	)
	switch e.clipboard.Action {
	case types.ActionMove:
		dest, err = e.fs.Move(e.clipboard.Path, e.dir)
		msg = MsgMoved
	default:
		dest, err = e.fs.Copy(e.clipboard.Path, e.dir)
		msg = MsgPasted
	}
	if err != nil {
		e.notifier.ShowError("Error", fmt.Sprintf("Could not paste item: %v", err))
		return err
	}

	e.Refresh()
	if dest == "" {
		log.Info("Paste of %s skipped: target exists", e.clipboard.Path)
		return nil
	}
	log.LogWithFields(
		log.F("action", e.clipboard.Action.String()),
		log.F("source", e.clipboard.Path),
		log.F("dest", dest),
	).Info("Pasted")
	e.notifier.Announce(msg)
	return nil
}

// Delete asks for confirmation and removes path, or the selection.
// Nothing is removed unless the user answers yes.
func (e *Explorer) Delete(kind types.Kind, path string) error {
	path, err := e.target(path, MsgNothingSelected)
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("Are you sure you want to delete %s?", filepath.Base(path))
	e.prompter.Confirm("Delete", msg, func(yes bool) {
		if !yes {
			log.Debug("Delete of %s declined", path)
			return
		}
		if err := e.fs.Delete(path); err != nil {
			e.notifier.ShowError("Error", fmt.Sprintf("Could not delete %s: %v", kind, err))
			return
		}
		e.Refresh()
		e.notifier.Announce(kind.Label() + " deleted successfully.")
	})
	return nil
}

// Preview loads path, or the selection, and hands it to the viewer.
// Files that are neither text nor image are ignored.
func (e *Explorer) Preview(path string) error {
	path, err := e.target(path, MsgNoFileSelected)
	if err != nil {
		return err
	}
	res, err := e.previewer.Load(path)
	if err != nil {
		e.notifier.ShowError("Error", fmt.Sprintf("Could not preview file: %v", err))
		return err
	}
	if res.Kind == preview.None {
		log.Debug("No preview for %s", path)
		return nil
	}
	e.viewer.ShowPreview(res)
	return nil
}

// Search finds the first entry below the current directory whose name
// contains query. A miss is announced.
func (e *Explorer) Search(ctx context.Context, query string, kind types.Kind) (string, bool) {
	path, found, err := e.finder.Find(ctx, e.dir, query, kind)
	if err != nil {
		log.LogWithError(err).Debug("Search cancelled")
		return "", false
	}
	if !found {
		e.notifier.Announce(MsgNoResults)
		return "", false
	}
	log.LogWithFields(log.F("query", query), log.F("path", path)).Debug("Search hit")
	return path, true
}

// Reveal shows the directory containing path and selects path
func (e *Explorer) Reveal(path string) error {
	if parent := filepath.Dir(path); parent != e.dir {
		if err := e.Navigate(parent); err != nil {
			return err
		}
	}
	e.Select(path)
	return nil
}

// SetDirectory makes dir current, as chosen in the directory picker
func (e *Explorer) SetDirectory(dir string) error {
	if err := e.Navigate(dir); err != nil {
		e.notifier.ShowError("Error", fmt.Sprintf("Cannot open folder: %v", err))
		return err
	}
	e.notifier.Announce(MsgDirChanged)
	return nil
}

// ChangeDirectory resolves a spoken drive or directory name: a drive letter,
// "root", part of a mount name, an absolute path, or a folder of the
// current directory.
func (e *Explorer) ChangeDirectory(name string) error {
	name = strings.TrimSpace(name)
	dir, ok := e.resolveDirectory(name)
	if !ok {
		e.notifier.Announce(fmt.Sprintf("Drive %s not found.", spokenName(name)))
		return errors.NewFileError("no such drive or directory", name, errors.FileNotFound, nil)
	}
	if err := e.Navigate(dir); err != nil {
		e.notifier.ShowError("Error", fmt.Sprintf("Cannot open folder: %v", err))
		return err
	}
	e.notifier.Announce(fmt.Sprintf("Changed to directory %s.", spokenName(name)))
	return nil
}

func (e *Explorer) resolveDirectory(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if d, ok := fsops.ResolveDrive(name, e.drives()); ok {
		return d, true
	}
	if filepath.IsAbs(name) {
		if entry, err := fsops.Stat(name); err == nil && entry.IsDir {
			return name, true
		}
	}
	for _, entry := range e.entries {
		if entry.IsDir && strings.EqualFold(entry.Name, name) {
			return entry.Path, true
		}
	}
	return "", false
}

func spokenName(name string) string {
	if len(name) == 1 {
		return strings.ToUpper(name)
	}
	return name
}

// target returns path, or the selection when path is empty. A missing
// selection is reported with warning.
func (e *Explorer) target(path, warning string) (string, error) {
	if path != "" {
		return path, nil
	}
	if e.selected == "" {
		e.notifier.ShowWarning("Warning", warning)
		return "", errors.ErrNothingSelected
	}
	return e.selected, nil
}

func (e *Explorer) show(dir string) error {
	dir = filepath.Clean(dir)
	entry, err := fsops.Stat(dir)
	if err != nil {
		return err
	}
	if !entry.IsDir {
		return errors.NewFileError("not a directory", dir, errors.InvalidPath, nil)
	}

	entries, err := e.fs.List(dir)
	if err != nil {
		log.LogWithError(err).Warn("Listing incomplete")
	}
	e.dir = dir
	e.entries = entries
	e.selected = ""
	log.Debug("Showing %s (%d entries)", dir, len(entries))
	e.changed()
	return nil
}

func (e *Explorer) find(path string) (types.Entry, bool) {
	if path == "" {
		return types.Entry{}, false
	}
	for _, entry := range e.entries {
		if entry.Path == path {
			return entry, true
		}
	}
	return types.Entry{}, false
}

func (e *Explorer) lookup(path string) (types.Entry, bool) {
	if entry, ok := e.find(path); ok {
		return entry, true
	}
	entry, err := fsops.Stat(path)
	return entry, err == nil
}

func (e *Explorer) changed() {
	if e.onChange != nil {
		e.onChange()
	}
}
