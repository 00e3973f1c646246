package explorer

import (
	"context"
	stderrors "errors"
	"fmt"

	"voxplorer/internal/errors"
	"voxplorer/internal/log"
	"voxplorer/internal/voice"
	"voxplorer/pkg/types"
)

// HandleVoice reports a failed listen or executes the recognised command.
// Cancelled listens stay silent.
func (e *Explorer) HandleVoice(ctx context.Context, cmd voice.Command, err error) {
	if err != nil {
		if stderrors.Is(err, context.Canceled) {
			log.Debug("Voice listen cancelled")
			return
		}
		if stderrors.Is(err, context.DeadlineExceeded) {
			e.notifier.Announce(voice.MsgNotUnderstood)
			return
		}
		e.notifier.Announce(voice.Feedback(err))
		return
	}
	if execErr := e.Execute(ctx, cmd); execErr != nil {
		log.LogWithError(execErr).Debug("Voice command did not complete")
	}
}

// Execute runs a voice command. Commands with an argument locate their
// target by searching below the current directory; without one they act on
// the selection, exactly like the matching button.
func (e *Explorer) Execute(ctx context.Context, cmd voice.Command) error {
	log.LogWithFields(log.F("command", cmd.String())).Info("Executing voice command")

	switch cmd.Action {
	case voice.Open:
		if cmd.Argument == "" {
			return e.openSelection(cmd.Target)
		}
		path, ok := e.Search(ctx, cmd.Argument, cmd.Target)
		if !ok {
			return errors.NewFileError("no match", cmd.Argument, errors.FileNotFound, nil)
		}
		return e.Activate(path)

	case voice.Rename:
		path, kind, err := e.voiceTarget(ctx, cmd, "")
		if err != nil {
			return err
		}
		if cmd.Argument == "" {
			return e.Rename(kind, "")
		}
		return e.rename(kind, path, cmd.Argument)

	case voice.Copy, voice.Move, voice.Delete:
		path, kind, err := e.voiceTarget(ctx, cmd, cmd.Argument)
		if err != nil {
			return err
		}
		switch cmd.Action {
		case voice.Copy:
			return e.Copy(kind, path)
		case voice.Move:
			return e.Move(kind, path)
		default:
			return e.Delete(kind, path)
		}

	case voice.Preview:
		if cmd.Argument == "" {
			return e.Preview("")
		}
		path, ok := e.Search(ctx, cmd.Argument, types.File)
		if !ok {
			return errors.NewFileError("no match", cmd.Argument, errors.FileNotFound, nil)
		}
		return e.Preview(path)

	case voice.Back:
		return e.Back()

	case voice.Paste:
		return e.Paste()

	case voice.ChangeDirectory:
		return e.ChangeDirectory(cmd.Argument)

	case voice.Search:
		if cmd.Argument == "" {
			e.notifier.Announce(voice.MsgNotRecognized)
			return errors.ErrNotRecognized
		}
		path, ok := e.Search(ctx, cmd.Argument, cmd.Target)
		if !ok {
			return errors.NewFileError("no match", cmd.Argument, errors.FileNotFound, nil)
		}
		if err := e.Reveal(path); err != nil {
			return err
		}
		entry, _ := e.lookup(path)
		e.notifier.Announce(fmt.Sprintf("Found %s %s.", entry.Kind(), entry.Name))
		return nil
	}

	e.notifier.Announce(voice.MsgNotRecognized)
	return errors.ErrNotRecognized
}

func (e *Explorer) openSelection(kind types.Kind) error {
	entry, ok := e.Selected()
	if !ok {
		e.notifier.ShowWarning("Warning", MsgNothingSelected)
		return errors.ErrNothingSelected
	}
	if kind == types.Any {
		kind = entry.Kind()
	}
	if kind == types.Folder {
		return e.OpenFolder(entry.Path)
	}
	return e.OpenFile(entry.Path)
}

// voiceTarget returns the path a command acts on and the kind used in its
// announcement. A non-empty query is searched for; otherwise the selection
// is used.
func (e *Explorer) voiceTarget(ctx context.Context, cmd voice.Command, query string) (string, types.Kind, error) {
	var path string
	if query != "" {
		found, ok := e.Search(ctx, query, cmd.Target)
		if !ok {
			return "", cmd.Target, errors.NewFileError("no match", query, errors.FileNotFound, nil)
		}
		path = found
	} else {
		selected, err := e.target("", MsgNothingSelected)
		if err != nil {
			return "", cmd.Target, err
		}
		path = selected
	}

	kind := cmd.Target
	if kind == types.Any {
		if entry, ok := e.lookup(path); ok {
			kind = entry.Kind()
		}
	}
	return path, kind, nil
}
