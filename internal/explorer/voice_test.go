package explorer

import (
	"context"
	"path/filepath"
	"testing"

	"voxplorer/internal/errors"
	"voxplorer/internal/voice"
	"voxplorer/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, text string) voice.Command {
	t.Helper()
	cmd, err := voice.Parse(text)
	require.NoError(t, err)
	return cmd
}

func TestExecuteOpen(t *testing.T) {
	e, rec, _, root := newTestExplorer(t, map[string]string{
		"notes.txt":      "n",
		"pics/":          "",
		"pics/photo.jpg": "p",
	})
	ctx := context.Background()

	require.NoError(t, e.Execute(ctx, parse(t, "open file notes")))
	assert.Equal(t, []string{filepath.Join(root, "notes.txt")}, rec.opened)

	require.NoError(t, e.Execute(ctx, parse(t, "open the folder pics")))
	assert.Equal(t, filepath.Join(root, "pics"), e.Dir())
	assert.Equal(t, MsgFolderOpened, rec.last())

	// The first match is a file, so a folder search finds nothing
	require.NoError(t, e.Back())
	require.Error(t, e.Execute(ctx, parse(t, "open folder photo")))
	assert.Equal(t, MsgNoResults, rec.last())
	assert.Equal(t, root, e.Dir())
}

func TestExecuteOnSelection(t *testing.T) {
	e, rec, ans, root := newTestExplorer(t, map[string]string{
		"report.txt": "r",
		"archive/":   "",
	})
	ctx := context.Background()
	report := filepath.Join(root, "report.txt")

	require.ErrorIs(t, e.Execute(ctx, parse(t, "copy file")), errors.ErrNothingSelected)
	assert.Equal(t, []string{MsgNothingSelected}, rec.warnings)

	e.Select(report)
	require.NoError(t, e.Execute(ctx, parse(t, "copy this")))
	assert.Equal(t, "File copied to clipboard.", rec.last())
	assert.Equal(t, types.Clipboard{Path: report, Action: types.ActionCopy}, e.Clipboard())

	require.NoError(t, e.Execute(ctx, parse(t, "rename file to summary.txt")))
	assert.FileExists(t, filepath.Join(root, "summary.txt"))
	assert.Equal(t, "File renamed successfully.", rec.last())

	ans.confirm = false
	require.NoError(t, e.Execute(ctx, parse(t, "delete file")))
	assert.FileExists(t, filepath.Join(root, "summary.txt"))
	assert.Len(t, ans.asked, 1)
}

func TestExecuteSearchTargets(t *testing.T) {
	e, rec, ans, root := newTestExplorer(t, map[string]string{
		"old/":         "",
		"old/junk.log": "j",
		"keep.txt":     "k",
	})
	ctx := context.Background()

	ans.confirm = true
	require.NoError(t, e.Execute(ctx, parse(t, "delete folder old")))
	assert.NoDirExists(t, filepath.Join(root, "old"))
	assert.Equal(t, "Folder deleted successfully.", rec.last())

	require.NoError(t, e.Execute(ctx, parse(t, "move keep")))
	assert.Equal(t, "File cut to clipboard.", rec.last())
	assert.Equal(t, types.ActionMove, e.Clipboard().Action)

	require.NoError(t, e.Execute(ctx, parse(t, "preview keep")))
	require.Len(t, rec.previews, 1)
	assert.Equal(t, "k", rec.previews[0].Text)
}

func TestExecuteNavigation(t *testing.T) {
	e, rec, _, root := newTestExplorer(t, map[string]string{
		"music/":           "",
		"music/a/":         "",
		"music/a/song.mp3": "s",
	})
	ctx := context.Background()

	require.Error(t, e.Execute(ctx, parse(t, "go back")))
	assert.Equal(t, MsgNoHistory, rec.last())

	require.NoError(t, e.Execute(ctx, parse(t, "change directory to music")))
	assert.Equal(t, filepath.Join(root, "music"), e.Dir())

	require.NoError(t, e.Execute(ctx, parse(t, "search for song")))
	assert.Equal(t, filepath.Join(root, "music", "a"), e.Dir())
	sel, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, "song.mp3", sel.Name)
	assert.Equal(t, "Found file song.mp3.", rec.last())

	require.NoError(t, e.Execute(ctx, parse(t, "back")))
	assert.Equal(t, filepath.Join(root, "music"), e.Dir())

	require.ErrorIs(t, e.Execute(ctx, parse(t, "paste")), errors.ErrClipboardEmpty)
	assert.Equal(t, MsgClipboardEmpty, rec.last())
}

func TestHandleVoice(t *testing.T) {
	e, rec, _, _ := newTestExplorer(t, nil)
	ctx := context.Background()

	e.HandleVoice(ctx, voice.Command{}, context.Canceled)
	assert.Empty(t, rec.announced)

	e.HandleVoice(ctx, voice.Command{}, errors.ErrNotUnderstood)
	assert.Equal(t, voice.MsgNotUnderstood, rec.last())

	_, err := voice.Parse("make me a sandwich")
	require.Error(t, err)
	e.HandleVoice(ctx, voice.Command{}, err)
	assert.Equal(t, voice.MsgNotRecognized, rec.last())

	e.HandleVoice(ctx, voice.Command{Action: voice.Paste}, nil)
	assert.Equal(t, MsgClipboardEmpty, rec.last())
}
