//go:build !nogui

package gui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"voxplorer/internal/config"
	"voxplorer/internal/explorer"
	"voxplorer/internal/voice"
	"voxplorer/internal/voice/engine"
	"voxplorer/pkg/testutils"
	"voxplorer/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var silent = engine.WithSpeaker(voice.SpeakerFunc(func(context.Context, string) error { return nil }))

func newTestApp(t *testing.T, tree map[string]string, opts ...engine.Option) (*App, string) {
	t.Helper()
	root := testutils.CreateTree(t, tree)
	cfg := config.NewTestConfig()
	cfg.StartDir = root

	a := newApp(test.NewTempApp(t), cfg, filepath.Join(t.TempDir(), "config.yaml"), append([]engine.Option{silent}, opts...)...)
	t.Cleanup(func() { _ = a.Close() })
	return a, root
}

// selectName selects the listing row showing name
func selectName(t *testing.T, a *App, name string) {
	t.Helper()
	for i, e := range a.explorer.Entries() {
		if e.Name == name {
			a.list.Select(i)
			return
		}
	}
	t.Fatalf("%s not listed", name)
}

func TestMainWindow(t *testing.T) {
	a, root := newTestApp(t, map[string]string{"a.txt": "a", "b/": ""})

	w := a.GetMainWindow()
	require.NotNil(t, w)
	assert.Equal(t, "Voice Controlled File Explorer", w.Title())
	assert.Equal(t, root, a.pathLabel.Text)
	assert.Equal(t, 2, a.list.Length())

	for _, label := range []string{
		BtnOpenFolder, BtnOpenFile, BtnRename, BtnCopy, BtnMove, BtnPaste,
		BtnDelete, BtnPreview, BtnVoice, BtnBack, BtnChangeDirectory,
	} {
		btn, ok := a.buttons[label]
		require.True(t, ok, label)
		assert.Equal(t, label, btn.Text)
	}
}

func TestCopyPasteButtons(t *testing.T) {
	a, root := newTestApp(t, map[string]string{"F.txt": "payload", "D/": ""})

	selectName(t, a, "F.txt")
	sel, ok := a.explorer.Selected()
	require.True(t, ok)
	assert.Equal(t, "F.txt", sel.Name)
	assert.Contains(t, a.statusLabel.Text, "F.txt")

	test.Tap(a.buttons[BtnCopy])
	assert.Contains(t, a.statusLabel.Text, "Item copied to clipboard.")

	selectName(t, a, "D")
	test.Tap(a.buttons[BtnOpenFolder])
	dst := filepath.Join(root, "D")
	require.Equal(t, dst, a.explorer.Dir())
	assert.Equal(t, dst, a.pathLabel.Text)

	test.Tap(a.buttons[BtnPaste])
	assert.Equal(t, "payload", testutils.ReadFile(t, filepath.Join(dst, "F.txt")))
	assert.FileExists(t, filepath.Join(root, "F.txt"))
	assert.Contains(t, a.statusLabel.Text, explorer.MsgPasted)
	assert.Equal(t, 1, a.list.Length())

	test.Tap(a.buttons[BtnBack])
	assert.Equal(t, root, a.explorer.Dir())
	test.Tap(a.buttons[BtnBack])
	assert.Contains(t, a.statusLabel.Text, explorer.MsgNoHistory)
}

func TestDeleteWaitsForConfirmation(t *testing.T) {
	a, root := newTestApp(t, map[string]string{"keep.txt": "k"})

	selectName(t, a, "keep.txt")
	test.Tap(a.buttons[BtnDelete])

	assert.NotNil(t, a.mainWindow.Canvas().Overlays().Top(), "confirmation dialog expected")
	assert.FileExists(t, filepath.Join(root, "keep.txt"))
}

func TestButtonsWithoutSelection(t *testing.T) {
	a, _ := newTestApp(t, map[string]string{"x.txt": "x"})

	test.Tap(a.buttons[BtnRename])
	assert.NotNil(t, a.mainWindow.Canvas().Overlays().Top(), "warning dialog expected")
	_, ok := a.explorer.Selected()
	assert.False(t, ok)
}

func TestPreviewWindow(t *testing.T) {
	a, _ := newTestApp(t, map[string]string{"notes.txt": "hello"})

	selectName(t, a, "notes.txt")
	test.Tap(a.buttons[BtnPreview])

	var found fyne.Window
	for _, w := range a.fyneApp.Driver().AllWindows() {
		if w.Title() == "Preview: notes.txt" {
			found = w
		}
	}
	require.NotNil(t, found, "preview window not opened")
	entry, ok := found.Content().(*widget.Entry)
	require.True(t, ok)
	assert.Equal(t, "hello", entry.Text)
}

func TestNavigatorWindow(t *testing.T) {
	a, _ := newTestApp(t, nil)

	w := a.showNavigator()
	defer w.Close()
	assert.Equal(t, "Navigate to Directory", w.Title())
}

func TestSettingsSave(t *testing.T) {
	a, _ := newTestApp(t, nil)

	w := a.showSettings()
	defer w.Close()

	a.cfg.Explorer.Collision = config.CollisionSkip
	require.NoError(t, a.saveConfig())

	loaded, err := config.LoadConfigFile(a.configPath)
	require.NoError(t, err)
	assert.Equal(t, config.CollisionSkip, loaded.Explorer.Collision)

	a.cfg.Voice.Engine = "bogus"
	assert.Error(t, a.saveConfig())
}

func TestEntryRowTaps(t *testing.T) {
	var tapped, doubled widget.ListItemID = -1, -1
	r := newEntryRow(
		func(id widget.ListItemID) { tapped = id },
		func(id widget.ListItemID) { doubled = id },
	)
	r.SetEntry(3, types.Entry{Name: "music", IsDir: true})
	assert.Equal(t, "music", r.name.Text)
	assert.Empty(t, r.info.Text)

	test.Tap(r)
	assert.Equal(t, 3, tapped)
	test.DoubleTap(r)
	assert.Equal(t, 3, doubled)

	r.SetEntry(4, types.Entry{Name: "a.bin", Size: 2048})
	assert.Equal(t, "2.0 kB", r.info.Text)
}

func TestVoiceUnavailable(t *testing.T) {
	a, _ := newTestApp(t, nil)

	test.Tap(a.voiceButton)
	assert.Contains(t, a.statusLabel.Text, voice.MsgUnavailable)
	assert.Equal(t, BtnVoice, a.voiceButton.Text)
}

func TestVoiceCommandOpensFolder(t *testing.T) {
	a, root := newTestApp(t, map[string]string{"docs/": "", "docs/a.txt": "a"},
		engine.WithRecorder(voice.RecorderFunc(func(context.Context) ([]float32, error) {
			return make([]float32, 1600), nil
		})),
		engine.WithTranscriber(voice.TranscriberFunc(func(context.Context, []float32) (string, error) {
			return "open folder docs", nil
		})),
	)

	test.Tap(a.voiceButton)
	docs := filepath.Join(root, "docs")
	assert.Eventually(t, func() bool { return a.explorer.Dir() == docs }, 5*time.Second, 20*time.Millisecond)
	assert.Eventually(t, func() bool { return a.voiceButton.Text == BtnVoice }, 5*time.Second, 20*time.Millisecond)
}

func TestVoiceButtonCancels(t *testing.T) {
	a, _ := newTestApp(t, nil,
		engine.WithRecorder(voice.RecorderFunc(func(ctx context.Context) ([]float32, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})),
		engine.WithTranscriber(voice.TranscriberFunc(func(context.Context, []float32) (string, error) {
			return "", nil
		})),
	)

	test.Tap(a.voiceButton)
	assert.Eventually(t, func() bool { return a.voiceButton.Text == BtnStopListening }, 5*time.Second, 20*time.Millisecond)

	test.Tap(a.voiceButton)
	assert.Eventually(t, func() bool { return a.voiceButton.Text == BtnVoice }, 5*time.Second, 20*time.Millisecond)
	assert.NotContains(t, a.statusLabel.Text, voice.MsgNotUnderstood)
}

func TestWatcherRefreshesListing(t *testing.T) {
	root := testutils.CreateTree(t, map[string]string{"a.txt": "a"})
	cfg := config.NewTestConfig()
	cfg.StartDir = root + string(filepath.Separator)
	cfg.Explorer.Watch = true

	a := newApp(test.NewTempApp(t), cfg, "", silent)
	defer a.Close()
	require.NotNil(t, a.watcher)
	assert.Eventually(t, func() bool { return a.watcher.Dir() == root }, time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("b"), 0644))
	assert.Eventually(t, func() bool { return a.list.Length() == 2 }, 5*time.Second, 20*time.Millisecond)
}

func TestCloseTwice(t *testing.T) {
	a, _ := newTestApp(t, nil)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
	assert.Error(t, a.ctx.Err(), "closing cancels the app context")
}
