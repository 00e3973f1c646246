package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitChange(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case dir, ok := <-ch:
		require.True(t, ok, "Changes closed unexpectedly")
		return dir
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for change")
		return ""
	}
}

func TestWatcherFollowsDirectory(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	w, err := New()
	require.NoError(t, err, "New watcher creation failed")
	w.SetDebounce(20 * time.Millisecond)

	require.NoError(t, w.Follow(first))
	require.NoError(t, w.Start())
	defer w.Stop()
	assert.True(t, w.IsRunning())
	assert.Error(t, w.Start(), "second Start must fail")

	// Allow a brief moment for fsnotify to initialize watches
	time.Sleep(100 * time.Millisecond)

	// A burst of creates is reported once
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(first, name), []byte(name), 0644))
	}
	assert.Equal(t, first, waitChange(t, w.Changes()))

	// Switch to another directory; the old one is no longer reported
	require.NoError(t, w.Follow(second))
	assert.Equal(t, second, w.Dir())
	time.Sleep(100 * time.Millisecond)
	select {
	case <-w.Changes():
	default:
	}

	require.NoError(t, os.Remove(filepath.Join(first, "a.txt")))
	require.NoError(t, os.Mkdir(filepath.Join(second, "sub"), 0755))
	assert.Equal(t, second, waitChange(t, w.Changes()))
}

func TestFollowRejectsFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	w, err := New()
	require.NoError(t, err)
	defer w.Stop()

	assert.Error(t, w.Follow(file))
	assert.Error(t, w.Follow(filepath.Join(dir, "missing")))
	assert.Empty(t, w.Dir())

	// Following the same directory twice is fine
	require.NoError(t, w.Follow(dir))
	require.NoError(t, w.Follow(dir))
}

func TestStopClosesChanges(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Follow(t.TempDir()))
	require.NoError(t, w.Start())

	w.Stop()
	w.Stop()
	assert.False(t, w.IsRunning())

	select {
	case _, ok := <-w.Changes():
		assert.False(t, ok, "Changes should be closed after stop")
	case <-time.After(time.Second):
		t.Error("Timeout waiting for Changes to close after stop")
	}
}
