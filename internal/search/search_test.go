package search_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"voxplorer/internal/config"
	"voxplorer/internal/search"
	"voxplorer/pkg/testutils"
	"voxplorer/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindNotesAndPhoto(t *testing.T) {
	root := testutils.CreateTree(t, map[string]string{
		"notes.txt":      "remember",
		"pics/photo.jpg": "jpeg",
	})
	s := search.New()

	path, ok, err := s.Find(context.Background(), root, "notes", types.File)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(root, "notes.txt"), path)

	// photo.jpg is a file, so asking for a folder finds nothing
	path, ok, err = s.Find(context.Background(), root, "photo", types.Folder)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, path)

	path, ok, err = s.Find(context.Background(), root, "PHOTO", types.File)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(root, "pics", "photo.jpg"), path)
}

func TestFindNoMatch(t *testing.T) {
	root := testutils.CreateTree(t, map[string]string{
		"a/b/c.txt": "c",
		"d.txt":     "d",
	})

	path, ok, err := search.New().Find(context.Background(), root, "zebra", types.Any)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, path)

	_, ok, err = search.New().Find(context.Background(), root, "   ", types.Any)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindFolderBeforeContents(t *testing.T) {
	root := testutils.CreateTree(t, map[string]string{
		"report/report.txt": "r",
	})

	path, ok, err := search.New().Find(context.Background(), root, "report", types.Any)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(root, "report"), path)

	// The folder is the first candidate; a file search does not look past it
	_, ok, err = search.New().Find(context.Background(), root, "report", types.File)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindIgnoreAndDepth(t *testing.T) {
	root := testutils.CreateTree(t, map[string]string{
		"node_modules/target.js": "x",
		"one/two/three/deep.txt": "x",
	})

	cfg := config.NewTestConfig()
	cfg.Search.Ignore = []string{"node_modules"}
	cfg.Search.MaxDepth = 2
	s := search.NewWithConfig(cfg)

	_, ok, err := s.Find(context.Background(), root, "target", types.Any)
	require.NoError(t, err)
	assert.False(t, ok, "ignored folders are not walked")

	_, ok, err = s.Find(context.Background(), root, "deep", types.Any)
	require.NoError(t, err)
	assert.False(t, ok, "depth limit stops the walk")

	path, ok, err := s.Find(context.Background(), root, "two", types.Folder)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(root, "one", "two"), path)
}

func TestFindCancelled(t *testing.T) {
	root := testutils.CreateTree(t, map[string]string{"x.txt": "x"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := search.New().Find(ctx, root, "x", types.Any)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}

func TestFindSkipsUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read every directory")
	}
	root := testutils.CreateTree(t, map[string]string{
		"locked/secret.txt": "s",
		"open/found.txt":    "f",
	})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0000))
	defer os.Chmod(locked, 0755)

	_, ok, err := search.New().Find(context.Background(), root, "secret", types.Any)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = search.New().Find(context.Background(), root, "found", types.File)
	require.NoError(t, err)
	assert.True(t, ok)
}
