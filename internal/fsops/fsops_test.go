package fsops_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"voxplorer/internal/config"
	"voxplorer/internal/errors"
	"voxplorer/internal/fsops"
	"voxplorer/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(t *testing.T, a *fsops.Accessor, dir string) []string {
	t.Helper()
	entries, err := a.List(dir)
	require.NoError(t, err)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestListEnumerationOrder(t *testing.T) {
	root := testutils.CreateTree(t, map[string]string{
		"zeta.txt":   "z",
		"alpha.txt":  "a",
		"mid/":       "",
		"mid/in.txt": "nested entries are not listed",
		".hidden":    "h",
	})

	// The listing follows the order the OS hands out, not a sorted one
	f, err := os.Open(root)
	require.NoError(t, err)
	raw, err := f.ReadDir(-1)
	require.NoError(t, err)
	f.Close()
	var want []string
	for _, d := range raw {
		want = append(want, d.Name())
	}

	a := fsops.New()
	assert.Equal(t, want, names(t, a, root))

	entries, err := a.List(root)
	require.NoError(t, err)
	for _, e := range entries {
		assert.Equal(t, filepath.Join(root, e.Name), e.Path)
		assert.Equal(t, e.Name == "mid", e.IsDir)
	}
}

func TestListFilters(t *testing.T) {
	root := testutils.CreateTree(t, map[string]string{
		"keep.txt": "k",
		"swap.swp": "s",
		".env":     "e",
	})

	cfg := config.NewTestConfig()
	cfg.Explorer.ShowHidden = false
	cfg.Explorer.Hide = []string{"*.swp"}
	a := fsops.NewWithConfig(cfg)

	assert.Equal(t, []string{"keep.txt"}, names(t, a, root))
}

func TestListUnreadable(t *testing.T) {
	a := fsops.New()

	entries, err := a.List(filepath.Join(t.TempDir(), "missing"))
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
	assert.True(t, errors.IsFileNotFound(err))

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	locked := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(locked, 0000))
	defer os.Chmod(locked, 0755)

	entries, err = a.List(locked)
	assert.Empty(t, entries)
	assert.True(t, errors.IsFileAccessDenied(err))
}

func TestRename(t *testing.T) {
	root := testutils.CreateTree(t, map[string]string{
		"old.txt":   "content",
		"taken.txt": "other",
	})
	a := fsops.New()

	t.Run("renames in place", func(t *testing.T) {
		newPath, err := a.Rename(filepath.Join(root, "old.txt"), "new.txt")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "new.txt"), newPath)
		assert.Equal(t, "content", testutils.ReadFile(t, newPath))
		assert.NoFileExists(t, filepath.Join(root, "old.txt"))
	})

	t.Run("rejects invalid names", func(t *testing.T) {
		for _, name := range []string{"", "  ", "a/b", "..", `a\b`} {
			_, err := a.Rename(filepath.Join(root, "new.txt"), name)
			require.Error(t, err, name)
			assert.Equal(t, errors.InvalidPath, errors.KindOf(err), name)
		}
	})

	t.Run("refuses existing target", func(t *testing.T) {
		_, err := a.Rename(filepath.Join(root, "new.txt"), "taken.txt")
		require.Error(t, err)
		assert.Equal(t, "other", testutils.ReadFile(t, filepath.Join(root, "taken.txt")))
	})

	t.Run("missing source", func(t *testing.T) {
		_, err := a.Rename(filepath.Join(root, "ghost.txt"), "x.txt")
		assert.True(t, errors.IsFileNotFound(err))
	})
}

func TestCopyFile(t *testing.T) {
	root := testutils.CreateTree(t, map[string]string{
		"src/report.txt": "quarterly numbers",
		"dst/":           "",
	})
	src := filepath.Join(root, "src", "report.txt")
	dst := filepath.Join(root, "dst")
	a := fsops.New()

	out, err := a.Copy(src, dst)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dst, "report.txt"), out)
	assert.Equal(t, "quarterly numbers", testutils.ReadFile(t, out))
	assert.Equal(t, "quarterly numbers", testutils.ReadFile(t, src), "source must be unchanged")

	// A second paste replaces the earlier copy
	require.NoError(t, os.WriteFile(src, []byte("revised numbers"), 0644))
	out2, err := a.Copy(src, dst)
	require.NoError(t, err)
	assert.Equal(t, out, out2)
	assert.Equal(t, "revised numbers", testutils.ReadFile(t, out))
	assert.Equal(t, []string{"report.txt"}, testutils.ListNames(t, dst))

	// With rename the copy gets a numbered name
	a.SetCollision(config.CollisionRename)
	out3, err := a.Copy(src, dst)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dst, "report_(1).txt"), out3)
}

func TestCopyDirectory(t *testing.T) {
	root := testutils.CreateTree(t, map[string]string{
		"album/a.jpg":       "a",
		"album/inner/b.jpg": "b",
		"target/":           "",
	})
	a := fsops.New()

	out, err := a.Copy(filepath.Join(root, "album"), filepath.Join(root, "target"))
	require.NoError(t, err)
	assert.Equal(t, "a", testutils.ReadFile(t, filepath.Join(out, "a.jpg")))
	assert.Equal(t, "b", testutils.ReadFile(t, filepath.Join(out, "inner", "b.jpg")))
	assert.FileExists(t, filepath.Join(root, "album", "a.jpg"))

	t.Run("into itself", func(t *testing.T) {
		_, err := a.Copy(filepath.Join(root, "album"), filepath.Join(root, "album", "inner"))
		require.Error(t, err)
		assert.Equal(t, errors.InvalidOperation, errors.KindOf(err))
	})

	t.Run("into a child named with leading dots", func(t *testing.T) {
		src := filepath.Join(root, "album")
		dots := filepath.Join(src, "..inner")
		require.NoError(t, os.Mkdir(dots, 0755))

		_, err := a.Copy(src, dots)
		require.Error(t, err)
		assert.Equal(t, errors.InvalidOperation, errors.KindOf(err))
		_, err = a.Move(src, dots)
		require.Error(t, err)
		assert.Equal(t, errors.InvalidOperation, errors.KindOf(err))

		assert.Empty(t, testutils.ListNames(t, dots))
		assert.FileExists(t, filepath.Join(src, "a.jpg"))
	})

	t.Run("next to a sibling named with leading dots", func(t *testing.T) {
		require.NoError(t, os.Mkdir(filepath.Join(root, "..album"), 0755))
		out, err := a.Copy(filepath.Join(root, "album", "inner"), filepath.Join(root, "..album"))
		require.NoError(t, err)
		assert.Equal(t, "b", testutils.ReadFile(t, filepath.Join(out, "b.jpg")))
	})
}

func TestCollisionStrategies(t *testing.T) {
	setup := func(t *testing.T) (string, string) {
		root := testutils.CreateTree(t, map[string]string{
			"a/doc.txt": "new",
			"b/doc.txt": "old",
		})
		return filepath.Join(root, "a", "doc.txt"), filepath.Join(root, "b")
	}

	t.Run("skip", func(t *testing.T) {
		src, dst := setup(t)
		a := fsops.New()
		a.SetCollision(config.CollisionSkip)
		out, err := a.Copy(src, dst)
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.Equal(t, "old", testutils.ReadFile(t, filepath.Join(dst, "doc.txt")))
	})

	t.Run("overwrite", func(t *testing.T) {
		src, dst := setup(t)
		a := fsops.New()
		a.SetCollision(config.CollisionOverwrite)
		_, err := a.Copy(src, dst)
		require.NoError(t, err)
		assert.Equal(t, "new", testutils.ReadFile(t, filepath.Join(dst, "doc.txt")))
	})

	t.Run("error", func(t *testing.T) {
		src, dst := setup(t)
		a := fsops.New()
		a.SetCollision(config.CollisionError)
		_, err := a.Move(src, dst)
		require.Error(t, err)
		assert.FileExists(t, src)
	})

	t.Run("overwrite onto itself is refused", func(t *testing.T) {
		src, _ := setup(t)
		a := fsops.New()
		_, err := a.Copy(src, filepath.Dir(src))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrExist)
		assert.Equal(t, "new", testutils.ReadFile(t, src))
	})

	t.Run("overwrite never replaces a folder", func(t *testing.T) {
		root := testutils.CreateTree(t, map[string]string{
			"a/pics/new.jpg": "new",
			"b/pics/old.jpg": "old",
		})
		a := fsops.New()
		_, err := a.Copy(filepath.Join(root, "a", "pics"), filepath.Join(root, "b"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrExist)
		assert.Equal(t, "old", testutils.ReadFile(t, filepath.Join(root, "b", "pics", "old.jpg")))
	})

	t.Run("rename onto itself makes a duplicate", func(t *testing.T) {
		src, _ := setup(t)
		a := fsops.New()
		a.SetCollision(config.CollisionRename)
		out, err := a.Copy(src, filepath.Dir(src))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(filepath.Dir(src), "doc_(1).txt"), out)
	})
}

func TestMove(t *testing.T) {
	root := testutils.CreateTree(t, map[string]string{
		"inbox/mail.txt":  "hello",
		"inbox/box/x.txt": "x",
		"archive/":        "",
	})
	a := fsops.New()
	archive := filepath.Join(root, "archive")

	out, err := a.Move(filepath.Join(root, "inbox", "mail.txt"), archive)
	require.NoError(t, err)
	assert.Equal(t, "hello", testutils.ReadFile(t, out))
	assert.NoFileExists(t, filepath.Join(root, "inbox", "mail.txt"))

	out, err = a.Move(filepath.Join(root, "inbox", "box"), archive)
	require.NoError(t, err)
	assert.Equal(t, "x", testutils.ReadFile(t, filepath.Join(out, "x.txt")))
	assert.NoDirExists(t, filepath.Join(root, "inbox", "box"))

	// Moving into the folder it is already in is refused
	_, err = a.Move(filepath.Join(archive, "mail.txt"), archive)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrExist)
	assert.FileExists(t, filepath.Join(archive, "mail.txt"))

	// A source that no longer exists is reported
	_, err = a.Move(filepath.Join(root, "inbox", "mail.txt"), archive)
	assert.True(t, errors.IsFileNotFound(err))
}

func TestDelete(t *testing.T) {
	root := testutils.CreateTree(t, map[string]string{
		"file.txt":        "f",
		"folder/deep/a.b": "a",
	})
	a := fsops.New()

	require.NoError(t, a.Delete(filepath.Join(root, "file.txt")))
	assert.NoFileExists(t, filepath.Join(root, "file.txt"))

	require.NoError(t, a.Delete(filepath.Join(root, "folder")))
	assert.NoDirExists(t, filepath.Join(root, "folder"))

	err := a.Delete(filepath.Join(root, "file.txt"))
	assert.True(t, errors.IsFileNotFound(err))
}

func TestStat(t *testing.T) {
	root := testutils.CreateTree(t, map[string]string{"pics/": ""})
	e, err := fsops.Stat(filepath.Join(root, "pics"))
	require.NoError(t, err)
	assert.Equal(t, "pics", e.Name)
	assert.True(t, e.IsDir)

	_, err = fsops.Stat(filepath.Join(root, "nope"))
	assert.True(t, errors.IsFileNotFound(err))
}
