package explorer

import (
	"path/filepath"
	"testing"

	"voxplorer/internal/fsops"
	"voxplorer/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPicker(t *testing.T) {
	e, rec, _, root := newTestExplorer(t, nil)
	drive := testutils.CreateTree(t, map[string]string{
		"work/":        "",
		"work/a/":      "",
		"work/note.md": "n",
	})
	drives := []string{drive}

	p := NewPicker(fsops.New(), drives)
	require.Len(t, p.Items(), 1)
	assert.Equal(t, drive, p.Items()[0].Path)
	assert.Empty(t, p.Dir())

	// Nothing selected: the window stays open
	assert.False(t, p.Choose(e))

	work := filepath.Join(drive, "work")
	require.True(t, p.Drill(drive))
	require.True(t, p.Drill(work))
	assert.Len(t, p.Items(), 2)
	assert.False(t, p.Drill(filepath.Join(work, "note.md")))

	// Files cannot be chosen
	p.Select(filepath.Join(work, "note.md"))
	assert.False(t, p.Choose(e))
	assert.Equal(t, root, e.Dir())

	p.Select(filepath.Join(work, "a"))
	require.True(t, p.Choose(e))
	assert.Equal(t, filepath.Join(work, "a"), e.Dir())
	assert.Equal(t, []string{root}, e.History())
	assert.Equal(t, MsgDirChanged, rec.last())

	p.Up(drives)
	assert.Equal(t, drive, p.Dir())
	p.Up(drives)
	assert.Empty(t, p.Dir())
	assert.Len(t, p.Items(), 1)
}
