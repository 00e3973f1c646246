package preview_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voxplorer/internal/config"
	"voxplorer/internal/errors"
	"voxplorer/internal/preview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestKindOf(t *testing.T) {
	l := preview.New()
	assert.Equal(t, preview.Text, l.KindOf("/x/notes.txt"))
	assert.Equal(t, preview.Text, l.KindOf("/x/NOTES.TXT"))
	assert.Equal(t, preview.Image, l.KindOf("/x/a.png"))
	assert.Equal(t, preview.Image, l.KindOf("/x/a.jpeg"))
	assert.Equal(t, preview.None, l.KindOf("/x/a.pdf"))
	assert.Equal(t, preview.None, l.KindOf("/x/Makefile"))
}

func TestLoadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two"), 0644))

	res, err := preview.New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, preview.Text, res.Kind)
	assert.Equal(t, "line one\nline two", res.Text)
	assert.False(t, res.Truncated)
	assert.Equal(t, "Preview: notes.txt", res.Title())
}

func TestLoadLargeText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.txt")
	size := 2<<20 + 10
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("a", size)), 0644))

	// The whole file by default
	res, err := preview.New().Load(path)
	require.NoError(t, err)
	assert.False(t, res.Truncated)
	assert.Len(t, res.Text, size)

	cfg := config.New()
	cfg.Preview.MaxTextBytes = 1024
	res, err = preview.NewWithConfig(cfg).Load(path)
	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.Equal(t, 1024, res.Limit)
	assert.Len(t, res.Text, 1024)
}

func TestLoadImageScales(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.png")
	writePNG(t, path, 37, 900)

	res, err := preview.New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, preview.Image, res.Kind)
	assert.Equal(t, image.Pt(400, 400), res.Image.Bounds().Size())
	assert.Equal(t, image.Pt(37, 900), res.Original)

	cfg := config.NewTestConfig()
	cfg.Preview.ImageWidth = 64
	cfg.Preview.ImageHeight = 32
	res, err = preview.NewWithConfig(cfg).Load(path)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(64, 32), res.Image.Bounds().Size())
}

func TestLoadUnsupportedIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.zip")
	require.NoError(t, os.WriteFile(path, []byte("PK"), 0644))

	res, err := preview.New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, preview.None, res.Kind)
	assert.Empty(t, res.Text)
	assert.Nil(t, res.Image)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := preview.New().Load(filepath.Join(dir, "missing.txt"))
	assert.True(t, errors.IsFileNotFound(err))

	bogus := filepath.Join(dir, "broken.jpg")
	require.NoError(t, os.WriteFile(bogus, []byte("not an image"), 0644))
	_, err = preview.New().Load(bogus)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot decode image")
}
