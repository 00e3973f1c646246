// Package preview loads the content shown in the preview window.
package preview

import (
	"image"
	_ "image/jpeg" // register decoders
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"voxplorer/internal/config"
	"voxplorer/internal/errors"
	"voxplorer/internal/log"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Kind of preview produced for a path
type Kind int

const (
	// None means the file type has no preview
	None Kind = iota
	Text
	Image
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Image:
		return "image"
	default:
		return "none"
	}
}

// Result is a loaded preview
type Result struct {
	Kind      Kind
	Name      string      // Base name, used for the window title
	Text      string      // Set for Text
	Truncated bool        // Text was longer than Limit
	Limit     int         // Bytes of text loaded at most, 0 for no limit
	Image     image.Image // Set for Image, already scaled to the preview box
	Original  image.Point // Size of the image before scaling
}

// Title is the preview window title
func (r Result) Title() string {
	return "Preview: " + r.Name
}

// Loader decides the preview kind from the extension and loads the content
type Loader struct {
	textExt  map[string]bool
	imageExt map[string]bool
	width    int
	height   int
	maxText  int
}

// New creates a loader for .txt text and .png/.jpg/.jpeg images scaled to 400x400
func New() *Loader {
	return NewWithConfig(config.New())
}

// NewWithConfig creates a loader from the preview section of cfg
func NewWithConfig(cfg *config.Config) *Loader {
	l := &Loader{
		textExt:  map[string]bool{},
		imageExt: map[string]bool{},
		width:    cfg.Preview.ImageWidth,
		height:   cfg.Preview.ImageHeight,
		maxText:  cfg.Preview.MaxTextBytes,
	}
	for _, ext := range cfg.Preview.TextExtensions {
		l.textExt[strings.ToLower(ext)] = true
	}
	for _, ext := range cfg.Preview.ImageExtensions {
		l.imageExt[strings.ToLower(ext)] = true
	}
	return l
}

// KindOf reports which preview a path would get without reading it
func (l *Loader) KindOf(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case l.textExt[ext]:
		return Text
	case l.imageExt[ext]:
		return Image
	default:
		return None
	}
}

// Load reads path and returns its preview. Unsupported types return a
// Result of kind None and no error.
func (l *Loader) Load(path string) (Result, error) {
	res := Result{Kind: l.KindOf(path), Name: filepath.Base(path)}

	switch res.Kind {
	case Text:
		text, truncated, err := readText(path, l.maxText)
		if err != nil {
			return Result{}, err
		}
		res.Text = text
		res.Truncated = truncated
		res.Limit = l.maxText

	case Image:
		img, size, err := l.loadImage(path)
		if err != nil {
			return Result{}, err
		}
		res.Image = img
		res.Original = size

	default:
		log.Debug("No preview for %s", path)
	}
	return res, nil
}

// readText loads the whole file, or its first limit bytes when limit is set
func readText(path string, limit int) (string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, errors.NewFileError("cannot preview", path, fileKind(err), err)
	}
	defer f.Close()

	var r io.Reader = f
	if limit > 0 {
		r = io.LimitReader(f, int64(limit)+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", false, errors.NewFileError("cannot preview", path, errors.FileOperationFailed, err)
	}
	if limit > 0 && len(data) > limit {
		return string(data[:limit]), true, nil
	}
	return string(data), false, nil
}

// loadImage decodes path and scales it to exactly the preview box, ignoring
// the aspect ratio
func (l *Loader) loadImage(path string) (image.Image, image.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, image.Point{}, errors.NewFileError("cannot preview", path, fileKind(err), err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, image.Point{}, errors.NewFileError("cannot decode image", path, errors.FileOperationFailed, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, l.width, l.height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	log.Debug("Decoded %s image %s (%dx%d)", format, path, src.Bounds().Dx(), src.Bounds().Dy())
	return dst, src.Bounds().Size(), nil
}

func fileKind(err error) errors.ErrorKind {
	switch {
	case os.IsNotExist(err):
		return errors.FileNotFound
	case os.IsPermission(err):
		return errors.FileAccessDenied
	default:
		return errors.FileOperationFailed
	}
}
