//go:build !nogui

package gui

import (
	"image/color"
	"net/url"

	"voxplorer/internal/config"
	"voxplorer/internal/explorer"
	"voxplorer/internal/preview"
	"voxplorer/internal/search"
	"voxplorer/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
)

// Buttons act on "items"; voice commands may name a file or folder
const anyKind = types.Any

var (
	accentColor = color.NRGBA{R: 255, G: 165, B: 0, A: 255}
	bgColor     = color.NRGBA{R: 34, G: 34, B: 34, A: 255}
)

// darkTheme forces the dark variant of the default theme with the
// application accent
type darkTheme struct {
	fyne.Theme
}

func newDarkTheme() fyne.Theme {
	return &darkTheme{Theme: theme.DefaultTheme()}
}

func (t *darkTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return accentColor
	case theme.ColorNameBackground:
		return bgColor
	}
	return t.Theme.Color(name, theme.VariantDark)
}

// entryRow is one line of a directory listing. Single taps select, double
// taps activate.
type entryRow struct {
	widget.BaseWidget

	icon  *widget.Icon
	name  *widget.Label
	info  *widget.Label
	id    widget.ListItemID
	entry types.Entry

	onTap       func(widget.ListItemID)
	onDoubleTap func(widget.ListItemID)
}

func newEntryRow(onTap, onDoubleTap func(widget.ListItemID)) *entryRow {
	r := &entryRow{
		icon:        widget.NewIcon(theme.FileIcon()),
		name:        widget.NewLabel("Template entry name"),
		info:        widget.NewLabel(""),
		onTap:       onTap,
		onDoubleTap: onDoubleTap,
	}
	r.name.Truncation = fyne.TextTruncateEllipsis
	r.ExtendBaseWidget(r)
	return r
}

// SetEntry binds the row to a listing entry
func (r *entryRow) SetEntry(id widget.ListItemID, e types.Entry) {
	r.id = id
	r.entry = e
	if e.IsDir {
		r.icon.SetResource(theme.FolderIcon())
		r.info.SetText("")
	} else {
		r.icon.SetResource(theme.FileIcon())
		r.info.SetText(humanize.Bytes(uint64(e.Size)))
	}
	r.name.SetText(e.Name)
}

func (r *entryRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, r.icon, r.info, r.name))
}

func (r *entryRow) Tapped(*fyne.PointEvent) {
	if r.onTap != nil {
		r.onTap(r.id)
	}
}

func (r *entryRow) DoubleTapped(*fyne.PointEvent) {
	if r.onDoubleTap != nil {
		r.onDoubleTap(r.id)
	}
}

// urlOpener hands files to the desktop through fyne
type urlOpener struct {
	app fyne.App
}

func (o urlOpener) Open(path string) error {
	u, err := url.Parse(storage.NewFileURI(path).String())
	if err != nil {
		return err
	}
	return o.app.OpenURL(u)
}

func newFinder(cfg *config.Config) explorer.Finder {
	return search.NewWithConfig(cfg)
}

func newPreviewer(cfg *config.Config) explorer.Previewer {
	return preview.NewWithConfig(cfg)
}
