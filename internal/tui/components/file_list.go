package components

import (
	"voxplorer/internal/tui/styles"
	"voxplorer/pkg/types"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

// EntryItem is one row of the directory listing
type EntryItem struct {
	Entry types.Entry
}

func (i EntryItem) FilterValue() string { return i.Entry.Name }

func (i EntryItem) Title() string {
	if i.Entry.IsDir {
		return i.Entry.Name + "/"
	}
	return i.Entry.Name
}

func (i EntryItem) Description() string {
	modified := "modified " + humanize.Time(i.Entry.ModTime)
	if i.Entry.IsDir {
		return "folder, " + modified
	}
	return humanize.Bytes(uint64(i.Entry.Size)) + ", " + modified
}

// NewFileList creates the listing. Filtering, the title and the list's own
// help are off; the model renders its own.
func NewFileList(width, height int) list.Model {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(styles.Theme.Selected.GetForeground()).
		BorderForeground(styles.Theme.Selected.GetForeground())
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		BorderForeground(styles.Theme.Selected.GetForeground())

	l := list.New(nil, d, width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.DisableQuitKeybindings()
	return l
}

// SetEntries replaces the rows of l and puts the cursor on selected, or on
// the first row when selected is not listed
func SetEntries(l *list.Model, entries []types.Entry, selected string) tea.Cmd {
	items := make([]list.Item, len(entries))
	idx := 0
	for i, e := range entries {
		items[i] = EntryItem{Entry: e}
		if e.Path == selected {
			idx = i
		}
	}
	cmd := l.SetItems(items)
	l.Select(idx)
	return cmd
}

// SelectedEntry returns the entry under the cursor
func SelectedEntry(l list.Model) (types.Entry, bool) {
	it, ok := l.SelectedItem().(EntryItem)
	if !ok {
		return types.Entry{}, false
	}
	return it.Entry, true
}
