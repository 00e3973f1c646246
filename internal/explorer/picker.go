package explorer

import (
	"path/filepath"

	"voxplorer/internal/fsops"
	"voxplorer/internal/log"
	"voxplorer/pkg/types"
)

// Picker is the state of the "Navigate to Directory" window. It starts at
// the list of drives and drills one level at a time.
type Picker struct {
	fs       fsops.Operator
	dir      string
	items    []types.Entry
	selected string
}

// NewPicker lists drives as the top level
func NewPicker(fs fsops.Operator, drives []string) *Picker {
	p := &Picker{fs: fs}
	for _, d := range drives {
		p.items = append(p.items, types.Entry{Name: d, Path: d, IsDir: true})
	}
	return p
}

// Dir returns the directory being shown, empty at the drive list
func (p *Picker) Dir() string { return p.dir }

// Items returns the rows currently shown
func (p *Picker) Items() []types.Entry { return p.items }

// Select focuses path
func (p *Picker) Select(path string) { p.selected = path }

// Selected returns the focused row
func (p *Picker) Selected() (string, bool) {
	return p.selected, p.selected != ""
}

// Drill replaces the rows with the listing of path when it is a directory
func (p *Picker) Drill(path string) bool {
	entry, err := fsops.Stat(path)
	if err != nil || !entry.IsDir {
		return false
	}
	items, err := p.fs.List(path)
	if err != nil {
		log.LogWithError(err).Warn("Picker listing incomplete")
	}
	p.dir = path
	p.items = items
	p.selected = ""
	return true
}

// Up shows the parent of the current directory, or the drive list again
// from a drive root
func (p *Picker) Up(drives []string) {
	if p.dir == "" {
		return
	}
	for _, d := range drives {
		if filepath.Clean(d) == filepath.Clean(p.dir) {
			*p = *NewPicker(p.fs, drives)
			return
		}
	}
	p.Drill(filepath.Dir(p.dir))
}

// Choose makes the selected directory current in e. It reports false when
// nothing usable is selected, leaving the picker open.
func (p *Picker) Choose(e *Explorer) bool {
	path, ok := p.Selected()
	if !ok {
		return false
	}
	entry, err := fsops.Stat(path)
	if err != nil || !entry.IsDir {
		return false
	}
	return e.SetDirectory(path) == nil
}
