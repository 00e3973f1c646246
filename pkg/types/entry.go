package types

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Entry represents one item of a directory listing
type Entry struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	IsDir   bool      `json:"is_dir"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Kind returns Folder for directories and File otherwise
func (e Entry) Kind() Kind {
	if e.IsDir {
		return Folder
	}
	return File
}

// ToJSON converts Entry to JSON string
func (e Entry) ToJSON() string {
	jsonBytes, _ := json.Marshal(e)
	return string(jsonBytes)
}

// String returns a human-readable representation
func (e Entry) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %s\n", e.Kind().Label(), e.Path))
	if !e.IsDir {
		sb.WriteString(fmt.Sprintf("Size: %d bytes\n", e.Size))
	}
	if !e.ModTime.IsZero() {
		sb.WriteString(fmt.Sprintf("Modified: %s\n", e.ModTime.Format(time.RFC3339)))
	}
	return sb.String()
}

// IsSymlink checks if the entry is a symbolic link
func (e Entry) IsSymlink() bool {
	info, err := os.Lstat(e.Path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}
