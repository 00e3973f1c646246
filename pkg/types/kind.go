package types

import "strings"

// Kind says whether an operation targets a file, a folder, or either
type Kind int

const (
	// Any matches files and folders alike
	Any Kind = iota
	File
	Folder
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Folder:
		return "folder"
	default:
		return "item"
	}
}

// Label is the capitalised form used in announcements ("File renamed successfully.")
func (k Kind) Label() string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Matches reports whether an entry with the given directory flag satisfies k
func (k Kind) Matches(isDir bool) bool {
	switch k {
	case File:
		return !isDir
	case Folder:
		return isDir
	default:
		return true
	}
}

// ParseKind maps "file", "folder"/"directory" and anything else to Any
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "file":
		return File
	case "folder", "directory", "dir":
		return Folder
	default:
		return Any
	}
}
