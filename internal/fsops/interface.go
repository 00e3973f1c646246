package fsops

import "voxplorer/pkg/types"

// Operator defines the filesystem operations the explorer depends on.
// This allows for dependency injection in tests and other parts of the application
type Operator interface {
	// List returns the one-level listing of dir in enumeration order
	List(dir string) ([]types.Entry, error)

	// Rename renames path to newName inside the same directory
	Rename(path, newName string) (string, error)

	// Copy copies a file or directory tree into dstDir
	Copy(src, dstDir string) (string, error)

	// Move relocates a file or directory into dstDir
	Move(src, dstDir string) (string, error)

	// Delete removes a file, or a directory and everything below it
	Delete(path string) error
}

// Ensure Accessor implements the Operator interface
var _ Operator = (*Accessor)(nil)
