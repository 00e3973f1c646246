// Package fsops is the filesystem accessor behind the explorer: listing,
// rename, copy, move, delete, drive discovery and opening with the OS handler.
package fsops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"voxplorer/internal/config"
	"voxplorer/internal/errors"
	"voxplorer/internal/log"
	"voxplorer/pkg/types"

	"github.com/gobwas/glob"
)

// Accessor performs filesystem operations with the configured listing filters
// and paste collision strategy
type Accessor struct {
	mu         sync.Mutex // Serialises mutations that check then write a destination
	showHidden bool
	hide       []glob.Glob
	collision  string
}

// New creates an accessor that lists everything and overwrites files on
// collision
func New() *Accessor {
	return &Accessor{
		showHidden: true,
		collision:  config.CollisionOverwrite,
	}
}

// NewWithConfig creates an accessor honouring the explorer section of cfg
func NewWithConfig(cfg *config.Config) *Accessor {
	a := New()
	if cfg == nil {
		return a
	}
	a.showHidden = cfg.Explorer.ShowHidden
	if cfg.Explorer.Collision != "" {
		a.collision = cfg.Explorer.Collision
	}
	for _, pattern := range cfg.Explorer.Hide {
		g, err := glob.Compile(pattern)
		if err != nil {
			log.Warn("Ignoring invalid hide pattern %q: %v", pattern, err)
			continue
		}
		a.hide = append(a.hide, g)
	}
	return a
}

// SetCollision changes the collision strategy used by Copy and Move
func (a *Accessor) SetCollision(strategy string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.collision = strategy
}

// SetShowHidden toggles listing of dot-files
func (a *Accessor) SetShowHidden(show bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.showHidden = show
}

// List returns the entries directly inside dir in the order the OS
// enumerates them. An unreadable directory yields an empty listing and the
// error; entries that vanish or cannot be stat'ed are skipped.
func (a *Accessor) List(dir string) ([]types.Entry, error) {
	entries := []types.Entry{}

	f, err := os.Open(dir)
	if err != nil {
		log.Warn("Cannot read directory %s: %v", dir, err)
		return entries, wrapFileError("cannot read directory", dir, err)
	}
	defer f.Close()

	dirEntries, err := f.ReadDir(-1)
	if err != nil && len(dirEntries) == 0 {
		log.Warn("Cannot list directory %s: %v", dir, err)
		return entries, wrapFileError("cannot list directory", dir, err)
	}

	for _, d := range dirEntries {
		name := d.Name()
		if a.hidden(name) {
			continue
		}

		path := filepath.Join(dir, name)
		// Stat follows symlinks so a link to a folder is listed as a folder
		info, err := os.Stat(path)
		if err != nil {
			info, err = d.Info()
			if err != nil {
				log.Debug("Skipping %s: %v", path, err)
				continue
			}
		}

		entries = append(entries, types.Entry{
			Name:    name,
			Path:    path,
			IsDir:   info.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return entries, nil
}

func (a *Accessor) hidden(name string) bool {
	if !a.showHidden && strings.HasPrefix(name, ".") {
		return true
	}
	for _, g := range a.hide {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Stat describes a single path as a listing entry
func Stat(path string) (types.Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.Entry{}, wrapFileError("cannot stat", path, err)
	}
	return types.Entry{
		Name:    filepath.Base(path),
		Path:    path,
		IsDir:   info.IsDir(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// Rename renames path to newName inside the same parent directory and
// returns the new path. The target must not exist.
func (a *Accessor) Rename(path, newName string) (string, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" || newName == "." || newName == ".." || strings.ContainsAny(newName, `/\`) {
		return "", errors.NewFileError("invalid name", newName, errors.InvalidPath, nil)
	}

	if _, err := os.Lstat(path); err != nil {
		return "", wrapFileError("cannot rename", path, err)
	}

	target := filepath.Join(filepath.Dir(path), newName)
	if filepath.Clean(target) == filepath.Clean(path) {
		return target, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := os.Lstat(target); err == nil {
		return "", errors.NewFileError("target already exists", target, errors.FileOperationFailed, os.ErrExist)
	}

	if err := os.Rename(path, target); err != nil {
		return "", wrapFileError("cannot rename", path, err)
	}

	log.Info("Renamed %s -> %s", path, target)
	return target, nil
}

// Copy copies src into dstDir and returns the created path. Files keep their
// mode; directories are copied recursively. An empty path with a nil error
// means the collision strategy skipped the copy.
func (a *Accessor) Copy(src, dstDir string) (string, error) {
	cleanSrc := filepath.Clean(src)
	srcInfo, err := os.Stat(cleanSrc)
	if err != nil {
		return "", wrapFileError("cannot copy", src, err)
	}
	if err := checkDestDir(cleanSrc, dstDir, srcInfo.IsDir()); err != nil {
		return "", err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	dest := filepath.Join(dstDir, filepath.Base(cleanSrc))
	if dest == cleanSrc && (a.collision == config.CollisionOverwrite || a.collision == config.CollisionError) {
		return "", errors.NewFileError("destination already exists", dest, errors.FileOperationFailed, os.ErrExist)
	}

	finalDest, err := a.handleCollision(cleanSrc, dest)
	if err != nil || finalDest == "" {
		return "", err
	}

	if srcInfo.IsDir() {
		err = copyTree(cleanSrc, finalDest)
	} else {
		err = copyFile(cleanSrc, finalDest, srcInfo.Mode())
	}
	if err != nil {
		return "", wrapFileError("cannot copy", src, err)
	}

	log.Info("Copied %s -> %s", src, finalDest)
	return finalDest, nil
}

// Move relocates src into dstDir and returns the new path. It renames when
// possible and falls back to copy and remove across devices.
func (a *Accessor) Move(src, dstDir string) (string, error) {
	cleanSrc := filepath.Clean(src)
	srcInfo, err := os.Stat(cleanSrc)
	if err != nil {
		return "", wrapFileError("cannot move", src, err)
	}
	if err := checkDestDir(cleanSrc, dstDir, srcInfo.IsDir()); err != nil {
		return "", err
	}

	dest := filepath.Join(dstDir, filepath.Base(cleanSrc))
	if dest == cleanSrc {
		return "", errors.NewFileError("destination already exists", dest, errors.FileOperationFailed, os.ErrExist)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	finalDest, err := a.handleCollision(cleanSrc, dest)
	if err != nil || finalDest == "" {
		return "", err
	}

	if err := os.Rename(cleanSrc, finalDest); err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			return "", wrapFileError("cannot move", src, err)
		}
		log.Debug("Rename failed (%v), falling back to copy and remove", err)
		if srcInfo.IsDir() {
			err = copyTree(cleanSrc, finalDest)
		} else {
			err = copyFile(cleanSrc, finalDest, srcInfo.Mode())
		}
		if err != nil {
			return "", wrapFileError("cannot move", src, err)
		}
		if err := os.RemoveAll(cleanSrc); err != nil {
			return "", wrapFileError("moved but could not remove source", src, err)
		}
	}

	log.Info("Moved %s -> %s", src, finalDest)
	return finalDest, nil
}

// Delete removes a file, or a directory with everything below it
func (a *Accessor) Delete(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return wrapFileError("cannot delete", path, err)
	}

	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return wrapFileError("cannot delete", path, err)
	}

	log.Info("Deleted %s", path)
	return nil
}

// checkDestDir verifies dstDir is a directory and, for directory sources,
// that it does not lie inside the source tree
func checkDestDir(src, dstDir string, srcIsDir bool) error {
	info, err := os.Stat(dstDir)
	if err != nil {
		return wrapFileError("invalid destination", dstDir, err)
	}
	if !info.IsDir() {
		return errors.NewFileError("destination is not a directory", dstDir, errors.InvalidPath, nil)
	}
	if srcIsDir {
		rel, err := filepath.Rel(src, filepath.Clean(dstDir))
		outside := rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
		if err == nil && !outside {
			return errors.NewFileError("cannot copy a folder into itself", dstDir, errors.InvalidOperation, nil)
		}
	}
	return nil
}

// handleCollision implements collision resolution strategies.
// It returns the final destination path and an error if any.
// If the item should be skipped, it returns an empty string and nil error.
func (a *Accessor) handleCollision(src, dest string) (string, error) {
	_, err := os.Lstat(dest)
	if os.IsNotExist(err) {
		return dest, nil
	}
	if err != nil {
		return "", wrapFileError("error checking destination", dest, err)
	}

	log.Warn("Destination %s already exists. Handling collision with strategy: %s", dest, a.collision)

	switch a.collision {
	case config.CollisionSkip:
		log.Info("Skipping %s due to collision (strategy: skip)", src)
		return "", nil

	case config.CollisionOverwrite:
		// Only files are replaced; an existing folder is never removed
		srcInfo, srcErr := os.Stat(src)
		destInfo, destErr := os.Stat(dest)
		if srcErr != nil || destErr != nil || srcInfo.IsDir() || destInfo.IsDir() {
			return "", errors.NewFileError("destination already exists", dest, errors.FileOperationFailed, os.ErrExist)
		}
		log.Warn("Overwriting %s (strategy: overwrite)", dest)
		if err := os.Remove(dest); err != nil {
			return "", wrapFileError("cannot overwrite", dest, err)
		}
		return dest, nil

	case config.CollisionRename:
		return findUniqueDestName(dest)

	case config.CollisionError:
		return "", errors.NewFileError("destination already exists", dest, errors.FileOperationFailed, os.ErrExist)

	default:
		return "", errors.NewFileError(fmt.Sprintf("unknown collision strategy: %s", a.collision), dest, errors.InvalidOperation, nil)
	}
}

// findUniqueDestName finds a unique name by adding a counter to the basename
func findUniqueDestName(originalPath string) (string, error) {
	ext := filepath.Ext(originalPath)
	base := strings.TrimSuffix(originalPath, ext)

	for counter := 1; counter <= 1000; counter++ {
		newName := fmt.Sprintf("%s_(%d)%s", base, counter, ext)

		if _, err := os.Lstat(newName); os.IsNotExist(err) {
			log.Info("Renaming destination to %s due to collision (strategy: rename)", newName)
			return newName, nil
		}
	}

	return "", errors.NewFileError("failed to find a unique name after 1000 attempts", originalPath, errors.FileOperationFailed, nil)
}

func copyFile(src, dest string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func copyTree(src, dest string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		switch {
		case d.IsDir():
			return os.MkdirAll(target, info.Mode().Perm()|0700)
		case info.Mode()&os.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		default:
			return copyFile(path, target, info.Mode())
		}
	})
}

// wrapFileError classifies an os error into a FileError
func wrapFileError(msg, path string, err error) error {
	kind := errors.FileOperationFailed
	switch {
	case os.IsNotExist(err):
		kind = errors.FileNotFound
	case os.IsPermission(err):
		kind = errors.FileAccessDenied
	}
	return errors.NewFileError(msg, path, kind, err)
}
