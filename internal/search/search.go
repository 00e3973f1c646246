// Package search finds the first entry below a directory whose name
// contains a query.
package search

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"voxplorer/internal/config"
	"voxplorer/internal/log"
	"voxplorer/pkg/types"

	"github.com/gobwas/glob"
)

// Searcher walks directory trees depth-first in enumeration order
type Searcher struct {
	ignore   []glob.Glob
	maxDepth int
}

// New creates a searcher without ignore patterns or depth limit
func New() *Searcher {
	return &Searcher{}
}

// NewWithConfig creates a searcher honouring the search section of cfg
func NewWithConfig(cfg *config.Config) *Searcher {
	s := New()
	if cfg == nil {
		return s
	}
	s.maxDepth = cfg.Search.MaxDepth
	for _, pattern := range cfg.Search.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			log.Warn("Ignoring invalid search pattern %q: %v", pattern, err)
			continue
		}
		s.ignore = append(s.ignore, g)
	}
	return s
}

// Find returns the first path below root whose name contains query,
// compared case-insensitively. Entries are visited in enumeration order and
// a matching folder wins over anything inside it.
//
// The first match is the only candidate: if it is not of the requested kind
// the result is "not found" rather than the next match. Unreadable folders
// are skipped. The error is non-nil only when ctx is cancelled.
func (s *Searcher) Find(ctx context.Context, root, query string, kind types.Kind) (string, bool, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return "", false, nil
	}

	candidate, isDir, err := s.walk(ctx, root, query, 1)
	if err != nil {
		return "", false, err
	}
	if candidate == "" {
		log.Debug("No entry matching %q below %s", query, root)
		return "", false, nil
	}
	if !kind.Matches(isDir) {
		log.Debug("First match %s is not a %s", candidate, kind)
		return "", false, nil
	}
	return candidate, true, nil
}

func (s *Searcher) walk(ctx context.Context, dir, query string, depth int) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	f, err := os.Open(dir)
	if err != nil {
		log.Debug("Skipping unreadable directory %s: %v", dir, err)
		return "", false, nil
	}
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil && len(entries) == 0 {
		log.Debug("Skipping unreadable directory %s: %v", dir, err)
		return "", false, nil
	}

	for _, e := range entries {
		name := e.Name()
		if s.ignored(name) {
			continue
		}

		path := filepath.Join(dir, name)
		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil {
				isDir = info.IsDir()
			}
		}

		if strings.Contains(strings.ToLower(name), query) {
			return path, isDir, nil
		}

		// Symlinked folders are matched by name but not descended into
		if !e.IsDir() || (s.maxDepth > 0 && depth >= s.maxDepth) {
			continue
		}
		found, foundDir, err := s.walk(ctx, path, query, depth+1)
		if err != nil {
			return "", false, err
		}
		if found != "" {
			return found, foundDir, nil
		}
	}
	return "", false, nil
}

func (s *Searcher) ignored(name string) bool {
	for _, g := range s.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}
