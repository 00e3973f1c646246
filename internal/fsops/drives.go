package fsops

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Drives returns the roots a user can navigate to: drive letters on Windows,
// the root plus mounted volumes elsewhere
func Drives() []string {
	if runtime.GOOS == "windows" {
		return windowsDrives()
	}
	return unixDrives(runtime.GOOS, "/", currentUser())
}

func windowsDrives() []string {
	var drives []string
	for c := 'A'; c <= 'Z'; c++ {
		root := string(c) + `:\`
		if _, err := os.Stat(root); err == nil {
			drives = append(drives, root)
		}
	}
	return drives
}

// unixDrives lists root followed by the volumes mounted under the usual
// parents for goos. root is a parameter so the layout can be faked.
func unixDrives(goos, root, user string) []string {
	var parents []string
	if goos == "darwin" {
		parents = []string{"Volumes"}
	} else {
		parents = []string{"media", "mnt"}
		if user != "" {
			parents = append(parents,
				filepath.Join("media", user),
				filepath.Join("run", "media", user))
		}
	}

	drives := []string{root}
	seen := map[string]bool{root: true}
	for _, parent := range parents {
		dir := filepath.Join(root, parent)
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			path := filepath.Join(dir, e.Name())
			if seen[path] {
				continue
			}
			if info, err := os.Stat(path); err != nil || !info.IsDir() {
				continue
			}
			seen[path] = true
			drives = append(drives, path)
		}
	}
	return drives
}

func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return os.Getenv("USERNAME")
}

// ResolveDrive finds the drive a spoken name refers to: a drive letter
// ("c", "d:"), "root", or a case-insensitive substring of a mount name.
func ResolveDrive(name string, drives []string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimSuffix(strings.TrimPrefix(name, "drive "), " drive")
	name = strings.TrimSpace(strings.TrimSuffix(name, ":"))
	if name == "" {
		return "", false
	}

	for _, d := range drives {
		if len(name) == 1 && strings.HasPrefix(strings.ToLower(d), name+":") {
			return d, true
		}
	}
	if name == "root" || name == "/" {
		for _, d := range drives {
			if d == "/" || (len(d) == 3 && strings.HasSuffix(d, `:\`)) {
				return d, true
			}
		}
	}
	for _, d := range drives {
		base := strings.ToLower(filepath.Base(d))
		if base != "" && base != "/" && base != "." && strings.Contains(base, name) {
			return d, true
		}
	}
	return "", false
}
