package fsops

import (
	"os/exec"
	"runtime"

	"voxplorer/internal/errors"
	"voxplorer/internal/log"
)

// Opener opens a path with whatever the desktop associates with it
type Opener interface {
	Open(path string) error
}

// SystemOpener launches the OS default handler and does not wait for it
type SystemOpener struct{}

// Open implements Opener
func (SystemOpener) Open(path string) error {
	name, args := openCommand(runtime.GOOS, path)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return errors.NewFileError("cannot open", path, errors.FileOperationFailed, err)
	}
	log.Debug("Started %s for %s", name, path)
	// Reap the handler process in the background
	go func() { _ = cmd.Wait() }()
	return nil
}

func openCommand(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}
