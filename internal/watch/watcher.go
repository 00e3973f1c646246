// Package watch reports changes to the directory the explorer is showing.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"voxplorer/internal/log"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts such as a large paste into one refresh
const DefaultDebounce = 200 * time.Millisecond

// Watcher follows a single directory using fsnotify. Every burst of
// create, remove, rename or write events inside it is delivered once on
// Changes as the directory path.
type Watcher struct {
	// Directory being watched, empty before the first Follow
	dir string

	// Coalesced change notifications
	changes chan string

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	debounce time.Duration

	// Lock for running state and the watched directory
	mutex sync.RWMutex

	// Whether the watcher is running
	running bool
}

// New creates a new directory watcher using fsnotify
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		changes:   make(chan string, 1),
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
		debounce:  DefaultDebounce,
	}, nil
}

// SetDebounce changes the quiet period before a change is reported
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.debounce = d
}

// Follow switches the watch to dir. Following the current directory again
// is a no-op.
func (w *Watcher) Follow(dir string) error {
	dir = filepath.Clean(dir)

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.dir == dir {
		return nil
	}
	if w.dir != "" {
		if err := w.fsWatcher.Remove(w.dir); err != nil {
			log.LogWithFields(log.F("directory", w.dir), log.F("error", err)).Debug("Failed to remove watch")
		}
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		w.dir = ""
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}
	w.dir = dir
	log.LogWithFields(log.F("directory", dir)).Debug("Watching directory")
	return nil
}

// Dir returns the directory being watched
func (w *Watcher) Dir() string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.dir
}

// Changes delivers the watched directory after each burst of events.
// It is closed by Stop.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Start begins the event loop
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	stop := w.stopChan
	w.mutex.Unlock()

	go w.loop(stop)

	log.Debug("Watcher started.")
	return nil
}

func (w *Watcher) loop(stop <-chan struct{}) {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending string
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			pending = filepath.Dir(event.Name)

			w.mutex.RLock()
			d := w.debounce
			w.mutex.RUnlock()
			if timer == nil {
				timer = time.NewTimer(d)
			} else {
				timer.Reset(d)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			// A change for a directory we no longer follow is stale
			w.mutex.RLock()
			if w.running && pending == w.dir {
				select {
				case w.changes <- pending:
				default:
					// A notification is already queued
				}
			}
			w.mutex.RUnlock()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-stop:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Remove) &&
		!event.Op.Has(fsnotify.Rename) && !event.Op.Has(fsnotify.Write) {
		return false
	}
	return filepath.Dir(event.Name) == w.Dir()
}

// Stop halts the watcher and closes Changes
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}

	close(w.stopChan)

	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}

	w.running = false
	close(w.changes)

	log.Debug("Watcher stopped.")
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
