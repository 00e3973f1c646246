//go:build !nogui

package gui

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"voxplorer/internal/config"
	"voxplorer/internal/explorer"
	"voxplorer/internal/fsops"
	"voxplorer/internal/log"
	"voxplorer/internal/voice/engine"
	"voxplorer/internal/watch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/widget"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	configPath string

	fs       *fsops.Accessor
	explorer *explorer.Explorer
	voice    *engine.Engine
	watcher  *watch.Watcher

	// Cancelled when the application quits
	ctx    context.Context
	cancel context.CancelFunc

	list        *widget.List
	pathLabel   *widget.Label // Reference to the path display label
	statusLabel *widget.Label
	voiceButton *widget.Button
	buttons     map[string]*widget.Button

	lastAnnouncement string

	closeOnce sync.Once
	closeErr  error
}

// NewApp creates the main window over the configured start directory.
// Voice options are passed to the voice engine, e.g. to replay a file
// instead of using the microphone.
func NewApp(cfg *config.Config, configPath string, opts ...engine.Option) *App {
	// Create app with a unique ID for preferences storage
	fyneApp := app.NewWithID("io.github.voxplorer")

	// Load the app icon
	iconPath := "icon.png"
	if _, err := os.Stat(iconPath); os.IsNotExist(err) {
		iconPath = filepath.Join("internal", "gui", "icon.png")
	}
	if appIcon, err := fyne.LoadResourceFromPath(iconPath); err == nil {
		fyneApp.SetIcon(appIcon)
	} else {
		log.Debug("No app icon at %s: %v", iconPath, err)
	}

	return newApp(fyneApp, cfg, configPath, opts...)
}

func newApp(fyneApp fyne.App, cfg *config.Config, configPath string, opts ...engine.Option) *App {
	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		fyneApp:    fyneApp,
		cfg:        cfg,
		configPath: configPath,
		fs:         fsops.NewWithConfig(cfg),
		ctx:        ctx,
		cancel:     cancel,
		buttons:    map[string]*widget.Button{},
	}
	fyneApp.Settings().SetTheme(newDarkTheme())

	a.voice = engine.New(cfg, append(opts, engine.WithStateHook(a.voiceStateChanged))...)
	a.explorer = explorer.New(a.fs,
		explorer.WithNotifier(a),
		explorer.WithPrompter(a),
		explorer.WithViewer(a),
		explorer.WithOpener(urlOpener{fyneApp}),
		explorer.WithFinder(newFinder(cfg)),
		explorer.WithPreviewer(newPreviewer(cfg)),
		explorer.WithChangeHook(a.explorerChanged),
	)

	if cfg.Explorer.Watch {
		a.startWatcher()
	}

	a.mainWindow = fyneApp.NewWindow("Voice Controlled File Explorer")
	a.setupMainWindow()

	start := cfg.ResolveStartDir()
	if err := a.explorer.Load(start); err != nil {
		log.LogWithError(err).Error("Cannot show start directory")
	}
	return a
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run shows the main window and blocks until the application quits
func (a *App) Run() {
	a.mainWindow.Show()
	a.fyneApp.Run()
	if err := a.Close(); err != nil {
		log.LogWithError(err).Warn("Shutdown incomplete")
	}
}

// Close stops listening, the watcher and the speech backends. It is safe
// to call twice.
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		a.cancel()
		if a.watcher != nil {
			a.watcher.Stop()
		}
		a.closeErr = a.voice.Close()
	})
	return a.closeErr
}

func (a *App) startWatcher() {
	w, err := watch.New()
	if err != nil {
		log.LogWithError(err).Warn("Directory watching disabled")
		return
	}
	if err := w.Start(); err != nil {
		log.LogWithError(err).Warn("Directory watching disabled")
		return
	}
	a.watcher = w

	go func() {
		for dir := range w.Changes() {
			changed := dir
			fyne.Do(func() {
				if changed == a.explorer.Dir() {
					a.explorer.Refresh()
				}
			})
		}
	}()
}
