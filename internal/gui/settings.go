//go:build !nogui

package gui

import (
	"fmt"

	"voxplorer/internal/config"
	"voxplorer/internal/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showSettings opens the settings window. Explorer settings apply at once;
// voice settings take effect on the next start.
func (a *App) showSettings() fyne.Window {
	w := a.fyneApp.NewWindow("Settings")

	// --- Explorer Settings ---
	showHiddenCheck := widget.NewCheck("Show Hidden Files", func(value bool) {
		a.cfg.Explorer.ShowHidden = value
		a.fs.SetShowHidden(value)
		a.explorer.Refresh()
	})
	showHiddenCheck.SetChecked(a.cfg.Explorer.ShowHidden)

	collisionSelect := widget.NewSelect([]string{
		config.CollisionRename, config.CollisionSkip, config.CollisionOverwrite, config.CollisionError,
	}, func(value string) {
		a.cfg.Explorer.Collision = value
		a.fs.SetCollision(value)
	})
	collisionSelect.SetSelected(a.cfg.Explorer.Collision)

	startDirEntry := widget.NewEntry()
	startDirEntry.SetText(a.cfg.StartDir)
	startDirEntry.OnChanged = func(text string) {
		a.cfg.StartDir = text
	}

	explorerCard := widget.NewCard("Explorer", "", container.NewVBox(
		showHiddenCheck,
		widget.NewForm(
			widget.NewFormItem("Paste Collisions", collisionSelect),
			widget.NewFormItem("Start Directory", startDirEntry),
		),
	))

	// --- Voice Settings ---
	engineSelect := widget.NewSelect([]string{
		config.EngineWhisper, config.EngineOpenAI, config.EngineNone,
	}, func(value string) {
		a.cfg.Voice.Engine = value
	})
	engineSelect.SetSelected(a.cfg.Voice.Engine)

	languageEntry := widget.NewEntry()
	languageEntry.SetText(a.cfg.Voice.Language)
	languageEntry.OnChanged = func(text string) {
		a.cfg.Voice.Language = text
	}

	fallbackCheck := widget.NewCheck("Ask the cloud model when a command is not recognised", func(value bool) {
		a.cfg.Voice.OpenAI.NLUFallback = value
	})
	fallbackCheck.SetChecked(a.cfg.Voice.OpenAI.NLUFallback)

	voiceCard := widget.NewCard("Voice", "Changes apply after a restart", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Engine", engineSelect),
			widget.NewFormItem("Language", languageEntry),
		),
		fallbackCheck,
	))

	saveButton := widget.NewButton("Save", func() {
		if err := a.saveConfig(); err != nil {
			dialog.ShowError(err, w)
			return
		}
		dialog.ShowInformation("Settings", "Configuration saved.", w)
	})

	w.SetContent(container.NewBorder(nil, container.NewCenter(saveButton), nil, nil,
		container.NewVScroll(container.NewVBox(explorerCard, voiceCard))))
	w.Resize(fyne.NewSize(480, 420))
	w.Show()
	return w
}

// saveConfig validates and writes the configuration
func (a *App) saveConfig() error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	path := a.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("cannot locate config file: %w", err)
		}
		path = p
	}
	if err := config.SaveConfig(a.cfg, path); err != nil {
		return err
	}
	log.LogWithFields(log.F("path", path)).Info("Configuration saved")
	return nil
}
