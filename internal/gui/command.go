//go:build !nogui

package gui

import (
	"voxplorer/internal/errors"
	"voxplorer/internal/log"
	"voxplorer/internal/voice"

	"fyne.io/fyne/v2"
)

// toggleVoice starts listening, or cancels a listen in progress. The
// command is executed on the UI goroutine once it is recognised.
func (a *App) toggleVoice() {
	d := a.voice.Dispatcher
	if d.State() == voice.Listening {
		d.Cancel()
		return
	}

	err := d.Start(a.ctx, func(cmd voice.Command, err error) {
		fyne.Do(func() {
			a.explorer.HandleVoice(a.ctx, cmd, err)
		})
	})
	switch {
	case errors.Is(err, errors.ErrVoiceUnavailable):
		a.Announce(voice.MsgUnavailable)
	case err != nil:
		log.LogWithError(err).Warn("Cannot start listening")
	}
}

// voiceStateChanged relabels the voice button. It may be called from the
// dispatcher goroutine.
func (a *App) voiceStateChanged(s voice.State) {
	fyne.Do(func() {
		if a.voiceButton == nil {
			return
		}
		if s == voice.Listening {
			a.voiceButton.SetText(BtnStopListening)
		} else {
			a.voiceButton.SetText(BtnVoice)
		}
	})
}
