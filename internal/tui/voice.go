package tui

import (
	"voxplorer/internal/errors"
	"voxplorer/internal/log"
	"voxplorer/internal/tui/messages"
	"voxplorer/internal/voice"

	tea "github.com/charmbracelet/bubbletea"
)

// toggleVoice starts listening, or cancels a listen in progress. The result
// comes back as a VoiceResultMsg.
func (m *Model) toggleVoice() tea.Cmd {
	d := m.voice.Dispatcher
	if m.listening {
		d.Cancel()
		return nil
	}

	results := make(chan messages.VoiceResultMsg, 1)
	err := d.Start(m.ctx, func(cmd voice.Command, err error) {
		results <- messages.VoiceResultMsg{Command: cmd, Err: err}
	})
	switch {
	case errors.Is(err, errors.ErrVoiceUnavailable):
		m.Announce(voice.MsgUnavailable)
		return nil
	case err != nil:
		log.LogWithError(err).Warn("Cannot start listening")
		return nil
	}

	m.listening = true
	m.status.SetLoading(true)
	return tea.Batch(m.status.Tick(), waitForVoice(results))
}

func waitForVoice(results <-chan messages.VoiceResultMsg) tea.Cmd {
	return func() tea.Msg {
		return <-results
	}
}

// runTyped interprets text as if it had been spoken
func (m *Model) runTyped(text string) {
	cmd, err := m.voice.Dispatcher.Interpret(m.ctx, text)
	m.explorer.HandleVoice(m.ctx, cmd, err)
}
