package components

import (
	"voxplorer/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatusBar shows the last announcement, the last warning and a spinner
// while a voice command is being captured
type StatusBar struct {
	text    string
	alert   string
	style   lipgloss.Style
	spinner spinner.Model
	loading bool
}

func NewStatusBar() *StatusBar {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Theme.Prompt

	return &StatusBar{
		style:   styles.Theme.Status,
		spinner: s,
	}
}

func (s *StatusBar) SetLoading(loading bool) {
	s.loading = loading
}

func (s *StatusBar) Loading() bool {
	return s.loading
}

func (s *StatusBar) SetText(text string) {
	s.text = text
}

func (s *StatusBar) Text() string {
	return s.text
}

// SetAlert shows a warning or error above the status line until cleared
func (s *StatusBar) SetAlert(text string) {
	s.alert = text
}

func (s *StatusBar) Alert() string {
	return s.alert
}

// Tick starts the spinner animation
func (s *StatusBar) Tick() tea.Cmd {
	return s.spinner.Tick
}

func (s *StatusBar) Update(msg tea.Msg) tea.Cmd {
	if s.loading {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (s *StatusBar) View() string {
	var out string
	if s.alert != "" {
		out = styles.Theme.Error.Render(s.alert) + "\n"
	}
	switch {
	case s.loading:
		out += s.spinner.View() + " " + s.style.Render("Listening...")
	case s.text != "":
		out += s.style.Render(s.text)
	}
	return out
}
