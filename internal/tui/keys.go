package tui

import (
	"strings"

	"voxplorer/internal/explorer"
	"voxplorer/internal/voice"
	"voxplorer/pkg/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	switch m.mode {
	case types.Input:
		return m.handleInputKeys(msg)
	case types.Confirm:
		m.handleConfirmKeys(msg)
		return nil
	case types.Picker:
		m.handlePickerKeys(msg)
		return nil
	case types.Preview:
		return m.handlePreviewKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	m.status.SetAlert("")

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Open):
		if e, ok := m.explorer.Selected(); ok {
			_ = m.explorer.Activate(e.Path)
		} else {
			_ = m.explorer.OpenFolder("")
		}
	case key.Matches(msg, m.keys.GoBack):
		_ = m.explorer.Back()
	case key.Matches(msg, m.keys.ChangeDir):
		m.openPicker()
	case key.Matches(msg, m.keys.Rename):
		_ = m.explorer.Rename(types.Any, "")
	case key.Matches(msg, m.keys.Copy):
		_ = m.explorer.Copy(types.Any, "")
	case key.Matches(msg, m.keys.Move):
		_ = m.explorer.Move(types.Any, "")
	case key.Matches(msg, m.keys.Paste):
		_ = m.explorer.Paste()
	case key.Matches(msg, m.keys.Delete):
		_ = m.explorer.Delete(types.Any, "")
	case key.Matches(msg, m.keys.Preview):
		_ = m.explorer.Preview("")
	case key.Matches(msg, m.keys.Refresh):
		m.explorer.Refresh()
	case key.Matches(msg, m.keys.Search):
		m.AskString("Search", "Search for:", func(query string, ok bool) {
			if ok && strings.TrimSpace(query) != "" {
				m.explorer.Execute(m.ctx, voice.Command{Action: voice.Search, Argument: query, Text: query})
			}
		})
	case key.Matches(msg, m.keys.Command):
		m.AskString("Command", "Command:", func(text string, ok bool) {
			if ok {
				m.runTyped(text)
			}
		})
	case key.Matches(msg, m.keys.Voice):
		return m.toggleVoice()
	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		m.syncSelection()
		return cmd
	}

	m.syncSelection()
	return nil
}

func (m *Model) handleInputKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		m.finishInput(m.input.Value(), true)
		return nil
	case tea.KeyEsc:
		m.finishInput("", false)
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) finishInput(value string, ok bool) {
	fn := m.onInput
	m.onInput = nil
	m.prompt = ""
	m.input.Blur()
	m.input.Reset()
	m.mode = types.Normal
	if fn != nil {
		fn(value, ok)
	}
	m.syncSelection()
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) {
	var answer bool
	switch {
	case key.Matches(msg, m.keys.Accept):
		answer = true
	case key.Matches(msg, m.keys.Cancel):
		answer = false
	default:
		return
	}
	fn := m.onConfirm
	m.onConfirm = nil
	m.prompt = ""
	m.mode = types.Normal
	if fn != nil {
		fn(answer)
	}
	m.syncSelection()
}

func (m *Model) handlePreviewKeys(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Cancel, m.keys.Quit, m.keys.Open) {
		m.mode = types.Normal
		return nil
	}
	return m.preview.Update(msg)
}

func (m *Model) openPicker() {
	m.picker = explorer.NewPicker(m.fs, m.explorer.Drives())
	m.mode = types.Picker
	m.movePicker(0)
}

func (m *Model) handlePickerKeys(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.movePicker(m.pickerCursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.movePicker(m.pickerCursor + 1)
	case key.Matches(msg, m.keys.Open):
		if path, ok := m.picker.Selected(); ok && m.picker.Drill(path) {
			m.movePicker(0)
		}
	case key.Matches(msg, m.keys.GoBack):
		m.picker.Up(m.explorer.Drives())
		m.movePicker(0)
	case key.Matches(msg, m.keys.Choose):
		if m.picker.Choose(m.explorer) {
			m.closePicker()
		}
	case key.Matches(msg, m.keys.Cancel, m.keys.Quit):
		m.closePicker()
	}
}

// movePicker puts the picker cursor on row i and selects it
func (m *Model) movePicker(i int) {
	items := m.picker.Items()
	if len(items) == 0 {
		m.pickerCursor = 0
		m.picker.Select("")
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(items) {
		i = len(items) - 1
	}
	m.pickerCursor = i
	m.picker.Select(items[i].Path)
}

func (m *Model) closePicker() {
	m.picker = nil
	m.pickerCursor = 0
	m.mode = types.Normal
	m.syncSelection()
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	_ = m.Close()
	return tea.Quit
}
