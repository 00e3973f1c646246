package tui

import (
	"fmt"
	"strings"

	"voxplorer/internal/tui/styles"
	"voxplorer/pkg/types"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(styles.Theme.Title.Render(Title) + "\n")
	sb.WriteString(styles.Theme.Path.Render(m.explorer.Dir()) + "\n")

	switch m.mode {
	case types.Picker:
		sb.WriteString(m.pickerView())
	case types.Preview:
		sb.WriteString(m.preview.View())
	default:
		sb.WriteString(m.list.View())
	}
	sb.WriteString("\n")

	switch m.mode {
	case types.Input:
		sb.WriteString(styles.Theme.Prompt.Render(m.prompt) + " " + m.input.View() + "\n")
	case types.Confirm:
		sb.WriteString(styles.Theme.Prompt.Render(m.prompt) + " [y/N]\n")
	}

	if status := m.status.View(); status != "" {
		sb.WriteString(status + "\n")
	}
	sb.WriteString(m.help.View(m.keys))

	return styles.Theme.App.Render(sb.String())
}

func (m *Model) pickerView() string {
	var sb strings.Builder
	sb.WriteString(styles.Theme.Prompt.Render("Navigate to Directory") + "\n")
	where := m.picker.Dir()
	if where == "" {
		where = "Drives"
	}
	sb.WriteString(styles.Theme.Status.Render(where) + "\n\n")

	items := m.picker.Items()
	if len(items) == 0 {
		sb.WriteString(styles.Theme.Unselected.Render("(empty)") + "\n")
	}
	for i, e := range items {
		cursor := " "
		style := styles.Theme.Unselected
		if e.IsDir {
			style = styles.Theme.Directory
		}
		if i == m.pickerCursor {
			cursor = ">"
			style = styles.Theme.Selected
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(e.Name)))
	}
	sb.WriteString("\n" + styles.Theme.Help.Render("enter: open  ⌫: up  s: select directory  esc: cancel"))
	return sb.String()
}
