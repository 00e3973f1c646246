package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the core UI styles
var Theme = struct {
	App        lipgloss.Style
	Title      lipgloss.Style
	Path       lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Directory  lipgloss.Style
	Help       lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
	Prompt     lipgloss.Style
	Pane       lipgloss.Style
}{
	App: lipgloss.NewStyle().
		Padding(1, 2),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#FFA500")).
		Padding(0, 1),
	Path: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#959595")).
		MarginBottom(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFA500")).
		Bold(true),
	Unselected: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#CCCCCC")),
	Directory: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#81A1C1")).
		Bold(true),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9")),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#959595")),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF5F5F")),
	Prompt: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFA500")).
		Bold(true),
	Pane: lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FFA500")),
}
