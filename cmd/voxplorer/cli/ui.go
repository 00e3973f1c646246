package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the set of styles used for command output
type Theme struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Header  lipgloss.Style
	Logo    lipgloss.Style
	Box     lipgloss.Style
}

// DefaultTheme matches the orange accent of the explorer windows
var DefaultTheme = Theme{
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#73F59F")),
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD75F")),
	Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#81A1C1")),
	Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true),
	Logo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FFA500")).
		Padding(0, 1),
}

// CurrentTheme is the active theme
var CurrentTheme = DefaultTheme

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintln(w, CurrentTheme.Success.Render("✓ "+message))
}

// PrintError prints an error message
func PrintError(w io.Writer, message string) {
	fmt.Fprintln(w, CurrentTheme.Error.Render("✗ "+message))
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintln(w, CurrentTheme.Warning.Render("! "+message))
}

// PrintInfo prints an informational message
func PrintInfo(w io.Writer, message string) {
	fmt.Fprintln(w, CurrentTheme.Info.Render("ℹ "+message))
}

// PrintHeader prints a section header
func PrintHeader(w io.Writer, message string) {
	fmt.Fprintln(w, "\n"+CurrentTheme.Header.Render(message))
	fmt.Fprintln(w, strings.Repeat("─", lipgloss.Width(message)))
}

// DrawBox draws a rounded box around content
func DrawBox(content string) string {
	return CurrentTheme.Box.Render(content)
}

// Logo is the banner shown above the help text
func Logo() string {
	logo := `
 __   __ ___ __  __ ___ _    ___  ___ ___ ___
 \ \ / // _ \\ \/ /| _ \ |  / _ \| _ \ __| _ \
  \ V /| (_) |>  < |  _/ |_| (_) |   / _||   /
   \_/  \___//_/\_\|_| |____\___/|_|_\___|_|_\
`
	return CurrentTheme.Logo.Render(logo)
}
