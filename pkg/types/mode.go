package types

// Mode represents the current mode of the TUI
type Mode int

const (
	// Normal is the default mode for navigation and actions
	Normal Mode = iota
	// Input is active while a prompt (rename, search) collects text
	Input
	// Confirm waits for a yes/no answer
	Confirm
	// Picker shows drives and directories for Change Directory
	Picker
	// Preview shows the content of the selected file
	Preview
)

func (m Mode) String() string {
	switch m {
	case Input:
		return "INPUT"
	case Confirm:
		return "CONFIRM"
	case Picker:
		return "PICKER"
	case Preview:
		return "PREVIEW"
	default:
		return "NORMAL"
	}
}
