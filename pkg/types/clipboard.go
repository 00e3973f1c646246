package types

// ClipboardAction is what a paste does with the clipboard path
type ClipboardAction int

const (
	ActionCopy ClipboardAction = iota
	ActionMove
)

func (a ClipboardAction) String() string {
	if a == ActionMove {
		return "move"
	}
	return "copy"
}

// Clipboard holds at most one pending copy or move.
// It is overwritten by each copy/move and never cleared by a paste.
type Clipboard struct {
	Path   string
	Action ClipboardAction
}

// Empty reports whether nothing has been copied or cut yet
func (c *Clipboard) Empty() bool {
	return c == nil || c.Path == ""
}
