package messages

import "voxplorer/internal/voice"

// VoiceResultMsg carries the outcome of one listen back to the model
type VoiceResultMsg struct {
	Command voice.Command
	Err     error
}

// DirectoryChangeMsg reports an external change to the watched directory.
// Closed is set once the watcher has stopped.
type DirectoryChangeMsg struct {
	Path   string
	Closed bool
}

// ErrorMsg reports a failure of a background command
type ErrorMsg struct {
	Err error
}
