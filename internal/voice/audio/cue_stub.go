//go:build !voice

package audio

import (
	"context"

	"voxplorer/internal/errors"
)

// BeepCue is unavailable without the voice build tag
type BeepCue struct{}

// NewCue always fails; build with -tags voice for the listening cue
func NewCue(string) (*BeepCue, error) {
	return nil, errors.NewVoiceError("audio output not built in (build with -tags voice)",
		"init", errors.VoiceUnavailable, nil)
}

// Play is a no-op
func (c *BeepCue) Play(context.Context) error { return nil }
