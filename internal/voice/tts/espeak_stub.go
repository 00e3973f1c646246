//go:build !voice

package tts

import (
	"context"

	"voxplorer/internal/errors"
)

// Espeak is unavailable without the voice build tag
type Espeak struct{}

// NewEspeak always fails; build with -tags voice for speech output
func NewEspeak(string) (*Espeak, error) {
	return nil, errors.NewVoiceError("espeak-ng not built in (build with -tags voice)",
		"init", errors.VoiceUnavailable, nil)
}

// Speak always fails
func (e *Espeak) Speak(context.Context, string) error { return errors.ErrVoiceUnavailable }

// Close is a no-op
func (e *Espeak) Close() error { return nil }
