//go:build !voice

package stt

import (
	"context"

	"voxplorer/internal/errors"
)

// WhisperTranscriber is unavailable without the voice build tag
type WhisperTranscriber struct{}

// NewWhisper always fails; build with -tags voice for local transcription
func NewWhisper(string, string) (*WhisperTranscriber, error) {
	return nil, errors.NewVoiceError("whisper not built in (build with -tags voice)",
		"init", errors.VoiceUnavailable, nil)
}

// Close is a no-op
func (t *WhisperTranscriber) Close() error { return nil }

// Transcribe always fails
func (t *WhisperTranscriber) Transcribe(context.Context, []float32) (string, error) {
	return "", errors.ErrVoiceUnavailable
}
