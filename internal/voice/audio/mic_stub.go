//go:build !voice

package audio

import (
	"context"

	"voxplorer/internal/errors"
)

// MicRecorder is unavailable without the voice build tag
type MicRecorder struct{}

// NewMicRecorder always fails; build with -tags voice for microphone capture
func NewMicRecorder(int) (*MicRecorder, error) {
	return nil, errors.NewVoiceError("microphone capture not built in (build with -tags voice)",
		"init", errors.VoiceUnavailable, nil)
}

// Close is a no-op
func (r *MicRecorder) Close() error { return nil }

// Record always fails
func (r *MicRecorder) Record(context.Context) ([]float32, error) {
	return nil, errors.ErrVoiceUnavailable
}
