// Package tts provides the speakers behind spoken feedback.
package tts

import (
	"context"
	"fmt"
	"io"
	"sync"

	"voxplorer/internal/config"
	"voxplorer/internal/log"
	"voxplorer/internal/voice"
)

// LogSpeaker "speaks" by logging, and by writing the line to Out when set
type LogSpeaker struct {
	Out io.Writer
	mu  sync.Mutex
}

// Speak implements voice.Speaker
func (s *LogSpeaker) Speak(_ context.Context, text string) error {
	log.LogWithFields(log.F("text", text)).Info("Speaking")
	if s.Out == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.Out, text)
	return err
}

// New returns the speaker named by voice.tts, falling back to a LogSpeaker
// when espeak-ng is not available. The returned closer releases it.
func New(cfg *config.Config) (voice.Speaker, io.Closer) {
	if cfg.Voice.TTS == "espeak" {
		e, err := NewEspeak(cfg.Voice.Language)
		if err == nil {
			return e, e
		}
		log.LogWithError(err).Warn("Falling back to log speaker")
	}
	return &LogSpeaker{}, nopCloser{}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
