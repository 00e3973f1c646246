//go:build voice

package stt

import (
	"context"
	"io"
	"runtime"
	"strings"
	"sync"

	"voxplorer/internal/errors"
	"voxplorer/internal/log"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
)

// WhisperTranscriber runs a local whisper.cpp model
type WhisperTranscriber struct {
	model    whisper.Model
	language string
	threads  int
	mu       sync.Mutex // A model context is created per call; loading is not shared
}

// NewWhisper loads the ggml model at modelPath
func NewWhisper(modelPath, language string) (*WhisperTranscriber, error) {
	if modelPath == "" {
		return nil, errors.NewVoiceError("empty model path", "init", errors.VoiceUnavailable, nil)
	}
	m, err := whisper.New(modelPath)
	if err != nil {
		return nil, errors.NewVoiceError("cannot load whisper model "+modelPath, "init", errors.VoiceUnavailable, err)
	}
	if language == "" {
		language = "auto"
	}
	return &WhisperTranscriber{model: m, language: language, threads: runtime.NumCPU()}, nil
}

// Close frees the model
func (t *WhisperTranscriber) Close() error {
	if t.model == nil {
		return nil
	}
	return t.model.Close()
}

// Transcribe implements voice.Transcriber. pcm must be mono 16 kHz.
func (t *WhisperTranscriber) Transcribe(ctx context.Context, pcm []float32) (string, error) {
	if len(pcm) == 0 {
		return "", errors.ErrNotUnderstood
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	wctx, err := t.model.NewContext()
	if err != nil {
		return "", errors.Wrap(err, "new whisper context")
	}
	if err := wctx.SetLanguage(t.language); err != nil {
		return "", errors.Wrap(err, "set language")
	}
	wctx.SetThreads(uint(t.threads))
	wctx.SetSplitOnWord(true)

	if err := wctx.Process(pcm, nil, nil, nil); err != nil {
		return "", errors.Wrap(err, "process")
	}

	var parts []string
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		s, err := wctx.NextSegment()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.Wrap(err, "next segment")
		}
		parts = append(parts, strings.TrimSpace(s.Text))
	}

	text := strings.TrimSpace(strings.Join(parts, " "))
	log.Debug("Whisper transcript: %q", text)
	return text, nil
}
