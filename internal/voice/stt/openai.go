// Package stt provides the speech-to-text engines: local whisper.cpp (with
// the voice build tag) and OpenAI cloud transcription.
package stt

import (
	"context"
	"os"
	"strings"

	"voxplorer/internal/errors"
	"voxplorer/internal/log"
	"voxplorer/internal/voice"
	"voxplorer/internal/voice/audio"

	openai "github.com/openai/openai-go/v3"
)

// OpenAITranscriber sends the utterance to the OpenAI transcription endpoint
type OpenAITranscriber struct {
	client   openai.Client
	model    string
	language string
}

// NewOpenAI creates a cloud transcriber. An empty or "auto" language lets
// the service detect it.
func NewOpenAI(client openai.Client, model, language string) *OpenAITranscriber {
	if model == "" {
		model = "whisper-1"
	}
	return &OpenAITranscriber{client: client, model: model, language: language}
}

// Transcribe implements voice.Transcriber
func (t *OpenAITranscriber) Transcribe(ctx context.Context, pcm []float32) (string, error) {
	if len(pcm) == 0 {
		return "", errors.ErrNotUnderstood
	}

	// The SDK names the multipart upload after the file, which tells the
	// service the format
	f, err := os.CreateTemp("", "utterance-*.wav")
	if err != nil {
		return "", err
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if err := audio.EncodeWAV(f, pcm, voice.SampleRate); err != nil {
		return "", errors.Wrap(err, "encode wav")
	}
	if _, err := f.Seek(0, 0); err != nil {
		return "", err
	}

	params := openai.AudioTranscriptionNewParams{
		File:  f,
		Model: openai.AudioModel(t.model),
	}
	if t.language != "" && t.language != "auto" {
		params.Language = openai.String(t.language)
	}

	resp, err := t.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return "", errors.NewVoiceError("cloud transcription failed", "transcribe", errors.SpeechNotUnderstood, err)
	}

	text := strings.TrimSpace(resp.Text)
	log.Debug("Cloud transcript: %q", text)
	return text, nil
}

var _ voice.Transcriber = (*OpenAITranscriber)(nil)
