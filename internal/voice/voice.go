// Package voice turns one spoken utterance into an explorer command.
//
// Capture, transcription, speech output and the optional model-based intent
// fallback are interfaces; the concrete engines live in the audio, stt, tts
// and nlu subpackages so this package stays free of cgo.
package voice

import "context"

// SampleRate is the rate of the mono PCM passed from a Recorder to a Transcriber
const SampleRate = 16000

// Recorder captures a single utterance as mono float32 PCM at SampleRate
type Recorder interface {
	Record(ctx context.Context) ([]float32, error)
}

// Transcriber turns PCM into text
type Transcriber interface {
	Transcribe(ctx context.Context, pcm []float32) (string, error)
}

// Speaker says text out loud and returns when done
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// IntentClassifier maps free text the grammar did not recognise to a command
type IntentClassifier interface {
	Classify(ctx context.Context, text string) (Command, error)
}

// Cue is played right before capture starts
type Cue interface {
	Play(ctx context.Context) error
}

// RecorderFunc adapts a function to Recorder
type RecorderFunc func(ctx context.Context) ([]float32, error)

// Record implements Recorder
func (f RecorderFunc) Record(ctx context.Context) ([]float32, error) { return f(ctx) }

// TranscriberFunc adapts a function to Transcriber
type TranscriberFunc func(ctx context.Context, pcm []float32) (string, error)

// Transcribe implements Transcriber
func (f TranscriberFunc) Transcribe(ctx context.Context, pcm []float32) (string, error) {
	return f(ctx, pcm)
}

// SpeakerFunc adapts a function to Speaker
type SpeakerFunc func(ctx context.Context, text string) error

// Speak implements Speaker
func (f SpeakerFunc) Speak(ctx context.Context, text string) error { return f(ctx, text) }
