//go:build voice

package audio

import (
	"context"
	"sync"

	"voxplorer/internal/errors"
	"voxplorer/internal/log"

	"github.com/gordonklaus/portaudio"
)

// MicRecorder captures one utterance from the default input device
type MicRecorder struct {
	maxSeconds int
	mu         sync.Mutex // One stream at a time
}

// NewMicRecorder initialises PortAudio. Close releases it.
func NewMicRecorder(maxSeconds int) (*MicRecorder, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, errors.NewVoiceError("cannot initialise audio input", "init", errors.VoiceUnavailable, err)
	}
	return &MicRecorder{maxSeconds: maxSeconds}, nil
}

// Close terminates PortAudio
func (r *MicRecorder) Close() error {
	return portaudio.Terminate()
}

// Record listens until the speaker pauses, the length limit is reached or
// ctx is cancelled
func (r *MicRecorder) Record(ctx context.Context) ([]float32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf := make([]float32, FrameSize)
	stream, err := portaudio.OpenDefaultStream(1, 0, targetRate, len(buf), buf)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, err
	}
	defer stream.Stop()

	seg := newSegmenter(r.maxSeconds)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := stream.Read(); err != nil {
			return nil, err
		}
		if seg.feed(buf) {
			break
		}
	}

	log.Debug("Captured %d samples", len(seg.out))
	return seg.out, nil
}
