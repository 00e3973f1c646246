//go:build voice

package audio

import (
	"context"
	"os"
	"sync"
	"time"

	"voxplorer/internal/errors"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// BeepCue plays a short mp3 before listening starts
type BeepCue struct {
	path string
	once sync.Once
	err  error
}

// NewCue checks the cue file exists; it is decoded on every Play
func NewCue(path string) (*BeepCue, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NewFileError("cue sound not found", path, errors.FileNotFound, err)
	}
	return &BeepCue{path: path}, nil
}

// Play blocks until the cue has finished or ctx is done
func (c *BeepCue) Play(ctx context.Context) error {
	f, err := os.Open(c.path)
	if err != nil {
		return err
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return err
	}
	defer streamer.Close()

	c.once.Do(func() {
		c.err = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	})
	if c.err != nil {
		return c.err
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}
