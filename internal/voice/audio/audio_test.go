package audio

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"voxplorer/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tone(n int, amp float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = amp * float32(math.Sin(float64(i)*0.3))
	}
	return out
}

func TestSegmenter(t *testing.T) {
	seg := newSegmenter(10)
	silence := make([]float32, FrameSize)
	speech := tone(FrameSize, 0.5)

	// Leading silence is dropped
	for i := 0; i < 5; i++ {
		assert.False(t, seg.feed(silence))
	}
	assert.Empty(t, seg.out)

	for i := 0; i < 10; i++ {
		assert.False(t, seg.feed(speech))
	}
	assert.Len(t, seg.out, 10*FrameSize)

	// Short pauses are kept, a long one ends the utterance
	done := false
	n := 0
	for !done {
		done = seg.feed(silence)
		n++
	}
	assert.Equal(t, TrailingSilenceFrames, n)
}

func TestSegmenterMaxLength(t *testing.T) {
	seg := newSegmenter(1)
	speech := tone(FrameSize, 0.5)
	frames := 0
	for !seg.feed(speech) {
		frames++
	}
	assert.Equal(t, 16000/FrameSize-1, frames)
}

func TestWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmd.wav")
	pcm := tone(8000, 0.25)

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, EncodeWAV(f, pcm, 8000))
	require.NoError(t, f.Close())

	got, err := FileRecorder{Path: path}.Record(context.Background())
	require.NoError(t, err)
	// 8 kHz is resampled to 16 kHz
	assert.InDelta(t, 16000, len(got), 2)

	limited, err := FileRecorder{Path: path, MaxSamples: 100}.Record(context.Background())
	require.NoError(t, err)
	assert.Len(t, limited, 100)
}

func TestDecodeFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := DecodeFile(filepath.Join(dir, "missing.wav"))
	assert.True(t, errors.IsFileNotFound(err))

	junk := filepath.Join(dir, "junk.bin")
	require.NoError(t, os.WriteFile(junk, []byte("definitely not audio"), 0644))
	_, err = DecodeFile(junk)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = FileRecorder{Path: junk}.Record(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, []float32{0.5, -0.5}, downmixInterleaved([]float32{1, 0, 0, -1}, 2))
	assert.Len(t, resampleLinear(make([]float32, 320), 32000, 16000), 160)
	assert.Equal(t, []float32{-1, 0.5}, intSliceToFloat32([]int{-40000, 16384}, 16))
	assert.Equal(t, 0.0, frameRMS(nil))
}
