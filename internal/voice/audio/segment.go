// Package audio captures utterances from the microphone or from audio files
// and converts them to the 16 kHz mono PCM the transcribers expect.
package audio

import "math"

const (
	// FrameSize is 20ms at 16 kHz
	FrameSize = 320
	// SilenceThreshold is the RMS level below which a frame counts as silence
	SilenceThreshold = 0.015
	// TrailingSilenceFrames ends an utterance after 600ms of silence
	TrailingSilenceFrames = 30
)

// segmenter accumulates frames of one utterance. Leading silence is dropped,
// trailing silence ends the utterance, maxFrames bounds it.
type segmenter struct {
	threshold     float64
	silenceFrames int
	maxFrames     int

	speaking bool
	silent   int
	frames   int
	out      []float32
}

func newSegmenter(maxSeconds int) *segmenter {
	if maxSeconds <= 0 {
		maxSeconds = 10
	}
	return &segmenter{
		threshold:     SilenceThreshold,
		silenceFrames: TrailingSilenceFrames,
		maxFrames:     maxSeconds * 16000 / FrameSize,
		out:           make([]float32, 0, 16000*3),
	}
}

// feed adds one frame and reports whether the utterance is complete
func (s *segmenter) feed(frame []float32) bool {
	s.frames++

	if frameRMS(frame) > s.threshold {
		s.speaking = true
		s.silent = 0
		s.out = append(s.out, frame...)
	} else if s.speaking {
		s.silent++
		if s.silent >= s.silenceFrames {
			return true
		}
		s.out = append(s.out, frame...)
	}

	return s.frames >= s.maxFrames
}

func frameRMS(f []float32) float64 {
	if len(f) == 0 {
		return 0
	}
	var s float64
	for _, x := range f {
		s += float64(x * x)
	}
	return math.Sqrt(s / float64(len(f)))
}
