// Package engine wires the configured capture, transcription, speech and
// intent backends into a voice.Dispatcher.
package engine

import (
	"io"
	"sync"
	"time"

	"voxplorer/internal/config"
	"voxplorer/internal/log"
	"voxplorer/internal/voice"
	"voxplorer/internal/voice/audio"
	"voxplorer/internal/voice/cloud"
	"voxplorer/internal/voice/nlu"
	"voxplorer/internal/voice/stt"
	"voxplorer/internal/voice/tts"

	openai "github.com/openai/openai-go/v3"
)

// Engine owns the voice pipeline of one application run
type Engine struct {
	Dispatcher *voice.Dispatcher
	Announcer  *voice.Announcer

	available bool
	closers   []io.Closer
	closeOnce sync.Once
	closeErr  error
}

type options struct {
	recorder    voice.Recorder
	transcriber voice.Transcriber
	speaker     voice.Speaker
	stateHook   func(voice.State)
}

// Option overrides part of the pipeline
type Option func(*options)

// WithRecorder replaces the microphone, e.g. with an audio.FileRecorder
func WithRecorder(r voice.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// WithTranscriber replaces the configured speech-to-text engine
func WithTranscriber(t voice.Transcriber) Option {
	return func(o *options) { o.transcriber = t }
}

// WithSpeaker replaces the configured speech output
func WithSpeaker(s voice.Speaker) Option {
	return func(o *options) { o.speaker = s }
}

// WithStateHook is forwarded to the dispatcher
func WithStateHook(fn func(voice.State)) Option {
	return func(o *options) { o.stateHook = fn }
}

// New builds the pipeline. Backends that fail to initialise are logged and
// left out: the explorer keeps working and the voice button reports that
// voice commands are unavailable.
func New(cfg *config.Config, opts ...Option) *Engine {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	e := &Engine{}

	speaker := o.speaker
	if speaker == nil {
		var closer io.Closer
		speaker, closer = tts.New(cfg)
		e.closers = append(e.closers, closer)
	}
	e.Announcer = voice.NewAnnouncer(speaker)

	dopts := []voice.Option{
		voice.WithAnnouncer(e.Announcer),
		voice.WithTimeout(time.Duration(cfg.Voice.MaxUtteranceSeconds)*time.Second + time.Minute),
	}
	if o.stateHook != nil {
		dopts = append(dopts, voice.WithStateHook(o.stateHook))
	}

	enabled := cfg.Voice.Enabled && cfg.Voice.Engine != config.EngineNone
	recorder, transcriber := o.recorder, o.transcriber
	if enabled || recorder != nil || transcriber != nil {
		if recorder == nil {
			recorder = e.microphone(cfg)
		}
		if transcriber == nil {
			transcriber = e.transcriber(cfg)
		}
		if cfg.Voice.OpenAI.NLUFallback {
			if client, err := cloud.NewClient(cfg); err == nil {
				dopts = append(dopts, voice.WithClassifier(nlu.New(client, cfg.Voice.OpenAI.NLUModel)))
			} else {
				log.LogWithError(err).Warn("Intent fallback disabled")
			}
		}
		if cfg.Voice.CueSound != "" && o.recorder == nil {
			if cue, err := audio.NewCue(cfg.Voice.CueSound); err == nil {
				dopts = append(dopts, voice.WithCue(cue))
			} else {
				log.LogWithError(err).Warn("Listening cue disabled")
			}
		}
	}

	e.available = recorder != nil && transcriber != nil
	if !e.available {
		recorder, transcriber = nil, nil
	}
	e.Dispatcher = voice.NewDispatcher(recorder, transcriber, dopts...)

	log.LogWithFields(
		log.F("engine", cfg.Voice.Engine),
		log.F("available", e.available),
	).Info("Voice pipeline ready")
	return e
}

func (e *Engine) microphone(cfg *config.Config) voice.Recorder {
	mic, err := audio.NewMicRecorder(cfg.Voice.MaxUtteranceSeconds)
	if err != nil {
		log.LogWithError(err).Warn("Microphone unavailable")
		return nil
	}
	e.closers = append(e.closers, mic)
	return mic
}

func (e *Engine) transcriber(cfg *config.Config) voice.Transcriber {
	switch cfg.Voice.Engine {
	case config.EngineWhisper:
		w, err := stt.NewWhisper(cfg.Voice.WhisperModel, cfg.Voice.Language)
		if err != nil {
			log.LogWithError(err).Warn("Whisper unavailable")
			return nil
		}
		e.closers = append(e.closers, w)
		return w

	case config.EngineOpenAI:
		client, err := cloud.NewClient(cfg)
		if err != nil {
			log.LogWithError(err).Warn("Cloud transcription unavailable")
			return nil
		}
		return openAITranscriber(client, cfg)
	}
	return nil
}

func openAITranscriber(client openai.Client, cfg *config.Config) voice.Transcriber {
	return stt.NewOpenAI(client, cfg.Voice.OpenAI.TranscribeModel, cfg.Voice.Language)
}

// Available reports whether both capture and transcription are ready
func (e *Engine) Available() bool {
	return e.available
}

// Close stops listening, drains speech and releases the backends. The
// backends are released once; later calls return the first result.
func (e *Engine) Close() error {
	e.closeOnce.Do(func() {
		e.Dispatcher.Cancel()
		e.Announcer.Close()
		for i := len(e.closers) - 1; i >= 0; i-- {
			if err := e.closers[i].Close(); err != nil && e.closeErr == nil {
				e.closeErr = err
			}
		}
	})
	return e.closeErr
}
