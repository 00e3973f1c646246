package voice

import (
	"context"
	"sync"
	"time"

	"voxplorer/internal/errors"
	"voxplorer/internal/log"
)

// State of the dispatcher. There is no other state: a command is executed
// by the caller after the dispatcher is back to Idle.
type State int

const (
	Idle State = iota
	Listening
)

func (s State) String() string {
	if s == Listening {
		return "listening"
	}
	return "idle"
}

// DoneFunc receives the outcome of one listen. It runs on the dispatcher's
// goroutine; UI code must hop back to its own goroutine.
type DoneFunc func(Command, error)

// Dispatcher captures one utterance at a time and turns it into a Command
type Dispatcher struct {
	recorder    Recorder
	transcriber Transcriber
	classifier  IntentClassifier
	announcer   *Announcer
	cue         Cue
	timeout     time.Duration
	onState     func(State)

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithClassifier sets the fallback used when the grammar recognises nothing
func WithClassifier(c IntentClassifier) Option {
	return func(d *Dispatcher) { d.classifier = c }
}

// WithAnnouncer speaks the "Say a command" prompt before capture
func WithAnnouncer(a *Announcer) Option {
	return func(d *Dispatcher) { d.announcer = a }
}

// WithCue plays a sound right before capture
func WithCue(c Cue) Option {
	return func(d *Dispatcher) { d.cue = c }
}

// WithTimeout bounds a whole listen, prompt and transcription included
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) { d.timeout = timeout }
}

// WithStateHook is called on every Idle/Listening transition
func WithStateHook(fn func(State)) Option {
	return func(d *Dispatcher) { d.onState = fn }
}

// NewDispatcher creates an idle dispatcher
func NewDispatcher(rec Recorder, tr Transcriber, opts ...Option) *Dispatcher {
	d := &Dispatcher{recorder: rec, transcriber: tr}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State returns the current state
func (d *Dispatcher) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Start begins listening in the background and returns immediately.
// done is called exactly once with the command or the error after the
// dispatcher is Idle again. Starting while listening returns
// ErrAlreadyListening and does not call done.
func (d *Dispatcher) Start(ctx context.Context, done DoneFunc) error {
	d.mu.Lock()
	if d.state == Listening {
		d.mu.Unlock()
		return errors.ErrAlreadyListening
	}
	if d.recorder == nil || d.transcriber == nil {
		d.mu.Unlock()
		return errors.ErrVoiceUnavailable
	}

	var cancel context.CancelFunc
	if d.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	d.state = Listening
	d.cancel = cancel
	d.mu.Unlock()

	d.notify(Listening)
	log.Info("Voice: listening")

	go func() {
		cmd, err := d.listen(ctx)

		d.mu.Lock()
		d.state = Idle
		d.cancel = nil
		d.mu.Unlock()
		cancel()

		d.notify(Idle)
		if err != nil {
			log.LogWithError(err).Info("Voice: no command")
		} else {
			log.LogWithFields(log.F("command", cmd.String())).Info("Voice: command recognised")
		}
		if done != nil {
			done(cmd, err)
		}
	}()
	return nil
}

// Cancel aborts an in-flight listen. It is a no-op when idle.
func (d *Dispatcher) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		log.Debug("Voice: cancelling listen")
		d.cancel()
	}
}

// Interpret parses text with the grammar and falls back to the classifier
// when the grammar recognises no command
func (d *Dispatcher) Interpret(ctx context.Context, text string) (Command, error) {
	cmd, err := Parse(text)
	if err == nil || !errors.IsNotRecognized(err) || d.classifier == nil {
		return cmd, err
	}

	log.Debug("Grammar did not match %q, asking classifier", text)
	alt, cerr := d.classifier.Classify(ctx, text)
	if cerr != nil {
		log.LogWithError(cerr).Warn("Intent classifier failed")
		return Command{}, err
	}
	if alt.Action == NoAction {
		return Command{}, err
	}
	alt.Text = text
	return alt, nil
}

func (d *Dispatcher) listen(ctx context.Context) (Command, error) {
	if d.announcer != nil {
		if err := d.announcer.SayWait(ctx, MsgPrompt); err != nil && ctx.Err() != nil {
			return Command{}, ctx.Err()
		}
	}
	if d.cue != nil {
		if err := d.cue.Play(ctx); err != nil {
			log.Debug("Cue failed: %v", err)
		}
	}

	pcm, err := d.recorder.Record(ctx)
	if ctx.Err() != nil {
		return Command{}, ctx.Err()
	}
	if err != nil {
		return Command{}, errors.NewVoiceError("recording failed", "record", errors.SpeechNotUnderstood, err)
	}
	if len(pcm) == 0 {
		return Command{}, errors.ErrNotUnderstood
	}

	text, err := d.transcriber.Transcribe(ctx, pcm)
	if ctx.Err() != nil {
		return Command{}, ctx.Err()
	}
	if err != nil {
		return Command{}, errors.NewVoiceError("transcription failed", "transcribe", errors.SpeechNotUnderstood, err)
	}
	log.Info("Recognized command: %s", text)

	return d.Interpret(ctx, text)
}

func (d *Dispatcher) notify(s State) {
	if d.onState != nil {
		d.onState(s)
	}
}
