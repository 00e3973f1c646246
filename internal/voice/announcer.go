package voice

import (
	"context"
	"sync"

	"voxplorer/internal/log"
)

type announcement struct {
	ctx  context.Context
	text string
	ack  chan error // nil for fire-and-forget
}

// Announcer speaks feedback sentences one at a time on its own goroutine so
// callers on the UI goroutine never wait for speech
type Announcer struct {
	speaker Speaker
	queue   chan announcement
	wg      sync.WaitGroup
	once    sync.Once
	closed  chan struct{}
}

// NewAnnouncer starts the speaking goroutine. Close stops it.
func NewAnnouncer(s Speaker) *Announcer {
	a := &Announcer{
		speaker: s,
		queue:   make(chan announcement, 16),
		closed:  make(chan struct{}),
	}
	a.wg.Add(1)
	go a.run()
	return a
}

func (a *Announcer) run() {
	defer a.wg.Done()
	for {
		select {
		case <-a.closed:
			return
		case item := <-a.queue:
			err := item.ctx.Err()
			if err == nil {
				err = a.speaker.Speak(item.ctx, item.text)
				if err != nil {
					log.LogWithFields(log.F("text", item.text), log.F("error", err.Error())).Warn("Speech failed")
				}
			}
			if item.ack != nil {
				item.ack <- err
			}
		}
	}
}

// Say queues text and returns immediately. When the queue is full the
// sentence is dropped rather than blocking the caller.
func (a *Announcer) Say(text string) {
	if text == "" {
		return
	}
	select {
	case <-a.closed:
		return
	default:
	}
	select {
	case a.queue <- announcement{ctx: context.Background(), text: text}:
	default:
		log.Warn("Announcement queue full, dropping %q", text)
	}
}

// SayWait queues text and blocks until it has been spoken, ctx is done or
// the announcer is closed
func (a *Announcer) SayWait(ctx context.Context, text string) error {
	ack := make(chan error, 1)
	select {
	case a.queue <- announcement{ctx: ctx, text: text, ack: ack}:
	case <-ctx.Done():
		return ctx.Err()
	case <-a.closed:
		return context.Canceled
	}
	select {
	case err := <-ack:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-a.closed:
		return context.Canceled
	}
}

// Close stops the goroutine; queued sentences that were not spoken yet are dropped
func (a *Announcer) Close() {
	a.once.Do(func() {
		close(a.closed)
		a.wg.Wait()
	})
}
