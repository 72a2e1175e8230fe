package internal

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// DefaultQueueSize is the event buffer between a recognizer and the loop
const DefaultQueueSize = 16

// Loop feeds recognizer events into a session one at a time
type Loop struct {
	session   *Session
	queueSize int
}

// NewLoop creates a loop over session. A non-positive queueSize falls back to
// DefaultQueueSize.
func NewLoop(session *Session, queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Loop{session: session, queueSize: queueSize}
}

// Run listens on rec until it is exhausted or ctx is done. Each event is
// fully applied before the next is read, and publish (if set) receives the
// resulting snapshot. Recognizer failures only flip Listening off; Run
// returns nil for them. Cancellation keeps what was already accepted.
func (l *Loop) Run(ctx context.Context, rec Recognizer, publish func(State)) error {
	emit := func() {
		if publish != nil {
			publish(l.session.Snapshot())
		}
	}

	if !rec.Available() {
		LogInfo("recognizer %s unavailable, not listening", rec.Name())
		l.session.SetListening(false)
		emit()
		return nil
	}

	events := make(chan Event, l.queueSize)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		produce(gctx, rec, events)
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				l.session.SetListening(false)
				emit()
				return nil
			case ev, ok := <-events:
				if !ok {
					l.session.SetListening(false)
					emit()
					return nil
				}
				l.session.Handle(ev)
				emit()
			}
		}
	})

	return g.Wait()
}

// Feed runs rec in its own goroutine and returns the channel it reports on,
// for consumers with their own event loop. The channel is closed when rec
// stops. done is closed once the goroutine has returned; wait on it after
// cancelling ctx before tearing down anything rec uses.
func Feed(ctx context.Context, rec Recognizer, queueSize int) (events <-chan Event, done <-chan struct{}) {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	ch := make(chan Event, queueSize)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		produce(ctx, rec, ch)
	}()
	return ch, finished
}

// produce runs rec, turns a failure into an error event and closes events
func produce(ctx context.Context, rec Recognizer, events chan Event) {
	defer close(events)
	err := rec.Listen(ctx, events)
	if err != nil && !errors.Is(err, context.Canceled) {
		send(ctx, events, Event{Kind: EventError, Err: err})
	}
}
