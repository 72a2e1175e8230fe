package internal

import (
	"bufio"
	"context"
	"errors"
	"io"
)

// ErrRecognizerUnavailable is returned when no recognition engine is present
var ErrRecognizerUnavailable = errors.New("speech recognition is not available")

// Recognizer is a source of recognition events. Listen blocks until the
// source is exhausted, fails, or ctx is done; it must not close events.
type Recognizer interface {
	Name() string
	Available() bool
	Listen(ctx context.Context, events chan<- Event) error
}

// UnavailableRecognizer stands in when no engine is present
type UnavailableRecognizer struct{}

func (UnavailableRecognizer) Name() string    { return "unavailable" }
func (UnavailableRecognizer) Available() bool { return false }

func (UnavailableRecognizer) Listen(ctx context.Context, events chan<- Event) error {
	return ErrRecognizerUnavailable
}

// StreamRecognizer reads a transcript stream line by line, one reporting
// cycle per line (see DecodeLine)
type StreamRecognizer struct {
	Source string
	Reader io.Reader
}

// NewStreamRecognizer creates a recognizer over r
func NewStreamRecognizer(source string, r io.Reader) *StreamRecognizer {
	return &StreamRecognizer{Source: source, Reader: r}
}

func (s *StreamRecognizer) Name() string    { return s.Source }
func (s *StreamRecognizer) Available() bool { return s.Reader != nil }

// Listen forwards every decoded line and reports the end of the stream
func (s *StreamRecognizer) Listen(ctx context.Context, events chan<- Event) error {
	if s.Reader == nil {
		return ErrRecognizerUnavailable
	}
	if !send(ctx, events, Event{Kind: EventStart}) {
		return nil
	}

	scanner := bufio.NewScanner(s.Reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if !emitLine(ctx, events, s.Source, scanner.Text()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return &RecognizerError{Source: s.Source, Op: "read", Err: err}
	}

	send(ctx, events, Event{Kind: EventEnd})
	return nil
}

// SelectRecognizer picks the recognition strategy once at startup. A follow
// path wins over input; a nil input or source "none" means no engine.
func SelectRecognizer(cfg Config, input io.Reader) Recognizer {
	switch {
	case cfg.Follow != "":
		return NewFollowRecognizer(cfg.Follow)
	case cfg.Source == SourceNone, input == nil:
		return UnavailableRecognizer{}
	default:
		return NewStreamRecognizer(cfg.Source, input)
	}
}
