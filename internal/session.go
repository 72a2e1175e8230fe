package internal

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// IDSource hands out segment identifiers
type IDSource interface {
	NextID(seq int, at time.Time) string
}

// ulidSource builds ULIDs from the segment timestamp. Monotonic entropy keeps
// ids distinct and ordered for fragments accepted within the same millisecond.
type ulidSource struct {
	entropy *ulid.MonotonicEntropy
}

func newULIDSource() *ulidSource {
	return &ulidSource{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (u *ulidSource) NextID(seq int, at time.Time) string {
	id, err := ulid.New(ulid.Timestamp(at), u.entropy)
	if err != nil {
		return fmt.Sprintf("segment-%d-%d", at.UnixMilli(), seq)
	}
	return id.String()
}

// Session owns the state of one listening session. It is not safe for
// concurrent use: a single goroutine (the transition loop or the TUI update
// loop) applies every change.
type Session struct {
	state State
	seq   int
	now   func() time.Time
	ids   IDSource
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithClock overrides the clock used for segment timestamps
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// WithIDSource overrides segment id generation
func WithIDSource(ids IDSource) SessionOption {
	return func(s *Session) { s.ids = ids }
}

// WithSessionID sets the session identifier instead of a random UUID
func WithSessionID(id string) SessionOption {
	return func(s *Session) { s.state.SessionID = id }
}

// NewSession creates an empty session
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		state: InitialState(uuid.New().String()),
		now:   time.Now,
		ids:   newULIDSource(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InitialState is the state of a session before any fragment is accepted
func InitialState(sessionID string) State {
	analysis := Analyze("")
	return State{
		SessionID: sessionID,
		Segments:  []Segment{},
		Analysis:  analysis,
		Insights:  BuildInsights(analysis),
		Reply:     GenerateReply("", analysis),
	}
}

// Transition applies one accepted fragment to prev and returns the new state.
// A fragment that trims to empty leaves prev untouched and reports false.
// prev is never mutated.
func Transition(prev State, fragment string, seg Segment) (State, bool) {
	text := strings.TrimSpace(fragment)
	if text == "" {
		return prev, false
	}
	seg.Text = text

	next := prev
	keep := prev.Segments
	if len(keep) >= MaxSegments {
		keep = keep[len(keep)-MaxSegments+1:]
	}
	next.Segments = make([]Segment, 0, len(keep)+1)
	next.Segments = append(next.Segments, keep...)
	next.Segments = append(next.Segments, seg)

	if prev.Corpus == "" {
		next.Corpus = text
	} else {
		next.Corpus = prev.Corpus + " " + text
	}

	next.Analysis = Analyze(next.Corpus)
	next.Insights = BuildInsights(next.Analysis)
	next.Reply = GenerateReply(text, next.Analysis)
	next.LivePreview = ""
	next.Accepted = prev.Accepted + 1
	next.UpdatedAt = seg.Timestamp
	return next, true
}

// Submit accepts a finalized fragment. Blank fragments are ignored and
// reported as not accepted.
func (s *Session) Submit(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	at := s.now()
	seg := Segment{
		ID:        s.ids.NextID(s.seq+1, at),
		Seq:       s.seq + 1,
		Timestamp: at,
	}
	next, ok := Transition(s.state, text, seg)
	if !ok {
		return false
	}
	s.seq++
	s.state = next
	LogDebug("accepted segment %d (%s): %d tokens in corpus", seg.Seq, seg.ID, next.Analysis.TokenCount)
	return true
}

// SetLivePreview replaces the transient interim text. It never touches the
// corpus or the analysis.
func (s *Session) SetLivePreview(text string) {
	s.state.LivePreview = text
}

// SetListening records whether the recognizer is currently delivering results
func (s *Session) SetListening(listening bool) {
	s.state.Listening = listening
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() State {
	return s.state.clone()
}
