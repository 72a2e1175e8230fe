package internal

import (
	"fmt"
	"time"
)

// FixedClock returns a clock that starts at start and advances by step on
// every call
func FixedClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(step)
		return t
	}
}

// SequentialIDs hands out predictable segment ids
type SequentialIDs struct{}

func (SequentialIDs) NextID(seq int, at time.Time) string {
	return fmt.Sprintf("seg-%d", seq)
}

// NewTestSession creates a session with a fixed clock and predictable ids
func NewTestSession(id string) *Session {
	return NewSession(
		WithSessionID(id),
		WithClock(FixedClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), time.Second)),
		WithIDSource(SequentialIDs{}),
	)
}

// CreateTestState creates a state with sample fragments applied
func CreateTestState(id string) *State {
	s := NewTestSession(id)
	for _, fragment := range []string{
		"This is a great win for the team",
		"but I'm worried about the risk",
		"the team needs a clear plan for the launch",
	} {
		s.Submit(fragment)
	}
	state := s.Snapshot()
	return &state
}

// CreateTestStateWithFragments creates a state from custom fragments
func CreateTestStateWithFragments(id string, fragments []string) *State {
	s := NewTestSession(id)
	for _, fragment := range fragments {
		s.Submit(fragment)
	}
	state := s.Snapshot()
	return &state
}
