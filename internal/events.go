package internal

import "strings"

// EventKind identifies what a recognizer is reporting
type EventKind int

const (
	EventStart EventKind = iota
	EventResult
	EventEnd
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventResult:
		return "result"
	case EventEnd:
		return "end"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is one recognition hypothesis within a reporting cycle
type Result struct {
	Transcript string
	Final      bool
}

// Event is one reporting cycle from a recognizer. Results before ResultIndex
// were already reported in earlier cycles and are skipped.
type Event struct {
	Kind        EventKind
	ResultIndex int
	Results     []Result
	Err         error
}

// Handle applies a recognizer event. Every final result is a separate
// transition, applied in reported order; interim text only replaces the live
// preview. Errors are logged here and only surface as Listening=false.
func (s *Session) Handle(ev Event) {
	switch ev.Kind {
	case EventStart:
		s.SetListening(true)
	case EventResult:
		s.applyResults(ev)
	case EventEnd:
		s.SetListening(false)
	case EventError:
		if ev.Err != nil {
			LogWarn("recognizer stopped: %v", ev.Err)
		}
		s.SetListening(false)
	}
}

func (s *Session) applyResults(ev Event) {
	start := ev.ResultIndex
	if start < 0 {
		start = 0
	}
	if start > len(ev.Results) {
		start = len(ev.Results)
	}

	var interim strings.Builder
	for _, result := range ev.Results[start:] {
		if result.Final {
			s.Submit(result.Transcript)
			continue
		}
		if interim.Len() > 0 {
			interim.WriteByte(' ')
		}
		interim.WriteString(strings.TrimSpace(result.Transcript))
	}
	s.SetLivePreview(strings.TrimSpace(interim.String()))
}
