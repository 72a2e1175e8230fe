package internal

import (
	"context"
	"encoding/json"
	"strings"
)

// interimPrefix marks a plain-text line as a non-final hypothesis
const interimPrefix = "~"

type wireResult struct {
	Transcript string `json:"transcript"`
	IsFinal    bool   `json:"isFinal"`
}

type wireEvent struct {
	ResultIndex int          `json:"resultIndex"`
	Results     []wireResult `json:"results"`
}

// DecodeLine turns one line of a transcript stream into a result event.
//
// JSON object lines carry a full reporting cycle:
//
//	{"resultIndex":0,"results":[{"transcript":"hello","isFinal":true}]}
//
// A plain line is a single final result, or an interim one when it starts
// with "~". Blank lines report false.
func DecodeLine(line string) (Event, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Event{}, false, nil
	}

	if strings.HasPrefix(trimmed, "{") {
		var wire wireEvent
		if err := json.Unmarshal([]byte(trimmed), &wire); err != nil {
			return Event{}, false, &DecodeError{Line: trimmed, Err: err}
		}
		ev := Event{
			Kind:        EventResult,
			ResultIndex: wire.ResultIndex,
			Results:     make([]Result, 0, len(wire.Results)),
		}
		for _, r := range wire.Results {
			ev.Results = append(ev.Results, Result{Transcript: r.Transcript, Final: r.IsFinal})
		}
		return ev, true, nil
	}

	if strings.HasPrefix(trimmed, interimPrefix) {
		text := strings.TrimSpace(strings.TrimPrefix(trimmed, interimPrefix))
		return Event{Kind: EventResult, Results: []Result{{Transcript: text}}}, true, nil
	}

	return Event{Kind: EventResult, Results: []Result{{Transcript: trimmed, Final: true}}}, true, nil
}

// emitLine decodes a line and forwards it. Undecodable lines are logged and
// skipped. It reports false once ctx is done.
func emitLine(ctx context.Context, events chan<- Event, source, line string) bool {
	ev, ok, err := DecodeLine(line)
	if err != nil {
		LogWarn("%s: skipping line: %v", source, err)
		return ctx.Err() == nil
	}
	if !ok {
		return ctx.Err() == nil
	}
	return send(ctx, events, ev)
}

func send(ctx context.Context, events chan<- Event, ev Event) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
