package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Hypothesis is one recognizer result in a JSON transcript line
type Hypothesis struct {
	Transcript string `json:"transcript"`
	IsFinal    bool   `json:"isFinal"`
}

// ResultLine builds a JSON transcript line for one reporting cycle
func ResultLine(t *testing.T, resultIndex int, results ...Hypothesis) string {
	t.Helper()
	return string(JSONMarshal(t, struct {
		ResultIndex int          `json:"resultIndex"`
		Results     []Hypothesis `json:"results"`
	}{ResultIndex: resultIndex, Results: results}))
}

// WriteTranscript writes lines as a transcript file in dir and returns its path
func WriteTranscript(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create transcript directory: %v", err)
	}
	data := strings.Join(lines, "\n")
	if len(lines) > 0 {
		data += "\n"
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write transcript %s: %v", path, err)
	}
	return path
}

// AppendTranscript appends lines to an existing transcript file
func AppendTranscript(t *testing.T, path string, lines ...string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("Failed to open transcript %s: %v", path, err)
	}
	defer func() { _ = f.Close() }()
	for _, line := range lines {
		if _, err := f.WriteString(line + "\n"); err != nil {
			t.Fatalf("Failed to append to transcript %s: %v", path, err)
		}
	}
}
