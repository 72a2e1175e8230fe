package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/iksnae/voice-pulse/internal"
)

func TestJSONExporter_Export(t *testing.T) {
	tests := []struct {
		name  string
		state *internal.State
	}{
		{name: "sample session", state: internal.CreateTestState("test1")},
		{name: "empty session", state: internal.CreateTestStateWithFragments("test2", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&JSONExporter{}).Export(tt.state, &buf); err != nil {
				t.Fatalf("Export() error = %v", err)
			}

			if !strings.Contains(buf.String(), "\n  \"session_id\"") {
				t.Errorf("Export() output should be indented:\n%s", buf.String())
			}

			var got internal.State
			if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
				t.Fatalf("Export() produced invalid JSON: %v", err)
			}
			if diff := cmp.Diff(*tt.state, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("decoded snapshot mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJSONExporter_Extension(t *testing.T) {
	if got := (&JSONExporter{}).Extension(); got != "json" {
		t.Errorf("Extension() = %v, want json", got)
	}
}
