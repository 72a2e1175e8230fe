package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iksnae/voice-pulse/internal"
)

func TestJSONLExporter_Export(t *testing.T) {
	tests := []struct {
		name      string
		state     *internal.State
		wantLines int
		want      []string
	}{
		{
			name:      "empty session",
			state:     internal.CreateTestStateWithFragments("test1", nil),
			wantLines: 0,
		},
		{
			name:      "sample session",
			state:     internal.CreateTestState("test2"),
			wantLines: 3,
			want: []string{
				`"id":"seg-1"`,
				`"seq":2`,
				`"text":"but I'm worried about the risk"`,
				`"timestamp":"2024-05-01T09:00:02Z"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&JSONLExporter{}).Export(tt.state, &buf); err != nil {
				t.Fatalf("Export() error = %v", err)
			}

			output := strings.TrimSpace(buf.String())
			var lines []string
			if output != "" {
				lines = strings.Split(output, "\n")
			}
			if len(lines) != tt.wantLines {
				t.Fatalf("Export() lines = %d, want %d", len(lines), tt.wantLines)
			}

			for i, line := range lines {
				var obj map[string]interface{}
				if err := json.Unmarshal([]byte(line), &obj); err != nil {
					t.Errorf("line %d is not valid JSON: %v", i+1, err)
				}
			}
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("Export() output missing %s", want)
				}
			}
		})
	}
}

func TestJSONLExporter_Extension(t *testing.T) {
	if got := (&JSONLExporter{}).Extension(); got != "jsonl" {
		t.Errorf("Extension() = %v, want jsonl", got)
	}
}
