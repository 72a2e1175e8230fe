package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/voice-pulse/internal"
)

func TestMarkdownExporter_Export(t *testing.T) {
	tests := []struct {
		name    string
		state   *internal.State
		want    []string
		notWant []string
	}{
		{
			name:  "sample session",
			state: internal.CreateTestState("test1"),
			want: []string{
				"# Session test1",
				"**Fragments:** 3",
				"**Keywords:** team",
				"## Clusters",
				"| Team |",
				"## Insights",
				"**Conversation Velocity**",
				"## Recent segments",
				"1. (09:00:00) This is a great win for the team",
				"3. (09:00:02) the team needs a clear plan for the launch",
			},
		},
		{
			name:  "empty session",
			state: internal.CreateTestStateWithFragments("empty", nil),
			want: []string{
				"# Session empty",
				"**Fragments:** 0",
				"> " + internal.IdlePrompt,
				"## Insights",
			},
			notWant: []string{"## Clusters", "## Recent segments", "**Keywords:**", "**Updated:**"},
		},
		{
			name:  "escapes table and emphasis markers",
			state: internal.CreateTestStateWithFragments("escape", []string{"pipes | and **stars** here"}),
			want:  []string{`pipes \| and \*\*stars\*\* here`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&MarkdownExporter{}).Export(tt.state, &buf); err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			got := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Export() output missing %q:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.notWant {
				if strings.Contains(got, unwanted) {
					t.Errorf("Export() output should not contain %q", unwanted)
				}
			}
		})
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "plain text", want: "plain text"},
		{input: "**bold**", want: `\*\*bold\*\*`},
		{input: "__under__", want: `\_\_under\_\_`},
		{input: "a | b", want: `a \| b`},
	}

	for _, tt := range tests {
		if got := escapeMarkdown(tt.input); got != tt.want {
			t.Errorf("escapeMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
