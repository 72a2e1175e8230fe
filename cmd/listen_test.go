package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListenCommand(t *testing.T) {
	transcript := "this launch is going great\n~and the\n{\"resultIndex\":0,\"results\":[{\"transcript\":\"the team is worried about the budget\",\"isFinal\":true}]}\n"

	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "replies per accepted fragment",
			args:     []string{"listen"},
			contains: []string{"[1] ", "[2] "},
			excludes: []string{"… and the"},
		},
		{
			name:     "interim preview",
			args:     []string{"listen", "--preview"},
			contains: []string{"[1] ", "… and the", "[2] "},
		},
		{
			name:     "summary at end",
			args:     []string{"listen", "--summary"},
			contains: []string{"[2] ", "Signal map", "2 fragments"},
		},
		{
			name:     "no speech source",
			args:     []string{"listen", "--source", "none"},
			excludes: []string{"[1] "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, transcript, tt.args...)
			if err != nil {
				t.Fatalf("listen error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(out, unwanted) {
					t.Errorf("output should not contain %q:\n%s", unwanted, out)
				}
			}
		})
	}
}

func TestListenCommand_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.txt")
	if err := os.WriteFile(path, []byte("we shipped the release\nthe release went well\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "listen", "--input", path)
	if err != nil {
		t.Fatalf("listen --input error = %v", err)
	}
	if !strings.Contains(out, "[2] ") || !strings.Contains(out, "Release") {
		t.Errorf("output should reply to both lines of %s:\n%s", path, out)
	}
}

func TestListenCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing input file", args: []string{"listen", "--input", filepath.Join(t.TempDir(), "missing.txt")}},
		{name: "unsupported source", args: []string{"listen", "--source", "microphone"}},
		{name: "negative queue", args: []string{"listen", "--queue", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, "", tt.args...); err == nil {
				t.Errorf("%v should fail", tt.args)
			}
		})
	}
}
