package export

import (
	"bytes"
	"testing"

	"github.com/iksnae/voice-pulse/internal"
)

func TestNewExporter(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		wantType string
		wantExt  string
		wantErr  bool
	}{
		{
			name:     "jsonl format",
			format:   "jsonl",
			wantType: "JSONLExporter",
			wantExt:  "jsonl",
		},
		{
			name:     "markdown format",
			format:   "md",
			wantType: "MarkdownExporter",
			wantExt:  "md",
		},
		{
			name:     "markdown format long",
			format:   "markdown",
			wantType: "MarkdownExporter",
			wantExt:  "md",
		},
		{
			name:     "yaml format",
			format:   "yaml",
			wantType: "YAMLExporter",
			wantExt:  "yaml",
		},
		{
			name:     "json format",
			format:   "json",
			wantType: "JSONExporter",
			wantExt:  "json",
		},
		{
			name:     "sqlite format",
			format:   "sqlite",
			wantType: "SQLiteExporter",
			wantExt:  "db",
		},
		{
			name:     "db alias",
			format:   "db",
			wantType: "SQLiteExporter",
			wantExt:  "db",
		},
		{
			name:    "unsupported format",
			format:  "xml",
			wantErr: true,
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewExporter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewExporter() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if got == nil {
				t.Fatal("NewExporter() returned nil exporter")
			}
			if gotType := typeName(got); gotType != tt.wantType {
				t.Errorf("NewExporter() type = %v, want %v", gotType, tt.wantType)
			}
			if ext := got.Extension(); ext != tt.wantExt {
				t.Errorf("Extension() = %v, want %v", ext, tt.wantExt)
			}
		})
	}
}

func TestFormats_AllConstructible(t *testing.T) {
	state := internal.CreateTestState("formats")
	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			exporter, err := NewExporter(format)
			if err != nil {
				t.Fatalf("NewExporter(%q) error = %v", format, err)
			}
			var buf bytes.Buffer
			if err := exporter.Export(state, &buf); err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			if buf.Len() == 0 {
				t.Error("Export() wrote nothing")
			}
		})
	}
}

func typeName(v interface{}) string {
	switch v.(type) {
	case *JSONLExporter:
		return "JSONLExporter"
	case *MarkdownExporter:
		return "MarkdownExporter"
	case *YAMLExporter:
		return "YAMLExporter"
	case *JSONExporter:
		return "JSONExporter"
	case *SQLiteExporter:
		return "SQLiteExporter"
	default:
		return "unknown"
	}
}
