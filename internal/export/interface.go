package export

import (
	"fmt"
	"io"

	"github.com/iksnae/voice-pulse/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(state *internal.State, w io.Writer) error
	Extension() string
}

// Formats lists the supported format names
var Formats = []string{"json", "jsonl", "yaml", "md", "sqlite"}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "jsonl":
		return &JSONLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "sqlite", "db":
		return &SQLiteExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, jsonl, yaml, md, sqlite)", format)
	}
}
