package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/voice-pulse/internal"
)

// JSONExporter exports the full snapshot as pretty-printed JSON
type JSONExporter struct{}

// Export exports a snapshot to JSON format
func (e *JSONExporter) Export(state *internal.State, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(state)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
