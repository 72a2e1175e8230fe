package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/iksnae/voice-pulse/internal"
)

// JSONLExporter exports the segment trail, one segment per line
type JSONLExporter struct{}

// Export exports the trail to JSONL format
func (e *JSONLExporter) Export(state *internal.State, w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, seg := range state.Segments {
		obj := map[string]interface{}{
			"id":   seg.ID,
			"seq":  seg.Seq,
			"text": seg.Text,
		}

		if !seg.Timestamp.IsZero() {
			obj["timestamp"] = seg.Timestamp.Format(time.RFC3339)
		}

		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode segment: %w", err)
		}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
