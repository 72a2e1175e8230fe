package export

import (
	"io"

	"github.com/iksnae/voice-pulse/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports the full snapshot in YAML format
type YAMLExporter struct{}

// Export exports a snapshot to YAML format
func (e *YAMLExporter) Export(state *internal.State, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	enc.SetIndent(2)
	return enc.Encode(state)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
