package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// SourceStdin reads a transcript stream from standard input
	SourceStdin = "stdin"
	// SourceNone disables speech input; only manual entry is possible
	SourceNone = "none"

	configFileName = ".voice-pulse.yaml"
)

// Config holds user preferences
type Config struct {
	Source    string `yaml:"source"`     // "stdin" or "none"
	Follow    string `yaml:"follow"`     // transcript file to tail
	QueueSize int    `yaml:"queue_size"` // buffered recognizer events
	Format    string `yaml:"format"`     // export format
	OutputDir string `yaml:"output_dir"` // export directory
	LogFile   string `yaml:"log_file"`   // log destination for the live dashboard
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Source:    SourceStdin,
		QueueSize: DefaultQueueSize,
		Format:    "json",
		OutputDir: "./exports",
	}
}

// DefaultConfigPath returns ~/.voice-pulse.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configFileName), nil
}

// LoadConfig reads a YAML config file on top of the defaults. A missing file
// is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, &ConfigError{Path: path, Err: err}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), &ConfigError{Path: path, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), &ConfigError{Path: path, Err: err}
	}
	return cfg, nil
}

// Validate checks field values
func (c Config) Validate() error {
	switch c.Source {
	case SourceStdin, SourceNone:
	default:
		return fmt.Errorf("unsupported source %q (supported: %s, %s)", c.Source, SourceStdin, SourceNone)
	}
	if c.QueueSize < 0 {
		return fmt.Errorf("queue_size must not be negative, got %d", c.QueueSize)
	}
	return nil
}
