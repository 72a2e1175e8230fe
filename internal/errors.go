package internal

import (
	"fmt"
	"unicode/utf8"
)

// RecognizerError represents a failure of the speech input source
type RecognizerError struct {
	Source string
	Op     string // "open", "read", "watch"
	Err    error
}

func (e *RecognizerError) Error() string {
	return fmt.Sprintf("recognizer error: %s %s: %v", e.Op, e.Source, e.Err)
}

func (e *RecognizerError) Unwrap() error {
	return e.Err
}

// DecodeError represents a transcript line that could not be decoded
type DecodeError struct {
	Line string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error %q: %v", truncate(e.Line, 60), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ConfigError represents an unreadable or invalid configuration file
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// truncate keeps the first n runes of s
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
