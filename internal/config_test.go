package internal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name    string
		path    string
		want    Config
		wantErr bool
	}{
		{name: "empty path", path: "", want: DefaultConfig()},
		{name: "missing file", path: filepath.Join(dir, "missing.yaml"), want: DefaultConfig()},
		{
			name: "overrides",
			path: write("ok.yaml", "source: none\nqueue_size: 4\nformat: md\n"),
			want: Config{Source: SourceNone, QueueSize: 4, Format: "md", OutputDir: "./exports"},
		},
		{name: "bad yaml", path: write("bad.yaml", "source: [\n"), want: DefaultConfig(), wantErr: true},
		{name: "bad source", path: write("src.yaml", "source: microphone\n"), want: DefaultConfig(), wantErr: true},
		{name: "negative queue", path: write("q.yaml", "queue_size: -1\n"), want: DefaultConfig(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadConfig(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var cfgErr *ConfigError
				if !errors.As(err, &cfgErr) {
					t.Errorf("LoadConfig() error = %T, want *ConfigError", err)
				}
			}
			if got != tt.want {
				t.Errorf("LoadConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
