package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iksnae/voice-pulse/internal"
)

func TestLiveCommand_Flags(t *testing.T) {
	for _, name := range []string{"input", "follow", "source", "queue", "save"} {
		if liveCmd.Flag(name) == nil {
			t.Errorf("live command should have --%s flag", name)
		}
	}
}

func TestRedirectLogs(t *testing.T) {
	t.Run("discard", func(t *testing.T) {
		restore, err := redirectLogs("")
		if err != nil {
			t.Fatalf("redirectLogs(\"\") error = %v", err)
		}
		internal.LogInfo("dropped")
		restore()
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "live.log")
		restore, err := redirectLogs(path)
		if err != nil {
			t.Fatalf("redirectLogs() error = %v", err)
		}
		internal.LogInfo("dashboard opened")
		internal.SyncLogger()
		restore()

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("log file not written: %v", err)
		}
		if !strings.Contains(string(data), "dashboard opened") {
			t.Errorf("log file = %q, want it to contain the message", data)
		}
	})

	t.Run("unwritable path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "live.log")
		if _, err := redirectLogs(path); err == nil {
			t.Error("redirectLogs() should fail for a missing directory")
		}
	})
}
