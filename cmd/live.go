package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iksnae/voice-pulse/internal"
	"github.com/iksnae/voice-pulse/internal/tui"
	"github.com/spf13/cobra"
)

var (
	liveSource sourceFlags
	liveSave   bool
)

// liveCmd represents the live command
var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Open the live signal dashboard",
	Long: `Open a full-screen dashboard that updates as fragments arrive. Type into
the prompt to add fragments by hand; with --input or --follow a transcript
feeds the dashboard at the same time.

Logs go to log_file from the config, or nowhere, while the dashboard is open.
Use --save to export the final snapshot when the dashboard closes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, effective, closeInput, err := liveSource.recognizer(cmd, false)
		if err != nil {
			return err
		}
		defer closeInput()

		restore, err := redirectLogs(effective.LogFile)
		if err != nil {
			return err
		}
		defer restore()

		ctx, cancel := context.WithCancel(contextOrBackground(cmd.Context()))
		wait := func() {}
		// Runs before restore and closeInput: the recognizer may still be
		// logging or reading its input
		stop := func() {
			cancel()
			wait()
		}
		defer stop()

		var events <-chan internal.Event
		if rec.Available() {
			var done <-chan struct{}
			events, done = internal.Feed(ctx, rec, effective.QueueSize)
			wait = func() { <-done }
		} else {
			internal.LogInfo("recognizer %s unavailable, manual entry only", rec.Name())
		}

		session := internal.NewSession()
		program := tea.NewProgram(tui.New(session, events), tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("dashboard failed: %w", err)
		}
		stop()

		if !liveSave {
			return nil
		}
		state := session.Snapshot()
		path, err := writeExport(&state, effective.Format, effective.OutputDir)
		if err != nil {
			return err
		}
		internal.PrintSuccess(fmt.Sprintf("Saved session to %s", path))
		return nil
	},
}

// redirectLogs sends logs to path, or discards them when path is empty
func redirectLogs(path string) (func(), error) {
	restore := func() { internal.SetLogOutput(os.Stderr) }
	if path == "" {
		internal.SetLogOutput(io.Discard)
		return restore, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, &internal.ConfigError{Path: path, Err: err}
	}
	internal.SetLogOutput(f)
	return func() {
		restore()
		_ = f.Close()
	}, nil
}

func init() {
	rootCmd.AddCommand(liveCmd)
	liveSource.register(liveCmd)
	liveCmd.Flags().BoolVar(&liveSave, "save", false, "Export the final snapshot using the configured format and output directory")
}
