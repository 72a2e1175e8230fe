package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/voice-pulse/internal"
	"github.com/iksnae/voice-pulse/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportSource = sourceFlags{finite: true}
	format       string
	outputDir    string
	sessionID    string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Replay a transcript and export the session",
	Long: `Replay a finished transcript (standard input or --input) through a session
and export the final snapshot (json, jsonl, yaml, md, sqlite).

The file is written to the output directory as session_<id>.<ext>.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, effective, closeInput, err := exportSource.recognizer(cmd, true)
		if err != nil {
			return err
		}
		defer closeInput()

		if cmd.Flags().Changed("format") {
			effective.Format = format
		}
		if cmd.Flags().Changed("out") {
			effective.OutputDir = outputDir
		}

		// Fail on a bad format before replaying anything
		if _, err := export.NewExporter(effective.Format); err != nil {
			return err
		}

		opts := []internal.SessionOption{}
		if sessionID != "" {
			opts = append(opts, internal.WithSessionID(sessionID))
		}
		session := internal.NewSession(opts...)

		ctx := contextOrBackground(cmd.Context())
		var path string
		steps := []internal.ProgressStep{
			{
				Message: fmt.Sprintf("Replaying transcript from %s", rec.Name()),
				Fn: func() error {
					return internal.NewLoop(session, effective.QueueSize).Run(ctx, rec, nil)
				},
			},
			{
				Message: fmt.Sprintf("Writing %s export to %s", effective.Format, effective.OutputDir),
				Fn: func() error {
					state := session.Snapshot()
					var writeErr error
					path, writeErr = writeExport(&state, effective.Format, effective.OutputDir)
					return writeErr
				},
			},
		}

		if err := internal.ShowProgressWithSteps(ctx, steps); err != nil {
			return err
		}

		accepted := session.Snapshot().Accepted
		if accepted == 0 {
			internal.PrintInfo("Transcript had no usable fragments; exported the baseline session")
		}
		internal.PrintSuccess(fmt.Sprintf("Export complete: %d fragment(s) exported to %s", accepted, path))
		return nil
	},
}

// writeExport writes state into dir as session_<id>.<ext> and returns the path
func writeExport(state *internal.State, format, dir string) (string, error) {
	exporter, err := export.NewExporter(format)
	if err != nil {
		return "", &internal.ExportError{Format: format, Err: err}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &internal.ExportError{Format: format, Path: dir, Err: err}
	}

	filename := fmt.Sprintf("session_%s.%s", state.SessionID, exporter.Extension())
	path := filepath.Join(dir, filename)

	if _, ok := exporter.(*export.SQLiteExporter); ok {
		// A database is written in place; a stale file would clash with the schema
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return "", &internal.ExportError{Format: format, Path: path, Err: err}
		}
		if err := export.WriteSQLite(state, path); err != nil {
			return "", &internal.ExportError{Format: format, Path: path, Err: err}
		}
		return path, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return "", &internal.ExportError{Format: format, Path: path, Err: err}
	}
	if err := exporter.Export(state, file); err != nil {
		_ = file.Close()
		return "", &internal.ExportError{Format: format, Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		internal.LogWarn("Failed to close file %s: %v", path, err)
	}
	return path, nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportSource.register(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "json", "Export format (json, jsonl, yaml, md, sqlite)")
	exportCmd.Flags().StringVarP(&outputDir, "out", "o", "./exports", "Output directory")
	exportCmd.Flags().StringVar(&sessionID, "session-id", "", "Session id to record instead of a random one")
}
