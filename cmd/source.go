package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/iksnae/voice-pulse/internal"
	"github.com/spf13/cobra"
)

// sourceFlags are the recognizer flags shared by listen, live and export
type sourceFlags struct {
	input  string
	follow string
	source string
	queue  int

	// finite commands need a stream that ends, so tailing is off
	finite bool
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Transcript file to read")
	if !f.finite {
		cmd.Flags().StringVar(&f.follow, "follow", "", "Transcript file to tail while it is being written")
	}
	cmd.Flags().StringVar(&f.source, "source", "", "Speech source: stdin or none (default from config)")
	cmd.Flags().IntVar(&f.queue, "queue", 0, "Buffered recognizer events (default from config)")
}

// resolve applies flags on top of the loaded config
func (f *sourceFlags) resolve(cmd *cobra.Command) (internal.Config, error) {
	effective := cfg
	if cmd.Flags().Changed("source") {
		effective.Source = f.source
	}
	if f.finite {
		effective.Follow = ""
	} else if cmd.Flags().Changed("follow") {
		effective.Follow = f.follow
	}
	if cmd.Flags().Changed("queue") {
		effective.QueueSize = f.queue
	}
	if err := effective.Validate(); err != nil {
		return effective, err
	}
	return effective, nil
}

// recognizer picks the recognition strategy for a command. stdin is the
// fallback input unless allowStdin is false (the terminal belongs to the
// dashboard). The returned closer releases an opened input file.
func (f *sourceFlags) recognizer(cmd *cobra.Command, allowStdin bool) (internal.Recognizer, internal.Config, func(), error) {
	noop := func() {}
	effective, err := f.resolve(cmd)
	if err != nil {
		return nil, effective, noop, err
	}

	if f.input != "" && effective.Follow == "" {
		file, err := os.Open(f.input)
		if err != nil {
			return nil, effective, noop, fmt.Errorf("failed to open transcript: %w", err)
		}
		closer := func() { _ = file.Close() }
		return internal.NewStreamRecognizer(f.input, file), effective, closer, nil
	}

	var input io.Reader
	if allowStdin {
		input = cmd.InOrStdin()
	}
	rec := internal.SelectRecognizer(effective, input)
	internal.LogDebug("using recognizer %s", rec.Name())
	return rec, effective, noop, nil
}
