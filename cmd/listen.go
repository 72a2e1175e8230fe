package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iksnae/voice-pulse/internal"
	"github.com/spf13/cobra"
)

var (
	listenSource  sourceFlags
	listenSummary bool
	listenPreview bool
)

// listenCmd represents the listen command
var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "React to a transcript stream",
	Long: `Listen to a transcript stream and print a reply every time a fragment is
accepted. The stream is standard input by default, a file with --input, or a
file that is still being written with --follow.

Press Ctrl+C to stop; everything accepted so far is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, effective, closeInput, err := listenSource.recognizer(cmd, true)
		if err != nil {
			return err
		}
		defer closeInput()

		ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt, syscall.SIGTERM)
		defer stop()

		session := internal.NewSession()
		out := cmd.OutOrStdout()
		lastAccepted, lastPreview := 0, ""

		publish := func(state internal.State) {
			if state.Accepted != lastAccepted {
				lastAccepted = state.Accepted
				fmt.Fprintf(out, "[%d] %s\n", state.Accepted, state.Reply)
			}
			if listenPreview && state.LivePreview != "" && state.LivePreview != lastPreview {
				fmt.Fprintf(out, "  … %s\n", state.LivePreview)
			}
			lastPreview = state.LivePreview
		}

		if !rec.Available() {
			internal.PrintWarning("speech input is not available; nothing to listen to")
		}

		loop := internal.NewLoop(session, effective.QueueSize)
		if err := loop.Run(ctx, rec, publish); err != nil && ctx.Err() == nil {
			return err
		}

		if listenSummary {
			fmt.Fprintln(out)
			fmt.Fprint(out, renderSummary(session.Snapshot()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listenCmd)
	listenSource.register(listenCmd)
	listenCmd.Flags().BoolVar(&listenSummary, "summary", false, "Print the signal map when the stream ends")
	listenCmd.Flags().BoolVar(&listenPreview, "preview", false, "Print interim text as it arrives")
}

// contextOrBackground guards against commands executed without a context
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
