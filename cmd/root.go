package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/voice-pulse/internal"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	cfg        = internal.DefaultConfig()
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "voice-pulse",
	Short: "Turn a live transcript into a running signal map",
	Long: `A CLI tool that listens to a stream of spoken or typed fragments and keeps
a running read on the conversation: top keywords, sentiment, energy, topic
clusters, three headline insights and a short conversational reply.

Fragments arrive from standard input, a transcript file that is still being
written, or manual entry in the live dashboard. Each line of a transcript is
one recognition cycle: plain text is final, a leading "~" marks interim text,
and JSON lines carry full recognizer results.

Quick Start:
  voice-pulse analyze "this launch is going great"   # One-shot analysis
  some-recognizer | voice-pulse listen               # React to a stream
  voice-pulse live --follow transcript.txt           # Live dashboard
  voice-pulse export --input transcript.txt -f md    # Write a report`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		internal.SetVerbose(verbose)

		path := configPath
		if path == "" {
			var err error
			if path, err = internal.DefaultConfigPath(); err != nil {
				internal.LogDebug("no default config path: %v", err)
				return nil
			}
		}

		loaded, err := internal.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
		internal.LogDebug("loaded config from %s", path)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	internal.SyncLogger()
	if err != nil {
		internal.PrintError(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.voice-pulse.yaml)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
