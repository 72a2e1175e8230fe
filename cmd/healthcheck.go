package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/voice-pulse/internal"
	"github.com/iksnae/voice-pulse/internal/export"
	"github.com/spf13/cobra"
)

var (
	healthcheckDetails bool
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

const healthcheckProbe = "the launch plan looks great but the budget is a risk"

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check configuration, speech input and exporters",
	Long: `Check the health of voice-pulse by verifying:
  • Configuration loading and validation
  • Speech input availability
  • Analysis of a probe fragment
  • Every export format, including SQLite

This command is useful for debugging setup issues before a live session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := 0

		fmt.Fprintln(out, sectionStyle.Render("Voice Pulse Health Check"))
		fmt.Fprintln(out)

		// Step 1: Configuration
		fmt.Fprintln(out, infoStyle.Render("Step 1: Checking configuration..."))
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Invalid configuration:"), err)
			failed++
		} else {
			fmt.Fprintln(out, successStyle.Render("✅ Configuration loaded"))
		}
		if healthcheckDetails {
			fmt.Fprintf(out, "   Source: %s\n", cfg.Source)
			if cfg.Follow != "" {
				fmt.Fprintf(out, "   Follow: %s\n", cfg.Follow)
			}
			fmt.Fprintf(out, "   Queue size: %d\n", cfg.QueueSize)
			fmt.Fprintf(out, "   Export: %s to %s\n", cfg.Format, cfg.OutputDir)
		}
		fmt.Fprintln(out)

		// Step 2: Speech input
		fmt.Fprintln(out, infoStyle.Render("Step 2: Checking speech input..."))
		var input io.Reader
		if !internal.IsTerminal(os.Stdin) {
			input = cmd.InOrStdin()
		}
		rec := internal.SelectRecognizer(cfg, input)
		if rec.Available() {
			fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ Speech input available (%s)", rec.Name())))
		} else {
			fmt.Fprintln(out, warningStyle.Render("⚠️  No speech input; only manual entry in the live dashboard"))
			if healthcheckDetails {
				fmt.Fprintln(out, "   Pipe a transcript into listen, or use --follow / --input")
			}
		}
		fmt.Fprintln(out)

		// Step 3: Analysis
		fmt.Fprintln(out, infoStyle.Render("Step 3: Analyzing a probe fragment..."))
		session := internal.NewSession()
		session.Submit(healthcheckProbe)
		state := session.Snapshot()
		if state.Accepted == 1 && len(state.Analysis.Keywords) > 0 {
			fmt.Fprintln(out, successStyle.Render("✅ Analysis pipeline working"))
			if healthcheckDetails {
				fmt.Fprintf(out, "   Keywords: %v\n", state.Analysis.Keywords)
				fmt.Fprintf(out, "   Reply: %s\n", state.Reply)
			}
		} else {
			fmt.Fprintln(out, errorStyle.Render("❌ Probe fragment produced no analysis"))
			failed++
		}
		fmt.Fprintln(out)

		// Step 4: Exporters
		fmt.Fprintln(out, infoStyle.Render("Step 4: Testing export formats..."))
		for _, name := range export.Formats {
			exporter, err := export.NewExporter(name)
			if err == nil {
				err = exporter.Export(&state, io.Discard)
			}
			if err != nil {
				fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("❌ %s export failed:", name)), err)
				failed++
				continue
			}
			fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ %s export working", name)))
		}
		fmt.Fprintln(out)

		// Summary
		fmt.Fprintln(out, sectionStyle.Render("Summary"))
		fmt.Fprintln(out)
		if failed > 0 {
			fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("❌ Health check failed (%d problem(s))", failed)))
			return fmt.Errorf("health check failed: %d problem(s)", failed)
		}
		fmt.Fprintln(out, successStyle.Render("✅ Health check passed!"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVarP(&healthcheckDetails, "details", "d", false, "Show detailed diagnostic information")
}
