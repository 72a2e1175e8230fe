package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/voice-pulse/internal"
	"github.com/iksnae/voice-pulse/internal/export"
	"github.com/spf13/cobra"
)

var analyzeFormat string

var (
	// Styles for analyze output
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1).
			MarginBottom(1)

	replyBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

const meterWidth = 24

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Analyze text once and print the signal map",
	Long: `Analyze the given text, or every line of standard input when no text is
given. Each line is accepted as one fragment, in order.

Use --format to print the resulting snapshot with one of the exporters instead
of the styled summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session := internal.NewSession()

		if len(args) > 0 {
			session.Submit(strings.Join(args, " "))
		} else if err := submitLines(session, cmd.InOrStdin()); err != nil {
			return err
		}

		state := session.Snapshot()
		if analyzeFormat != "" {
			exporter, err := export.NewExporter(analyzeFormat)
			if err != nil {
				return err
			}
			if err := exporter.Export(&state, cmd.OutOrStdout()); err != nil {
				return &internal.ExportError{Format: analyzeFormat, Err: err}
			}
			return nil
		}

		_, err := fmt.Fprint(cmd.OutOrStdout(), renderSummary(state))
		return err
	},
}

// submitLines accepts every line of r as a fragment
func submitLines(session *internal.Session, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		session.Submit(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// renderSummary formats a snapshot for the terminal
func renderSummary(state internal.State) string {
	var sb strings.Builder
	a := state.Analysis

	sb.WriteString(headerStyle.Render("Signal map") + "\n")
	sb.WriteString(replyBoxStyle.Render(state.Reply) + "\n\n")

	sb.WriteString(fmt.Sprintf("%s %s %.2f\n", labelStyle.Render("Sentiment"), internal.RenderMeter(internal.SentimentLevel(a.Sentiment), meterWidth), a.Sentiment))
	sb.WriteString(fmt.Sprintf("%s    %s %.2f\n", labelStyle.Render("Energy"), internal.RenderMeter(a.Energy, meterWidth), a.Energy))
	sb.WriteString(metaStyle.Render(fmt.Sprintf("%d fragments, %d tokens, %d positive, %d negative",
		state.Accepted, a.TokenCount, a.PositiveHits, a.NegativeHits)) + "\n\n")

	if len(a.Keywords) > 0 {
		sb.WriteString(labelStyle.Render("Keywords") + "  " + strings.Join(a.Keywords, ", ") + "\n")
		for _, c := range a.Clusters {
			sb.WriteString(fmt.Sprintf("  %-12s %s %s\n", c.Label, internal.RenderMeter(c.Score, meterWidth/2), metaStyle.Render(c.Summary)))
		}
		sb.WriteString("\n")
	}

	for _, in := range state.Insights {
		sb.WriteString(fmt.Sprintf("%-20s %s %+.2f\n", in.Label, internal.RenderMeter(in.Pulse, meterWidth), in.Delta))
		sb.WriteString(metaStyle.Render("  "+in.Detail) + "\n")
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "", "Print the snapshot as json, jsonl, yaml or md")
}
