package export

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/iksnae/voice-pulse/internal"
)

// MarkdownExporter exports a readable session report
type MarkdownExporter struct{}

// Export exports a snapshot to Markdown format
func (e *MarkdownExporter) Export(state *internal.State, w io.Writer) error {
	a := state.Analysis

	_, _ = fmt.Fprintf(w, "# Session %s\n\n", state.SessionID)
	_, _ = fmt.Fprintf(w, "**Fragments:** %d  \n", state.Accepted)
	if !state.UpdatedAt.IsZero() {
		_, _ = fmt.Fprintf(w, "**Updated:** %s  \n", state.UpdatedAt.Format(time.RFC3339))
	}
	_, _ = fmt.Fprintf(w, "**Sentiment:** %+.2f  \n", a.Sentiment)
	_, _ = fmt.Fprintf(w, "**Energy:** %.2f\n\n", a.Energy)

	if len(a.Keywords) > 0 {
		_, _ = fmt.Fprintf(w, "**Keywords:** %s\n\n", strings.Join(a.Keywords, ", "))
	}

	_, _ = fmt.Fprintf(w, "> %s\n\n", escapeMarkdown(state.Reply))
	_, _ = fmt.Fprintf(w, "---\n\n")

	if len(a.Clusters) > 0 {
		_, _ = fmt.Fprintf(w, "## Clusters\n\n")
		_, _ = fmt.Fprintf(w, "| Label | Score | Summary |\n|---|---|---|\n")
		for _, c := range a.Clusters {
			_, _ = fmt.Fprintf(w, "| %s | %d%% | %s |\n", c.Label, int(math.Round(c.Score*100)), escapeMarkdown(c.Summary))
		}
		_, _ = fmt.Fprintf(w, "\n")
	}

	_, _ = fmt.Fprintf(w, "## Insights\n\n")
	for _, in := range state.Insights {
		_, _ = fmt.Fprintf(w, "- **%s** (pulse %.2f, drift %+.2f): %s\n", in.Label, in.Pulse, in.Delta, escapeMarkdown(in.Detail))
	}
	_, _ = fmt.Fprintf(w, "\n")

	if len(state.Segments) > 0 {
		_, _ = fmt.Fprintf(w, "## Recent segments\n\n")
		for _, seg := range state.Segments {
			timestamp := ""
			if !seg.Timestamp.IsZero() {
				timestamp = fmt.Sprintf(" (%s)", seg.Timestamp.Format("15:04:05"))
			}
			_, _ = fmt.Fprintf(w, "%d.%s %s\n", seg.Seq, timestamp, escapeMarkdown(seg.Text))
		}
	}

	return nil
}

// escapeMarkdown escapes emphasis markers in free text
func escapeMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "\\*\\*")
	text = strings.ReplaceAll(text, "__", "\\_\\_")
	text = strings.ReplaceAll(text, "|", "\\|")
	return text
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
