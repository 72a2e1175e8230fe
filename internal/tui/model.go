package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/voice-pulse/internal"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	listeningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	idleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	previewStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	replyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	keywordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

const barWidth = 30

// Message types
type eventMsg internal.Event
type streamClosedMsg struct{}

// Model is the live dashboard. It owns the session: every change is applied
// from Update, so recognizer events and manual entry never race.
type Model struct {
	session *internal.Session
	events  <-chan internal.Event

	input    textinput.Model
	bar      progress.Model
	quitting bool
}

// New creates a dashboard over session. events may be nil when only manual
// entry is available.
func New(session *internal.Session, events <-chan internal.Event) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a thought and press enter..."
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()

	return Model{
		session: session,
		events:  events,
		input:   ti,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth), progress.WithoutPercentage()),
	}
}

// Init starts waiting for recognizer events
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForEvent(m.events))
}

// waitForEvent delivers the next recognizer event as a message
func waitForEvent(events <-chan internal.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return streamClosedMsg{}
		}
		return eventMsg(ev)
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.session.Submit(m.input.Value()) {
				m.input.SetValue("")
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.input.Width = max(10, min(60, msg.Width-4))
		return m, nil

	case eventMsg:
		m.session.Handle(internal.Event(msg))
		return m, waitForEvent(m.events)

	case streamClosedMsg:
		m.session.SetListening(false)
		m.events = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// State returns the snapshot the dashboard is showing
func (m Model) State() internal.State {
	return m.session.Snapshot()
}

// View renders the dashboard
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	state := m.session.Snapshot()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("voice-pulse") + "  " + listeningBadge(state.Listening) + "\n\n")

	if state.LivePreview != "" {
		sb.WriteString(previewStyle.Render("… "+state.LivePreview) + "\n\n")
	}

	sb.WriteString(replyStyle.Render(state.Reply) + "\n\n")

	a := state.Analysis
	sb.WriteString(fmt.Sprintf("%s %s %.2f\n", labelStyle.Render("Sentiment"), m.bar.ViewAs(internal.SentimentLevel(a.Sentiment)), a.Sentiment))
	sb.WriteString(fmt.Sprintf("%s    %s %.2f\n\n", labelStyle.Render("Energy"), m.bar.ViewAs(a.Energy), a.Energy))

	if len(a.Keywords) > 0 {
		styled := make([]string, len(a.Keywords))
		for i, k := range a.Keywords {
			styled[i] = keywordStyle.Render(k)
		}
		sb.WriteString(labelStyle.Render("Keywords") + "  " + strings.Join(styled, mutedStyle.Render(" · ")) + "\n")
	}
	for _, c := range a.Clusters {
		sb.WriteString(fmt.Sprintf("  %s %s\n", keywordStyle.Render(c.Label), mutedStyle.Render(c.Summary)))
	}
	if len(a.Keywords) > 0 {
		sb.WriteString("\n")
	}

	for _, in := range state.Insights {
		sb.WriteString(fmt.Sprintf("%-20s %s %s\n", in.Label, m.bar.ViewAs(in.Pulse), formatDelta(in.Delta)))
	}
	sb.WriteString("\n")

	for _, seg := range state.Segments {
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("%s #%d ", seg.Timestamp.Format("15:04:05"), seg.Seq)) + seg.Text + "\n")
	}
	if len(state.Segments) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString(m.input.View() + "\n")
	sb.WriteString(mutedStyle.Render("enter submit • esc quit") + "\n")
	return sb.String()
}

func listeningBadge(listening bool) string {
	if listening {
		return listeningStyle.Render("● listening")
	}
	return idleStyle.Render("○ idle")
}

func formatDelta(delta float64) string {
	switch {
	case delta > 0:
		return listeningStyle.Render(fmt.Sprintf("+%.2f", delta))
	case delta < 0:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("%.2f", delta))
	default:
		return mutedStyle.Render("0.00")
	}
}
