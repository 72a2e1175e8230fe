package internal

import "testing"

func TestGenerateReply(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		analysis Analysis
		want     string
	}{
		{
			name:     "blank fragment",
			fragment: "   ",
			analysis: Analysis{Keywords: []string{"team"}, Sentiment: 0.9, Energy: 0.9},
			want:     IdlePrompt,
		},
		{
			name:     "uplifted low energy",
			fragment: "This is a great win for the team",
			analysis: Analyze("This is a great win for the team"),
			want:     "Uplifted read on Great · Win. The mood is trending upward. Try expanding on that to build more signal.",
		},
		{
			name:     "cautious urgent",
			fragment: "risk",
			analysis: Analysis{Keywords: []string{"risk", "delay", "budget"}, Sentiment: -0.5, Energy: 0.8},
			want:     "Cautious read on Risk · Delay. The mood is cooling off. Capture the next action while momentum is high.",
		},
		{
			name:     "neutral without keywords",
			fragment: "uh",
			analysis: Analysis{},
			want:     "Neutral read on Listening. The mood is holding steady. Try expanding on that to build more signal.",
		},
		{
			name:     "single keyword mid energy",
			fragment: "plan",
			analysis: Analysis{Keywords: []string{"plan"}, Sentiment: 0.18, Energy: 0.5},
			want:     "Neutral read on Plan. The mood is trending upward. Keep the thread going.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateReply(tt.fragment, tt.analysis); got != tt.want {
				t.Errorf("GenerateReply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReplyThresholds(t *testing.T) {
	tests := []struct {
		sentiment float64
		tone      string
	}{
		{0.2, "Neutral"},
		{0.21, "Uplifted"},
		{-0.2, "Neutral"},
		{-0.21, "Cautious"},
	}
	for _, tt := range tests {
		if got := replyTone(tt.sentiment); got != tt.tone {
			t.Errorf("replyTone(%v) = %q, want %q", tt.sentiment, got, tt.tone)
		}
	}

	if got := replyClosing(0.7); got != "Keep the thread going." {
		t.Errorf("replyClosing(0.7) = %q, want maintain phrase", got)
	}
	if got := replyClosing(0.3); got != "Keep the thread going." {
		t.Errorf("replyClosing(0.3) = %q, want maintain phrase", got)
	}
}
