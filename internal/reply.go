package internal

import (
	"fmt"
	"strings"
)

// IdlePrompt is the reply shown before anything has been said
const IdlePrompt = "Share a thought or start speaking and the signal map will follow."

const headlineSeparator = " · "

// GenerateReply composes the acknowledgement for the latest fragment
func GenerateReply(fragment string, a Analysis) string {
	if strings.TrimSpace(fragment) == "" {
		return IdlePrompt
	}
	return fmt.Sprintf("%s read on %s. %s %s",
		replyTone(a.Sentiment),
		replyHeadline(a.Keywords),
		replyTrend(a.Sentiment),
		replyClosing(a.Energy),
	)
}

func replyTone(sentiment float64) string {
	switch {
	case sentiment > 0.2:
		return "Uplifted"
	case sentiment < -0.2:
		return "Cautious"
	default:
		return "Neutral"
	}
}

func replyHeadline(keywords []string) string {
	if len(keywords) == 0 {
		return "Listening"
	}
	n := len(keywords)
	if n > 2 {
		n = 2
	}
	parts := make([]string, 0, n)
	for _, keyword := range keywords[:n] {
		parts = append(parts, capitalize(keyword))
	}
	return strings.Join(parts, headlineSeparator)
}

func replyTrend(sentiment float64) string {
	switch {
	case sentiment > 0.15:
		return "The mood is trending upward."
	case sentiment < -0.15:
		return "The mood is cooling off."
	default:
		return "The mood is holding steady."
	}
}

func replyClosing(energy float64) string {
	switch {
	case energy > 0.7:
		return "Capture the next action while momentum is high."
	case energy < 0.3:
		return "Try expanding on that to build more signal."
	default:
		return "Keep the thread going."
	}
}
