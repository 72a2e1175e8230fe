package internal

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestTermListsDisjoint(t *testing.T) {
	for term := range positiveTerms {
		if _, ok := negativeTerms[term]; ok {
			t.Errorf("term %q is in both lists", term)
		}
	}
}

func TestTermListsSurviveTokenize(t *testing.T) {
	for _, list := range []map[string]struct{}{positiveTerms, negativeTerms} {
		for term := range list {
			got := Tokenize(term)
			if len(got) != 1 || got[0] != term {
				t.Errorf("Tokenize(%q) = %v, term would never score", term, got)
			}
		}
	}
}

func TestSentiment(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   float64
	}{
		{"empty", nil, 0},
		{"floor of four on short input", []string{"great"}, 0.25},
		{"balanced", []string{"great", "risk", "team", "plan"}, 0},
		{"repeats counted", []string{"great", "great", "great", "great", "great"}, 1},
		{"negative", []string{"worried", "risk", "team", "plan", "launch"}, -0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sentiment(tt.tokens); !approx(got, tt.want) {
				t.Errorf("Sentiment(%v) = %v, want %v", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestSentimentLevel(t *testing.T) {
	tests := []struct {
		sentiment float64
		want      float64
	}{
		{-1, 0},
		{-0.5, 0.25},
		{0, 0.5},
		{1, 1},
		{3, 1},
	}

	for _, tt := range tests {
		if got := SentimentLevel(tt.sentiment); !approx(got, tt.want) {
			t.Errorf("SentimentLevel(%v) = %v, want %v", tt.sentiment, got, tt.want)
		}
	}
}

func TestEnergy(t *testing.T) {
	tests := []struct {
		name       string
		tokenCount int
		sentiment  float64
		want       float64
	}{
		{"empty", 0, 0, 0},
		{"length only", 9, 0, 0.2},
		{"sentiment magnitude", 0, -1, 0.45},
		{"clamped", 100, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Energy(tt.tokenCount, tt.sentiment); !approx(got, tt.want) {
				t.Errorf("Energy(%d, %v) = %v, want %v", tt.tokenCount, tt.sentiment, got, tt.want)
			}
		})
	}
}
