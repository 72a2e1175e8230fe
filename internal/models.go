package internal

import (
	"slices"
	"time"
)

const (
	// MaxKeywords caps the keyword list of an Analysis
	MaxKeywords = 6
	// MaxClusters is the number of top keywords promoted to clusters
	MaxClusters = 3
	// MaxInsights caps the insight list
	MaxInsights = 5
	// MaxSegments bounds the recent segment trail
	MaxSegments = 6
)

// Segment is an accepted fragment kept in the recent trail
type Segment struct {
	ID        string    `json:"id" yaml:"id"`
	Seq       int       `json:"seq" yaml:"seq"`
	Text      string    `json:"text" yaml:"text"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Cluster is a topic record derived from one top keyword
type Cluster struct {
	Label   string  `json:"label" yaml:"label"`
	Score   float64 `json:"score" yaml:"score"`
	Summary string  `json:"summary" yaml:"summary"`
}

// Analysis is the derived signal set for a corpus.
// It is always recomputed from the full corpus, never patched.
type Analysis struct {
	Keywords  []string  `json:"keywords" yaml:"keywords"`
	Sentiment float64   `json:"sentiment" yaml:"sentiment"`
	Energy    float64   `json:"energy" yaml:"energy"`
	Clusters  []Cluster `json:"clusters" yaml:"clusters"`

	TokenCount   int `json:"token_count" yaml:"token_count"`
	PositiveHits int `json:"positive_hits" yaml:"positive_hits"`
	NegativeHits int `json:"negative_hits" yaml:"negative_hits"`
}

// Insight is a display-ready ranked record
type Insight struct {
	ID     string  `json:"id" yaml:"id"`
	Label  string  `json:"label" yaml:"label"`
	Detail string  `json:"detail" yaml:"detail"`
	Pulse  float64 `json:"pulse" yaml:"pulse"`
	Delta  float64 `json:"delta" yaml:"delta"`
}

// State is an immutable snapshot of a session.
// Values handed out by Session.Snapshot never share slices with the live state.
type State struct {
	SessionID   string    `json:"session_id" yaml:"session_id"`
	Corpus      string    `json:"corpus" yaml:"corpus"`
	Segments    []Segment `json:"segments" yaml:"segments"`
	Analysis    Analysis  `json:"analysis" yaml:"analysis"`
	Insights    []Insight `json:"insights" yaml:"insights"`
	Reply       string    `json:"reply" yaml:"reply"`
	LivePreview string    `json:"live_preview,omitempty" yaml:"live_preview,omitempty"`
	Listening   bool      `json:"listening" yaml:"listening"`
	Accepted    int       `json:"accepted" yaml:"accepted"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

// clone deep copies the slices of a state
func (s State) clone() State {
	out := s
	out.Segments = slices.Clone(s.Segments)
	out.Insights = slices.Clone(s.Insights)
	out.Analysis.Keywords = slices.Clone(s.Analysis.Keywords)
	out.Analysis.Clusters = slices.Clone(s.Analysis.Clusters)
	return out
}

// clamp limits v to [lo, hi]
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
