package internal

import "strings"

var baselineInsights = []Insight{
	{
		ID:     "baseline-velocity",
		Label:  "Conversation Velocity",
		Detail: "Waiting for enough speech to measure pacing.",
		Pulse:  0.42,
		Delta:  0.05,
	},
	{
		ID:     "baseline-composure",
		Label:  "Emotional Composure",
		Detail: "Tone reads as balanced so far.",
		Pulse:  0.5,
		Delta:  0,
	},
	{
		ID:     "baseline-focus",
		Label:  "Topic Focus",
		Detail: "No dominant topic has emerged yet.",
		Pulse:  0.36,
		Delta:  -0.03,
	},
}

// BaselineInsights returns a copy of the fixed baseline triple
func BaselineInsights() []Insight {
	return append([]Insight(nil), baselineInsights...)
}

// BuildInsights ranks cluster-derived insights ahead of the baseline set and
// caps the result at MaxInsights. Without keywords the baseline is returned
// unchanged.
func BuildInsights(a Analysis) []Insight {
	if len(a.Keywords) == 0 {
		return BaselineInsights()
	}

	insights := make([]Insight, 0, len(a.Clusters)+len(baselineInsights))
	for i, cluster := range a.Clusters {
		rank := float64(i)
		insights = append(insights, Insight{
			ID:     "cluster-" + strings.ToLower(cluster.Label),
			Label:  cluster.Label + " Signal",
			Detail: cluster.Summary,
			Pulse:  clamp(0.35+cluster.Score*0.55+rank*0.1, 0.2, 0.95),
			Delta:  clamp(a.Sentiment*0.6+cluster.Score*0.3-rank*0.05, -0.4, 0.4),
		})
	}
	insights = append(insights, baselineInsights...)

	if len(insights) > MaxInsights {
		insights = insights[:MaxInsights]
	}
	return insights
}
