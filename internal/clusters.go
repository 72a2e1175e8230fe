package internal

import (
	"fmt"
	"math"
)

// BuildClusters turns the top ranked terms into topic clusters
func BuildClusters(ranked []TermCount, tokenCount int, energy float64) []Cluster {
	n := len(ranked)
	if n > MaxClusters {
		n = MaxClusters
	}

	total := tokenCount
	if total < 1 {
		total = 1
	}

	clusters := make([]Cluster, 0, n)
	for _, tc := range ranked[:n] {
		seed := float64(tc.Count) / float64(total)
		score := clamp(seed*2+energy*0.6, 0, 1)
		clusters = append(clusters, Cluster{
			Label:   capitalize(tc.Term),
			Score:   score,
			Summary: clusterSummary(tc.Term, score),
		})
	}
	return clusters
}

func clusterSummary(keyword string, score float64) string {
	return fmt.Sprintf("Talk around %q is carrying %d%% of the current signal.", keyword, int(math.Round(score*100)))
}
