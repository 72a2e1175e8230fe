package internal

// Analyze computes the full signal set for a corpus. It is a pure function of
// its input: equal corpora always yield equal analyses.
func Analyze(corpus string) Analysis {
	tokens := Tokenize(corpus)
	if len(tokens) == 0 {
		return Analysis{
			Keywords: []string{},
			Clusters: []Cluster{},
		}
	}

	ranked := RankTerms(tokens)
	positive, negative := ScoreHits(tokens)
	sentiment := sentimentFrom(positive, negative, len(tokens))
	energy := Energy(len(tokens), sentiment)

	return Analysis{
		Keywords:     keywordsFrom(ranked),
		Sentiment:    sentiment,
		Energy:       energy,
		Clusters:     BuildClusters(ranked, len(tokens), energy),
		TokenCount:   len(tokens),
		PositiveHits: positive,
		NegativeHits: negative,
	}
}
