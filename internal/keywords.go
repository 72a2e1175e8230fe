package internal

import "sort"

// TermCount is a token with its occurrence count in a corpus
type TermCount struct {
	Term  string
	Count int
}

// RankTerms counts tokens and orders them by descending count.
// Ties keep first-seen order.
func RankTerms(tokens []string) []TermCount {
	index := make(map[string]int, len(tokens))
	ranked := make([]TermCount, 0, len(tokens))
	for _, token := range tokens {
		if i, ok := index[token]; ok {
			ranked[i].Count++
			continue
		}
		index[token] = len(ranked)
		ranked = append(ranked, TermCount{Term: token, Count: 1})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// ExtractKeywords returns up to MaxKeywords distinct tokens by frequency
func ExtractKeywords(tokens []string) []string {
	return keywordsFrom(RankTerms(tokens))
}

func keywordsFrom(ranked []TermCount) []string {
	n := len(ranked)
	if n > MaxKeywords {
		n = MaxKeywords
	}
	keywords := make([]string, 0, n)
	for _, tc := range ranked[:n] {
		keywords = append(keywords, tc.Term)
	}
	return keywords
}
