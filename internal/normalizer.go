package internal

import "strings"

// stopWords are dropped by Tokenize. Tokens of two characters or fewer never
// reach this set, so it only lists longer words.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "your": {}, "yours": {}, "all": {}, "any": {}, "can": {},
	"had": {}, "has": {}, "have": {}, "her": {}, "him": {}, "his": {},
	"was": {}, "were": {}, "one": {}, "our": {}, "out": {}, "they": {},
	"them": {}, "their": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"with": {}, "from": {}, "about": {}, "into": {}, "just": {}, "like": {},
	"than": {}, "then": {}, "there": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "who": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "been": {}, "being": {}, "does": {}, "did": {}, "doing": {},
	"its": {}, "also": {}, "very": {}, "really": {}, "some": {}, "such": {},
	"only": {}, "over": {}, "more": {}, "most": {}, "other": {}, "because": {},
	"how": {}, "why": {}, "she": {}, "here": {}, "yes": {}, "yeah": {},
	"okay": {}, "well": {}, "going": {}, "get": {}, "got": {}, "let": {},
	"say": {}, "said": {}, "thing": {}, "things": {}, "way": {}, "now": {},
}

// IsStopWord reports whether token is filtered out by Tokenize
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}

// Tokenize turns raw text into lowercase alphanumeric tokens longer than two
// characters, with stop words removed
func Tokenize(text string) []string {
	normalized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return ' '
		}
	}, strings.ToLower(text))

	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) <= 2 || IsStopWord(field) {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// capitalize upper-cases the first letter of an ASCII token
func capitalize(token string) string {
	if token == "" {
		return token
	}
	return strings.ToUpper(token[:1]) + token[1:]
}
