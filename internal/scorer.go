package internal

import "math"

var positiveTerms = map[string]struct{}{
	"great": {}, "good": {}, "win": {}, "wins": {}, "winning": {}, "success": {},
	"excellent": {}, "amazing": {}, "awesome": {}, "happy": {}, "love": {},
	"growth": {}, "strong": {}, "progress": {}, "positive": {}, "gain": {},
	"improve": {}, "improved": {}, "opportunity": {}, "excited": {},
	"better": {}, "best": {}, "confident": {}, "momentum": {}, "ready": {},
	"clear": {}, "solid": {}, "thrilled": {}, "proud": {}, "easy": {},
}

var negativeTerms = map[string]struct{}{
	"bad": {}, "risk": {}, "risky": {}, "worried": {}, "worry": {}, "concern": {},
	"concerned": {}, "problem": {}, "issue": {}, "issues": {}, "loss": {},
	"fail": {}, "failed": {}, "failure": {}, "weak": {}, "decline": {},
	"negative": {}, "delay": {}, "delayed": {}, "angry": {}, "sad": {},
	"fear": {}, "threat": {}, "difficult": {}, "worse": {}, "worst": {},
	"stuck": {}, "blocked": {}, "confused": {}, "tired": {},
}

// ScoreHits counts tokens found in the positive and negative term lists,
// counting every occurrence
func ScoreHits(tokens []string) (positive, negative int) {
	for _, token := range tokens {
		if _, ok := positiveTerms[token]; ok {
			positive++
		}
		if _, ok := negativeTerms[token]; ok {
			negative++
		}
	}
	return positive, negative
}

// Sentiment is the clamped net polarity of tokens. The denominator never drops
// below 4 so very short inputs do not swing to the extremes.
func Sentiment(tokens []string) float64 {
	positive, negative := ScoreHits(tokens)
	return sentimentFrom(positive, negative, len(tokens))
}

func sentimentFrom(positive, negative, tokenCount int) float64 {
	denominator := tokenCount
	if denominator < 4 {
		denominator = 4
	}
	return clamp(float64(positive-negative)/float64(denominator), -1, 1)
}

// SentimentLevel maps a sentiment in [-1, 1] onto [0, 1] for meters, so
// neutral sits at the midpoint
func SentimentLevel(sentiment float64) float64 {
	return clamp((sentiment+1)/2, 0, 1)
}

// Energy combines corpus length with sentiment magnitude
func Energy(tokenCount int, sentiment float64) float64 {
	return clamp(float64(tokenCount)/45+math.Abs(sentiment)*0.45, 0, 1)
}
