package screening

import "strings"

// Penalty weights and classification constants for the screening heuristic.
const (
	// UnknownWordPenalty is added once per token absent from the vocabulary.
	UnknownWordPenalty = 3.0

	// LetterConfusionPenalty is added once per matching letter pair.
	LetterConfusionPenalty = 3.0

	// WordConfusionPenalty is added once per confusion group the token
	// belongs to.
	WordConfusionPenalty = 4.0

	// ReversalPenalty is added when the reversed token equals the first
	// token of the reference sentence.
	ReversalPenalty = 3.0

	// DyslexiaScoreThreshold is the mean session score at or above which
	// the verdict is positive.
	DyslexiaScoreThreshold = 3.5

	// MaxAttempts bounds the number of attempts in one assessment session.
	MaxAttempts = 3
)

// Scorer computes dyslexia-indicator scores for user responses. It holds
// only the injected vocabulary; the confusion tables are fixed. A Scorer is
// read-only and safe for concurrent use.
type Scorer struct {
	vocab *Vocabulary
}

// NewScorer returns a Scorer backed by the given vocabulary. A nil
// vocabulary behaves as empty: every token draws the unknown-word penalty.
func NewScorer(vocab *Vocabulary) *Scorer {
	return &Scorer{vocab: vocab}
}

// Score returns the dyslexia-indicator score for a user response against a
// reference sentence: the mean per-token penalty over the response's
// tokens, always >= 0. If either side tokenizes to nothing the score is 0.
//
// Per token, the penalties are cumulative:
//   - +3.0 if the token is not in the vocabulary
//   - +3.0 for every letter-confusion pair whose both letters occur in the
//     token (all 20 pairs checked, no early exit)
//   - +4.0 for every word-confusion group containing the token
//   - +3.0 if the reversed token equals the first token of the reference
//
// The reversal check deliberately compares against the reference's first
// token only, whichever response token is being scored. That asymmetry is
// part of the heuristic as shipped and is preserved as-is.
//
// Score never propagates a failure: if anything inside panics, it returns
// 0 (scoring degrades to "no evidence", the opposite direction from the
// vocabulary's fail-open-to-penalty fallback).
func (s *Scorer) Score(userResponse, referenceSentence string) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			score = 0
		}
	}()

	wordTokens := Tokenize(userResponse)
	sentenceTokens := Tokenize(referenceSentence)
	if len(wordTokens) == 0 || len(sentenceTokens) == 0 {
		return 0
	}

	var total float64
	for _, token := range wordTokens {
		total += s.tokenPenalty(token, sentenceTokens[0])
	}
	return total / float64(len(wordTokens))
}

// tokenPenalty computes the cumulative penalty for one response token.
// firstRef is the first token of the reference sentence.
func (s *Scorer) tokenPenalty(token, firstRef string) float64 {
	var penalty float64

	if !s.vocab.Contains(token) {
		penalty += UnknownWordPenalty
	}

	for _, pair := range letterConfusions {
		if strings.IndexByte(token, pair.A) >= 0 && strings.IndexByte(token, pair.B) >= 0 {
			penalty += LetterConfusionPenalty
		}
	}

	for _, group := range wordConfusions {
		for _, member := range group {
			if token == member {
				penalty += WordConfusionPenalty
				break
			}
		}
	}

	if reverse(token) == firstRef {
		penalty += ReversalPenalty
	}

	return penalty
}

// reverse returns s with its runes in reverse order.
func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
