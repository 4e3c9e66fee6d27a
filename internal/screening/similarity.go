package screening

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// SimilarityThreshold is the transcription-similarity ratio below which the
// front end treats a response as too far from the reference to be a
// transcription attempt. It does not feed into the dyslexia score.
const SimilarityThreshold = 0.5

// Similarity returns a 0..1 ratio of how close the user response is to the
// reference sentence, computed as a normalized Levenshtein distance over
// the lowercased strings. 1 means identical, 0 means nothing in common.
func Similarity(userResponse, referenceSentence string) float64 {
	a := strings.ToLower(strings.TrimSpace(userResponse))
	b := strings.ToLower(strings.TrimSpace(referenceSentence))
	if a == b {
		return 1
	}

	longest := len([]rune(a))
	if lb := len([]rune(b)); lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}

	dist := matchr.Levenshtein(a, b)
	sim := 1 - float64(dist)/float64(longest)
	if sim < 0 {
		return 0
	}
	return sim
}
