package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testVocab returns a small controlled vocabulary so score expectations do
// not depend on the embedded word list.
func testVocab() *Vocabulary {
	return NewVocabulary([]string{
		"cat", "bad", "there", "mat", "sat", "on", "the", "quick",
	})
}

func TestScoreEmptyInputs(t *testing.T) {
	t.Parallel()
	scorer := NewScorer(testVocab())

	assert.Equal(t, 0.0, scorer.Score("", "The quick brown fox."))
	assert.Equal(t, 0.0, scorer.Score("cat", ""))
	assert.Equal(t, 0.0, scorer.Score("", ""))
	assert.Equal(t, 0.0, scorer.Score("...", "!!!"), "punctuation-only input tokenizes to nothing")
}

func TestScoreKnownCleanWordScoresZero(t *testing.T) {
	t.Parallel()
	scorer := NewScorer(testVocab())

	// "cat" is known, matches no letter pair, belongs to no word group and
	// does not reverse into "the".
	assert.Equal(t, 0.0, scorer.Score("cat", "the quick brown fox"))
}

func TestScoreIsMeanOverTokens(t *testing.T) {
	t.Parallel()
	scorer := NewScorer(testVocab())
	ref := "the quick brown fox"

	// Duplicating identical tokens must not change the score.
	assert.Equal(t, scorer.Score("cat", ref), scorer.Score("cat cat", ref))

	single := scorer.Score("tac", ref)
	assert.Equal(t, single, scorer.Score("tac tac tac", ref))
}

func TestScoreLetterConfusionPair(t *testing.T) {
	t.Parallel()
	scorer := NewScorer(testVocab())

	// "bad" is known and only matches the (b, d) pair: exactly one
	// letter-confusion penalty.
	assert.InDelta(t, 3.0, scorer.Score("bad", "the quick brown fox"), 1e-9)
}

func TestScoreWordConfusionGroups(t *testing.T) {
	t.Parallel()
	scorer := NewScorer(testVocab())

	// "there" is known and clean of letter pairs, but belongs to two
	// confusion groups in the fixed table ({there, their} appears in both
	// orders), so it accumulates the group penalty twice.
	assert.InDelta(t, 8.0, scorer.Score("there", "They are here."), 1e-9)
}

func TestScoreReversalOnlyAgainstFirstReferenceToken(t *testing.T) {
	t.Parallel()
	scorer := NewScorer(testVocab())

	// "tac" is unknown (+3) and reverses into "cat". The reversal penalty
	// fires only when "cat" is the first token of the reference.
	withReversal := scorer.Score("tac", "cat sat on mat")
	withoutReversal := scorer.Score("tac", "mat sat on cat")

	assert.InDelta(t, 6.0, withReversal, 1e-9)
	assert.InDelta(t, 3.0, withoutReversal, 1e-9)
}

func TestScoreUnknownWordPenalty(t *testing.T) {
	t.Parallel()

	// With an empty vocabulary, every token draws the unknown-word penalty.
	scorer := NewScorer(EmptyVocabulary())
	assert.InDelta(t, 3.0, scorer.Score("cat", "the quick brown fox"), 1e-9)
}

func TestScoreNilVocabularyBehavesAsEmpty(t *testing.T) {
	t.Parallel()
	scorer := NewScorer(nil)
	assert.InDelta(t, 3.0, scorer.Score("cat", "the quick brown fox"), 1e-9)
}

func TestScoreNeverNegative(t *testing.T) {
	t.Parallel()
	scorer := NewScorer(testVocab())

	inputs := []string{
		"cat", "tac", "bad", "there", "xxqqzz", "was saw there their",
		"The quick brown fox jumps over the lazy dog.", "1234 5678",
	}
	for _, in := range inputs {
		assert.GreaterOrEqual(t, scorer.Score(in, "cat sat on mat"), 0.0, "input %q", in)
	}
}

func TestScoreCumulativeAcrossChecks(t *testing.T) {
	t.Parallel()

	// "saw" with an empty vocabulary: unknown (+3) plus membership in the
	// {was, saw} group (+4); none of the letter pairs has both of its
	// letters in the token.
	scorer := NewScorer(EmptyVocabulary())
	assert.InDelta(t, 7.0, scorer.Score("saw", "the quick brown fox"), 1e-9)
}
