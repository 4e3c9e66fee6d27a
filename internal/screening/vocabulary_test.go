package screening

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedVocabulary(t *testing.T) {
	t.Parallel()

	vocab, err := LoadEmbeddedVocabulary()
	require.NoError(t, err)
	assert.Greater(t, vocab.Len(), 500)

	// Every word of the reference corpus must be known, otherwise a perfect
	// transcription would draw unknown-word penalties.
	for _, sentence := range Sentences() {
		for _, token := range Tokenize(sentence) {
			assert.True(t, vocab.Contains(token), "corpus word %q missing from embedded list", token)
		}
	}

	assert.False(t, vocab.Contains("xqzzyb"))
}

func TestNewVocabularyNormalizes(t *testing.T) {
	t.Parallel()

	vocab := NewVocabulary([]string{"Cat", "  dog  ", ""})
	assert.Equal(t, 2, vocab.Len())
	assert.True(t, vocab.Contains("cat"))
	assert.True(t, vocab.Contains("CAT"))
	assert.True(t, vocab.Contains("dog"))
}

func TestEmptyVocabularyKnowsNothing(t *testing.T) {
	t.Parallel()

	vocab := EmptyVocabulary()
	assert.Equal(t, 0, vocab.Len())
	assert.False(t, vocab.Contains("the"))
}

func TestLoadVocabularyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.txt")
	writeFile(t, path, "# comment\ncat\nDog\n\nbird\n")

	vocab, err := LoadVocabularyFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, vocab.Len())
	assert.True(t, vocab.Contains("dog"))
}

func TestLoadVocabularyFileErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadVocabularyFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.txt")
	writeFile(t, empty, "# only comments\n\n")
	_, err = LoadVocabularyFile(empty)
	assert.Error(t, err)
}
