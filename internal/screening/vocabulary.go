package screening

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed words.txt
var embeddedWords string

// Vocabulary answers whether a lowercase token is a known English word.
// It is immutable after construction and safe for concurrent reads.
//
// Callers should treat a missing or unloadable word source as an empty
// vocabulary rather than a fatal error: with nothing known, every token
// draws the unknown-word penalty, which biases the screening toward a
// positive verdict instead of crashing the service.
type Vocabulary struct {
	words map[string]struct{}
}

// NewVocabulary builds a vocabulary from the given words. Words are
// lowercased; empty strings are ignored.
func NewVocabulary(words []string) *Vocabulary {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return &Vocabulary{words: set}
}

// EmptyVocabulary returns a vocabulary that knows no words. It is the
// documented fallback when loading the word source fails.
func EmptyVocabulary() *Vocabulary {
	return &Vocabulary{words: map[string]struct{}{}}
}

// LoadEmbeddedVocabulary builds the vocabulary from the word list compiled
// into the binary.
func LoadEmbeddedVocabulary() (*Vocabulary, error) {
	v, err := readVocabulary(strings.NewReader(embeddedWords))
	if err != nil {
		return nil, fmt.Errorf("embedded word list: %w", err)
	}
	return v, nil
}

// LoadVocabularyFile builds a vocabulary from a file with one word per
// line. Blank lines and lines starting with '#' are skipped.
func LoadVocabularyFile(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer func() { _ = f.Close() }()

	v, err := readVocabulary(f)
	if err != nil {
		return nil, fmt.Errorf("word list %s: %w", path, err)
	}
	return v, nil
}

func readVocabulary(r io.Reader) (*Vocabulary, error) {
	set := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return &Vocabulary{words: set}, nil
}

// Contains reports whether token is a known word. Tokens are expected to be
// lowercase already (the tokenizer lowercases), but lookup is normalized
// anyway.
func (v *Vocabulary) Contains(token string) bool {
	if v == nil {
		return false
	}
	_, ok := v.words[strings.ToLower(token)]
	return ok
}

// Len returns the number of known words.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.words)
}
