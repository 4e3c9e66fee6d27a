package screening

import (
	"math/rand"
	"sync"
	"time"
)

// testSentences is the fixed corpus of reference sentences.
var testSentences = [10]string{
	"The quick brown fox jumps over the lazy dog.",
	"She sells seashells by the seashore.",
	"How vexingly quick daft zebras jump.",
	"Pack my box with five dozen liquor jugs.",
	"The five boxing wizards jump quickly.",
	"Two driven jocks help fax my big quiz.",
	"The job requires extra pluck and zeal.",
	"Two golden apples lay upon the table.",
	"A blue butterfly rested on the flower.",
	"The sunset created beautiful colors.",
}

// SentenceProvider selects reference sentences uniformly at random, with
// replacement, from the fixed corpus. Repeats across calls are expected;
// the provider keeps no session memory.
type SentenceProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSentenceProvider returns a provider seeded from the current time.
func NewSentenceProvider() *SentenceProvider {
	return NewSentenceProviderWithSeed(time.Now().UnixNano())
}

// NewSentenceProviderWithSeed returns a provider with a fixed seed, for
// deterministic selection in tests.
func NewSentenceProviderWithSeed(seed int64) *SentenceProvider {
	return &SentenceProvider{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a random sentence from the corpus. Safe for concurrent use;
// the underlying rand source is guarded by a mutex.
func (p *SentenceProvider) Next() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return testSentences[p.rng.Intn(len(testSentences))]
}

// Sentences returns a copy of the full corpus.
func Sentences() []string {
	out := make([]string, len(testSentences))
	copy(out, testSentences[:])
	return out
}
