package screening

import (
	"strings"
	"unicode"
)

// Tokenize splits free text into lowercase word tokens. Runs of letters and
// digits form tokens; everything else is a separator, so punctuation-only
// fragments are dropped. Empty input yields an empty slice.
//
// Tokenize never fails the caller: if the primary tokenization panics for
// any reason it falls back to a naive whitespace split of the lowercased
// text.
func Tokenize(text string) (tokens []string) {
	defer func() {
		if r := recover(); r != nil {
			tokens = strings.Fields(strings.ToLower(text))
		}
	}()

	return splitAlphanumeric(strings.ToLower(text))
}

// splitAlphanumeric returns the maximal runs of letters and digits in s.
func splitAlphanumeric(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
