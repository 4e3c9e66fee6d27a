// Package screening implements the rule-based dyslexia screening heuristic:
// tokenization, vocabulary lookup, per-word scoring against a reference
// sentence, session aggregation, and reference sentence selection.
//
// Everything in this package is a pure, fast computation over immutable
// tables. All types are safe for concurrent use after construction.
package screening
