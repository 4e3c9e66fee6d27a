package screening

import "errors"

// ErrInsufficientData is returned when a session has no scored attempts to
// aggregate.
var ErrInsufficientData = errors.New("insufficient data")

// Verdict is the binary classification of a session's mean score.
type Verdict string

const (
	VerdictPositive Verdict = "POSITIVE"
	VerdictNegative Verdict = "NEGATIVE"
)

// Description returns the verdict sentence shown to users and printed in
// reports.
func (v Verdict) Description() string {
	if v == VerdictPositive {
		return "Likelihood of dyslexia detected."
	}
	return "No significant signs of dyslexia detected."
}

// Attempt is one scored response within a session. Sessions are owned by
// the caller; the server holds no per-session state.
type Attempt struct {
	Response string
	Score    float64
}

// Summary is the aggregate outcome of a session.
type Summary struct {
	MeanScore float64
	Verdict   Verdict
}

// Aggregate computes the mean of the attempt scores and classifies it
// against DyslexiaScoreThreshold. A mean exactly at the threshold counts as
// positive. Returns ErrInsufficientData when scores is empty.
func Aggregate(scores []float64) (Summary, error) {
	if len(scores) == 0 {
		return Summary{}, ErrInsufficientData
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(len(scores))

	verdict := VerdictNegative
	if mean >= DyslexiaScoreThreshold {
		verdict = VerdictPositive
	}
	return Summary{MeanScore: mean, Verdict: verdict}, nil
}
