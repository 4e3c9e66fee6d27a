package service

import "errors"

// Sentinel errors returned by the assessment service. Handlers map these
// onto the wire contract; anything else is an unexpected internal failure.
var (
	// ErrInvalidInput indicates a required field was missing or empty after
	// trimming.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientData indicates a report was requested for a session
	// with no attempts.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrReportFailed indicates the PDF artifact could not be produced.
	ErrReportFailed = errors.New("report generation failed")
)
