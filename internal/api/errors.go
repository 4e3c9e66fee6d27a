package api

import (
	"errors"
	"net/http"

	"github.com/jmallard/lexiscreen/internal/service"
)

// Generic client-facing messages. Internal error detail never leaves the
// log.
const (
	msgInvalidInput       = "Invalid input"
	msgInsufficientData   = "Insufficient data"
	msgSentenceFailed     = "Error generating sentence"
	msgAnalysisFailed     = "Error processing response"
	msgReportFailed       = "Error generating report"
	msgReportRenderFailed = "Error generating PDF report"
)

// MapErrorToStatusCode maps service errors onto the wire contract's status
// codes. Validation-class errors deliberately map to 200; the error is
// carried in the body instead of the status line.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInsufficientData):
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the sanitized message for a service error.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return msgInvalidInput
	case errors.Is(err, service.ErrInsufficientData):
		return msgInsufficientData
	case errors.Is(err, service.ErrReportFailed):
		return msgReportRenderFailed
	default:
		return "An unexpected error occurred"
	}
}
