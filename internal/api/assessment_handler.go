package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jmallard/lexiscreen/internal/api/shared"
	"github.com/jmallard/lexiscreen/internal/service"
)

// AssessmentHandler handles the assessment HTTP endpoints.
type AssessmentHandler struct {
	service service.AssessmentService
	logger  *slog.Logger
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(svc service.AssessmentService, logger *slog.Logger) *AssessmentHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AssessmentHandler")
	}
	return &AssessmentHandler{
		service: svc,
		logger:  logger.With(slog.String("component", "assessment_handler")),
	}
}

// GetSentence handles GET /get_sentence. It returns a reference sentence
// chosen at random from the fixed corpus.
func (h *AssessmentHandler) GetSentence(w http.ResponseWriter, r *http.Request) {
	sentence, err := h.service.NextSentence(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgSentenceFailed, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, SentenceResponse{Sentence: sentence})
}

// AnalyzeResponse handles POST /analyze_response. It scores a user
// response against a reference sentence.
//
// Missing or empty fields produce HTTP 200 with {"error": "Invalid input"};
// only unexpected internal failures use HTTP 500.
func (h *AssessmentHandler) AnalyzeResponse(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgAnalysisFailed, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		// Required-field failures are part of the validation contract, not
		// server errors.
		shared.RespondWithErrorAndLog(w, r, http.StatusOK, msgInvalidInput, err)
		return
	}

	result, err := h.service.AnalyzeResponse(r.Context(), req.UserText, req.Sentence)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			shared.RespondWithError(w, r, http.StatusOK, msgInvalidInput)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgAnalysisFailed, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AnalyzeResponse{
		Score:      result.Score,
		IsValid:    true,
		Similarity: result.Similarity,
	})
}

// GenerateReport handles POST /generate_report. It aggregates the
// client-supplied session history, renders the PDF artifact and returns
// its path.
func (h *AssessmentHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	var req GenerateReportRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgReportFailed, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusOK, msgInsufficientData, err)
		return
	}

	result, err := h.service.GenerateReport(r.Context(), service.ReportRequest{
		UserName:  req.UserName,
		UserID:    req.UserID,
		Responses: req.Responses,
		Scores:    req.Scores,
	})
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)

		// Unexpected failures in this handler get the report-specific
		// generic message.
		if statusCode == http.StatusInternalServerError && !errors.Is(err, service.ErrReportFailed) {
			safeMessage = msgReportFailed
		}

		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	h.logger.Debug("report ready",
		slog.String("pdf_path", result.PDFPath),
		slog.Float64("avg_score", result.AvgScore))

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateReportResponse{
		AvgScore: result.AvgScore,
		Verdict:  result.Verdict,
		PDFPath:  result.PDFPath,
	})
}
