package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmallard/lexiscreen/internal/report"
	"github.com/jmallard/lexiscreen/internal/screening"
)

// AnalysisResult is the outcome of scoring one response.
type AnalysisResult struct {
	// Score is the dyslexia-indicator score (mean per-token penalty).
	Score float64
	// Similarity is the 0..1 transcription-similarity ratio between the
	// response and the reference sentence.
	Similarity float64
}

// ReportRequest carries the full session history supplied by the client.
// The server accumulates nothing between calls; responses and scores are
// resubmitted in full here.
type ReportRequest struct {
	UserName  string
	UserID    string
	Responses []string
	Scores    []float64
}

// ReportResult describes a generated report artifact.
type ReportResult struct {
	AvgScore float64
	Verdict  string
	PDFPath  string
}

// AssessmentService exposes the screening operations behind the HTTP
// surface.
type AssessmentService interface {
	// NextSentence returns a reference sentence chosen uniformly at random
	// from the fixed corpus. Repeats across calls are expected.
	NextSentence(ctx context.Context) (string, error)

	// AnalyzeResponse scores a user response against a reference sentence.
	// Returns ErrInvalidInput when either argument is empty after trimming.
	AnalyzeResponse(ctx context.Context, userText, sentence string) (*AnalysisResult, error)

	// GenerateReport aggregates a session and renders the PDF artifact.
	// Returns ErrInsufficientData for an empty session and ErrReportFailed
	// (wrapped) when the artifact cannot be produced.
	GenerateReport(ctx context.Context, req ReportRequest) (*ReportResult, error)
}

// ReportGenerator abstracts the PDF emitter so tests can inject failures
// and observe the documented error handling.
type ReportGenerator interface {
	Generate(subject report.Subject, attempts []screening.Attempt, summary screening.Summary) (string, error)
}

type assessmentService struct {
	sentences *screening.SentenceProvider
	scorer    *screening.Scorer
	reports   ReportGenerator
	logger    *slog.Logger
}

// NewAssessmentService wires the screening core and report generator into
// an AssessmentService.
func NewAssessmentService(
	sentences *screening.SentenceProvider,
	scorer *screening.Scorer,
	reports ReportGenerator,
	logger *slog.Logger,
) AssessmentService {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AssessmentService")
	}
	return &assessmentService{
		sentences: sentences,
		scorer:    scorer,
		reports:   reports,
		logger:    logger.With(slog.String("component", "assessment_service")),
	}
}

func (s *assessmentService) NextSentence(_ context.Context) (string, error) {
	return s.sentences.Next(), nil
}

func (s *assessmentService) AnalyzeResponse(
	_ context.Context,
	userText, sentence string,
) (*AnalysisResult, error) {
	userText = strings.TrimSpace(userText)
	sentence = strings.TrimSpace(sentence)
	if userText == "" || sentence == "" {
		return nil, ErrInvalidInput
	}

	result := &AnalysisResult{
		Score:      s.scorer.Score(userText, sentence),
		Similarity: screening.Similarity(userText, sentence),
	}

	s.logger.Debug("response analyzed",
		slog.Float64("score", result.Score),
		slog.Float64("similarity", result.Similarity),
		slog.Int("response_len", len(userText)))

	return result, nil
}

func (s *assessmentService) GenerateReport(
	_ context.Context,
	req ReportRequest,
) (*ReportResult, error) {
	if len(req.Responses) == 0 || len(req.Scores) == 0 {
		return nil, ErrInsufficientData
	}
	if len(req.Scores) > screening.MaxAttempts {
		// The session bound is enforced client-side; an oversized history
		// is still aggregated but worth noticing in the logs.
		s.logger.Warn("session exceeds attempt bound",
			slog.Int("scores", len(req.Scores)),
			slog.Int("max_attempts", screening.MaxAttempts))
	}

	summary, err := screening.Aggregate(req.Scores)
	if err != nil {
		if errors.Is(err, screening.ErrInsufficientData) {
			return nil, ErrInsufficientData
		}
		return nil, err
	}

	// Pair responses with scores positionally; a length mismatch keeps the
	// shorter prefix, mirroring how the client builds the two lists in
	// lockstep.
	n := len(req.Responses)
	if len(req.Scores) < n {
		n = len(req.Scores)
	}
	attempts := make([]screening.Attempt, n)
	for i := 0; i < n; i++ {
		attempts[i] = screening.Attempt{Response: req.Responses[i], Score: req.Scores[i]}
	}

	subject := report.Subject{Name: orUnknown(req.UserName), ID: orUnknown(req.UserID)}
	path, err := s.reports.Generate(subject, attempts, summary)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReportFailed, err)
	}

	return &ReportResult{
		AvgScore: summary.MeanScore,
		Verdict:  summary.Verdict.Description(),
		PDFPath:  path,
	}, nil
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}
