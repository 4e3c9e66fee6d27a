package main

import (
	"log/slog"

	"github.com/jmallard/lexiscreen/internal/config"
	"github.com/jmallard/lexiscreen/internal/report"
	"github.com/jmallard/lexiscreen/internal/screening"
	"github.com/jmallard/lexiscreen/internal/service"
)

// application holds the wired components shared across the server's
// lifetime. Everything here is immutable after newApplication returns.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	service service.AssessmentService
}

// newApplication constructs the dependency graph: vocabulary, scorer,
// sentence provider, report generator and the assessment service.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	vocab := loadVocabulary(cfg.Assessment.WordListPath, logger)

	reports, err := report.NewGenerator(cfg.Reports.Dir, logger)
	if err != nil {
		return nil, err
	}

	svc := service.NewAssessmentService(
		screening.NewSentenceProvider(),
		screening.NewScorer(vocab),
		reports,
		logger,
	)

	return &application{
		config:  cfg,
		logger:  logger,
		service: svc,
	}, nil
}

// loadVocabulary loads the configured word list, or the embedded one when
// no path is set. Load failures degrade to an empty vocabulary: scoring
// then treats every token as unknown, which biases toward a positive
// verdict instead of refusing to start.
func loadVocabulary(path string, logger *slog.Logger) *screening.Vocabulary {
	var (
		vocab *screening.Vocabulary
		err   error
	)
	if path != "" {
		vocab, err = screening.LoadVocabularyFile(path)
	} else {
		vocab, err = screening.LoadEmbeddedVocabulary()
	}
	if err != nil {
		logger.Error("failed to load vocabulary, degrading to empty word set",
			"error", err,
			"word_list_path", path)
		return screening.EmptyVocabulary()
	}

	logger.Info("vocabulary loaded", "words", vocab.Len())
	return vocab
}
