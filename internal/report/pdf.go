// Package report renders assessment results into fixed-layout PDF
// documents on disk. The layout is a single Letter page: header, patient
// identity block, one block per attempt, and a final block with the mean
// score and verdict.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/jmallard/lexiscreen/internal/screening"
)

// Subject identifies the person being screened.
type Subject struct {
	Name string
	ID   string
}

// Generator writes PDF reports into a fixed directory. It is safe for
// concurrent use; each call renders an independent document.
type Generator struct {
	dir    string
	logger *slog.Logger
	now    func() time.Time
}

// NewGenerator returns a Generator that writes into dir. The directory is
// created if it does not exist.
func NewGenerator(dir string, logger *slog.Logger) (*Generator, error) {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for Generator")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create reports directory: %w", err)
	}
	return &Generator{
		dir:    dir,
		logger: logger.With(slog.String("component", "report_generator")),
		now:    time.Now,
	}, nil
}

// Generate renders the report and returns the path of the written PDF,
// using forward slashes so it doubles as a URL path. The filename embeds
// the subject's display name and a YYYYMMDD_HHMMSS timestamp; two reports
// for the same name within the same second collide and the later write
// wins — that matches the artifact contract and is not deduplicated.
//
// On any rendering or write failure the partial file is removed and only
// the error is returned; a path is never handed out for a broken artifact.
func (g *Generator) Generate(
	subject Subject,
	attempts []screening.Attempt,
	summary screening.Summary,
) (string, error) {
	if len(attempts) == 0 {
		return "", screening.ErrInsufficientData
	}

	now := g.now()
	reportID := uuid.New()
	filename := fmt.Sprintf("dyslexia_report_%s_%s.pdf",
		sanitizeName(subject.Name), now.Format("20060102_150405"))
	path := filepath.Join(g.dir, filename)

	if err := g.render(path, subject, attempts, summary, now, reportID); err != nil {
		// Best-effort cleanup of a partially written artifact.
		_ = os.Remove(path)
		return "", err
	}

	g.logger.Info("report generated",
		slog.String("report_id", reportID.String()),
		slog.String("path", path),
		slog.Int("attempts", len(attempts)),
		slog.String("verdict", string(summary.Verdict)))

	return filepath.ToSlash(path), nil
}

func (g *Generator) render(
	path string,
	subject Subject,
	attempts []screening.Attempt,
	summary screening.Summary,
	now time.Time,
	reportID uuid.UUID,
) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(50, 50, "Dyslexia Assessment Report")

	// Patient information
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(50, 100, "Patient Information")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(50, 120, fmt.Sprintf("Name: %s", subject.Name))
	pdf.Text(50, 140, fmt.Sprintf("ID: %s", subject.ID))
	pdf.Text(50, 160, fmt.Sprintf("Date: %s", now.Format("2006-01-02 15:04")))

	// Assessment results
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(50, 200, "Assessment Results")

	y := 220.0
	pdf.SetFont("Helvetica", "", 12)
	for i, attempt := range attempts {
		pdf.Text(50, y, fmt.Sprintf("Attempt %d:", i+1))
		pdf.Text(70, y+20, fmt.Sprintf("Response: %s", attempt.Response))
		pdf.Text(70, y+40, fmt.Sprintf("Score: %.3f", attempt.Score))
		y += 70
	}

	// Final assessment
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(50, y+20, "Final Assessment")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(50, y+40, fmt.Sprintf("Average Score: %.3f", summary.MeanScore))
	pdf.Text(50, y+60, fmt.Sprintf("Verdict: %s", summary.Verdict.Description()))

	// Footer
	pdf.SetFont("Helvetica", "", 8)
	_, pageH := pdf.GetPageSize()
	pdf.Text(50, pageH-30, fmt.Sprintf("Report ID: %s", reportID))

	if pdf.Err() {
		return fmt.Errorf("render report: %w", pdf.Error())
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

// sanitizeName maps a display name onto a filename-safe form: letters,
// digits, dash and underscore are kept, spaces become underscores,
// everything else is dropped. An empty result falls back to "unknown".
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "unknown"
	}
	return b.String()
}
