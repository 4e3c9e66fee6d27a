package api

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/jmallard/lexiscreen/internal/api/shared"
	"github.com/jmallard/lexiscreen/internal/screening"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// indexData feeds the client-side assessment flow its configuration.
type indexData struct {
	MaxAttempts         int
	SimilarityThreshold float64
}

// Index handles GET /. It serves the assessment page; the page drives the
// whole session client-side and resubmits the history on report
// generation.
func (h *AssessmentHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf strings.Builder
	data := indexData{
		MaxAttempts:         screening.MaxAttempts,
		SimilarityThreshold: screening.SimilarityThreshold,
	}

	// Render to a buffer first so a template failure never sends a
	// half-written page.
	if err := indexTemplate.Execute(&buf, data); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(buf.String())); err != nil {
		h.logger.Error("failed to write assessment page", "error", err)
	}
}
