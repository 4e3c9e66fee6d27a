package main

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jmallard/lexiscreen/internal/api"
	apiMiddleware "github.com/jmallard/lexiscreen/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Route paths mirror the assessment page's fetch calls.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	handler := api.NewAssessmentHandler(app.service, app.logger)

	r.Get("/", handler.Index)
	r.Get("/get_sentence", handler.GetSentence)
	r.Post("/analyze_response", handler.AnalyzeResponse)
	r.Post("/generate_report", handler.GenerateReport)

	// Generated PDFs are served from the reports directory so the pdfPath
	// returned by /generate_report doubles as a download link.
	reportsPrefix := "/" + strings.Trim(filepath.ToSlash(app.config.Reports.Dir), "/")
	reportsFS := http.StripPrefix(reportsPrefix+"/",
		http.FileServer(http.Dir(app.config.Reports.Dir)))
	r.Get(reportsPrefix+"/*", reportsFS.ServeHTTP)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
