package api

// SentenceResponse is the body of a successful GET /get_sentence.
type SentenceResponse struct {
	Sentence string `json:"sentence"`
}

// AnalyzeRequest is the body of POST /analyze_response.
type AnalyzeRequest struct {
	UserText string `json:"userText" validate:"required"`
	Sentence string `json:"sentence" validate:"required"`
}

// AnalyzeResponse is the body of a successful POST /analyze_response.
// IsValid is always true on the success path; validation failures take the
// error-body path instead. Similarity reports how close the transcription
// is to the reference and does not feed into the score.
type AnalyzeResponse struct {
	Score      float64 `json:"score"`
	IsValid    bool    `json:"isValid"`
	Similarity float64 `json:"similarity"`
}

// GenerateReportRequest is the body of POST /generate_report. The client
// resubmits the full session history; the server keeps no per-session
// state.
type GenerateReportRequest struct {
	UserName  string    `json:"userName"`
	UserID    string    `json:"userId"`
	Responses []string  `json:"responses" validate:"required,min=1"`
	Scores    []float64 `json:"scores" validate:"required,min=1"`
}

// GenerateReportResponse is the body of a successful POST /generate_report.
type GenerateReportResponse struct {
	AvgScore float64 `json:"avgScore"`
	Verdict  string  `json:"verdict"`
	PDFPath  string  `json:"pdfPath"`
}
