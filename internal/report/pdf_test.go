package report

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallard/lexiscreen/internal/screening"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	}
}

func TestGenerateWritesPDF(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "reports")
	gen, err := NewGenerator(dir, discardLogger())
	require.NoError(t, err)
	gen.now = fixedClock()

	attempts := []screening.Attempt{
		{Response: "The quick brown fox jumps over the lazy dog.", Score: 0.333},
		{Response: "Teh quick brown fox", Score: 4.25},
	}
	summary, err := screening.Aggregate([]float64{0.333, 4.25})
	require.NoError(t, err)

	path, err := gen.Generate(Subject{Name: "Ada Lovelace", ID: "P-001"}, attempts, summary)
	require.NoError(t, err)

	assert.Equal(t, filepath.ToSlash(filepath.Join(dir, "dyslexia_report_Ada_Lovelace_20260314_092653.pdf")), path)

	data, err := os.ReadFile(filepath.FromSlash(path))
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateRejectsEmptySession(t *testing.T) {
	t.Parallel()

	gen, err := NewGenerator(t.TempDir(), discardLogger())
	require.NoError(t, err)

	_, err = gen.Generate(Subject{Name: "x", ID: "1"}, nil, screening.Summary{})
	assert.ErrorIs(t, err, screening.ErrInsufficientData)
}

func TestGenerateLeavesNoArtifactOnFailure(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "reports")
	gen, err := NewGenerator(dir, discardLogger())
	require.NoError(t, err)
	gen.now = fixedClock()

	// Removing the directory after construction makes the final write fail.
	require.NoError(t, os.RemoveAll(dir))

	attempts := []screening.Attempt{{Response: "cat", Score: 0}}
	_, err = gen.Generate(Subject{Name: "x", ID: "1"}, attempts, screening.Summary{Verdict: screening.VerdictNegative})
	assert.Error(t, err)
}

func TestSanitizeName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in, out string
	}{
		{"Ada Lovelace", "Ada_Lovelace"},
		{"../../etc/passwd", "etcpasswd"},
		{"", "unknown"},
		{"!!!", "unknown"},
		{"jo-anne_2", "jo-anne_2"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.out, sanitizeName(tc.in), "input %q", tc.in)
	}
}
