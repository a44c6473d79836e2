package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academiclint/internal/result"
)

func sampleResult() *result.AnalysisResult {
	return &result.AnalysisResult{
		ID:        "check_report",
		CreatedAt: "2026-08-30T12:00:00Z",
		Summary: result.Summary{
			Density:      0.61,
			DensityGrade: result.GradeDense,
			FlagCount:    1,
		},
	}
}

func TestWriteReportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteReport(path, sampleResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded result.AnalysisResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "check_report", decoded.ID)
	assert.Equal(t, result.GradeDense, decoded.Summary.DensityGrade)
}

func TestWriteReportGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json.gz")
	require.NoError(t, WriteReport(path, sampleResult()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	gr, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer gr.Close()

	var decoded result.AnalysisResult
	require.NoError(t, json.NewDecoder(gr).Decode(&decoded))
	assert.Equal(t, "check_report", decoded.ID)
}

func TestWriteReportBadPath(t *testing.T) {
	err := WriteReport(filepath.Join(t.TempDir(), "missing", "report.json"), sampleResult())
	assert.Error(t, err)
}
