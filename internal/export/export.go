// Package export writes analysis results to report files, with optional
// gzip compression for archival.
package export

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"academiclint/internal/lerr"
	"academiclint/internal/result"
)

// WriteReport writes the result as JSON to path. Paths ending in .gz are
// gzip-compressed.
func WriteReport(path string, res *result.AnalysisResult) error {
	f, err := os.Create(path)
	if err != nil {
		return lerr.Wrap(lerr.InternalError, "failed to create report file", err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".gz") {
		gw := gzip.NewWriter(f)
		if err := encode(gw, res); err != nil {
			gw.Close()
			return err
		}
		if err := gw.Close(); err != nil {
			return lerr.Wrap(lerr.InternalError, "failed to finalize compressed report", err)
		}
		return nil
	}

	return encode(f, res)
}

func encode(w interface{ Write([]byte) (int, error) }, res *result.AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(res); err != nil {
		return lerr.Wrap(lerr.InternalError, "failed to encode report", err)
	}
	return nil
}
