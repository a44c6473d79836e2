package output

import (
	"encoding/json"
	"io"

	"academiclint/internal/result"
)

// JSONFormatter emits the result as indented JSON with rounded floats
// so that identical analyses serialize byte-identically.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, res *result.AnalysisResult) error {
	normalized := *res
	normalized.Summary.Density = RoundFloat(res.Summary.Density)
	normalized.Summary.FillerRatio = RoundFloat(res.Summary.FillerRatio)

	normalized.Paragraphs = make([]result.ParagraphResult, len(res.Paragraphs))
	for i, p := range res.Paragraphs {
		p.Density = RoundFloat(p.Density)
		normalized.Paragraphs[i] = p
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(&normalized)
}
