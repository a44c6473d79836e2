package output

import (
	"fmt"
	"io"

	"academiclint/internal/result"
)

// MarkdownFormatter renders the result as a Markdown report.
type MarkdownFormatter struct {
	opts Options
}

func (f *MarkdownFormatter) Format(w io.Writer, res *result.AnalysisResult) error {
	title := "Analysis"
	if f.opts.Path != "" {
		title = f.opts.Path
	}

	fmt.Fprintf(w, "# Semantic density report: %s\n\n", title)
	fmt.Fprintf(w, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(w, "| Density | %s (%s) |\n", FormatFloat(res.Summary.Density), res.Summary.DensityGrade)
	fmt.Fprintf(w, "| Flags | %d |\n", res.Summary.FlagCount)
	fmt.Fprintf(w, "| Words | %d |\n", res.Summary.WordCount)
	fmt.Fprintf(w, "| Sentences | %d |\n", res.Summary.SentenceCount)
	fmt.Fprintf(w, "| Paragraphs | %d |\n", res.Summary.ParagraphCount)
	fmt.Fprintf(w, "| Concepts | %d |\n\n", res.Summary.ConceptCount)

	for _, para := range res.Paragraphs {
		if len(para.Flags) == 0 {
			continue
		}
		fmt.Fprintf(w, "## Paragraph %d — density %s\n\n",
			para.Index+1, FormatFloat(para.Density))
		for _, flag := range para.Flags {
			fmt.Fprintf(w, "- **%s** (%s) line %d: `%s` — %s\n",
				flag.Type, flag.Severity, flag.Line, flag.Term, flag.Message)
			if f.opts.Output.ShowSuggestions {
				fmt.Fprintf(w, "  - Fix: %s\n", flag.Suggestion)
			}
		}
		fmt.Fprintln(w)
	}

	if len(res.OverallSuggestions) > 0 {
		fmt.Fprintf(w, "## Suggestions\n\n")
		for _, s := range res.OverallSuggestions {
			fmt.Fprintf(w, "- %s\n", s)
		}
	}
	return nil
}
