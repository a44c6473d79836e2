package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"academiclint/internal/result"
)

// TerminalFormatter renders a human-readable report with severity
// coloring.
type TerminalFormatter struct {
	opts Options
}

func (f *TerminalFormatter) Format(w io.Writer, res *result.AnalysisResult) error {
	useColor := f.shouldColor()

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	if !useColor {
		color.NoColor = true
	}

	bold.Fprintf(w, "Semantic density: %s (%s)\n",
		FormatFloat(res.Summary.Density), res.Summary.DensityGrade)
	fmt.Fprintf(w, "%d flags across %d paragraphs, %d words, %d concepts\n\n",
		res.Summary.FlagCount, res.Summary.ParagraphCount,
		res.Summary.WordCount, res.Summary.ConceptCount)

	for _, para := range res.Paragraphs {
		if len(para.Flags) == 0 {
			continue
		}

		dim.Fprintf(w, "Paragraph %d (density %s):\n",
			para.Index+1, FormatFloat(para.Density))

		for _, flag := range para.Flags {
			fmt.Fprintf(w, "  %s:%d:%d %s %q\n",
				severityColor(flag.Severity, useColor),
				flag.Line, flag.Column, flag.Type, flag.Term)
			fmt.Fprintf(w, "      %s\n", flag.Message)
			if f.opts.Output.ShowSuggestions {
				dim.Fprintf(w, "      fix: %s\n", flag.Suggestion)
			}
			if f.opts.Output.ShowExamples && flag.ExampleRevision != "" {
				dim.Fprintf(w, "      e.g. %s\n", flag.ExampleRevision)
			}
		}
		fmt.Fprintln(w)
	}

	if len(res.OverallSuggestions) > 0 {
		bold.Fprintln(w, "Suggestions:")
		for _, s := range res.OverallSuggestions {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
	return nil
}

func (f *TerminalFormatter) shouldColor() bool {
	switch f.opts.Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func severityColor(s result.Severity, useColor bool) string {
	if !useColor {
		return string(s)
	}
	switch s {
	case result.SeverityHigh:
		return color.RedString(string(s))
	case result.SeverityMedium:
		return color.YellowString(string(s))
	default:
		return color.CyanString(string(s))
	}
}
