package output

import (
	"fmt"
	"io"
	"strings"

	"academiclint/internal/result"
)

// GitHubFormatter emits GitHub Actions workflow annotations, one per
// flag, so findings surface inline on pull requests.
type GitHubFormatter struct {
	opts Options
}

func (f *GitHubFormatter) Format(w io.Writer, res *result.AnalysisResult) error {
	for _, para := range res.Paragraphs {
		for _, flag := range para.Flags {
			level := "warning"
			if flag.Severity == result.SeverityHigh {
				level = "error"
			} else if flag.Severity == result.SeverityLow {
				level = "notice"
			}

			msg := fmt.Sprintf("%s: %s (%s)", flag.Type, flag.Message, flag.Suggestion)
			if f.opts.Path != "" {
				fmt.Fprintf(w, "::%s file=%s,line=%d,col=%d::%s\n",
					level, f.opts.Path, flag.Line, flag.Column, escapeAnnotation(msg))
			} else {
				fmt.Fprintf(w, "::%s line=%d,col=%d::%s\n",
					level, flag.Line, flag.Column, escapeAnnotation(msg))
			}
		}
	}

	fmt.Fprintf(w, "::notice::semantic density %s (%s), %d flags\n",
		FormatFloat(res.Summary.Density), res.Summary.DensityGrade, res.Summary.FlagCount)
	return nil
}

// escapeAnnotation escapes the characters the workflow-command syntax
// reserves.
func escapeAnnotation(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}
