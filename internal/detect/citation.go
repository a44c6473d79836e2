package detect

import (
	"regexp"
	"strings"

	"academiclint/internal/config"
	"academiclint/internal/lexicon"
	"academiclint/internal/nlp"
	"academiclint/internal/result"
)

// CitationDetector flags sentences making claims that need a source.
// At most one flag per sentence.
type CitationDetector struct{}

var yearPattern = regexp.MustCompile(`\d{4}`)

func (d *CitationDetector) Name() string { return "citation" }

func (d *CitationDetector) FlagTypes() []result.FlagType {
	return []result.FlagType{result.FlagCitationNeeded}
}

func (d *CitationDetector) Detect(doc *nlp.ProcessedDocument, cfg config.Config) []result.Flag {
	var flags []result.Flag

	for _, sentence := range doc.Sentences {
		for _, pattern := range lexicon.NeedsCitationPatterns {
			m := pattern.FindStringIndex(sentence.Text)
			if m == nil {
				continue
			}
			if ContainsCitation(sentence.Text) {
				break
			}

			matched := sentence.Text[m[0]:m[1]]
			severity := result.SeverityMedium
			if pattern == lexicon.StatisticPattern {
				severity = result.SeverityHigh
			}

			start, end := sentence.Span.Start, sentence.Span.End
			line, col := LineColumn(doc.Text, start)
			flags = append(flags, result.Flag{
				Type:       result.FlagCitationNeeded,
				Term:       matched,
				Span:       result.Span{Start: start, End: end},
				Line:       line,
				Column:     col,
				Severity:   severity,
				Message:    citationMessage(matched),
				Suggestion: "Add a citation to support this claim",
				Context:    sentence.Text,
			})
			break
		}
	}
	return flags
}

func citationMessage(matched string) string {
	lower := strings.ToLower(matched)
	switch {
	case strings.Contains(matched, "%") || strings.Contains(lower, "percent"):
		return "Specific statistic requires a source"
	case yearPattern.MatchString(matched):
		return "Historical claim needs citation"
	case strings.Contains(lower, "studies") || strings.Contains(lower, "research"):
		return "'Studies show' without citation is a weasel pattern"
	case strings.Contains(lower, "according to"):
		return "Attribution without specific source"
	default:
		return "This claim needs supporting evidence"
	}
}
