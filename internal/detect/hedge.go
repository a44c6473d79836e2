package detect

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"academiclint/internal/config"
	"academiclint/internal/lexicon"
	"academiclint/internal/nlp"
	"academiclint/internal/result"
)

// hedgeThreshold is the clause-local hedge count that triggers a flag.
// Single hedges are fine; stacking is the problem.
const hedgeThreshold = 3

// HedgeDetector flags clauses that stack three or more hedges.
type HedgeDetector struct{}

var (
	clauseSplit   = regexp.MustCompile(`[,;:]`)
	hedgePatterns = func() []*regexp.Regexp {
		out := make([]*regexp.Regexp, len(lexicon.Hedges))
		for i, h := range lexicon.Hedges {
			out[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(h) + `\b`)
		}
		return out
	}()
)

func (d *HedgeDetector) Name() string { return "hedge" }

func (d *HedgeDetector) FlagTypes() []result.FlagType {
	return []result.FlagType{result.FlagHedgeStack}
}

func (d *HedgeDetector) Detect(doc *nlp.ProcessedDocument, cfg config.Config) []result.Flag {
	var flags []result.Flag

	for _, sentence := range doc.Sentences {
		searchFrom := 0
		for _, clause := range clauseSplit.Split(sentence.Text, -1) {
			count := countHedges(clause)
			if count < hedgeThreshold {
				continue
			}

			stripped := strings.TrimSpace(clause)
			start := sentence.Span.Start
			if off := strings.Index(sentence.Text[searchFrom:], stripped); off >= 0 {
				start = sentence.Span.Start + searchFrom + off
				searchFrom += off + len(stripped)
			}
			end := start + len(stripped)

			severity := result.SeverityMedium
			if count >= 5 {
				severity = result.SeverityHigh
			}

			confidence := math.Pow(0.9, float64(count))
			line, col := LineColumn(doc.Text, start)
			flags = append(flags, result.Flag{
				Type:       result.FlagHedgeStack,
				Term:       fmt.Sprintf("%d hedges", count),
				Span:       result.Span{Start: start, End: end},
				Line:       line,
				Column:     col,
				Severity:   severity,
				Message:    fmt.Sprintf("%d hedges in one clause reduces confidence to ~%.0f%%", count, confidence*100),
				Suggestion: "Make a clear claim or acknowledge uncertainty cleanly",
				Context:    stripped,
			})
		}
	}
	return flags
}

// countHedges counts distinct hedge terms present in the clause, whole
// words only.
func countHedges(clause string) int {
	count := 0
	for _, p := range hedgePatterns {
		if p.MatchString(clause) {
			count++
		}
	}
	return count
}
