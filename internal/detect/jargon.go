package detect

import (
	"fmt"
	"strings"

	"academiclint/internal/config"
	"academiclint/internal/lexicon"
	"academiclint/internal/nlp"
	"academiclint/internal/result"
)

// jargonRatioThreshold is the jargon-to-word ratio above which a
// sentence is flagged, given at least jargonMinTerms jargon words.
const (
	jargonRatioThreshold = 0.30
	jargonMinTerms       = 3
)

// JargonDetector flags sentences dense with unexplained technical terms.
type JargonDetector struct{}

func (d *JargonDetector) Name() string { return "jargon" }

func (d *JargonDetector) FlagTypes() []result.FlagType {
	return []result.FlagType{result.FlagJargonDense}
}

func (d *JargonDetector) Detect(doc *nlp.ProcessedDocument, cfg config.Config) []result.Flag {
	var flags []result.Flag

	for _, sentence := range doc.Sentences {
		words := wordPattern.FindAllString(sentence.Text, -1)
		if len(words) == 0 {
			continue
		}

		var jargonTerms []string
		for _, word := range words {
			if isJargon(word, cfg) {
				jargonTerms = append(jargonTerms, word)
			}
		}

		ratio := float64(len(jargonTerms)) / float64(len(words))
		if ratio <= jargonRatioThreshold || len(jargonTerms) < jargonMinTerms {
			continue
		}
		if hasExplanations(sentence.Text, len(jargonTerms)) {
			continue
		}

		display := jargonTerms
		if len(display) > 5 {
			display = display[:5]
		}

		start, end := sentence.Span.Start, sentence.Span.End
		line, col := LineColumn(doc.Text, start)
		flags = append(flags, result.Flag{
			Type:     result.FlagJargonDense,
			Term:     strings.Join(display, ", "),
			Span:     result.Span{Start: start, End: end},
			Line:     line,
			Column:   col,
			Severity: result.SeverityMedium,
			Message: fmt.Sprintf("%d technical terms, %d explanations",
				len(jargonTerms), countExplanations(sentence.Text)),
			Suggestion: "Define technical terms or specify intended audience",
			Context:    sentence.Text,
		})
	}
	return flags
}

// isJargon classifies a word as jargon when it is long or has complex
// morphology, and is neither common vocabulary nor a domain term.
func isJargon(word string, cfg config.Config) bool {
	lower := strings.ToLower(word)

	if lexicon.CommonWords[lower] || lexicon.FunctionWords[lower] {
		return false
	}
	if cfg.HasDomainTerm(lower) {
		return false
	}
	if len(word) < 5 {
		return false
	}

	for _, suffix := range lexicon.ComplexSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return len(word) >= 8
}

// hasExplanations reports whether explanatory markers cover at least
// half the jargon terms.
func hasExplanations(text string, termCount int) bool {
	return countExplanations(text)*2 >= termCount
}

func countExplanations(text string) int {
	count := 0
	for _, p := range lexicon.ExplanationPatterns {
		count += len(p.FindAllStringIndex(text, -1))
	}
	return count
}
