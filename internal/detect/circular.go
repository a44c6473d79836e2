package detect

import (
	"fmt"
	"regexp"
	"strings"

	"academiclint/internal/config"
	"academiclint/internal/nlp"
	"academiclint/internal/result"
)

// CircularDetector flags definitions that use a form of the defined term.
type CircularDetector struct{}

// definitionPatterns each capture (term, definition).
var definitionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(\w+)\s+(?:is|are|means?|refers?\s+to)\s+(?:a|an|the)?\s*(.*)`),
	regexp.MustCompile(`(?i)^(\w+)\s*:\s+(?:a|an|the)?\s*(.*)`),
	regexp.MustCompile(`(?i)^(?:we\s+)?(?:can\s+)?define\s+(\w+)\s+as\s+(?:a|an|the)?\s*(.*)`),
	regexp.MustCompile(`(?i)^(\w+)\s+(?:is|are)\s+defined\s+as\s+(?:a|an|the)?\s*(.*)`),
	regexp.MustCompile(`(?i)^by\s+(\w+)\s+(?:we|I)\s+mean\s+(?:a|an|the)?\s*(.*)`),
	regexp.MustCompile(`(?i)^the\s+definition\s+of\s+(\w+)\s+is\s+(?:a|an|the)?\s*(.*)`),
	regexp.MustCompile(`(?i)^(\w+)\s+is\s+when\s+(.*)`),
	regexp.MustCompile(`(?i)^(\w+)\s+(?:is|are)\s+understood\s+(?:as|to\s+be)\s+(?:a|an|the)?\s*(.*)`),
	regexp.MustCompile(`(?i)^(\w+)\s+(?:is|are)\s+characterized\s+(?:by|as)\s+(?:a|an|the)?\s*(.*)`),
}

// rootSuffixes are stripped to compare morphological roots.
var rootSuffixes = []string{
	"ness", "ment", "tion", "sion", "ing", "ed", "er", "est", "ly", "ity", "dom",
}

var wordPattern = regexp.MustCompile(`\b\w+\b`)

var circularExamples = map[string]string{
	"freedom":   "the ability to act without external constraint in domain X",
	"democracy": "a system where citizens vote to select representatives",
	"justice":   "the fair distribution of benefits and burdens in society",
	"love":      "a strong affection characterized by care and commitment",
}

func (d *CircularDetector) Name() string { return "circular" }

func (d *CircularDetector) FlagTypes() []result.FlagType {
	return []result.FlagType{result.FlagCircular}
}

func (d *CircularDetector) Detect(doc *nlp.ProcessedDocument, cfg config.Config) []result.Flag {
	var flags []result.Flag

	for _, sentence := range doc.Sentences {
		for _, pattern := range definitionPatterns {
			m := pattern.FindStringSubmatch(sentence.Text)
			if m == nil {
				continue
			}

			term, definition := m[1], m[2]
			if !isCircular(term, definition) {
				continue
			}

			start, end := sentence.Span.Start, sentence.Span.End
			line, col := LineColumn(doc.Text, start)
			flags = append(flags, result.Flag{
				Type:            result.FlagCircular,
				Term:            term,
				Span:            result.Span{Start: start, End: end},
				Line:            line,
				Column:          col,
				Severity:        result.SeverityHigh,
				Message:         fmt.Sprintf("%q is defined using a form of itself", term),
				Suggestion:      "Define in terms of specific properties or examples",
				ExampleRevision: circularExample(term),
				Context:         sentence.Text,
			})
			break
		}
	}
	return flags
}

// isCircular reports whether a definition re-uses the defined term's
// morphological root. Non-circular definitions never match.
func isCircular(term, definition string) bool {
	termLower := strings.ToLower(term)
	termRoot := morphRoot(termLower)

	for _, word := range wordPattern.FindAllString(strings.ToLower(definition), -1) {
		if morphRoot(word) == termRoot || word == termLower {
			return true
		}
	}
	return false
}

// morphRoot strips one common suffix to approximate a word's root.
func morphRoot(word string) string {
	for _, suffix := range rootSuffixes {
		if strings.HasSuffix(word, suffix) && len(word) > len(suffix)+2 {
			return word[:len(word)-len(suffix)]
		}
	}
	return word
}

func circularExample(term string) string {
	if ex, ok := circularExamples[strings.ToLower(term)]; ok {
		return ex
	}
	return fmt.Sprintf("Define %q using properties, examples, or necessary/sufficient conditions", term)
}
