package detect

import (
	"fmt"
	"regexp"

	"academiclint/internal/config"
	"academiclint/internal/lexicon"
	"academiclint/internal/nlp"
	"academiclint/internal/result"
)

// VaguenessDetector flags underspecified terms with no clear referent.
type VaguenessDetector struct{}

var vaguePatterns = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(lexicon.VagueTerms))
	for _, term := range lexicon.VagueTerms {
		m[term] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return m
}()

var vagueMessages = map[string]string{
	"society":     "Which society? Western? American? Global?",
	"things":      "What things specifically?",
	"stuff":       "What specifically?",
	"significant": "Significant by what measure?",
	"impact":      "What kind of impact? Measured how?",
	"important":   "Important to whom? Why?",
	"interesting": "Interesting in what way?",
	"recently":    "When exactly?",
	"often":       "How often? With what frequency?",
	"sometimes":   "Under what conditions?",
	"many":        "How many? What proportion?",
	"some":        "Which ones specifically?",
	"most":        "What percentage? Based on what data?",
}

var vagueSuggestions = map[string]string{
	"society":     "Specify which society and demographic",
	"things":      "Name the specific items or concepts",
	"stuff":       "Be specific about what you're referring to",
	"significant": "Quantify the significance or define the measure",
	"impact":      "Specify the type and magnitude of impact",
	"important":   "Explain the importance with specific reasons",
	"interesting": "Explain what makes it notable",
	"recently":    "Provide a specific time frame",
	"often":       "Provide frequency or proportion",
	"sometimes":   "Specify the conditions or frequency",
	"many":        "Provide a number or percentage",
	"some":        "Identify which ones specifically",
	"most":        "Cite the data or provide a percentage",
}

func (d *VaguenessDetector) Name() string { return "vagueness" }

func (d *VaguenessDetector) FlagTypes() []result.FlagType {
	return []result.FlagType{result.FlagUnderspecified}
}

func (d *VaguenessDetector) Detect(doc *nlp.ProcessedDocument, cfg config.Config) []result.Flag {
	var flags []result.Flag

	for _, term := range lexicon.VagueTerms {
		if cfg.HasDomainTerm(term) {
			continue
		}

		for _, loc := range vaguePatterns[term].FindAllStringIndex(doc.Text, -1) {
			start, end := loc[0], loc[1]
			original := doc.Text[start:end]

			flags = append(flags, newFlag(
				doc.Text,
				result.FlagUnderspecified,
				original,
				start, end,
				vagueSeverity(term),
				vagueMessage(term, original),
				vagueSuggestion(term, original),
				"",
			))
		}
	}
	return flags
}

func vagueSeverity(term string) result.Severity {
	if lexicon.VagueHighSeverity[term] {
		return result.SeverityHigh
	}
	if lexicon.VagueLowSeverity[term] {
		return result.SeverityLow
	}
	return result.SeverityMedium
}

func vagueMessage(term, original string) string {
	if msg, ok := vagueMessages[term]; ok {
		return msg
	}
	return fmt.Sprintf("%q lacks clear referent or scope", original)
}

func vagueSuggestion(term, original string) string {
	if s, ok := vagueSuggestions[term]; ok {
		return s
	}
	return fmt.Sprintf("Specify what %q refers to", original)
}
