package detect

import (
	"regexp"
	"strings"

	"academiclint/internal/config"
	"academiclint/internal/lexicon"
	"academiclint/internal/nlp"
	"academiclint/internal/result"
)

// weaselCitationWindow is how far after a weasel phrase a citation must
// appear to count as attribution.
const weaselCitationWindow = 80

// WeaselDetector flags vague attribution phrases with no source.
type WeaselDetector struct{}

func (d *WeaselDetector) Name() string { return "weasel" }

func (d *WeaselDetector) FlagTypes() []result.FlagType {
	return []result.FlagType{result.FlagWeasel}
}

func (d *WeaselDetector) Detect(doc *nlp.ProcessedDocument, cfg config.Config) []result.Flag {
	patterns := lexicon.WeaselPatterns
	// User-supplied weasels are literal-escaped, never raw regex.
	for _, extra := range cfg.AdditionalWeasels {
		extra = strings.TrimSpace(extra)
		if extra == "" {
			continue
		}
		patterns = append(patterns,
			regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(extra)+`\b`))
	}

	var flags []result.Flag
	for _, pattern := range patterns {
		for _, loc := range pattern.FindAllStringIndex(doc.Text, -1) {
			start, end := loc[0], loc[1]

			if HasNearbyCitation(doc.Text, end, weaselCitationWindow, After) {
				continue
			}

			term := doc.Text[start:end]
			flags = append(flags, newFlag(
				doc.Text,
				result.FlagWeasel,
				term,
				start, end,
				result.SeverityMedium,
				"Vague attribution that avoids accountability",
				weaselSuggestion(term),
				"",
			))
		}
	}
	return flags
}

func weaselSuggestion(term string) string {
	lower := strings.ToLower(term)
	switch {
	case strings.Contains(lower, "some") || strings.Contains(lower, "many") || strings.Contains(lower, "most"):
		return "Name specific sources or cite references"
	case strings.Contains(lower, "it is") || strings.Contains(lower, "it's") || strings.Contains(lower, "it has"):
		return "State who believes this and cite the source"
	case strings.Contains(lower, "research") || strings.Contains(lower, "studies"):
		return "Cite the specific research or studies"
	default:
		return "Provide specific attribution with citations"
	}
}
