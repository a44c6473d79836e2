package detect

import (
	"strings"

	"academiclint/internal/config"
	"academiclint/internal/lexicon"
	"academiclint/internal/nlp"
	"academiclint/internal/result"
)

// causalCitationWindow is how far after a causal phrase a citation may
// appear and still support the claim.
const causalCitationWindow = 120

// CausalDetector flags causal claims with no cited evidence nearby.
type CausalDetector struct{}

func (d *CausalDetector) Name() string { return "causal" }

func (d *CausalDetector) FlagTypes() []result.FlagType {
	return []result.FlagType{result.FlagUnsupportedCausal}
}

func (d *CausalDetector) Detect(doc *nlp.ProcessedDocument, cfg config.Config) []result.Flag {
	var flags []result.Flag

	for _, pattern := range lexicon.CausalPatterns {
		for _, loc := range pattern.FindAllStringIndex(doc.Text, -1) {
			start, end := loc[0], loc[1]

			if HasNearbyCitation(doc.Text, end, causalCitationWindow, After) {
				continue
			}

			term := doc.Text[start:end]
			flags = append(flags, newFlag(
				doc.Text,
				result.FlagUnsupportedCausal,
				term,
				start, end,
				result.SeverityMedium,
				"Causal claim without cited evidence or mechanism",
				"Specify the mechanism, cite evidence, or use 'correlates with'",
				causalExample(term),
			))
		}
	}
	return flags
}

func causalExample(term string) string {
	lower := strings.ToLower(strings.TrimSpace(term))
	switch {
	case strings.Contains(lower, "cause"):
		return "Consider: 'correlates with' or 'is associated with'"
	case strings.Contains(lower, "lead") || strings.Contains(lower, "led"):
		return "Consider: 'is followed by' or 'precedes'"
	case strings.Contains(lower, "result"):
		return "Consider: 'is associated with' or specify the mechanism"
	case strings.Contains(lower, "due to"):
		return "Consider: 'associated with' or cite evidence for causation"
	default:
		return "Consider using correlational language unless causation is established"
	}
}
