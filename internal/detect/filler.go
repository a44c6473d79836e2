package detect

import (
	"regexp"
	"strings"

	"academiclint/internal/config"
	"academiclint/internal/lexicon"
	"academiclint/internal/nlp"
	"academiclint/internal/result"
)

// FillerDetector flags stock phrases that add no information.
type FillerDetector struct{}

var fillerPatterns = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(lexicon.FillerPhrases))
	for i, phrase := range lexicon.FillerPhrases {
		out[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
	}
	return out
}()

var fillerSuggestions = map[string]string{
	"in today's society":           "Remove or specify which society and time period",
	"in today's world":             "Remove or be specific about context",
	"throughout history":           "Specify the time period and region",
	"since the dawn of time":       "Remove - adds no information",
	"it is important to note that": "Remove - just state the point",
	"it is worth noting that":      "Remove - just state the point",
	"it goes without saying":       "Remove - if it goes without saying, don't say it",
	"needless to say":              "Remove - if needless, don't say it",
	"it is clear that":             "Remove - if clear, just state the claim",
	"it is obvious that":           "Remove - state the claim directly",
	"as we all know":               "Remove or cite a source",
	"at the end of the day":        "Remove - use specific conclusion",
	"when all is said and done":    "Remove - be direct",
	"in terms of":                  "Remove or rephrase more directly",
	"the fact that":                "Remove - just state the fact",
	"in order to":                  "Replace with 'to'",
}

func (d *FillerDetector) Name() string { return "filler" }

func (d *FillerDetector) FlagTypes() []result.FlagType {
	return []result.FlagType{result.FlagFiller}
}

func (d *FillerDetector) Detect(doc *nlp.ProcessedDocument, cfg config.Config) []result.Flag {
	var flags []result.Flag

	for i, pattern := range fillerPatterns {
		phrase := lexicon.FillerPhrases[i]
		for _, loc := range pattern.FindAllStringIndex(doc.Text, -1) {
			start, end := loc[0], loc[1]
			term := doc.Text[start:end]

			flags = append(flags, newFlag(
				doc.Text,
				result.FlagFiller,
				term,
				start, end,
				result.SeverityLow,
				"This phrase adds no specific information",
				fillerSuggestion(phrase),
				"",
			))
		}
	}
	return flags
}

func fillerSuggestion(phrase string) string {
	if s, ok := fillerSuggestions[strings.ToLower(phrase)]; ok {
		return s
	}
	return "Remove or replace with specific content"
}
