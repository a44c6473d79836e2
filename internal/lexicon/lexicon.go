// Package lexicon holds the fixed word lists and compiled patterns the
// detectors and the preprocessor match against. All patterns are compiled
// once at package init and reused across calls.
package lexicon

import "regexp"

// VagueTerms are underspecified words flagged by the vagueness detector.
// Matched as whole words, case-insensitively.
var VagueTerms = []string{
	"things",
	"stuff",
	"society",
	"impact",
	"significant",
	"important",
	"interesting",
	"recently",
	"often",
	"sometimes",
	"many",
	"some",
	"most",
	"several",
	"various",
	"numerous",
	"substantial",
	"very",
	"really",
	"quite",
	"rather",
}

// VagueHighSeverity are vague nouns that gut a sentence's meaning.
var VagueHighSeverity = map[string]bool{
	"things":      true,
	"stuff":       true,
	"society":     true,
	"impact":      true,
	"significant": true,
}

// VagueLowSeverity are intensifiers that merely pad.
var VagueLowSeverity = map[string]bool{
	"very":   true,
	"really": true,
	"quite":  true,
	"rather": true,
}

// CausalPatterns match causal-claim phrasing.
var CausalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bcauses?\b`),
	regexp.MustCompile(`(?i)\bcaused\b`),
	regexp.MustCompile(`(?i)\bleads?\s+to\b`),
	regexp.MustCompile(`(?i)\bled\s+to\b`),
	regexp.MustCompile(`(?i)\bresult(?:s|ed)?\s+in\b`),
	regexp.MustCompile(`(?i)\bdue\s+to\b`),
	regexp.MustCompile(`(?i)\bbecause\s+of\b`),
	regexp.MustCompile(`(?i)\bis\s+responsible\s+for\b`),
}

// CitationPatterns recognize existing citations: parenthetical
// author-year ("(Smith, 2023)", "(Smith et al., 2023)") and
// bracket-numeric ("[3]", "[1, 4]").
var CitationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\([A-Z][A-Za-z'\-]+(?:\s+(?:et\s+al\.?|&\s+[A-Z][A-Za-z'\-]+|and\s+[A-Z][A-Za-z'\-]+))?,?\s+\d{4}[a-z]?\)`),
	regexp.MustCompile(`\[\d+(?:\s*,\s*\d+)*\]`),
}

// WeaselPatterns match vague attribution phrasing.
var WeaselPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bmany\s+(?:experts|scientists|researchers|scholars|people)\s+(?:believe|think|agree|say|argue)\b`),
	regexp.MustCompile(`(?i)\bsome\s+(?:experts|scientists|researchers|scholars|people)\s+(?:believe|think|agree|say|argue)\b`),
	regexp.MustCompile(`(?i)\bstudies\s+(?:show|suggest|indicate|have\s+shown)\b`),
	regexp.MustCompile(`(?i)\bresearch\s+(?:shows|suggests|indicates|has\s+shown)\b`),
	regexp.MustCompile(`(?i)\bit\s+is\s+(?:believed|thought|said|known|widely\s+(?:believed|known|accepted))\b`),
	regexp.MustCompile(`(?i)\bit\s+has\s+been\s+(?:said|suggested|argued|claimed)\b`),
	regexp.MustCompile(`(?i)\bexperts\s+(?:agree|say|believe)\b`),
	regexp.MustCompile(`(?i)\bcritics\s+(?:say|argue|claim)\b`),
	regexp.MustCompile(`(?i)\bsome\s+(?:argue|say|claim|believe)\b`),
}

// Hedges are epistemic uncertainty markers counted per clause.
var Hedges = []string{
	"might",
	"may",
	"could",
	"possibly",
	"perhaps",
	"maybe",
	"seemingly",
	"apparently",
	"arguably",
	"somewhat",
	"probably",
	"presumably",
	"likely",
	"relatively",
	"potentially",
	"tends to",
	"tend to",
	"appears to",
	"appear to",
	"seems to",
	"seem to",
}

// NeedsCitationPatterns match claims that require supporting evidence.
// StatisticPattern gets HIGH severity; the rest MEDIUM.
var (
	StatisticPattern = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:%|percent)`)

	NeedsCitationPatterns = []*regexp.Regexp{
		StatisticPattern,
		regexp.MustCompile(`(?i)\b(?:studies|research)\s+(?:show|shows|suggest|suggests|indicate|indicates|demonstrate|demonstrates)\b`),
		regexp.MustCompile(`(?i)\baccording\s+to\s+\w+`),
		regexp.MustCompile(`(?i)\b(?:in|since|by)\s+(?:19|20)\d{2}\b`),
		regexp.MustCompile(`(?i)\bthe\s+(?:first|largest|most|least|best|worst)\b`),
	}
)

// FillerPhrases add no information and are always LOW severity.
var FillerPhrases = []string{
	"in today's society",
	"in today's world",
	"throughout history",
	"since the dawn of time",
	"it is important to note that",
	"it is worth noting that",
	"it goes without saying",
	"needless to say",
	"it is clear that",
	"it is obvious that",
	"as we all know",
	"at the end of the day",
	"when all is said and done",
	"in terms of",
	"the fact that",
	"in order to",
}

// ExplanationPatterns indicate a nearby gloss for jargon terms.
var ExplanationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\([^)]+\)`),
	regexp.MustCompile(`(?i), which means`),
	regexp.MustCompile(`(?i), i\.e\.,`),
	regexp.MustCompile(`(?i), that is,`),
	regexp.MustCompile(`(?i)refers to`),
	regexp.MustCompile(`(?i)defined as`),
}

// ComplexSuffixes mark likely-jargon morphology.
var ComplexSuffixes = []string{"ology", "ization", "ological", "istic", "ential"}
