// Package density computes the 0-1 semantic density score for a span of
// text from its token statistics and the flags raised against it.
package density

import (
	"regexp"
	"strings"

	"academiclint/internal/config"
	"academiclint/internal/lexicon"
	"academiclint/internal/nlp"
	"academiclint/internal/result"
)

// Weights are the linear combination coefficients of the density
// formula. They were calibrated empirically against sample texts and are
// kept as a value so recalibration does not require an API change.
type Weights struct {
	ContentRatio float64
	UniqueRatio  float64
	Specificity  float64
	Precision    float64
}

// DefaultWeights is the calibrated weighting.
var DefaultWeights = Weights{
	ContentRatio: 0.25,
	UniqueRatio:  0.25,
	Specificity:  0.20,
	Precision:    0.30,
}

// maxFlagPenalty caps how much flags alone can depress the score.
const maxFlagPenalty = 0.5

var (
	wordPattern = regexp.MustCompile(`\b\w+\b`)

	// specificityPatterns match concreteness markers: numerals and
	// percentages, citations, ALL-CAPS acronyms, hyphenated compounds,
	// and statistical comparisons.
	specificityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d+(?:\.\d+)?%?`),
		lexicon.CitationPatterns[0],
		lexicon.CitationPatterns[1],
		regexp.MustCompile(`\b[A-Z]{2,}\b`),
		regexp.MustCompile(`\b\w+(?:-\w+)+\b`),
		regexp.MustCompile(`\b[a-zA-Z]\s*[<>=]\s*\d`),
	}
)

// Calculate scores text with the default weights. Annotated tokens from
// the preprocessor may be supplied; when nil, a fallback regex tokenizer
// and suffix lemmatizer are used. Empty token input returns exactly 0.
func Calculate(text string, flags []result.Flag, cfg config.Config, tokens []nlp.Token) float64 {
	return CalculateWeighted(text, flags, cfg, tokens, DefaultWeights)
}

// CalculateWeighted scores text with explicit weights. The formula is
// deterministic and order-independent over the flag list.
func CalculateWeighted(text string, flags []result.Flag, cfg config.Config, tokens []nlp.Token, w Weights) float64 {
	words, lemmas, stops := tokenStats(text, tokens)
	total := len(words)
	if total == 0 {
		return 0.0
	}

	contentCount := 0
	unique := make(map[string]bool)
	for i := range words {
		if stops[i] {
			continue
		}
		contentCount++
		unique[lemmas[i]] = true
	}

	contentRatio := float64(contentCount) / float64(total)

	uniqueRatio := 0.0
	if contentCount > 0 {
		uniqueRatio = float64(len(unique)) / float64(contentCount)
	}

	specificity := specificityScore(text, total)
	penalty := flagPenalty(flags, total)

	score := w.ContentRatio*contentRatio +
		w.UniqueRatio*uniqueRatio +
		w.Specificity*specificity +
		w.Precision*(1.0-penalty)

	return clamp01(score)
}

// tokenStats returns the word texts, their lemmas, and stopword flags,
// from annotated tokens when available.
func tokenStats(text string, tokens []nlp.Token) ([]string, []string, []bool) {
	if tokens != nil {
		var words []string
		var lemmas []string
		var stops []bool
		for _, t := range tokens {
			if !nlp.IsWord(t.Text) {
				continue
			}
			words = append(words, t.Text)
			lemmas = append(lemmas, t.Lemma)
			stops = append(stops, t.IsStop)
		}
		return words, lemmas, stops
	}

	words := wordPattern.FindAllString(text, -1)
	lemmas := make([]string, len(words))
	stops := make([]bool, len(words))
	for i, word := range words {
		lower := strings.ToLower(word)
		lemmas[i] = nlp.Lemma(word)
		stops[i] = lexicon.FunctionWords[lower]
	}
	return words, lemmas, stops
}

// specificityScore counts concreteness markers per 10 tokens, capped
// at 1.0.
func specificityScore(text string, tokenCount int) float64 {
	markers := 0
	for _, p := range specificityPatterns {
		markers += len(p.FindAllStringIndex(text, -1))
	}
	if tokenCount == 0 {
		return 0
	}
	score := float64(markers) * 10.0 / float64(tokenCount)
	if score > 1.0 {
		return 1.0
	}
	return score
}

// flagPenalty sums severity weights normalized per 50 tokens, capped at
// maxFlagPenalty.
func flagPenalty(flags []result.Flag, tokenCount int) float64 {
	total := 0.0
	for _, f := range flags {
		total += f.Severity.Weight()
	}

	norm := float64(tokenCount) / 50.0
	if norm < 1.0 {
		norm = 1.0
	}

	penalty := total / norm
	if penalty > maxFlagPenalty {
		return maxFlagPenalty
	}
	return penalty
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
