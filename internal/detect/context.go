package detect

import (
	"strings"
	"unicode"

	"academiclint/internal/lexicon"
	"academiclint/internal/result"
)

// Direction selects where HasNearbyCitation looks relative to a position.
type Direction int

const (
	After Direction = iota
	Before
	Both
)

// abbreviations whose trailing period does not end a sentence.
var abbreviations = map[string]bool{
	"dr.": true, "mr.": true, "mrs.": true, "ms.": true, "prof.": true,
	"st.": true, "vs.": true, "etc.": true, "e.g.": true, "i.e.": true,
	"cf.": true, "al.": true, "fig.": true, "no.": true, "vol.": true,
	"pp.": true, "p.": true, "ca.": true, "approx.": true,
	"jan.": true, "feb.": true, "mar.": true, "apr.": true, "jun.": true,
	"jul.": true, "aug.": true, "sep.": true, "sept.": true, "oct.": true,
	"nov.": true, "dec.": true,
}

// LineColumn returns the 1-indexed line and column of a character offset.
func LineColumn(text string, offset int) (int, int) {
	if offset > len(text) {
		offset = len(text)
	}
	line := strings.Count(text[:offset], "\n") + 1
	lineStart := strings.LastIndex(text[:offset], "\n") + 1
	return line, offset - lineStart + 1
}

// SentenceContext expands [start, end) outward to the nearest true
// sentence boundaries and returns the enclosing sentence text.
func SentenceContext(text string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}

	ctxStart := start
	for ctxStart > 0 {
		c := text[ctxStart-1]
		if c == '!' || c == '?' || c == '\n' {
			break
		}
		if c == '.' && isSentenceEnd(text, ctxStart-1) {
			break
		}
		ctxStart--
	}
	for ctxStart < start && (text[ctxStart] == ' ' || text[ctxStart] == '\t') {
		ctxStart++
	}

	ctxEnd := end
	for ctxEnd < len(text) {
		c := text[ctxEnd]
		if c == '\n' {
			break
		}
		if c == '!' || c == '?' {
			ctxEnd++
			break
		}
		if c == '.' && isSentenceEnd(text, ctxEnd) {
			ctxEnd++
			break
		}
		ctxEnd++
	}

	return strings.TrimSpace(text[ctxStart:ctxEnd])
}

// isSentenceEnd reports whether the period at index i terminates a
// sentence: it must not belong to a known abbreviation, and must be
// followed by end-of-text, a newline, or an uppercase letter after
// skipping spaces and tabs.
func isSentenceEnd(text string, i int) bool {
	wordStart := i
	for wordStart > 0 {
		c := text[wordStart-1]
		if c == ' ' || c == '\t' || c == '\n' {
			break
		}
		wordStart--
	}
	word := strings.ToLower(text[wordStart : i+1])
	if abbreviations[word] {
		return false
	}

	j := i + 1
	for j < len(text) && (text[j] == ' ' || text[j] == '\t') {
		j++
	}
	if j >= len(text) || text[j] == '\n' {
		return true
	}
	return unicode.IsUpper(rune(text[j]))
}

// ExtractContext returns a fixed character window around a span, with
// ellipses marking truncation. Used when sentence boundaries are
// ambiguous.
func ExtractContext(text string, start, end, window int) string {
	ctxStart := start - window
	if ctxStart < 0 {
		ctxStart = 0
	}
	ctxEnd := end + window
	if ctxEnd > len(text) {
		ctxEnd = len(text)
	}

	out := text[ctxStart:ctxEnd]
	if ctxStart > 0 {
		out = "..." + out
	}
	if ctxEnd < len(text) {
		out = out + "..."
	}
	return out
}

// HasNearbyCitation reports whether a citation pattern occurs within
// window characters of position in the given direction.
func HasNearbyCitation(text string, position, window int, dir Direction) bool {
	var region string
	switch dir {
	case Before:
		start := position - window
		if start < 0 {
			start = 0
		}
		region = text[start:position]
	case After:
		end := position + window
		if end > len(text) {
			end = len(text)
		}
		region = text[position:end]
	default:
		start := position - window
		if start < 0 {
			start = 0
		}
		end := position + window
		if end > len(text) {
			end = len(text)
		}
		region = text[start:end]
	}

	return ContainsCitation(region)
}

// ContainsCitation reports whether the text contains any citation
// pattern (author-year parenthetical or bracket-numeric).
func ContainsCitation(text string) bool {
	for _, p := range lexicon.CitationPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// newFlag assembles a flag with line, column, and sentence context
// computed from the shared helpers.
func newFlag(text string, t result.FlagType, term string, start, end int, sev result.Severity, message, suggestion, example string) result.Flag {
	line, col := LineColumn(text, start)
	return result.Flag{
		Type:            t,
		Term:            term,
		Span:            result.Span{Start: start, End: end},
		Line:            line,
		Column:          col,
		Severity:        sev,
		Message:         message,
		Suggestion:      suggestion,
		ExampleRevision: example,
		Context:         SentenceContext(text, start, end),
	}
}
