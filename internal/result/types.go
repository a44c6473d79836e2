// Package result defines the value types produced by an analysis run:
// flags, per-paragraph results, the document summary, and the top-level
// AnalysisResult returned by the linter.
package result

// FlagType identifies the kind of writing issue detected.
type FlagType string

const (
	FlagUnderspecified    FlagType = "UNDERSPECIFIED"
	FlagUnsupportedCausal FlagType = "UNSUPPORTED_CAUSAL"
	FlagCircular          FlagType = "CIRCULAR"
	FlagWeasel            FlagType = "WEASEL"
	FlagHedgeStack        FlagType = "HEDGE_STACK"
	FlagJargonDense       FlagType = "JARGON_DENSE"
	FlagCitationNeeded    FlagType = "CITATION_NEEDED"
	FlagFiller            FlagType = "FILLER"
)

// Severity indicates how strongly a flag degrades the text.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Weight returns the density penalty weight for a severity.
func (s Severity) Weight() float64 {
	switch s {
	case SeverityLow:
		return 0.02
	case SeverityHigh:
		return 0.10
	default:
		return 0.05
	}
}

// Rank returns a numeric rank for ordering (low < medium < high).
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 0
	case SeverityMedium:
		return 1
	case SeverityHigh:
		return 2
	default:
		return 1
	}
}

// Span is a half-open character offset range [Start, End) into the
// original text. Spans are copied by value and never mutated.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether the offset falls inside the span.
func (s Span) Contains(offset int) bool { return offset >= s.Start && offset < s.End }

// Flag is a single located writing issue. Flags are created once by a
// detector and never mutated afterward.
type Flag struct {
	Type FlagType `json:"type"`

	// Term is the flagged text as it appears in the source.
	Term string `json:"term"`

	Span Span `json:"span"`

	// Line and Column are 1-indexed positions of the span start.
	Line   int `json:"line"`
	Column int `json:"column"`

	Severity Severity `json:"severity"`

	// Message explains why the term was flagged.
	Message string `json:"message"`

	// Suggestion says how to fix it.
	Suggestion string `json:"suggestion"`

	// ExampleRevision is an optional concrete rewrite.
	ExampleRevision string `json:"exampleRevision,omitempty"`

	// Context is the surrounding text for display.
	Context string `json:"context"`
}

// ParagraphResult holds the analysis outcome for one paragraph.
type ParagraphResult struct {
	Index         int     `json:"index"`
	Text          string  `json:"text"`
	Span          Span    `json:"span"`
	Density       float64 `json:"density"`
	Flags         []Flag  `json:"flags"`
	WordCount     int     `json:"wordCount"`
	SentenceCount int     `json:"sentenceCount"`
}

// DensityGrade is the qualitative label for a density score.
type DensityGrade string

const (
	GradeVapor       DensityGrade = "vapor"
	GradeThin        DensityGrade = "thin"
	GradeAdequate    DensityGrade = "adequate"
	GradeDense       DensityGrade = "dense"
	GradeCrystalline DensityGrade = "crystalline"
)

// Summary aggregates document-level statistics.
type Summary struct {
	Density         float64      `json:"density"`
	DensityGrade    DensityGrade `json:"densityGrade"`
	FlagCount       int          `json:"flagCount"`
	WordCount       int          `json:"wordCount"`
	SentenceCount   int          `json:"sentenceCount"`
	ParagraphCount  int          `json:"paragraphCount"`
	ConceptCount    int          `json:"conceptCount"`
	FillerRatio     float64      `json:"fillerRatio"`
	SuggestionCount int          `json:"suggestionCount"`
}

// AnalysisResult is the complete outcome of one Check call. It is
// immutable once assembled and owned by the caller.
type AnalysisResult struct {
	ID                 string            `json:"id"`
	CreatedAt          string            `json:"createdAt"`
	InputLength        int               `json:"inputLength"`
	ProcessingTimeMs   int64             `json:"processingTimeMs"`
	Summary            Summary           `json:"summary"`
	Paragraphs         []ParagraphResult `json:"paragraphs"`
	OverallSuggestions []string          `json:"overallSuggestions"`
}

// Flags returns all flags across all paragraphs in paragraph order.
func (r *AnalysisResult) Flags() []Flag {
	var flags []Flag
	for _, p := range r.Paragraphs {
		flags = append(flags, p.Flags...)
	}
	return flags
}
