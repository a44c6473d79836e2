// Package lint contains the Linter, which orchestrates preprocessing,
// detector execution, density scoring, and result assembly.
package lint

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"academiclint/internal/config"
	"academiclint/internal/density"
	"academiclint/internal/detect"
	"academiclint/internal/nlp"
	"academiclint/internal/result"
	"academiclint/internal/validate"
)

// Linter analyzes text for semantic clarity issues. It is stateless
// between Check calls; the configuration is fixed at construction.
type Linter struct {
	cfg       config.Config
	logger    *slog.Logger
	pre       *nlp.Preprocessor
	detectors []detect.Detector
}

// New creates a Linter with the given configuration.
func New(cfg config.Config, logger *slog.Logger) *Linter {
	return &Linter{
		cfg:       cfg,
		logger:    logger,
		pre:       nlp.NewPreprocessor(logger),
		detectors: detect.Registry(),
	}
}

// Config returns the configuration the linter was built with.
func (l *Linter) Config() config.Config { return l.cfg }

// Check analyzes text and returns the complete result. Preprocessing
// failures are fatal; a failing detector is logged and skipped; a
// paragraph whose scoring fails gets density 0.
func (l *Linter) Check(text string) (*result.AnalysisResult, error) {
	text, err := validate.Text(text)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	checkID := "check_" + uuid.NewString()[:12]
	createdAt := time.Now().UTC().Format(time.RFC3339)

	l.logger.Info("starting analysis", "id", checkID, "length", len(text))

	doc, err := l.pre.Process(text)
	if err != nil {
		return nil, err
	}

	allFlags := l.runDetectors(doc)

	paragraphs := make([]result.ParagraphResult, 0, len(doc.Paragraphs))
	totalWords := 0
	totalSentences := 0
	for i, para := range doc.Paragraphs {
		pr := l.scoreParagraph(para, i, allFlags)
		paragraphs = append(paragraphs, pr)
		totalWords += para.WordCount
		totalSentences += para.SentenceCount
	}

	overall := l.scoreDocument(doc, allFlags)
	grade := result.GradeFor(overall)
	suggestions := l.overallSuggestions(allFlags, overall)

	res := &result.AnalysisResult{
		ID:               checkID,
		CreatedAt:        createdAt,
		InputLength:      len(text),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		Summary: result.Summary{
			Density:         overall,
			DensityGrade:    grade,
			FlagCount:       len(allFlags),
			WordCount:       totalWords,
			SentenceCount:   totalSentences,
			ParagraphCount:  len(paragraphs),
			ConceptCount:    doc.ConceptCount,
			FillerRatio:     doc.FillerRatio,
			SuggestionCount: len(suggestions),
		},
		Paragraphs:         paragraphs,
		OverallSuggestions: suggestions,
	}

	l.logger.Info("analysis complete",
		"id", checkID,
		"timeMs", res.ProcessingTimeMs,
		"flags", len(allFlags),
		"density", fmt.Sprintf("%.2f", overall),
		"grade", string(grade))

	return res, nil
}

// runDetectors runs all detectors concurrently over the immutable
// document and merges their output into one deterministically ordered
// flag list. A panicking detector is skipped.
func (l *Linter) runDetectors(doc *nlp.ProcessedDocument) []result.Flag {
	results := make([][]result.Flag, len(l.detectors))

	var g errgroup.Group
	for i, d := range l.detectors {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					l.logger.Warn("detector failed, skipping",
						"detector", d.Name(), "panic", fmt.Sprint(r))
					results[i] = nil
				}
			}()
			results[i] = d.Detect(doc, l.cfg)
			return nil
		})
	}
	// Detectors report failures via panic recovery, never errors.
	_ = g.Wait()

	var flags []result.Flag
	for _, fs := range results {
		flags = append(flags, fs...)
	}
	sortFlags(flags)
	return flags
}

// sortFlags orders flags by span start, then detector registry order,
// then span end. Parallel execution may interleave detector output, so
// the sort restores reproducibility.
func sortFlags(flags []result.Flag) {
	sort.SliceStable(flags, func(i, j int) bool {
		if flags[i].Span.Start != flags[j].Span.Start {
			return flags[i].Span.Start < flags[j].Span.Start
		}
		oi, oj := detect.OrderOf(flags[i].Type), detect.OrderOf(flags[j].Type)
		if oi != oj {
			return oi < oj
		}
		return flags[i].Span.End < flags[j].Span.End
	})
}

// scoreParagraph selects the paragraph's flags and computes its density.
// Scoring failure degrades to density 0 rather than aborting the run.
func (l *Linter) scoreParagraph(para nlp.Paragraph, index int, allFlags []result.Flag) (pr result.ParagraphResult) {
	var paraFlags []result.Flag
	for _, f := range allFlags {
		if f.Span.Start >= para.Span.Start && f.Span.Start < para.Span.End {
			paraFlags = append(paraFlags, f)
		}
	}

	pr = result.ParagraphResult{
		Index:         index,
		Text:          para.Text,
		Span:          para.Span,
		Flags:         paraFlags,
		WordCount:     para.WordCount,
		SentenceCount: para.SentenceCount,
	}

	defer func() {
		if r := recover(); r != nil {
			l.logger.Warn("paragraph scoring failed",
				"paragraph", index, "panic", fmt.Sprint(r))
			pr.Density = 0.0
		}
	}()

	var tokens []nlp.Token
	for _, s := range para.Sentences {
		tokens = append(tokens, s.Tokens...)
	}
	pr.Density = density.Calculate(para.Text, paraFlags, l.cfg, tokens)
	return pr
}

func (l *Linter) scoreDocument(doc *nlp.ProcessedDocument, allFlags []result.Flag) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Warn("document scoring failed", "panic", fmt.Sprint(r))
			score = 0.0
		}
	}()
	return density.Calculate(doc.Text, allFlags, l.cfg, doc.Tokens)
}

// overallSuggestions derives document-level advice from flag counts and
// the overall density. Order is fixed.
func (l *Linter) overallSuggestions(flags []result.Flag, overall float64) []string {
	counts := make(map[result.FlagType]int)
	for _, f := range flags {
		counts[f.Type]++
	}

	var suggestions []string
	if counts[result.FlagHedgeStack] > 3 {
		suggestions = append(suggestions,
			fmt.Sprintf("Document relies heavily on hedged language (%d instances)", counts[result.FlagHedgeStack]))
	}
	if counts[result.FlagUnderspecified] > 5 {
		suggestions = append(suggestions,
			"Consider specifying the scope in the introduction")
	}
	if n := counts[result.FlagUnsupportedCausal]; n > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("%d causal claim(s) lack cited evidence", n))
	}
	if overall < l.cfg.MinDensity {
		suggestions = append(suggestions,
			fmt.Sprintf("Overall density (%.2f) is below threshold (%.2f)", overall, l.cfg.MinDensity))
	}
	return suggestions
}
