// Package detect implements the detector framework and the eight
// rule-based detectors. Detectors are stateless, side-effect-free, and
// deterministic: identical inputs yield identical flags in identical
// order.
package detect

import (
	"academiclint/internal/config"
	"academiclint/internal/nlp"
	"academiclint/internal/result"
)

// Detector finds one family of writing issues in a processed document.
// Implementations must never mutate the document or the config, and must
// treat empty sentence or paragraph collections as "no findings".
type Detector interface {
	// Name identifies the detector in logs.
	Name() string

	// Detect returns all flags found in the document.
	Detect(doc *nlp.ProcessedDocument, cfg config.Config) []result.Flag

	// FlagTypes declares which flag types the detector can emit.
	FlagTypes() []result.FlagType
}

// Registry returns the fixed, ordered detector set. The order is part of
// the deterministic output contract: flags with equal span starts are
// sorted by this declaration order.
func Registry() []Detector {
	return []Detector{
		&VaguenessDetector{},
		&CausalDetector{},
		&CircularDetector{},
		&WeaselDetector{},
		&HedgeDetector{},
		&JargonDetector{},
		&CitationDetector{},
		&FillerDetector{},
	}
}

// OrderOf maps flag types to their detector's registry position, used
// for the deterministic re-sort after parallel execution.
func OrderOf(t result.FlagType) int {
	switch t {
	case result.FlagUnderspecified:
		return 0
	case result.FlagUnsupportedCausal:
		return 1
	case result.FlagCircular:
		return 2
	case result.FlagWeasel:
		return 3
	case result.FlagHedgeStack:
		return 4
	case result.FlagJargonDense:
		return 5
	case result.FlagCitationNeeded:
		return 6
	case result.FlagFiller:
		return 7
	default:
		return 8
	}
}
