package density

import (
	"strings"
	"testing"

	"academiclint/internal/config"
	"academiclint/internal/result"
)

func TestCalculateEmptyText(t *testing.T) {
	cfg := config.Default()

	for _, text := range []string{"", "   ", "\n\n", "...", "!!!"} {
		if got := Calculate(text, nil, cfg, nil); got != 0.0 {
			t.Errorf("Calculate(%q) = %v, want exactly 0.0", text, got)
		}
	}
}

func TestCalculateBounds(t *testing.T) {
	cfg := config.Default()

	texts := []string{
		"The quick brown fox jumps over the lazy dog.",
		"In 1954, Doll and Hill surveyed 40,000 British doctors (Doll & Hill, 1954).",
		strings.Repeat("very very very really quite ", 20),
		"a",
		"Word",
	}

	for _, text := range texts {
		got := Calculate(text, nil, cfg, nil)
		if got < 0.0 || got > 1.0 {
			t.Errorf("Calculate(%q) = %v, out of [0, 1]", text, got)
		}
	}
}

func TestCalculateDeterministic(t *testing.T) {
	cfg := config.Default()
	text := "The study measured 40 participants across 3 sessions (Smith, 2020)."

	first := Calculate(text, nil, cfg, nil)
	for i := 0; i < 10; i++ {
		if got := Calculate(text, nil, cfg, nil); got != first {
			t.Fatalf("run %d: %v != %v", i, got, first)
		}
	}
}

func TestFlagPenaltyDepressesScore(t *testing.T) {
	cfg := config.Default()
	text := "The treatment group improved on every measured outcome last year."

	clean := Calculate(text, nil, cfg, nil)

	flags := []result.Flag{
		{Severity: result.SeverityHigh},
		{Severity: result.SeverityHigh},
	}
	flagged := Calculate(text, flags, cfg, nil)

	if flagged >= clean {
		t.Errorf("flagged score %v not below clean score %v", flagged, clean)
	}
}

func TestFlagPenaltyMonotonicInSeverity(t *testing.T) {
	cfg := config.Default()
	text := "The treatment group improved on every measured outcome last year."

	scoreWith := func(sev result.Severity) float64 {
		return Calculate(text, []result.Flag{{Severity: sev}}, cfg, nil)
	}

	low := scoreWith(result.SeverityLow)
	med := scoreWith(result.SeverityMedium)
	high := scoreWith(result.SeverityHigh)

	if !(high < med && med < low) {
		t.Errorf("scores not monotonic: low=%v med=%v high=%v", low, med, high)
	}
}

func TestFlagPenaltyOrderIndependent(t *testing.T) {
	cfg := config.Default()
	text := "The treatment group improved on every measured outcome last year."

	a := []result.Flag{
		{Severity: result.SeverityLow},
		{Severity: result.SeverityHigh},
		{Severity: result.SeverityMedium},
	}
	b := []result.Flag{a[2], a[0], a[1]}

	if Calculate(text, a, cfg, nil) != Calculate(text, b, cfg, nil) {
		t.Error("score depends on flag order")
	}
}

func TestFlagPenaltyCapped(t *testing.T) {
	many := make([]result.Flag, 200)
	for i := range many {
		many[i] = result.Flag{Severity: result.SeverityHigh}
	}
	if got := flagPenalty(many, 10); got != maxFlagPenalty {
		t.Errorf("penalty = %v, want cap %v", got, maxFlagPenalty)
	}
}

func TestFlagPenaltyNormalization(t *testing.T) {
	flags := []result.Flag{{Severity: result.SeverityMedium}}

	// Below 50 tokens the divisor clamps to 1.
	short := flagPenalty(flags, 10)
	if short != 0.05 {
		t.Errorf("short-text penalty = %v, want 0.05", short)
	}

	// Longer text dilutes the same flag.
	long := flagPenalty(flags, 200)
	if long != 0.05/4.0 {
		t.Errorf("long-text penalty = %v, want %v", long, 0.05/4.0)
	}
}

func TestSpecificityScore(t *testing.T) {
	testCases := []struct {
		name string
		text string
		zero bool
	}{
		{"numbers and citation", "In 1954, 40000 doctors were surveyed (Doll, 1954).", false},
		{"acronym", "The NASA budget grew.", false},
		{"hyphenated compound", "A double-blind trial ran.", false},
		{"comparison", "We require p < 0.05 here.", false},
		{"nothing concrete", "Some things seem rather nice.", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			words := len(strings.Fields(tc.text))
			got := specificityScore(tc.text, words)
			if tc.zero && got != 0 {
				t.Errorf("specificity = %v, want 0", got)
			}
			if !tc.zero && got <= 0 {
				t.Errorf("specificity = %v, want > 0", got)
			}
			if got > 1.0 {
				t.Errorf("specificity = %v, above cap", got)
			}
		})
	}
}

func TestDenseBeatsVapid(t *testing.T) {
	cfg := config.Default()

	dense := "In 1954, Doll and Hill surveyed 40,000 British doctors and found " +
		"that smokers died of lung cancer at 24 times the rate of non-smokers " +
		"(Doll & Hill, 1954)."
	vapid := "Throughout history, society has had many things that are very " +
		"important and really significant in terms of their impact."

	dScore := Calculate(dense, nil, cfg, nil)
	vScore := Calculate(vapid, nil, cfg, nil)
	if dScore <= vScore {
		t.Errorf("dense text %v not above vapid text %v", dScore, vScore)
	}
}
