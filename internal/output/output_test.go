package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"academiclint/internal/config"
	"academiclint/internal/result"
)

func sampleResult() *result.AnalysisResult {
	return &result.AnalysisResult{
		ID:          "check_abc123",
		CreatedAt:   "2026-01-02T03:04:05Z",
		InputLength: 52,
		Summary: result.Summary{
			Density:        0.123456789,
			DensityGrade:   result.GradeVapor,
			FlagCount:      2,
			WordCount:      9,
			SentenceCount:  1,
			ParagraphCount: 1,
			ConceptCount:   5,
			FillerRatio:    0.1111111,
		},
		Paragraphs: []result.ParagraphResult{
			{
				Index:   0,
				Density: 0.123456789,
				Flags: []result.Flag{
					{
						Type:       result.FlagUnderspecified,
						Term:       "society",
						Span:       result.Span{Start: 30, End: 37},
						Line:       1,
						Column:     31,
						Severity:   result.SeverityHigh,
						Message:    "Which society? Western? American? Global?",
						Suggestion: "Specify which society and demographic",
					},
					{
						Type:       result.FlagFiller,
						Term:       "in terms of",
						Span:       result.Span{Start: 0, End: 11},
						Line:       1,
						Column:     1,
						Severity:   result.SeverityLow,
						Message:    "This phrase adds no specific information",
						Suggestion: "Remove or rephrase more directly",
					},
				},
			},
		},
		OverallSuggestions: []string{"Overall density is low"},
	}
}

func TestRoundFloat(t *testing.T) {
	testCases := []struct {
		in   float64
		want float64
	}{
		{0.123456789, 0.1235},
		{0.5, 0.5},
		{0.99995, 1.0},
		{0, 0},
	}
	for _, tc := range testCases {
		if got := RoundFloat(tc.in); got != tc.want {
			t.Errorf("RoundFloat(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{0.5, "0.5"},
		{0.123456789, "0.1235"},
		{1.0, "1"},
		{0, "0"},
	}
	for _, tc := range testCases {
		if got := FormatFloat(tc.in); got != tc.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewFormatter(t *testing.T) {
	for _, format := range []string{"", "terminal", "json", "markdown", "github"} {
		if _, err := New(format, Options{}); err != nil {
			t.Errorf("New(%q): %v", format, err)
		}
	}
	if _, err := New("xml", Options{}); err == nil {
		t.Error("New(xml): expected error")
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}
	if err := f.Format(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	summary := decoded["summary"].(map[string]any)
	if summary["density"] != 0.1235 {
		t.Errorf("density not rounded: %v", summary["density"])
	}
	if decoded["id"] != "check_abc123" {
		t.Errorf("id = %v", decoded["id"])
	}
}

func TestJSONFormatterDeterministic(t *testing.T) {
	f := &JSONFormatter{}

	var a, b bytes.Buffer
	if err := f.Format(&a, sampleResult()); err != nil {
		t.Fatal(err)
	}
	if err := f.Format(&b, sampleResult()); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("identical results serialize differently")
	}
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &MarkdownFormatter{opts: Options{
		Path:   "essay.md",
		Output: config.OutputConfig{ShowSuggestions: true},
	}}
	if err := f.Format(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"# Semantic density report: essay.md",
		"| Density | 0.1235 (vapor) |",
		"UNDERSPECIFIED",
		"Fix: Specify which society and demographic",
		"## Suggestions",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestGitHubFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &GitHubFormatter{opts: Options{Path: "essay.md"}}
	if err := f.Format(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "::error file=essay.md,line=1,col=31::") {
		t.Errorf("missing high-severity annotation:\n%s", out)
	}
	if !strings.Contains(out, "::notice file=essay.md,line=1,col=1::") {
		t.Errorf("missing low-severity annotation:\n%s", out)
	}
	if !strings.Contains(out, "::notice::semantic density 0.1235 (vapor), 2 flags") {
		t.Errorf("missing summary annotation:\n%s", out)
	}
}

func TestGitHubFormatterNoPath(t *testing.T) {
	var buf bytes.Buffer
	f := &GitHubFormatter{}
	if err := f.Format(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "file=") {
		t.Errorf("path annotation present without a path:\n%s", buf.String())
	}
}

func TestEscapeAnnotation(t *testing.T) {
	got := escapeAnnotation("50% done\nnext line")
	if got != "50%25 done%0Anext line" {
		t.Errorf("escapeAnnotation = %q", got)
	}
}

func TestTerminalFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &TerminalFormatter{opts: Options{
		Output: config.OutputConfig{Color: "never", ShowSuggestions: true},
	}}
	if err := f.Format(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"Semantic density: 0.1235 (vapor)",
		"2 flags across 1 paragraphs",
		"society",
		"fix: Specify which society and demographic",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}
