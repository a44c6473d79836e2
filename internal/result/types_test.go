package result

import "testing"

func TestGradeFor(t *testing.T) {
	testCases := []struct {
		density float64
		want    DensityGrade
	}{
		{0.0, GradeVapor},
		{0.19, GradeVapor},
		{0.2, GradeThin},
		{0.39, GradeThin},
		{0.4, GradeAdequate},
		{0.59, GradeAdequate},
		{0.6, GradeDense},
		{0.79, GradeDense},
		{0.8, GradeCrystalline},
		{1.0, GradeCrystalline},
	}

	for _, tc := range testCases {
		if got := GradeFor(tc.density); got != tc.want {
			t.Errorf("GradeFor(%v) = %s, want %s", tc.density, got, tc.want)
		}
	}
}

func TestSeverityWeight(t *testing.T) {
	testCases := []struct {
		sev  Severity
		want float64
	}{
		{SeverityLow, 0.02},
		{SeverityMedium, 0.05},
		{SeverityHigh, 0.10},
		{Severity("bogus"), 0.05},
	}

	for _, tc := range testCases {
		if got := tc.sev.Weight(); got != tc.want {
			t.Errorf("%s.Weight() = %v, want %v", tc.sev, got, tc.want)
		}
	}
}

func TestSeverityRank(t *testing.T) {
	if !(SeverityLow.Rank() < SeverityMedium.Rank() && SeverityMedium.Rank() < SeverityHigh.Rank()) {
		t.Error("severity ranks not ordered")
	}
}

func TestSpan(t *testing.T) {
	s := Span{Start: 3, End: 8}

	if s.Len() != 5 {
		t.Errorf("Len = %d, want 5", s.Len())
	}

	testCases := []struct {
		offset int
		want   bool
	}{
		{2, false},
		{3, true},
		{7, true},
		{8, false},
	}
	for _, tc := range testCases {
		if got := s.Contains(tc.offset); got != tc.want {
			t.Errorf("Contains(%d) = %v, want %v", tc.offset, got, tc.want)
		}
	}
}

func TestAnalysisResultFlags(t *testing.T) {
	res := &AnalysisResult{
		Paragraphs: []ParagraphResult{
			{Flags: []Flag{{Term: "a"}, {Term: "b"}}},
			{},
			{Flags: []Flag{{Term: "c"}}},
		},
	}

	flags := res.Flags()
	if len(flags) != 3 {
		t.Fatalf("got %d flags, want 3", len(flags))
	}
	if flags[0].Term != "a" || flags[2].Term != "c" {
		t.Error("flags not in paragraph order")
	}
}
