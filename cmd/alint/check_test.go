package main

import "testing"

func TestIsReportPath(t *testing.T) {
	testCases := []struct {
		path string
		want bool
	}{
		{"report.json", true},
		{"report.json.gz", true},
		{"out/report.gz", true},
		{"report.md", false},
		{"report.txt", false},
		{"report", false},
	}

	for _, tc := range testCases {
		if got := isReportPath(tc.path); got != tc.want {
			t.Errorf("isReportPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
