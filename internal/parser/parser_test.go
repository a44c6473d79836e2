package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseMarkdown(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		notWant string
	}{
		{
			"heading stripped",
			"# Introduction\n\nThe study begins.",
			"Introduction\n\nThe study begins.",
			"#",
		},
		{
			"bold and italic unwrapped",
			"This is **bold** and *italic* text.",
			"This is bold and italic text.",
			"*",
		},
		{
			"link keeps label",
			"See [the dataset](https://example.org/data) for details.",
			"See the dataset for details.",
			"https",
		},
		{
			"code block removed",
			"Before.\n\n```\nx := 1\n```\n\nAfter.",
			"Before.\n\nAfter.",
			"x := 1",
		},
		{
			"inline code removed",
			"Run `make test` to check.",
			"Run  to check.",
			"make test",
		},
		{
			"blockquote marker stripped",
			"> Quoted claim here.",
			"Quoted claim here.",
			">",
		},
		{
			"bullets stripped",
			"- first point\n- second point",
			"first point\nsecond point",
			"-",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseMarkdown(tc.input)
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
			if tc.notWant != "" && strings.Contains(got, tc.notWant) {
				t.Errorf("output still contains %q: %q", tc.notWant, got)
			}
		})
	}
}

func TestParseLaTeX(t *testing.T) {
	input := `\documentclass{article}
\usepackage[utf8]{inputenc}
\begin{document}
\section{Introduction}
Prior work established the effect \cite{smith2020}.
The value is $x > 3$ here.
% a comment line
\textbf{Bold claims} need evidence.
\end{document}`

	got := ParseLaTeX(input)

	for _, want := range []string{
		"Introduction",
		"Prior work established the effect [citation].",
		"Bold claims need evidence.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
	for _, notWant := range []string{
		"documentclass", "usepackage", "\\section", "$", "comment line", "\\textbf",
	} {
		if strings.Contains(got, notWant) {
			t.Errorf("output still contains %q: %q", notWant, got)
		}
	}
}

func TestParseLaTeXRemovesEnvironments(t *testing.T) {
	input := `Text before.
\begin{figure}
\includegraphics{plot.png}
\end{figure}
\begin{equation}
E = mc^2
\end{equation}
Text after.`

	got := ParseLaTeX(input)
	if !strings.Contains(got, "Text before.") || !strings.Contains(got, "Text after.") {
		t.Fatalf("prose lost: %q", got)
	}
	if strings.Contains(got, "includegraphics") || strings.Contains(got, "mc^2") {
		t.Errorf("environment content leaked: %q", got)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	mdPath := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(mdPath, []byte("# Title\n\nBody text."), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ParseFile(mdPath)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if got != "Title\n\nBody text." {
		t.Errorf("got %q", got)
	}
}

func TestParseFileUnsupportedExtension(t *testing.T) {
	if _, err := ParseFile("chart.png"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "gone.md")); err == nil {
		t.Error("expected error for missing file")
	}
}
