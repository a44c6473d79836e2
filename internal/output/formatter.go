// Package output renders an AnalysisResult for the supported
// destinations: colored terminal text, deterministic JSON, Markdown, and
// GitHub workflow annotations.
package output

import (
	"fmt"
	"io"

	"academiclint/internal/config"
	"academiclint/internal/lerr"
	"academiclint/internal/result"
)

// Formatter renders a complete analysis result.
type Formatter interface {
	Format(w io.Writer, res *result.AnalysisResult) error
}

// Options carries rendering context shared by formatters.
type Options struct {
	// Path is the source file shown in annotations; empty for stdin.
	Path string

	Output config.OutputConfig
}

// New returns the formatter for a format name.
func New(format string, opts Options) (Formatter, error) {
	switch format {
	case "", "terminal":
		return &TerminalFormatter{opts: opts}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "markdown":
		return &MarkdownFormatter{opts: opts}, nil
	case "github":
		return &GitHubFormatter{opts: opts}, nil
	default:
		return nil, lerr.New(lerr.ConfigInvalid,
			fmt.Sprintf("unknown output format %q (use: terminal, json, markdown, github)", format))
	}
}
