// Package validate rejects bad input before the analysis core runs.
package validate

import (
	"fmt"
	"path/filepath"
	"strings"

	"academiclint/internal/lerr"
)

// MaxTextLength guards against memory exhaustion on pathological input.
const MaxTextLength = 10_000_000

// MaxFileSize is the largest source file the CLI will read.
const MaxFileSize = 50_000_000

// SupportedExtensions lists the file types the parser accepts.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
	".text":     true,
	".tex":      true,
}

// Text validates and sanitizes input text: it must be non-empty and
// under the length cap. Line endings are normalized to \n and NUL bytes
// stripped.
func Text(text string) (string, error) {
	if len(text) == 0 {
		return "", lerr.New(lerr.ValidationFailed, "text cannot be empty")
	}
	if len(text) > MaxTextLength {
		return "", lerr.New(lerr.ValidationFailed,
			fmt.Sprintf("text exceeds maximum length of %d characters (got %d)", MaxTextLength, len(text)))
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\x00", "")

	if strings.TrimSpace(text) == "" {
		return "", lerr.New(lerr.ValidationFailed, "text contains no content")
	}
	return text, nil
}

// FilePath checks that a path has a supported extension.
func FilePath(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !SupportedExtensions[ext] {
		return lerr.New(lerr.ValidationFailed,
			fmt.Sprintf("unsupported file extension %q (supported: .md, .markdown, .tex, .text, .txt)", ext))
	}
	return nil
}
