// Package parser extracts plain text from source files before analysis,
// stripping Markdown and LaTeX markup while preserving paragraph
// structure.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"academiclint/internal/lerr"
	"academiclint/internal/validate"
)

// ParseFile reads a file and returns its plain-text content.
func ParseFile(path string) (string, error) {
	if err := validate.FilePath(path); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", lerr.Wrap(lerr.ParsingFailed, "cannot stat file", err)
	}
	if info.Size() > validate.MaxFileSize {
		return "", lerr.New(lerr.ValidationFailed,
			fmt.Sprintf("file exceeds maximum size of %d bytes (got %d)", validate.MaxFileSize, info.Size()))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", lerr.Wrap(lerr.ParsingFailed, "failed to read file", err)
	}

	content := string(raw)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return ParseMarkdown(content), nil
	case ".tex":
		return ParseLaTeX(content), nil
	default:
		return content, nil
	}
}

var (
	mdCodeBlock  = regexp.MustCompile("```[\\s\\S]*?```")
	mdInlineCode = regexp.MustCompile("`[^`]+`")
	mdImage      = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	mdLink       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	mdHTMLTag    = regexp.MustCompile(`<[^>]+>`)
	mdHRule      = regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`)
	mdHeading    = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	mdBold       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdItalic     = regexp.MustCompile(`\*([^*]+)\*`)
	mdBoldU      = regexp.MustCompile(`__([^_]+)__`)
	mdItalicU    = regexp.MustCompile(`_([^_]+)_`)
	mdBlockquote = regexp.MustCompile(`(?m)^>\s*`)
	mdBullet     = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	mdNumbered   = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	multiNewline = regexp.MustCompile(`\n{3,}`)
)

// ParseMarkdown strips Markdown formatting, keeping the prose.
func ParseMarkdown(content string) string {
	text := content
	text = mdCodeBlock.ReplaceAllString(text, "")
	text = mdInlineCode.ReplaceAllString(text, "")
	text = mdImage.ReplaceAllString(text, "$1")
	text = mdLink.ReplaceAllString(text, "$1")
	text = mdHTMLTag.ReplaceAllString(text, "")
	text = mdHRule.ReplaceAllString(text, "")
	text = mdHeading.ReplaceAllString(text, "")
	text = mdBold.ReplaceAllString(text, "$1")
	text = mdItalic.ReplaceAllString(text, "$1")
	text = mdBoldU.ReplaceAllString(text, "$1")
	text = mdItalicU.ReplaceAllString(text, "$1")
	text = mdBlockquote.ReplaceAllString(text, "")
	text = mdBullet.ReplaceAllString(text, "")
	text = mdNumbered.ReplaceAllString(text, "")
	text = multiNewline.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

var (
	texComment      = regexp.MustCompile(`(?m)%.*$`)
	texDocClass     = regexp.MustCompile(`\\documentclass(\[.*?\])?\{.*?\}`)
	texUsePackage   = regexp.MustCompile(`\\usepackage(\[.*?\])?\{.*?\}`)
	texBeginEndDoc  = regexp.MustCompile(`\\(?:begin|end)\{document\}`)
	texKeepEnvs     = regexp.MustCompile(`\\(?:begin|end)\{(?:abstract|quote|quotation|center)\}`)
	texFigureTables = regexp.MustCompile(`\\begin\{(figure|table)\}[\s\S]*?\\end\{(?:figure|table)\}`)
	texDisplayMath  = regexp.MustCompile(`\$\$[\s\S]*?\$\$`)
	texInlineMath   = regexp.MustCompile(`\$[^$]+\$`)
	texEquation     = regexp.MustCompile(`\\begin\{equation\}[\s\S]*?\\end\{equation\}`)
	texAlign        = regexp.MustCompile(`\\begin\{align\}[\s\S]*?\\end\{align\}`)
	texSection      = regexp.MustCompile(`\\(?:section|subsection|subsubsection|chapter)\*?\{([^}]+)\}`)
	texFormatting   = regexp.MustCompile(`\\(?:textbf|textit|emph|underline)\{([^}]+)\}`)
	texCite         = regexp.MustCompile(`\\cite\{[^}]+\}`)
	texRef          = regexp.MustCompile(`\\ref\{[^}]+\}`)
	texLabel        = regexp.MustCompile(`\\label\{[^}]+\}`)
	texCommandBrace = regexp.MustCompile(`\\[a-zA-Z]+\{[^}]*\}`)
	texCommand      = regexp.MustCompile(`\\[a-zA-Z]+`)
	texBraces       = regexp.MustCompile(`[{}]`)
)

// ParseLaTeX strips LaTeX commands, keeping the prose.
func ParseLaTeX(content string) string {
	text := content
	text = texComment.ReplaceAllString(text, "")
	text = texDocClass.ReplaceAllString(text, "")
	text = texUsePackage.ReplaceAllString(text, "")
	text = texBeginEndDoc.ReplaceAllString(text, "")
	text = texKeepEnvs.ReplaceAllString(text, "")
	text = texFigureTables.ReplaceAllString(text, "")
	text = texDisplayMath.ReplaceAllString(text, "")
	text = texEquation.ReplaceAllString(text, "")
	text = texAlign.ReplaceAllString(text, "")
	text = texInlineMath.ReplaceAllString(text, "")
	text = texSection.ReplaceAllString(text, "$1\n\n")
	text = texFormatting.ReplaceAllString(text, "$1")
	text = texCite.ReplaceAllString(text, "[citation]")
	text = texRef.ReplaceAllString(text, "[ref]")
	text = texLabel.ReplaceAllString(text, "")
	text = texCommandBrace.ReplaceAllString(text, "")
	text = texCommand.ReplaceAllString(text, "")
	text = texBraces.ReplaceAllString(text, "")
	text = multiNewline.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
