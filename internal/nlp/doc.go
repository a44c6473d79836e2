// Package nlp provides the processed-document model consumed by the
// detectors, and the preprocessor that builds it from raw text.
package nlp

import "academiclint/internal/result"

// POS is the coarse part-of-speech class of a token.
type POS string

const (
	POSNoun  POS = "NOUN"
	POSVerb  POS = "VERB"
	POSAdj   POS = "ADJ"
	POSAdv   POS = "ADV"
	POSOther POS = "OTHER"
)

// Token is a single lexical token. Read-only after preprocessing.
type Token struct {
	Text       string
	Lemma      string
	POS        POS
	IsStop     bool
	CharOffset int
}

// Sentence is one sentence with its source span and tokens.
type Sentence struct {
	Text   string
	Span   result.Span
	Tokens []Token
}

// Paragraph is a blank-line-delimited block of text.
type Paragraph struct {
	Text          string
	Span          result.Span
	Sentences     []Sentence
	WordCount     int
	SentenceCount int
}

// Entity is a named entity recognized in the text.
type Entity struct {
	Text  string
	Label string
	Span  result.Span
}

// NounChunk is a contiguous noun phrase.
type NounChunk struct {
	Text string
	Root string
	Span result.Span
}

// ProcessedDocument is the read-only document abstraction every detector
// consumes. It is created once per Check call and never mutated.
type ProcessedDocument struct {
	Text         string
	Tokens       []Token
	Sentences    []Sentence
	Paragraphs   []Paragraph
	Entities     []Entity
	NounChunks   []NounChunk
	ConceptCount int
	FillerRatio  float64
}
