package nlp

import (
	"log/slog"
	"strings"
	"sync"
	"unicode"

	"github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball"

	"academiclint/internal/lerr"
	"academiclint/internal/lexicon"
	"academiclint/internal/result"
)

// Preprocessor turns raw text into a ProcessedDocument using the prose
// tokenizer, tagger, and sentence segmenter. It is safe for reuse across
// calls; each call produces an independent document.
type Preprocessor struct {
	logger *slog.Logger

	once  sync.Once
	ready bool
}

// NewPreprocessor creates a preprocessor. The logger may not be nil.
func NewPreprocessor(logger *slog.Logger) *Preprocessor {
	return &Preprocessor{logger: logger}
}

// ensure runs a tiny document through prose once so that model
// initialization failures surface as ModelUnavailable instead of a
// mid-analysis error.
func (p *Preprocessor) ensure() error {
	var initErr error
	p.once.Do(func() {
		_, err := prose.NewDocument("ok")
		if err != nil {
			initErr = err
			return
		}
		p.ready = true
	})
	if initErr != nil {
		return lerr.Wrap(lerr.ModelUnavailable, "NLP model failed to initialize", initErr)
	}
	if !p.ready {
		return lerr.New(lerr.ModelUnavailable, "NLP model failed to initialize")
	}
	return nil
}

// Process runs the full NLP pass over text.
func (p *Preprocessor) Process(text string) (*ProcessedDocument, error) {
	if err := p.ensure(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, lerr.Wrap(lerr.ProcessingFailed, "NLP processing failed", err)
	}

	tokens := p.extractTokens(text, doc.Tokens())
	sentences := extractSentences(text, doc.Sentences(), tokens)
	paragraphs := extractParagraphs(text, sentences)
	entities := extractEntities(text, doc.Entities())
	chunks := extractNounChunks(tokens)

	p.logger.Debug("preprocessing complete",
		"tokens", len(tokens),
		"sentences", len(sentences),
		"paragraphs", len(paragraphs))

	return &ProcessedDocument{
		Text:         text,
		Tokens:       tokens,
		Sentences:    sentences,
		Paragraphs:   paragraphs,
		Entities:     entities,
		NounChunks:   chunks,
		ConceptCount: conceptCount(tokens),
		FillerRatio:  fillerRatio(text, tokens),
	}, nil
}

// extractTokens converts prose tokens and recovers character offsets by
// scanning forward through the source text.
func (p *Preprocessor) extractTokens(text string, proseTokens []prose.Token) []Token {
	tokens := make([]Token, 0, len(proseTokens))
	cursor := 0

	for _, pt := range proseTokens {
		offset := cursor
		if idx := strings.Index(text[cursor:], pt.Text); idx >= 0 {
			offset = cursor + idx
			cursor = offset + len(pt.Text)
		}

		lower := strings.ToLower(pt.Text)
		tokens = append(tokens, Token{
			Text:       pt.Text,
			Lemma:      Lemma(pt.Text),
			POS:        coarsePOS(pt.Tag),
			IsStop:     lexicon.FunctionWords[lower],
			CharOffset: offset,
		})
	}
	return tokens
}

// Lemma returns the stemmed lowercase form of a word. Words the stemmer
// rejects fall back to plain lowercase.
func Lemma(word string) string {
	stem, err := snowball.Stem(strings.ToLower(word), "english", true)
	if err != nil || stem == "" {
		return strings.ToLower(word)
	}
	return stem
}

// coarsePOS maps Penn Treebank tags to the coarse classes the detectors
// and the density scorer use.
func coarsePOS(tag string) POS {
	switch {
	case strings.HasPrefix(tag, "NN"):
		return POSNoun
	case strings.HasPrefix(tag, "VB"):
		return POSVerb
	case strings.HasPrefix(tag, "JJ"):
		return POSAdj
	case strings.HasPrefix(tag, "RB"):
		return POSAdv
	default:
		return POSOther
	}
}

// IsWord reports whether a token is a lexical word (not punctuation or
// whitespace).
func IsWord(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func extractSentences(text string, proseSents []prose.Sentence, tokens []Token) []Sentence {
	sentences := make([]Sentence, 0, len(proseSents))
	cursor := 0

	for _, ps := range proseSents {
		st := strings.TrimSpace(ps.Text)
		if st == "" {
			continue
		}

		start := cursor
		if idx := strings.Index(text[cursor:], st); idx >= 0 {
			start = cursor + idx
			cursor = start + len(st)
		}
		end := start + len(st)

		span := result.Span{Start: start, End: end}
		sentences = append(sentences, Sentence{
			Text:   st,
			Span:   span,
			Tokens: tokensWithin(tokens, span),
		})
	}
	return sentences
}

func tokensWithin(tokens []Token, span result.Span) []Token {
	var out []Token
	for _, t := range tokens {
		if span.Contains(t.CharOffset) {
			out = append(out, t)
		}
	}
	return out
}

// extractParagraphs splits on blank-line boundaries and assigns each
// sentence to the paragraph containing its start offset.
func extractParagraphs(text string, sentences []Sentence) []Paragraph {
	var paragraphs []Paragraph
	cursor := 0

	for _, block := range strings.Split(text, "\n\n") {
		trimmed := strings.TrimSpace(block)
		if trimmed == "" {
			cursor += len(block) + 2
			continue
		}

		start := cursor
		if idx := strings.Index(text[cursor:], trimmed); idx >= 0 {
			start = cursor + idx
		}
		end := start + len(trimmed)
		cursor = end

		span := result.Span{Start: start, End: end}
		var paraSents []Sentence
		wordCount := 0
		for _, s := range sentences {
			if span.Contains(s.Span.Start) {
				paraSents = append(paraSents, s)
				for _, t := range s.Tokens {
					if IsWord(t.Text) {
						wordCount++
					}
				}
			}
		}

		paragraphs = append(paragraphs, Paragraph{
			Text:          trimmed,
			Span:          span,
			Sentences:     paraSents,
			WordCount:     wordCount,
			SentenceCount: len(paraSents),
		})
	}
	return paragraphs
}

func extractEntities(text string, proseEnts []prose.Entity) []Entity {
	entities := make([]Entity, 0, len(proseEnts))
	cursor := 0

	for _, pe := range proseEnts {
		start := cursor
		if idx := strings.Index(text[cursor:], pe.Text); idx >= 0 {
			start = cursor + idx
			cursor = start + len(pe.Text)
		}
		entities = append(entities, Entity{
			Text:  pe.Text,
			Label: pe.Label,
			Span:  result.Span{Start: start, End: start + len(pe.Text)},
		})
	}
	return entities
}

// extractNounChunks groups runs of adjectives followed by nouns into
// simple noun phrases.
func extractNounChunks(tokens []Token) []NounChunk {
	var chunks []NounChunk
	i := 0
	for i < len(tokens) {
		if tokens[i].POS != POSAdj && tokens[i].POS != POSNoun {
			i++
			continue
		}

		j := i
		lastNoun := -1
		for j < len(tokens) && (tokens[j].POS == POSAdj || tokens[j].POS == POSNoun) {
			if tokens[j].POS == POSNoun {
				lastNoun = j
			}
			j++
		}

		if lastNoun >= 0 {
			parts := make([]string, 0, lastNoun-i+1)
			for k := i; k <= lastNoun; k++ {
				parts = append(parts, tokens[k].Text)
			}
			end := tokens[lastNoun].CharOffset + len(tokens[lastNoun].Text)
			chunks = append(chunks, NounChunk{
				Text: strings.Join(parts, " "),
				Root: tokens[lastNoun].Text,
				Span: result.Span{Start: tokens[i].CharOffset, End: end},
			})
		}
		i = j
	}
	return chunks
}

// conceptCount is the number of distinct lemmas among non-stopword
// content-class tokens.
func conceptCount(tokens []Token) int {
	lemmas := make(map[string]bool)
	for _, t := range tokens {
		if t.IsStop {
			continue
		}
		switch t.POS {
		case POSNoun, POSVerb, POSAdj, POSAdv:
			lemmas[t.Lemma] = true
		}
	}
	return len(lemmas)
}

// fillerRatio counts distinct filler phrases present in the text,
// normalized by word count.
func fillerRatio(text string, tokens []Token) float64 {
	lower := strings.ToLower(text)
	fillerCount := 0
	for _, phrase := range lexicon.FillerPhrases {
		if strings.Contains(lower, phrase) {
			fillerCount++
		}
	}

	wordCount := 0
	for _, t := range tokens {
		if IsWord(t.Text) {
			wordCount++
		}
	}
	if wordCount == 0 {
		wordCount = 1
	}
	return float64(fillerCount) / float64(wordCount)
}
