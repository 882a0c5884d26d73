package processors

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/athapong/docsense/pkg/analysis"
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// WordTokenizer splits text into word tokens and sentences.
// It holds no state and is safe for concurrent use.
type WordTokenizer struct{}

// NewWordTokenizer creates a new word tokenizer
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{}
}

// Words returns the alphanumeric runs of text in order.
// An apostrophe between two word characters stays in the token, so "don't" is one word.
func (t *WordTokenizer) Words(text string) []analysis.Token {
	tokens := make([]analysis.Token, 0)
	runes := []rune(text)

	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, analysis.Token{Text: current.String(), Position: len(tokens)})
			current.Reset()
		}
	}

	for i, r := range runes {
		switch {
		case isWordRune(r):
			current.WriteRune(r)
		case isApostrophe(r) && current.Len() > 0 && i+1 < len(runes) && isWordRune(runes[i+1]):
			current.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	return tokens
}

// Sentences splits text on runs of terminal punctuation and drops fragments
// that are empty after trimming.
func (t *WordTokenizer) Sentences(text string) []analysis.Sentence {
	sentences := make([]analysis.Sentence, 0)
	for _, part := range sentenceBoundary.Split(text, -1) {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		sentences = append(sentences, analysis.Sentence{Text: trimmed, Position: len(sentences)})
	}
	return sentences
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}
