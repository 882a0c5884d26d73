package processors

import (
	"strings"

	"github.com/kljensen/snowball/english"

	"github.com/athapong/docsense/pkg/analysis"
)

// PorterStemmer reduces English words to their root form ("running" -> "run")
type PorterStemmer struct{}

// NewPorterStemmer creates a new stemmer
func NewPorterStemmer() *PorterStemmer {
	return &PorterStemmer{}
}

// Stem returns the lowercase root form of word
func (s *PorterStemmer) Stem(word string) string {
	return english.Stem(strings.ToLower(word), true)
}

// TokenizeAndStem lowercases the words of text, drops stopwords and stems the rest
func TokenizeAndStem(tokenizer analysis.Tokenizer, stemmer analysis.Stemmer, text string) []string {
	words := tokenizer.Words(text)
	stems := make([]string, 0, len(words))
	for _, w := range words {
		lower := strings.ToLower(w.Text)
		if IsStopWord(lower) {
			continue
		}
		stems = append(stems, stemmer.Stem(lower))
	}
	return stems
}
