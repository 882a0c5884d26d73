package processors

import (
	"math"
	"sort"
	"strings"

	"github.com/athapong/docsense/pkg/analysis"
)

const (
	// SignificanceThreshold is the weight a term must exceed to be a key phrase
	SignificanceThreshold = 0.2
	// MaxKeyPhrases caps the key phrase list
	MaxKeyPhrases = 10
	// NoPhrasesSentinel is the term reported when nothing is significant
	NoPhrasesSentinel = "No significant phrases found"
)

// TermFrequency selects how raw term counts become tf values
type TermFrequency string

const (
	// TFRaw uses the raw count of the term in the document
	TFRaw TermFrequency = "raw"
	// TFNormalized divides the count by the number of counted terms
	TFNormalized TermFrequency = "normalized"
)

// EmptyPhrases selects what KeyPhrases returns when no term is significant
type EmptyPhrases string

const (
	// PhrasesSentinel returns a single NoPhrasesSentinel entry with weight 0
	PhrasesSentinel EmptyPhrases = "sentinel"
	// PhrasesEmpty returns an explicit empty list
	PhrasesEmpty EmptyPhrases = "empty"
)

// TermWeighter ranks the terms of one document by TF-IDF over a corpus made
// of that document alone. Every document frequency is 1, so idf is the constant
// 1 + ln(1/2) and the ranking is plain frequency order.
type TermWeighter struct {
	tokenizer analysis.Tokenizer
	tf        TermFrequency
	empty     EmptyPhrases
}

// WeighterOption configures a TermWeighter
type WeighterOption func(*TermWeighter)

// WithTermFrequency sets the tf convention
func WithTermFrequency(tf TermFrequency) WeighterOption {
	return func(w *TermWeighter) { w.tf = tf }
}

// WithEmptyPhrases sets the empty-result convention
func WithEmptyPhrases(mode EmptyPhrases) WeighterOption {
	return func(w *TermWeighter) { w.empty = mode }
}

// NewTermWeighter creates a weighter using tokenizer for its own term split
func NewTermWeighter(tokenizer analysis.Tokenizer, opts ...WeighterOption) *TermWeighter {
	w := &TermWeighter{
		tokenizer: tokenizer,
		tf:        TFRaw,
		empty:     PhrasesSentinel,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// singleDocumentIDF is idf = 1 + ln(N / (1 + df)) with N = 1 and df = 1
func singleDocumentIDF() float64 {
	const documents, documentFrequency = 1.0, 1.0
	return 1 + math.Log(documents/(1+documentFrequency))
}

// Weigh returns every term of text with its weight, heaviest first.
// Ties keep the order of first appearance. The frequency table lives only for this call.
func (w *TermWeighter) Weigh(text string) []analysis.TermScore {
	counts := make(map[string]int)
	order := make([]string, 0)
	total := 0

	for _, tok := range w.tokenizer.Words(text) {
		term := strings.ToLower(tok.Text)
		if IsStopWord(term) {
			continue
		}
		if _, seen := counts[term]; !seen {
			order = append(order, term)
		}
		counts[term]++
		total++
	}

	idf := singleDocumentIDF()
	scores := make([]analysis.TermScore, 0, len(order))
	for _, term := range order {
		tf := float64(counts[term])
		if w.tf == TFNormalized {
			tf /= float64(total)
		}
		scores = append(scores, analysis.TermScore{Term: term, Weight: tf * idf})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Weight > scores[j].Weight
	})
	return scores
}

// KeyPhrases returns at most MaxKeyPhrases terms weighing more than SignificanceThreshold
func (w *TermWeighter) KeyPhrases(text string) []analysis.TermScore {
	phrases := make([]analysis.TermScore, 0, MaxKeyPhrases)
	for _, score := range w.Weigh(text) {
		if len(phrases) == MaxKeyPhrases {
			break
		}
		if score.Weight > SignificanceThreshold {
			phrases = append(phrases, score)
		}
	}

	if len(phrases) == 0 && w.empty == PhrasesSentinel {
		return []analysis.TermScore{{Term: NoPhrasesSentinel, Weight: 0}}
	}
	return phrases
}
