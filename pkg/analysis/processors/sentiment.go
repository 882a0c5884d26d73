package processors

import (
	"fmt"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/athapong/docsense/pkg/analysis"
)

// DeadZone is the magnitude below which comparative and VADER scores are neutral
const DeadZone = 0.05

// Label buckets score under the convention of mode.
// Lexicon-sum uses the strict sign; comparative and VADER use the ±DeadZone band.
func Label(mode analysis.SentimentMode, score float64) analysis.SentimentLabel {
	threshold := DeadZone
	if mode == analysis.ModeLexiconSum {
		threshold = 0
	}

	switch {
	case score > threshold:
		return analysis.LabelPositive
	case score < -threshold:
		return analysis.LabelNegative
	default:
		return analysis.LabelNeutral
	}
}

// ParseSentimentMode validates a mode name
func ParseSentimentMode(name string) (analysis.SentimentMode, error) {
	switch mode := analysis.SentimentMode(strings.ToLower(strings.TrimSpace(name))); mode {
	case analysis.ModeLexiconSum, analysis.ModeComparative, analysis.ModeVADER:
		return mode, nil
	case "":
		return analysis.ModeComparative, nil
	}
	return "", fmt.Errorf("unknown sentiment mode %q", name)
}

// LexiconScorer scores sentiment with a word lexicon, or with VADER in ModeVADER.
// Its tables are built once and only read afterwards.
type LexiconScorer struct {
	mode      analysis.SentimentMode
	tokenizer analysis.Tokenizer
	stemmer   analysis.Stemmer
	lexicon   analysis.SentimentLexicon
	stemmed   analysis.SentimentLexicon
	vader     *govader.SentimentIntensityAnalyzer
}

// NewLexiconScorer creates a scorer for mode. A nil lexicon selects AFINN.
func NewLexiconScorer(mode analysis.SentimentMode, tokenizer analysis.Tokenizer, stemmer analysis.Stemmer, lexicon analysis.SentimentLexicon) (*LexiconScorer, error) {
	mode, err := ParseSentimentMode(string(mode))
	if err != nil {
		return nil, err
	}
	if lexicon == nil {
		lexicon = AFINN()
	}

	s := &LexiconScorer{
		mode:      mode,
		tokenizer: tokenizer,
		stemmer:   stemmer,
		lexicon:   lexicon,
	}

	switch mode {
	case analysis.ModeLexiconSum:
		s.stemmed = lexicon
		if stemmable, ok := lexicon.(interface {
			Stemmed(analysis.Stemmer) *MapLexicon
		}); ok {
			s.stemmed = stemmable.Stemmed(stemmer)
		}
	case analysis.ModeVADER:
		s.vader = govader.NewSentimentIntensityAnalyzer()
	}

	return s, nil
}

// Score computes the polarity of text and labels it
func (s *LexiconScorer) Score(text string) analysis.SentimentResult {
	var score float64
	switch s.mode {
	case analysis.ModeLexiconSum:
		score = s.lexiconSum(text)
	case analysis.ModeVADER:
		score = s.vader.PolarityScores(text).Compound
	default:
		score = s.comparative(text)
	}

	return analysis.SentimentResult{
		Score: score,
		Label: Label(s.mode, score),
		Mode:  s.mode,
	}
}

func (s *LexiconScorer) lexiconSum(text string) float64 {
	var sum float64
	for _, stem := range TokenizeAndStem(s.tokenizer, s.stemmer, text) {
		if polarity, ok := s.stemmed.Polarity(stem); ok {
			sum += polarity
		}
	}
	return sum
}

func (s *LexiconScorer) comparative(text string) float64 {
	words := s.tokenizer.Words(text)
	if len(words) == 0 {
		return 0
	}

	var sum float64
	for _, w := range words {
		if polarity, ok := s.lexicon.Polarity(strings.ToLower(w.Text)); ok {
			sum += polarity
		}
	}
	return sum / float64(len(words))
}
