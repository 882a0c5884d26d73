package processors

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/athapong/docsense/pkg/analysis"
)

// Tagger names accepted by ToolkitConfig
const (
	TaggerRules = "rules"
	TaggerProse = "prose"
)

// ToolkitConfig selects the conventions of the default stage implementations
type ToolkitConfig struct {
	SentimentMode analysis.SentimentMode
	TermFrequency TermFrequency
	EmptyPhrases  EmptyPhrases
	Tagger        string
	Lexicon       analysis.SentimentLexicon
	Logger        *logrus.Logger
}

// NewToolkit builds a fresh set of stage implementations. Nothing is shared
// between toolkits except the read-only word tables.
func NewToolkit(cfg ToolkitConfig) (analysis.Toolkit, error) {
	tokenizer := NewWordTokenizer()

	mode := cfg.SentimentMode
	if mode == "" {
		mode = analysis.ModeComparative
	}
	scorer, err := NewLexiconScorer(mode, tokenizer, NewPorterStemmer(), cfg.Lexicon)
	if err != nil {
		return analysis.Toolkit{}, err
	}

	opts := make([]WeighterOption, 0, 2)
	switch cfg.TermFrequency {
	case "", TFRaw, TFNormalized:
		if cfg.TermFrequency != "" {
			opts = append(opts, WithTermFrequency(cfg.TermFrequency))
		}
	default:
		return analysis.Toolkit{}, fmt.Errorf("unknown term frequency %q", cfg.TermFrequency)
	}
	switch cfg.EmptyPhrases {
	case "", PhrasesSentinel, PhrasesEmpty:
		if cfg.EmptyPhrases != "" {
			opts = append(opts, WithEmptyPhrases(cfg.EmptyPhrases))
		}
	default:
		return analysis.Toolkit{}, fmt.Errorf("unknown empty phrases mode %q", cfg.EmptyPhrases)
	}

	var tagger analysis.EntityTagger
	switch cfg.Tagger {
	case "", TaggerRules:
		tagger = NewRuleTagger()
	case TaggerProse:
		tagger = NewProseTagger(cfg.Logger)
	default:
		return analysis.Toolkit{}, fmt.Errorf("unknown entity tagger %q", cfg.Tagger)
	}

	return analysis.Toolkit{
		Tokenizer:  tokenizer,
		KeyPhrases: NewTermWeighter(tokenizer, opts...),
		Sentiment:  scorer,
		Entities:   tagger,
		Summarizer: NewLeadSummarizer(),
	}, nil
}
