package processors

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleDocumentIDF(t *testing.T) {
	assert.InDelta(t, 1+math.Log(0.5), singleDocumentIDF(), 1e-12)
	assert.InDelta(t, 0.30685, singleDocumentIDF(), 1e-5)
}

func TestTermWeighterWeigh(t *testing.T) {
	weighter := NewTermWeighter(NewWordTokenizer())

	scores := weighter.Weigh("Apple banana apple cherry. The apple and the banana!")
	require.Len(t, scores, 3)

	idf := singleDocumentIDF()
	assert.Equal(t, "apple", scores[0].Term)
	assert.InDelta(t, 3*idf, scores[0].Weight, 1e-9)
	assert.Equal(t, "banana", scores[1].Term)
	assert.InDelta(t, 2*idf, scores[1].Weight, 1e-9)
	assert.Equal(t, "cherry", scores[2].Term)
	assert.InDelta(t, idf, scores[2].Weight, 1e-9)
}

func TestTermWeighterTiesKeepFirstAppearance(t *testing.T) {
	weighter := NewTermWeighter(NewWordTokenizer())

	scores := weighter.Weigh("zebra yak xylophone zebra yak xylophone")
	require.Len(t, scores, 3)
	assert.Equal(t, []string{"zebra", "yak", "xylophone"}, []string{scores[0].Term, scores[1].Term, scores[2].Term})
}

func TestTermWeighterKeyPhrases(t *testing.T) {
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliet", "kilo", "lima",
	}

	tests := []struct {
		name      string
		opts      []WeighterOption
		text      string
		wantTerms []string
	}{
		{
			name:      "capped at ten",
			text:      strings.Join(words, " "),
			wantTerms: words[:MaxKeyPhrases],
		},
		{
			name:      "stopwords only yields sentinel",
			text:      "the and of to",
			wantTerms: []string{NoPhrasesSentinel},
		},
		{
			name:      "stopwords only yields empty list",
			opts:      []WeighterOption{WithEmptyPhrases(PhrasesEmpty)},
			text:      "the and of to",
			wantTerms: []string{},
		},
		{
			name:      "normalized tf drops below threshold",
			opts:      []WeighterOption{WithTermFrequency(TFNormalized)},
			text:      "apple banana",
			wantTerms: []string{NoPhrasesSentinel},
		},
		{
			name:      "normalized tf single term survives",
			opts:      []WeighterOption{WithTermFrequency(TFNormalized)},
			text:      "apple apple apple",
			wantTerms: []string{"apple"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weighter := NewTermWeighter(NewWordTokenizer(), tt.opts...)
			phrases := weighter.KeyPhrases(tt.text)

			require.NotNil(t, phrases)
			assert.LessOrEqual(t, len(phrases), MaxKeyPhrases)

			terms := make([]string, len(phrases))
			for i, p := range phrases {
				terms[i] = p.Term
				if p.Term != NoPhrasesSentinel {
					assert.Greater(t, p.Weight, SignificanceThreshold)
				}
			}
			assert.Equal(t, tt.wantTerms, terms)
		})
	}
}

func TestTermWeighterKeepsNoStateBetweenCalls(t *testing.T) {
	weighter := NewTermWeighter(NewWordTokenizer())

	first := weighter.KeyPhrases("rocket rocket launch")
	_ = weighter.KeyPhrases("ocean ocean ocean waves")
	again := weighter.KeyPhrases("rocket rocket launch")

	assert.Equal(t, first, again)
	for _, p := range again {
		assert.NotEqual(t, "ocean", p.Term)
	}
}
