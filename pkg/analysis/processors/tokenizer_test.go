package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athapong/docsense/pkg/analysis"
)

func tokenTexts(tokens []analysis.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func TestWordTokenizerWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "scenario text",
			text: "John went to Paris. He works at Acme Corp. It was a great trip!",
			want: []string{"John", "went", "to", "Paris", "He", "works", "at", "Acme", "Corp", "It", "was", "a", "great", "trip"},
		},
		{
			name: "contractions stay attached",
			text: "I don't think it's over",
			want: []string{"I", "don't", "think", "it's", "over"},
		},
		{
			name: "trailing apostrophe is dropped",
			text: "the students' books",
			want: []string{"the", "students", "books"},
		},
		{
			name: "numbers and underscores",
			text: "version_2 shipped in 2024, on-time",
			want: []string{"version_2", "shipped", "in", "2024", "on", "time"},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			text: " \n\t ",
			want: []string{},
		},
	}

	tokenizer := NewWordTokenizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tokenizer.Words(tt.text)
			assert.Equal(t, tt.want, tokenTexts(tokens))
			for i, tok := range tokens {
				assert.Equal(t, i, tok.Position)
			}
		})
	}
}

func TestWordTokenizerSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "terminal punctuation",
			text: "John went to Paris. He works at Acme Corp. It was a great trip!",
			want: []string{"John went to Paris", "He works at Acme Corp", "It was a great trip"},
		},
		{
			name: "punctuation runs",
			text: "Wait... what?! Really.",
			want: []string{"Wait", "what", "Really"},
		},
		{
			name: "trailing fragment without punctuation",
			text: "First one. second one",
			want: []string{"First one", "second one"},
		},
		{
			name: "whitespace fragments dropped",
			text: "One.   . Two!  ",
			want: []string{"One", "Two"},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
	}

	tokenizer := NewWordTokenizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentences := tokenizer.Sentences(tt.text)
			got := make([]string, len(sentences))
			for i, s := range sentences {
				got[i] = s.Text
				assert.Equal(t, i, s.Position)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPorterStemmer(t *testing.T) {
	stemmer := NewPorterStemmer()

	assert.Equal(t, "run", stemmer.Stem("running"))
	assert.Equal(t, "run", stemmer.Stem("Running"))
	assert.Equal(t, "cat", stemmer.Stem("cats"))
}

func TestTokenizeAndStem(t *testing.T) {
	stems := TokenizeAndStem(NewWordTokenizer(), NewPorterStemmer(), "The cats were running to the park")

	require.NotEmpty(t, stems)
	assert.Contains(t, stems, "cat")
	assert.Contains(t, stems, "run")
	assert.NotContains(t, stems, "the")
	assert.NotContains(t, stems, "to")
}
