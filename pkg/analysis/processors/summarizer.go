package processors

import (
	"regexp"
	"strings"
)

const (
	// MinSummarySentences is both the no-op threshold and the summary floor
	MinSummarySentences = 3
	// SummaryRatio is the share of sentences kept
	SummaryRatio = 0.30
)

// punctuated sentences keep their terminal punctuation; trailing text without it is not a sentence
var punctuatedSentence = regexp.MustCompile(`[^.!?]+[.!?]+`)

// LeadSummarizer summarizes by keeping the leading sentences of the document
type LeadSummarizer struct{}

// NewLeadSummarizer creates a new summarizer
func NewLeadSummarizer() *LeadSummarizer {
	return &LeadSummarizer{}
}

// Summarize returns text unchanged when it has at most three sentences and
// otherwise the first max(3, floor(0.3*N)) sentences joined by single spaces.
func (s *LeadSummarizer) Summarize(text string) string {
	sentences := punctuatedSentence.FindAllString(text, -1)
	if len(sentences) <= MinSummarySentences {
		return text
	}

	keep := SummaryLength(len(sentences))
	parts := make([]string, 0, keep)
	for _, sentence := range sentences[:keep] {
		parts = append(parts, strings.TrimSpace(sentence))
	}
	return strings.Join(parts, " ")
}

// SummaryLength is max(3, floor(0.3*n))
func SummaryLength(n int) int {
	keep := n * 3 / 10
	if keep < MinSummarySentences {
		keep = MinSummarySentences
	}
	return keep
}
