package analysis

import (
	"context"
)

// Format tags where a document's text came from
type Format string

const (
	FormatPlain        Format = "plain"
	FormatPDFExtracted Format = "pdf-extracted"
)

// Document is the transient input of one analysis call
type Document struct {
	Text   string `json:"text"`
	Format Format `json:"format"`
}

// Token represents a word-level unit and its position in the document
type Token struct {
	Text     string `json:"text"`
	Position int    `json:"position"`
}

// Sentence represents a trimmed, non-empty span bounded by terminal punctuation
type Sentence struct {
	Text     string `json:"text"`
	Position int    `json:"position"`
}

// TermScore pairs a term with its single-document weight
type TermScore struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// EntityCategory is the category of a named entity
type EntityCategory string

const (
	CategoryPerson   EntityCategory = "PERSON"
	CategoryOrg      EntityCategory = "ORG"
	CategoryLocation EntityCategory = "LOCATION"
)

// Entity represents a named entity mention
type Entity struct {
	Text     string         `json:"text"`
	Category EntityCategory `json:"category"`
}

// Entities groups entity mentions by category in order of appearance.
// Duplicates are kept.
type Entities struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
}

// NewEntities returns an Entities value with empty, non-nil lists
func NewEntities() Entities {
	return Entities{
		People:        make([]string, 0),
		Organizations: make([]string, 0),
		Locations:     make([]string, 0),
	}
}

// Add appends an entity to the list of its category
func (e *Entities) Add(ent Entity) {
	switch ent.Category {
	case CategoryPerson:
		e.People = append(e.People, ent.Text)
	case CategoryOrg:
		e.Organizations = append(e.Organizations, ent.Text)
	case CategoryLocation:
		e.Locations = append(e.Locations, ent.Text)
	}
}

// Len returns the total number of mentions
func (e Entities) Len() int {
	return len(e.People) + len(e.Organizations) + len(e.Locations)
}

// SentimentLabel is the three-way polarity bucket
type SentimentLabel string

const (
	LabelPositive SentimentLabel = "positive"
	LabelNegative SentimentLabel = "negative"
	LabelNeutral  SentimentLabel = "neutral"
)

// SentimentMode names the scoring and labelling convention used for a result
type SentimentMode string

const (
	// ModeLexiconSum sums stemmed-token polarities and labels by strict sign.
	ModeLexiconSum SentimentMode = "lexicon-sum"
	// ModeComparative divides the polarity sum by the token count and labels with a ±0.05 dead zone.
	ModeComparative SentimentMode = "comparative"
	// ModeVADER uses the VADER compound score with the same ±0.05 dead zone.
	ModeVADER SentimentMode = "vader"
)

// SentimentResult is a score, its label and the convention that produced them
type SentimentResult struct {
	Score float64        `json:"score"`
	Label SentimentLabel `json:"label"`
	Mode  SentimentMode  `json:"mode"`
}

// StageReport lists which stages ran and which best-effort stages failed
type StageReport struct {
	Ran    []string          `json:"ran"`
	Failed map[string]string `json:"failed,omitempty"`
}

// Result is the aggregate analysis of one document.
// Optional fields are nil when their stage is not enabled for the surface.
type Result struct {
	WordCount      int              `json:"wordCount"`
	SentenceCount  int              `json:"sentenceCount"`
	KeyPhrases     []TermScore      `json:"keyPhrases"`
	Sentiment      *SentimentResult `json:"sentiment,omitempty"`
	Entities       *Entities        `json:"entities,omitempty"`
	Summary        *string          `json:"summary,omitempty"`
	ReadingTime    int              `json:"readingTime"`
	CharacterCount *int             `json:"characterCount,omitempty"`
	Stages         StageReport      `json:"stages"`
}

// Tokenizer splits raw text into words and sentences
type Tokenizer interface {
	Words(text string) []Token
	Sentences(text string) []Sentence
}

// Stemmer reduces a word to its root form
type Stemmer interface {
	Stem(word string) string
}

// KeyPhraseExtractor ranks significant terms of a single document
type KeyPhraseExtractor interface {
	KeyPhrases(text string) []TermScore
}

// SentimentScorer scores the polarity of a document
type SentimentScorer interface {
	Score(text string) SentimentResult
}

// SentimentLexicon maps words to polarity contributions
type SentimentLexicon interface {
	Polarity(word string) (float64, bool)
}

// EntityTagger finds people, organizations and locations in text
type EntityTagger interface {
	Extract(ctx context.Context, text string) (Entities, error)
}

// Summarizer produces a shorter representative text
type Summarizer interface {
	Summarize(text string) string
}
