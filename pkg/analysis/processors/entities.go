package processors

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/athapong/docsense/pkg/analysis"
)

var entityCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "nlp_entities_extracted_total",
		Help: "Number of entities extracted",
	},
	[]string{"entity_type", "tagger"},
)

func init() {
	prometheus.MustRegister(entityCount)
}

// spanToken is a word with its byte span and the punctuation seen before it
type spanToken struct {
	text          string
	start, end    int
	sentenceStart bool
	breakBefore   bool
}

func (t spanToken) capitalized() bool {
	r, _ := utf8.DecodeRuneInString(t.text)
	return unicode.IsUpper(r)
}

// bare drops a possessive suffix
func (t spanToken) bare() string {
	for _, suffix := range []string{"'s", "’s"} {
		if strings.HasSuffix(t.text, suffix) {
			return strings.TrimSuffix(t.text, suffix)
		}
	}
	return t.text
}

func (t spanToken) possessive() bool {
	return t.bare() != t.text
}

// scanSpans tokenizes text like WordTokenizer and records, for every word,
// whether a sentence boundary or other break punctuation precedes it.
func scanSpans(text string) []spanToken {
	tokens := make([]spanToken, 0)
	start := -1
	sentenceStart := true
	breakBefore := false

	emit := func(end int) {
		word := text[start:end]
		tokens = append(tokens, spanToken{
			text:          word,
			start:         start,
			end:           end,
			sentenceStart: sentenceStart,
			breakBefore:   breakBefore,
		})
		start = -1
		sentenceStart = false
		breakBefore = false
	}

	for i, r := range text {
		switch {
		case isWordRune(r):
			if start < 0 {
				start = i
			}
		case isApostrophe(r) && start >= 0 && nextIsWordRune(text, i+utf8.RuneLen(r)):
		default:
			if start >= 0 {
				emit(i)
			}
			switch {
			case r == '.' || r == '!' || r == '?':
				breakBefore = true
				if r != '.' || len(tokens) == 0 || !abbreviations.Contains(tokens[len(tokens)-1].text) {
					sentenceStart = true
				}
			case r == '\n' || (unicode.IsPunct(r) && r != '&' && r != '-'):
				breakBefore = true
			}
		}
	}
	if start >= 0 {
		emit(len(text))
	}

	return tokens
}

func nextIsWordRune(text string, at int) bool {
	if at >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[at:])
	return isWordRune(r)
}

// RuleTagger finds entities with capitalization heuristics and gazetteers.
// It keeps no state between calls.
type RuleTagger struct{}

// NewRuleTagger creates a new rule-based tagger
func NewRuleTagger() *RuleTagger {
	return &RuleTagger{}
}

// Extract implements analysis.EntityTagger
func (t *RuleTagger) Extract(ctx context.Context, text string) (analysis.Entities, error) {
	entities := analysis.NewEntities()
	tokens := scanSpans(text)

	for i := 0; i < len(tokens); {
		run := t.collectRun(tokens, i)
		if len(run) == 0 {
			i++
			continue
		}
		i = run[len(run)-1] + 1

		var prev string
		if run[0] > 0 && !tokens[run[0]].breakBefore {
			prev = strings.ToLower(tokens[run[0]-1].text)
		}

		if ent, ok := classifyRun(text, tokens, run, prev); ok {
			entities.Add(ent)
			entityCount.WithLabelValues(string(ent.Category), "rules").Inc()
		}
	}

	return entities, nil
}

// collectRun returns the token indexes of the capitalized run starting at i
func (t *RuleTagger) collectRun(tokens []spanToken, i int) []int {
	if !tokens[i].capitalized() || capitalizedFunctionWords.Contains(tokens[i].text) {
		return nil
	}

	run := []int{i}
	if tokens[i].possessive() {
		return run
	}

	for j := i + 1; j < len(tokens); j++ {
		tok := tokens[j]
		if tok.breakBefore && !abbreviations.Contains(tokens[j-1].text) {
			break
		}
		if tok.sentenceStart {
			break
		}
		if runConnectors.Contains(tok.text) {
			if j+1 < len(tokens) && tokens[j+1].capitalized() && !tokens[j+1].breakBefore &&
				!capitalizedFunctionWords.Contains(tokens[j+1].text) {
				continue
			}
			break
		}
		if !tok.capitalized() || capitalizedFunctionWords.Contains(tok.text) {
			break
		}
		run = append(run, j)
		if tok.possessive() {
			break
		}
	}

	return run
}

func classifyRun(text string, tokens []spanToken, run []int, prev string) (analysis.Entity, bool) {
	first := tokens[run[0]]

	// a capitalized opener such as "Meanwhile" is not part of the entity after it
	if first.sentenceStart && len(run) > 1 && droppableOpener(tokens, run) {
		if ent, ok := matchGazetteers(text, tokens, run[1:]); ok {
			return ent, true
		}
	}

	if ent, ok := matchGazetteers(text, tokens, run); ok {
		return ent, true
	}

	words, surface := runSurface(text, tokens, run)
	switch {
	case first.sentenceStart && len(words) == 1:
		// a lone capitalized word opening a sentence is too ambiguous
		return analysis.Entity{}, false
	case locationPrepositions.Contains(prev):
		return analysis.Entity{Text: surface, Category: analysis.CategoryLocation}, true
	case len(words) > 1:
		return analysis.Entity{Text: surface, Category: analysis.CategoryPerson}, true
	}

	return analysis.Entity{}, false
}

// matchGazetteers classifies a run by the word lists alone
func matchGazetteers(text string, tokens []spanToken, run []int) (analysis.Entity, bool) {
	words, surface := runSurface(text, tokens, run)
	joined := strings.Join(words, " ")
	lastWord := words[len(words)-1]

	switch {
	case knownOrgs.Contains(joined):
		return analysis.Entity{Text: surface, Category: analysis.CategoryOrg}, true
	case len(words) > 1 && orgSuffixes.Contains(lastWord):
		return analysis.Entity{Text: surface, Category: analysis.CategoryOrg}, true
	case len(words) > 1 && anyIn(words, orgKeywords.Contains):
		return analysis.Entity{Text: surface, Category: analysis.CategoryOrg}, true
	case knownLocations.Contains(joined):
		return analysis.Entity{Text: surface, Category: analysis.CategoryLocation}, true
	case len(words) > 1 && locationSuffixes.Contains(lastWord):
		return analysis.Entity{Text: surface, Category: analysis.CategoryLocation}, true
	case honorifics.Contains(words[0]) && len(words) > 1:
		_, name := runSurface(text, tokens, run[1:])
		return analysis.Entity{Text: name, Category: analysis.CategoryPerson}, true
	case firstNames.Contains(words[0]):
		return analysis.Entity{Text: surface, Category: analysis.CategoryPerson}, true
	}

	return analysis.Entity{}, false
}

// droppableOpener reports whether the first word of run is unknown to every
// word list and does not start a known multi-word name
func droppableOpener(tokens []spanToken, run []int) bool {
	w := tokens[run[0]].bare()
	for _, set := range []mapset.Set[string]{firstNames, honorifics, knownOrgs, knownLocations, orgKeywords, orgSuffixes} {
		if set.Contains(w) {
			return false
		}
	}

	prefix := w
	for _, idx := range run[1:] {
		prefix += " " + tokens[idx].bare()
		if knownOrgs.Contains(prefix) || knownLocations.Contains(prefix) {
			return false
		}
	}
	return true
}

// runSurface returns the bare words of run and the text it spans, without a
// trailing possessive
func runSurface(text string, tokens []spanToken, run []int) ([]string, string) {
	words := make([]string, 0, len(run))
	for _, idx := range run {
		words = append(words, tokens[idx].bare())
	}
	first := tokens[run[0]]
	last := tokens[run[len(run)-1]]
	end := last.end - len(last.text) + len(last.bare())
	return words, text[first.start:end]
}

func anyIn(words []string, contains func(...string) bool) bool {
	for _, w := range words {
		if contains(w) {
			return true
		}
	}
	return false
}
