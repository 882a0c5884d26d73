package processors

import (
	"context"
	"sort"
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/athapong/docsense/pkg/analysis"
)

// ProseTagger extracts entities with prose's statistical tagger.
// prose labels people and geo-political entities; organizations come from
// proper-noun chunks ending in an organization suffix.
type ProseTagger struct {
	logger *logrus.Logger
}

// NewProseTagger creates a new prose-backed tagger
func NewProseTagger(logger *logrus.Logger) *ProseTagger {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return &ProseTagger{logger: logger}
}

// Extract implements analysis.EntityTagger
func (p *ProseTagger) Extract(ctx context.Context, text string) (analysis.Entities, error) {
	entities := analysis.NewEntities()
	if strings.TrimSpace(text) == "" {
		return entities, nil
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		p.logger.WithError(err).Error("Failed to create prose document")
		return entities, errors.Wrap(err, "prose tagging failed")
	}

	found := mergeProseMatches(doc.Entities(), doc.Tokens())
	for _, m := range found {
		entities.Add(analysis.Entity{Text: m.text, Category: m.category})
		entityCount.WithLabelValues(string(m.category), "prose").Inc()
	}

	p.logger.WithField("entities_count", entities.Len()).Debug("prose tagging completed")
	return entities, nil
}

func proseCategory(ent prose.Entity) (analysis.EntityCategory, bool) {
	words := strings.Fields(ent.Text)
	if len(words) > 1 && orgSuffixes.Contains(strings.TrimSuffix(words[len(words)-1], ".")) {
		return analysis.CategoryOrg, true
	}

	switch ent.Label {
	case "PERSON":
		return analysis.CategoryPerson, true
	case "GPE", "LOC", "LOCATION":
		return analysis.CategoryLocation, true
	case "ORG", "ORGANIZATION":
		return analysis.CategoryOrg, true
	}
	return "", false
}

// mergeProseMatches combines prose's entities with proper-noun organization
// chunks not already inside one, ordered by token position
func mergeProseMatches(ents []prose.Entity, tokens []prose.Token) []tokenMatch {
	found := locateEntities(ents, tokens)
	covered := make([]bool, len(tokens))
	for _, m := range found {
		for i := m.start; i < m.end; i++ {
			covered[i] = true
		}
	}

	for _, m := range properNounOrgs(tokens) {
		if anyCovered(covered, m.start, m.end) {
			continue
		}
		found = append(found, m)
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].start < found[j].start
	})

	return found
}

// tokenMatch is an entity spanning tokens[start:end]
type tokenMatch struct {
	text       string
	category   analysis.EntityCategory
	start, end int
}

// locateEntities finds the token span of each prose entity. prose joins the
// tokens of an entity with single spaces and reports entities in text order.
func locateEntities(ents []prose.Entity, tokens []prose.Token) []tokenMatch {
	matches := make([]tokenMatch, 0, len(ents))
	cursor := 0

	for _, ent := range ents {
		parts := strings.Split(ent.Text, " ")
		at := -1
		for i := cursor; i+len(parts) <= len(tokens); i++ {
			if tokensEqual(tokens[i:i+len(parts)], parts) {
				at = i
				break
			}
		}
		if at < 0 {
			continue
		}
		cursor = at + len(parts)

		category, ok := proseCategory(ent)
		if !ok {
			continue
		}
		matches = append(matches, tokenMatch{text: ent.Text, category: category, start: at, end: cursor})
	}

	return matches
}

func tokensEqual(tokens []prose.Token, parts []string) bool {
	for i, tok := range tokens {
		if tok.Text != parts[i] {
			return false
		}
	}
	return true
}

func anyCovered(covered []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if covered[i] {
			return true
		}
	}
	return false
}

// properNounOrgs returns NNP chunks whose last word is an organization suffix
func properNounOrgs(tokens []prose.Token) []tokenMatch {
	orgs := make([]tokenMatch, 0)
	chunk := make([]string, 0)
	start := 0

	flush := func(end int) {
		if len(chunk) > 1 && orgSuffixes.Contains(chunk[len(chunk)-1]) {
			orgs = append(orgs, tokenMatch{
				text:     strings.Join(chunk, " "),
				category: analysis.CategoryOrg,
				start:    start,
				end:      end,
			})
		}
		chunk = chunk[:0]
	}

	for i, tok := range tokens {
		if strings.HasPrefix(tok.Tag, "NNP") {
			if len(chunk) == 0 {
				start = i
			}
			chunk = append(chunk, strings.TrimSuffix(tok.Text, "."))
			continue
		}
		flush(i)
	}
	flush(len(tokens))

	return orgs
}
