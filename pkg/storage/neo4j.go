package storage

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
	"github.com/pkg/errors"

	"github.com/athapong/docsense/pkg/analysis"
	"github.com/athapong/docsense/pkg/metrics"
)

const createDocumentQuery = `
	CREATE (d:Document {
		id: $id,
		filename: $filename,
		file_type: $fileType,
		content: $content,
		upload_date: $uploadDate,
		word_count: $wordCount,
		sentence_count: $sentenceCount,
		reading_time: $readingTime,
		key_phrases: $keyPhrases,
		sentiment_score: $sentimentScore,
		sentiment_label: $sentimentLabel,
		sentiment_mode: $sentimentMode,
		summary: $summary,
		created_at: datetime()
	})
`

const linkEntitiesQuery = `
	MATCH (d:Document {id: $id})
	UNWIND $entities AS ent
	MERGE (e:Entity {label: ent.label, type: ent.type})
	CREATE (d)-[:MENTIONS]->(e)
`

// Neo4jStore implements Store by writing a Document node per record,
// linked to its entities with MENTIONS relationships
type Neo4jStore struct {
	driver neo4j.Driver
	uri    string
}

// NewNeo4jStore creates a new Neo4j store
func NewNeo4jStore(uri, username, password string) (*Neo4jStore, error) {
	auth := neo4j.BasicAuth(username, password, "")
	driver, err := neo4j.NewDriver(uri, auth)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Neo4j driver")
	}

	return &Neo4jStore{
		driver: driver,
		uri:    uri,
	}, nil
}

// Connect verifies that the server is reachable
func (s *Neo4jStore) Connect(ctx context.Context) error {
	if err := s.driver.VerifyConnectivity(); err != nil {
		return errors.Wrapf(err, "failed to connect to Neo4j at %s", s.uri)
	}
	return nil
}

// Save implements Store. Each call uses its own session.
func (s *Neo4jStore) Save(ctx context.Context, record *Record) error {
	if record == nil || record.Analysis == nil {
		return errors.New("record must carry an analysis")
	}

	session := s.driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		if _, err := tx.Run(createDocumentQuery, documentParams(record)); err != nil {
			return nil, err
		}

		entities := entityParams(record.Analysis.Entities)
		if len(entities) == 0 {
			return nil, nil
		}
		_, err := tx.Run(linkEntitiesQuery, map[string]interface{}{
			"id":       record.ID,
			"entities": entities,
		})
		return nil, err
	})
	if err != nil {
		metrics.StoreWrites.WithLabelValues("neo4j", "error").Inc()
		return errors.Wrapf(err, "failed to store record %s", record.ID)
	}

	metrics.StoreWrites.WithLabelValues("neo4j", "success").Inc()
	return nil
}

// Close implements Store
func (s *Neo4jStore) Close() error {
	if s.driver != nil {
		return s.driver.Close()
	}
	return nil
}

func documentParams(record *Record) map[string]interface{} {
	result := record.Analysis

	keyPhrases := make([]interface{}, 0, len(result.KeyPhrases))
	for _, p := range result.KeyPhrases {
		keyPhrases = append(keyPhrases, p.Term)
	}

	params := map[string]interface{}{
		"id":             record.ID,
		"filename":       record.Filename,
		"fileType":       record.FileType,
		"content":        record.Content,
		"uploadDate":     record.UploadDate,
		"wordCount":      int64(result.WordCount),
		"sentenceCount":  int64(result.SentenceCount),
		"readingTime":    int64(result.ReadingTime),
		"keyPhrases":     keyPhrases,
		"sentimentScore": nil,
		"sentimentLabel": nil,
		"sentimentMode":  nil,
		"summary":        nil,
	}
	if result.Sentiment != nil {
		params["sentimentScore"] = result.Sentiment.Score
		params["sentimentLabel"] = string(result.Sentiment.Label)
		params["sentimentMode"] = string(result.Sentiment.Mode)
	}
	if result.Summary != nil {
		params["summary"] = *result.Summary
	}
	return params
}

func entityParams(entities *analysis.Entities) []interface{} {
	if entities == nil {
		return nil
	}

	params := make([]interface{}, 0, entities.Len())
	add := func(names []string, category analysis.EntityCategory) {
		for _, name := range names {
			params = append(params, map[string]interface{}{
				"label": name,
				"type":  string(category),
			})
		}
	}
	add(entities.People, analysis.CategoryPerson)
	add(entities.Organizations, analysis.CategoryOrg)
	add(entities.Locations, analysis.CategoryLocation)
	return params
}
