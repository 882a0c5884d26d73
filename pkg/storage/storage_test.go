package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/athapong/docsense/pkg/analysis"
)

func sampleRecord() *Record {
	summary := "John went to Paris."
	entities := analysis.NewEntities()
	entities.Add(analysis.Entity{Text: "John", Category: analysis.CategoryPerson})
	entities.Add(analysis.Entity{Text: "Paris", Category: analysis.CategoryLocation})

	return &Record{
		ID:         "rec-1",
		Filename:   "trip.txt",
		FileType:   string(analysis.FormatPlain),
		Content:    summary,
		UploadDate: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Analysis: &analysis.Result{
			WordCount:     4,
			SentenceCount: 1,
			KeyPhrases:    []analysis.TermScore{{Term: "pari", Weight: 0.31}},
			Sentiment: &analysis.SentimentResult{
				Score: 0,
				Label: analysis.LabelNeutral,
				Mode:  analysis.ModeComparative,
			},
			Entities:    &entities,
			Summary:     &summary,
			ReadingTime: 1,
		},
	}
}

func TestJSONStoreSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "records")
	store := NewJSONStore(dir)
	defer store.Close()

	require.NoError(t, store.Save(context.Background(), sampleRecord()))

	data, err := os.ReadFile(store.Path("rec-1"))
	require.NoError(t, err)

	doc := string(data)
	assert.Equal(t, "trip.txt", gjson.Get(doc, "filename").String())
	assert.Equal(t, "plain", gjson.Get(doc, "fileType").String())
	assert.Equal(t, int64(4), gjson.Get(doc, "analysis.wordCount").Int())
	assert.Equal(t, "neutral", gjson.Get(doc, "analysis.sentiment.label").String())
	assert.Equal(t, "Paris", gjson.Get(doc, "analysis.entities.locations.0").String())
	assert.Equal(t, "pari", gjson.Get(doc, "analysis.keyPhrases.0.term").String())

	_, err = os.Stat(store.Path("rec-1") + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestJSONStoreRequiresID(t *testing.T) {
	store := NewJSONStore(t.TempDir())

	record := sampleRecord()
	record.ID = ""
	assert.Error(t, store.Save(context.Background(), record))
	assert.Error(t, store.Save(context.Background(), nil))
}

func TestNopStore(t *testing.T) {
	var store Store = NopStore{}
	assert.NoError(t, store.Save(context.Background(), sampleRecord()))
	assert.NoError(t, store.Close())
}

func TestNeo4jParams(t *testing.T) {
	record := sampleRecord()

	params := documentParams(record)
	assert.Equal(t, "rec-1", params["id"])
	assert.Equal(t, int64(4), params["wordCount"])
	assert.Equal(t, "neutral", params["sentimentLabel"])
	assert.Equal(t, []interface{}{"pari"}, params["keyPhrases"])
	assert.Equal(t, "John went to Paris.", params["summary"])

	entities := entityParams(record.Analysis.Entities)
	require.Len(t, entities, 2)
	assert.Equal(t, map[string]interface{}{"label": "John", "type": "PERSON"}, entities[0])
	assert.Equal(t, map[string]interface{}{"label": "Paris", "type": "LOCATION"}, entities[1])

	assert.Nil(t, entityParams(nil))
}

func TestNeo4jMinimalResultParams(t *testing.T) {
	record := sampleRecord()
	record.Analysis.Sentiment = nil
	record.Analysis.Summary = nil

	params := documentParams(record)
	assert.Nil(t, params["sentimentScore"])
	assert.Nil(t, params["summary"])
}
