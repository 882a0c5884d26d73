package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSurface(t *testing.T) {
	tests := []struct {
		name    string
		want    Stage
		wantErr bool
	}{
		{name: "minimal", want: MinimalSurface},
		{name: "RICH", want: RichSurface},
		{name: "", want: RichSurface},
		{name: "all", want: AllStages},
		{name: "fancy", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseSurface(tt.name)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseStages(t *testing.T) {
	got, err := ParseStages("sentiment, keyPhrases ,characterCount")
	require.NoError(t, err)
	assert.Equal(t, StageSentiment|StageKeyPhrases|StageCharCount, got)
	assert.Equal(t, "keyPhrases,sentiment,characterCount", got.String())

	empty, err := ParseStages("")
	require.NoError(t, err)
	assert.Equal(t, "none", empty.String())

	_, err = ParseStages("sentiment,topics")
	assert.Error(t, err)
}

func TestSurfacesDiffer(t *testing.T) {
	assert.True(t, MinimalSurface.Has(StageCharCount))
	assert.False(t, MinimalSurface.Has(StageEntities))
	assert.False(t, MinimalSurface.Has(StageSummary))
	assert.True(t, RichSurface.Has(StageEntities|StageSummary))
	assert.False(t, RichSurface.Has(StageCharCount))
}

func TestEntitiesAdd(t *testing.T) {
	e := NewEntities()
	e.Add(Entity{Text: "Ada", Category: CategoryPerson})
	e.Add(Entity{Text: "Ada", Category: CategoryPerson})
	e.Add(Entity{Text: "Oslo", Category: CategoryLocation})
	e.Add(Entity{Text: "Initech", Category: CategoryOrg})

	assert.Equal(t, []string{"Ada", "Ada"}, e.People)
	assert.Equal(t, []string{"Oslo"}, e.Locations)
	assert.Equal(t, []string{"Initech"}, e.Organizations)
	assert.Equal(t, 4, e.Len())
}
