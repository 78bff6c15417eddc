package moh

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/afyawatch/outbreak-api/schema"
)

func TestMockSourceAlwaysCarriesMockMarker(t *testing.T) {
	source := NewMockSource()

	observations, err := source.Fetch(context.Background())
	assert.NoError(t, err)
	assert.Len(t, observations, 5)

	for _, obs := range observations {
		assert.True(t, strings.HasPrefix(obs.SourceURL, schema.MockSourceScheme), obs.Location)
		assert.False(t, obs.DateReported.IsZero())
	}
}

func TestMockSourceSeedsAreClassifiable(t *testing.T) {
	source := NewMockSource()

	observations, err := source.Fetch(context.Background())
	assert.NoError(t, err)

	for _, obs := range observations {
		assert.NotEmpty(t, obs.Location)
		assert.Contains(t, []string{
			string(schema.Meningitis),
			string(schema.Diarrhoea),
		}, obs.Disease)
		assert.True(t, obs.Deaths <= obs.Cases)
	}
}

func TestLoadMockSource(t *testing.T) {
	fixture := `
- location: "Gulu"
  disease: "meningitis"
  cases: 12
  deaths: 1
  population_at_risk: 4000
`
	dir, err := ioutil.TempDir("", "mockseed")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "seeds.yaml")
	assert.NoError(t, ioutil.WriteFile(path, []byte(fixture), 0644))

	source, err := LoadMockSource("demo", path)
	assert.NoError(t, err)

	observations, err := source.Fetch(context.Background())
	assert.NoError(t, err)
	assert.Len(t, observations, 1)
	assert.Equal(t, "Gulu", observations[0].Location)
	assert.Equal(t, schema.MockSourceScheme+"demo", observations[0].SourceURL)
	assert.False(t, observations[0].DateReported.IsZero())
}
