package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/afyawatch/outbreak-api/schema"
)

func TestClassifyRateConditionDominates(t *testing.T) {
	// 12 cases per 100k with zero deaths is still high
	level, err := Classify(schema.Meningitis, 12, 0, 100000)
	assert.NoError(t, err)
	assert.Equal(t, schema.RiskLevelHigh, level)
}

func TestClassifyDeathOnlyFallback(t *testing.T) {
	// population unknown, only death triggers apply: 3 deaths is below
	// the diarrhoea high trigger of 5 but at the medium trigger of 2
	level, err := Classify(schema.Diarrhoea, 1000, 3, 0)
	assert.NoError(t, err)
	assert.Equal(t, schema.RiskLevelMedium, level)
}

func TestClassifyDeathOnlyFallbackNoDeaths(t *testing.T) {
	level, err := Classify(schema.Diarrhoea, 1000, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, schema.RiskLevelLow, level)
}

func TestClassifyUnknownDisease(t *testing.T) {
	_, err := Classify(schema.Disease("ebola"), 10, 2, 1000)
	assert.Equal(t, ErrUnknownDisease, err)
}

func TestClassifyAlwaysAssignsExactlyOneTier(t *testing.T) {
	for _, disease := range []schema.Disease{schema.Meningitis, schema.Diarrhoea} {
		for _, cases := range []int{0, 1, 5, 50, 500} {
			for _, deaths := range []int{0, 1, 2, 5} {
				if deaths > cases {
					continue
				}
				for _, population := range []int{0, 1000, 100000} {
					level, err := Classify(disease, cases, deaths, population)
					assert.NoError(t, err)
					assert.Contains(t, []schema.RiskLevel{
						schema.RiskLevelHigh,
						schema.RiskLevelMedium,
						schema.RiskLevelLow,
					}, level)
				}
			}
		}
	}
}

func TestClassifyMonotonicInCases(t *testing.T) {
	const population = 100000
	prev := 0
	for cases := 0; cases <= 60; cases++ {
		level, err := Classify(schema.Diarrhoea, cases, 0, population)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, level.Rank(), prev, "cases=%d", cases)
		prev = level.Rank()
	}
}

func TestClassifyTierBoundaries(t *testing.T) {
	tests := []struct {
		disease  schema.Disease
		cases    int
		deaths   int
		expected schema.RiskLevel
	}{
		{schema.Meningitis, 10, 0, schema.RiskLevelHigh},
		{schema.Meningitis, 9, 0, schema.RiskLevelMedium},
		{schema.Meningitis, 4, 0, schema.RiskLevelLow},
		{schema.Meningitis, 0, 0, schema.RiskLevelLow},
		{schema.Meningitis, 4, 2, schema.RiskLevelHigh},
		{schema.Meningitis, 4, 1, schema.RiskLevelMedium},
		{schema.Diarrhoea, 50, 0, schema.RiskLevelHigh},
		{schema.Diarrhoea, 49, 0, schema.RiskLevelMedium},
		{schema.Diarrhoea, 19, 0, schema.RiskLevelLow},
		{schema.Diarrhoea, 19, 5, schema.RiskLevelHigh},
		{schema.Diarrhoea, 19, 2, schema.RiskLevelMedium},
	}

	// population 100000 makes cases equal to cases per 100k
	for _, tt := range tests {
		level, err := Classify(tt.disease, tt.cases, tt.deaths, 100000)
		assert.NoError(t, err)
		assert.Equal(t, tt.expected, level, "%s cases=%d deaths=%d", tt.disease, tt.cases, tt.deaths)
	}
}

func TestCasesPer100K(t *testing.T) {
	rate, ok := CasesPer100K(50, 100000)
	assert.True(t, ok)
	assert.Equal(t, 50.0, rate)

	rate, ok = CasesPer100K(5, 10000)
	assert.True(t, ok)
	assert.Equal(t, 50.0, rate)

	_, ok = CasesPer100K(50, 0)
	assert.False(t, ok)
}

func TestWithDiseaseDoesNotMutateDefaults(t *testing.T) {
	custom := DefaultThresholds.WithDisease(schema.Meningitis, DiseaseThresholds{
		High:   TierThresholds{CasesPer100K: 100, Deaths: 20},
		Medium: TierThresholds{CasesPer100K: 50, Deaths: 10},
		Low:    TierThresholds{CasesPer100K: 1, Deaths: 0},
	})

	level, err := custom.Classify(schema.Meningitis, 12, 0, 100000)
	assert.NoError(t, err)
	assert.Equal(t, schema.RiskLevelLow, level)

	level, err = Classify(schema.Meningitis, 12, 0, 100000)
	assert.NoError(t, err)
	assert.Equal(t, schema.RiskLevelHigh, level)
}
