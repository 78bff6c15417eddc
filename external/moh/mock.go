package moh

import (
	"context"
	"io/ioutil"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/afyawatch/outbreak-api/schema"
)

// MockSource supplies synthetic observations for offline and demo use.
// Every observation it emits carries the mock source marker so demo data
// is always distinguishable from live data.
type MockSource struct {
	name  string
	seeds []schema.RawObservation
}

func (s *MockSource) Name() string {
	return s.name
}

func (s *MockSource) Fetch(ctx context.Context) ([]schema.RawObservation, error) {
	observations := make([]schema.RawObservation, len(s.seeds))
	for i, seed := range s.seeds {
		obs := seed
		if !strings.HasPrefix(obs.SourceURL, schema.MockSourceScheme) {
			obs.SourceURL = schema.MockSourceScheme + strings.ReplaceAll(strings.ToLower(s.name), " ", "-")
		}
		if obs.DateReported.IsZero() {
			obs.DateReported = time.Now().AddDate(0, 0, -1)
		}
		observations[i] = obs
	}
	return observations, nil
}

// NewMockSource returns the builtin demonstration dataset.
func NewMockSource() *MockSource {
	daysAgo := func(n int) time.Time {
		return time.Now().AddDate(0, 0, -n)
	}
	coord := func(lat, lng float64) (*float64, *float64) {
		return &lat, &lng
	}

	turkanaLat, turkanaLng := coord(3.1167, 35.5833)
	mombasaLat, mombasaLng := coord(-4.0435, 39.6682)
	kisumuLat, kisumuLng := coord(-0.1022, 34.7617)
	ugandaLat, ugandaLng := coord(2.8, 32.3)
	darLat, darLng := coord(-6.7924, 39.2083)

	return &MockSource{
		name: "mock surveillance",
		seeds: []schema.RawObservation{
			{
				Location:         "Turkana County",
				Disease:          string(schema.Meningitis),
				Cases:            67,
				Deaths:           4,
				PopulationAtRisk: 15000,
				Latitude:         turkanaLat,
				Longitude:        turkanaLng,
				DateReported:     daysAgo(1),
				AdditionalInfo:   "Meningitis outbreak in Turkana County with 67 confirmed cases and 4 deaths reported. Vaccination campaign initiated.",
			},
			{
				Location:         "Mombasa County",
				Disease:          string(schema.Diarrhoea),
				Cases:            234,
				Deaths:           2,
				PopulationAtRisk: 25000,
				Latitude:         mombasaLat,
				Longitude:        mombasaLng,
				DateReported:     daysAgo(2),
				AdditionalInfo:   "Diarrhoeal disease outbreak in Mombasa County linked to contaminated water sources. 234 cases reported.",
			},
			{
				Location:         "Kisumu County",
				Disease:          string(schema.Diarrhoea),
				Cases:            45,
				Deaths:           0,
				PopulationAtRisk: 8000,
				Latitude:         kisumuLat,
				Longitude:        kisumuLng,
				DateReported:     daysAgo(3),
				AdditionalInfo:   "Low-level diarrhoeal cases reported in Kisumu County. Situation under monitoring.",
			},
			{
				Location:         "Northern Uganda",
				Disease:          string(schema.Meningitis),
				Cases:            89,
				Deaths:           6,
				PopulationAtRisk: 20000,
				Latitude:         ugandaLat,
				Longitude:        ugandaLng,
				DateReported:     daysAgo(1),
				AdditionalInfo:   "Meningitis outbreak reported in Northern Uganda districts with 89 cases and 6 deaths.",
			},
			{
				Location:         "Dar es Salaam",
				Disease:          string(schema.Diarrhoea),
				Cases:            156,
				Deaths:           1,
				PopulationAtRisk: 18000,
				Latitude:         darLat,
				Longitude:        darLng,
				DateReported:     daysAgo(2),
				AdditionalInfo:   "Cholera outbreak in Dar es Salaam with 156 confirmed cases. Water treatment measures implemented.",
			},
		},
	}
}

// LoadMockSource reads a seed dataset from a YAML fixture so demos can
// run with custom scenarios.
func LoadMockSource(name, path string) (*MockSource, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seeds []schema.RawObservation
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return nil, err
	}

	return &MockSource{
		name:  name,
		seeds: seeds,
	}, nil
}
