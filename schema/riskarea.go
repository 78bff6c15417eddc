package schema

import (
	"strings"
	"time"
)

const (
	RiskAreaCollection = "riskArea"
)

// MockSourceScheme prefixes the source URL of every synthetic
// observation so demo data is never mistaken for live data.
const MockSourceScheme = "mock://"

type Disease string

const (
	Meningitis Disease = "meningitis"
	Diarrhoea  Disease = "diarrhoea"
)

type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "high"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelLow    RiskLevel = "low"
)

// Rank orders risk levels so callers can compare severity. Higher is worse.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskLevelHigh:
		return 3
	case RiskLevelMedium:
		return 2
	case RiskLevelLow:
		return 1
	}
	return 0
}

// GeoJSON - mongo location format, coordinates are [longitude, latitude]
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

func NewPoint(longitude, latitude float64) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

// AgeWindow is the inclusive paediatric age band currently in effect,
// both bounds in months.
type AgeWindow struct {
	MinMonths int `json:"min_months" bson:"min_months"`
	MaxMonths int `json:"max_months" bson:"max_months"`
}

func (w AgeWindow) Contains(ageMonths int) bool {
	return w.MinMonths <= ageMonths && ageMonths <= w.MaxMonths
}

func (w AgeWindow) Overlaps(b AgeBand) bool {
	return w.MinMonths <= b.MaxMonths && b.MinMonths <= w.MaxMonths
}

// AgeBand is optional age metadata carried by a raw observation,
// describing the population the observation concerns.
type AgeBand struct {
	MinMonths int `json:"min_months" bson:"min_months"`
	MaxMonths int `json:"max_months" bson:"max_months"`
}

// RiskArea is one classified outbreak observation. Records are immutable
// once classified; a changed upstream observation becomes a new record.
type RiskArea struct {
	Location         string    `json:"location" bson:"location"`
	Disease          Disease   `json:"disease" bson:"disease"`
	RiskLevel        RiskLevel `json:"risk_level" bson:"risk_level"`
	Cases            int       `json:"cases" bson:"cases"`
	Deaths           int       `json:"deaths" bson:"deaths"`
	PopulationAtRisk int       `json:"population_at_risk" bson:"population_at_risk"`
	Coordinates      *GeoJSON  `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
	DateReported     time.Time `json:"date_reported" bson:"date_reported"`
	SourceURL        string    `json:"source_url" bson:"source_url"`
	AdditionalInfo   string    `json:"additional_info" bson:"additional_info"`
	InScope          bool      `json:"in_scope" bson:"in_scope"`
	IngestedAt       time.Time `json:"ingested_at" bson:"ingested_at"`
}

// FromMock reports whether the record came from the mock-data collaborator.
func (r RiskArea) FromMock() bool {
	return strings.HasPrefix(r.SourceURL, MockSourceScheme)
}

// RawObservation is an unvalidated, unclassified outbreak record as
// received from a data source.
type RawObservation struct {
	Location         string    `json:"location" yaml:"location"`
	Disease          string    `json:"disease" yaml:"disease"`
	Cases            int       `json:"cases" yaml:"cases"`
	Deaths           int       `json:"deaths" yaml:"deaths"`
	PopulationAtRisk int       `json:"population_at_risk" yaml:"population_at_risk"`
	Latitude         *float64  `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude        *float64  `json:"longitude,omitempty" yaml:"longitude,omitempty"`
	DateReported     time.Time `json:"date_reported" yaml:"date_reported"`
	SourceURL        string    `json:"source_url" yaml:"source_url"`
	AdditionalInfo   string    `json:"additional_info" yaml:"additional_info"`
	AgeBand          *AgeBand  `json:"age_band,omitempty" yaml:"age_band,omitempty"`
}
