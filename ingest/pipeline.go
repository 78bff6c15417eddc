package ingest

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/afyawatch/outbreak-api/consts"
	"github.com/afyawatch/outbreak-api/external/geoinfo"
	"github.com/afyawatch/outbreak-api/schema"
	"github.com/afyawatch/outbreak-api/score"
)

const logPrefix = "ingest"

// Reason codes attached to per-record rejections.
type Reason string

const (
	ReasonMissingField      Reason = "missing-field"
	ReasonNegativeCount     Reason = "negative-count"
	ReasonDeathsExceedCases Reason = "deaths-exceed-cases"
	ReasonBadCoordinates    Reason = "bad-coordinates"
	ReasonBadDate           Reason = "bad-date"
	ReasonUnknownDisease    Reason = "unknown-disease"
)

// Rejection reports one raw observation that was dropped, with the
// reason. Rejections never abort the rest of the batch.
type Rejection struct {
	Raw    schema.RawObservation `json:"raw"`
	Reason Reason                `json:"reason"`
}

// Source - one upstream supplier of raw observations
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]schema.RawObservation, error)
}

// Pipeline normalizes raw observations into classified, deduplicated
// risk area records.
type Pipeline struct {
	thresholds score.ThresholdTable
	geoClient  geoinfo.GeoInfo
	now        func() time.Time
}

// NewPipeline builds a pipeline. A nil threshold table means the default
// surveillance table; a nil geo client disables online geocoding and the
// pipeline relies on the builtin place table alone.
func NewPipeline(thresholds score.ThresholdTable, geoClient geoinfo.GeoInfo) *Pipeline {
	if thresholds == nil {
		thresholds = score.DefaultThresholds
	}
	return &Pipeline{
		thresholds: thresholds,
		geoClient:  geoClient,
		now:        time.Now,
	}
}

type dedupKey struct {
	location  string
	disease   schema.Disease
	reported  int64
	sourceURL string
}

// Ingest validates, classifies, tags and deduplicates one batch of raw
// observations against a single age window snapshot. Duplicates on
// (location, disease, date_reported, source_url) resolve last-write-wins.
func (p *Pipeline) Ingest(ctx context.Context, raws []schema.RawObservation, window schema.AgeWindow) ([]schema.RiskArea, []Rejection) {
	now := p.now()

	accepted := []schema.RiskArea{}
	rejections := []Rejection{}
	seen := map[dedupKey]int{}

	for _, raw := range raws {
		if reason, ok := validate(raw, now); !ok {
			rejections = append(rejections, Rejection{Raw: raw, Reason: reason})
			continue
		}

		disease := schema.Disease(raw.Disease)
		level, err := p.thresholds.Classify(disease, raw.Cases, raw.Deaths, raw.PopulationAtRisk)
		if err != nil {
			rejections = append(rejections, Rejection{Raw: raw, Reason: ReasonUnknownDisease})
			continue
		}

		area := schema.RiskArea{
			Location:         raw.Location,
			Disease:          disease,
			RiskLevel:        level,
			Cases:            raw.Cases,
			Deaths:           raw.Deaths,
			PopulationAtRisk: raw.PopulationAtRisk,
			Coordinates:      p.resolveCoordinates(ctx, raw),
			DateReported:     raw.DateReported,
			SourceURL:        raw.SourceURL,
			AdditionalInfo:   raw.AdditionalInfo,
			InScope:          inScope(raw, window),
			IngestedAt:       now,
		}

		key := dedupKey{
			location:  area.Location,
			disease:   area.Disease,
			reported:  area.DateReported.UnixNano(),
			sourceURL: area.SourceURL,
		}
		if i, dup := seen[key]; dup {
			accepted[i] = area
			continue
		}
		seen[key] = len(accepted)
		accepted = append(accepted, area)
	}

	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"accepted": len(accepted),
		"rejected": len(rejections),
	}).Info("ingested batch")

	return accepted, rejections
}

// IngestFromSources fetches each source sequentially and ingests the
// combined batch. One unreachable source never blocks the others. When
// every live source produces zero usable observations and the caller
// supplied a fallback, the fallback substitutes for the whole batch;
// fallback data remains recognizable through its mock source marker.
func (p *Pipeline) IngestFromSources(ctx context.Context, sources []Source, fallback Source, window schema.AgeWindow) (accepted []schema.RiskArea, rejections []Rejection, usedFallback bool, err error) {
	raws := []schema.RawObservation{}
	for _, source := range sources {
		observations, err := source.Fetch(ctx)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"source": source.Name(),
				"error":  err,
			}).Error("fetch observations")
			continue
		}
		raws = append(raws, observations...)
	}

	if len(raws) == 0 && fallback != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"source": fallback.Name(),
		}).Warn("no usable live observations, substituting mock source")

		raws, err = fallback.Fetch(ctx)
		if err != nil {
			return nil, nil, false, err
		}
		usedFallback = true
	}

	accepted, rejections = p.Ingest(ctx, raws, window)
	return accepted, rejections, usedFallback, nil
}

func validate(raw schema.RawObservation, now time.Time) (Reason, bool) {
	if raw.Location == "" || raw.Disease == "" || raw.SourceURL == "" || raw.DateReported.IsZero() {
		return ReasonMissingField, false
	}
	if raw.Cases < 0 || raw.Deaths < 0 || raw.PopulationAtRisk < 0 {
		return ReasonNegativeCount, false
	}
	if raw.Deaths > raw.Cases {
		return ReasonDeathsExceedCases, false
	}
	if reason, ok := validateCoordinates(raw); !ok {
		return reason, false
	}
	if raw.DateReported.After(now) {
		return ReasonBadDate, false
	}
	return "", true
}

func validateCoordinates(raw schema.RawObservation) (Reason, bool) {
	if raw.Latitude == nil && raw.Longitude == nil {
		return "", true
	}
	// a lone latitude or longitude is as unusable as an out-of-range one
	if raw.Latitude == nil || raw.Longitude == nil {
		return ReasonBadCoordinates, false
	}
	if *raw.Latitude < -90 || *raw.Latitude > 90 {
		return ReasonBadCoordinates, false
	}
	if *raw.Longitude < -180 || *raw.Longitude > 180 {
		return ReasonBadCoordinates, false
	}
	return "", true
}

// inScope tags age relevance. Observations without age-band metadata are
// population-wide and stay in scope.
func inScope(raw schema.RawObservation, window schema.AgeWindow) bool {
	if raw.AgeBand == nil {
		return true
	}
	return window.Overlaps(*raw.AgeBand)
}

func (p *Pipeline) resolveCoordinates(ctx context.Context, raw schema.RawObservation) *schema.GeoJSON {
	if raw.Latitude != nil && raw.Longitude != nil {
		return schema.NewPoint(*raw.Longitude, *raw.Latitude)
	}

	if lat, lng, ok := consts.LookupPlace(raw.Location); ok {
		return schema.NewPoint(lng, lat)
	}

	if p.geoClient == nil {
		return nil
	}

	lat, lng, err := p.geoClient.Geocode(ctx, raw.Location)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":   logPrefix,
			"location": raw.Location,
			"error":    err,
		}).Warn("geocode location")
		return nil
	}
	return schema.NewPoint(lng, lat)
}
