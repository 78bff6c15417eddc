package geoinfo

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

var (
	ErrNoGeoInfoFound = fmt.Errorf("no geo information found")
)

// GeoInfo - interface to resolve a place name into coordinates
type GeoInfo interface {
	Geocode(ctx context.Context, place string) (latitude, longitude float64, err error)
}

type geoInfo struct {
	client *maps.Client
}

func (g geoInfo) Geocode(ctx context.Context, place string) (float64, float64, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"place":  place,
	}).Info("query geo info")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: place})
	if err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, ErrNoGeoInfoFound
	}

	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

// New - new GeoInfo interface
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geoInfo{
		client: client,
	}, nil
}
