package moh

import (
	"context"
	"net/http"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"

	"github.com/afyawatch/outbreak-api/schema"
)

const (
	// recent reports only, surveillance pages list months of history
	kenyaSectionLimit = 10
)

var kenyaSectionClass = regexp.MustCompile(`(?i)outbreak|disease|surveillance`)

// MOHKenya scrapes the Ministry of Health Kenya disease surveillance
// pages for outbreak reports.
type MOHKenya struct {
	client *http.Client
	url    string
}

func NewMOHKenya(url string) *MOHKenya {
	return &MOHKenya{
		client: newHTTPClient(),
		url:    url,
	}
}

func (s *MOHKenya) Name() string {
	return "MOH Kenya"
}

func (s *MOHKenya) Fetch(ctx context.Context) ([]schema.RawObservation, error) {
	doc, err := documentFromURL(ctx, s.client, s.url)
	if err != nil {
		return nil, err
	}

	observations := []schema.RawObservation{}
	doc.Find("div, section").EachWithBreak(func(i int, section *goquery.Selection) bool {
		class, _ := section.Attr("class")
		if !kenyaSectionClass.MatchString(class) {
			return true
		}

		if obs, ok := extractObservation(section.Text(), s.url); ok {
			observations = append(observations, obs)
		}
		return len(observations) < kenyaSectionLimit
	})

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"source": s.Name(),
		"count":  len(observations),
	}).Debug("fetched surveillance reports")

	return observations, nil
}
