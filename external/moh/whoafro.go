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
	whoArticleLimit = 8
)

var whoArticleClass = regexp.MustCompile(`(?i)outbreak|news|update`)

// WHOAfro scrapes the WHO Regional Office for Africa outbreak pages.
type WHOAfro struct {
	client *http.Client
	url    string
}

func NewWHOAfro(url string) *WHOAfro {
	return &WHOAfro{
		client: newHTTPClient(),
		url:    url,
	}
}

func (s *WHOAfro) Name() string {
	return "WHO AFRO"
}

func (s *WHOAfro) Fetch(ctx context.Context) ([]schema.RawObservation, error) {
	doc, err := documentFromURL(ctx, s.client, s.url)
	if err != nil {
		return nil, err
	}

	observations := []schema.RawObservation{}
	doc.Find("article, div").EachWithBreak(func(i int, article *goquery.Selection) bool {
		class, _ := article.Attr("class")
		if !whoArticleClass.MatchString(class) {
			return true
		}

		if obs, ok := extractObservation(article.Text(), s.url); ok {
			observations = append(observations, obs)
		}
		return len(observations) < whoArticleLimit
	})

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"source": s.Name(),
		"count":  len(observations),
	}).Debug("fetched outbreak articles")

	return observations, nil
}
