package moh

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/afyawatch/outbreak-api/schema"
)

const (
	logPrefix      = "moh"
	defaultTimeout = 15 * time.Second

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

var (
	ErrUnexpectedStatus = fmt.Errorf("unexpected response status")
)

// Source - interface to fetch raw outbreak observations from one
// surveillance publisher
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]schema.RawObservation, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: defaultTimeout,
	}
}

// documentFromURL fetches a page and parses it for selection.
func documentFromURL(ctx context.Context, client *http.Client, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d from %s", ErrUnexpectedStatus, resp.StatusCode, url)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}
