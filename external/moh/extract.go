package moh

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/afyawatch/outbreak-api/consts"
	"github.com/afyawatch/outbreak-api/schema"
)

// Population estimate used when a report carries no population figure.
// Surveillance pages rarely publish one, so the population at risk is
// approximated from the case count, matching the MOH reporting practice.
const populationPerCaseEstimate = 10

const additionalInfoLimit = 200

var diseaseAliases = []struct {
	keyword string
	disease string
}{
	{"meningitis", string(schema.Meningitis)},
	{"diarrhoea", string(schema.Diarrhoea)},
	{"diarrhea", string(schema.Diarrhoea)},
	{"cholera", string(schema.Diarrhoea)},
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`in ([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s+(?:county|region|district)`),
	regexp.MustCompile(`([A-Z][a-z]+)\s+(?:reports|outbreak|cases)`),
}

// extractObservation builds a raw observation out of one report section.
// It returns false when the section mentions none of the target diseases.
func extractObservation(text, sourceURL string) (schema.RawObservation, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	disease, ok := diseaseFromText(normalized)
	if !ok {
		return schema.RawObservation{}, false
	}

	cases := numberNear(normalized, []string{"cases", "infected", "affected"})
	deaths := numberNear(normalized, []string{"deaths", "died", "fatalities"})

	info := normalized
	if len(info) > additionalInfoLimit {
		info = info[:additionalInfoLimit] + "..."
	}

	obs := schema.RawObservation{
		Location:         locationFromText(text),
		Disease:          disease,
		Cases:            cases,
		Deaths:           deaths,
		PopulationAtRisk: cases * populationPerCaseEstimate,
		DateReported:     time.Now(),
		SourceURL:        sourceURL,
		AdditionalInfo:   info,
	}

	if lat, lng, found := consts.LookupPlace(obs.Location); found {
		obs.Latitude = &lat
		obs.Longitude = &lng
	}

	return obs, true
}

func diseaseFromText(text string) (string, bool) {
	for _, alias := range diseaseAliases {
		if strings.Contains(text, alias.keyword) {
			return alias.disease, true
		}
	}
	return "", false
}

// locationFromText looks for a known East African place first and falls
// back to "in <Place>" style patterns.
func locationFromText(text string) string {
	normalized := strings.ToLower(text)
	for place := range consts.EastAfricaPlaces {
		if strings.Contains(normalized, place) {
			return strings.Title(place)
		}
	}

	for _, pattern := range locationPatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			return match[1]
		}
	}

	return "Unknown Location"
}

// numberNear extracts the first number appearing next to one of the
// given keywords, e.g. "45 cases" or "deaths: 3".
func numberNear(text string, keywords []string) int {
	for _, keyword := range keywords {
		patterns := []*regexp.Regexp{
			regexp.MustCompile(`(\d+)\s+(?:confirmed\s+|suspected\s+|reported\s+)?` + keyword),
			regexp.MustCompile(keyword + `[\s:]+(\d+)`),
		}
		for _, pattern := range patterns {
			if match := pattern.FindStringSubmatch(text); match != nil {
				if n, err := strconv.Atoi(match[1]); err == nil {
					return n
				}
			}
		}
	}
	return 0
}
