package alert

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/afyawatch/outbreak-api/schema"
)

const alertTypeOutbreak = "Disease Outbreak"

// Threshold holds the "at least" trigger values for raising an alert.
type Threshold struct {
	Cases  int
	Deaths int
}

// DefaultThresholds trigger alerts well before the risk classifier
// reaches the high tier, so response teams get an early signal.
var DefaultThresholds = map[schema.Disease]Threshold{
	schema.Meningitis: {Cases: 10, Deaths: 1},
	schema.Diarrhoea:  {Cases: 20, Deaths: 2},
}

// Check raises one alert for every accepted risk area that crosses its
// disease threshold. Areas for diseases with no threshold are skipped.
func Check(areas []schema.RiskArea) []schema.Alert {
	alerts := []schema.Alert{}

	for _, area := range areas {
		threshold, ok := DefaultThresholds[area.Disease]
		if !ok {
			continue
		}
		if area.Cases < threshold.Cases && area.Deaths < threshold.Deaths {
			continue
		}

		alerts = append(alerts, schema.Alert{
			ID:        uuid.New().String(),
			AlertType: alertTypeOutbreak,
			Disease:   area.Disease,
			Location:  area.Location,
			RiskLevel: area.RiskLevel,
			Cases:     area.Cases,
			Deaths:    area.Deaths,
			Message: fmt.Sprintf("ALERT: %s outbreak in %s - %d cases, %d deaths reported",
				area.Disease, area.Location, area.Cases, area.Deaths),
			IsActive:  true,
			CreatedAt: time.Now(),
		})
	}

	return alerts
}
