package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/afyawatch/outbreak-api/schema"
)

func area(disease schema.Disease, cases, deaths int) schema.RiskArea {
	return schema.RiskArea{
		Location:  "Turkana County",
		Disease:   disease,
		RiskLevel: schema.RiskLevelHigh,
		Cases:     cases,
		Deaths:    deaths,
	}
}

func TestCheckCasesTrigger(t *testing.T) {
	alerts := Check([]schema.RiskArea{area(schema.Meningitis, 10, 0)})
	assert.Len(t, alerts, 1)
	assert.Equal(t, "ALERT: meningitis outbreak in Turkana County - 10 cases, 0 deaths reported", alerts[0].Message)
	assert.True(t, alerts[0].IsActive)
	assert.NotEmpty(t, alerts[0].ID)
}

func TestCheckDeathsTrigger(t *testing.T) {
	alerts := Check([]schema.RiskArea{area(schema.Diarrhoea, 5, 2)})
	assert.Len(t, alerts, 1)
}

func TestCheckBelowThreshold(t *testing.T) {
	alerts := Check([]schema.RiskArea{
		area(schema.Meningitis, 9, 0),
		area(schema.Diarrhoea, 19, 1),
	})
	assert.Empty(t, alerts)
}

func TestCheckUnknownDiseaseSkipped(t *testing.T) {
	alerts := Check([]schema.RiskArea{area(schema.Disease("dengue"), 1000, 100)})
	assert.Empty(t, alerts)
}
