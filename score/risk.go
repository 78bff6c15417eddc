package score

import (
	"fmt"

	"github.com/afyawatch/outbreak-api/schema"
)

var (
	ErrUnknownDisease = fmt.Errorf("disease not in risk threshold table")
)

// TierThresholds are "at least" trigger values for one tier. The rate
// trigger is skipped when the population at risk is unknown.
type TierThresholds struct {
	CasesPer100K float64
	Deaths       int
}

// DiseaseThresholds holds the trigger values of all three tiers for one
// disease.
type DiseaseThresholds struct {
	High   TierThresholds
	Medium TierThresholds
	Low    TierThresholds
}

// ThresholdTable maps a disease to its tier thresholds.
type ThresholdTable map[schema.Disease]DiseaseThresholds

// DefaultThresholds is the surveillance threshold table for the target
// paediatric diseases.
var DefaultThresholds = ThresholdTable{
	schema.Meningitis: {
		High:   TierThresholds{CasesPer100K: 10, Deaths: 2},
		Medium: TierThresholds{CasesPer100K: 5, Deaths: 1},
		Low:    TierThresholds{CasesPer100K: 1, Deaths: 0},
	},
	schema.Diarrhoea: {
		High:   TierThresholds{CasesPer100K: 50, Deaths: 5},
		Medium: TierThresholds{CasesPer100K: 20, Deaths: 2},
		Low:    TierThresholds{CasesPer100K: 5, Deaths: 0},
	},
}

// WithDisease returns a copy of the table with the thresholds of one
// disease replaced. The receiver is left untouched so the default table
// stays safe for concurrent readers.
func (t ThresholdTable) WithDisease(disease schema.Disease, thresholds DiseaseThresholds) ThresholdTable {
	out := make(ThresholdTable, len(t)+1)
	for d, v := range t {
		out[d] = v
	}
	out[disease] = thresholds
	return out
}

// CasesPer100K normalizes a case count per 100,000 population at risk.
// ok is false when the population is unknown or zero, in which case the
// rate is undefined and only death triggers apply.
func CasesPer100K(cases, populationAtRisk int) (float64, bool) {
	if populationAtRisk <= 0 {
		return 0, false
	}
	return float64(cases) / float64(populationAtRisk) * 100000, true
}

// Classify maps one observation to a risk tier using the default
// threshold table.
func Classify(disease schema.Disease, cases, deaths, populationAtRisk int) (schema.RiskLevel, error) {
	return DefaultThresholds.Classify(disease, cases, deaths, populationAtRisk)
}

// Classify assigns the highest tier for which either the rate trigger or
// the death trigger holds, evaluated high to medium. Every known disease
// gets exactly one tier; records below the medium triggers are low.
func (t ThresholdTable) Classify(disease schema.Disease, cases, deaths, populationAtRisk int) (schema.RiskLevel, error) {
	thresholds, ok := t[disease]
	if !ok {
		return "", ErrUnknownDisease
	}

	rate, rateKnown := CasesPer100K(cases, populationAtRisk)

	if tierTriggered(thresholds.High, rate, rateKnown, deaths) {
		return schema.RiskLevelHigh, nil
	}
	if tierTriggered(thresholds.Medium, rate, rateKnown, deaths) {
		return schema.RiskLevelMedium, nil
	}
	return schema.RiskLevelLow, nil
}

func tierTriggered(t TierThresholds, rate float64, rateKnown bool, deaths int) bool {
	if rateKnown && rate >= t.CasesPer100K {
		return true
	}
	return deaths >= t.Deaths && t.Deaths > 0
}
