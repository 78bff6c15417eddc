package triage

import (
	"fmt"

	"github.com/afyawatch/outbreak-api/schema"
)

type DehydrationClassification string

const (
	DehydrationShock  DehydrationClassification = "shock"
	DehydrationSevere DehydrationClassification = "severe"
	DehydrationSome   DehydrationClassification = "some"
	DehydrationNone   DehydrationClassification = "none"
)

// DehydrationSigns are the circulatory and hydration signs observed in a
// child presenting with diarrhoea.
type DehydrationSigns struct {
	WeakOrAbsentPulse     bool `json:"weak_or_absent_pulse"`
	ColdHandsTempGradient bool `json:"cold_hands_temp_gradient"`
	CapillaryRefillOver3s bool `json:"capillary_refill_gt_3s"`
	SlowSkinPinch         bool `json:"slow_skin_pinch"`
	SunkenEyes            bool `json:"sunken_eyes"`
	UnableToDrink         bool `json:"unable_to_drink"`
	SkinPinchOver2s       bool `json:"skin_pinch_gt_2s"`
	RestlessIrritable     bool `json:"restless_irritable"`
	SkinPinch1To2s        bool `json:"skin_pinch_1_2s"`
}

// ClassifyDiarrhoea stages dehydration per the paediatric plan ladder.
// All four circulatory signs together mean shock; any one key sign means
// severe dehydration; at least two of the milder signs mean some
// dehydration.
func ClassifyDiarrhoea(s DehydrationSigns) DehydrationClassification {
	if s.WeakOrAbsentPulse && s.ColdHandsTempGradient && s.CapillaryRefillOver3s && s.SlowSkinPinch {
		return DehydrationShock
	}
	if s.SunkenEyes || s.UnableToDrink || s.SkinPinchOver2s {
		return DehydrationSevere
	}

	milder := 0
	for _, sign := range []bool{s.SunkenEyes, s.RestlessIrritable, s.SkinPinch1To2s} {
		if sign {
			milder++
		}
	}
	if milder >= 2 {
		return DehydrationSome
	}
	return DehydrationNone
}

// Guidance returns the rehydration plan for a classification. Severe
// dehydration IV duration depends on the child's age.
func (c DehydrationClassification) Guidance(ageMonths int) string {
	switch c {
	case DehydrationShock:
		return "Shock: IV Ringer's Lactate 20ml/kg over 15 min, then Plan C Step 1"
	case DehydrationSevere:
		duration := "4hrs"
		if ageMonths >= 12 {
			duration = "2.5hrs"
		}
		return fmt.Sprintf("Severe Dehydration: Plan C Step 2, 70ml/kg IV Ringer's over %s", duration)
	case DehydrationSome:
		return "Some Dehydration: Plan B, ORS 75ml/kg over 4 hours"
	}
	return "No Dehydration: Plan A, ORS 10ml/kg after each stool, continue feeding"
}

func (s DehydrationSigns) SymptomSet() schema.SymptomSet {
	return schema.SymptomSet{
		"weak_or_absent_pulse":     s.WeakOrAbsentPulse,
		"cold_hands_temp_gradient": s.ColdHandsTempGradient,
		"capillary_refill_gt_3s":   s.CapillaryRefillOver3s,
		"slow_skin_pinch":          s.SlowSkinPinch,
		"sunken_eyes":              s.SunkenEyes,
		"unable_to_drink":          s.UnableToDrink,
		"skin_pinch_gt_2s":         s.SkinPinchOver2s,
		"restless_irritable":       s.RestlessIrritable,
		"skin_pinch_1_2s":          s.SkinPinch1To2s,
	}
}
