// Package triage implements the paediatric assessment workflows the
// dashboard records: meningitis classification and diarrhoea dehydration
// staging. Classifications are pure functions over the captured signs.
package triage

import "github.com/afyawatch/outbreak-api/schema"

type MeningitisClassification string

const (
	MeningitisDefinite MeningitisClassification = "definite"
	MeningitisProbable MeningitisClassification = "probable"
	MeningitisPossible MeningitisClassification = "possible"
	MeningitisNoSigns  MeningitisClassification = "no-signs"
)

// MeningitisSigns are the observed clinical signs and test results for
// one suspected meningitis case.
type MeningitisSigns struct {
	Coma              bool `json:"coma"`
	StiffNeck         bool `json:"stiff_neck"`
	BulgingFontanelle bool `json:"bulging_fontanelle"`
	LPClear           bool `json:"lp_clear"`
	CSFWBCRaised      bool `json:"csf_wbc_raised"`
	GramPositive      bool `json:"gram_positive"`
	TestDone          bool `json:"test_done"`
}

// ClassifyMeningitis stages a suspected case. Hard neurological signs or
// a turbid lumbar puncture make the diagnosis definite; laboratory
// findings alone make it probable; a completed test without findings
// still warrants treatment as possible meningitis.
func ClassifyMeningitis(s MeningitisSigns) MeningitisClassification {
	if s.Coma || s.StiffNeck || s.BulgingFontanelle || !s.LPClear {
		return MeningitisDefinite
	}
	if s.CSFWBCRaised || s.GramPositive {
		return MeningitisProbable
	}
	if s.TestDone {
		return MeningitisPossible
	}
	return MeningitisNoSigns
}

// Guidance returns the treatment instruction recorded with the
// assessment.
func (c MeningitisClassification) Guidance() string {
	switch c {
	case MeningitisDefinite:
		return "Definite Meningitis: Treat with Ceftriaxone. Steroids NOT indicated."
	case MeningitisProbable:
		return "Probable Meningitis: Treat with Ceftriaxone. Steroids NOT indicated. Review CSF results."
	case MeningitisPossible:
		return "Possible Meningitis: Treat with Ceftriaxone. Seek senior review."
	}
	return "No clear meningitis signs based on provided data."
}

func (s MeningitisSigns) SymptomSet() schema.SymptomSet {
	return schema.SymptomSet{
		"coma":               s.Coma,
		"stiff_neck":         s.StiffNeck,
		"bulging_fontanelle": s.BulgingFontanelle,
		"lp_clear":           s.LPClear,
		"csf_wbc_raised":     s.CSFWBCRaised,
		"gram_positive":      s.GramPositive,
		"test_done":          s.TestDone,
	}
}
