package triage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMeningitisDefinite(t *testing.T) {
	assert.Equal(t, MeningitisDefinite, ClassifyMeningitis(MeningitisSigns{StiffNeck: true, LPClear: true}))
	assert.Equal(t, MeningitisDefinite, ClassifyMeningitis(MeningitisSigns{Coma: true, LPClear: true}))
	assert.Equal(t, MeningitisDefinite, ClassifyMeningitis(MeningitisSigns{BulgingFontanelle: true, LPClear: true}))
	// turbid lumbar puncture alone is definite
	assert.Equal(t, MeningitisDefinite, ClassifyMeningitis(MeningitisSigns{LPClear: false}))
}

func TestClassifyMeningitisProbable(t *testing.T) {
	assert.Equal(t, MeningitisProbable, ClassifyMeningitis(MeningitisSigns{LPClear: true, CSFWBCRaised: true}))
	assert.Equal(t, MeningitisProbable, ClassifyMeningitis(MeningitisSigns{LPClear: true, GramPositive: true}))
}

func TestClassifyMeningitisPossible(t *testing.T) {
	assert.Equal(t, MeningitisPossible, ClassifyMeningitis(MeningitisSigns{LPClear: true, TestDone: true}))
}

func TestClassifyMeningitisNoSigns(t *testing.T) {
	assert.Equal(t, MeningitisNoSigns, ClassifyMeningitis(MeningitisSigns{LPClear: true}))
}

func TestClassifyDiarrhoeaShockNeedsAllFourSigns(t *testing.T) {
	shock := DehydrationSigns{
		WeakOrAbsentPulse:     true,
		ColdHandsTempGradient: true,
		CapillaryRefillOver3s: true,
		SlowSkinPinch:         true,
	}
	assert.Equal(t, DehydrationShock, ClassifyDiarrhoea(shock))

	partial := shock
	partial.SlowSkinPinch = false
	assert.NotEqual(t, DehydrationShock, ClassifyDiarrhoea(partial))
}

func TestClassifyDiarrhoeaSevere(t *testing.T) {
	assert.Equal(t, DehydrationSevere, ClassifyDiarrhoea(DehydrationSigns{SunkenEyes: true}))
	assert.Equal(t, DehydrationSevere, ClassifyDiarrhoea(DehydrationSigns{UnableToDrink: true}))
	assert.Equal(t, DehydrationSevere, ClassifyDiarrhoea(DehydrationSigns{SkinPinchOver2s: true}))
}

func TestClassifyDiarrhoeaSome(t *testing.T) {
	assert.Equal(t, DehydrationSome, ClassifyDiarrhoea(DehydrationSigns{
		RestlessIrritable: true,
		SkinPinch1To2s:    true,
	}))
}

func TestClassifyDiarrhoeaNone(t *testing.T) {
	assert.Equal(t, DehydrationNone, ClassifyDiarrhoea(DehydrationSigns{RestlessIrritable: true}))
	assert.Equal(t, DehydrationNone, ClassifyDiarrhoea(DehydrationSigns{}))
}

func TestSevereGuidanceDependsOnAge(t *testing.T) {
	assert.True(t, strings.Contains(DehydrationSevere.Guidance(18), "2.5hrs"))
	assert.True(t, strings.Contains(DehydrationSevere.Guidance(6), "4hrs"))
}

func TestSymptomSetRoundTrip(t *testing.T) {
	signs := MeningitisSigns{StiffNeck: true, LPClear: true, TestDone: true}
	set := signs.SymptomSet()
	assert.True(t, set["stiff_neck"])
	assert.True(t, set["lp_clear"])
	assert.False(t, set["coma"])
	assert.Len(t, set, 7)
}
