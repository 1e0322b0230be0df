package ec3_test

import (
	"testing"

	"github.com/HJ-nkh/frameanalysis/internal/checks/ec3"
	"github.com/HJ-nkh/frameanalysis/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deflReq(v float64) *float64 { return &v }

func ipe300() entities.MemberProps {
	return entities.MemberProps{
		SteelProfile:          "IPE300",
		SteelStrength:         "S275",
		DeflectionRequirement: deflReq(300),
		DeflectionIsLocal:     true,
	}
}

func TestPrepareResolvesProfileAndGrade(t *testing.T) {
	in, err := ec3.Prepare(ipe300(), 4.0, false, 300)
	require.NoError(t, err)
	assert.Equal(t, "IPE300", in.Profile.Name)
	assert.InDelta(t, 275e6, in.FyFlange, 1)
	assert.InDelta(t, 1.1, in.GammaM0, 1e-9)
	assert.InDelta(t, 1.2, in.GammaM1, 1e-9)
}

func TestPrepareAppliesRobustnessFactor(t *testing.T) {
	in, err := ec3.Prepare(ipe300(), 4.0, true, 300)
	require.NoError(t, err)
	assert.InDelta(t, 1.1*1.2, in.GammaM0, 1e-9)
	assert.InDelta(t, 1.2*1.2, in.GammaM1, 1e-9)
}

func TestShearIncreasesWithDemand(t *testing.T) {
	in, err := ec3.Prepare(ipe300(), 4.0, false, 300)
	require.NoError(t, err)

	urLow, _, _, err := ec3.Shear(in, []float64{1000, -2000, 1500})
	require.NoError(t, err)
	urHigh, _, _, err := ec3.Shear(in, []float64{100000, -120000})
	require.NoError(t, err)

	assert.Less(t, urLow, urHigh)
}

func TestBendingReducedByHighShear(t *testing.T) {
	in, err := ec3.Prepare(ipe300(), 4.0, false, 300)
	require.NoError(t, err)

	m := []float64{50000}
	shearURLow, vEdLow, vcRdLow := 0.2, 10000.0, 300000.0
	shearURHigh, vEdHigh, vcRdHigh := 0.8, 240000.0, 300000.0

	urLow, _, _ := ec3.Bending(in, m, shearURLow, vEdLow, vcRdLow)
	urHigh, _, _ := ec3.Bending(in, m, shearURHigh, vEdHigh, vcRdHigh)

	assert.Greater(t, urHigh, urLow, "shear interaction must reduce the effective yield strength and raise the bending UR")
}

func TestCompressionOnlyCountsAxialForceInCompression(t *testing.T) {
	in, err := ec3.Prepare(ipe300(), 3.0, false, 300)
	require.NoError(t, err)

	urTension, nEdTension, _, _ := ec3.Compression(in, []float64{0, 50000})
	assert.Equal(t, 0.0, nEdTension)
	assert.Equal(t, 0.0, urTension)

	urComp, nEdComp, _, lambdaBar := ec3.Compression(in, []float64{-80000, -20000})
	assert.Equal(t, 80000.0, nEdComp)
	assert.Greater(t, urComp, 0.0)
	assert.Greater(t, lambdaBar, 0.0)
}

func TestCripplingUsesFixedBearingLength(t *testing.T) {
	in, err := ec3.Prepare(ipe300(), 4.0, false, 300)
	require.NoError(t, err)

	ur, rEd, rwRd := ec3.Crippling(in, []float64{-5000, 90000})
	assert.Equal(t, 90000.0, rEd)
	assert.Greater(t, rwRd, 0.0)
	assert.InDelta(t, rEd/rwRd, ur, 1e-9)
}

func TestDeflectionLocalUsesULocY(t *testing.T) {
	in, err := ec3.Prepare(ipe300(), 6.0, false, 300)
	require.NoError(t, err)

	ur, maxDef, allowable := ec3.Deflection(in, []float64{0, 0.01, 0.02, 0.005}, nil, nil)
	assert.InDelta(t, 6.0/300, allowable, 1e-9)
	assert.Equal(t, 0.02, maxDef)
	assert.InDelta(t, maxDef/allowable, ur, 1e-9)
}

func TestDeflectionGlobalUsesVectorSum(t *testing.T) {
	in, err := ec3.Prepare(ipe300(), 6.0, false, 300)
	require.NoError(t, err)
	in.DeflectionIsLocal = false

	ux := []float64{0, 0.003, 0.006}
	uy := []float64{0, 0.004, 0.008}
	ur, maxDef, _ := ec3.Deflection(in, nil, ux, uy)
	assert.InDelta(t, 0.01, maxDef, 1e-9)
	assert.Greater(t, ur, 0.0)
}

func TestEvaluateReturnsAllFourRulesInOrder(t *testing.T) {
	in, err := ec3.Prepare(ipe300(), 4.0, false, 300)
	require.NoError(t, err)

	results, err := ec3.Evaluate(in, []float64{-10000, -5000}, []float64{20000, -15000}, []float64{30000, 25000})
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "Forskydning (6.2.6)", results[0].Name)
	assert.Equal(t, "Bøjningsmoment (6.2.5)", results[1].Name)
	assert.Equal(t, "Søjlevirkning (6.3.1)", results[2].Name)
	assert.Equal(t, "Lokale tværgående kræfter (6.1.7)", results[3].Name)

	gov := ec3.Governing(results)
	for _, r := range results {
		assert.LessOrEqual(t, r.UR, gov.UR)
	}
}

func TestCriticalTemperatureDecreasesAsURGrows(t *testing.T) {
	low := ec3.CriticalTemperature(0.3)
	high := ec3.CriticalTemperature(0.9)
	assert.Greater(t, low, high, "a higher governing UR must imply a lower critical temperature")
}

func TestShearAreaUnsupportedFamily(t *testing.T) {
	in, err := ec3.Prepare(ipe300(), 4.0, false, 300)
	require.NoError(t, err)
	in.Profile.Family = "Other"

	_, _, _, err = ec3.Shear(in, []float64{1000})
	assert.Error(t, err)
}
