package ec6_test

import (
	"testing"

	"github.com/HJ-nkh/frameanalysis/internal/checks/ec6"
	"github.com/HJ-nkh/frameanalysis/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardWall() entities.MemberProps {
	return entities.MemberProps{
		Type:          entities.Masonry,
		Name:          "W1",
		MurType:       "Standard murværk",
		MurThickness:  0.350,
		MurWallHeight: 2.8,
	}
}

func TestPrepareRequiresThicknessAndHeight(t *testing.T) {
	props := standardWall()
	props.MurThickness = 0
	_, err := ec6.Prepare(props)
	assert.Error(t, err)
}

func TestPrepareResolvesMasonryType(t *testing.T) {
	in, err := ec6.Prepare(standardWall())
	require.NoError(t, err)
	assert.Equal(t, "Standard murværk", in.Type.Name)
	assert.InDelta(t, 0.350, in.Thickness, 1e-9)
}

func TestKtFactorSwitchesAtNinetyMillimeters(t *testing.T) {
	assert.Equal(t, 0.7, ec6.KtFactor(0.090))
	assert.Equal(t, 0.9, ec6.KtFactor(0.108))
}

func TestEffectiveHeightUnrestrainedEqualsWallHeight(t *testing.T) {
	in, err := ec6.Prepare(standardWall())
	require.NoError(t, err)

	hef, lambda := ec6.EffectiveHeight(in)
	assert.Equal(t, in.WallHeight, hef)
	assert.InDelta(t, in.WallHeight/in.Thickness, lambda, 1e-9)
}

func TestRitterURGrowsWithGoverningMoment(t *testing.T) {
	in, err := ec6.Prepare(standardWall())
	require.NoError(t, err)

	n := []float64{-40000, -38000}
	urLow, _, _, _, err := ec6.Ritter(in, n, []float64{500})
	require.NoError(t, err)
	urHigh, _, _, _, err := ec6.Ritter(in, n, []float64{5000})
	require.NoError(t, err)

	assert.Less(t, urLow, urHigh)
}

func TestRitterRejectsExcessiveSlenderness(t *testing.T) {
	props := standardWall()
	props.MurWallHeight = 15.0 // lambda = 15/0.35 = 42.8 > 27
	in, err := ec6.Prepare(props)
	require.NoError(t, err)

	_, _, _, _, err = ec6.Ritter(in, []float64{-10000}, []float64{500})
	assert.Error(t, err)
}

func TestConcentratedLoadScalesWithAxialForce(t *testing.T) {
	in, err := ec6.Prepare(standardWall())
	require.NoError(t, err)

	urLow, nRdc := ec6.ConcentratedLoad(in, []float64{-5000})
	urHigh, _ := ec6.ConcentratedLoad(in, []float64{-50000})
	assert.Less(t, urLow, urHigh)
	assert.Greater(t, nRdc, 0.0)
}

func TestEvaluateReturnsBothRules(t *testing.T) {
	in, err := ec6.Prepare(standardWall())
	require.NoError(t, err)

	results, err := ec6.Evaluate(in, []float64{-40000, -38000}, []float64{800, -600})
	require.NoError(t, err)
	require.Len(t, results, 2)

	gov := ec6.Governing(results)
	for _, r := range results {
		assert.LessOrEqual(t, r.UR, gov.UR)
	}
}
