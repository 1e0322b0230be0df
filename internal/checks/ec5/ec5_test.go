package ec5_test

import (
	"testing"

	"github.com/HJ-nkh/frameanalysis/internal/checks/ec5"
	"github.com/HJ-nkh/frameanalysis/internal/entities"
	"github.com/HJ-nkh/frameanalysis/internal/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c24Beam() entities.MemberProps {
	return entities.MemberProps{
		Type:     entities.Wood,
		Name:     "B1",
		WoodType: "C24",
		WoodSize: &entities.WoodSize{Width: 95, Height: 195},
	}
}

func TestPrepareResolvesClassAndSection(t *testing.T) {
	in, err := ec5.Prepare(c24Beam(), 4.0, false)
	require.NoError(t, err)
	assert.Equal(t, "C24", in.Class.Name)
	assert.False(t, in.Glulam)
	assert.InDelta(t, 0.095, in.B, 1e-9)
	assert.InDelta(t, 0.195, in.H, 1e-9)
	assert.InDelta(t, material.GammaMTimberSolid, in.GammaM, 1e-9)
}

func TestPrepareGlulamUsesGlulamGammaM(t *testing.T) {
	props := c24Beam()
	props.WoodType = "GL28h"
	in, err := ec5.Prepare(props, 4.0, false)
	require.NoError(t, err)
	assert.True(t, in.Glulam)
	assert.InDelta(t, material.GammaMTimberGlulam, in.GammaM, 1e-9)
}

func TestPrepareMissingSectionIsBadInput(t *testing.T) {
	props := c24Beam()
	props.WoodSize = nil
	_, err := ec5.Prepare(props, 4.0, false)
	assert.Error(t, err)
}

func TestTensionZeroWhenMemberNeverInTension(t *testing.T) {
	in, err := ec5.Prepare(c24Beam(), 4.0, false)
	require.NoError(t, err)

	ur, sigma, _ := ec5.Tension(in, []float64{-5000, -2000})
	assert.Equal(t, 0.0, ur)
	assert.Equal(t, 0.0, sigma)
}

func TestCompressionUsesMostNegativeForce(t *testing.T) {
	in, err := ec5.Prepare(c24Beam(), 4.0, false)
	require.NoError(t, err)

	ur, sigma, fd := ec5.Compression(in, []float64{1000, -8000, -3000})
	assert.Greater(t, ur, 0.0)
	assert.InDelta(t, 8000.0/in.A, sigma, 1e-6)
	assert.Greater(t, fd, 0.0)
}

func TestBendingTakesWorseOfTwoClauses(t *testing.T) {
	in, err := ec5.Prepare(c24Beam(), 4.0, false)
	require.NoError(t, err)

	ur, _, _ := ec5.Bending(in, []float64{15000})
	assert.Greater(t, ur, 0.0)
}

func TestColumnStabilityMatchesLowSlendernessBranch(t *testing.T) {
	in, err := ec5.Prepare(c24Beam(), 0.5, false)
	require.NoError(t, err)

	ur, lambdaRel, kc := ec5.ColumnStability(in, []float64{-1000}, []float64{500})
	assert.Greater(t, ur, 0.0)
	assert.Greater(t, kc, 0.0)
	assert.LessOrEqual(t, kc, 1.0+1e-9)
	_ = lambdaRel
}

func TestDeflectionInflatesForShearAndCreep(t *testing.T) {
	in, err := ec5.Prepare(c24Beam(), 4.0, false)
	require.NoError(t, err)

	ux := []float64{0, 0.002, 0.004}
	uy := []float64{0, 0.006, 0.012}
	urInst, urFin, uInst, uFin := ec5.Deflection(in, ux, uy, 400)
	assert.Greater(t, uFin, uInst, "final deflection must exceed instant deflection once creep is applied")
	assert.Greater(t, urFin, 0.0)
	assert.Greater(t, urInst, 0.0)
}

func TestEvaluateReturnsSevenRules(t *testing.T) {
	in, err := ec5.Prepare(c24Beam(), 4.0, false)
	require.NoError(t, err)

	results := ec5.Evaluate(in, []float64{-5000, 1000}, []float64{12000}, []float64{8000})
	require.Len(t, results, 7)

	gov := ec5.Governing(results)
	for _, r := range results {
		assert.LessOrEqual(t, r.UR, gov.UR)
	}
}
