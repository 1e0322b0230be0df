package analysis_test

import (
	"testing"

	"github.com/HJ-nkh/frameanalysis/internal/analysis"
	"github.com/HJ-nkh/frameanalysis/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cantileverSet(tipLoad float64) *entities.EntitySet {
	return &entities.EntitySet{
		Nodes: map[string]entities.NodeInput{
			"n1": {X: 0, Y: 0},
			"n2": {X: 4, Y: 0},
		},
		Members: map[string]entities.MemberInput{
			"m1": {
				Node1ID:    "n1",
				Node2ID:    "n2",
				Dependants: []string{"s1", "p1"},
				Props: entities.MemberProps{
					Type: entities.Steel, Name: "Beam 1",
					SteelProfile: "IPE300", SteelStrength: "S275",
				},
			},
		},
		Supports: map[string]entities.SupportInput{
			"s1": {Resolved: entities.Coord{X: 0, Y: 0}, Type: entities.Fixed},
		},
		PointLoads: map[string]entities.PointLoadInput{
			"p1": {Resolved: entities.Coord{X: 4, Y: 0}, Magnitude: tipLoad, Angle: 90, Type: entities.TypeLive},
		},
	}
}

func settings() entities.Settings {
	return entities.Settings{
		CC:           entities.CC2,
		DefCritSteel: 300,
		DefCritWood1: 300,
		DefCritWood2: 200,
	}
}

func TestRunProducesOneMemberReportWithAllThreeLimitStates(t *testing.T) {
	result, err := analysis.Run(cantileverSet(1000.0), settings())
	require.NoError(t, err)

	require.Len(t, result.UR, 1)
	mu := result.UR[0]
	assert.Equal(t, "m1", mu.MemberID)
	for _, ls := range []string{"ULS", "SLS", "ALS"} {
		assert.Contains(t, mu.RuleNames, ls)
		assert.Contains(t, mu.LoadCombNames, ls)
		assert.Contains(t, mu.URMatrix, ls)
		assert.NotEmpty(t, mu.LoadCombNames[ls], "limit state %s must report at least one governing combination", ls)
	}
}

func TestRunReportsFEMModelOffsetsCoveringTheWholeMember(t *testing.T) {
	result, err := analysis.Run(cantileverSet(1000.0), settings())
	require.NoError(t, err)

	dm, ok := result.FEMModel.Members["m1"]
	require.True(t, ok)
	assert.Equal(t, 0, dm.Offset, "single-member frame's only member must start at offset 0")
	assert.Len(t, dm.XLocal, dm.Samples)

	forces := result.Forces["ULS"]
	for _, row := range forces.M {
		assert.Len(t, row, dm.Samples)
	}
}

func TestRunStrengthUtilizationGrowsWithLoadMagnitude(t *testing.T) {
	small, err := analysis.Run(cantileverSet(1000.0), settings())
	require.NoError(t, err)
	large, err := analysis.Run(cantileverSet(50000.0), settings())
	require.NoError(t, err)

	maxUR := func(res *analysis.Result) float64 {
		m := 0.0
		for _, row := range res.UR[0].URMatrix["ULS"] {
			for _, v := range row {
				if v > m {
					m = v
				}
			}
		}
		return m
	}

	assert.Greater(t, maxUR(large), maxUR(small), "a far heavier tip load must govern a higher ULS utilization ratio")
}

func TestRunReportsFireCriticalTemperatureForSteelMember(t *testing.T) {
	result, err := analysis.Run(cantileverSet(1000.0), settings())
	require.NoError(t, err)

	require.NotNil(t, result.UR[0].FireCriticalTemperatureC)
	assert.Greater(t, *result.UR[0].FireCriticalTemperatureC, 0.0)
}

func TestRunRejectsGeometryErrorsBeforeAnyCodeCheck(t *testing.T) {
	es := cantileverSet(1000.0)
	es.Nodes["n2"] = entities.NodeInput{X: 0, Y: 0} // zero-length member

	_, err := analysis.Run(es, settings())
	assert.Error(t, err)
}
