package discretize_test

import (
	"math"
	"testing"

	"github.com/HJ-nkh/frameanalysis/internal/discretize"
	"github.com/HJ-nkh/frameanalysis/internal/entities"
	"github.com/HJ-nkh/frameanalysis/internal/geometry"
	"github.com/HJ-nkh/frameanalysis/internal/loadassembler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cantilever(tipLoad float64) *geometry.Frame {
	es := &entities.EntitySet{
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
	frame, err := geometry.Build(es)
	if err != nil {
		panic(err)
	}
	return frame
}

func assembledCantilever(t *testing.T, tipLoad float64) (*geometry.Frame, []discretize.MemberTopology, []loadassembler.SingleLoad) {
	t.Helper()
	frame := cantilever(tipLoad)
	topo := discretize.BuildTopology(frame)
	loads, err := loadassembler.Assemble(frame, false)
	require.NoError(t, err)
	require.Len(t, loads, 1)
	return frame, topo, loads
}

func TestBuildTopologySamplesCoverFullMemberLength(t *testing.T) {
	frame := cantilever(1000.0)
	topo := discretize.BuildTopology(frame)

	require.Len(t, topo, 1)
	tp := topo[0]
	assert.Equal(t, discretize.PlotDiscr*tp.NSub+1, tp.NSamples)
	assert.InDelta(t, 0, tp.XLocal[0], 1e-9)
	assert.InDelta(t, 4.0, tp.XLocal[len(tp.XLocal)-1], 1e-9)
}

func TestForcesMomentMatchesCantileverBendingAtFixedEnd(t *testing.T) {
	frame, topo, loads := assembledCantilever(t, 1000.0)

	_, _, m, err := discretize.Forces(frame, topo, loads)
	require.NoError(t, err)
	require.Len(t, m, 1)

	// fixed end (x=0) must carry the full P*L moment, free tip must carry zero.
	row := m[0]
	assert.InDelta(t, 4000.0, math.Abs(row[0]), 1e-3)
	assert.InDelta(t, 0.0, row[len(row)-1], 1e-3)
}

func TestForcesShearIsConstantAlongUnloadedCantileverSpan(t *testing.T) {
	frame, topo, loads := assembledCantilever(t, 1000.0)

	_, v, _, err := discretize.Forces(frame, topo, loads)
	require.NoError(t, err)

	row := v[0]
	for i, val := range row {
		assert.InDelta(t, row[0], val, 1e-6, "shear must be constant along a span with no distributed load, sample %d", i)
	}
	assert.InDelta(t, 1000.0, math.Abs(row[0]), 1e-3)
}

func TestDeflectionsLocalYIsZeroAtBothMemberEnds(t *testing.T) {
	frame, topo, loads := assembledCantilever(t, 1000.0)

	_, _, uLocalY := discretize.Deflections(frame, topo, loads)
	require.Len(t, uLocalY, 1)

	row := uLocalY[0]
	assert.InDelta(t, 0.0, row[0], 1e-9, "chord-relative deflection must vanish at the member start")
	assert.InDelta(t, 0.0, row[len(row)-1], 1e-9, "chord-relative deflection must vanish at the member end")
}

func TestDeflectionsTipMatchesGlobalDisplacementAtLastNode(t *testing.T) {
	frame, topo, loads := assembledCantilever(t, 1000.0)

	ux, uy, _ := discretize.Deflections(frame, topo, loads)
	require.Len(t, uy, 1)

	tipNode := len(frame.Nodes) - 1
	expectedUy := loads[0].Result.Displacements[3*tipNode+1]
	expectedUx := loads[0].Result.Displacements[3*tipNode]

	row := uy[0]
	rowX := ux[0]
	assert.InDelta(t, expectedUy, row[len(row)-1], 1e-9)
	assert.InDelta(t, expectedUx, rowX[len(rowX)-1], 1e-9)
}

func TestDeflectionsScaleLinearlyWithLoadMagnitude(t *testing.T) {
	frameA, topoA, loadsA := assembledCantilever(t, 1000.0)
	_, uyA, _ := discretize.Deflections(frameA, topoA, loadsA)

	frameB, topoB, loadsB := assembledCantilever(t, 2000.0)
	_, uyB, _ := discretize.Deflections(frameB, topoB, loadsB)

	tipA := uyA[0][len(uyA[0])-1]
	tipB := uyB[0][len(uyB[0])-1]
	assert.InDelta(t, 2*tipA, tipB, math.Abs(tipA)*1e-6)
}
