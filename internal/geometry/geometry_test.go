package geometry_test

import (
	"testing"

	"github.com/HJ-nkh/frameanalysis/internal/entities"
	"github.com/HJ-nkh/frameanalysis/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cantileverSet() *entities.EntitySet {
	return &entities.EntitySet{
		Nodes: map[string]entities.NodeInput{
			"n1": {X: 0, Y: 0, Assembly: entities.Rigid},
			"n2": {X: 4, Y: 0, Assembly: entities.Rigid},
		},
		Members: map[string]entities.MemberInput{
			"m1": {
				Node1ID:    "n1",
				Node2ID:    "n2",
				Dependants: []string{"s1", "p1"},
				Props: entities.MemberProps{
					Type:          entities.Steel,
					Name:          "Beam 1",
					SteelProfile:  "IPE300",
					SteelStrength: "S275",
				},
			},
		},
		Supports: map[string]entities.SupportInput{
			"s1": {Resolved: entities.Coord{X: 0, Y: 0}, Type: entities.Fixed},
		},
		PointLoads: map[string]entities.PointLoadInput{
			"p1": {Resolved: entities.Coord{X: 4, Y: 0}, Magnitude: 1000, Angle: 90, Type: entities.TypeLive},
		},
	}
}

func TestBuildRefinesMemberIntoDiscrElements(t *testing.T) {
	frame, err := geometry.Build(cantileverSet())
	require.NoError(t, err)

	require.Len(t, frame.Members, 1)
	assert.Len(t, frame.Elements, geometry.Discr)
	assert.InDelta(t, 4.0, frame.Members[0].Length, 1e-9)
	assert.Len(t, frame.Members[0].NodeSeq, geometry.Discr+1)
}

func TestBuildAssignsThreeDOFPerNode(t *testing.T) {
	frame, err := geometry.Build(cantileverSet())
	require.NoError(t, err)

	assert.Equal(t, 3*len(frame.Nodes), frame.NDOF)
}

func TestBuildFixedSupportRestrainsAllThreeDOFs(t *testing.T) {
	frame, err := geometry.Build(cantileverSet())
	require.NoError(t, err)

	assert.Len(t, frame.SupportDOFs, 3)
}

func TestBuildRollerRestrainsSingleAxis(t *testing.T) {
	es := cantileverSet()
	es.Supports["s1"] = entities.SupportInput{Resolved: entities.Coord{X: 0, Y: 0}, Type: entities.Roller, Angle: 0}
	es.Supports["s2"] = entities.SupportInput{Resolved: entities.Coord{X: 4, Y: 0}, Type: entities.Pinned}

	frame, err := geometry.Build(es)
	require.NoError(t, err)
	assert.Len(t, frame.SupportDOFs, 3) // 1 roller (uy) + 1 pinned (ux, uy)
}

func TestBuildRejectsUnresolvableSupport(t *testing.T) {
	es := cantileverSet()
	// "s2" is not in any member's Dependants, so its coordinate never
	// becomes a refined node.
	es.Supports["s2"] = entities.SupportInput{Resolved: entities.Coord{X: 1.5, Y: 9}, Type: entities.Fixed}

	_, err := geometry.Build(es)
	assert.Error(t, err)
}

func TestBuildDecomposesPointLoadByAngle(t *testing.T) {
	frame, err := geometry.Build(cantileverSet())
	require.NoError(t, err)

	require.Len(t, frame.Loads, 1)
	assert.InDelta(t, 0, frame.Loads[0].Fx, 1e-9)
	assert.InDelta(t, -1000, frame.Loads[0].Fy, 1e-9)
}

func TestBuildRejectsZeroLengthMember(t *testing.T) {
	es := cantileverSet()
	es.Nodes["n2"] = entities.NodeInput{X: 0, Y: 0}

	_, err := geometry.Build(es)
	assert.Error(t, err)
}

func TestBuildMarksHingeAtDeclaredHingeNode(t *testing.T) {
	es := cantileverSet()
	es.Nodes["n2"] = entities.NodeInput{X: 4, Y: 0, Assembly: entities.Hinge}

	frame, err := geometry.Build(es)
	require.NoError(t, err)

	last := frame.Elements[len(frame.Elements)-1]
	assert.True(t, last.HingeEnd)
	// n2 is the cantilever's free tip: only one element end touches the
	// hinge node, so it keeps the node's base rotational DOF rather than
	// being allocated a new, orphaned one.
	assert.Equal(t, 3*len(frame.Nodes), frame.NDOF)
}

func TestBuildHingeSharedByTwoMembersReleasesOneEndWithoutOrphaningTheOther(t *testing.T) {
	es := &entities.EntitySet{
		Nodes: map[string]entities.NodeInput{
			"n1": {X: 0, Y: 0, Assembly: entities.Rigid},
			"n2": {X: 4, Y: 0, Assembly: entities.Hinge},
			"n3": {X: 8, Y: 0, Assembly: entities.Rigid},
		},
		Members: map[string]entities.MemberInput{
			"m1": {
				Node1ID: "n1", Node2ID: "n2",
				Props: entities.MemberProps{Type: entities.Steel, Name: "Beam 1", SteelProfile: "IPE300", SteelStrength: "S275"},
			},
			"m2": {
				Node1ID: "n2", Node2ID: "n3",
				Props: entities.MemberProps{Type: entities.Steel, Name: "Beam 2", SteelProfile: "IPE300", SteelStrength: "S275"},
			},
		},
		Supports: map[string]entities.SupportInput{
			"s1": {Resolved: entities.Coord{X: 0, Y: 0}, Type: entities.Fixed},
			"s2": {Resolved: entities.Coord{X: 8, Y: 0}, Type: entities.Pinned},
		},
	}

	frame, err := geometry.Build(es)
	require.NoError(t, err)

	// exactly one extra DOF: the shared hinge node's base rotation stays
	// referenced by the first incident element, only the second gets a
	// fresh, independent DOF.
	assert.Equal(t, 3*len(frame.Nodes)+1, frame.NDOF)

	m1Last := frame.Elements[frame.Members[0].Elements[len(frame.Members[0].Elements)-1]]
	m2First := frame.Elements[frame.Members[1].Elements[0]]
	require.True(t, m1Last.HingeEnd)
	require.True(t, m2First.HingeStart)

	hingeNode := m1Last.N2
	dofM1 := frame.DOF[frame.Members[0].Elements[len(frame.Members[0].Elements)-1]]
	dofM2 := frame.DOF[frame.Members[1].Elements[0]]
	baseRZ := 3*hingeNode + 2

	assert.Equal(t, baseRZ, dofM1[5], "first incident element keeps the node's base rotational DOF")
	assert.NotEqual(t, baseRZ, dofM2[2], "second incident element gets its own independent rotational DOF")
}
