package combination_test

import (
	"testing"

	"github.com/HJ-nkh/frameanalysis/internal/combination"
	"github.com/HJ-nkh/frameanalysis/internal/entities"
	"github.com/HJ-nkh/frameanalysis/internal/loadassembler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleLoad(name string, t entities.LoadType) loadassembler.SingleLoad {
	return loadassembler.SingleLoad{Name: name, Type: t}
}

func TestBuildULSDeadOnlyProducesTwo610ARows(t *testing.T) {
	loads := []loadassembler.SingleLoad{singleLoad("selvvaegt", entities.TypeDead)}
	set, err := combination.BuildULS(loads, entities.Settings{CC: entities.CC2})
	require.NoError(t, err)

	require.Len(t, set.Names, 2)
	row0 := set.Row(0)
	row1 := set.Row(1)
	assert.Greater(t, row0[0], row1[0], "the unfavorable 6.10a row must use the larger partial factor")
}

func TestBuildULSDeadAndLiveProduces610BRows(t *testing.T) {
	loads := []loadassembler.SingleLoad{
		singleLoad("dead", entities.TypeDead),
		singleLoad("live", entities.TypeLive),
	}
	set, err := combination.BuildULS(loads, entities.Settings{CC: entities.CC2})
	require.NoError(t, err)

	require.Len(t, set.Names, 2) // one non-dead category -> unfavorable + favorable branch
	for i := range set.Names {
		row := set.Row(i)
		assert.Greater(t, row[1], 0.0, "live load column must carry a nonzero factor in every 6.10b row")
	}
}

func TestBuildULSMultipleCategoriesEnumeratesEachAsDominant(t *testing.T) {
	loads := []loadassembler.SingleLoad{
		singleLoad("dead", entities.TypeDead),
		singleLoad("live", entities.TypeLive),
		singleLoad("snow", entities.TypeSnow),
	}
	set, err := combination.BuildULS(loads, entities.Settings{CC: entities.CC2})
	require.NoError(t, err)

	// 2 non-dead categories x 2 branches (unfavorable/favorable) = 4 rows
	assert.Len(t, set.Names, 4)
}

func TestBuildSLSEnumeratesDeadAlonePlusEachCategorySubset(t *testing.T) {
	loads := []loadassembler.SingleLoad{
		singleLoad("dead", entities.TypeDead),
		singleLoad("live1", entities.TypeLive),
		singleLoad("live2", entities.TypeLive),
	}
	set, err := combination.BuildSLS(loads)
	require.NoError(t, err)

	// 1 dead-alone row + (2^2 - 1) nonempty live subsets = 4
	assert.Len(t, set.Names, 4)
}

func TestBuildALSOneRowPerPrimaryCategory(t *testing.T) {
	loads := []loadassembler.SingleLoad{
		singleLoad("dead", entities.TypeDead),
		singleLoad("live", entities.TypeLive),
		singleLoad("wind", entities.TypeWind),
	}
	set, err := combination.BuildALS(loads)
	require.NoError(t, err)

	assert.Len(t, set.Names, 3) // dead, live, wind each get a turn as primary
}

func TestMaterializeAppliesCombinationMatrixToQuantities(t *testing.T) {
	loads := []loadassembler.SingleLoad{singleLoad("dead", entities.TypeDead)}
	set, err := combination.BuildULS(loads, entities.Settings{CC: entities.CC2})
	require.NoError(t, err)

	n := [][]float64{{10, 20, 30}}
	res := set.Materialize(n, n, n, n, n, n, n)

	require.Len(t, res.N, 2)
	row0Factor := set.Row(0)[0]
	assert.InDelta(t, row0Factor*10, res.N[0][0], 1e-9)
	assert.InDelta(t, row0Factor*30, res.N[0][2], 1e-9)
}
