package aggregate_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/HJ-nkh/frameanalysis/internal/aggregate"
	"github.com/HJ-nkh/frameanalysis/internal/combination"
	"github.com/HJ-nkh/frameanalysis/internal/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ulsSet() *combination.Set {
	c := mat.NewDense(3, 1, []float64{1, 1, 1})
	return &combination.Set{
		LimitState:       combination.ULS,
		Names:            []string{"Komb. 1", "Komb. 2", "Komb. 3"},
		DominantCategory: []material.LoadCategory{material.CatNyttelast, material.CatSnelast, material.CatVindlast},
		C:                c,
	}
}

func slsSet() *combination.Set {
	c := mat.NewDense(4, 1, []float64{1, 1, 1, 1})
	return &combination.Set{
		LimitState:       combination.SLS,
		Names:            []string{"Komb. 1", "Komb. 2", "Komb. 3", "Komb. 4"},
		DominantCategory: []material.LoadCategory{material.CatNyttelast, material.CatNyttelast, material.CatSnelast, material.CatSnelast},
		C:                c,
	}
}

func TestReportSetForULSPicksSingleGoverningColumnPerRule(t *testing.T) {
	set := ulsSet()
	perMember := map[string][]aggregate.RuleUR{
		"B1": {{Rule: "Bending", Values: []float64{0.4, 0.9, 0.2}}},
	}
	cols := aggregate.ReportSet(set, perMember)
	require.Equal(t, []int{1}, cols)
}

func TestReportSetForSLSPicksOnePerCategory(t *testing.T) {
	set := slsSet()
	perMember := map[string][]aggregate.RuleUR{
		"B1": {{Rule: "Deflection", Values: []float64{0.3, 0.6, 0.1, 0.5}}},
	}
	cols := aggregate.ReportSet(set, perMember)
	assert.Equal(t, []int{1, 3}, cols)
}

func TestReportSetUnionsAcrossMembers(t *testing.T) {
	set := ulsSet()
	perMember := map[string][]aggregate.RuleUR{
		"B1": {{Rule: "Bending", Values: []float64{0.9, 0.1, 0.2}}},
		"B2": {{Rule: "Shear", Values: []float64{0.1, 0.2, 0.9}}},
	}
	cols := aggregate.ReportSet(set, perMember)
	assert.Equal(t, []int{0, 2}, cols)
}

func TestGoverningRulesNamesTheGoverningCombination(t *testing.T) {
	set := ulsSet()
	rules := []aggregate.RuleUR{{Rule: "Bending", Values: []float64{0.4, 0.9, 0.2}}}
	govs := aggregate.GoverningRules(set, rules, []int{0, 1, 2})
	require.Len(t, govs, 1)
	assert.Equal(t, "Komb. 2", govs[0].CombinationName)
	assert.InDelta(t, 0.9, govs[0].UR, 1e-9)
}

func TestGoverningRulesRestrictedToReportColumnsOnly(t *testing.T) {
	set := ulsSet()
	rules := []aggregate.RuleUR{{Rule: "Bending", Values: []float64{0.4, 0.9, 0.2}}}
	govs := aggregate.GoverningRules(set, rules, []int{0, 2})
	assert.Equal(t, "Komb. 1", govs[0].CombinationName)
	assert.InDelta(t, 0.4, govs[0].UR, 1e-9)
}

func TestReducedMatrixPreservesRuleOrderAndSelectedColumns(t *testing.T) {
	rules := []aggregate.RuleUR{
		{Rule: "Bending", Values: []float64{0.4, 0.9, 0.2}},
		{Rule: "Shear", Values: []float64{0.1, 0.3, 0.5}},
	}
	m := aggregate.ReducedMatrix(rules, []int{0, 2})
	require.Len(t, m, 2)
	assert.Equal(t, []float64{0.4, 0.2}, m[0])
	assert.Equal(t, []float64{0.1, 0.5}, m[1])
}
