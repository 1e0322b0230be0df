// Package combination builds the Eurocode load-combination coefficient
// matrices (ULS 6.10a/b, ALS 6.11, SLS characteristic) and materializes
// combination-level quantities via C * Q, per spec.md §4.5.
package combination

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/HJ-nkh/frameanalysis/internal/entities"
	"github.com/HJ-nkh/frameanalysis/internal/loadassembler"
	"github.com/HJ-nkh/frameanalysis/internal/material"
)

// LimitState is the Eurocode limit-state the combination set belongs to.
type LimitState string

const (
	ULS LimitState = "ULS"
	SLS LimitState = "SLS"
	ALS LimitState = "ALS"
)

// Set is one limit state's combination coefficient matrix: one named row
// per combination, one column per single load (spec.md's §3
// CombinationCoefficientMatrix).
type Set struct {
	LimitState LimitState
	Names      []string
	// Dominant/PrimaryCategory parallels Names: the category driving each
	// row, for the ResultAggregator's per-category SLS column selection and
	// the EC5 deflection field selection (see SPEC_FULL.md resolved Open
	// Question 1).
	DominantCategory []material.LoadCategory
	C                *mat.Dense // rows x len(loads)
}

// Row returns combination row i as a plain coefficient slice.
func (s *Set) Row(i int) []float64 {
	cols := s.C.RawRowView(i)
	out := make([]float64, len(cols))
	copy(out, cols)
	return out
}

func category(t entities.LoadType) material.LoadCategory {
	switch t {
	case entities.TypeDead:
		return material.CatEgenlast
	case entities.TypeLive:
		return material.CatNyttelast
	case entities.TypeSnow:
		return material.CatSnelast
	case entities.TypeWind:
		return material.CatVindlast
	default:
		return material.CatStandard
	}
}

// categorize groups single-load indices by their combination category,
// in first-seen order for deterministic enumeration.
func categorize(loads []loadassembler.SingleLoad) (order []material.LoadCategory, byCat map[material.LoadCategory][]int) {
	byCat = map[material.LoadCategory][]int{}
	seen := map[material.LoadCategory]bool{}
	for i, l := range loads {
		cat := category(l.Type)
		byCat[cat] = append(byCat[cat], i)
		if !seen[cat] {
			seen[cat] = true
			order = append(order, cat)
		}
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	return order, byCat
}

func newRow(n int) []float64 { return make([]float64, n) }

func buildSet(ls LimitState, n int, rows [][]float64, names []string, dom []material.LoadCategory) *Set {
	c := mat.NewDense(len(rows), n, nil)
	for i, row := range rows {
		c.SetRow(i, row)
	}
	return &Set{LimitState: ls, Names: names, DominantCategory: dom, C: c}
}

func combName(k int, label string) string {
	return fmt.Sprintf("Komb. %d. %s", k, label)
}
