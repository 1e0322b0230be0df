package combination

import (
	"github.com/HJ-nkh/frameanalysis/internal/loadassembler"
	"github.com/HJ-nkh/frameanalysis/internal/material"
)

// BuildALS constructs the EN 1990 6.11 accidental (fire) combination
// set, per spec.md §4.5.2: one row per primary category, dead at factor
// 1, the primary category's own columns at psi1, every other non-dead
// category at psi2.
func BuildALS(loads []loadassembler.SingleLoad) (*Set, error) {
	n := len(loads)
	order, byCat := categorize(loads)

	var rows [][]float64
	var names []string
	var dom []material.LoadCategory
	k := 0

	for _, prim := range order {
		row := newRow(n)
		for _, c := range byCat[material.CatEgenlast] {
			row[c] = 1
		}
		if prim != material.CatEgenlast {
			psi1, err := material.Psi1(prim)
			if err != nil {
				return nil, err
			}
			for _, c := range byCat[prim] {
				row[c] = psi1
			}
		}
		for _, other := range order {
			if other == material.CatEgenlast || other == prim {
				continue
			}
			psi2, err := material.Psi2(other)
			if err != nil {
				return nil, err
			}
			for _, c := range byCat[other] {
				row[c] = psi2
			}
		}
		k++
		rows = append(rows, row)
		names = append(names, combName(k, string(prim)+" primær - (6.11)"))
		dom = append(dom, prim)
	}

	return buildSet(ALS, n, rows, names, dom), nil
}
