package combination

import (
	"github.com/HJ-nkh/frameanalysis/internal/loadassembler"
	"github.com/HJ-nkh/frameanalysis/internal/material"
)

// BuildSLS constructs the "characteristic, X alone" combination set of
// spec.md §4.5.3: dead loads at factor 1 plus every non-empty subset of
// each non-dead category's own single loads, at factor 1, and the
// gravity-only row for X = Egenlast.
func BuildSLS(loads []loadassembler.SingleLoad) (*Set, error) {
	n := len(loads)
	order, byCat := categorize(loads)

	var rows [][]float64
	var names []string
	var dom []material.LoadCategory
	k := 0

	for _, cat := range order {
		if cat == material.CatEgenlast {
			row := newRow(n)
			for _, c := range byCat[cat] {
				row[c] = 1
			}
			k++
			rows = append(rows, row)
			names = append(names, combName(k, "Egenlast alene - karakteristisk"))
			dom = append(dom, cat)
			continue
		}

		cols := byCat[cat]
		for mask := 1; mask < (1 << len(cols)); mask++ {
			row := newRow(n)
			for _, c := range byCat[material.CatEgenlast] {
				row[c] = 1
			}
			for bit, c := range cols {
				if mask&(1<<bit) != 0 {
					row[c] = 1
				}
			}
			k++
			rows = append(rows, row)
			names = append(names, combName(k, string(cat)+" alene - karakteristisk"))
			dom = append(dom, cat)
		}
	}

	return buildSet(SLS, n, rows, names, dom), nil
}
