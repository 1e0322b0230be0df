package combination

import (
	"github.com/HJ-nkh/frameanalysis/internal/entities"
	"github.com/HJ-nkh/frameanalysis/internal/loadassembler"
	"github.com/HJ-nkh/frameanalysis/internal/material"
)

// BuildULS constructs the EN 1990 6.10a/6.10b combination set, per
// spec.md §4.5.1. Each non-dead category takes its turn as the
// dominant (psi-1.0) action with every other category applied at its
// psi0 companion factor; it does not separately enumerate every subset
// of non-dead categories, so a combination with two simultaneously
// counteracting variable actions (one favourable, one unfavourable,
// both below psi0) is not produced as its own row.
func BuildULS(loads []loadassembler.SingleLoad, settings entities.Settings) (*Set, error) {
	kfi, err := material.KFi(string(settings.CC))
	if err != nil {
		return nil, err
	}
	n := len(loads)
	order, byCat := categorize(loads)

	deadCols := byCat[material.CatEgenlast]
	var nonDead []material.LoadCategory
	for _, c := range order {
		if c != material.CatEgenlast {
			nonDead = append(nonDead, c)
		}
	}

	var rows [][]float64
	var names []string
	var dom []material.LoadCategory
	k := 0

	setCols := func(row []float64, cols []int, v float64) {
		for _, c := range cols {
			row[c] = v
		}
	}

	if len(nonDead) == 0 {
		k++
		rowSup := newRow(n)
		setCols(rowSup, deadCols, material.GammaGjSup610a*kfi)
		rows = append(rows, rowSup)
		names = append(names, combName(k, "Tyngde, generelt - Ugunstig - (6.10a)"))
		dom = append(dom, material.CatEgenlast)

		k++
		rowInf := newRow(n)
		setCols(rowInf, deadCols, material.GammaGjInf610a)
		rows = append(rows, rowInf)
		names = append(names, combName(k, "Tyngde, generelt - Gunstig - (6.10a)"))
		dom = append(dom, material.CatEgenlast)

		return buildSet(ULS, n, rows, names, dom), nil
	}

	for _, d := range nonDead {
		for _, branch := range []struct {
			gamma float64
			label string
		}{
			{material.GammaGjSup610b, "Ugunstig"},
			{material.GammaGjInf610b, "Gunstig"},
		} {
			row := newRow(n)
			deadGamma := branch.gamma
			if branch.label == "Ugunstig" {
				setCols(row, deadCols, deadGamma*kfi)
			} else {
				setCols(row, deadCols, deadGamma)
			}

			alphaN := 1.0
			if d == material.CatNyttelast {
				psi0Live, err := material.Psi0(material.CatNyttelast)
				if err != nil {
					return nil, err
				}
				alphaN = material.AlphaN(settings.NLevelsAbove, psi0Live)
			}
			setCols(row, byCat[d], material.GammaQ1*alphaN*kfi)

			for _, other := range nonDead {
				if other == d {
					continue
				}
				cat := other
				if d == material.CatVindlast && other == material.CatSnelast {
					cat = material.CatSnelastDomVind
				}
				psi0, err := material.Psi0(cat)
				if err != nil {
					return nil, err
				}
				setCols(row, byCat[other], material.GammaQ1*psi0*kfi)
			}

			k++
			rows = append(rows, row)
			names = append(names, combName(k, string(d)+" dominerende - Tyngde, generelt - "+branch.label+" - (6.10b)"))
			dom = append(dom, d)
		}
	}

	return buildSet(ULS, n, rows, names, dom), nil
}
