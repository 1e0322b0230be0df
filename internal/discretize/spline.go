package discretize

import (
	"gonum.org/v1/gonum/interp"

	"github.com/HJ-nkh/frameanalysis/internal/ferr"
	"github.com/HJ-nkh/frameanalysis/internal/geometry"
	"github.com/HJ-nkh/frameanalysis/internal/loadassembler"
)

// Forces discretizes N, V, M for every member and every single load into
// the flat (#singleLoads x #samples_total) matrices of spec.md §4.4.
func Forces(frame *geometry.Frame, topo []MemberTopology, loads []loadassembler.SingleLoad) (n, v, m [][]float64, err error) {
	total := 0
	for _, t := range topo {
		total += t.NSamples
	}

	n = make([][]float64, len(loads))
	v = make([][]float64, len(loads))
	m = make([][]float64, len(loads))

	for li, load := range loads {
		rowN := make([]float64, 0, total)
		rowV := make([]float64, 0, total)
		rowM := make([]float64, 0, total)

		for mi, mem := range frame.Members {
			t := topo[mi]
			nSub := t.NSub

			nodalN := make([]float64, nSub+1)
			nodalV := make([]float64, nSub+1)
			nodalM := make([]float64, nSub+1)
			for k, eIdx := range mem.Elements {
				startEndN := load.Result.ElementN[eIdx]
				startEndV := load.Result.ElementV[eIdx]
				startEndM := load.Result.ElementM[eIdx]
				if k == 0 {
					nodalN[0] = startEndN[0]
					nodalV[0] = startEndV[0]
					nodalM[0] = -startEndM[0]
				}
				nodalN[k+1] = startEndN[1]
				nodalV[k+1] = startEndV[1]
				nodalM[k+1] = -startEndM[1]
			}

			sampN, err1 := splineSample(t.XLocal[:], nodalN, nSub, t.NSamples)
			sampV, err2 := splineSample(t.XLocal[:], nodalV, nSub, t.NSamples)
			sampM, err3 := splineSample(t.XLocal[:], nodalM, nSub, t.NSamples)
			if err1 != nil {
				return nil, nil, nil, err1
			}
			if err2 != nil {
				return nil, nil, nil, err2
			}
			if err3 != nil {
				return nil, nil, nil, err3
			}
			rowN = append(rowN, sampN...)
			rowV = append(rowV, sampV...)
			rowM = append(rowM, sampM...)
		}
		n[li] = rowN
		v[li] = rowV
		m[li] = rowM
	}
	return n, v, m, nil
}

// splineSample fits a not-a-knot cubic spline through the
// nSub+1 nodal values at the member's element-endpoint axial positions,
// then samples it at the shared PlotDiscr-per-sub-element grid.
func splineSample(xLocal []float64, nodal []float64, nSub, nSamples int) ([]float64, error) {
	knots := make([]float64, nSub+1)
	stride := (nSamples - 1) / nSub
	for i := range knots {
		knots[i] = xLocal[i*stride]
	}

	var pc interp.NotAKnotCubic
	if err := pc.Fit(knots, nodal); err != nil {
		return nil, ferr.Wrap(ferr.NumericalIssue, err, "spline fit failed")
	}

	out := make([]float64, nSamples)
	for s := 0; s < nSamples; s++ {
		out[s] = clamp(pc.Predict(xLocal[s]))
	}
	return out, nil
}
