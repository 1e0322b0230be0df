package combination

import "gonum.org/v1/gonum/mat"

// Results holds one limit state's combination-level quantities, indexed
// [combination][sample], per spec.md §4.5.4.
type Results struct {
	N, V, M       [][]float64
	Ux, Uy, ULocY [][]float64
	Reactions     [][]float64
}

// Materialize computes Q_comb = C * Q for every quantity, where Q is one
// of the per-single-load (#singleLoads x #samples) matrices produced by
// the Discretizer.
func (s *Set) Materialize(n, v, m, ux, uy, uLocY, reactions [][]float64) *Results {
	return &Results{
		N:         matMul(s.C, n),
		V:         matMul(s.C, v),
		M:         matMul(s.C, m),
		Ux:        matMul(s.C, ux),
		Uy:        matMul(s.C, uy),
		ULocY:     matMul(s.C, uLocY),
		Reactions: matMul(s.C, reactions),
	}
}

// matMul computes C (rows x nLoads) * Q (nLoads x nSamples) and returns
// a plain [][]float64 of shape (rows x nSamples).
func matMul(c *mat.Dense, q [][]float64) [][]float64 {
	if len(q) == 0 {
		return nil
	}
	nLoads := len(q)
	nSamples := len(q[0])

	qd := mat.NewDense(nLoads, nSamples, nil)
	for i, row := range q {
		qd.SetRow(i, row)
	}

	rows, _ := c.Dims()
	var out mat.Dense
	out.Mul(c, qd)

	res := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		res[i] = append([]float64(nil), out.RawRowView(i)...)
	}
	return res
}
