package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/HJ-nkh/frameanalysis/internal/ferr"
	"github.com/HJ-nkh/frameanalysis/internal/geometry"
)

// Result is the outcome of solving one single load case: nodal
// displacements, support reactions, and per-element local (start, end)
// section forces.
type Result struct {
	Displacements []float64
	Reactions     []float64 // parallel to frame.SupportDOFs
	ElementN      [][2]float64
	ElementV      [][2]float64
	ElementM      [][2]float64
}

type elementPrecomp struct {
	kLocal *mat.Dense
	a      *mat.Dense
	length float64
}

func precompute(frame *geometry.Frame) []elementPrecomp {
	out := make([]elementPrecomp, len(frame.Elements))
	for i, e := range frame.Elements {
		a, l := transformation(frame.Nodes, e)
		out[i] = elementPrecomp{kLocal: localStiffness(e.E, e.A, e.I, l), a: a, length: l}
	}
	return out
}

// Solve assembles K and R for one single load case, applies the support
// boundary conditions, solves K v = R, and recovers reactions and
// per-element internal forces per spec.md §4.2.
func Solve(frame *geometry.Frame, load geometry.Load) (*Result, error) {
	pre := precompute(frame)
	n := frame.NDOF

	k := mat.NewDense(n, n, nil)
	for ei, e := range frame.Elements {
		dof := frame.DOF[ei]
		kg := elementGlobalStiffness(pre[ei].kLocal, pre[ei].a)
		for r := 0; r < 6; r++ {
			for c := 0; c < 6; c++ {
				k.Set(dof[r], dof[c], k.At(dof[r], dof[c])+kg.At(r, c))
			}
		}
	}

	r := make([]float64, n)
	fFixedLocal := make([][6]float64, len(frame.Elements))

	switch load.Kind {
	case geometry.KindPoint:
		r[3*load.Node] += load.Fx
		r[3*load.Node+1] += load.Fy
	case geometry.KindMoment:
		r[3*load.Node+2] += load.M
	case geometry.KindLine, geometry.KindSelfweight:
		for _, span := range load.Spans {
			ei := span.Element
			a := pre[ei].a
			l := pre[ei].length
			p1a := a.At(0, 0)*span.Fx1 + a.At(0, 1)*span.Fy1
			p1t := a.At(1, 0)*span.Fx1 + a.At(1, 1)*span.Fy1
			p2a := a.At(0, 0)*span.Fx2 + a.At(0, 1)*span.Fy2
			p2t := a.At(1, 0)*span.Fx2 + a.At(1, 1)*span.Fy2

			fLocal := [6]float64{
				(2*p1a + p2a) * l / 6,
				(7*p1t + 3*p2t) * l / 20,
				(3*p1t + 2*p2t) * l * l / 60,
				(p1a + 2*p2a) * l / 6,
				(3*p1t + 7*p2t) * l / 20,
				-(2*p1t + 3*p2t) * l * l / 60,
			}
			for i := 0; i < 6; i++ {
				fFixedLocal[ei][i] += fLocal[i]
			}

			fGlobal := rotateTranspose(a, fLocal)
			dof := frame.DOF[ei]
			for i := 0; i < 6; i++ {
				r[dof[i]] += fGlobal[i]
			}
		}
	}

	// Save original K rows/R values at support DOFs before zeroing, for
	// reaction recovery.
	origRows := make([][]float64, len(frame.SupportDOFs))
	origR := make([]float64, len(frame.SupportDOFs))
	for i, d := range frame.SupportDOFs {
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			row[j] = k.At(d, j)
		}
		origRows[i] = row
		origR[i] = r[d]
	}

	for _, d := range frame.SupportDOFs {
		for j := 0; j < n; j++ {
			k.Set(d, j, 0)
			k.Set(j, d, 0)
		}
		k.Set(d, d, 1)
		r[d] = 0
	}

	rVec := mat.NewVecDense(n, r)
	var vVec mat.VecDense
	if err := vVec.SolveVec(k, rVec); err != nil {
		return nil, ferr.Wrap(ferr.UnderDetermined, err, "global stiffness matrix is singular after applying supports")
	}
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		v[i] = vVec.AtVec(i)
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return nil, ferr.New(ferr.NumericalIssue, "non-finite displacement at dof %d", i)
		}
	}

	reactions := make([]float64, len(frame.SupportDOFs))
	for i, row := range origRows {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += row[j] * v[j]
		}
		reactions[i] = sum - origR[i]
	}

	nElem, vElem, mElem := recoverElementForces(frame, pre, v, fFixedLocal)

	return &Result{
		Displacements: v,
		Reactions:     reactions,
		ElementN:      nElem,
		ElementV:      vElem,
		ElementM:      mElem,
	}, nil
}

func elementGlobalStiffness(kLocal, a *mat.Dense) *mat.Dense {
	var ka, kg mat.Dense
	ka.Mul(kLocal, a)
	kg.Mul(a.T(), &ka)
	return &kg
}

func rotateTranspose(a *mat.Dense, local [6]float64) [6]float64 {
	lv := mat.NewVecDense(6, local[:])
	var gv mat.VecDense
	gv.MulVec(a.T(), lv)
	var out [6]float64
	for i := 0; i < 6; i++ {
		out[i] = gv.AtVec(i)
	}
	return out
}

func recoverElementForces(frame *geometry.Frame, pre []elementPrecomp, v []float64, fFixedLocal [][6]float64) ([][2]float64, [][2]float64, [][2]float64) {
	nElem := make([][2]float64, len(frame.Elements))
	vElem := make([][2]float64, len(frame.Elements))
	mElem := make([][2]float64, len(frame.Elements))

	for ei := range frame.Elements {
		dof := frame.DOF[ei]
		vGlobal := make([]float64, 6)
		for i := 0; i < 6; i++ {
			vGlobal[i] = v[dof[i]]
		}
		vGlobalVec := mat.NewVecDense(6, vGlobal)
		var vLocal mat.VecDense
		vLocal.MulVec(pre[ei].a, vGlobalVec)

		var rVec mat.VecDense
		rVec.MulVec(pre[ei].kLocal, &vLocal)

		var r [6]float64
		for i := 0; i < 6; i++ {
			r[i] = rVec.AtVec(i) - fFixedLocal[ei][i]
		}

		nElem[ei] = [2]float64{-r[0], r[3]}
		vElem[ei] = [2]float64{r[1], -r[4]}
		mElem[ei] = [2]float64{-r[2], r[5]}
	}
	return nElem, vElem, mElem
}
