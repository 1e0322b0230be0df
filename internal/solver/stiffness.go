// Package solver implements the linear elastic 2D frame solve of
// spec.md §4.2: element stiffness and transformation, global assembly,
// boundary conditions, direct solve, and internal-force recovery.
package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/HJ-nkh/frameanalysis/internal/geometry"
)

// localStiffness builds the 6x6 Euler-Bernoulli beam-column stiffness in
// local axes, ordered [u1, v1, th1, u2, v2, th2]: EA/L axial terms at
// (0,0)/(0,3)/(3,0)/(3,3), and the standard 12EI/L^3, 6EI/L^2, 4EI/L,
// 2EI/L bending submatrix at indices (1,2,4,5).
func localStiffness(e, a, i, l float64) *mat.Dense {
	k := mat.NewDense(6, 6, nil)

	ea := e * a / l
	k.Set(0, 0, ea)
	k.Set(0, 3, -ea)
	k.Set(3, 0, -ea)
	k.Set(3, 3, ea)

	ei := e * i
	l2 := l * l
	l3 := l2 * l

	v1, th1, v2, th2 := 1, 2, 4, 5
	bend := [4][4]float64{
		{12 * ei / l3, 6 * ei / l2, -12 * ei / l3, 6 * ei / l2},
		{6 * ei / l2, 4 * ei / l, -6 * ei / l2, 2 * ei / l},
		{-12 * ei / l3, -6 * ei / l2, 12 * ei / l3, -6 * ei / l2},
		{6 * ei / l2, 2 * ei / l, -6 * ei / l2, 4 * ei / l},
	}
	idx := [4]int{v1, th1, v2, th2}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			k.Set(idx[r], idx[c], bend[r][c])
		}
	}
	return k
}

// transformation builds the 6x6 block-diagonal rotation A that maps
// global element DOFs [u1x,u1y,th1,u2x,u2y,th2] into local
// [axial1,transverse1,th1,axial2,transverse2,th2], from the element's
// unit chord vector.
func transformation(nodes []geometry.Node, e geometry.Element) (*mat.Dense, float64) {
	n1, n2 := nodes[e.N1], nodes[e.N2]
	dx, dy := n2.X-n1.X, n2.Y-n1.Y
	l := math.Hypot(dx, dy)
	cx, cy := dx/l, dy/l

	a := mat.NewDense(6, 6, nil)
	block := [2][2]float64{{cx, cy}, {-cy, cx}}
	for _, off := range []int{0, 3} {
		a.Set(off+0, off+0, block[0][0])
		a.Set(off+0, off+1, block[0][1])
		a.Set(off+1, off+0, block[1][0])
		a.Set(off+1, off+1, block[1][1])
	}
	a.Set(2, 2, 1)
	a.Set(5, 5, 1)
	return a, l
}
