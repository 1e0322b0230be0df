package discretize

import (
	"math"

	"github.com/HJ-nkh/frameanalysis/internal/geometry"
	"github.com/HJ-nkh/frameanalysis/internal/loadassembler"
)

// hermite evaluates the four cubic-Hermite shape functions at normalized
// position s in [0,1] over an element of length l: N1,N3 for translation
// (v1,v2), N2,N4 carrying the rotation terms (th1,th2), per spec.md §4.4.
func hermite(s, l float64) (n1, n2, n3, n4 float64) {
	s2, s3 := s*s, s*s*s
	n1 = 1 - 3*s2 + 2*s3
	n2 = l * (s - 2*s2 + s3)
	n3 = 3*s2 - 2*s3
	n4 = l * (-s2 + s3)
	return
}

// Deflections reconstructs global (u_x, u_y) and member-local u_local_y
// for every member and every single load, per spec.md §4.4.
func Deflections(frame *geometry.Frame, topo []MemberTopology, loads []loadassembler.SingleLoad) (ux, uy, uLocalY [][]float64) {
	total := 0
	for _, t := range topo {
		total += t.NSamples
	}

	ux = make([][]float64, len(loads))
	uy = make([][]float64, len(loads))
	uLocalY = make([][]float64, len(loads))

	for li, load := range loads {
		rowUx := make([]float64, 0, total)
		rowUy := make([]float64, 0, total)
		rowULocal := make([]float64, 0, total)

		for mi, mem := range frame.Members {
			t := topo[mi]
			sampUx, sampUy := sampleMemberGlobal(frame, mem, t, load.Result.Displacements)
			sampLocal := chordRelative(t, sampUx, sampUy)
			rowUx = append(rowUx, sampUx...)
			rowUy = append(rowUy, sampUy...)
			rowULocal = append(rowULocal, sampLocal...)
		}
		ux[li] = rowUx
		uy[li] = rowUy
		uLocalY[li] = rowULocal
	}
	return ux, uy, uLocalY
}

// sampleMemberGlobal evaluates the Hermite-reconstructed global
// displacement at every sample of one member for one single load.
func sampleMemberGlobal(frame *geometry.Frame, mem geometry.Member, t MemberTopology, v []float64) (ux, uy []float64) {
	ux = make([]float64, t.NSamples)
	uy = make([]float64, t.NSamples)

	for k, eIdx := range mem.Elements {
		e := frame.Elements[eIdx]
		n1, n2 := frame.Nodes[e.N1], frame.Nodes[e.N2]
		dx, dy := n2.X-n1.X, n2.Y-n1.Y
		l := math.Hypot(dx, dy)
		cx, cy := dx/l, dy/l

		// global -> local rotation for this element's own chord
		rot := func(gx, gy float64) (ax, tr float64) {
			return cx*gx + cy*gy, -cy*gx + cx*gy
		}

		dofIdx := frame.DOF[eIdx]
		g := func(i int) float64 { return v[dofIdx[i]] }
		u1a, u1t := rot(g(0), g(1))
		th1 := g(2)
		u2a, u2t := rot(g(3), g(4))
		th2 := g(5)

		for s := 0; s < PlotDiscr; s++ {
			frac := float64(s) / float64(PlotDiscr)
			axial := (1-frac)*u1a + frac*u2a
			n1h, n2h, n3h, n4h := hermite(frac, l)
			transverse := n1h*u1t + n2h*th1 + n3h*u2t + n4h*th2

			gx := cx*axial - cy*transverse
			gy := cy*axial + cx*transverse

			idx := k*PlotDiscr + s
			ux[idx] = gx
			uy[idx] = gy
		}
	}
	// final sample (end of member) reproduces the last node's nodal value
	lastElem := mem.Elements[len(mem.Elements)-1]
	dof := frame.DOF[lastElem]
	ux[len(ux)-1] = v[dof[3]]
	uy[len(uy)-1] = v[dof[4]]
	return ux, uy
}

// chordRelative subtracts the linear baseline between the member's two
// endpoint transverse (chord-frame) displacements, so u_local_y is
// exactly zero at both ends (spec.md §8 testable property 5).
func chordRelative(t MemberTopology, ux, uy []float64) []float64 {
	out := make([]float64, len(ux))
	transverse := func(i int) float64 {
		return t.AuBeam[1][0]*ux[i] + t.AuBeam[1][1]*uy[i]
	}
	d0 := transverse(0)
	d1 := transverse(len(ux) - 1)
	total := t.XLocal[len(t.XLocal)-1]
	for i := range ux {
		s := t.XLocal[i]
		baseline := d0
		if total > 0 {
			baseline = d0 + (d1-d0)*(s/total)
		}
		out[i] = clamp(transverse(i) - baseline)
	}
	return out
}
