// Package discretize refines per-element section forces into a dense
// per-member sample grid via cubic-spline interpolation, and reconstructs
// deflections via cubic-Hermite shape functions, per spec.md §4.4.
package discretize

import (
	"math"

	"github.com/HJ-nkh/frameanalysis/internal/geometry"
)

// PlotDiscr is the fixed number of sample intervals per sub-element.
const PlotDiscr = 10

// Zero clamp for spurious denormal-driven sign flips (spec.md §4.4.3).
const zeroClamp = 1e-6

// MemberTopology is the per-member sample-grid layout, shared across
// every single load.
type MemberTopology struct {
	MemberIndex int
	NSub        int       // number of elements in the member
	NSamples    int        // 10*NSub + 1
	XLocal      []float64  // member-local axial coordinate per sample, length NSamples
	XGlobal     [][2]float64 // global (x,y) per sample, undeformed
	AuBeam      [2][2]float64 // rotation global -> member-local axes (chord)
	X1Beam      [2]float64    // chord origin (first node coordinate)
}

// Quantities holds the discretized (#singleLoads x #samples_total)
// matrices for one quantity across the whole frame (all members
// concatenated in member order).
type Quantities struct {
	N       [][]float64
	V       [][]float64
	M       [][]float64
	Ux      [][]float64
	Uy      [][]float64
	ULocalY [][]float64
}

func clamp(v float64) float64 {
	if v > -zeroClamp && v < zeroClamp {
		return 0
	}
	return v
}

// BuildTopology computes the shared sample grid for every member, used
// both to discretize section forces and to place deflection samples.
func BuildTopology(frame *geometry.Frame) []MemberTopology {
	topo := make([]MemberTopology, len(frame.Members))
	for mi, m := range frame.Members {
		nSub := len(m.Elements)
		nSamples := PlotDiscr*nSub + 1
		cum := make([]float64, nSub+1)
		for i, eIdx := range m.Elements {
			cum[i+1] = cum[i] + frame.Elements[eIdx].Length(frame.Nodes)
		}
		total := cum[nSub]

		xLocal := make([]float64, nSamples)
		xGlobal := make([][2]float64, nSamples)

		first := frame.Nodes[m.NodeSeq[0]]
		last := frame.Nodes[m.NodeSeq[len(m.NodeSeq)-1]]
		dx, dy := last.X-first.X, last.Y-first.Y
		chord := math.Hypot(dx, dy)
		cx, cy := 0.0, 0.0
		if chord > 0 {
			cx, cy = dx/chord, dy/chord
		}

		for k := 0; k < nSub; k++ {
			for s := 0; s < PlotDiscr; s++ {
				sPos := cum[k] + (cum[k+1]-cum[k])*float64(s)/float64(PlotDiscr)
				idx := k*PlotDiscr + s
				xLocal[idx] = sPos
				xGlobal[idx] = [2]float64{first.X + cx*sPos, first.Y + cy*sPos}
			}
		}
		xLocal[nSamples-1] = total
		xGlobal[nSamples-1] = [2]float64{first.X + cx*total, first.Y + cy*total}

		topo[mi] = MemberTopology{
			MemberIndex: mi,
			NSub:        nSub,
			NSamples:    nSamples,
			XLocal:      xLocal,
			XGlobal:     xGlobal,
			AuBeam:      [2][2]float64{{cx, cy}, {-cy, cx}},
			X1Beam:      [2]float64{first.X, first.Y},
		}
	}
	return topo
}

