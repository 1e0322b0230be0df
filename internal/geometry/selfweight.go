package geometry

import "github.com/HJ-nkh/frameanalysis/internal/material"

// Selfweight expands the synthetic selfweight load declaration of
// spec.md §3 into one LineSpan per element of every member that has
// selfweight enabled: a uniform vertical load of rho*A*g.
func Selfweight(frame *Frame) Load {
	var spans []LineSpan
	for _, m := range frame.Members {
		if !m.Props.SelfWeightEnabled {
			continue
		}
		for _, eIdx := range m.Elements {
			e := frame.Elements[eIdx]
			w := e.Rho * e.A * material.GravityAccel
			spans = append(spans, LineSpan{Element: eIdx, Fx1: 0, Fy1: w, Fx2: 0, Fy2: w})
		}
	}
	return Load{Kind: KindSelfweight, Name: "selfweight", Spans: spans}
}
