package ec5

// RuleResult is one named rule's utilization ratio, for reporting.
type RuleResult struct {
	Name string
	UR   float64
}

// Evaluate runs the strength rules of spec.md §4.7 against one
// combination row's sampled section forces for a single member.
func Evaluate(in Inputs, n, m, v []float64) []RuleResult {
	urT, _, _ := Tension(in, n)
	urC, _, _ := Compression(in, n)
	urM, _, _ := Bending(in, m)
	urV, _, _ := Shear(in, v)
	urTM := BendingAndTension(in, n, m)
	urCM := BendingAndCompression(in, n, m)
	urStability, _, _ := ColumnStability(in, n, m)

	return []RuleResult{
		{"Træk parallelt med fibrene (6.1.2)", urT},
		{"Tryk parallelt med fibrene (6.1.4)", urC},
		{"Bøjning (6.1.6)", urM},
		{"Forskydning (6.1.7)", urV},
		{"Kombineret bøjning og træk (6.2.3)", urTM},
		{"Kombineret bøjning og tryk (6.2.4)", urCM},
		{"Søjlestabilitet (6.3.2)", urStability},
	}
}

// Governing returns the rule with the largest utilization ratio.
func Governing(results []RuleResult) RuleResult {
	best := results[0]
	for _, r := range results[1:] {
		if r.UR > best.UR {
			best = r
		}
	}
	return best
}
