package ec6

// RuleResult is one named rule's utilization ratio, for reporting.
type RuleResult struct {
	Name string
	UR   float64
}

// Evaluate runs both EC6 rules against one combination row's sampled
// section forces for a single masonry member.
func Evaluate(in Inputs, n, m []float64) ([]RuleResult, error) {
	urRitter, _, _, _, err := Ritter(in, n, m)
	if err != nil {
		return nil, err
	}
	urKonc, _ := ConcentratedLoad(in, n)

	return []RuleResult{
		{"Ritter N-M interaktion", urRitter},
		{"Koncentreret last - ommuring", urKonc},
	}, nil
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
