package ec3

// RuleResult is one named rule's utilization ratio and the governing
// demand/capacity pair behind it, for reporting.
type RuleResult struct {
	Name     string
	UR       float64
	Demand   float64
	Capacity float64
}

// Evaluate runs every ULS/ALS rule against one combination row's sampled
// section forces for a single member and returns them in spec order:
// shear, bending, compression, crippling.
func Evaluate(in Inputs, n, v, m []float64) ([]RuleResult, error) {
	shearUR, vEd, vcRd, err := Shear(in, v)
	if err != nil {
		return nil, err
	}
	bendUR, mEd, mcRd := Bending(in, m, shearUR, vEd, vcRd)
	compUR, nEd, nbRd, _ := Compression(in, n)
	cripUR, rEd, rwRd := Crippling(in, v)

	return []RuleResult{
		{"Forskydning (6.2.6)", shearUR, vEd, vcRd},
		{"Bøjningsmoment (6.2.5)", bendUR, mEd, mcRd},
		{"Søjlevirkning (6.3.1)", compUR, nEd, nbRd},
		{"Lokale tværgående kræfter (6.1.7)", cripUR, rEd, rwRd},
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
