package analysis

import (
	"github.com/HJ-nkh/frameanalysis/internal/aggregate"
	"github.com/HJ-nkh/frameanalysis/internal/checks/ec3"
	"github.com/HJ-nkh/frameanalysis/internal/checks/ec5"
	"github.com/HJ-nkh/frameanalysis/internal/checks/ec6"
	"github.com/HJ-nkh/frameanalysis/internal/combination"
	"github.com/HJ-nkh/frameanalysis/internal/entities"
	"github.com/HJ-nkh/frameanalysis/internal/geometry"
	"github.com/HJ-nkh/frameanalysis/internal/material"
)

// evaluateMember runs the member's material-specific code checker across
// every combination row of every limit state and folds the result
// through the ResultAggregator (package aggregate).
func evaluateMember(frame *geometry.Frame, mem geometry.Member, start, count int, settings entities.Settings,
	uls, sls, als *combination.Set, ulsRes, slsRes, alsRes *combination.Results) (MemberUR, error) {

	mu := newMemberUR(mem.ID)

	switch mem.Type {
	case entities.Steel:
		return evaluateSteelMember(mu, mem, start, count, settings, uls, sls, als, ulsRes, slsRes, alsRes)
	case entities.Wood:
		return evaluateTimberMember(mu, mem, start, count, settings, uls, sls, als, ulsRes, slsRes, alsRes)
	case entities.Masonry:
		return evaluateMasonryMember(mu, mem, start, count, uls, als, ulsRes, alsRes)
	default:
		return mu, nil
	}
}

func strengthRows(res *combination.Results, start, count int) (n, v, m [][]float64) {
	rows := len(res.N)
	n = make([][]float64, rows)
	v = make([][]float64, rows)
	m = make([][]float64, rows)
	for r := 0; r < rows; r++ {
		n[r] = slice(res.N[r], start, count)
		v[r] = slice(res.V[r], start, count)
		m[r] = slice(res.M[r], start, count)
	}
	return n, v, m
}

func evaluateSteelMember(mu MemberUR, mem geometry.Member, start, count int, settings entities.Settings,
	uls, sls, als *combination.Set, ulsRes, slsRes, alsRes *combination.Results) (MemberUR, error) {

	in, err := ec3.Prepare(mem.Props, mem.Length, settings.RobustFactorOnOff, float64(settings.DefCritSteel))
	if err != nil {
		return mu, err
	}

	runStrength := func(res *combination.Results) ([]aggregate.RuleUR, error) {
		n, v, m := strengthRows(res, start, count)
		var rules []aggregate.RuleUR
		for r := range n {
			results, err := ec3.Evaluate(in, n[r], v[r], m[r])
			if err != nil {
				continue // spec.md §7: skip an unevaluable rule for one combination, don't fail the run
			}
			if rules == nil {
				rules = make([]aggregate.RuleUR, len(results))
				for i, rr := range results {
					rules[i] = aggregate.RuleUR{Rule: rr.Name, Values: make([]float64, len(n))}
				}
			}
			for i, rr := range results {
				rules[i].Values[r] = rr.UR
			}
		}
		return rules, nil
	}

	ulsRules, err := runStrength(ulsRes)
	if err != nil {
		return mu, err
	}
	assembleMemberUR(&mu, "ULS", uls, ulsRules)

	alsRules, err := runStrength(alsRes)
	if err != nil {
		return mu, err
	}
	assembleMemberUR(&mu, "ALS", als, alsRules)

	if len(alsRules) >= 3 {
		govBending := maxOf(alsRules[1].Values)
		govShear := maxOf(alsRules[0].Values)
		govComp := maxOf(alsRules[2].Values)
		governingUR := maxOf([]float64{govBending, govShear, govComp})
		temp := ec3.CriticalTemperature(governingUR)
		mu.FireCriticalTemperatureC = &temp
	}

	urDef := make([]float64, len(slsRes.ULocY))
	for r := range slsRes.ULocY {
		uLocSlice := slice(slsRes.ULocY[r], start, count)
		uxSlice := slice(slsRes.Ux[r], start, count)
		uySlice := slice(slsRes.Uy[r], start, count)
		ur, _, _ := ec3.Deflection(in, uLocSlice, uxSlice, uySlice)
		urDef[r] = ur
	}
	assembleMemberUR(&mu, "SLS", sls, []aggregate.RuleUR{{Rule: "Deformation", Values: urDef}})

	return mu, nil
}

func evaluateTimberMember(mu MemberUR, mem geometry.Member, start, count int, settings entities.Settings,
	uls, sls, als *combination.Set, ulsRes, slsRes, alsRes *combination.Results) (MemberUR, error) {

	in, err := ec5.Prepare(mem.Props, mem.Length, settings.RobustFactorOnOff)
	if err != nil {
		return mu, err
	}

	runStrength := func(res *combination.Results) []aggregate.RuleUR {
		n, v, m := strengthRows(res, start, count)
		var rules []aggregate.RuleUR
		for r := range n {
			results := ec5.Evaluate(in, n[r], m[r], v[r])
			if rules == nil {
				rules = make([]aggregate.RuleUR, len(results))
				for i, res := range results {
					rules[i] = aggregate.RuleUR{Rule: res.Name, Values: make([]float64, len(n))}
				}
			}
			for i, res := range results {
				rules[i].Values[r] = res.UR
			}
		}
		return rules
	}

	assembleMemberUR(&mu, "ULS", uls, runStrength(ulsRes))
	assembleMemberUR(&mu, "ALS", als, runStrength(alsRes))

	urInst := make([]float64, len(slsRes.Ux))
	urFin := make([]float64, len(slsRes.Ux))
	for r := range slsRes.Ux {
		uxSlice := slice(slsRes.Ux[r], start, count)
		uySlice := slice(slsRes.Uy[r], start, count)
		reqInst := instantRequirement(mem.Props, sls.DominantCategory[r])
		if reqInst == 0 {
			reqInst = float64(settings.DefCritWood1)
		}
		reqFin := float64(settings.DefCritWood2)
		if mem.Props.DeflectionRequirementFinished != nil {
			reqFin = *mem.Props.DeflectionRequirementFinished
		}
		if reqInst > 0 {
			ui, _, _, _ := ec5.Deflection(in, uxSlice, uySlice, reqInst)
			urInst[r] = ui
		}
		if reqFin > 0 {
			_, uf, _, _ := ec5.Deflection(in, uxSlice, uySlice, reqFin)
			urFin[r] = uf
		}
	}
	assembleMemberUR(&mu, "SLS", sls, []aggregate.RuleUR{
		{Rule: "Deformation, initial", Values: urInst},
		{Rule: "Deformation, endelig", Values: urFin},
	})

	return mu, nil
}

// instantRequirement selects deflectionRequirementInstant{Snow,Wind,Live}
// by an SLS row's dominant category, per SPEC_FULL.md's resolved Open
// Question 1.
func instantRequirement(props entities.MemberProps, dom material.LoadCategory) float64 {
	var p *float64
	switch dom {
	case material.CatSnelast:
		p = props.DeflectionRequirementInstantSnow
	case material.CatVindlast:
		p = props.DeflectionRequirementInstantWind
	case material.CatNyttelast:
		p = props.DeflectionRequirementInstantLive
	default:
		p = props.DeflectionRequirementInstantLive
	}
	if p == nil {
		return 0
	}
	return *p
}

func evaluateMasonryMember(mu MemberUR, mem geometry.Member, start, count int,
	uls, als *combination.Set, ulsRes, alsRes *combination.Results) (MemberUR, error) {

	in, err := ec6.Prepare(mem.Props)
	if err != nil {
		return mu, err
	}

	run := func(res *combination.Results) []aggregate.RuleUR {
		n, _, m := strengthRows(res, start, count)
		var rules []aggregate.RuleUR
		for r := range n {
			results, err := ec6.Evaluate(in, n[r], m[r])
			if err != nil {
				continue
			}
			if rules == nil {
				rules = make([]aggregate.RuleUR, len(results))
				for i, res := range results {
					rules[i] = aggregate.RuleUR{Rule: res.Name, Values: make([]float64, len(n))}
				}
			}
			for i, res := range results {
				rules[i].Values[r] = res.UR
			}
		}
		return rules
	}

	assembleMemberUR(&mu, "ULS", uls, run(ulsRes))
	assembleMemberUR(&mu, "ALS", als, run(alsRes))
	return mu, nil
}

func maxOf(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if x > m {
			m = x
		}
	}
	return m
}
