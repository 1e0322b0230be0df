package analysis

import (
	"github.com/HJ-nkh/frameanalysis/internal/aggregate"
	"github.com/HJ-nkh/frameanalysis/internal/combination"
	"github.com/HJ-nkh/frameanalysis/internal/discretize"
	"github.com/HJ-nkh/frameanalysis/internal/entities"
	"github.com/HJ-nkh/frameanalysis/internal/geometry"
	"github.com/HJ-nkh/frameanalysis/internal/loadassembler"
)

// Run executes the full pipeline against one entity set and project
// settings, returning the §6 result structure or the first typed error
// encountered (spec.md §7's fail-fast policy).
func Run(es *entities.EntitySet, settings entities.Settings) (*Result, error) {
	frame, err := geometry.Build(es)
	if err != nil {
		return nil, err
	}

	loads, err := loadassembler.Assemble(frame, settings.SelfweightOnOff)
	if err != nil {
		return nil, err
	}

	topo := discretize.BuildTopology(frame)
	n, v, m, err := discretize.Forces(frame, topo, loads)
	if err != nil {
		return nil, err
	}
	ux, uy, uLocalY := discretize.Deflections(frame, topo, loads)
	reactions := reactionMatrix(loads)

	uls, err := combination.BuildULS(loads, settings)
	if err != nil {
		return nil, err
	}
	sls, err := combination.BuildSLS(loads)
	if err != nil {
		return nil, err
	}
	als, err := combination.BuildALS(loads)
	if err != nil {
		return nil, err
	}

	ulsRes := uls.Materialize(n, v, m, ux, uy, uLocalY, reactions)
	slsRes := sls.Materialize(n, v, m, ux, uy, uLocalY, reactions)
	alsRes := als.Materialize(n, v, m, ux, uy, uLocalY, reactions)

	offsets := sampleOffsets(topo)

	femModel := buildFEMModel(frame, topo)
	forces := map[string]LSForces{
		"ULS": buildLSForces(uls, ulsRes),
		"SLS": buildLSForces(sls, slsRes),
		"ALS": buildLSForces(als, alsRes),
	}

	urs := make([]MemberUR, 0, len(frame.Members))
	for mi, mem := range frame.Members {
		start, count := offsets[mi], topo[mi].NSamples
		mu, err := evaluateMember(frame, mem, start, count, settings,
			uls, sls, als, ulsRes, slsRes, alsRes)
		if err != nil {
			return nil, err
		}
		urs = append(urs, mu)
	}

	return &Result{FEMModel: femModel, Forces: forces, UR: urs}, nil
}

func sampleOffsets(topo []discretize.MemberTopology) []int {
	out := make([]int, len(topo))
	acc := 0
	for i, t := range topo {
		out[i] = acc
		acc += t.NSamples
	}
	return out
}

func reactionMatrix(loads []loadassembler.SingleLoad) [][]float64 {
	out := make([][]float64, len(loads))
	for i, l := range loads {
		out[i] = l.Result.Reactions
	}
	return out
}

func slice(row []float64, start, count int) []float64 {
	return row[start : start+count]
}

func buildFEMModel(frame *geometry.Frame, topo []discretize.MemberTopology) FEMModel {
	offsets := sampleOffsets(topo)
	members := make(map[string]DiscretizedMember, len(frame.Members))
	for i, mem := range frame.Members {
		members[mem.ID] = DiscretizedMember{
			ID:       mem.ID,
			Name:     mem.Props.Name,
			Type:     mem.Type,
			L:        mem.Length,
			Elements: mem.Elements,
			Offset:   offsets[i],
			Samples:  topo[i].NSamples,
			XLocal:   topo[i].XLocal,
		}
	}
	return FEMModel{Members: members}
}

func buildLSForces(set *combination.Set, res *combination.Results) LSForces {
	out := LSForces{
		N: map[string][]float64{}, V: map[string][]float64{}, M: map[string][]float64{},
		Ux: map[string][]float64{}, Uy: map[string][]float64{}, ULocalY: map[string][]float64{},
		Reactions: map[string][]float64{},
	}
	for i, name := range set.Names {
		out.N[name] = res.N[i]
		out.V[name] = res.V[i]
		out.M[name] = res.M[i]
		out.Ux[name] = res.Ux[i]
		out.Uy[name] = res.Uy[i]
		out.ULocalY[name] = res.ULocY[i]
		out.Reactions[name] = res.Reactions[i]
	}
	return out
}

func coeffRows(set *combination.Set) map[string][]float64 {
	out := make(map[string][]float64, len(set.Names))
	for i, name := range set.Names {
		out[name] = set.Row(i)
	}
	return out
}

// assembleMemberUR runs ReportSet/GoverningRules/ReducedMatrix for one
// limit state and folds the outcome into the per-member report.
func assembleMemberUR(mu *MemberUR, lsName string, set *combination.Set, rules []aggregate.RuleUR) {
	report := aggregate.ReportSet(set, map[string][]aggregate.RuleUR{"self": rules})
	names := make([]string, len(report))
	for i, c := range report {
		names[i] = set.Names[c]
	}
	governing := aggregate.GoverningRules(set, rules, report)

	ruleNames := make([]string, len(rules))
	critical := map[string]string{}
	for i, r := range rules {
		ruleNames[i] = r.Rule
	}
	for _, g := range governing {
		critical[g.Rule] = g.CombinationName
	}

	mu.RuleNames[lsName] = ruleNames
	mu.LoadCombNames[lsName] = names
	mu.URMatrix[lsName] = aggregate.ReducedMatrix(rules, report)
	mu.CriticalComb[lsName] = critical
	mu.LoadCombCoeffRow[lsName] = coeffRows(set)
}

func newMemberUR(id string) MemberUR {
	return MemberUR{
		MemberID:         id,
		RuleNames:        map[string][]string{},
		LoadCombNames:    map[string][]string{},
		URMatrix:         map[string][][]float64{},
		CriticalComb:     map[string]map[string]string{},
		LoadCombCoeffRow: map[string]map[string][]float64{},
	}
}
