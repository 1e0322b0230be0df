// Package analysis orchestrates the full pipeline of spec.md §2-4:
// GeometryBuilder -> FrameSolver/LoadAssembler -> Discretizer ->
// CombinationEngine -> CodeCheckers -> ResultAggregator, and exposes the
// §6 external result structure.
package analysis

import "github.com/HJ-nkh/frameanalysis/internal/entities"

// DiscretizedMember is the FEMModel snapshot of one member, per spec.md
// §6.
type DiscretizedMember struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Type     entities.MemberType `json:"type"`
	L        float64             `json:"l"`
	Elements []int               `json:"elementIndexGroup"`

	// Offset is this member's starting index into every flattened
	// per-combination force/deflection array in Forces, and Samples is
	// how many of that array's entries belong to it. Consumers outside
	// this package (internal/report) need both to slice a single
	// member's series out of the flattened arrays.
	Offset  int       `json:"offset"`
	Samples int       `json:"samples"`
	XLocal  []float64 `json:"xDiscr"` // sample-grid local coordinates, per spec.md §6's xDiscr field
}

// FEMModel is the discretized-frame snapshot returned alongside the
// combination results, per spec.md §6.
type FEMModel struct {
	Members map[string]DiscretizedMember `json:"members"`
}

// LSForces holds every combination's quantity vectors for one limit
// state, keyed by combination name, per spec.md §6's "forces" field.
type LSForces struct {
	N         map[string][]float64 `json:"n"`
	V         map[string][]float64 `json:"v"`
	M         map[string][]float64 `json:"m"`
	Ux        map[string][]float64 `json:"ux"`
	Uy        map[string][]float64 `json:"uy"`
	ULocalY   map[string][]float64 `json:"uLocalY"`
	Reactions map[string][]float64 `json:"reactions"`
}

// MemberUR is the per-member, per-limit-state utilization report, per
// spec.md §6's "UR" field and §4.9's ResultAggregator.
type MemberUR struct {
	MemberID string `json:"memberId"`

	RuleNames        map[string][]string            `json:"ruleNames"`        // LS -> rule names in row order
	LoadCombNames    map[string][]string             `json:"loadCombNames"`    // LS -> reported combination names
	URMatrix         map[string][][]float64           `json:"urMatrix"`        // LS -> reduced (#rules x #reportedCombs)
	CriticalComb     map[string]map[string]string     `json:"criticalComb"`   // LS -> rule -> governing combination name
	LoadCombCoeffRow map[string]map[string][]float64  `json:"loadCombCoeffRow"` // LS -> combination name -> coefficient row

	// FireCriticalTemperatureC is the EC3 ALS report-only critical steel
	// temperature (degrees C) of SPEC_FULL.md's resolved Open Question 3;
	// nil for non-steel members.
	FireCriticalTemperatureC *float64 `json:"fireCriticalTemperatureC,omitempty"`
}

// Result is the full external output of one analysis run, per spec.md
// §6.
type Result struct {
	FEMModel FEMModel             `json:"femModel"`
	Forces   map[string]LSForces  `json:"forces"` // "ULS"/"SLS"/"ALS"
	UR       []MemberUR           `json:"ur"`
}
