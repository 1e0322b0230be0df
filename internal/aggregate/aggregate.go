// Package aggregate implements the ResultAggregator of spec.md §4.9: it
// reduces the full per-member, per-rule utilization matrix down to a
// minimal set of governing combinations shared across every member, and
// reports which combination governs each rule.
package aggregate

import (
	"sort"

	"github.com/HJ-nkh/frameanalysis/internal/combination"
	"github.com/HJ-nkh/frameanalysis/internal/material"
)

// RuleUR is one named rule's utilization ratio across every combination
// of one limit-state set, in the set's row order.
type RuleUR struct {
	Rule   string
	Values []float64
}

// topColumns selects the combination column(s) a single rule row should
// retain: the single governing combination for ULS/ALS, or the
// best-per-dominant-category combinations for SLS (spec.md §4.9 step 2).
func topColumns(set *combination.Set, values []float64) []int {
	if set.LimitState != combination.SLS {
		return []int{argmax(values)}
	}

	best := map[material.LoadCategory]int{}
	for i, v := range values {
		cat := set.DominantCategory[i]
		cur, ok := best[cat]
		if !ok || v > values[cur] {
			best[cat] = i
		}
	}
	out := make([]int, 0, len(best))
	for _, idx := range best {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

func argmax(values []float64) int {
	best := 0
	for i, v := range values[1:] {
		if v > values[best] {
			best = i + 1
		}
	}
	return best
}

// ReportSet computes the minimal union of combination columns worth
// reporting across every member's rules (spec.md §4.9 step 3).
func ReportSet(set *combination.Set, perMember map[string][]RuleUR) []int {
	selected := map[int]bool{}
	for _, rules := range perMember {
		for _, rule := range rules {
			for _, c := range topColumns(set, rule.Values) {
				selected[c] = true
			}
		}
	}
	out := make([]int, 0, len(selected))
	for c := range selected {
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}

// Governing is the argmax of one rule's UR restricted to the reported
// combination columns, naming the governing combination (spec.md §4.9
// step 4).
type Governing struct {
	Rule            string
	CombinationName string
	UR              float64
}

// GoverningRules computes the governing combination for each rule of a
// member, restricted to the shared report set.
func GoverningRules(set *combination.Set, rules []RuleUR, reportCols []int) []Governing {
	out := make([]Governing, 0, len(rules))
	for _, rule := range rules {
		best := reportCols[0]
		for _, c := range reportCols[1:] {
			if rule.Values[c] > rule.Values[best] {
				best = c
			}
		}
		out = append(out, Governing{
			Rule:            rule.Rule,
			CombinationName: set.Names[best],
			UR:              rule.Values[best],
		})
	}
	return out
}

// ReducedMatrix restricts a member's UR matrix to the reported columns,
// preserving rule row order, for display/export.
func ReducedMatrix(rules []RuleUR, reportCols []int) [][]float64 {
	out := make([][]float64, len(rules))
	for i, rule := range rules {
		row := make([]float64, len(reportCols))
		for j, c := range reportCols {
			row[j] = rule.Values[c]
		}
		out[i] = row
	}
	return out
}
