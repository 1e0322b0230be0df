// Package report renders an analysis.Result for a terminal or an image
// file. It is a pure consumer of internal/analysis: the analysis core
// never imports it, mirroring the teacher's diagram package sitting
// downstream of beam/section.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/HJ-nkh/frameanalysis/internal/analysis"
	"github.com/guptarohit/asciigraph"
)

// Summary renders one box per member per limit state, listing every
// rule's governing combination and UR, in the teacher's box-drawing
// style (diagram.DrawSummaryBox).
func Summary(res *analysis.Result) string {
	var sb strings.Builder
	for _, mu := range res.UR {
		lsNames := make([]string, 0, len(mu.RuleNames))
		for ls := range mu.RuleNames {
			lsNames = append(lsNames, ls)
		}
		sort.Strings(lsNames)

		lines := make([]string, 0)
		for _, ls := range lsNames {
			rules := mu.RuleNames[ls]
			for i, rule := range rules {
				comb := mu.CriticalComb[ls][rule]
				ur := 0.0
				if cols := mu.LoadCombNames[ls]; len(cols) > 0 {
					for c, name := range cols {
						if name == comb && i < len(mu.URMatrix[ls]) && c < len(mu.URMatrix[ls][i]) {
							ur = mu.URMatrix[ls][i][c]
						}
					}
				}
				status := "OK"
				if ur > 1.0 {
					status = "FAIL"
				}
				lines = append(lines, fmt.Sprintf("[%s] %-30s UR=%.3f (%s)  %s", ls, rule, ur, comb, status))
			}
		}
		if mu.FireCriticalTemperatureC != nil {
			lines = append(lines, fmt.Sprintf("[ALS] critical steel temperature: %.0f C", *mu.FireCriticalTemperatureC))
		}

		sb.WriteString(DrawSummaryBox(fmt.Sprintf("Member %s", mu.MemberID), lines))
		sb.WriteString("\n")
	}
	return sb.String()
}

// DrawSummaryBox is adapted from the teacher's diagram.DrawSummaryBox.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// MomentDiagram renders a member's bending-moment diagram for one
// governing combination as an asciigraph sparkline, for the CLI's
// --ascii preview flag.
func MomentDiagram(res *analysis.Result, lsName, memberID, combName string) (string, error) {
	dm, ok := res.FEMModel.Members[memberID]
	if !ok {
		return "", fmt.Errorf("no such member %q", memberID)
	}
	forces, ok := res.Forces[lsName]
	if !ok {
		return "", fmt.Errorf("no such limit state %q", lsName)
	}
	m, ok := forces.M[combName]
	if !ok {
		return "", fmt.Errorf("no such combination %q in %s", combName, lsName)
	}

	if dm.Samples == 0 {
		return "", fmt.Errorf("member %q has no discretization samples", memberID)
	}
	series := m[dm.Offset : dm.Offset+dm.Samples]

	caption := fmt.Sprintf("%s  M [%s/%s]  L=%.2fm", memberID, lsName, combName, dm.L)
	return asciigraph.Plot(series, asciigraph.Height(12), asciigraph.Width(60), asciigraph.Caption(caption)), nil
}
