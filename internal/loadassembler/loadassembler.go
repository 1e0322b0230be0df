// Package loadassembler runs the FrameSolver once per declared single
// load (plus a synthetic selfweight load), per spec.md §4.3.
package loadassembler

import (
	"sort"

	"github.com/HJ-nkh/frameanalysis/internal/entities"
	"github.com/HJ-nkh/frameanalysis/internal/geometry"
	"github.com/HJ-nkh/frameanalysis/internal/solver"
)

// SingleLoad is one entry of the ordered single-load list: the
// geometry-bound load declaration plus its solved result.
type SingleLoad struct {
	Name   string
	Type   entities.LoadType
	Result *solver.Result
}

// Assemble runs FrameSolver once per frame.Loads entry, in sorted
// declaration-id order across all load kinds, then once more for
// selfweight if any member enables it. The returned slice's order is the
// single-load order every downstream combination coefficient indexes by.
func Assemble(frame *geometry.Frame, selfweightOn bool) ([]SingleLoad, error) {
	loads := make([]geometry.Load, len(frame.Loads))
	copy(loads, frame.Loads)
	sort.SliceStable(loads, func(i, j int) bool { return loads[i].Name < loads[j].Name })

	out := make([]SingleLoad, 0, len(loads)+1)
	for _, l := range loads {
		res, err := solver.Solve(frame, l)
		if err != nil {
			return nil, err
		}
		out = append(out, SingleLoad{Name: l.Name, Type: l.Type, Result: res})
	}

	if selfweightOn {
		sw := geometry.Selfweight(frame)
		if len(sw.Spans) > 0 {
			res, err := solver.Solve(frame, sw)
			if err != nil {
				return nil, err
			}
			out = append(out, SingleLoad{Name: sw.Name, Type: entities.TypeDead, Result: res})
		}
	}

	return out, nil
}
