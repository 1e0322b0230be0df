package geometry

import (
	"math"
	"sort"
	"strconv"

	"github.com/HJ-nkh/frameanalysis/internal/entities"
	"github.com/HJ-nkh/frameanalysis/internal/ferr"
	"github.com/HJ-nkh/frameanalysis/internal/material"
)

// builder accumulates the registries GeometryBuilder fills in as it
// walks the entity set.
type builder struct {
	es *entities.EntitySet

	nodes    []Node
	nodeKeys map[string]int // rounded coord key -> node index
	hingeKey map[string]bool

	elements []Element
	members  []Member
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func coordKey(x, y float64) string {
	x, y = round6(x), round6(y)
	return floatKey(x) + "|" + floatKey(y)
}

func floatKey(v float64) string {
	const scale = 1e6
	n := int64(math.Round(v * scale))
	return strconv.FormatInt(n, 10)
}

func (b *builder) getOrCreateNode(x, y float64) int {
	key := coordKey(x, y)
	if idx, ok := b.nodeKeys[key]; ok {
		return idx
	}
	idx := len(b.nodes)
	b.nodes = append(b.nodes, Node{X: round6(x), Y: round6(y)})
	b.nodeKeys[key] = idx
	return idx
}

func (b *builder) markHinge(x, y float64) {
	b.hingeKey[coordKey(x, y)] = true
}

func (b *builder) isHinge(x, y float64) bool {
	return b.hingeKey[coordKey(x, y)]
}

// Build converts a declarative entity set into a discretized Frame,
// following the GeometryBuilder algorithm of spec.md §4.1.
func Build(es *entities.EntitySet) (*Frame, error) {
	b := &builder{
		es:       es,
		nodeKeys: map[string]int{},
		hingeKey: map[string]bool{},
	}

	for _, n := range es.Nodes {
		if n.Assembly == entities.Hinge {
			b.markHinge(n.X, n.Y)
		}
	}

	memberIDs := sortedKeys(es.Members)
	for _, mid := range memberIDs {
		if err := b.buildMember(mid); err != nil {
			return nil, err
		}
	}

	frame := &Frame{
		Nodes:    b.nodes,
		Elements: b.elements,
		Members:  b.members,
	}

	if err := b.assignHingeFlags(frame); err != nil {
		return nil, err
	}
	frame.DOF, frame.NDOF = buildDOFMap(frame)

	if err := b.buildSupports(frame); err != nil {
		return nil, err
	}
	if err := b.buildLoads(frame); err != nil {
		return nil, err
	}

	return frame, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// resolveCoord finds the coordinate of any entity id, searching nodes,
// supports, point loads, moment loads, and (for distributed loads) both
// endpoints.
func (b *builder) resolveCoord(id string) ([]entities.Coord, bool) {
	if n, ok := b.es.Nodes[id]; ok {
		return []entities.Coord{{X: n.X, Y: n.Y}}, true
	}
	if s, ok := b.es.Supports[id]; ok {
		return []entities.Coord{s.Resolved}, true
	}
	if p, ok := b.es.PointLoads[id]; ok {
		return []entities.Coord{p.Resolved}, true
	}
	if m, ok := b.es.MomentLoads[id]; ok {
		return []entities.Coord{m.Resolved}, true
	}
	if d, ok := b.es.DistributedLoads[id]; ok {
		return []entities.Coord{d.Resolved.Point1, d.Resolved.Point2}, true
	}
	return nil, false
}

func (b *builder) buildMember(mid string) error {
	m := b.es.Members[mid]
	n1, ok := b.es.Nodes[m.Node1ID]
	if !ok {
		return ferr.New(ferr.BadInput, "member %q: unknown node1 %q", mid, m.Node1ID)
	}
	n2, ok := b.es.Nodes[m.Node2ID]
	if !ok {
		return ferr.New(ferr.BadInput, "member %q: unknown node2 %q", mid, m.Node2ID)
	}

	type pt struct{ x, y float64 }
	seen := map[string]bool{}
	var pts []pt
	add := func(x, y float64) {
		k := coordKey(x, y)
		if seen[k] {
			return
		}
		seen[k] = true
		pts = append(pts, pt{x, y})
	}
	add(n1.X, n1.Y)
	add(n2.X, n2.Y)
	for _, dep := range m.Dependants {
		coords, ok := b.resolveCoord(dep)
		if !ok {
			continue
		}
		for _, c := range coords {
			add(c.X, c.Y)
		}
	}

	dx := math.Abs(n2.X - n1.X)
	dy := math.Abs(n2.Y - n1.Y)
	vertical := dy > dx
	sort.Slice(pts, func(i, j int) bool {
		if vertical {
			return pts[i].y < pts[j].y
		}
		return pts[i].x < pts[j].x
	})
	if len(pts) < 2 {
		return ferr.New(ferr.BadInput, "member %q: degenerate geometry", mid)
	}
	if math.Hypot(n2.X-n1.X, n2.Y-n1.Y) < CoincidenceTolerance {
		return ferr.New(ferr.BadInput, "member %q: zero-length member", mid)
	}

	section, err := material.Resolve(m.Props)
	if err != nil {
		return err
	}

	memberIdx := len(b.members)
	var elemIdx []int
	var nodeSeq []int
	total := 0.0

	first := b.getOrCreateNode(pts[0].x, pts[0].y)
	nodeSeq = append(nodeSeq, first)
	prevNode := first

	for i := 0; i < len(pts)-1; i++ {
		p0, p1 := pts[i], pts[i+1]
		segLen := math.Hypot(p1.x-p0.x, p1.y-p0.y)
		if segLen < CoincidenceTolerance {
			continue
		}
		for s := 1; s <= Discr; s++ {
			frac := float64(s) / float64(Discr)
			x := p0.x + frac*(p1.x-p0.x)
			y := p0.y + frac*(p1.y-p0.y)
			var nextNode int
			if s == Discr {
				nextNode = b.getOrCreateNode(p1.x, p1.y)
			} else {
				nextNode = b.getOrCreateNode(x, y)
			}
			elem := Element{
				N1:          prevNode,
				N2:          nextNode,
				E:           section.E,
				A:           section.A,
				I:           section.I,
				Rho:         section.Rho,
				MemberIndex: memberIdx,
			}
			elemIdx = append(elemIdx, len(b.elements))
			b.elements = append(b.elements, elem)
			nodeSeq = append(nodeSeq, nextNode)
			total += segLen / float64(Discr)
			prevNode = nextNode
		}
	}

	b.members = append(b.members, Member{
		ID:       mid,
		Name:     m.Props.Name,
		Type:     m.Props.Type,
		Props:    m.Props,
		Elements: elemIdx,
		NodeSeq:  nodeSeq,
		Length:   total,
	})
	return nil
}

// assignHingeFlags sets HingeStart/HingeEnd on every element whose
// endpoint coincides with a user-declared Hinge node.
func (b *builder) assignHingeFlags(frame *Frame) error {
	for i := range frame.Elements {
		e := &frame.Elements[i]
		n1, n2 := frame.Nodes[e.N1], frame.Nodes[e.N2]
		e.HingeStart = b.isHinge(n1.X, n1.Y)
		e.HingeEnd = b.isHinge(n2.X, n2.Y)
	}
	return nil
}

// buildDOFMap assigns 3 DOFs per node in insertion order. At a hinge
// node shared by several incident element ends, the first end
// encountered keeps the node's base rotational DOF (3*node+2); every
// other incident end gets its own fresh DOF so moment cannot transfer
// between them. This keeps the base DOF from ever being orphaned, which
// would otherwise leave K with an all-zero row/column and make the
// system underdetermined.
func buildDOFMap(frame *Frame) ([][6]int, int) {
	nNodes := len(frame.Nodes)
	dof := make([][6]int, len(frame.Elements))
	next := 3 * nNodes
	claimed := make(map[int]bool, nNodes)

	assignRZ := func(node int, hinged bool) int {
		if !hinged {
			return 3*node + 2
		}
		if !claimed[node] {
			claimed[node] = true
			return 3*node + 2
		}
		rz := next
		next++
		return rz
	}

	for i, e := range frame.Elements {
		rz1 := assignRZ(e.N1, e.HingeStart)
		rz2 := assignRZ(e.N2, e.HingeEnd)
		dof[i] = [6]int{3 * e.N1, 3*e.N1 + 1, rz1, 3 * e.N2, 3*e.N2 + 1, rz2}
	}
	return dof, next
}

func (b *builder) buildSupports(frame *Frame) error {
	ids := sortedKeys(b.es.Supports)
	for _, id := range ids {
		s := b.es.Supports[id]
		key := coordKey(s.Resolved.X, s.Resolved.Y)
		nodeIdx, ok := b.nodeKeys[key]
		if !ok {
			return ferr.New(ferr.BadInput, "support %q: does not coincide with any refined node", id)
		}
		frame.SupportNodes = append(frame.SupportNodes, nodeIdx)
		frame.SupportTypes = append(frame.SupportTypes, s.Type)
		frame.SupportAngles = append(frame.SupportAngles, s.Angle)

		ux, uy, rz := 3*nodeIdx, 3*nodeIdx+1, 3*nodeIdx+2
		switch s.Type {
		case entities.Fixed:
			frame.SupportDOFs = append(frame.SupportDOFs, ux, uy, rz)
		case entities.Pinned:
			frame.SupportDOFs = append(frame.SupportDOFs, ux, uy)
		case entities.Roller:
			angle := math.Mod(s.Angle, 360)
			if angle < 0 {
				angle += 360
			}
			const eps = 1e-6
			switch {
			case math.Abs(angle) < eps || math.Abs(angle-180) < eps:
				frame.SupportDOFs = append(frame.SupportDOFs, uy)
			case math.Abs(angle-90) < eps || math.Abs(angle-270) < eps:
				frame.SupportDOFs = append(frame.SupportDOFs, ux)
			default:
				return ferr.New(ferr.BadInput, "support %q: roller angle %.3f not supported", id, s.Angle)
			}
		default:
			return ferr.New(ferr.BadInput, "support %q: unknown support type %q", id, s.Type)
		}
	}
	return nil
}

func decompose(magnitude, angleDeg float64) (fx, fy float64) {
	rad := angleDeg * math.Pi / 180
	return -magnitude * math.Cos(rad), -magnitude * math.Sin(rad)
}

func (b *builder) buildLoads(frame *Frame) error {
	for _, id := range sortedKeys(b.es.PointLoads) {
		p := b.es.PointLoads[id]
		node, ok := b.nodeKeys[coordKey(p.Resolved.X, p.Resolved.Y)]
		if !ok {
			return ferr.New(ferr.BadInput, "point load %q: does not lie on any member", id)
		}
		fx, fy := decompose(p.Magnitude, p.Angle)
		frame.Loads = append(frame.Loads, Load{Kind: KindPoint, Type: p.Type, Name: id, Node: node, Fx: fx, Fy: fy})
	}

	for _, id := range sortedKeys(b.es.MomentLoads) {
		m := b.es.MomentLoads[id]
		node, ok := b.nodeKeys[coordKey(m.Resolved.X, m.Resolved.Y)]
		if !ok {
			return ferr.New(ferr.BadInput, "moment load %q: does not lie on any member", id)
		}
		frame.Loads = append(frame.Loads, Load{Kind: KindMoment, Type: m.Type, Name: id, Node: node, M: m.Magnitude})
	}

	for _, id := range sortedKeys(b.es.DistributedLoads) {
		d := b.es.DistributedLoads[id]
		spans, err := b.lineLoadSpans(frame, d.Resolved.Point1, d.Resolved.Point2, d.Magnitude1, d.Magnitude2, d.Angle, d.WindFlip)
		if err != nil {
			return ferr.Wrap(ferr.BadInput, err, "distributed load %q", id)
		}
		frame.Loads = append(frame.Loads, Load{Kind: KindLine, Type: d.Type, Name: id, Spans: spans})
	}

	return nil
}

// lineLoadSpans locates point1/point2 on a single member's node chain and
// produces one LineSpan per element between them, with magnitudes
// linearly interpolated along the member chord and decomposed into
// global components.
func (b *builder) lineLoadSpans(frame *Frame, p1, p2 entities.Coord, mag1, mag2, angle float64, windFlip bool) ([]LineSpan, error) {
	n1, ok1 := b.nodeKeys[coordKey(p1.X, p1.Y)]
	n2, ok2 := b.nodeKeys[coordKey(p2.X, p2.Y)]
	if !ok1 || !ok2 {
		return nil, ferr.New(ferr.BadInput, "endpoints do not lie on any member")
	}

	for _, mem := range frame.Members {
		idx1, idx2 := indexOf(mem.NodeSeq, n1), indexOf(mem.NodeSeq, n2)
		if idx1 < 0 || idx2 < 0 {
			continue
		}
		lo, hi := idx1, idx2
		reversed := false
		if lo > hi {
			lo, hi = hi, lo
			reversed = true
		}
		if lo == hi {
			continue
		}
		// cumulative chord distance to each node in the member
		cum := make([]float64, len(mem.NodeSeq))
		for i, eIdx := range mem.Elements {
			e := frame.Elements[eIdx]
			cum[i+1] = cum[i] + e.Length(frame.Nodes)
		}
		s1, s2 := cum[idx1], cum[idx2]
		if s1 > s2 {
			s1, s2 = s2, s1
		}
		span := s2 - s1
		if span < CoincidenceTolerance {
			continue
		}

		m1, m2 := mag1, mag2
		if reversed {
			m1, m2 = mag2, mag1
		}
		angleUse := angle
		if windFlip {
			angleUse += 180
		}

		var spans []LineSpan
		for i := lo; i < hi; i++ {
			eIdx := mem.Elements[i]
			fracA := (cum[i] - s1) / span
			fracB := (cum[i+1] - s1) / span
			magA := m1 + fracA*(m2-m1)
			magB := m1 + fracB*(m2-m1)
			fxa, fya := decompose(magA, angleUse)
			fxb, fyb := decompose(magB, angleUse)
			spans = append(spans, LineSpan{Element: eIdx, Fx1: fxa, Fy1: fya, Fx2: fxb, Fy2: fyb})
		}
		return spans, nil
	}
	return nil, ferr.New(ferr.BadInput, "endpoints do not share a common member")
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
