package solver

import "github.com/katalvlaran/cflgraph/core"

// Pair is one points-to fact: pointer Ptr may hold the address of
// object Obj.
type Pair struct {
	Ptr core.Node
	Obj core.Node
}

// Result is a read-only projection over a saturated graph. It holds no
// copies: every query reads the graph it was produced from.
type Result struct {
	graph *core.LabeledGraph
	stats Stats
}

// Graph returns the saturated graph backing this result.
func (r *Result) Graph() *core.LabeledGraph {
	return r.graph
}

// Stats returns the run summary recorded by Solve.
func (r *Result) Stats() Stats {
	return r.stats
}

// PointsTo enumerates every points-to pair in the fixpoint, sorted by
// (pointer, object) and free of duplicates.
// Complexity: O(P log P) for P pairs.
func (r *Result) PointsTo() []Pair {
	edges := r.graph.EdgesWithLabel(core.PT)
	out := make([]Pair, len(edges))
	for i, e := range edges {
		out[i] = Pair{Ptr: e.Src, Obj: e.Dst}
	}

	return out
}

// PointsToSet returns the objects pointer p may reference, ascending.
// Complexity: O(d log d) for d objects.
func (r *Result) PointsToSet(p core.Node) []core.Node {
	return r.graph.SuccessorsWithLabel(p, core.PT)
}

// PointedBy returns the pointers that may reference object o,
// ascending. Reads the reverse index, so it costs the same as
// PointsToSet.
func (r *Result) PointedBy(o core.Node) []core.Node {
	return r.graph.PredecessorsWithLabel(o, core.PT)
}

// MayAlias reports whether p and q may reference a common object, i.e.
// their points-to sets intersect.
// Complexity: O(n log n) for set sizes m ≤ n (both sets are fetched
// sorted, then m binary searches).
func (r *Result) MayAlias(p, q core.Node) bool {
	a := r.graph.SuccessorsWithLabel(p, core.PT)
	b := r.graph.SuccessorsWithLabel(q, core.PT)
	if len(a) > len(b) {
		a, b = b, a
	}
	for _, o := range a {
		if containsNode(b, o) {
			return true
		}
	}

	return false
}

// containsNode binary-searches o in the ascending slice ns.
func containsNode(ns []core.Node, o core.Node) bool {
	lo, hi := 0, len(ns)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case ns[mid] < o:
			lo = mid + 1
		case ns[mid] > o:
			hi = mid
		default:
			return true
		}
	}

	return false
}
