// Package core: LabeledGraph query methods.
//
// Enumerations in this file copy out of the internal maps and sort, so
// results are stable across runs and safe to retain after the graph
// mutates further.

package core

import "sort"

// SuccessorsWithLabel returns the destinations of all l-labeled edges
// leaving u, in ascending node order. Returns nil when there are none.
// Complexity: O(d log d) for out-degree d under (u, l).
func (g *LabeledGraph) SuccessorsWithLabel(u Node, l EdgeLabel) []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedNodes(g.fwd[u][l])
}

// PredecessorsWithLabel returns the sources of all l-labeled edges
// entering v, in ascending node order. Returns nil when there are none.
// Complexity: O(d log d) for in-degree d under (v, l).
func (g *LabeledGraph) PredecessorsWithLabel(v Node, l EdgeLabel) []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedNodes(g.rev[v][l])
}

// Successors returns the complete forward adjacency of u grouped by
// label. Labels with no edges are absent from the map.
// Complexity: O(d log d) over the total out-degree d of u.
func (g *LabeledGraph) Successors(u Node) map[EdgeLabel][]Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return groupedNodes(g.fwd[u])
}

// Predecessors returns the complete reverse adjacency of v grouped by
// label. Labels with no edges are absent from the map.
// Complexity: O(d log d) over the total in-degree d of v.
func (g *LabeledGraph) Predecessors(v Node) map[EdgeLabel][]Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return groupedNodes(g.rev[v])
}

// Edges returns every edge in the graph sorted by (label, src, dst).
// The solver enumerates this once to seed its worklist; tests use it to
// compare whole graphs.
// Complexity: O(E log E).
func (g *LabeledGraph) Edges() []LabeledEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]LabeledEdge, 0, g.size)
	for u, sets := range g.fwd {
		for l, set := range sets {
			for v := range set {
				out = append(out, LabeledEdge{Src: u, Dst: v, Label: l})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Label != out[j].Label {
			return out[i].Label < out[j].Label
		}
		if out[i].Src != out[j].Src {
			return out[i].Src < out[j].Src
		}

		return out[i].Dst < out[j].Dst
	})

	return out
}

// EdgesWithLabel returns every l-labeled edge sorted by (src, dst).
// Complexity: O(E_l log E_l) for E_l edges under l.
func (g *LabeledGraph) EdgesWithLabel(l EdgeLabel) []LabeledEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []LabeledEdge
	for u, sets := range g.fwd {
		for v := range sets[l] {
			out = append(out, LabeledEdge{Src: u, Dst: v, Label: l})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Src != out[j].Src {
			return out[i].Src < out[j].Src
		}

		return out[i].Dst < out[j].Dst
	})

	return out
}

// Nodes returns every distinct endpoint in ascending order.
// Complexity: O(V log V).
func (g *LabeledGraph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Clone returns a deep copy of the graph: indices, node set, counters.
// Complexity: O(V + E).
func (g *LabeledGraph) Clone() *LabeledGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &LabeledGraph{
		fwd:      cloneAdj(g.fwd),
		rev:      cloneAdj(g.rev),
		nodes:    make(nodeSet, len(g.nodes)),
		size:     g.size,
		perLabel: g.perLabel,
	}
	for n := range g.nodes {
		clone.nodes[n] = struct{}{}
	}

	return clone
}

// sortedNodes copies set into an ascending slice; nil for an empty set.
func sortedNodes(set nodeSet) []Node {
	if len(set) == 0 {
		return nil
	}
	out := make([]Node, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// groupedNodes copies one node's labelSets into sorted slices per label.
func groupedNodes(sets labelSets) map[EdgeLabel][]Node {
	out := make(map[EdgeLabel][]Node, len(sets))
	for l, set := range sets {
		if len(set) > 0 {
			out[l] = sortedNodes(set)
		}
	}

	return out
}

// cloneAdj deep-copies one adjacency index.
func cloneAdj(adj map[Node]labelSets) map[Node]labelSets {
	out := make(map[Node]labelSets, len(adj))
	for key, sets := range adj {
		ns := make(labelSets, len(sets))
		for l, set := range sets {
			s := make(nodeSet, len(set))
			for n := range set {
				s[n] = struct{}{}
			}
			ns[l] = s
		}
		out[key] = ns
	}

	return out
}
