// Package core: LabeledGraph storage and mutation.
//
// The graph keeps two nested map indices, forward and reverse, both
// keyed node-then-label. Membership, insertion, and locating a node's
// per-label neighbor set are O(1) expected; the pair of indices is what keeps binary grammar
// productions linear in their output instead of linear in the graph.

package core

import "sync"

// nodeSet is a set of node identifiers.
type nodeSet map[Node]struct{}

// labelSets groups the neighbor sets of one node by edge label.
type labelSets map[EdgeLabel]nodeSet

// LabeledGraph is a set-semantic labeled directed multigraph with
// forward and reverse adjacency indices.
//
// The two indices always agree: every edge (u, v, l) is present as
// fwd[u][l][v] and rev[v][l][u], never just one of the two. Self-loops
// are legal and stored in both indices like any other edge.
type LabeledGraph struct {
	mu sync.RWMutex

	// fwd[src][label] = set of destinations.
	fwd map[Node]labelSets

	// rev[dst][label] = set of sources.
	rev map[Node]labelSets

	// nodes records every identifier seen as an endpoint.
	nodes nodeSet

	// size is the number of distinct edges.
	size int

	// perLabel counts edges by label.
	perLabel [NumLabels]int
}

// NewLabeledGraph creates an empty LabeledGraph.
// Complexity: O(1).
func NewLabeledGraph(opts ...GraphOption) *LabeledGraph {
	g := &LabeledGraph{
		fwd:   make(map[Node]labelSets),
		rev:   make(map[Node]labelSets),
		nodes: make(nodeSet),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// HasEdge reports whether the edge (u, v, l) is present.
// Complexity: O(1) expected.
func (g *LabeledGraph) HasEdge(u, v Node, l EdgeLabel) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(u, v, l)
}

// hasEdgeLocked is HasEdge without locking; callers hold g.mu.
func (g *LabeledGraph) hasEdgeLocked(u, v Node, l EdgeLabel) bool {
	set, ok := g.fwd[u][l]
	if !ok {
		return false
	}
	_, ok = set[v]

	return ok
}

// AddEdge inserts the edge (u, v, l) if absent and reports whether an
// insertion occurred. Both indices are updated under one critical
// section, so no reader can observe a half-inserted edge.
// Complexity: O(1) expected.
func (g *LabeledGraph) AddEdge(u, v Node, l EdgeLabel) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.hasEdgeLocked(u, v, l) {
		return false
	}

	insertAdj(g.fwd, u, l, v)
	insertAdj(g.rev, v, l, u)
	g.nodes[u] = struct{}{}
	g.nodes[v] = struct{}{}
	g.size++
	g.perLabel[l]++

	return true
}

// AddLabeledEdge is AddEdge taking the triple as a value; convenient
// when replaying edge lists.
func (g *LabeledGraph) AddLabeledEdge(e LabeledEdge) bool {
	return g.AddEdge(e.Src, e.Dst, e.Label)
}

// insertAdj places n into adj[key][l], allocating the nested maps
// lazily.
func insertAdj(adj map[Node]labelSets, key Node, l EdgeLabel, n Node) {
	sets, ok := adj[key]
	if !ok {
		sets = make(labelSets)
		adj[key] = sets
	}
	set, ok := sets[l]
	if !ok {
		set = make(nodeSet)
		sets[l] = set
	}
	set[n] = struct{}{}
}

// EdgeCount returns the number of distinct edges. O(1).
func (g *LabeledGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.size
}

// NodeCount returns the number of distinct endpoints seen. O(1).
func (g *LabeledGraph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// CountByLabel returns the number of edges carrying label l. O(1).
func (g *LabeledGraph) CountByLabel(l EdgeLabel) int {
	if !l.Valid() {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.perLabel[l]
}

// Stats produces a read-only size summary of the graph.
// Complexity: O(NumLabels).
func (g *LabeledGraph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount: len(g.nodes),
		EdgeCount: g.size,
		PerLabel:  make(map[EdgeLabel]int, NumLabels),
	}
	for l, n := range g.perLabel {
		if n > 0 {
			stats.PerLabel[EdgeLabel(l)] = n
		}
	}

	return &stats
}
