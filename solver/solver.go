package solver

import (
	"github.com/katalvlaran/cflgraph/core"
	"github.com/katalvlaran/cflgraph/grammar"
)

// Solve saturates g under the configured grammar and returns a Result
// view over the fixpoint. The graph is mutated in place; after Solve
// returns it is read-only by convention.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for invalid
// options, or the context error if a WithContext deadline fires
// mid-drain. The solver itself has no failure modes: absence of some
// terminal label simply means no corresponding derivations occur.
//
// Complexity: O(V³) time on the Andersen grammar, O(V²·NumLabels)
// space; termination is guaranteed by monotone growth over the finite
// edge universe.
func Solve(g *core.LabeledGraph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	e := &engine{
		graph: g,
		gram:  o.Grammar,
		opts:  o,
		work:  worklist{lifo: o.LIFO},
	}

	e.seed()
	if err := e.drain(); err != nil {
		return nil, err
	}

	return &Result{
		graph: g,
		stats: Stats{
			SeedEdges: e.seeded,
			Popped:    e.popped,
			Inserted:  e.inserted,
			EdgeCount: g.EdgeCount(),
		},
	}, nil
}

// engine encapsulates mutable solver state for one run.
type engine struct {
	graph *core.LabeledGraph
	gram  *grammar.Grammar
	opts  Options
	work  worklist

	seeded   int
	popped   int
	inserted int
}

// seed enqueues every edge already present in the graph exactly once.
func (e *engine) seed() {
	for _, edge := range e.graph.Edges() {
		e.work.push(edge)
		e.seeded++
	}
}

// drain pops until quiescence, applying every production the popped
// edge could participate in.
func (e *engine) drain() error {
	for !e.work.empty() {
		// cancellation check (once per pop)
		select {
		case <-e.opts.Ctx.Done():
			return e.opts.Ctx.Err()
		default:
		}

		edge := e.work.pop()
		e.popped++
		e.opts.OnPop(edge)

		e.applyUnary(edge)
		e.applyAsLeft(edge)
		e.applyAsRight(edge)
	}

	return nil
}

// applyUnary inserts the unary derivations of edge between the same
// endpoints.
func (e *engine) applyUnary(edge core.LabeledEdge) {
	for _, result := range e.gram.UnaryResults(edge.Label) {
		e.insert(edge.Src, edge.Dst, result)
	}
}

// applyAsLeft treats edge as the left operand: for each rule
// l·l₂ → r, join with the l₂-successors of edge.Dst.
func (e *engine) applyAsLeft(edge core.LabeledEdge) {
	for _, rule := range e.gram.LeftMatches(edge.Label) {
		for _, w := range e.graph.SuccessorsWithLabel(edge.Dst, rule.Right) {
			e.insert(edge.Src, w, rule.Result)
		}
	}
}

// applyAsRight treats edge as the right operand: for each rule
// l₁·l → r, join with the l₁-predecessors of edge.Src.
func (e *engine) applyAsRight(edge core.LabeledEdge) {
	for _, rule := range e.gram.RightMatches(edge.Label) {
		for _, w := range e.graph.PredecessorsWithLabel(edge.Src, rule.Left) {
			e.insert(w, edge.Dst, rule.Result)
		}
	}
}

// insert is the symmetry-maintaining insertion: a no-op when the edge
// exists, otherwise the edge is added, reported, enqueued, and its
// inverse twin is inserted the same way for the two relations the
// solver keeps closed under inversion (PT and Copy).
func (e *engine) insert(u, v core.Node, l core.EdgeLabel) {
	if !e.graph.AddEdge(u, v, l) {
		return
	}
	e.inserted++
	edge := core.LabeledEdge{Src: u, Dst: v, Label: l}
	e.opts.OnInsert(edge)
	e.work.push(edge)

	switch l {
	case core.PT:
		e.insert(v, u, core.PTBar)
	case core.Copy:
		e.insert(v, u, core.CopyBar)
	}
}
