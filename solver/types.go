// Package solver: tunable options and error definitions for the
// fixpoint engine.
package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/cflgraph/core"
	"github.com/katalvlaran/cflgraph/grammar"
)

// Sentinel errors for solver execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("solver: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Option configures Solve via functional arguments. If an Option is
// invalid (e.g. a nil grammar), it is recorded internally and surfaced
// as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a solve run.
type Options struct {
	// Ctx allows cancellation and deadlines. A cancelled solve returns
	// ctx.Err(); the graph is left in a valid intermediate state
	// (monotone growth means partial results are sound but incomplete).
	Ctx context.Context

	// Grammar is the production set to saturate under. Defaults to
	// grammar.Andersen().
	Grammar *grammar.Grammar

	// LIFO switches the worklist from queue to stack discipline. The
	// fixpoint is identical either way; residency differs.
	LIFO bool

	// OnPop is called for each edge removed from the worklist, before
	// any productions are applied to it.
	OnPop func(core.LabeledEdge)

	// OnInsert is called for each edge the solver newly inserts into the
	// graph, symmetry twins included. Edges already present at seed time
	// are not reported.
	OnInsert func(core.LabeledEdge)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - the Andersen grammar
//   - FIFO worklist
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Grammar:  grammar.Andersen(),
		LIFO:     false,
		OnPop:    func(core.LabeledEdge) {},
		OnInsert: func(core.LabeledEdge) {},
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithGrammar replaces the production set. A nil grammar is invalid
// and surfaces as ErrOptionViolation.
func WithGrammar(g *grammar.Grammar) Option {
	return func(o *Options) {
		if g == nil {
			o.err = fmt.Errorf("%w: nil grammar", ErrOptionViolation)
			return
		}
		o.Grammar = g
	}
}

// WithLIFO switches the worklist to stack discipline.
func WithLIFO() Option {
	return func(o *Options) { o.LIFO = true }
}

// WithOnPop registers a callback to run on every worklist pop.
func WithOnPop(fn func(core.LabeledEdge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// WithOnInsert registers a callback to run on every graph insertion.
func WithOnInsert(fn func(core.LabeledEdge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnInsert = fn
		}
	}
}

// Stats summarizes one solve run.
type Stats struct {
	// SeedEdges is the number of edges present before saturation.
	SeedEdges int

	// Popped counts worklist pops over the whole run.
	Popped int

	// Inserted counts edges added by derivations, inverse twins
	// included.
	Inserted int

	// EdgeCount is the saturated graph's edge total.
	EdgeCount int
}
