package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cflgraph/core"
)

// Sentinel errors for graph construction.
var (
	// ErrGraphNil is returned when Apply receives a nil graph.
	ErrGraphNil = errors.New("builder: graph is nil")

	// ErrUnknownOp is returned for a Statement whose Op is not part of
	// the statement alphabet.
	ErrUnknownOp = errors.New("builder: unknown statement op")
)

// Op enumerates the four pointer statement forms of the analysis.
type Op uint8

const (
	// OpAddrOf is p = &a.
	OpAddrOf Op = iota

	// OpAssign is dst = src.
	OpAssign

	// OpStore is *ptr = val.
	OpStore

	// OpLoad is dst = *ptr.
	OpLoad
)

// String returns the statement form's source-level shape.
func (op Op) String() string {
	switch op {
	case OpAddrOf:
		return "p = &a"
	case OpAssign:
		return "dst = src"
	case OpStore:
		return "*ptr = val"
	case OpLoad:
		return "dst = *ptr"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Statement is one pointer statement as data, so frontends can stage,
// inspect, and replay programs. The meaning of A and B depends on Op;
// use the constructors rather than filling the struct by hand.
type Statement struct {
	Op Op
	A  core.Node
	B  core.Node
}

// AddrOf records p = &a.
func AddrOf(p, a core.Node) Statement {
	return Statement{Op: OpAddrOf, A: p, B: a}
}

// Assign records dst = src.
func Assign(dst, src core.Node) Statement {
	return Statement{Op: OpAssign, A: dst, B: src}
}

// StoreTo records *ptr = val.
func StoreTo(ptr, val core.Node) Statement {
	return Statement{Op: OpStore, A: ptr, B: val}
}

// LoadFrom records dst = *ptr.
func LoadFrom(ptr, dst core.Node) Statement {
	return Statement{Op: OpLoad, A: ptr, B: dst}
}

// Build creates a fresh graph, applies every statement in order, and
// returns the populated graph. The first statement error is wrapped as
// "Build: statement <index>: <err>" and returned with a nil graph.
func Build(stmts ...Statement) (*core.LabeledGraph, error) {
	g := core.NewLabeledGraph()
	for i, st := range stmts {
		if err := Apply(g, st); err != nil {
			return nil, fmt.Errorf("Build: statement %d: %w", i, err)
		}
	}

	return g, nil
}

// Apply emits the edges of one statement onto g. Re-applying a
// statement is a no-op thanks to the graph's set semantics.
//
// Edge orientation follows the frontend contract: AddrBar(p, a) for
// p = &a, Copy(src, dst) for dst = src, Store(val, ptr) for *ptr = val,
// Load(ptr, dst) for dst = *ptr. AddrOf and Assign also emit the
// terminal inverses (Addr, CopyBar).
func Apply(g *core.LabeledGraph, st Statement) error {
	if g == nil {
		return ErrGraphNil
	}

	switch st.Op {
	case OpAddrOf:
		p, a := st.A, st.B
		g.AddEdge(p, a, core.AddrBar)
		g.AddEdge(a, p, core.Addr)
	case OpAssign:
		dst, src := st.A, st.B
		g.AddEdge(src, dst, core.Copy)
		g.AddEdge(dst, src, core.CopyBar)
	case OpStore:
		ptr, val := st.A, st.B
		g.AddEdge(val, ptr, core.Store)
	case OpLoad:
		ptr, dst := st.A, st.B
		g.AddEdge(ptr, dst, core.Load)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownOp, uint8(st.Op))
	}

	return nil
}
