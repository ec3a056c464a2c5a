// Package core: identifier and label types shared by every other
// package in the module.
//
// This file declares Node, EdgeLabel with its classification helpers,
// LabeledEdge, GraphOption, sentinel errors, and the label name table
// used by ParseLabel and String.

package core

import (
	"errors"
	"fmt"
)

// ErrUnknownLabel indicates a label name that is not part of the alphabet.
var ErrUnknownLabel = errors.New("core: unknown edge label")

// Node identifies a memory object or a value location. Identifiers are
// assigned densely by the frontend; the graph never inspects their
// provenance.
type Node uint32

// EdgeLabel enumerates the doubled alphabet of the points-to grammar.
// Each core relation that the grammar walks in both directions has a
// "bar" twin oriented the opposite way.
type EdgeLabel uint8

// The label alphabet. Terminal labels appear in frontend-built graphs;
// derived labels arise only from solver derivations.
const (
	// Addr is the terminal address-of relation: Addr(a, p) records that
	// &a was stored into p.
	Addr EdgeLabel = iota

	// AddrBar is the inverse of Addr, oriented pointer-to-object:
	// AddrBar(p, a) records p = &a.
	AddrBar

	// Copy is the terminal value-flow relation: Copy(q, p) records p = q.
	Copy

	// CopyBar is the inverse of Copy.
	CopyBar

	// Store is the terminal indirect write: Store(q, p) records *p = q.
	Store

	// Load is the terminal indirect read: Load(p, r) records r = *p.
	Load

	// PT is the derived points-to relation: PT(p, o) means pointer p may
	// hold the address of object o.
	PT

	// PTBar is the inverse of PT.
	PTBar

	// PV is a derived intermediate: PV(u, v) means value u has been
	// stored into object v.
	PV

	// VP is a derived intermediate: VP(u, v) means object u has been
	// loaded into value v.
	VP
)

// NumLabels is the size of the label alphabet; labels are contiguous
// from 0, so it doubles as the length of per-label lookup arrays.
const NumLabels = int(VP) + 1

// labelNames maps each label to its canonical spelling, used by both
// String and ParseLabel so the two can never drift apart.
var labelNames = [NumLabels]string{
	Addr:    "Addr",
	AddrBar: "AddrBar",
	Copy:    "Copy",
	CopyBar: "CopyBar",
	Store:   "Store",
	Load:    "Load",
	PT:      "PT",
	PTBar:   "PTBar",
	PV:      "PV",
	VP:      "VP",
}

// String returns the canonical label name, or a numeric placeholder for
// values outside the alphabet.
func (l EdgeLabel) String() string {
	if !l.Valid() {
		return fmt.Sprintf("EdgeLabel(%d)", uint8(l))
	}

	return labelNames[l]
}

// ParseLabel maps a canonical label name back to its EdgeLabel.
// Returns ErrUnknownLabel for any other string.
func ParseLabel(name string) (EdgeLabel, error) {
	for l, n := range labelNames {
		if n == name {
			return EdgeLabel(l), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, name)
}

// Valid reports whether l is a member of the alphabet.
func (l EdgeLabel) Valid() bool {
	return int(l) < NumLabels
}

// Terminal reports whether l may appear in a frontend-built graph.
func (l EdgeLabel) Terminal() bool {
	switch l {
	case Addr, AddrBar, Copy, CopyBar, Store, Load:
		return true
	default:
		return false
	}
}

// Derived reports whether l arises only from grammar derivations.
func (l EdgeLabel) Derived() bool {
	return l.Valid() && !l.Terminal()
}

// Bar returns the symmetric inverse of l. Store, Load, PV and VP have
// no inverse in the alphabet; for those ok is false.
func (l EdgeLabel) Bar() (bar EdgeLabel, ok bool) {
	switch l {
	case Addr:
		return AddrBar, true
	case AddrBar:
		return Addr, true
	case Copy:
		return CopyBar, true
	case CopyBar:
		return Copy, true
	case PT:
		return PTBar, true
	case PTBar:
		return PT, true
	default:
		return 0, false
	}
}

// LabeledEdge is one (src, dst, label) triple. Edges form a set: the
// same triple is never stored twice in a LabeledGraph.
type LabeledEdge struct {
	Src   Node
	Dst   Node
	Label EdgeLabel
}

// String renders the edge as "Label(src→dst)".
func (e LabeledEdge) String() string {
	return fmt.Sprintf("%s(%d→%d)", e.Label, e.Src, e.Dst)
}

// GraphOption configures a LabeledGraph at construction time.
type GraphOption func(g *LabeledGraph)

// WithNodeHint pre-sizes the adjacency indices for roughly n nodes.
// Purely a capacity hint; negative or zero values are ignored.
func WithNodeHint(n int) GraphOption {
	return func(g *LabeledGraph) {
		if n > 0 {
			g.fwd = make(map[Node]labelSets, n)
			g.rev = make(map[Node]labelSets, n)
			g.nodes = make(map[Node]struct{}, n)
		}
	}
}

// GraphStats is a read-only size summary of a LabeledGraph.
type GraphStats struct {
	// NodeCount is the number of distinct endpoints seen by AddEdge.
	NodeCount int

	// EdgeCount is the number of distinct (src, dst, label) triples.
	EdgeCount int

	// PerLabel breaks EdgeCount down by label.
	PerLabel map[EdgeLabel]int
}
