package codec

import (
	"fmt"
	"io"

	"github.com/katalvlaran/cflgraph/core"
)

// DOTOption configures WriteDOT.
type DOTOption func(*dotConfig)

type dotConfig struct {
	name          string
	terminalsOnly bool
}

// WithGraphName sets the digraph name in the DOT header; the default is
// "pag".
func WithGraphName(name string) DOTOption {
	return func(c *dotConfig) {
		if name != "" {
			c.name = name
		}
	}
}

// WithTerminalsOnly restricts the rendering to edges whose label is
// terminal, which keeps saturated graphs readable. The filter goes by
// label, not by origin: Copy and CopyBar edges derived by the solver
// are kept.
func WithTerminalsOnly() DOTOption {
	return func(c *dotConfig) { c.terminalsOnly = true }
}

// WriteDOT renders g as a Graphviz digraph. Nodes print as n<id>;
// edges with derived labels (PT, PTBar, PV, VP) are dashed, while
// terminal labels are drawn solid, including Copy and CopyBar edges the
// solver derived. Output is deterministic: nodes and edges appear in
// sorted order.
func WriteDOT(w io.Writer, g *core.LabeledGraph, opts ...DOTOption) error {
	if g == nil {
		return ErrGraphNil
	}
	cfg := dotConfig{name: "pag"}
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, err := fmt.Fprintf(w, "digraph %q {\n", cfg.name); err != nil {
		return err
	}
	for _, n := range g.Nodes() {
		if _, err := fmt.Fprintf(w, "  n%d;\n", n); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		if cfg.terminalsOnly && !e.Label.Terminal() {
			continue
		}
		style := ""
		if e.Label.Derived() {
			style = ", style=dashed"
		}
		if _, err := fmt.Fprintf(w, "  n%d -> n%d [label=%q%s];\n", e.Src, e.Dst, e.Label, style); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")

	return err
}
