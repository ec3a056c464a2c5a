// Package cflgraph computes whole-program points-to information by
// phrasing pointer analysis as context-free-language reachability
// (CFL-R) over a labeled directed multigraph.
//
// 🚀 What is cflgraph?
//
//	A small, deterministic library that brings together:
//
//	  • core/    — the labeled multigraph with dual adjacency indices
//	  • grammar/ — the fixed Andersen production set over edge labels
//	  • solver/  — the worklist fixpoint engine and points-to result view
//	  • builder/ — pointer-assignment-graph construction from statements
//	  • codec/   — JSON interchange, DOT export, points-to dumps
//
// ✨ Why choose cflgraph?
//
//   - Deterministic           — enumerations sort, two runs agree edge for edge
//   - Monotone by design      — the solver only ever adds edges, so it terminates
//   - Hookable                — attach OnPop/OnInsert callbacks for custom logic
//   - Pure Go                 — no cgo, no hidden surprises
//
// Typical flow: build the initial graph from pointer statements with
// builder, saturate it with solver.Solve, then read the points-to
// relation off the returned Result:
//
//	g, _ := builder.Build(
//	    builder.AddrOf(p, obj), // p = &obj
//	    builder.Assign(q, p),   // q = p
//	)
//	res, _ := solver.Solve(g)
//	for _, pt := range res.PointsTo() {
//	    fmt.Println(pt.Ptr, "→", pt.Obj)
//	}
//
// The grammar and solver package docs describe the productions and the
// symmetry discipline on bar labels; each package's examples show
// worked end-to-end runs.
//
//	go get github.com/katalvlaran/cflgraph
package cflgraph
