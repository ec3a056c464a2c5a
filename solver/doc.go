// Package solver saturates a labeled graph under a context-free
// grammar, with optional hooks, cancellation, and a points-to result
// view over the fixpoint.
//
// Solve seeds a worklist with every edge already in the graph and
// drains it. Each popped edge (u, v, l) is matched three ways:
//
//   - unary: every rule l → r inserts (u, v, r);
//   - as left operand: for every rule l·l₂ → r, each w in the forward
//     adjacency of v under l₂ inserts (u, w, r);
//   - as right operand: for every rule l₁·l → r, each w in the reverse
//     adjacency of u under l₁ inserts (w, v, r).
//
// Both binary phases run on every pop: an edge may still become either
// operand of a future match, and skipping one direction leaves the
// closure incomplete.
//
// Insertion is symmetry-maintaining: whenever the solver adds a PT or
// Copy edge it also adds and enqueues the PTBar or CopyBar twin, so the
// two relations stay closed under inversion after every step. Because
// the graph is a set and every production only adds edges, the run is
// monotone on a finite lattice and terminates at the least fixpoint.
package solver
