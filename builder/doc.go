// Package builder constructs initial pointer-assignment graphs from
// pointer statements, so frontends never hand-orient edges or remember
// which inverses the solver expects to find.
//
// Each statement names its operands the way the source program reads:
//
//	AddrOf(p, a)    // p = &a
//	Assign(q, p)    // q = p
//	StoreTo(p, x)   // *p = x
//	LoadFrom(p, y)  // y = *p
//
// Build applies statements in order onto a fresh graph. Address-of
// statements emit both AddrBar and Addr; assignments emit both Copy and
// CopyBar. The solver only guarantees inverse closure for edges it
// derives itself, so synthesizing the terminal inverses here is what
// keeps copy chains fully derivable.
package builder
