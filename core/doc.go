// Package core defines the central Node, EdgeLabel, LabeledEdge, and
// LabeledGraph types, and provides thread-safe primitives for building
// and querying labeled directed multigraphs.
//
// A LabeledGraph stores every edge twice: once in a forward index keyed
// (source, label) and once in a reverse index keyed (destination,
// label). Both indices are required by CFL-reachability solving, where
// every binary production must answer "what does v reach with label L?"
// and "what reaches u with label L?" in constant expected time. Bar
// labels (AddrBar, CopyBar, PTBar) are ordinary edges with their own
// adjacency entries, never a reversed lookup of their twin.
//
// All mutating and reading APIs share one sync.RWMutex, so a saturated
// graph can be read from several goroutines at once.
//
// Errors:
//
//	ErrUnknownLabel - a label name failed to parse.
package core
