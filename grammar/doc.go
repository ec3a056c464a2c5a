// Package grammar declares context-free production sets over edge
// labels and the per-label lookup tables a reachability solver consults
// on every worklist pop.
//
// A production reads left-to-right as "concatenation of labels along a
// path": the binary production CopyBar·PT → PT says that a CopyBar edge
// followed by a PT edge derives a PT edge between the outer endpoints.
//
// Andersen returns the fixed grammar of the classical inclusion-based
// pointer analysis:
//
//	AddrBar          → PT   (address-of seeds points-to)
//	CopyBar · PT     → PT   (points-to propagates across copies)
//	Store   · PT     → PV   (value stored into a pointed-to object)
//	PTBar   · Load   → VP   (object loaded back out into a value)
//	PV      · VP     → Copy (store/load through one object is a copy)
//
// New derived Copy edges feed back into the second production, closing
// the cycle that makes the analysis a cubic transitive closure.
package grammar
