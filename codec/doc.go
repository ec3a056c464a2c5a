// Package codec moves labeled graphs and points-to results across
// process boundaries: a JSON edge-list interchange format, Graphviz DOT
// rendering, and the plain-text points-to dump consumers read.
//
// All three encoders iterate sorted edge enumerations, so equal graphs
// always produce byte-identical output and the renderings can double as
// golden fixtures in tests.
//
// The JSON format is a flat edge list,
//
//	{"edges":[{"src":0,"dst":1,"label":"AddrBar"}, ...]}
//
// with labels spelled by their canonical names. Decoding validates
// every label and rejects unknown names with core.ErrUnknownLabel.
//
// Errors:
//
//	ErrGraphNil   - a nil graph was passed to an encoder.
//	ErrResultNil  - a nil result was passed to the dump writer.
package codec
