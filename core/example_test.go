package core_test

import (
	"fmt"

	"github.com/katalvlaran/cflgraph/core"
)

// ExampleLabeledGraph demonstrates building a tiny pointer-assignment
// graph by hand and querying both adjacency directions.
//
// Scenario:
//   - node 0 is pointer p, node 1 is object a, node 2 is pointer q
//   - p = &a   → AddrBar(p, a)
//   - q = p    → Copy(p, q)
func ExampleLabeledGraph() {
	g := core.NewLabeledGraph()
	g.AddEdge(0, 1, core.AddrBar) // p = &a
	g.AddEdge(0, 2, core.Copy)    // q = p
	g.AddEdge(2, 0, core.CopyBar) // inverse of the copy

	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("p out:", g.Successors(0))
	fmt.Println("p in :", g.PredecessorsWithLabel(0, core.CopyBar))
	// Output:
	// edges: 3
	// p out: map[AddrBar:[1] Copy:[2]]
	// p in : [2]
}

// ExampleLabeledGraph_AddEdge shows the set semantics of insertion: the
// boolean result reports whether the triple was new.
func ExampleLabeledGraph_AddEdge() {
	g := core.NewLabeledGraph()
	fmt.Println(g.AddEdge(1, 2, core.Store))
	fmt.Println(g.AddEdge(1, 2, core.Store))
	fmt.Println(g.AddEdge(1, 2, core.Load))
	// Output:
	// true
	// false
	// true
}
