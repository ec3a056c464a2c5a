package solver

import "github.com/katalvlaran/cflgraph/core"

// worklist holds candidate edges awaiting rule application. The caller
// guarantees an edge is pushed only when it was newly inserted into the
// graph, so the list never holds duplicates and is bounded by the edge
// universe.
//
// FIFO by default; lifo flips pop to the tail. Either discipline
// reaches the same fixpoint, so the choice only shapes memory residency.
type worklist struct {
	items []core.LabeledEdge
	head  int
	lifo  bool
}

// push appends e.
func (w *worklist) push(e core.LabeledEdge) {
	w.items = append(w.items, e)
}

// pop removes and returns the next edge per discipline. Popping an
// empty worklist is a programming bug and panics via slice bounds.
func (w *worklist) pop() core.LabeledEdge {
	if w.lifo {
		last := len(w.items) - 1
		e := w.items[last]
		w.items = w.items[:last]

		return e
	}

	e := w.items[w.head]
	w.head++
	// Reclaim the drained prefix once it dominates the backing array.
	if w.head > 1024 && w.head*2 >= len(w.items) {
		w.items = append(w.items[:0], w.items[w.head:]...)
		w.head = 0
	}

	return e
}

// empty reports whether no edges remain; this is the termination
// condition of the drain loop.
func (w *worklist) empty() bool {
	if w.lifo {
		return len(w.items) == 0
	}

	return w.head >= len(w.items)
}

// len returns the number of pending edges.
func (w *worklist) len() int {
	if w.lifo {
		return len(w.items)
	}

	return len(w.items) - w.head
}
