package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cflgraph/core"
)

func edge(i int) core.LabeledEdge {
	return core.LabeledEdge{Src: core.Node(i), Dst: core.Node(i + 1), Label: core.Copy}
}

func TestWorklist_FIFO(t *testing.T) {
	var w worklist
	assert.True(t, w.empty())

	for i := 0; i < 5; i++ {
		w.push(edge(i))
	}
	assert.Equal(t, 5, w.len())

	for i := 0; i < 5; i++ {
		require.False(t, w.empty())
		assert.Equal(t, edge(i), w.pop(), "FIFO order at %d", i)
	}
	assert.True(t, w.empty())
	assert.Zero(t, w.len())
}

func TestWorklist_LIFO(t *testing.T) {
	w := worklist{lifo: true}
	for i := 0; i < 5; i++ {
		w.push(edge(i))
	}
	for i := 4; i >= 0; i-- {
		assert.Equal(t, edge(i), w.pop(), "LIFO order at %d", i)
	}
	assert.True(t, w.empty())
}

func TestWorklist_InterleavedPushPop(t *testing.T) {
	var w worklist
	w.push(edge(0))
	w.push(edge(1))
	assert.Equal(t, edge(0), w.pop())
	w.push(edge(2))
	assert.Equal(t, edge(1), w.pop())
	assert.Equal(t, edge(2), w.pop())
	assert.True(t, w.empty())
}

// TestWorklist_PrefixCompaction drives enough traffic through the FIFO
// path to trigger the drained-prefix reclamation and checks order is
// preserved across it.
func TestWorklist_PrefixCompaction(t *testing.T) {
	var w worklist
	const n = 5000
	for i := 0; i < n; i++ {
		w.push(edge(i))
	}
	for i := 0; i < n; i++ {
		require.Equal(t, edge(i), w.pop(), "order broke at %d", i)
		if i%3 == 0 {
			w.push(edge(n + i))
		}
	}
	// The refill pops still come out in push order.
	prev := -1
	for !w.empty() {
		e := w.pop()
		assert.Greater(t, int(e.Src), prev)
		prev = int(e.Src)
	}
}
