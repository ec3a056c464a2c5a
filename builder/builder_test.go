package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cflgraph/builder"
	"github.com/katalvlaran/cflgraph/core"
	"github.com/katalvlaran/cflgraph/solver"
)

func TestApply_AddrOf(t *testing.T) {
	g := core.NewLabeledGraph()
	require.NoError(t, builder.Apply(g, builder.AddrOf(0, 1)))

	assert.True(t, g.HasEdge(0, 1, core.AddrBar))
	assert.True(t, g.HasEdge(1, 0, core.Addr), "Addr twin emitted at build time")
	assert.Equal(t, 2, g.EdgeCount())
}

func TestApply_Assign(t *testing.T) {
	g := core.NewLabeledGraph()
	require.NoError(t, builder.Apply(g, builder.Assign(2, 1))) // n2 = n1

	assert.True(t, g.HasEdge(1, 2, core.Copy), "Copy points src→dst")
	assert.True(t, g.HasEdge(2, 1, core.CopyBar), "terminal inverse synthesized")
}

func TestApply_StoreAndLoad(t *testing.T) {
	g := core.NewLabeledGraph()
	// *n0 = n5, then n6 = *n0
	require.NoError(t, builder.Apply(g, builder.StoreTo(0, 5)))
	require.NoError(t, builder.Apply(g, builder.LoadFrom(0, 6)))

	assert.True(t, g.HasEdge(5, 0, core.Store), "Store points val→ptr")
	assert.True(t, g.HasEdge(0, 6, core.Load), "Load points ptr→dst")
	// Store and Load have no bar twins.
	assert.Equal(t, 2, g.EdgeCount())
}

func TestApply_Errors(t *testing.T) {
	err := builder.Apply(nil, builder.AddrOf(0, 1))
	assert.ErrorIs(t, err, builder.ErrGraphNil)

	g := core.NewLabeledGraph()
	err = builder.Apply(g, builder.Statement{Op: builder.Op(99)})
	assert.ErrorIs(t, err, builder.ErrUnknownOp)
	assert.Zero(t, g.EdgeCount())
}

func TestBuild_Order_Idempotence(t *testing.T) {
	stmt := builder.Assign(1, 0)
	g, err := builder.Build(stmt, stmt, stmt)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount(), "replaying a statement adds nothing")
}

func TestBuild_PropagatesError(t *testing.T) {
	g, err := builder.Build(
		builder.AddrOf(0, 1),
		builder.Statement{Op: builder.Op(42)},
	)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, builder.ErrUnknownOp)
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "p = &a", builder.OpAddrOf.String())
	assert.Equal(t, "dst = src", builder.OpAssign.String())
	assert.Equal(t, "*ptr = val", builder.OpStore.String())
	assert.Equal(t, "dst = *ptr", builder.OpLoad.String())
	assert.Equal(t, "Op(7)", builder.Op(7).String())
}

// TestBuild_SolveIntegration runs a built program end to end:
//
//	p = &o; q = &o; *p = x; y = *q; z = y
func TestBuild_SolveIntegration(t *testing.T) {
	const p, o, q, x, y, z = 0, 1, 2, 3, 4, 5
	g, err := builder.Build(
		builder.AddrOf(p, o),
		builder.AddrOf(q, o),
		builder.StoreTo(p, x),
		builder.LoadFrom(q, y),
		builder.Assign(z, y),
	)
	require.NoError(t, err)

	res, err := solver.Solve(g)
	require.NoError(t, err)

	assert.Equal(t, []core.Node{o}, res.PointsToSet(p))
	assert.Equal(t, []core.Node{o}, res.PointsToSet(q))
	assert.True(t, g.HasEdge(x, y, core.Copy), "store/load composition")
	// x's value reaches z through the derived copy and the assignment,
	// but x holds no address, so no PT facts appear for x, y, or z.
	assert.Empty(t, res.PointsToSet(x))
	assert.Empty(t, res.PointsToSet(y))
	assert.Empty(t, res.PointsToSet(z))
}

// TestBuild_CopyChainDerivation: the synthesized CopyBar edges are what
// lets points-to flow down an assignment chain.
func TestBuild_CopyChainDerivation(t *testing.T) {
	const a, obj, b, c = 0, 1, 2, 3
	g, err := builder.Build(
		builder.AddrOf(a, obj),
		builder.Assign(b, a),
		builder.Assign(c, b),
	)
	require.NoError(t, err)

	res, err := solver.Solve(g)
	require.NoError(t, err)

	want := []solver.Pair{
		{Ptr: a, Obj: obj},
		{Ptr: b, Obj: obj},
		{Ptr: c, Obj: obj},
	}
	assert.Equal(t, want, res.PointsTo())
}
