package codec_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cflgraph/builder"
	"github.com/katalvlaran/cflgraph/codec"
	"github.com/katalvlaran/cflgraph/core"
	"github.com/katalvlaran/cflgraph/solver"
)

func sampleGraph(t *testing.T) *core.LabeledGraph {
	t.Helper()
	g, err := builder.Build(
		builder.AddrOf(0, 1),
		builder.Assign(2, 0),
	)
	require.NoError(t, err)

	return g
}

func TestMarshalGraph_Deterministic(t *testing.T) {
	g := sampleGraph(t)

	first, err := codec.MarshalGraph(g)
	require.NoError(t, err)
	second, err := codec.MarshalGraph(g)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	want := `{"edges":[` +
		`{"src":1,"dst":0,"label":"Addr"},` +
		`{"src":0,"dst":1,"label":"AddrBar"},` +
		`{"src":0,"dst":2,"label":"Copy"},` +
		`{"src":2,"dst":0,"label":"CopyBar"}]}`
	assert.JSONEq(t, want, string(first))
}

func TestGraphJSON_RoundTrip(t *testing.T) {
	g := sampleGraph(t)

	data, err := codec.MarshalGraph(g)
	require.NoError(t, err)
	back, err := codec.UnmarshalGraph(data)
	require.NoError(t, err)

	if diff := cmp.Diff(g.Edges(), back.Edges()); diff != "" {
		t.Fatalf("round trip changed the graph (-orig +decoded):\n%s", diff)
	}
}

func TestMarshalGraph_Nil(t *testing.T) {
	_, err := codec.MarshalGraph(nil)
	assert.ErrorIs(t, err, codec.ErrGraphNil)
}

func TestUnmarshalGraph_UnknownLabel(t *testing.T) {
	_, err := codec.UnmarshalGraph([]byte(`{"edges":[{"src":0,"dst":1,"label":"Weird"}]}`))
	assert.ErrorIs(t, err, core.ErrUnknownLabel)
}

func TestUnmarshalGraph_BadDocument(t *testing.T) {
	_, err := codec.UnmarshalGraph([]byte(`{"edges":`))
	assert.Error(t, err)
}

func TestUnmarshalGraph_DuplicatesCollapse(t *testing.T) {
	doc := `{"edges":[
		{"src":0,"dst":1,"label":"Copy"},
		{"src":0,"dst":1,"label":"Copy"}]}`
	g, err := codec.UnmarshalGraph([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestWriteDOT(t *testing.T) {
	g, err := builder.Build(builder.AddrOf(0, 1))
	require.NoError(t, err)
	_, err = solver.Solve(g)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, codec.WriteDOT(&sb, g))

	want := "digraph \"pag\" {\n" +
		"  n0;\n" +
		"  n1;\n" +
		"  n1 -> n0 [label=\"Addr\"];\n" +
		"  n0 -> n1 [label=\"AddrBar\"];\n" +
		"  n0 -> n1 [label=\"PT\", style=dashed];\n" +
		"  n1 -> n0 [label=\"PTBar\", style=dashed];\n" +
		"}\n"
	assert.Equal(t, want, sb.String())
}

func TestWriteDOT_Options(t *testing.T) {
	g, err := builder.Build(builder.AddrOf(0, 1))
	require.NoError(t, err)
	_, err = solver.Solve(g)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, codec.WriteDOT(&sb, g,
		codec.WithGraphName("initial"),
		codec.WithTerminalsOnly(),
	))

	out := sb.String()
	assert.Contains(t, out, "digraph \"initial\" {")
	assert.Contains(t, out, "label=\"AddrBar\"")
	assert.NotContains(t, out, "PT", "derived edges filtered out")
}

func TestWriteDOT_Nil(t *testing.T) {
	var sb strings.Builder
	assert.ErrorIs(t, codec.WriteDOT(&sb, nil), codec.ErrGraphNil)
}

func TestWritePointsTo(t *testing.T) {
	g, err := builder.Build(
		builder.AddrOf(0, 1),
		builder.AddrOf(0, 3),
		builder.AddrOf(2, 3),
	)
	require.NoError(t, err)
	res, err := solver.Solve(g)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, codec.WritePointsTo(&sb, res))

	want := "n0 → {n1, n3}\n" +
		"n2 → {n3}\n"
	assert.Equal(t, want, sb.String())
}

func TestWritePointsTo_EmptyAndNil(t *testing.T) {
	g := core.NewLabeledGraph()
	res, err := solver.Solve(g)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, codec.WritePointsTo(&sb, res))
	assert.Empty(t, sb.String())

	assert.ErrorIs(t, codec.WritePointsTo(&sb, nil), codec.ErrResultNil)
}
