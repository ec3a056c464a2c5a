package codec

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/cflgraph/core"
)

// Sentinel errors for encoding entry points.
var (
	// ErrGraphNil is returned when a nil graph is passed to an encoder.
	ErrGraphNil = errors.New("codec: graph is nil")

	// ErrResultNil is returned when a nil result is passed to the dump
	// writer.
	ErrResultNil = errors.New("codec: result is nil")
)

// json is the drop-in stdlib-compatible jsoniter frontend.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// edgeDoc is the wire form of one labeled edge.
type edgeDoc struct {
	Src   core.Node `json:"src"`
	Dst   core.Node `json:"dst"`
	Label string    `json:"label"`
}

// graphDoc is the wire form of a whole graph.
type graphDoc struct {
	Edges []edgeDoc `json:"edges"`
}

// MarshalGraph encodes g as a flat JSON edge list, sorted by
// (label, src, dst) so equal graphs marshal identically.
func MarshalGraph(g *core.LabeledGraph) ([]byte, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	edges := g.Edges()
	doc := graphDoc{Edges: make([]edgeDoc, len(edges))}
	for i, e := range edges {
		doc.Edges[i] = edgeDoc{Src: e.Src, Dst: e.Dst, Label: e.Label.String()}
	}

	return json.Marshal(doc)
}

// UnmarshalGraph decodes a JSON edge list into a fresh graph. Label
// names are validated; an unknown name surfaces core.ErrUnknownLabel.
// Duplicate edges in the document collapse under set semantics.
func UnmarshalGraph(data []byte) (*core.LabeledGraph, error) {
	var doc graphDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}

	g := core.NewLabeledGraph()
	for i, e := range doc.Edges {
		label, err := core.ParseLabel(e.Label)
		if err != nil {
			return nil, fmt.Errorf("codec: edge %d: %w", i, err)
		}
		g.AddEdge(e.Src, e.Dst, label)
	}

	return g, nil
}
