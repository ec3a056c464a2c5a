package grammar

import "github.com/katalvlaran/cflgraph/core"

// Unary is a production L → Result: any L-labeled edge derives a
// Result-labeled edge between the same endpoints.
type Unary struct {
	Operand core.EdgeLabel
	Result  core.EdgeLabel
}

// Binary is a production Left · Right → Result: an edge (u, v, Left)
// joined with an edge (v, w, Right) derives (u, w, Result).
type Binary struct {
	Left   core.EdgeLabel
	Right  core.EdgeLabel
	Result core.EdgeLabel
}

// Grammar is an immutable production set indexed three ways so the
// solver can match a popped edge against every rule it could
// participate in without scanning the whole set.
type Grammar struct {
	unaries  []Unary
	binaries []Binary

	// unaryByOperand[l] lists the result labels of unary rules on l.
	unaryByOperand [core.NumLabels][]core.EdgeLabel

	// byLeft[l] lists binary rules whose left operand is l.
	byLeft [core.NumLabels][]Binary

	// byRight[l] lists binary rules whose right operand is l.
	byRight [core.NumLabels][]Binary
}

// New builds a Grammar from explicit production lists. Productions with
// labels outside the alphabet are dropped silently; the fixed grammars
// shipped with this module never contain any.
func New(unaries []Unary, binaries []Binary) *Grammar {
	g := &Grammar{}
	for _, u := range unaries {
		if !u.Operand.Valid() || !u.Result.Valid() {
			continue
		}
		g.unaries = append(g.unaries, u)
		g.unaryByOperand[u.Operand] = append(g.unaryByOperand[u.Operand], u.Result)
	}
	for _, b := range binaries {
		if !b.Left.Valid() || !b.Right.Valid() || !b.Result.Valid() {
			continue
		}
		g.binaries = append(g.binaries, b)
		g.byLeft[b.Left] = append(g.byLeft[b.Left], b)
		g.byRight[b.Right] = append(g.byRight[b.Right], b)
	}

	return g
}

// Andersen returns the fixed production set of inclusion-based pointer
// analysis. See the package documentation for the reading of each rule.
func Andersen() *Grammar {
	return New(
		[]Unary{
			{Operand: core.AddrBar, Result: core.PT},
		},
		[]Binary{
			{Left: core.CopyBar, Right: core.PT, Result: core.PT},
			{Left: core.Store, Right: core.PT, Result: core.PV},
			{Left: core.PTBar, Right: core.Load, Result: core.VP},
			{Left: core.PV, Right: core.VP, Result: core.Copy},
		},
	)
}

// Unaries returns the unary productions in declaration order.
func (g *Grammar) Unaries() []Unary {
	return append([]Unary(nil), g.unaries...)
}

// Binaries returns the binary productions in declaration order.
func (g *Grammar) Binaries() []Binary {
	return append([]Binary(nil), g.binaries...)
}

// UnaryResults returns the result labels of every unary production
// whose operand is l. The returned slice is shared; callers must not
// mutate it.
func (g *Grammar) UnaryResults(l core.EdgeLabel) []core.EdgeLabel {
	if !l.Valid() {
		return nil
	}

	return g.unaryByOperand[l]
}

// LeftMatches returns every binary production whose left operand is l:
// the rules a popped l-edge participates in as the left factor. The
// returned slice is shared; callers must not mutate it.
func (g *Grammar) LeftMatches(l core.EdgeLabel) []Binary {
	if !l.Valid() {
		return nil
	}

	return g.byLeft[l]
}

// RightMatches returns every binary production whose right operand is
// l: the rules a popped l-edge participates in as the right factor. The
// returned slice is shared; callers must not mutate it.
func (g *Grammar) RightMatches(l core.EdgeLabel) []Binary {
	if !l.Valid() {
		return nil
	}

	return g.byRight[l]
}
