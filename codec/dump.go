package codec

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/cflgraph/solver"
)

// WritePointsTo writes the human-readable points-to dump: one line per
// pointer, objects grouped and ascending,
//
//	n0 → {n1, n4}
//	n2 → {n1}
//
// Pointers with empty points-to sets produce no line. Output is
// deterministic per saturated graph.
func WritePointsTo(w io.Writer, res *solver.Result) error {
	if res == nil {
		return ErrResultNil
	}

	pairs := res.PointsTo()
	for i := 0; i < len(pairs); {
		ptr := pairs[i].Ptr
		var objs []string
		for ; i < len(pairs) && pairs[i].Ptr == ptr; i++ {
			objs = append(objs, fmt.Sprintf("n%d", pairs[i].Obj))
		}
		if _, err := fmt.Fprintf(w, "n%d → {%s}\n", ptr, strings.Join(objs, ", ")); err != nil {
			return err
		}
	}

	return nil
}
