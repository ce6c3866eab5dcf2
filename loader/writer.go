package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/grafos/core"
)

// Write serializes g in the format Parse reads: a comment, a problem line
// "p edge N M" and one "e u v w" line per edge in canonical order.
//
// label maps a dense index to the id written to the file; nil writes 1-based
// ids, so the declared count restores isolated vertices on re-parse.
// Complexity: O(V + E).
func Write(w io.Writer, g *core.Graph, label func(int) int) error {
	if label == nil {
		label = func(i int) int { return i + 1 }
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s grafos graph: %d vertices, %d edges\n", commentMarker, g.N(), g.EdgeCount())
	fmt.Fprintf(bw, "%s edge %d %d\n", problemMarker, g.N(), g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%s %d %d %s\n", edgeMarker, label(e.From), label(e.To),
			strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}

	return bw.Flush()
}
