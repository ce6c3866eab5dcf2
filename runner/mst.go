package runner

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/katalvlaran/grafos/bfs"
	"github.com/katalvlaran/grafos/converters"
	"github.com/katalvlaran/grafos/loader"
	"github.com/katalvlaran/grafos/prim_kruskal"
)

// mstTolerance is the relative tolerance for comparing MST totals.
const mstTolerance = 1e-9

// mstLabels are the report names of prim_kruskal.Methods.
var mstLabels = map[string]string{
	prim_kruskal.MethodPrim:    "Prim",
	prim_kruskal.MethodKruskal: "Kruskal",
}

// mstRun is the outcome of one MST algorithm.
type mstRun struct {
	method string
	tree   prim_kruskal.Tree
	timing timing
}

// runMST runs Prim and Kruskal on the same graph and reports both totals.
func (r *Runner) runMST(path string, res *loader.Result) error {
	g := res.Graph
	comps := len(bfs.Components(g))
	if comps > 1 {
		r.log.Warn("graph is disconnected; MST results are partial",
			zap.String("path", path),
			zap.Int("components", comps),
		)
	}

	fmt.Fprintf(r.out, "MST for %s (%s vertices, %s components)\n",
		path, humanize.Comma(int64(g.N())), humanize.Comma(int64(comps)))

	runs := make([]mstRun, 0, len(prim_kruskal.Methods))
	for _, method := range prim_kruskal.Methods {
		var tree prim_kruskal.Tree
		t, err := measure(r.opts.Repeat, func(first bool) error {
			tr, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: method})
			if first {
				tree = tr
			}
			return err
		})
		if err != nil {
			return err
		}
		runs = append(runs, mstRun{method: method, tree: tree, timing: t})

		fmt.Fprintf(r.out, "%s total weight: %g (%d edges, %.6fs)\n",
			mstLabels[method], tree.Total, len(tree.Edges), t.mean)
		if t.runs > 1 {
			fmt.Fprintf(r.out, "  runs: %d (stddev %.6fs)\n", t.runs, t.std)
		}
		if r.opts.Show && g.N() < r.cfg.ShowLimit {
			for _, e := range tree.Edges {
				fmt.Fprintf(r.out, "  %d - %d (%g)\n", res.Label(e.From), res.Label(e.To), e.Weight)
			}
		}
	}

	if r.opts.Verify {
		if err := r.verifyMST(res, runs, comps); err != nil {
			return err
		}
	}

	if r.opts.Output != "" {
		rows := make([][]string, 0, len(runs))
		for _, run := range runs {
			rows = append(rows, []string{
				run.method,
				strconv.FormatFloat(run.tree.Total, 'g', -1, 64),
				strconv.FormatFloat(run.timing.mean, 'f', 6, 64),
				strconv.Itoa(len(run.tree.Edges)),
			})
		}
		return r.writeCSV(r.opts.Output, []string{"algorithm", "total_weight", "seconds", "edges"}, rows)
	}

	return nil
}

// verifyMST compares the totals with gonum's Kruskal. Prim only spans
// vertex 0's component, so on a disconnected graph it is skipped.
func (r *Runner) verifyMST(res *loader.Result, runs []mstRun, comps int) error {
	_, want := converters.ReferenceMST(res.Graph)
	for _, run := range runs {
		if run.method == prim_kruskal.MethodPrim && comps > 1 {
			continue
		}
		if !closeEnough(run.tree.Total, want) {
			return fmt.Errorf("%w: %s total %g, reference %g", ErrMSTMismatch, run.method, run.tree.Total, want)
		}
	}
	fmt.Fprintf(r.out, "Reference total weight: %g (verified)\n", want)

	return nil
}

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) <= mstTolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
