// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted distances, parent links and visit order, plus
// connected-component discovery.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/grafos/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit error.
// Complexity: O(V + E).
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= g.N() {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	w := newWalker(g, o)
	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

func newWalker(g *core.Graph, o BFSOptions) *walker {
	n := g.N()
	res := &BFSResult{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = Unreached
		res.Parent[v] = Unreached
	}

	return &walker{graph: g, opts: o, queue: make([]int, 0, n), res: res}
}

// enqueue marks v discovered at depth d with the given parent.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		d := w.res.Depth[v]

		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}

		next := d + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(v) {
			if w.res.Depth[nbr] == Unreached {
				w.enqueue(nbr, next, v)
			}
		}
	}

	return nil
}

// Components partitions the vertices of g into connected components.
// Components are ordered by their smallest vertex; each lists its vertices
// in BFS order from that vertex.
// Complexity: O(V + E).
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	w := newWalker(g, DefaultOptions())

	var comps [][]int
	for v := 0; v < g.N(); v++ {
		if w.res.Depth[v] != Unreached {
			continue
		}
		from := len(w.res.Order)
		w.enqueue(v, 0, Unreached)
		// Default options carry no hooks or deadline, so loop cannot fail.
		_ = w.loop()
		comps = append(comps, w.res.Order[from:len(w.res.Order):len(w.res.Order)])
	}

	return comps
}
