// Package loader reads the line-oriented graph format into a core.Graph.
package loader

import (
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/grafos/core"
)

// ErrLoad is the umbrella for every loading failure; the specific sentinels
// below all satisfy errors.Is(err, ErrLoad).
var ErrLoad = errors.New("loader: cannot load graph")

var (
	// ErrOpen indicates that the input file could not be opened.
	ErrOpen = fmt.Errorf("%w: open failed", ErrLoad)

	// ErrRead indicates an I/O failure while scanning the input.
	ErrRead = fmt.Errorf("%w: read failed", ErrLoad)

	// ErrNoEdges indicates that the input contained no valid edge line.
	ErrNoEdges = fmt.Errorf("%w: no valid edges found", ErrLoad)

	// ErrTooManyVertices indicates a problem line declaring more than
	// MaxDeclared vertices.
	ErrTooManyVertices = fmt.Errorf("%w: declared vertex count too large", ErrLoad)
)

// MaxDeclared is the largest vertex count a problem line may declare.
const MaxDeclared = 1 << 24

// Line markers of the input format.
const (
	commentMarker = "c"
	hashComment   = "#"
	problemMarker = "p"
	edgeMarker    = "e"
	utf8BOM       = "\ufeff"
)

// Result is a loaded graph plus the mapping from file ids to dense indices.
type Result struct {
	// Graph is the normalized, immutable graph.
	Graph *core.Graph

	// Mapping maps original ids to dense indices, in ascending id order.
	Mapping *orderedmap.OrderedMap[int, int]

	// Declared is the vertex count of the problem line, 0 if absent.
	Declared int

	// Edges is the number of edge lines accepted, duplicates included.
	Edges int

	labels []int
}

// N returns the number of vertices in the loaded graph.
func (r *Result) N() int { return r.Graph.N() }

// Label returns the original id of dense index i.
func (r *Result) Label(i int) int { return r.labels[i] }

// Index returns the dense index of original id and whether it exists.
func (r *Result) Index(id int) (int, bool) { return r.Mapping.Get(id) }
