package loader

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/grafos/core"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// rawEdge is an accepted edge line in original ids.
type rawEdge struct {
	u, v int
	w    float64
}

// Load opens path and parses it with Parse.
//
// Errors:
//   - ErrOpen (also wrapping the OS error) if the file cannot be opened.
//   - ErrRead, ErrNoEdges from Parse.
func Load(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	res, err := Parse(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s", path)
	}

	return res, nil
}

// Parse reads the graph format from r.
//
// Steps:
//  1. Skip blank lines and comment lines ("c..." or "#...").
//  2. "p <kind> <N> ..." records the declared vertex count N.
//  3. Any other line, after dropping a leading "e", must read "<u> <v> [w]";
//     lines that fail to parse are skipped, self-loops are discarded.
//  4. The vertex universe is every endpoint, padded with [base, base+N) when
//     N > 0, where base is 0 if the smallest endpoint is 0 and 1 otherwise.
//  5. Ids are sorted and remapped to 0..n-1; edges are replayed in file
//     order so a repeated pair keeps its last weight.
//
// Complexity: O(L + V log V + E) for L input lines.
func Parse(r io.Reader) (*Result, error) {
	var (
		edges    []rawEdge
		declared int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, commentMarker) || strings.HasPrefix(line, hashComment) {
			continue
		}

		fields := strings.Fields(line)
		if n, ok := problemCount(fields); ok {
			if n > MaxDeclared {
				return nil, fmt.Errorf("%w: %s > %d", ErrTooManyVertices, fields[2], MaxDeclared)
			}
			declared = n
			continue
		}
		if fields[0] == edgeMarker {
			fields = fields[1:]
		}

		e, ok := parseEdge(fields)
		if !ok || e.u == e.v {
			continue
		}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}

	return normalize(edges, declared)
}

// problemCount recognizes "p <kind> <digits> ...". A count too large for
// int is reported as math.MaxInt.
func problemCount(fields []string) (int, bool) {
	if fields[0] != problemMarker || len(fields) < 3 || !isDigits(fields[2]) {
		return 0, false
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return math.MaxInt, true
	}

	return n, true
}

// parseEdge reads "<u> <v> [w]"; extra trailing fields are ignored.
func parseEdge(fields []string) (rawEdge, bool) {
	if len(fields) < 2 {
		return rawEdge{}, false
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return rawEdge{}, false
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return rawEdge{}, false
	}
	w := core.DefaultWeight
	if len(fields) >= 3 {
		if w, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return rawEdge{}, false
		}
	}

	return rawEdge{u: u, v: v, w: w}, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return s != ""
}

// normalize remaps original ids to dense indices and builds the graph.
func normalize(edges []rawEdge, declared int) (*Result, error) {
	universe := mapset.NewThreadUnsafeSetWithSize[int](2*len(edges) + declared)
	lowest := edges[0].u
	for _, e := range edges {
		universe.Add(e.u)
		universe.Add(e.v)
		lowest = min(lowest, e.u, e.v)
	}
	if declared > 0 {
		base := 1
		if lowest == 0 {
			base = 0
		}
		for id := base; id < base+declared; id++ {
			universe.Add(id)
		}
	}

	labels := universe.ToSlice()
	sort.Ints(labels)

	mapping := orderedmap.New[int, int](len(labels))
	for i, id := range labels {
		mapping.Set(id, i)
	}

	b, err := core.NewBuilder(len(labels))
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		u, _ := mapping.Get(e.u)
		v, _ := mapping.Get(e.v)
		if err := b.AddEdge(u, v, e.w); err != nil {
			return nil, err
		}
	}

	return &Result{
		Graph:    b.Build(),
		Mapping:  mapping,
		Declared: declared,
		Edges:    len(edges),
		labels:   labels,
	}, nil
}
