package prim_kruskal

// dsu is a disjoint-set forest over dense indices [0, n).
// parent[v] == v marks a root; rank bounds tree height for union by rank.
type dsu struct {
	parent []int
	rank   []int
}

// newDSU returns n singleton sets.
// Complexity: O(n).
func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for v := range d.parent {
		d.parent[v] = v
	}

	return d
}

// find returns the root of v's set, halving the path on the way up
// (every visited node is re-pointed to its grandparent).
// Complexity: O(α(n)) amortized.
func (d *dsu) find(v int) int {
	for d.parent[v] != v {
		d.parent[v] = d.parent[d.parent[v]]
		v = d.parent[v]
	}

	return v
}

// union merges the sets of u and v and reports whether they were disjoint.
// Complexity: O(α(n)) amortized.
func (d *dsu) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	// Attach the shallower tree under the deeper root.
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}

	return true
}
