// Package converters provides adapters between core.Graph and gonum/graph.
//
// ToGonum exports the dense graph as a simple.WeightedUndirectedGraph whose
// node IDs are the dense indices. ReferenceMST runs gonum's own Kruskal on
// that export, giving an implementation-independent MST weight to check
// prim_kruskal against.
package converters
