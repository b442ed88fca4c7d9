// knn.go — k-nearest-neighbor and complete graph construction.
//
// Contract:
//   - Node IDs are point indices 0..n−1; every node is present even before
//     its first edge is added.
//   - Symmetrization: an edge exists if either endpoint lists the other
//     among its k nearest neighbors. Re-adding the mirrored edge overwrites
//     with the identical weight, so the policy is order-independent.
//   - Neighbor search is performed by gonum's kd-tree; this file never
//     compares all pairs in the restricted variant.

package knn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/halvik/ripsaw/cloud"
)

// Build constructs the k-nearest-neighbor graph of pc: each point is joined
// to its k nearest neighbors by Euclidean distance, with edges shared as
// soon as either endpoint lists the other.
//
// Validation (in order):
//  1. pc != nil        (ErrNilCloud)
//  2. n ≥ 2            (ErrTooFewPoints)
//  3. 1 ≤ k ≤ n−1      (ErrBadNeighborCount)
//
// Complexity: O(n log n) construction + O(n·k log n) queries; O(n·k) edges.
func Build(pc *cloud.PointCloud, k int, opts ...Option) (*simple.WeightedUndirectedGraph, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Fail-fast validation.
	if pc == nil {
		return nil, fmt.Errorf("knn.Build: %w", ErrNilCloud)
	}
	n := pc.Len()
	if n < 2 {
		return nil, fmt.Errorf("knn.Build: n=%d: %w", n, ErrTooFewPoints)
	}
	if k < 1 || k > n-1 {
		return nil, fmt.Errorf("knn.Build: k=%d, n=%d: %w", k, n, ErrBadNeighborCount)
	}

	// 3) Assemble the kd-tree over index-tagged positions. kdtree.New
	//    partitions its input in place, so it gets a copy: vs itself must
	//    stay index-aligned for the query loop below.
	vs := make(vertices, n)
	for i := 0; i < n; i++ {
		vs[i] = vertex{pos: kdtree.Point(pc.At(i)), id: i}
	}
	tree := kdtree.New(append(vertices(nil), vs...), false)

	// 4) Pre-register all nodes so the graph covers isolated indices too.
	g := newGraph(n)

	// 5) Query k+1 nearest per point (the query point is its own nearest
	//    neighbor at distance 0) and emit edges.
	for i := 0; i < n; i++ {
		keep := kdtree.NewNKeeper(k + 1)
		tree.NearestSet(keep, vs[i])
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				// Unfilled keeper slot; cannot occur for k+1 ≤ n, but guard anyway.
				continue
			}
			v := c.Comparable.(vertex)
			if v.id == i {
				continue // skip the query point itself
			}
			// kd-tree distances are squared Euclidean; undo before weighting.
			setEdge(g, i, v.id, cfg.applyWeight(math.Sqrt(c.Dist)))
		}
	}

	return g, nil
}

// Complete constructs the unrestricted variant: the complete graph over pc
// with every pair joined, weighted by the (optionally transformed)
// Euclidean distance.
//
// Complexity: O(n²·d) time, O(n²) edges — prefer geodesic.DenseAllPairs on
// a dense matrix when only distances (not a graph value) are needed.
func Complete(pc *cloud.PointCloud, opts ...Option) (*simple.WeightedUndirectedGraph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if pc == nil {
		return nil, fmt.Errorf("knn.Complete: %w", ErrNilCloud)
	}
	n := pc.Len()
	if n < 2 {
		return nil, fmt.Errorf("knn.Complete: n=%d: %w", n, ErrTooFewPoints)
	}

	e, err := cloud.EuclideanMatrix(pc)
	if err != nil {
		return nil, fmt.Errorf("knn.Complete: %w", err)
	}

	g := newGraph(n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			setEdge(g, i, j, cfg.applyWeight(e.At(i, j)))
		}
	}

	return g, nil
}

// newGraph allocates a weighted undirected graph with nodes 0..n−1 present,
// zero self-weight and +Inf absent-weight (the "no path" sentinel used
// throughout the metric pipeline).
func newGraph(n int) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}

	return g
}

// setEdge records an undirected weighted edge between point indices i and j.
func setEdge(g *simple.WeightedUndirectedGraph, i, j int, w float64) {
	g.SetWeightedEdge(simple.WeightedEdge{
		F: simple.Node(int64(i)),
		T: simple.Node(int64(j)),
		W: w,
	})
}

// vertex couples a spatial position with its point index so that tree query
// results map back to graph node IDs.
type vertex struct {
	pos kdtree.Point
	id  int
}

// Compare returns the signed distance of v from the plane through c along
// dimension d. Part of kdtree.Comparable.
func (v vertex) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return v.pos.Compare(c.(vertex).pos, d)
}

// Dims returns the number of spatial dimensions. Part of kdtree.Comparable.
func (v vertex) Dims() int { return len(v.pos) }

// Distance returns the squared Euclidean distance to c. Part of
// kdtree.Comparable.
func (v vertex) Distance(c kdtree.Comparable) float64 {
	return v.pos.Distance(c.(vertex).pos)
}

// vertices implements kdtree.Interface over index-tagged positions.
type vertices []vertex

func (p vertices) Index(i int) kdtree.Comparable         { return p[i] }
func (p vertices) Len() int                              { return len(p) }
func (p vertices) Pivot(d kdtree.Dim) int                { return plane{Dim: d, vertices: p}.Pivot() }
func (p vertices) Slice(start, end int) kdtree.Interface { return p[start:end] }

// plane is the sort-slicer used by Pivot for median-of-medians partitioning.
type plane struct {
	kdtree.Dim
	vertices
}

func (p plane) Less(i, j int) bool {
	return p.vertices[i].pos[p.Dim] < p.vertices[j].pos[p.Dim]
}
func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.vertices = p.vertices[start:end]

	return p
}
func (p plane) Swap(i, j int) {
	p.vertices[i], p.vertices[j] = p.vertices[j], p.vertices[i]
}
