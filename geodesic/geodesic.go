// geodesic.go — sparse all-pairs shortest paths via gonum Dijkstra.
//
// Contract:
//   - Node IDs must be exactly 0..n−1 (point indices), as produced by knn.
//   - All edge weights must be non-negative; violations fail fast with
//     ErrNegativeWeight before any path computation runs.
//   - +Inf in the output means "no path"; the diagonal is always 0.

package geodesic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// AllPairs computes the all-pairs shortest-path distance matrix of g.
// Entry (i,j) is the minimum total edge weight over paths from node i to
// node j, +Inf if no path exists.
//
// Validation (in order):
//  1. g != nil                    (ErrNilGraph)
//  2. node IDs are exactly 0..n−1 (ErrBadNodeIDs)
//  3. no negative edge weight     (ErrNegativeWeight)
//
// Complexity: O(n·(E + n) log n) time, O(n²) space.
func AllPairs(g *simple.WeightedUndirectedGraph) (*mat.Dense, error) {
	// 1) Validate the graph.
	if g == nil {
		return nil, fmt.Errorf("geodesic.AllPairs: %w", ErrNilGraph)
	}

	// 2) Node IDs must form the contiguous range 0..n−1 so they can index
	//    matrix rows directly.
	n := g.Nodes().Len()
	for i := 0; i < n; i++ {
		if g.Node(int64(i)) == nil {
			return nil, fmt.Errorf("geodesic.AllPairs: missing node %d of %d: %w", i, n, ErrBadNodeIDs)
		}
	}

	// 3) Pre-scan edges for negative weights; gonum's Dijkstra panics on
	//    them, so reject with a sentinel first.
	it := g.WeightedEdges()
	for it.Next() {
		if e := it.WeightedEdge(); e.Weight() < 0 {
			return nil, fmt.Errorf("geodesic.AllPairs: edge %d—%d weight=%g: %w",
				e.From().ID(), e.To().ID(), e.Weight(), ErrNegativeWeight)
		}
	}

	// 4) Delegate: Dijkstra from every source.
	paths := path.DijkstraAllPaths(g)

	// 5) Materialize the distance matrix; Weight reports +Inf when no path
	//    exists, which is exactly the sentinel we expose.
	d := mat.NewDense(n, n, nil)
	var i, j int
	var w float64
	for i = 0; i < n; i++ {
		d.Set(i, i, 0)
		for j = i + 1; j < n; j++ {
			w = paths.Weight(int64(i), int64(j))
			d.Set(i, j, w)
			d.Set(j, i, w)
		}
	}

	return d, nil
}

// DenseAllPairs runs an all-pairs shortest-path metric closure on d
// in place, treating entry (i,j) as the direct edge weight between i and j
// and +Inf as "no edge". On return, entry (i,j) is the shortest-path
// distance. The loop order is fixed (k → i → j) for deterministic
// accumulation.
//
// Validation (in order):
//  1. d != nil          (ErrNilMatrix)
//  2. d is square       (ErrNotSquare)
//  3. zero diagonal     (ErrBadDiagonal)
//  4. no negative entry (ErrNegativeWeight)
//
// Complexity: O(n³) time, O(1) extra space. No allocations in the hot loops.
func DenseAllPairs(d *mat.Dense) error {
	// 1) Validate shape.
	if d == nil {
		return fmt.Errorf("geodesic.DenseAllPairs: %w", ErrNilMatrix)
	}
	r, c := d.Dims()
	if r != c {
		return fmt.Errorf("geodesic.DenseAllPairs: %dx%d: %w", r, c, ErrNotSquare)
	}

	// 2) Validate values: zero diagonal, non-negative entries.
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < r; j++ {
			v = d.At(i, j)
			if i == j && v != 0 {
				return fmt.Errorf("geodesic.DenseAllPairs: d[%d,%d]=%g: %w", i, j, v, ErrBadDiagonal)
			}
			if v < 0 {
				return fmt.Errorf("geodesic.DenseAllPairs: d[%d,%d]=%g: %w", i, j, v, ErrNegativeWeight)
			}
		}
	}

	// 3) Closure over the raw row-major buffer; stride-aware offsets keep
	//    the inner loop free of virtual calls.
	raw := d.RawMatrix()
	data, stride, n := raw.Data, raw.Stride, r

	var (
		k            int     // intermediate vertex
		baseK, baseI int     // row offsets for k and i in the flat buffer
		ik, kj, cand float64 // d[i,k], d[k,j] and the candidate via k
	)
	for k = 0; k < n; k++ {
		baseK = k * stride

		for i = 0; i < n; i++ {
			ik = data[i*stride+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k: no path via k can improve row i
			}
			baseI = i * stride

			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue // k cannot reach j
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}
