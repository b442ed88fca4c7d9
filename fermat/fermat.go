// fermat.go — the Fermat distance estimator.
//
// Contract:
//   - Output indexed by point position, symmetric, zero diagonal, triangle
//     inequality by construction (shortest-path closure).
//   - +Inf entries appear only under a restricted k that disconnects the
//     neighbor graph; they must be read as "no path".

package fermat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/halvik/ripsaw/cloud"
	"github.com/halvik/ripsaw/geodesic"
	"github.com/halvik/ripsaw/knn"
)

// Distances computes the Fermat distance matrix of pc for deformation
// exponent p: all-pairs shortest paths over Euclidean edge weights raised
// to the p-th power, optionally restricted to the k-NN graph
// (WithNeighbors).
//
// Validation (in order):
//  1. pc != nil                        (ErrNilCloud)
//  2. p ≥ 1                            (ErrInfeasibleExponent)
//  3. k == Unrestricted or 1 ≤ k ≤ n−1 (ErrBadNeighborCount)
//
// Complexity: O(n³) unrestricted; O(n·(nk + n) log n) restricted.
func Distances(pc *cloud.PointCloud, p float64, opts ...Option) (*mat.Dense, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Fail-fast validation.
	if pc == nil {
		return nil, fmt.Errorf("fermat.Distances: %w", ErrNilCloud)
	}
	if p < 1 || math.IsNaN(p) {
		return nil, fmt.Errorf("fermat.Distances: p=%g: %w", p, ErrInfeasibleExponent)
	}
	n := pc.Len()
	if cfg.neighbors != Unrestricted && (cfg.neighbors < 1 || cfg.neighbors > n-1) {
		return nil, fmt.Errorf("fermat.Distances: k=%d, n=%d: %w", cfg.neighbors, n, ErrBadNeighborCount)
	}

	// 3) Restricted variant: k-NN graph with deformed weights, then
	//    Dijkstra from every source.
	if cfg.neighbors != Unrestricted {
		g, err := knn.Build(pc, cfg.neighbors, knn.WithWeight(deform(p)))
		if err != nil {
			return nil, fmt.Errorf("fermat.Distances: %w", err)
		}
		d, err := geodesic.AllPairs(g)
		if err != nil {
			return nil, fmt.Errorf("fermat.Distances: %w", err)
		}

		return d, nil
	}

	// 4) Unrestricted variant: deform the dense Euclidean matrix in place
	//    and run the metric closure — no graph value needed for a complete
	//    graph.
	e, err := cloud.EuclideanMatrix(pc)
	if err != nil {
		return nil, fmt.Errorf("fermat.Distances: %w", err)
	}

	d := mat.NewDense(n, n, nil)
	w := deform(p)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = w(e.At(i, j))
			d.Set(i, j, v)
			d.Set(j, i, v)
		}
	}
	if err = geodesic.DenseAllPairs(d); err != nil {
		return nil, fmt.Errorf("fermat.Distances: %w", err)
	}

	return d, nil
}

// deform returns the edge-weight deformation d ↦ d^p. p=1 short-circuits to
// the identity so the undeformed limit is exact, not merely approximate.
func deform(p float64) knn.WeightFunc {
	if p == 1 {
		return func(d float64) float64 { return d }
	}

	return func(d float64) float64 { return math.Pow(d, p) }
}
