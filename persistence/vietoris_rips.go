// vietoris_rips.go — Vietoris–Rips persistence in dimensions 0 and 1.
//
// Contract:
//   - Precomputed input: symmetric, zero diagonal, entries ≥ 0 or +Inf.
//   - Edges and triangles above the threshold (or at +Inf) are never built;
//     classes alive past the cap are reported with Death = +Inf.
//   - Output order is deterministic: (Dim, Birth, Death) ascending.

package persistence

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/halvik/ripsaw/cloud"
)

// edge is a 1-simplex: endpoints u < v entering the filtration at w.
type edge struct {
	u, v int
	w    float64
}

// VietorisRips computes the persistence diagram of the Vietoris–Rips
// filtration over a precomputed distance matrix ("precomputed" metric
// mode).
//
// Validation (in order):
//  1. options in domain (ErrBadMaxDimension, ErrBadThreshold,
//     ErrBadMinPersistence)
//  2. dist != nil and square (ErrNilMatrix, ErrNotSquare)
//  3. exactly symmetric (ErrAsymmetric)
//  4. zero diagonal (ErrBadDiagonal)
//  5. no negative/NaN entry (ErrBadDistance)
//
// Complexity: O(n² log n) for dimension 0; triangle enumeration adds
// O(n³) when dimension 1 is requested.
func VietorisRips(dist mat.Matrix, opts ...Option) (Diagram, error) {
	// 1) Resolve and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxDim < 0 || cfg.maxDim > DefaultMaxDimension {
		return nil, fmt.Errorf("persistence.VietorisRips: dim=%d: %w", cfg.maxDim, ErrBadMaxDimension)
	}
	if cfg.threshold < 0 {
		return nil, fmt.Errorf("persistence.VietorisRips: t=%g: %w", cfg.threshold, ErrBadThreshold)
	}
	if cfg.minPersistence < 0 {
		return nil, fmt.Errorf("persistence.VietorisRips: eps=%g: %w", cfg.minPersistence, ErrBadMinPersistence)
	}

	// 2) Validate the matrix.
	if dist == nil {
		return nil, fmt.Errorf("persistence.VietorisRips: %w", ErrNilMatrix)
	}
	n, c := dist.Dims()
	if n != c {
		return nil, fmt.Errorf("persistence.VietorisRips: %dx%d: %w", n, c, ErrNotSquare)
	}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		if dist.At(i, i) != 0 {
			return nil, fmt.Errorf("persistence.VietorisRips: d[%d,%d]=%g: %w", i, i, dist.At(i, i), ErrBadDiagonal)
		}
		for j = i + 1; j < n; j++ {
			v = dist.At(i, j)
			if v != dist.At(j, i) && !(math.IsNaN(v) && math.IsNaN(dist.At(j, i))) {
				return nil, fmt.Errorf("persistence.VietorisRips: d[%d,%d]=%g, d[%d,%d]=%g: %w",
					i, j, v, j, i, dist.At(j, i), ErrAsymmetric)
			}
			if v < 0 || math.IsNaN(v) {
				return nil, fmt.Errorf("persistence.VietorisRips: d[%d,%d]=%g: %w", i, j, v, ErrBadDistance)
			}
		}
	}

	// 3) Collect admissible edges and sort them into filtration order.
	//    +Inf and above-threshold edges never enter the complex.
	edges := make([]edge, 0, n*(n-1)/2)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = dist.At(i, j)
			if v > cfg.threshold || math.IsInf(v, 1) {
				continue
			}
			edges = append(edges, edge{u: i, v: j, w: v})
		}
	}
	sort.SliceStable(edges, func(a, b int) bool {
		if edges[a].w != edges[b].w {
			return edges[a].w < edges[b].w
		}
		if edges[a].u != edges[b].u {
			return edges[a].u < edges[b].u
		}

		return edges[a].v < edges[b].v
	})

	// 4) Dimension 0: Kruskal's scan. A merging edge kills a component at
	//    its weight; cycle-creating ("positive") edges are remembered as
	//    dimension-1 birth candidates.
	dgm := make(Diagram, 0, n)
	positive := make([]bool, len(edges))
	uf := newUnionFind(n)
	components := n
	for idx, e := range edges {
		if uf.union(e.u, e.v) {
			components--
			if e.w > cfg.minPersistence {
				dgm = append(dgm, Pair{Birth: 0, Death: e.w, Dim: 0})
			}

			continue
		}
		positive[idx] = true
	}
	// Components alive after the full filtration are essential.
	for i = 0; i < components; i++ {
		dgm = append(dgm, Pair{Birth: 0, Death: math.Inf(1), Dim: 0})
	}

	// 5) Dimension 1: triangle/edge boundary reduction.
	if cfg.maxDim >= 1 {
		dgm = append(dgm, reduceTriangles(n, edges, positive, cfg)...)
	}

	// 6) Deterministic output order.
	sort.SliceStable(dgm, func(a, b int) bool {
		if dgm[a].Dim != dgm[b].Dim {
			return dgm[a].Dim < dgm[b].Dim
		}
		if dgm[a].Birth != dgm[b].Birth {
			return dgm[a].Birth < dgm[b].Birth
		}

		return dgm[a].Death < dgm[b].Death
	})

	return dgm, nil
}

// FromCloud computes Vietoris–Rips persistence of a point cloud in the
// "euclidean" metric mode: the pairwise Euclidean matrix is computed first,
// then the filtration proceeds as in VietorisRips.
func FromCloud(pc *cloud.PointCloud, opts ...Option) (Diagram, error) {
	if pc == nil {
		return nil, fmt.Errorf("persistence.FromCloud: %w", ErrNilCloud)
	}
	d, err := cloud.EuclideanMatrix(pc)
	if err != nil {
		return nil, fmt.Errorf("persistence.FromCloud: %w", err)
	}

	return VietorisRips(d, opts...)
}

// triangle is a 2-simplex: ascending edge indices e, entering the
// filtration at val = the weight of its latest edge.
type triangle struct {
	val float64
	e   [3]int
}

// reduceTriangles runs the GF(2) boundary-matrix reduction of the
// triangle/edge incidences and returns the dimension-1 pairs.
//
// The reduction invariant: lowToCol maps each claimed "low" (largest edge
// index of a reduced column) to the column that owns it; adding that column
// (symmetric difference over GF(2)) cancels the low and strictly shrinks
// the candidate. A column that empties is a positive triangle (births a
// 2-class, outside our range); a column that survives pairs its low edge's
// birth with the triangle's value.
func reduceTriangles(n int, edges []edge, positive []bool, cfg Options) Diagram {
	// 1) Edge index lookup for triangle assembly.
	eidx := make(map[int64]int, len(edges))
	for idx, e := range edges {
		eidx[int64(e.u)*int64(n)+int64(e.v)] = idx
	}
	key := func(a, b int) int64 {
		if a > b {
			a, b = b, a
		}

		return int64(a)*int64(n) + int64(b)
	}

	// 2) Enumerate triangles whose three edges are all admissible.
	var tris []triangle
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			ij, ok := eidx[key(i, j)]
			if !ok {
				continue
			}
			for k = j + 1; k < n; k++ {
				ik, ok := eidx[key(i, k)]
				if !ok {
					continue
				}
				jk, ok := eidx[key(j, k)]
				if !ok {
					continue
				}
				t := triangle{e: [3]int{ij, ik, jk}}
				sort.Ints(t.e[:])
				t.val = edges[t.e[2]].w // latest edge fixes the entry value
				tris = append(tris, t)
			}
		}
	}

	// 3) Filtration order for triangles: by value, then by latest edge
	//    index so ties resolve consistently with the edge order.
	sort.SliceStable(tris, func(a, b int) bool {
		if tris[a].val != tris[b].val {
			return tris[a].val < tris[b].val
		}
		if tris[a].e[2] != tris[b].e[2] {
			return tris[a].e[2] < tris[b].e[2]
		}
		if tris[a].e[1] != tris[b].e[1] {
			return tris[a].e[1] < tris[b].e[1]
		}

		return tris[a].e[0] < tris[b].e[0]
	})

	// 4) Column reduction.
	dgm := make(Diagram, 0)
	lowToCol := make(map[int]int, len(tris))
	cols := make([][]int, len(tris))
	paired := make(map[int]bool, len(tris))
	for ti, t := range tris {
		col := []int{t.e[0], t.e[1], t.e[2]}
		for len(col) > 0 {
			low := col[len(col)-1]
			owner, ok := lowToCol[low]
			if !ok {
				break
			}
			col = symDiff(col, cols[owner])
		}
		if len(col) == 0 {
			continue // positive triangle: creates a 2-class, out of range
		}
		low := col[len(col)-1]
		lowToCol[low] = ti
		cols[ti] = col
		paired[low] = true
		if birth, death := edges[low].w, t.val; death-birth > cfg.minPersistence {
			dgm = append(dgm, Pair{Birth: birth, Death: death, Dim: 1})
		}
	}

	// 5) Positive edges never killed by a triangle are essential 1-classes.
	for idx, pos := range positive {
		if pos && !paired[idx] {
			dgm = append(dgm, Pair{Birth: edges[idx].w, Death: math.Inf(1), Dim: 1})
		}
	}

	return dgm
}

// symDiff returns the symmetric difference of two ascending int slices —
// column addition over GF(2).
func symDiff(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	var i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// unionFind is a disjoint-set forest with path compression and union by
// rank over integer vertices.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// find walks to the root, halving the path as it goes.
func (uf *unionFind) find(u int) int {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}

	return u
}

// union merges the sets of u and v; reports false when they were already
// joined (the edge closes a cycle).
func (uf *unionFind) union(u, v int) bool {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return false
	}
	if uf.rank[ru] < uf.rank[rv] {
		ru, rv = rv, ru
	}
	uf.parent[rv] = ru
	if uf.rank[ru] == uf.rank[rv] {
		uf.rank[ru]++
	}

	return true
}
