// bottleneck.go — bottleneck distance between persistence diagrams.
//
// Contract:
//   - Compares the sub-diagrams of one homology dimension.
//   - Finite points may match each other (L∞ cost) or the diagonal
//     (half their persistence); essential (+Inf death) points may only
//     match each other, by birth difference — mismatched essential counts
//     make the distance +Inf.
//   - Exact: binary search over realized costs with an augmenting-path
//     bipartite matching feasibility test per candidate.

package persistence

import (
	"math"
	"sort"
)

// Bottleneck returns the bottleneck distance between the dimension-dim
// sub-diagrams of a and b: the smallest ε admitting a perfect matching in
// which every point moves at most ε in the L∞ metric (to a partner or to
// the diagonal).
//
// Complexity: O(c · (n+m)² · (n+m)) worst case over c candidate radii —
// exploratory-diagram sized, not bulk-sized.
func Bottleneck(a, b Diagram, dim int) float64 {
	pa, ia := splitFinite(a.ByDim(dim))
	pb, ib := splitFinite(b.ByDim(dim))

	// 1) Essential classes: match by sorted births, or fail to +Inf.
	if len(ia) != len(ib) {
		return math.Inf(1)
	}
	sort.Float64s(ia)
	sort.Float64s(ib)
	var eps float64
	for i := range ia {
		if d := math.Abs(ia[i] - ib[i]); d > eps {
			eps = d
		}
	}

	// 2) Finite classes: binary search the smallest feasible radius among
	//    all realized costs (pairwise L∞ and diagonal gaps).
	cands := candidates(pa, pb)
	lo, hi := 0, len(cands)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if feasible(pa, pb, cands[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if len(cands) > 0 && cands[lo] > eps {
		eps = cands[lo]
	}

	return eps
}

// splitFinite separates a one-dimension diagram into finite points and the
// births of its essential classes.
func splitFinite(d Diagram) (fin Diagram, infBirths []float64) {
	for _, p := range d {
		if p.Essential() {
			infBirths = append(infBirths, p.Birth)

			continue
		}
		fin = append(fin, p)
	}

	return fin, infBirths
}

// linfty is the L∞ distance between two diagram points.
func linfty(p, q Pair) float64 {
	return math.Max(math.Abs(p.Birth-q.Birth), math.Abs(p.Death-q.Death))
}

// diagGap is the L∞ distance from a point to the diagonal.
func diagGap(p Pair) float64 { return (p.Death - p.Birth) / 2 }

// candidates collects the sorted, deduplicated set of costs any optimal
// matching can realize: zero, every cross cost and every diagonal gap.
func candidates(a, b Diagram) []float64 {
	set := []float64{0}
	for _, p := range a {
		set = append(set, diagGap(p))
		for _, q := range b {
			set = append(set, linfty(p, q))
		}
	}
	for _, q := range b {
		set = append(set, diagGap(q))
	}
	sort.Float64s(set)
	out := set[:1]
	for _, v := range set[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// feasible reports whether every point of a and b can be matched within
// radius eps, allowing diagonal matches. Uses the standard diagonal-
// augmented bipartite construction: left side = a-points plus one diagonal
// slot per b-point, right side = b-points plus one diagonal slot per
// a-point. Edges within radius:
//
//   - a_i — b_j        if their L∞ distance ≤ eps,
//   - a_i — δ(a_i)     if a_i sits within eps of the diagonal,
//   - δ(b_j) — b_j     if b_j sits within eps of the diagonal,
//   - δ(b_j) — δ(a_i)  always (diagonal absorbs diagonal).
//
// Feasibility ⇔ a perfect matching of size n+m exists; Kuhn's augmenting
// paths find it.
func feasible(a, b Diagram, eps float64) bool {
	n, m := len(a), len(b)
	size := n + m // both sides have n+m nodes

	// allowed reports whether left node l may match right node r.
	// Left layout: [0,n) = a-points, [n, n+m) = diagonal slots δ(b).
	// Right layout: [0,m) = b-points, [m, m+n) = diagonal slots δ(a).
	allowed := func(l, r int) bool {
		switch {
		case l < n && r < m:
			return linfty(a[l], b[r]) <= eps
		case l < n: // a-point to its own diagonal slot
			return r-m == l && diagGap(a[l]) <= eps
		case r < m: // b-point from its own diagonal slot
			return l-n == r && diagGap(b[r]) <= eps
		default: // diagonal to diagonal
			return true
		}
	}

	matchR := make([]int, size) // right node → left node, -1 = free
	for i := range matchR {
		matchR[i] = -1
	}
	var try func(l int, seen []bool) bool
	try = func(l int, seen []bool) bool {
		for r := 0; r < size; r++ {
			if seen[r] || !allowed(l, r) {
				continue
			}
			seen[r] = true
			if matchR[r] == -1 || try(matchR[r], seen) {
				matchR[r] = l

				return true
			}
		}

		return false
	}

	for l := 0; l < size; l++ {
		if !try(l, make([]bool, size)) {
			return false
		}
	}

	return true
}
