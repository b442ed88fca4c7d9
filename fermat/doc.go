// Package fermat estimates the Fermat distance on a point cloud: a
// density-deformed geodesic in which traversal through sparsely sampled
// regions is penalized by raising Euclidean edge lengths to an exponent
// p ≥ 1 before taking shortest paths.
//
// Canonical model:
//
//  1. E — the full pairwise Euclidean distance matrix over the n points.
//  2. A weighted graph G on the points with edge weight E(i,j)^p:
//     unrestricted (default) G is the complete graph; with WithNeighbors(k)
//     G keeps only k-nearest-neighbor edges, shared as soon as either
//     endpoint lists the other.
//  3. F(i,j) — the minimum over all paths in G of the summed edge weights:
//     the all-pairs shortest-path closure of G.
//
// Guarantees:
//
//   - F is symmetric, has a zero diagonal and satisfies the triangle
//     inequality (shortest-path metric by construction).
//   - p=1, unrestricted ⇒ F equals E elementwise (direct edges win by the
//     triangle inequality).
//   - p=1, restricted k ⇒ F equals the k-NN graph geodesic distance.
//   - Entries never decrease as p grows with k fixed.
//
// Disconnection: when k is small enough to split G, cross-component entries
// are +Inf. That is a sentinel, not a usable value — callers must treat it
// as "no path" (spec of the estimator, not an error condition).
//
// The exponent domain is p ≥ 1. p = 1 is the undeformed geodesic limit and
// is explicitly supported; p < 1 would not penalize low-density regions and
// is rejected with ErrInfeasibleExponent.
//
// Complexity: the all-pairs closure dominates — O(n³) unrestricted,
// O(n·(nk + n) log n) with restricted k. Restricting k trades path fidelity
// for compute, dropping graph density from O(n²) to O(n·k) edges.
//
// Errors (sentinel):
//
//   - ErrNilCloud           if the cloud is nil.
//   - ErrInfeasibleExponent if p < 1.
//   - ErrBadNeighborCount   if a restricted k is outside [1, n−1].
package fermat
