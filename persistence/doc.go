// Package persistence computes Vietoris–Rips persistent homology of a
// finite metric space in homology dimensions 0 and 1, and provides the
// diagram tooling (bottleneck distance) used for qualitative comparisons
// between metrics.
//
// Input modes:
//
//   - VietorisRips(dist, ...): precomputed mode — any symmetric matrix with
//     zero diagonal and non-negative entries (Euclidean, k-NN geodesic,
//     Fermat). +Inf entries mean "never within any threshold": the two
//     points are simply never joined, so components stay separate and the
//     corresponding classes keep Death = +Inf.
//   - FromCloud(pc, ...): euclidean mode — computes the pairwise Euclidean
//     matrix first, then proceeds identically.
//
// Algorithm:
//
//   - Dimension 0: union-find over weight-sorted edges. An edge that merges
//     two components kills the younger one at its weight: pair (0, w).
//     Components that survive the full filtration are essential:
//     (0, +Inf). This is Kruskal's scan — the H0 diagram is the minimum
//     spanning forest read as death times.
//   - Dimension 1: GF(2) boundary-matrix reduction of the triangle/edge
//     incidences. Triangles enter at the maximum of their three edge
//     weights; a reduced triangle column pairs its lowest surviving edge
//     (a cycle-creating, non-merging edge) as (edge weight, triangle
//     value). Cycle edges never paired are essential: (birth, +Inf).
//
// The diagram is a multiset of (Birth, Death, Dim) triples; zero-persistence
// pairs are dropped by default (WithMinPersistence widens the cut).
//
// Complexity: triangle enumeration dominates — O(n³) simplices in the worst
// case — so keep inputs exploratory-sized or cap the filtration with
// WithThreshold, which prunes both edges and triangles above the cap.
//
// Errors (sentinel):
//
//   - ErrNilMatrix / ErrNilCloud for nil inputs.
//   - ErrNotSquare / ErrAsymmetric for a malformed precomputed matrix.
//   - ErrBadDiagonal for a nonzero diagonal (precomputed mode).
//   - ErrBadDistance for negative or NaN entries.
//   - ErrBadMaxDimension for a requested dimension outside {0, 1}.
//   - ErrBadThreshold / ErrBadMinPersistence for negative caps.
package persistence
