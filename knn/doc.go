// Package knn constructs k-nearest-neighbor graphs over point clouds.
//
// Neighbor search is delegated to gonum's kd-tree (spatial/kdtree); this
// package only assembles the search results into a weighted undirected
// graph (gonum graph/simple) suitable for shortest-path computation.
//
// Canonical model:
//
//   - Node IDs are point indices: node i ↔ pc.At(i).
//   - Edge (i,j) exists iff i is among j's k nearest neighbors or j is
//     among i's k nearest neighbors ("either endpoint lists the other").
//   - Edge weight defaults to the Euclidean distance between the endpoints;
//     WithWeight(f) replaces it with f(distance), which is how the Fermat
//     estimator deforms edges to distance^p.
//
// Complete builds the unrestricted variant: the complete graph over the
// cloud with the same weight hook, for callers that need every pair joined.
//
// Complexity:
//
//   - Build:    O(n log n) tree construction + O(n·k log n) queries,
//     O(n·k) edges.
//   - Complete: O(n²·d) time, O(n²) edges.
//
// Errors (sentinel):
//
//   - ErrNilCloud         if the cloud is nil.
//   - ErrTooFewPoints     if the cloud has fewer than 2 points.
//   - ErrBadNeighborCount if k is outside [1, n−1].
package knn
