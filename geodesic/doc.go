// Package geodesic computes all-pairs shortest-path distance matrices over
// weighted graphs, the graph-geodesic approximation of manifold distance.
//
// Two forms cover the two graph densities that occur in the metric pipeline:
//
//   - AllPairs: sparse graphs (k-NN graphs). Delegates to gonum's
//     path.DijkstraAllPaths and materializes the result as an n×n *mat.Dense.
//     Unreachable pairs are +Inf — a sentinel, never an error: callers must
//     treat +Inf as "no path", not as a usable distance.
//   - DenseAllPairs: complete graphs already held as a dense weight matrix.
//     Runs an in-place Floyd–Warshall metric closure with the deterministic
//     k→i→j loop order, avoiding the O(n²) edge materialization a graph
//     value would require.
//
// Both forms guarantee a symmetric output with zero diagonal that satisfies
// the triangle inequality (shortest-path distances by construction).
//
// Complexity:
//
//   - AllPairs:      O(n·(E + n) log n) time, O(n²) space.
//   - DenseAllPairs: O(n³) time, O(1) extra space.
//
// Errors (sentinel):
//
//   - ErrNilGraph       if the graph is nil.
//   - ErrBadNodeIDs     if node IDs are not exactly 0..n−1.
//   - ErrNegativeWeight if any edge weight is negative.
//   - ErrNilMatrix      if the dense matrix is nil.
//   - ErrNotSquare      if the dense matrix is not square.
//   - ErrBadDiagonal    if the dense matrix diagonal is not exactly zero.
package geodesic
