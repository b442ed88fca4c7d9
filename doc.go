// Package ripsaw is an in-memory playground for comparing distance metrics
// as inputs to persistent homology — from point-cloud sampling to
// Vietoris–Rips persistence diagrams.
//
// 🚀 What is ripsaw?
//
//	A small, deterministic toolkit that brings together:
//		• Sampling: noisy parametric curves (trefoil knot) with outlier injection
//		• Metrics: pairwise Euclidean, k-NN graph geodesic, Fermat distance
//		• Graphs: k-nearest-neighbor graphs over point clouds (kd-tree search)
//		• Persistence: Vietoris–Rips persistent homology in dimensions 0 and 1
//		• Diagram tooling: bottleneck distance for qualitative regression checks
//		• Embedding: classical multidimensional scaling over dissimilarity matrices
//		• Rendering: scatter plots, distance heat maps, persistence diagrams
//
// ✨ Why choose ripsaw?
//
//   - Deterministic by construction – every stochastic step takes a seed
//   - Fail-fast – sentinel errors, validated parameters, no silent degradation
//   - Built on gonum – matrices, graphs, shortest paths, kd-trees, MDS, plots
//   - Exploratory-friendly – linear pipelines, no hidden state between runs
//
// Under the hood, everything is organized into focused subpackages:
//
//	cloud/       — point-cloud type and pairwise Euclidean distance matrices
//	sample/      — noisy trefoil sampler with configurable noise and outliers
//	knn/         — k-nearest-neighbor graph construction over point clouds
//	geodesic/    — all-pairs shortest-path distances (sparse and dense forms)
//	fermat/      — density-deformed geodesic (Fermat) distance estimation
//	persistence/ — Vietoris–Rips persistence, diagrams, bottleneck distance
//	embed/       — classical (Torgerson) multidimensional scaling
//	render/      — gonum/plot helpers for clouds, matrices and diagrams
//
// The canonical pipeline is strictly linear per analysis:
//
//	sample → metric (cloud/fermat/geodesic) → persistence → render
//
// No component keeps state across invocations; re-run the pipeline with new
// parameters to explore. Dive into examples/ for a complete walkthrough of
// the noisy-trefoil metric comparison.
package ripsaw
