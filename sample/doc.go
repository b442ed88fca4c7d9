// Package sample generates synthetic point clouds for metric and persistence
// experiments: points parametrized along the trefoil knot, perturbed by
// configurable coordinate noise, optionally contaminated with uniform
// outliers drawn from a bounding box independent of the curve.
//
// Canonical model:
//
//   - Trefoil(n): n parameters t_i = 2π·i/n on the closed curve
//     x = sin t + 2·sin 2t,  y = cos t − 2·cos 2t,  z = −sin 3t,
//     each coordinate perturbed by i.i.d. noise of the requested kind.
//   - Noise kinds: NoiseNormal (mean 0, σ = scale) and NoiseUniform
//     (uniform on [−scale, scale]); both drawn via gonum/stat/distuv.
//   - Outliers: WithOutliers(m) appends m points drawn uniformly from the
//     configured box (default [−4, 4] per axis), unrelated to the curve.
//
// Determinism:
//
//   - WithSeed(s) (or WithRand(src)) makes the sampler fully deterministic:
//     stable parameter order, stable draw order (noise per coordinate in
//     axis order, then outliers). Without a seed each call produces a fresh
//     stochastic sample.
//
// Errors (sentinel):
//
//   - ErrBadSampleSize    if n < 1.
//   - ErrUnsupportedNoise if the noise kind is not one of the declared kinds.
//   - ErrBadNoiseScale    if the noise scale is negative.
//   - ErrBadOutlierCount  if the outlier count is negative.
//   - ErrBadOutlierBox    if the outlier box has min ≥ max.
//
// Complexity: O((n+m)·d) time and space for n curve points, m outliers, d=3.
package sample
