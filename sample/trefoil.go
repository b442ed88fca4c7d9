// trefoil.go — noisy trefoil-knot sampler with uniform outlier injection.
//
// Contract:
//   - n ≥ 1 (ErrBadSampleSize); parameters t_i = 2π·i/n in ascending order.
//   - Noise kind must be NoiseNormal or NoiseUniform (ErrUnsupportedNoise).
//   - Outliers are appended after all curve points, so cloud indices
//     [0, n) are curve samples and [n, n+m) are outliers.
//   - Deterministic draw order for a fixed source: per point, noise is
//     drawn axis by axis; outlier coordinates likewise.

package sample

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/halvik/ripsaw/cloud"
)

// trefoilDim is the ambient dimension of the sampled curve.
const trefoilDim = 3

// Trefoil samples n points along the trefoil knot, perturbs each coordinate
// with i.i.d. noise, and optionally appends uniform outliers (WithOutliers).
//
// Validation (in order):
//  1. n ≥ 1                    (ErrBadSampleSize)
//  2. noise kind is declared   (ErrUnsupportedNoise)
//  3. noise scale ≥ 0          (ErrBadNoiseScale)
//  4. outlier count ≥ 0        (ErrBadOutlierCount)
//  5. outlier box min < max    (ErrBadOutlierBox, checked only if m > 0)
//
// Complexity: O((n+m)·d) time and space.
func Trefoil(n int, opts ...Option) (*cloud.PointCloud, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Fail-fast validation, in documented order.
	if n < 1 {
		return nil, fmt.Errorf("sample.Trefoil: n=%d: %w", n, ErrBadSampleSize)
	}
	if cfg.noiseKind != NoiseNormal && cfg.noiseKind != NoiseUniform {
		return nil, fmt.Errorf("sample.Trefoil: kind=%q: %w", cfg.noiseKind, ErrUnsupportedNoise)
	}
	if cfg.noiseScale < 0 {
		return nil, fmt.Errorf("sample.Trefoil: scale=%g: %w", cfg.noiseScale, ErrBadNoiseScale)
	}
	if cfg.outliers < 0 {
		return nil, fmt.Errorf("sample.Trefoil: outliers=%d: %w", cfg.outliers, ErrBadOutlierCount)
	}
	if cfg.outliers > 0 && cfg.boxMin >= cfg.boxMax {
		return nil, fmt.Errorf("sample.Trefoil: box=[%g,%g]: %w", cfg.boxMin, cfg.boxMax, ErrBadOutlierBox)
	}

	// 3) Build the noise sampler once; draw order is fixed below.
	src := cfg.resolveSource()
	noise := noiseSampler(cfg.noiseKind, cfg.noiseScale, src)

	// 4) Sample the curve: uniform parameter spacing, then perturb axis by axis.
	pts := make([][]float64, 0, n+cfg.outliers)
	var t float64
	for i := 0; i < n; i++ {
		t = 2 * math.Pi * float64(i) / float64(n)
		p := []float64{
			math.Sin(t) + 2*math.Sin(2*t),
			math.Cos(t) - 2*math.Cos(2*t),
			-math.Sin(3 * t),
		}
		for a := 0; a < trefoilDim; a++ {
			p[a] += noise()
		}
		pts = append(pts, p)
	}

	// 5) Append outliers: uniform per axis over the configured box,
	//    independent of the curve.
	if cfg.outliers > 0 {
		box := distuv.Uniform{Min: cfg.boxMin, Max: cfg.boxMax, Src: src}
		for i := 0; i < cfg.outliers; i++ {
			p := make([]float64, trefoilDim)
			for a := 0; a < trefoilDim; a++ {
				p[a] = box.Rand()
			}
			pts = append(pts, p)
		}
	}

	return cloud.New(pts)
}

// noiseSampler returns a draw function for the requested kind and scale.
// A zero scale degenerates to the exact curve (no draws are consumed for
// the normal kind either: distuv.Normal with Sigma=0 would panic, so we
// short-circuit).
func noiseSampler(kind NoiseKind, scale float64, src rand.Source) func() float64 {
	if scale == 0 {
		return func() float64 { return 0 }
	}

	switch kind {
	case NoiseUniform:
		u := distuv.Uniform{Min: -scale, Max: scale, Src: src}

		return u.Rand
	default: // NoiseNormal; kind is validated by the caller
		n := distuv.Normal{Mu: 0, Sigma: scale, Src: src}

		return n.Rand
	}
}
