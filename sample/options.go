// options.go — functional configuration for the trefoil sampler.
//
// Design goals:
//   - Deterministic behavior under WithSeed/WithRand: no global state.
//   - Options fields are unexported; public APIs consume ...Option.
//   - Invalid parameters surface as sentinel errors from Trefoil, never panics.

package sample

import (
	"math/rand/v2"
	"time"
)

// NoiseKind names a coordinate-noise distribution.
type NoiseKind string

const (
	// NoiseNormal draws noise from a zero-mean normal distribution with
	// standard deviation equal to the configured scale.
	NoiseNormal NoiseKind = "normal"

	// NoiseUniform draws noise uniformly from [−scale, scale].
	NoiseUniform NoiseKind = "uniform"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultNoiseScale is the noise scale applied when none is configured.
	DefaultNoiseScale = 0.1

	// DefaultOutlierBoxMin / DefaultOutlierBoxMax bound the per-axis uniform
	// outlier distribution; the box comfortably contains the trefoil curve
	// so outliers land both inside and outside the structure.
	DefaultOutlierBoxMin = -4.0
	DefaultOutlierBoxMax = 4.0
)

// Options configures a single Trefoil call. Construct with DefaultOptions
// and override via the With* functional options.
type Options struct {
	noiseKind  NoiseKind    // distribution of per-coordinate noise
	noiseScale float64      // σ (normal) or half-width (uniform), ≥ 0
	outliers   int          // number of uniform box points appended, ≥ 0
	boxMin     float64      // per-axis lower bound of the outlier box
	boxMax     float64      // per-axis upper bound of the outlier box
	src        rand.Source  // randomness source; nil ⇒ time-seeded in Trefoil
}

// Option is a functional option for configuring the sampler.
type Option func(*Options)

// DefaultOptions returns the sampler defaults: normal noise with
// DefaultNoiseScale, no outliers, the default outlier box, and no fixed
// randomness source (fresh sample per call).
func DefaultOptions() Options {
	return Options{
		noiseKind:  NoiseNormal,
		noiseScale: DefaultNoiseScale,
		outliers:   0,
		boxMin:     DefaultOutlierBoxMin,
		boxMax:     DefaultOutlierBoxMax,
		src:        nil,
	}
}

// WithNoise selects the noise distribution kind and its scale parameter.
// The kind is validated by Trefoil (ErrUnsupportedNoise); scale must be
// non-negative (ErrBadNoiseScale). A zero scale yields the exact curve.
func WithNoise(kind NoiseKind, scale float64) Option {
	return func(o *Options) {
		o.noiseKind = kind
		o.noiseScale = scale
	}
}

// WithOutliers appends m additional points drawn uniformly at random from
// the configured bounding box. Must be non-negative (ErrBadOutlierCount).
func WithOutliers(m int) Option {
	return func(o *Options) {
		o.outliers = m
	}
}

// WithOutlierBox overrides the per-axis bounds of the uniform outlier box.
// Requires min < max (ErrBadOutlierBox).
func WithOutlierBox(min, max float64) Option {
	return func(o *Options) {
		o.boxMin = min
		o.boxMax = max
	}
}

// WithSeed fixes the randomness source to a PCG seeded with s, making the
// sample fully deterministic for a given parameter set.
func WithSeed(s uint64) Option {
	return func(o *Options) {
		o.src = rand.NewPCG(s, s)
	}
}

// WithRand supplies an explicit randomness source, overriding WithSeed.
// Passing nil restores the default (fresh sample per call).
func WithRand(src rand.Source) Option {
	return func(o *Options) {
		o.src = src
	}
}

// resolveSource returns the configured source, or a time-seeded PCG when the
// caller did not fix one (fresh stochastic sample per call).
func (o *Options) resolveSource() rand.Source {
	if o.src != nil {
		return o.src
	}

	now := uint64(time.Now().UnixNano())

	return rand.NewPCG(now, now^0x9e3779b97f4a7c15)
}
