// options.go — functional configuration for Vietoris–Rips persistence.

package persistence

import "math"

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultMaxDimension computes homology in dimensions 0 and 1.
	DefaultMaxDimension = 1

	// DefaultMinPersistence drops only exact zero-persistence pairs,
	// which are pairing artifacts carrying no topology.
	DefaultMinPersistence = 0.0
)

// Options configures a VietorisRips or FromCloud call.
type Options struct {
	maxDim         int     // highest homology dimension computed (0 or 1)
	threshold      float64 // filtration cap; +Inf ⇒ full filtration
	minPersistence float64 // pairs with Death−Birth ≤ this are dropped
}

// Option is a functional option for configuring the computation.
type Option func(*Options)

// DefaultOptions returns the computation defaults: dimensions 0 and 1,
// no filtration cap, zero-persistence pairs dropped.
func DefaultOptions() Options {
	return Options{
		maxDim:         DefaultMaxDimension,
		threshold:      math.Inf(1),
		minPersistence: DefaultMinPersistence,
	}
}

// WithMaxDimension caps the highest homology dimension computed. Only 0 and
// 1 are supported (ErrBadMaxDimension); 0 skips the triangle enumeration
// entirely.
func WithMaxDimension(d int) Option {
	return func(o *Options) {
		o.maxDim = d
	}
}

// WithThreshold caps the filtration at t: simplices entering above t are
// never built, so classes alive at t get Death = +Inf. Must be
// non-negative (ErrBadThreshold).
func WithThreshold(t float64) Option {
	return func(o *Options) {
		o.threshold = t
	}
}

// WithMinPersistence drops pairs with Death−Birth ≤ eps, removing
// near-diagonal noise from the diagram. Must be non-negative
// (ErrBadMinPersistence).
func WithMinPersistence(eps float64) Option {
	return func(o *Options) {
		o.minPersistence = eps
	}
}
