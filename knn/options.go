// options.go — functional configuration for k-NN graph construction.
//
// Design goals:
//   - Options fields are unexported; public APIs consume ...Option.
//   - The weight hook is the only tunable: everything else (symmetrization,
//     node numbering) is fixed policy documented in doc.go.

package knn

// WeightFunc maps a Euclidean edge length to the weight stored on the graph
// edge. It must be defined for every non-negative input.
type WeightFunc func(d float64) float64

// Options configures a Build or Complete call.
type Options struct {
	weight WeightFunc // edge weight transform; identity when nil
}

// Option is a functional option for configuring graph construction.
type Option func(*Options)

// DefaultOptions returns the construction defaults: edge weights equal to
// the Euclidean distance (identity transform).
func DefaultOptions() Options {
	return Options{weight: nil}
}

// WithWeight replaces the edge weight with f(EuclideanDistance). Passing nil
// restores the identity transform.
func WithWeight(f WeightFunc) Option {
	return func(o *Options) {
		o.weight = f
	}
}

// applyWeight resolves the configured transform.
func (o *Options) applyWeight(d float64) float64 {
	if o.weight == nil {
		return d
	}

	return o.weight(d)
}
