// options.go — functional configuration for the Fermat distance estimator.

package fermat

// Unrestricted selects the complete-graph variant: every pair of points is
// joined directly (the default).
const Unrestricted = 0

// Options configures a Distances call.
type Options struct {
	neighbors int // k-NN path restriction; Unrestricted ⇒ complete graph
}

// Option is a functional option for configuring the estimator.
type Option func(*Options)

// DefaultOptions returns the estimator defaults: no path restriction.
func DefaultOptions() Options {
	return Options{neighbors: Unrestricted}
}

// WithNeighbors restricts candidate paths to the k-nearest-neighbor graph
// of the cloud. k must lie in [1, n−1] (ErrBadNeighborCount); pass
// Unrestricted to return to the complete graph.
func WithNeighbors(k int) Option {
	return func(o *Options) {
		o.neighbors = k
	}
}
