// errors.go — sentinel errors for the sample package.
//
// Error policy:
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX).
//   - Implementations attach parameter context via fmt.Errorf("...: %w", ErrX).

package sample

import "errors"

// ErrBadSampleSize indicates that the requested number of curve points is
// smaller than the allowed minimum (n < 1).
var ErrBadSampleSize = errors.New("sample: sample size must be at least 1")

// ErrUnsupportedNoise indicates that a noise kind outside the declared set
// (NoiseNormal, NoiseUniform) was requested.
// Usage: if errors.Is(err, sample.ErrUnsupportedNoise) { /* fix the kind */ }.
var ErrUnsupportedNoise = errors.New("sample: unsupported noise kind")

// ErrBadNoiseScale indicates a negative noise scale parameter.
var ErrBadNoiseScale = errors.New("sample: noise scale must be non-negative")

// ErrBadOutlierCount indicates a negative outlier count.
var ErrBadOutlierCount = errors.New("sample: outlier count must be non-negative")

// ErrBadOutlierBox indicates an outlier bounding box with min ≥ max.
var ErrBadOutlierBox = errors.New("sample: outlier box min must be below max")
