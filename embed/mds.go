package embed

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/mds"
)

// MDS embeds an n×n dissimilarity matrix into dim-dimensional Euclidean
// space by classical (Torgerson) scaling and returns the n×dim coordinate
// matrix. Row i of the result is the embedded position of point i.
//
// The matrix must be square, exactly symmetric, zero on the diagonal and
// finite everywhere. dim must satisfy 1 ≤ dim ≤ n. When the double-centered
// Gram matrix yields fewer than dim positive eigenvalues the requested
// embedding does not exist and ErrDegenerate is returned.
//
// Complexity: O(n³) time (eigendecomposition), O(n²) memory.
func MDS(dis mat.Matrix, dim int) (*mat.Dense, error) {
	// 1) Validate the matrix.
	sym, err := toSymmetric(dis)
	if err != nil {
		return nil, err
	}
	n := sym.SymmetricDim()

	// 2) Validate the target dimension.
	if dim < 1 || dim > n {
		return nil, fmt.Errorf("%w: dim=%d with n=%d", ErrBadTargetDim, dim, n)
	}

	// 3) Delegate the scaling. k reports how many coordinate columns
	//    correspond to positive eigenvalues; only those carry geometry.
	var coords mat.Dense
	k, _ := mds.TorgersonScaling(&coords, make([]float64, n), sym)
	if k < dim {
		return nil, fmt.Errorf("%w: %d positive eigenvalues, need %d", ErrDegenerate, k, dim)
	}

	// 4) Keep the leading dim columns (eigenvalues come out descending,
	//    so these are the dominant axes).
	out := mat.NewDense(n, dim, nil)
	out.Copy(coords.Slice(0, n, 0, dim))

	return out, nil
}

// toSymmetric validates dis and copies it into a SymDense for the scaler.
func toSymmetric(dis mat.Matrix) (*mat.SymDense, error) {
	// 1) Shape.
	if dis == nil {
		return nil, ErrNilMatrix
	}
	r, c := dis.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: %d×%d", ErrNotSquare, r, c)
	}

	// 2) Values: symmetric, zero diagonal, finite everywhere.
	sym := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		if d := dis.At(i, i); d != 0 {
			return nil, fmt.Errorf("%w: entry (%d,%d)=%v", ErrBadDiagonal, i, i, d)
		}
		for j := i; j < r; j++ {
			v, w := dis.At(i, j), dis.At(j, i)
			if v != w && !(math.IsNaN(v) && math.IsNaN(w)) {
				return nil, fmt.Errorf("%w: entries (%d,%d)=%v and (%d,%d)=%v", ErrAsymmetric, i, j, v, j, i, w)
			}
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return nil, fmt.Errorf("%w: entry (%d,%d)=%v", ErrInfiniteEntry, i, j, v)
			}
			sym.SetSym(i, j, v)
		}
	}

	return sym, nil
}
