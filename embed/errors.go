package embed

import "errors"

var (
	// ErrNilMatrix indicates a nil dissimilarity matrix.
	ErrNilMatrix = errors.New("embed: nil dissimilarity matrix")

	// ErrNotSquare indicates a non-square dissimilarity matrix.
	ErrNotSquare = errors.New("embed: dissimilarity matrix is not square")

	// ErrAsymmetric indicates the matrix is not exactly symmetric.
	ErrAsymmetric = errors.New("embed: dissimilarity matrix is not symmetric")

	// ErrBadDiagonal indicates a nonzero diagonal entry.
	ErrBadDiagonal = errors.New("embed: dissimilarity matrix diagonal must be zero")

	// ErrInfiniteEntry indicates a +Inf, -Inf or NaN dissimilarity.
	ErrInfiniteEntry = errors.New("embed: dissimilarity matrix has a non-finite entry")

	// ErrBadTargetDim indicates dim < 1 or dim > n.
	ErrBadTargetDim = errors.New("embed: target dimension out of range")

	// ErrDegenerate indicates the scaling produced fewer positive
	// eigenvalues than the requested dimension.
	ErrDegenerate = errors.New("embed: dissimilarities do not support the target dimension")
)
