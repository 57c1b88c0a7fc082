// Package lowertri extracts the strictly-lower-triangular entries of square
// matrices into compact vectors.
//
// The scan order is fixed: columns are visited left to right, and within
// each column the rows below the diagonal top to bottom. For a given
// dimension the resulting index set is deterministic and can be reused
// across any number of matrices of that dimension.
package lowertri

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by vectorization.
var (
	ErrInvalidDim     = errors.New("lowertri: dimension must be positive")
	ErrNotSquare      = errors.New("lowertri: matrix must be square")
	ErrShapeMismatch  = errors.New("lowertri: stack entries must share one dimension")
	ErrLengthMismatch = errors.New("lowertri: vector length does not match dimension")
)

// PairCount returns the number of strictly-lower-triangular entries of a
// c-by-c matrix, c*(c-1)/2.
func PairCount(c int) int {
	if c < 2 {
		return 0
	}
	return c * (c - 1) / 2
}

// Indices returns the flat row-major indices (row*c + col) of the strictly
// lower triangle of a c-by-c matrix, in the package's fixed scan order.
func Indices(c int) ([]int, error) {
	if c <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDim, c)
	}

	out := make([]int, 0, PairCount(c))
	for j := 0; j < c; j++ {
		for i := j + 1; i < c; i++ {
			out = append(out, i*c+j)
		}
	}

	return out, nil
}

// Vectorize returns the strictly-lower-triangular entries of a square
// matrix as a vector of length c*(c-1)/2.
func Vectorize(m mat.Matrix) ([]float64, error) {
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, r, c)
	}

	out := make([]float64, 0, PairCount(c))
	for j := 0; j < c; j++ {
		for i := j + 1; i < c; i++ {
			out = append(out, m.At(i, j))
		}
	}

	return out, nil
}

// VectorizeStack applies the per-matrix extraction to a stack of N square
// matrices, producing an N-by-c*(c-1)/2 matrix plus the flat index set used
// for the extraction. All stack entries must share one dimension.
//
// For stacks of matrices with fewer than two rows there are no
// off-diagonal entries; the returned matrix is nil.
func VectorizeStack(stack []*mat.SymDense) (*mat.Dense, []int, error) {
	if len(stack) == 0 {
		return nil, nil, nil
	}

	c := stack[0].SymmetricDim()
	for k, m := range stack {
		if m.SymmetricDim() != c {
			return nil, nil, fmt.Errorf("%w: entry %d is %d, want %d",
				ErrShapeMismatch, k, m.SymmetricDim(), c)
		}
	}

	idx, err := Indices(c)
	if err != nil {
		return nil, nil, err
	}

	pairs := PairCount(c)
	if pairs == 0 {
		return nil, idx, nil
	}

	out := mat.NewDense(len(stack), pairs, nil)
	for k, m := range stack {
		raw := m.RawSymmetric()
		row := out.RawRowView(k)
		for p, flat := range idx {
			// SymDense stores the upper triangle; mirror the flat
			// lower-triangle index across the diagonal.
			i := flat / c
			j := flat % c
			row[p] = raw.Data[j*raw.Stride+i]
		}
	}

	return out, idx, nil
}

// Inflate rebuilds a symmetric c-by-c matrix from a lower-triangle vector
// produced by Vectorize. The diagonal is set to one, matching correlation
// matrices, since diagonal entries are not part of the vector form.
func Inflate(vec []float64, c int) (*mat.SymDense, error) {
	if c <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDim, c)
	}

	if len(vec) != PairCount(c) {
		return nil, fmt.Errorf("%w: got %d, want %d for dim %d",
			ErrLengthMismatch, len(vec), PairCount(c), c)
	}

	out := mat.NewSymDense(c, nil)
	for i := 0; i < c; i++ {
		out.SetSym(i, i, 1)
	}

	p := 0
	for j := 0; j < c; j++ {
		for i := j + 1; i < c; i++ {
			out.SetSym(i, j, vec[p])
			p++
		}
	}

	return out, nil
}
