// Package csr implements construction and the numerical primitives of the
// compressed-sparse-row matrix: structural validation, single-entry lookup,
// matrix-vector product and diagonal extraction.
//
// Notes on implementation choices:
//
//   - Validation happens exactly once, in New. Hot-path operations (MulVec,
//     Diagonal) only re-check operand vector lengths, never the triple.
//   - The input slices are retained, not copied: a solver calling MulVec
//     thousands of times should not pay for a defensive copy it never needs.
//   - Diagonal takes the fallback and the negligibility threshold as
//     arguments so the preconditioning policy lives with the solver, not
//     with the storage.
package csr

import "fmt"

// New constructs a CSR matrix of dimension n from the parallel triple
// (values, colIndex, rowPtr) and validates its structural invariants.
//
// Validation (in order):
//  1. n must be non-negative (ErrBadDimension).
//  2. rowPtr must have exactly n+1 entries (ErrRowPtrLength).
//  3. rowPtr[0] must be 0 and rowPtr must be non-decreasing (ErrRowPtrOrder).
//  4. len(values) and len(colIndex) must equal rowPtr[n] (ErrTripleLength).
//  5. every column index must lie in [0, n) (ErrColIndexRange).
//
// The slices are retained without copying. Complexity: O(nnz).
func New(n int, values []float64, colIndex, rowPtr []int) (*Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadDimension, n)
	}
	if len(rowPtr) != n+1 {
		return nil, fmt.Errorf("%w: len(rowPtr)=%d, n=%d", ErrRowPtrLength, len(rowPtr), n)
	}
	if rowPtr[0] != 0 {
		return nil, fmt.Errorf("%w: rowPtr[0]=%d", ErrRowPtrOrder, rowPtr[0])
	}
	for i := 1; i <= n; i++ {
		if rowPtr[i] < rowPtr[i-1] {
			return nil, fmt.Errorf("%w: rowPtr[%d]=%d < rowPtr[%d]=%d",
				ErrRowPtrOrder, i, rowPtr[i], i-1, rowPtr[i-1])
		}
	}
	nnz := rowPtr[n]
	if len(values) != nnz || len(colIndex) != nnz {
		return nil, fmt.Errorf("%w: len(values)=%d, len(colIndex)=%d, rowPtr[n]=%d",
			ErrTripleLength, len(values), len(colIndex), nnz)
	}
	for j, c := range colIndex {
		if c < 0 || c >= n {
			return nil, fmt.Errorf("%w: colIndex[%d]=%d, n=%d", ErrColIndexRange, j, c, n)
		}
	}

	return &Matrix{n: n, values: values, colIndex: colIndex, rowPtr: rowPtr}, nil
}

// Dims returns the dimension n of the (square) matrix.
func (m *Matrix) Dims() int { return m.n }

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int { return len(m.values) }

// At returns the entry at row i, column j, scanning row i's stored entries.
// Absent entries are zero. Returns ErrIndexOutOfRange when i or j is outside
// [0, n). Complexity: O(nnz(row i)).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("%w: (%d,%d), n=%d", ErrIndexOutOfRange, i, j, m.n)
	}
	var sum float64
	// Duplicate entries within a row are summed, mirroring MulVec semantics.
	for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
		if m.colIndex[k] == j {
			sum += m.values[k]
		}
	}

	return sum, nil
}

// MulVec computes dst = A·x.
//
// For each row i it accumulates values[k]*x[colIndex[k]] over the row window
// rowPtr[i]..rowPtr[i+1]. Both x and dst must have length n; dst is the only
// memory written. x and dst must not alias. Complexity: O(nnz).
func (m *Matrix) MulVec(dst, x []float64) error {
	if len(x) != m.n {
		return fmt.Errorf("%w: len(x)=%d, n=%d", ErrVectorLength, len(x), m.n)
	}
	if len(dst) != m.n {
		return fmt.Errorf("%w: len(dst)=%d, n=%d", ErrVectorLength, len(dst), m.n)
	}

	for i := 0; i < m.n; i++ {
		var sum float64
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			sum += m.values[k] * x[m.colIndex[k]]
		}
		dst[i] = sum
	}

	return nil
}

// Diagonal extracts diag(A) into dst, one entry per row.
//
// For each row i the stored entries are scanned for column i. When the entry
// exists and |value| > eps, dst[i] is that value; otherwise dst[i] is set to
// fallback. The fallback deliberately degrades a Jacobi preconditioner to
// the identity on that coordinate instead of letting a zero or missing
// diagonal surface later as a division by zero — it masks a genuinely
// singular diagonal, which is a robustness policy, not a numerical
// guarantee. dst must have length n. Complexity: O(nnz).
func (m *Matrix) Diagonal(dst []float64, fallback, eps float64) error {
	if len(dst) != m.n {
		return fmt.Errorf("%w: len(dst)=%d, n=%d", ErrVectorLength, len(dst), m.n)
	}

	for i := 0; i < m.n; i++ {
		dst[i] = fallback
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			if m.colIndex[k] == i {
				if v := m.values[k]; v > eps || v < -eps {
					dst[i] = v
				}
				break
			}
		}
	}

	return nil
}
