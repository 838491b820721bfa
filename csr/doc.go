// Package csr provides a validated compressed-sparse-row (CSR) matrix
// container together with the numerical primitives a sparse iterative
// solver needs: matrix-vector products and diagonal extraction.
//
// Overview:
//
//   - A CSR matrix stores only its non-zero entries, row by row, as three
//     parallel slices: the non-zero values, the column index of each value,
//     and a row-pointer slice of length n+1 whose window
//     rowPtr[i]..rowPtr[i+1] delimits row i inside the other two slices.
//   - New validates the structural invariants of the triple once, at
//     construction; every operation afterwards may trust them.
//   - A constructed Matrix is immutable, which makes it safe to share
//     between any number of concurrent readers without locking.
//
// Key features:
//
//   - Fail-fast construction: malformed triples are rejected with sentinel
//     errors before any numeric work can observe them.
//   - MulVec: dst = A·x in O(nnz) time, writing only into the caller's
//     output buffer.
//   - Diagonal: extracts diag(A) for Jacobi-style preconditioning,
//     substituting a caller-chosen fallback where the diagonal entry is
//     absent or numerically negligible.
//
// Error handling (sentinel errors):
//
//   - ErrBadDimension:   negative matrix dimension.
//   - ErrRowPtrLength:   rowPtr is not exactly n+1 entries long.
//   - ErrRowPtrOrder:    rowPtr does not start at 0 or is decreasing.
//   - ErrTripleLength:   values/colIndex lengths disagree with rowPtr[n].
//   - ErrColIndexRange:  a column index lies outside [0, n).
//   - ErrVectorLength:   an operand vector does not have length n.
//   - ErrIndexOutOfRange: At was called with an out-of-bounds coordinate.
//
// Complexity:
//
//   - New:      O(nnz) validation, no copies of the input slices.
//   - MulVec:   O(nnz)
//   - Diagonal: O(nnz)
//   - At:       O(nnz(row))
//
// See pcg for the conjugate-gradient solver built on these primitives.
package csr
