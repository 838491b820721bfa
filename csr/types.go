// Package csr: core type and sentinel error set.
// This file defines the Matrix container and ONLY the package-level sentinel
// errors used across the csr package. All operations MUST return these
// sentinels and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions.
package csr

import "errors"

// Sentinel errors returned by the csr package.
//
// Every message is prefixed with "csr: ..." for consistency and to allow
// easy grepping across logs. When context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) — callers still match via errors.Is.
var (
	// ErrBadDimension indicates a negative matrix dimension was requested.
	ErrBadDimension = errors.New("csr: dimension must be non-negative")

	// ErrRowPtrLength indicates that the row-pointer slice is not n+1 long.
	ErrRowPtrLength = errors.New("csr: rowPtr must have length n+1")

	// ErrRowPtrOrder indicates that rowPtr[0] != 0 or that rowPtr decreases
	// somewhere, so the slice cannot delimit valid row windows.
	ErrRowPtrOrder = errors.New("csr: rowPtr must start at 0 and be non-decreasing")

	// ErrTripleLength indicates that len(values) or len(colIndex) disagrees
	// with rowPtr[n], so the three slices are not a consistent CSR triple.
	ErrTripleLength = errors.New("csr: values/colIndex length must equal rowPtr[n]")

	// ErrColIndexRange indicates a column index outside [0, n).
	ErrColIndexRange = errors.New("csr: column index out of range")

	// ErrVectorLength indicates an operand vector whose length is not n.
	ErrVectorLength = errors.New("csr: vector length mismatch")

	// ErrIndexOutOfRange indicates an out-of-bounds row or column passed to At.
	ErrIndexOutOfRange = errors.New("csr: index out of range")
)

// Matrix is an immutable sparse matrix in compressed-sparse-row form.
//
// The three parallel slices hold, in order:
//
//	values   — the non-zero entries, ordered by row (within-row order is
//	           arbitrary);
//	colIndex — the column of each entry, same length as values;
//	rowPtr   — n+1 offsets; rowPtr[i]..rowPtr[i+1] indexes the slice of
//	           values/colIndex belonging to row i.
//
// A Matrix is only obtainable through New, which validates the structural
// invariants (rowPtr monotone from 0, consistent lengths, in-range column
// indices). Symmetry and positive-definiteness are NOT checked anywhere in
// this package: the PCG solver in pcg assumes them, and violations manifest
// as non-convergence or breakdown, never as an error from csr.
//
// Matrix retains the caller's slices without copying; mutating them after
// New defeats the validation and is the caller's bug.
type Matrix struct {
	n        int
	values   []float64
	colIndex []int
	rowPtr   []int
}
