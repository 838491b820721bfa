// Package pcg: options, result and sentinel error set.
// This file defines the solver configuration, the immutable Result value
// and ONLY the package-level sentinel errors used across the pcg package.
// All validation failures MUST be reported through these sentinels and
// tests MUST check them via errors.Is; the solver never panics on
// user-triggered conditions.
package pcg

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrNilMatrix indicates that a nil *csr.Matrix was passed to Solve.
	ErrNilMatrix = errors.New("pcg: matrix is nil")

	// ErrEmptySystem indicates a zero-dimensional system; there is nothing
	// to solve and no meaningful Result shape for it.
	ErrEmptySystem = errors.New("pcg: system dimension is zero")

	// ErrDimensionMismatch indicates that b or the initial guess does not
	// have the matrix dimension n.
	ErrDimensionMismatch = errors.New("pcg: vector length does not match matrix dimension")

	// ErrBadTolerance indicates a non-positive (or NaN) convergence tolerance.
	ErrBadTolerance = errors.New("pcg: tolerance must be positive")

	// ErrBadMaxIterations indicates a negative iteration cap.
	ErrBadMaxIterations = errors.New("pcg: max iterations must be non-negative")
)

// breakdownEps is the magnitude below which p·Ap is treated as zero,
// terminating the iteration as Stalled. It matches the negligibility
// threshold used for the preconditioner diagonal.
const breakdownEps = 1e-30

// diagFallback replaces an absent or negligible diagonal entry, degrading
// the Jacobi preconditioner to the identity on that coordinate.
const diagFallback = 1.0

// Status tags the terminal state of a solve.
//
// All three states are produced through the same Result shape; the tag only
// records HOW the iteration stopped. Callers that need to act on a poor
// solution should still inspect Result.Residual against their own
// tolerance.
type Status int

const (
	// Converged — the residual norm fell below Tolerance·max(‖b‖, 1).
	Converged Status = iota

	// Stalled — breakdown: the search direction became A-conjugate
	// degenerate (p·Ap numerically zero), which signals a singular or
	// near-singular matrix. The last computed solution is returned.
	Stalled

	// IterationLimitReached — MaxIterations loop bodies executed without
	// convergence or breakdown.
	IterationLimitReached
)

// String returns a human-readable tag name for logging and test output.
func (s Status) String() string {
	switch s {
	case Converged:
		return "Converged"
	case Stalled:
		return "Stalled"
	case IterationLimitReached:
		return "IterationLimitReached"
	default:
		return "Unknown"
	}
}

// Options configures a single Solve call.
//
// Tolerance     – relative convergence tolerance; the iteration stops once
//
//	‖r‖ < Tolerance·max(‖b‖, 1). Must be positive.
//
// MaxIterations – upper bound on loop iterations. Zero selects the default
//
//	of 2·n (enough for CG on any well-conditioned n×n SPD
//	system, which converges in at most n exact-arithmetic
//	steps). Negative values are rejected.
//
// InitialGuess  – starting point x0; nil means the zero vector. When set,
//
//	its length must equal the system dimension. Solve copies
//	it and never mutates the caller's slice.
type Options struct {
	Tolerance     float64
	MaxIterations int
	InitialGuess  []float64
}

// DefaultOptions returns the solver defaults: Tolerance 1e-10,
// MaxIterations 0 (meaning 2·n), and a zero initial guess.
func DefaultOptions() Options {
	return Options{
		Tolerance:     1e-10,
		MaxIterations: 0,
		InitialGuess:  nil,
	}
}

// Result is the immutable outcome of one Solve call.
//
// It owns its solution vector: ownership transfers to the caller on return
// and no internal reference is retained. The accessor-only surface keeps
// the one-shot-result contract — there is no way to mutate a Result after
// construction.
type Result struct {
	solution   []float64
	iterations int
	residual   float64
	status     Status
}

// Solution returns the approximate solution vector of length n.
// The slice is owned by the caller; pcg keeps no reference to it.
func (r Result) Solution() []float64 { return r.solution }

// Iterations returns the number of loop bodies actually executed:
// 0 when the initial guess already satisfied the tolerance, up to
// MaxIterations when the limit was reached.
func (r Result) Iterations() int { return r.iterations }

// Residual returns the last computed residual norm ‖b − A·x‖, regardless
// of how the iteration terminated.
func (r Result) Residual() float64 { return r.residual }

// Status returns the terminal state tag of the solve.
func (r Result) Status() Status { return r.status }
