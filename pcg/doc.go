// Package pcg solves sparse symmetric positive-definite linear systems
// A·x = b with the preconditioned conjugate gradient method, using a
// Jacobi (diagonal) preconditioner.
//
// Overview:
//
//   - Solve runs the classic PCG iteration over a csr.Matrix until the
//     residual norm drops below a relative threshold, the iteration limit
//     is reached, or the search direction degenerates (breakdown).
//   - Every call is an independent, synchronous computation: work vectors
//     are allocated fresh per call, the matrix is only read, and no state
//     survives the call except the returned Result. Concurrent solves over
//     the same Matrix are therefore safe without locking.
//   - The matrix is TRUSTED to be symmetric positive-definite; this is
//     never verified. Violations do not produce errors — they manifest as
//     non-convergence or breakdown, visible through Result.Status and
//     Result.Residual.
//
// Convergence criterion:
//
//	‖b − A·x‖ < Tolerance · max(‖b‖, 1)
//
//	The max(…, 1) floor keeps the threshold meaningful when b is near
//	zero. If the initial guess already satisfies the criterion, Solve
//	returns immediately with zero iterations.
//
// Terminal states (Result.Status):
//
//   - Converged             — residual fell below the threshold.
//   - Stalled               — breakdown: p·Ap became numerically zero,
//     which signals a singular or near-singular matrix. The best solution
//     reached so far is returned together with its true residual.
//   - IterationLimitReached — MaxIterations loop bodies executed without
//     either of the above.
//
//	All three produce the same Result shape; none of them is an error.
//	Errors are reserved for structurally invalid inputs.
//
// Preconditioning policy (documented deliberately, see csr.Diagonal):
//
//	Rows whose diagonal entry is absent or has magnitude ≤ 1e-30 use the
//	fallback value 1.0, degrading the preconditioner to the identity on
//	that coordinate instead of dividing by zero. This masks a genuinely
//	singular diagonal; it is a robustness policy, not a numerical
//	guarantee.
//
// Error handling (sentinel errors):
//
//   - ErrNilMatrix         if the matrix is nil.
//   - ErrEmptySystem       if the system dimension is zero.
//   - ErrDimensionMismatch if b or InitialGuess length differs from n.
//   - ErrBadTolerance      if Tolerance is not positive (or is NaN).
//   - ErrBadMaxIterations  if MaxIterations is negative.
//
// Complexity per iteration:
//
//   - Time:  O(nnz) for the mat-vec product + O(n) vector arithmetic.
//   - Space: O(n) work vectors, allocated once per call.
//
// Example usage:
//
//	m, _ := csr.New(2, []float64{4, 1, 1, 3}, []int{0, 1, 0, 1}, []int{0, 2, 4})
//	res, err := pcg.Solve(m, []float64{1, 2}, pcg.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Solution(), res.Iterations(), res.Residual())
//
// See csr for the storage layer and SelfCheck for a fixed-input smoke test
// of the whole numeric path.
package pcg
