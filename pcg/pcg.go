// Package pcg implements the preconditioned conjugate gradient iteration.
//
// Algorithm outline (classic PCG with M = diag(A)):
//
//  1. x ← x0 (copied; the caller's slice is never mutated).
//  2. diag ← diag(A) with the fallback policy of csr.Diagonal.
//  3. r ← b − A·x, threshold ← Tolerance·max(‖b‖, 1).
//  4. If ‖r‖ < threshold: done, zero iterations.
//  5. z ← M⁻¹r, p ← z, rz ← r·z.
//  6. Repeat at most MaxIterations times:
//     ap ← A·p
//     pap ← p·ap;   |pap| < 1e-30 ⇒ breakdown, stop (Stalled)
//     α  ← rz/pap
//     x  ← x + α·p,  r ← r − α·ap
//     ‖r‖ < threshold ⇒ stop (Converged)
//     z  ← M⁻¹r
//     β  ← (r·z)/rz, rz ← r·z
//     p  ← z + β·p
//
// Notes on implementation choices:
//
//   - Dense-vector arithmetic goes through gonum's floats kernels; only the
//     sparse product and the diagonal scan live in csr.
//   - Termination is guaranteed by the iteration cap; there is no other
//     stopping mechanism and no suspension point inside the loop.
//   - A NaN anywhere poisons the norms, so the convergence test can never
//     fire and the loop runs to the cap. That is deliberate: NaN/Inf
//     receive no special handling and propagate naturally.
package pcg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sparsolve/csr"
)

// Solve runs the preconditioned conjugate gradient method on A·x = b and
// returns the approximate solution together with convergence metadata.
//
// Returns:
//
//   - Result: solution vector (ownership transferred to the caller),
//     executed iteration count, final residual norm and the terminal
//     Status tag.
//   - err: a sentinel error if the inputs are structurally invalid;
//     nil otherwise. Breakdown and non-convergence are NOT errors — they
//     are reported through Result.Status.
//
// Preconditions and validation (in order):
//
//  1. a must be non-nil (ErrNilMatrix).
//  2. the system dimension must be positive (ErrEmptySystem).
//  3. len(b) must equal the dimension (ErrDimensionMismatch).
//  4. opts.Tolerance must be positive (ErrBadTolerance).
//  5. opts.MaxIterations must be non-negative (ErrBadMaxIterations);
//     zero selects the 2·n default.
//  6. opts.InitialGuess must be nil or of the system dimension
//     (ErrDimensionMismatch).
//
// Complexity: O(MaxIterations · (nnz + n)) time, O(n) extra space.
func Solve(a *csr.Matrix, b []float64, opts Options) (Result, error) {
	// 1) Validate the matrix.
	if a == nil {
		return Result{}, ErrNilMatrix
	}
	n := a.Dims()
	if n == 0 {
		return Result{}, ErrEmptySystem
	}

	// 2) Validate the right-hand side.
	if len(b) != n {
		return Result{}, fmt.Errorf("%w: len(b)=%d, n=%d", ErrDimensionMismatch, len(b), n)
	}

	// 3) Validate the options.
	if !(opts.Tolerance > 0) {
		return Result{}, fmt.Errorf("%w: got %g", ErrBadTolerance, opts.Tolerance)
	}
	if opts.MaxIterations < 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadMaxIterations, opts.MaxIterations)
	}
	maxIter := opts.MaxIterations
	if maxIter == 0 {
		maxIter = 2 * n
	}
	if opts.InitialGuess != nil && len(opts.InitialGuess) != n {
		return Result{}, fmt.Errorf("%w: len(x0)=%d, n=%d", ErrDimensionMismatch, len(opts.InitialGuess), n)
	}

	// 4) Allocate per-call state: the solution and the four work vectors.
	x := make([]float64, n)
	if opts.InitialGuess != nil {
		copy(x, opts.InitialGuess)
	}
	r := make([]float64, n)
	z := make([]float64, n)
	p := make([]float64, n)
	ap := make([]float64, n)

	// 5) Jacobi setup: diag(A) with the identity fallback.
	diag := make([]float64, n)
	if err := a.Diagonal(diag, diagFallback, breakdownEps); err != nil {
		return Result{}, err
	}

	// 6) Initial residual r = b − A·x.
	if err := a.MulVec(r, x); err != nil {
		return Result{}, err
	}
	floats.AddScaledTo(r, b, -1, r)

	// 7) Convergence threshold relative to ‖b‖, floored at 1.
	threshold := opts.Tolerance * math.Max(floats.Norm(b, 2), 1)

	rnorm := floats.Norm(r, 2)
	if rnorm < threshold {
		// The initial guess already satisfies the tolerance.
		return Result{solution: x, iterations: 0, residual: rnorm, status: Converged}, nil
	}

	// 8) z = M⁻¹r, p = z, rz = r·z.
	jacobiApply(z, r, diag)
	copy(p, z)
	rz := floats.Dot(r, z)

	// 9) The PCG loop. The cap is the only termination guarantee.
	iterations := 0
	status := IterationLimitReached
	for i := 0; i < maxIter; i++ {
		iterations = i + 1

		if err := a.MulVec(ap, p); err != nil {
			return Result{}, err
		}

		pap := floats.Dot(p, ap)
		if math.Abs(pap) < breakdownEps {
			// Search direction is A-conjugate degenerate: the matrix is
			// singular or near-singular. Keep the best x reached so far.
			status = Stalled

			break
		}
		alpha := rz / pap

		floats.AddScaled(x, alpha, p)   // x = x + α·p
		floats.AddScaled(r, -alpha, ap) // r = r − α·ap

		rnorm = floats.Norm(r, 2)
		if rnorm < threshold {
			status = Converged

			break
		}

		jacobiApply(z, r, diag)

		rzNew := floats.Dot(r, z)
		beta := rzNew / rz
		rz = rzNew

		floats.AddScaledTo(p, z, beta, p) // p = z + β·p
	}

	return Result{solution: x, iterations: iterations, residual: rnorm, status: status}, nil
}
