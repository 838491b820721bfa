// Package sparsolve is an in-memory numerical kernel for solving sparse
// symmetric positive-definite linear systems A·x = b.
//
// 🚀 What is sparsolve?
//
//	A small, focused library that brings together:
//		• CSR primitives: validated compressed-sparse-row storage,
//		  mat-vec products and diagonal extraction
//		• PCG solver: preconditioned conjugate gradient with a
//		  Jacobi (diagonal) preconditioner
//		• Convergence metadata: iteration count, final residual norm
//		  and a tagged terminal status
//
// ✨ Why choose sparsolve?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Fail-fast guarantees – CSR structure and solver options are
//     validated before any numeric work starts
//   - Pure computation – no goroutines, no I/O, no hidden state;
//     every solve is an independent function of its inputs
//
// Under the hood, everything is organized under two subpackages:
//
//	csr/ — CSR matrix container, mat-vec product, diagonal extraction
//	pcg/ — PCG iteration, Jacobi preconditioner, result & status types
//
// Quick sketch:
//
//	    ⎡4 1⎤   ⎡x₀⎤   ⎡1⎤
//	    ⎣1 3⎦ · ⎣x₁⎦ = ⎣2⎦
//
//	solves to x ≈ [1/11, 7/11] within a handful of iterations.
//
// Dive into csr/doc.go and pcg/doc.go for the full API surface,
// convergence semantics and worked examples.
//
//	go get github.com/katalvlaran/sparsolve
package sparsolve
