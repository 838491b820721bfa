package pcg

// jacobiApply computes z = M⁻¹·r for the Jacobi preconditioner M = diag(A):
// an elementwise division by the extracted diagonal.
//
// The diagonal comes from csr.Diagonal with the diagFallback substitution,
// so every entry is guaranteed non-zero here. O(n), writes only into z.
func jacobiApply(z, r, diag []float64) {
	for i, v := range r {
		z[i] = v / diag[i]
	}
}
