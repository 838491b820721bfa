package pcg

import "github.com/katalvlaran/sparsolve/csr"

// SelfCheck exercises the whole numeric path end-to-end on a fixed input
// and returns a scalar fingerprint of the answer.
//
// It solves the 2×2 system
//
//	⎡4 1⎤       ⎡1⎤
//	⎣1 3⎦ · x = ⎣2⎦
//
// from a zero guess (tol 1e-10, cap 100) and returns the sum of the
// solution components. The exact solution is [1/11, 7/11], so the returned
// value is ≈ 8/11 ≈ 0.727. Useful as a smoke test that a build or port of
// the kernel still produces the expected constant.
func SelfCheck() float64 {
	m, err := csr.New(2,
		[]float64{4, 1, 1, 3},
		[]int{0, 1, 0, 1},
		[]int{0, 2, 4},
	)
	if err != nil {
		// The triple above is a compile-time constant; failing to build it
		// is a programmer error, not a runtime condition.
		panic(err)
	}

	res, err := Solve(m, []float64{1, 2}, Options{Tolerance: 1e-10, MaxIterations: 100})
	if err != nil {
		panic(err)
	}

	var sum float64
	for _, v := range res.Solution() {
		sum += v
	}

	return sum
}
