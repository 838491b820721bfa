// Package csr_test contains unit tests for CSR construction and primitives.
// These tests validate fail-fast construction errors, mat-vec products,
// single-entry lookup, and diagonal extraction with its fallback policy.
package csr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/sparsolve/csr"
)

// mustNew builds a Matrix and fails the test on any construction error.
func mustNew(t *testing.T, n int, values []float64, colIndex, rowPtr []int) *csr.Matrix {
	t.Helper()
	m, err := csr.New(n, values, colIndex, rowPtr)
	if err != nil {
		t.Fatalf("csr.New: %v", err)
	}

	return m
}

// ------------------------------------------------------------------------
// 1. Validation tests: every structural invariant has a matching sentinel.
// ------------------------------------------------------------------------

func TestNew_Validation(t *testing.T) {
	for _, tc := range []struct {
		name     string
		n        int
		values   []float64
		colIndex []int
		rowPtr   []int
		want     error
	}{
		{
			name: "NegativeDimension",
			n:    -1, rowPtr: []int{0},
			want: csr.ErrBadDimension,
		},
		{
			name: "RowPtrTooShort",
			n:    2, rowPtr: []int{0, 2},
			want: csr.ErrRowPtrLength,
		},
		{
			name: "RowPtrNonZeroStart",
			n:    1, values: []float64{1}, colIndex: []int{0}, rowPtr: []int{1, 1},
			want: csr.ErrRowPtrOrder,
		},
		{
			name: "RowPtrDecreasing",
			n:    2, values: []float64{1, 2}, colIndex: []int{0, 1}, rowPtr: []int{0, 2, 1},
			want: csr.ErrRowPtrOrder,
		},
		{
			name: "ValuesLengthMismatch",
			n:    2, values: []float64{1, 2, 3}, colIndex: []int{0, 1}, rowPtr: []int{0, 1, 2},
			want: csr.ErrTripleLength,
		},
		{
			name: "ColIndexLengthMismatch",
			n:    2, values: []float64{1, 2}, colIndex: []int{0}, rowPtr: []int{0, 1, 2},
			want: csr.ErrTripleLength,
		},
		{
			name: "ColIndexTooLarge",
			n:    2, values: []float64{1, 2}, colIndex: []int{0, 2}, rowPtr: []int{0, 1, 2},
			want: csr.ErrColIndexRange,
		},
		{
			name: "ColIndexNegative",
			n:    2, values: []float64{1, 2}, colIndex: []int{0, -1}, rowPtr: []int{0, 1, 2},
			want: csr.ErrColIndexRange,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csr.New(tc.n, tc.values, tc.colIndex, tc.rowPtr)
			if !errors.Is(err, tc.want) {
				t.Fatalf("csr.New error = %v; want %v", err, tc.want)
			}
		})
	}
}

func TestNew_EmptyMatrix(t *testing.T) {
	// A 0x0 matrix with an empty triple is structurally valid.
	m := mustNew(t, 0, nil, nil, []int{0})
	if m.Dims() != 0 || m.NNZ() != 0 {
		t.Fatalf("Dims=%d NNZ=%d; want 0, 0", m.Dims(), m.NNZ())
	}
}

func TestNew_Accessors(t *testing.T) {
	// [4 1; 1 3]
	m := mustNew(t, 2, []float64{4, 1, 1, 3}, []int{0, 1, 0, 1}, []int{0, 2, 4})
	if got := m.Dims(); got != 2 {
		t.Errorf("Dims() = %d; want 2", got)
	}
	if got := m.NNZ(); got != 4 {
		t.Errorf("NNZ() = %d; want 4", got)
	}
}

// ------------------------------------------------------------------------
// 2. At: stored entries, implicit zeros, and out-of-range coordinates.
// ------------------------------------------------------------------------

func TestAt(t *testing.T) {
	// [4 0; 1 3] — row 0 stores only the diagonal.
	m := mustNew(t, 2, []float64{4, 1, 3}, []int{0, 0, 1}, []int{0, 1, 3})

	for _, tc := range []struct {
		i, j int
		want float64
	}{
		{0, 0, 4},
		{0, 1, 0}, // absent entry is an implicit zero
		{1, 0, 1},
		{1, 1, 3},
	} {
		got, err := m.At(tc.i, tc.j)
		if err != nil {
			t.Fatalf("At(%d,%d): %v", tc.i, tc.j, err)
		}
		if got != tc.want {
			t.Errorf("At(%d,%d) = %g; want %g", tc.i, tc.j, got, tc.want)
		}
	}

	for _, bad := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, err := m.At(bad[0], bad[1]); !errors.Is(err, csr.ErrIndexOutOfRange) {
			t.Errorf("At(%d,%d) error = %v; want ErrIndexOutOfRange", bad[0], bad[1], err)
		}
	}
}

// ------------------------------------------------------------------------
// 3. MulVec: dense reference comparison and length validation.
// ------------------------------------------------------------------------

func TestMulVec_Known3x3(t *testing.T) {
	// [4 1 1; 1 4 1; 1 1 4] · [1 2 3] = [9 12 15]
	m := mustNew(t, 3,
		[]float64{4, 1, 1, 1, 4, 1, 1, 1, 4},
		[]int{0, 1, 2, 0, 1, 2, 0, 1, 2},
		[]int{0, 3, 6, 9})

	dst := make([]float64, 3)
	if err := m.MulVec(dst, []float64{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	want := []float64{9, 12, 15}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-15 {
			t.Errorf("dst[%d] = %g; want %g", i, dst[i], want[i])
		}
	}
}

func TestMulVec_SparseRows(t *testing.T) {
	// Tridiagonal 4x4 Laplacian: rows store only their non-zeros.
	m := mustNew(t, 4,
		[]float64{2, -1, -1, 2, -1, -1, 2, -1, -1, 2},
		[]int{0, 1, 0, 1, 2, 1, 2, 3, 2, 3},
		[]int{0, 2, 5, 8, 10})

	x := []float64{1, 1, 1, 1}
	dst := make([]float64, 4)
	if err := m.MulVec(dst, x); err != nil {
		t.Fatal(err)
	}
	// Interior rows cancel to 0; boundary rows keep 1.
	want := []float64{1, 0, 0, 1}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-15 {
			t.Errorf("dst[%d] = %g; want %g", i, dst[i], want[i])
		}
	}
}

func TestMulVec_LengthMismatch(t *testing.T) {
	m := mustNew(t, 2, []float64{4, 3}, []int{0, 1}, []int{0, 1, 2})

	if err := m.MulVec(make([]float64, 2), make([]float64, 3)); !errors.Is(err, csr.ErrVectorLength) {
		t.Errorf("MulVec short x error = %v; want ErrVectorLength", err)
	}
	if err := m.MulVec(make([]float64, 1), make([]float64, 2)); !errors.Is(err, csr.ErrVectorLength) {
		t.Errorf("MulVec short dst error = %v; want ErrVectorLength", err)
	}
}

// ------------------------------------------------------------------------
// 4. Diagonal: extraction, fallback on absent and on negligible entries.
// ------------------------------------------------------------------------

func TestDiagonal_Extracts(t *testing.T) {
	// [4 1; 1 3] — both diagonal entries present and well above eps.
	m := mustNew(t, 2, []float64{4, 1, 1, 3}, []int{0, 1, 0, 1}, []int{0, 2, 4})

	diag := make([]float64, 2)
	if err := m.Diagonal(diag, 1.0, 1e-30); err != nil {
		t.Fatal(err)
	}
	if diag[0] != 4 || diag[1] != 3 {
		t.Fatalf("diag = %v; want [4 3]", diag)
	}
}

func TestDiagonal_FallbackOnAbsent(t *testing.T) {
	// Row 1 has no stored diagonal entry at all.
	m := mustNew(t, 2, []float64{4, 1}, []int{0, 0}, []int{0, 1, 2})

	diag := make([]float64, 2)
	if err := m.Diagonal(diag, 1.0, 1e-30); err != nil {
		t.Fatal(err)
	}
	if diag[0] != 4 || diag[1] != 1.0 {
		t.Fatalf("diag = %v; want [4 1]", diag)
	}
}

func TestDiagonal_FallbackOnNegligible(t *testing.T) {
	// Row 0 stores a diagonal entry below the negligibility threshold.
	m := mustNew(t, 2, []float64{1e-40, 3}, []int{0, 1}, []int{0, 1, 2})

	diag := make([]float64, 2)
	if err := m.Diagonal(diag, 1.0, 1e-30); err != nil {
		t.Fatal(err)
	}
	if diag[0] != 1.0 || diag[1] != 3 {
		t.Fatalf("diag = %v; want [1 3]", diag)
	}
}

func TestDiagonal_KeepsNegativeEntries(t *testing.T) {
	// The negligibility test is on magnitude: a negative diagonal survives.
	m := mustNew(t, 1, []float64{-5}, []int{0}, []int{0, 1})

	diag := make([]float64, 1)
	if err := m.Diagonal(diag, 1.0, 1e-30); err != nil {
		t.Fatal(err)
	}
	if diag[0] != -5 {
		t.Fatalf("diag[0] = %g; want -5", diag[0])
	}
}

func TestDiagonal_LengthMismatch(t *testing.T) {
	m := mustNew(t, 2, []float64{4, 3}, []int{0, 1}, []int{0, 1, 2})
	if err := m.Diagonal(make([]float64, 3), 1.0, 1e-30); !errors.Is(err, csr.ErrVectorLength) {
		t.Errorf("Diagonal error = %v; want ErrVectorLength", err)
	}
}
