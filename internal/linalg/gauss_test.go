package linalg

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/numlab/internal/numeric"
)

func mustMatrix(t *testing.T, rows [][]float64) *Matrix {
	t.Helper()
	m, err := FromRows(rows)
	if err != nil {
		t.Fatalf("bad matrix: %v", err)
	}
	return m
}

func TestSolveKnownSystem(t *testing.T) {
	a := mustMatrix(t, [][]float64{
		{2, 1, 1},
		{4, -6, 0},
		{-2, 7, 2},
	})
	b := []float64{5, -2, 9}
	want := []float64{1, 1, 2}

	pivoted, err := Solve(a, b)
	if err != nil {
		t.Fatalf("pivoted solve failed: %v", err)
	}
	if !vecClose(pivoted, want) {
		t.Errorf("pivoted solution %v, want %v", pivoted, want)
	}

	plain, err := Solve(a, b, WithPivoting(NoPivoting))
	if err != nil {
		t.Fatalf("non-pivoted solve failed: %v", err)
	}
	if !vecClose(plain, want) {
		t.Errorf("non-pivoted solution %v, want %v", plain, want)
	}

	if !vecClose(pivoted, plain) {
		t.Errorf("variants disagree: %v vs %v", pivoted, plain)
	}
}

func vecClose(a, b []float64) bool { return vecCloseTol(a, b, 1e-10) }

func vecCloseTol(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	a := mustMatrix(t, [][]float64{{2, 1}, {1, 3}})
	b := []float64{3, 5}
	before := a.Clone()

	if _, err := Solve(a, b); err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if a.At(i, j) != before.At(i, j) {
				t.Fatalf("input mutated at (%d,%d)", i, j)
			}
		}
	}
	if b[0] != 3 || b[1] != 5 {
		t.Fatal("rhs mutated")
	}
}

func TestSolveInPlaceMutates(t *testing.T) {
	aug := mustMatrix(t, [][]float64{
		{2, 1, 3},
		{1, 3, 5},
	})

	x, err := SolveInPlace(aug)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !vecClose(x, []float64{0.8, 1.4}) {
		t.Errorf("solution %v, want [0.8 1.4]", x)
	}

	// Reduced form: identity on the left, solution on the right.
	if aug.At(0, 0) != 1 || aug.At(1, 1) != 1 || aug.At(0, 1) != 0 || aug.At(1, 0) != 0 {
		t.Error("augmented matrix not reduced in place")
	}
	if math.Abs(aug.At(0, 2)-x[0]) > 1e-12 || math.Abs(aug.At(1, 2)-x[1]) > 1e-12 {
		t.Error("solution column not written back")
	}
}

func TestSingularMatrix(t *testing.T) {
	a := mustMatrix(t, [][]float64{
		{1, 2, 3},
		{0, 0, 0},
		{4, 5, 6},
	})
	b := []float64{1, 2, 3}

	_, err := Solve(a, b)
	if !errors.Is(err, numeric.ErrSingularMatrix) {
		t.Errorf("expected ErrSingularMatrix for a zero row, got %v", err)
	}

	_, err = Solve(a, b, WithPivoting(NoPivoting))
	if !errors.Is(err, numeric.ErrSingularMatrix) {
		t.Errorf("expected ErrSingularMatrix without pivoting, got %v", err)
	}
}

func TestPivotingRescuesZeroDiagonal(t *testing.T) {
	a := mustMatrix(t, [][]float64{
		{0, 1},
		{1, 0},
	})
	b := []float64{2, 3}

	_, err := Solve(a, b, WithPivoting(NoPivoting))
	if !errors.Is(err, numeric.ErrSingularMatrix) {
		t.Fatalf("expected ErrSingularMatrix without pivoting, got %v", err)
	}

	x, err := Solve(a, b)
	if err != nil {
		t.Fatalf("pivoted solve failed: %v", err)
	}
	if !vecClose(x, []float64{3, 2}) {
		t.Errorf("solution %v, want [3 2]", x)
	}
}

func TestPivotingStability(t *testing.T) {
	// A tiny but nonzero pivot passes the singularity check yet ruins the
	// unpivoted elimination; partial pivoting keeps the answer accurate.
	eps := 1e-13
	a := mustMatrix(t, [][]float64{
		{eps, 1},
		{1, 1},
	})
	b := []float64{1, 2}
	// Exact solution is approximately (1, 1).

	x, err := Solve(a, b, WithEpsilon(1e-20))
	if err != nil {
		t.Fatalf("pivoted solve failed: %v", err)
	}
	if !vecCloseTol(x, []float64{1, 1}, 1e-3) {
		t.Errorf("pivoted solution %v drifted from [1 1]", x)
	}
}

func TestSolveDimensionMismatch(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})

	if _, err := Solve(a, []float64{1}); !errors.Is(err, numeric.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch for short rhs, got %v", err)
	}

	rect := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	if _, err := Solve(rect, []float64{1, 2}); !errors.Is(err, numeric.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch for non-square matrix, got %v", err)
	}
}

func TestSwapRows(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	m.SwapRows(0, 1)

	if m.At(0, 0) != 3 || m.At(0, 1) != 4 || m.At(1, 0) != 1 || m.At(1, 1) != 2 {
		t.Error("rows not exchanged")
	}

	m.SwapRows(1, 1)
	if m.At(1, 0) != 1 {
		t.Error("self-swap changed the matrix")
	}
}

func TestMulVec(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})

	y, err := m.MulVec([]float64{1, 1})
	if err != nil {
		t.Fatalf("mulvec failed: %v", err)
	}
	if !vecClose(y, []float64{3, 7}) {
		t.Errorf("product %v, want [3 7]", y)
	}

	if _, err := m.MulVec([]float64{1}); !errors.Is(err, numeric.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestFromRowsRagged(t *testing.T) {
	_, err := FromRows([][]float64{{1, 2}, {3}})
	if !errors.Is(err, numeric.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch for ragged rows, got %v", err)
	}

	_, err = FromRows(nil)
	if !errors.Is(err, numeric.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch for empty input, got %v", err)
	}
}
