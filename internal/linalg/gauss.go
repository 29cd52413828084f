package linalg

import (
	"fmt"
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// DefaultEpsilon is the magnitude below which a pivot counts as zero.
const DefaultEpsilon = 1e-12

// Pivoting selects the pivot strategy for Gaussian elimination.
type Pivoting int

const (
	// PartialPivoting swaps the largest-magnitude entry of the current
	// column into the pivot position before eliminating. Ties keep the
	// row with the smallest index.
	PartialPivoting Pivoting = iota
	// NoPivoting eliminates with the diagonal as found.
	NoPivoting
)

type options struct {
	pivoting Pivoting
	epsilon  float64
	tracer   numeric.Tracer
}

// Option configures a linear solve or a power-method run.
type Option func(*options)

// WithPivoting selects the pivot strategy. The default is PartialPivoting.
func WithPivoting(p Pivoting) Option {
	return func(o *options) { o.pivoting = p }
}

// WithEpsilon sets the singularity threshold. Values <= 0 keep the default.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		if eps > 0 {
			o.epsilon = eps
		}
	}
}

// WithTracer reports each elimination step through t.
func WithTracer(t numeric.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

func buildOptions(opts []Option) options {
	o := options{pivoting: PartialPivoting, epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Solve computes x with a*x = b by Gaussian elimination. The inputs are
// copied; neither a nor b is modified.
func Solve(a *Matrix, b []float64, opts ...Option) ([]float64, error) {
	aug, err := Augmented(a, b)
	if err != nil {
		return nil, err
	}
	return SolveInPlace(aug, opts...)
}

// SolveInPlace reduces the n x (n+1) augmented matrix [A | b] and returns
// the solution vector. Ownership of aug transfers to the call: on return
// it holds the reduced form, whatever the outcome.
func SolveInPlace(aug *Matrix, opts ...Option) ([]float64, error) {
	o := buildOptions(opts)

	n := aug.rows
	if aug.cols != n+1 {
		return nil, fmt.Errorf("augmented matrix is %dx%d, want %dx%d: %w",
			n, aug.cols, n, n+1, numeric.ErrDimensionMismatch)
	}

	// Forward elimination.
	for k := 0; k < n; k++ {
		if o.pivoting == PartialPivoting {
			pivotRow := k
			max := math.Abs(aug.At(k, k))
			for j := k + 1; j < n; j++ {
				if m := math.Abs(aug.At(j, k)); m > max {
					max = m
					pivotRow = j
				}
			}
			aug.SwapRows(k, pivotRow)
		}

		pivot := aug.At(k, k)
		if math.Abs(pivot) <= o.epsilon {
			return nil, fmt.Errorf("pivot %g in column %d: %w", pivot, k, numeric.ErrSingularMatrix)
		}
		if o.tracer != nil {
			o.tracer.Trace(k, map[string]float64{"pivot": pivot, "column": float64(k)})
		}

		for j := k + 1; j < n; j++ {
			c := aug.At(j, k) / pivot
			if c == 0 {
				continue
			}
			for col := k; col <= n; col++ {
				aug.Set(j, col, aug.At(j, col)-c*aug.At(k, col))
			}
			aug.Set(j, k, 0)
		}
	}

	// Back substitution: normalize each row by its diagonal and propagate
	// the solved value upward, zeroing its column.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		pivot := aug.At(i, i)
		if math.Abs(pivot) <= o.epsilon {
			return nil, fmt.Errorf("pivot %g in column %d: %w", pivot, i, numeric.ErrSingularMatrix)
		}
		x[i] = aug.At(i, n) / pivot
		aug.Set(i, i, 1)
		aug.Set(i, n, x[i])

		for j := i - 1; j >= 0; j-- {
			aug.Set(j, n, aug.At(j, n)-aug.At(j, i)*x[i])
			aug.Set(j, i, 0)
		}
	}

	return x, nil
}
